// Package storage guarda archivos subidos en disco local.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/billing-portal/internal/application/ports"
)

var _ ports.FileStore = (*LocalFileStore)(nil)

// LocalFileStore escribe en dir con nombre <uuid>-<nombre saneado> y devuelve publicPath/<nombre>.
type LocalFileStore struct {
	dir        string
	publicPath string
}

// NewLocalFileStore crea el directorio si no existe.
func NewLocalFileStore(dir, publicPath string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", dir, err)
	}
	return &LocalFileStore{dir: dir, publicPath: "/" + strings.Trim(publicPath, "/")}, nil
}

// Save copia r a disco.
func (s *LocalFileStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := uuid.NewString() + "-" + sanitizeName(originalName)

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: cerrar archivo: %w", err)
	}
	return path.Join(s.publicPath, name), nil
}

// sanitizeName deja solo el nombre base con letras ASCII, dígitos, '.', '-' y '_'.
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	if out == "." || out == ".." {
		return "file"
	}
	return out
}
