package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/application/ports"
	"github.com/jhoicas/billing-portal/internal/domain"
)

// UploadUseCase recibe archivos (boletos, notas fiscales, contratos) y devuelve su URL pública.
type UploadUseCase struct {
	store    ports.FileStore
	maxBytes int64
}

// NewUploadUseCase construye el caso de uso. maxBytes <= 0 desactiva el límite.
func NewUploadUseCase(store ports.FileStore, maxBytes int64) *UploadUseCase {
	return &UploadUseCase{store: store, maxBytes: maxBytes}
}

// Upload guarda el archivo y devuelve la referencia opaca.
func (uc *UploadUseCase) Upload(ctx context.Context, name string, size int64, r io.Reader) (*dto.UploadResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("file", "archivo requerido")
	}
	if size == 0 {
		return nil, domain.NewValidationError("file", "archivo vacío")
	}
	if uc.maxBytes > 0 && size > uc.maxBytes {
		return nil, domain.NewValidationError("file", fmt.Sprintf("excede el máximo de %d MB", uc.maxBytes/(1024*1024)))
	}
	url, err := uc.store.Save(ctx, name, r)
	if err != nil {
		return nil, fmt.Errorf("guardar archivo: %w", err)
	}
	return &dto.UploadResponse{URL: url}, nil
}
