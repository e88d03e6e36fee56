package ports

import (
	"context"
	"io"
)

// FileStore almacena archivos subidos (boletos, notas fiscales, contratos) y devuelve
// una referencia pública opaca que se guarda tal cual en boletoFile / fileUrl.
type FileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (url string, err error)
}
