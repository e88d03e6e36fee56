package ports

import (
	"context"
	"errors"

	"github.com/jhoicas/billing-portal/internal/application/dto"
)

// ErrCNPJNotFound el servicio externo no conoce el CNPJ consultado.
var ErrCNPJNotFound = errors.New("cnpj no encontrado")

// CNPJLookup puerto de salida para la consulta pública de CNPJ (BrasilAPI u otro proveedor).
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type CNPJLookup interface {
	// LookupCNPJ recibe solo dígitos (14) y devuelve los datos mapeados al formulario de empresa.
	LookupCNPJ(ctx context.Context, cnpj string) (*dto.CNPJLookupResponse, error)
}
