package dto

import (
	"time"

	"github.com/jhoicas/billing-portal/internal/domain/charge"
)

// ErrorResponse cuerpo de error HTTP. Field indica el campo inválido en errores de validación.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// optString devuelve nil para cadenas vacías (se serializa como null).
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// optDate formatea una fecha opcional como YYYY-MM-DD.
func optDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(charge.DateLayout)
	return &s
}
