package usecase

import (
	"errors"

	"github.com/jhoicas/billing-portal/internal/domain"
)

// persistence deja pasar errores de dominio y marca el resto como falla de persistencia.
func persistence(op string, err error) error {
	if errors.Is(err, domain.ErrPersistence) || errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return domain.PersistenceError(op, err)
}
