package repository

import (
	"context"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create persiste la empresa y completa ID y CreatedAt.
	Create(ctx context.Context, company *entity.Company) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	// List devuelve todas las empresas, o solo onlyID si no es nil.
	List(ctx context.Context, onlyID *int64) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// Delete elimina en cascada; false si no existía.
	Delete(ctx context.Context, id int64) (bool, error)
}
