package repository

import (
	"context"
	"time"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// ChargeRepository puerto de persistencia de cobranzas. Cada operación es una sola
// sentencia sobre una fila; las escrituras devuelven la fila tal como quedó.
type ChargeRepository interface {
	// Create inserta y completa ID y CreatedAt.
	Create(ctx context.Context, charge *entity.Charge) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Charge, error)
	// List ordena por created_at descendente; companyID nil lista todas.
	List(ctx context.Context, companyID *int64) ([]*entity.ChargeWithCompany, error)
	// Update escribe los campos editables; nil, nil si no existe.
	Update(ctx context.Context, charge *entity.Charge) (*entity.Charge, error)
	// MarkPaid fija status=paid con método y fecha; nil, nil si no existe.
	MarkPaid(ctx context.Context, id int64, method string, paymentDate time.Time) (*entity.Charge, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
