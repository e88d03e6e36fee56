package repository

import (
	"context"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para notas fiscales.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	List(ctx context.Context, companyID *int64) ([]*entity.InvoiceWithRefs, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
