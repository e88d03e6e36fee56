package repository

import (
	"context"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// ContractRepository define el puerto de persistencia para contratos.
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	GetByID(ctx context.Context, id int64) (*entity.Contract, error)
	List(ctx context.Context, companyID *int64) ([]*entity.Contract, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
