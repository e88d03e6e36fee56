package repository

import (
	"context"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// EquipmentRepository define el puerto de persistencia para equipos.
type EquipmentRepository interface {
	Create(ctx context.Context, eq *entity.Equipment) error
	GetByID(ctx context.Context, id int64) (*entity.Equipment, error)
	List(ctx context.Context, companyID *int64) ([]*entity.Equipment, error)
	Update(ctx context.Context, eq *entity.Equipment) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// EquipmentModelRepository catálogo de modelos (global, sin empresa).
type EquipmentModelRepository interface {
	Create(ctx context.Context, m *entity.EquipmentModel) error
	List(ctx context.Context) ([]*entity.EquipmentModel, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
