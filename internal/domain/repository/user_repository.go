package repository

import (
	"context"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// UpdatePassword reemplaza el hash y el flag de cambio obligatorio.
	UpdatePassword(ctx context.Context, id int64, hash string, forceChange bool) error
}
