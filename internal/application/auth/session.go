package auth

import (
	"context"

	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
	"github.com/jhoicas/billing-portal/pkg/jwt"
)

// SessionService resuelve un token de sesión al usuario persistido.
// El rol y la empresa se leen siempre del usuario actual, no del token.
type SessionService struct {
	users  repository.UserRepository
	secret string
}

// NewSessionService construye el servicio.
func NewSessionService(users repository.UserRepository, secret string) *SessionService {
	return &SessionService{users: users, secret: secret}
}

// Resolve devuelve domain.ErrUnauthorized si el token es inválido, expiró o el usuario ya no existe.
func (s *SessionService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	claims, err := jwt.Parse(s.secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.PersistenceError("cargar usuario de sesión", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
