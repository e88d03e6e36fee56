package dto

import (
	"time"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// LoginRequest credenciales.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token de sesión y usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest alta de usuario por un administrador. Role por defecto: company.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	CompanyID *int64 `json:"companyId"`
}

// ChangePasswordRequest nueva contraseña (mínimo 6 caracteres).
type ChangePasswordRequest struct {
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID                  int64     `json:"id"`
	Username            string    `json:"username"`
	Role                string    `json:"role"`
	CompanyID           *int64    `json:"companyId"`
	ForcePasswordChange bool      `json:"forcePasswordChange"`
	CreatedAt           time.Time `json:"createdAt"`
}

// NewUserResponse mapea la entidad.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:                  u.ID,
		Username:            u.Username,
		Role:                u.Role,
		CompanyID:           u.CompanyID,
		ForcePasswordChange: u.ForcePasswordChange,
		CreatedAt:           u.CreatedAt,
	}
}
