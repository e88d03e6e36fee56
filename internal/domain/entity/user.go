package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleCompany = "company"
)

// User usuario del portal. Un usuario con rol company siempre tiene CompanyID.
type User struct {
	ID                  int64
	Username            string
	PasswordHash        string
	Role                string
	CompanyID           *int64
	ForcePasswordChange bool
	CreatedAt           time.Time
}

// IsAdmin indica si el usuario administra todas las empresas.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// ValidRole informa si el rol es conocido.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCompany
}
