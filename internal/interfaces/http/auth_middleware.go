package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// LocalUser clave en c.Locals del usuario autenticado.
const LocalUser = "user"

// sessionResolver lo implementa *auth.SessionService.
type sessionResolver interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// AuthMiddleware toma el token de la cookie de sesión o de un header Bearer, resuelve
// el usuario persistido y lo deja en c.Locals(LocalUser).
func AuthMiddleware(resolver sessionResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			authHeader := c.Get("Authorization")
			if authHeader == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
			}
			token = strings.TrimSpace(parts[1])
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}

		user, err := resolver.Resolve(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "sesión inválida o expirada"})
			}
			return respondError(c, err)
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados. Usar después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este recurso"})
	}
}

// CurrentUser usuario autenticado o nil.
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetUserID devuelve el ID del usuario autenticado (0 si no hay sesión).
func GetUserID(c *fiber.Ctx) int64 {
	if u := CurrentUser(c); u != nil {
		return u.ID
	}
	return 0
}

// GetCompanyID empresa del usuario autenticado (nil para admin).
func GetCompanyID(c *fiber.Ctx) *int64 {
	if u := CurrentUser(c); u != nil {
		return u.CompanyID
	}
	return nil
}

// GetRole rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	if u := CurrentUser(c); u != nil {
		return u.Role
	}
	return ""
}

// companyScope nil para admin (todas las empresas); la empresa propia para usuarios company.
func companyScope(c *fiber.Ctx) *int64 {
	u := CurrentUser(c)
	if u == nil || u.IsAdmin() {
		return nil
	}
	if u.CompanyID == nil {
		// usuario company sin empresa: no ve nada
		none := int64(-1)
		return &none
	}
	return u.CompanyID
}

// listScope como companyScope, pero un admin puede filtrar con ?companyId=.
func listScope(c *fiber.Ctx) (*int64, error) {
	if scope := companyScope(c); scope != nil {
		return scope, nil
	}
	raw := c.Query("companyId")
	if raw == "" {
		return nil, nil
	}
	id, err := parsePositive(raw)
	if err != nil {
		return nil, domain.NewValidationError("companyId", "companyId inválido")
	}
	return &id, nil
}
