package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-portal/internal/application/dto"
)

// RequirePasswordChanged bloquea las rutas de datos mientras el usuario tenga
// forcePasswordChange activo. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 PASSWORD_CHANGE_REQUIRED → debe pasar antes por POST /api/change-password.
//   - Sin usuario en el contexto responde 401.
func RequirePasswordChanged() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "sesión requerida",
			})
		}
		if user.ForcePasswordChange {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PASSWORD_CHANGE_REQUIRED",
				Message: "debe cambiar la contraseña antes de continuar",
			})
		}
		return c.Next()
	}
}
