package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-portal/pkg/logger"
)

// RequestLogger registra método, ruta, status y latencia. Las respuestas 5xx salen
// en nivel error con la causa guardada por respondError.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// deja que el ErrorHandler de fiber escriba la respuesta antes de leer el status
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		reqLog := log.WithCompany(GetCompanyID(c))
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
			if cause, ok := c.Locals(LocalError).(error); ok {
				ev = ev.Err(cause)
			} else if chainErr != nil {
				ev = ev.Err(chainErr)
			}
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Int64("user_id", GetUserID(c)).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}
