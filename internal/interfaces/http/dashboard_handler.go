package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/billing-portal/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del panel.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen de cobranzas.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummary (totalAmount, paidAmount, pendingAmount, overdueAmount,
// overdueCount, chargeCount, activeCompanies, revenueByMonth[12]).
// Un usuario company solo ve los números de su empresa.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), companyScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
