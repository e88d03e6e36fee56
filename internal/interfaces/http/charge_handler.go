package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-portal/internal/application/billing"
	"github.com/jhoicas/billing-portal/internal/application/dto"
)

// ChargeHandler cobranzas: alta en cuotas, pago, edición, consulta y demostrativo PDF.
type ChargeHandler struct {
	uc        *billing.ChargeUseCase
	statement *billing.StatementUseCase
}

// NewChargeHandler construye el handler.
func NewChargeHandler(uc *billing.ChargeUseCase, statement *billing.StatementUseCase) *ChargeHandler {
	return &ChargeHandler{uc: uc, statement: statement}
}

// Create godoc
// @Summary      Crear cobranza o serie de cuotas
// @Description  recurringCount = 1 devuelve un objeto; recurringCount > 1 devuelve un array en orden de generación.
// @Tags         charges
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChargeRequest  true  "Plantilla y repetición"
// @Success      201   {object}  dto.ChargeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/charges [post]
func (h *ChargeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChargeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	if len(out) == 1 {
		return c.Status(fiber.StatusCreated).JSON(out[0])
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Pay godoc
// @Summary      Registrar pago
// @Tags         charges
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID de la cobranza"
// @Param        body  body  dto.PayChargeRequest  true  "paymentMethod, paymentDate"
// @Success      200   {object}  dto.ChargeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/charges/{id}/pay [patch]
func (h *ChargeHandler) Pay(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.PayChargeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Pay(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cobranzas
// @Tags         charges
// @Produce      json
// @Param        companyId  query  int  false  "Filtrar por empresa (solo admin)"
// @Success      200  {array}  dto.ChargeResponse
// @Router       /api/charges [get]
func (h *ChargeHandler) List(c *fiber.Ctx) error {
	scope, err := listScope(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), scope)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cobranza
// @Tags         charges
// @Produce      json
// @Param        id   path  int  true  "ID de la cobranza"
// @Success      200  {object}  dto.ChargeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/charges/{id} [get]
func (h *ChargeHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id, companyScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar cobranza
// @Tags         charges
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID de la cobranza"
// @Param        body  body  dto.UpdateChargeRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ChargeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/charges/{id} [patch]
func (h *ChargeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateChargeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cobranza
// @Tags         charges
// @Param        id   path  int  true  "ID de la cobranza"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/charges/{id} [delete]
func (h *ChargeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Statement godoc
// @Summary      Demostrativo de cobranza en PDF
// @Tags         charges
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la cobranza"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/charges/{id}/statement [get]
func (h *ChargeHandler) Statement(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	pdf, filename, err := h.statement.Download(c.UserContext(), id, companyScope(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
