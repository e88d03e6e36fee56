package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/application/usecase"
)

// EquipmentHandler equipos por empresa y catálogo de modelos.
type EquipmentHandler struct {
	uc *usecase.EquipmentUseCase
}

func NewEquipmentHandler(uc *usecase.EquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc}
}

// Create POST /api/equipment
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/equipment?companyId=
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
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

// Update PATCH /api/equipment/:id
func (h *EquipmentHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/equipment/:id
func (h *EquipmentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateModel POST /api/equipment-models
func (h *EquipmentHandler) CreateModel(c *fiber.Ctx) error {
	var in dto.CreateEquipmentModelRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateModel(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListModels GET /api/equipment-models
func (h *EquipmentHandler) ListModels(c *fiber.Ctx) error {
	out, err := h.uc.ListModels(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteModel DELETE /api/equipment-models/:id
func (h *EquipmentHandler) DeleteModel(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteModel(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
