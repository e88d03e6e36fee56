package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/application/usecase"
)

// UploadHandler recibe archivos multipart (campo "file").
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload POST /api/upload → {url}
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ningún archivo enviado", Field: "file"})
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	out, err := h.uc.Upload(c.UserContext(), fh.Filename, fh.Size, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
