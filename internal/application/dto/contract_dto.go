package dto

import (
	"time"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// CreateContractRequest alta de contrato.
type CreateContractRequest struct {
	CompanyID int64  `json:"companyId"`
	Type      string `json:"type"`
	Duration  string `json:"duration"`
	FileURL   string `json:"fileUrl"`
}

// ContractResponse salida de un contrato.
type ContractResponse struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"companyId"`
	Type      string    `json:"type"`
	Duration  string    `json:"duration"`
	FileURL   *string   `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContractResponse mapea la entidad.
func NewContractResponse(c *entity.Contract) ContractResponse {
	return ContractResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Type:      c.Type,
		Duration:  c.Duration,
		FileURL:   optString(c.FileURL),
		CreatedAt: c.CreatedAt,
	}
}
