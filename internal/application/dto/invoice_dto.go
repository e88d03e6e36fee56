package dto

import (
	"time"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// CreateInvoiceRequest vincula una nota fiscal a una cobranza. CompanyID es opcional
// y, si viene, debe coincidir con el de la cobranza.
type CreateInvoiceRequest struct {
	ChargeID  int64  `json:"chargeId"`
	CompanyID int64  `json:"companyId"`
	FileURL   string `json:"fileUrl"`
}

// InvoiceResponse salida de una nota fiscal; Charge y Company solo en listados.
type InvoiceResponse struct {
	ID        int64            `json:"id"`
	ChargeID  int64            `json:"chargeId"`
	CompanyID int64            `json:"companyId"`
	FileURL   string           `json:"fileUrl"`
	CreatedAt time.Time        `json:"createdAt"`
	Charge    *ChargeResponse  `json:"charge,omitempty"`
	Company   *CompanyResponse `json:"company,omitempty"`
}

// NewInvoiceResponse mapea la entidad.
func NewInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        inv.ID,
		ChargeID:  inv.ChargeID,
		CompanyID: inv.CompanyID,
		FileURL:   inv.FileURL,
		CreatedAt: inv.CreatedAt,
	}
}
