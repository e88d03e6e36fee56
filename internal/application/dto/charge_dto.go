package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-portal/internal/domain/charge"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// InstallmentRequest vencimiento y boleto explícitos de una cuota.
type InstallmentRequest struct {
	DueDate    string `json:"dueDate"`
	BoletoFile string `json:"boletoFile"`
}

// CreateChargeRequest plantilla de cobranza más parámetros de repetición opcionales.
// Amount acepta número o string JSON.
type CreateChargeRequest struct {
	CompanyID      int64                `json:"companyId"`
	Title          string               `json:"title"`
	Amount         decimal.Decimal      `json:"amount"`
	DueDate        string               `json:"dueDate"`
	Status         string               `json:"status"`
	BoletoFile     string               `json:"boletoFile"`
	InvoiceFile    string               `json:"invoiceFile"`
	PaymentMethod  string               `json:"paymentMethod"`
	PaymentDate    string               `json:"paymentDate"`
	RecurringCount *int                 `json:"recurringCount"`
	IntervalDays   *int                 `json:"intervalDays"`
	Installments   []InstallmentRequest `json:"installments"`
}

// UpdateChargeRequest actualización parcial; los campos nil no se tocan.
type UpdateChargeRequest struct {
	Title         *string          `json:"title"`
	Amount        *decimal.Decimal `json:"amount"`
	DueDate       *string          `json:"dueDate"`
	Status        *string          `json:"status"`
	BoletoFile    *string          `json:"boletoFile"`
	InvoiceFile   *string          `json:"invoiceFile"`
	PaymentMethod *string          `json:"paymentMethod"`
	PaymentDate   *string          `json:"paymentDate"`
}

// PayChargeRequest registro de pago.
type PayChargeRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	PaymentDate   string `json:"paymentDate"`
}

// ChargeResponse salida de una cobranza. Status es el estado efectivo (overdue derivado).
type ChargeResponse struct {
	ID            int64            `json:"id"`
	CompanyID     int64            `json:"companyId"`
	Title         string           `json:"title"`
	Amount        string           `json:"amount"`
	DueDate       string           `json:"dueDate"`
	Status        string           `json:"status"`
	BoletoFile    *string          `json:"boletoFile"`
	InvoiceFile   *string          `json:"invoiceFile"`
	PaymentMethod *string          `json:"paymentMethod"`
	PaymentDate   *string          `json:"paymentDate"`
	CreatedAt     time.Time        `json:"createdAt"`
	Company       *CompanyResponse `json:"company,omitempty"`
}

// NewChargeResponse mapea la entidad; today define si una cobranza pendiente se informa vencida.
func NewChargeResponse(c *entity.Charge, today time.Time) ChargeResponse {
	return ChargeResponse{
		ID:            c.ID,
		CompanyID:     c.CompanyID,
		Title:         c.Title,
		Amount:        c.Amount.StringFixed(2),
		DueDate:       c.DueDate.Format(charge.DateLayout),
		Status:        charge.EffectiveStatus(c, today),
		BoletoFile:    optString(c.BoletoFile),
		InvoiceFile:   optString(c.InvoiceFile),
		PaymentMethod: optString(c.PaymentMethod),
		PaymentDate:   optDate(c.PaymentDate),
		CreatedAt:     c.CreatedAt,
	}
}
