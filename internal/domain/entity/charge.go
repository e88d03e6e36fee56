package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cobranza.
const (
	ChargeStatusPending = "pending"
	ChargeStatusPaid    = "paid"
	ChargeStatusOverdue = "overdue"
)

// Charge cobranza (cuota) de una empresa.
// PaymentMethod y PaymentDate están presentes solo cuando Status es paid.
type Charge struct {
	ID            int64
	CompanyID     int64
	Title         string
	Amount        decimal.Decimal
	DueDate       time.Time
	Status        string
	BoletoFile    string
	InvoiceFile   string
	PaymentMethod string
	PaymentDate   *time.Time
	CreatedAt     time.Time
}

// ChargeWithCompany cobranza junto a su empresa (listados).
type ChargeWithCompany struct {
	Charge
	Company Company
}

// ValidChargeStatus informa si el estado es conocido.
func ValidChargeStatus(s string) bool {
	switch s {
	case ChargeStatusPending, ChargeStatusPaid, ChargeStatusOverdue:
		return true
	}
	return false
}
