package entity

import "time"

// Invoice nota fiscal vinculada a una cobranza. CompanyID coincide con el de la cobranza.
type Invoice struct {
	ID        int64
	ChargeID  int64
	CompanyID int64
	FileURL   string
	CreatedAt time.Time
}

// InvoiceWithRefs nota fiscal con su cobranza y su empresa (listados).
type InvoiceWithRefs struct {
	Invoice
	Charge  Charge
	Company Company
}
