// Package charge contiene la lógica pura del ciclo de vida de cobranzas:
// generación de cuotas a partir de una plantilla y derivación del estado vencido.
package charge

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

const (
	// MaxInstallments cantidad máxima de cuotas por solicitud.
	MaxInstallments = 12
	// DefaultIntervalDays intervalo entre vencimientos cuando no se indica.
	DefaultIntervalDays = 30
	// DateLayout formato de fechas de calendario (sin hora).
	DateLayout = "2006-01-02"
)

// maxAmount primer valor que no entra en la columna NUMERIC(10,2).
var maxAmount = decimal.New(1, 8)

// NormalizeAmount redondea a centavos y exige 0 < monto < 100.000.000.
func NormalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if !rounded.IsPositive() {
		return decimal.Zero, domain.NewValidationError("amount", "el monto debe ser mayor que cero")
	}
	if rounded.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, domain.NewValidationError("amount", "el monto excede el máximo permitido")
	}
	return rounded, nil
}

// Template datos comunes a todas las cuotas generadas.
type Template struct {
	CompanyID     int64
	Title         string
	Amount        decimal.Decimal
	DueDate       time.Time
	Status        string
	BoletoFile    string
	InvoiceFile   string
	PaymentMethod string
	PaymentDate   *time.Time
}

// Installment vencimiento y boleto explícitos para una cuota.
type Installment struct {
	DueDate    time.Time
	BoletoFile string
}

// Recurrence parámetros de repetición. Installments, si viene, no puede ser más largo que Count.
type Recurrence struct {
	Count        int
	IntervalDays int
	Installments []Installment
}

// SingleCharge recurrencia de una sola cobranza.
func SingleCharge() Recurrence {
	return Recurrence{Count: 1, IntervalDays: DefaultIntervalDays}
}

// Validate verifica la plantilla antes de generar cualquier fila.
func (t Template) Validate() error {
	if t.CompanyID <= 0 {
		return domain.NewValidationError("companyId", "empresa requerida")
	}
	if strings.TrimSpace(t.Title) == "" {
		return domain.NewValidationError("title", "título requerido")
	}
	if _, err := NormalizeAmount(t.Amount); err != nil {
		return err
	}
	if t.DueDate.IsZero() {
		return domain.NewValidationError("dueDate", "fecha de vencimiento requerida")
	}
	status := t.status()
	if !entity.ValidChargeStatus(status) {
		return domain.NewValidationError("status", fmt.Sprintf("estado desconocido %q", status))
	}
	hasPayment := strings.TrimSpace(t.PaymentMethod) != "" || t.PaymentDate != nil
	if status == entity.ChargeStatusPaid {
		if strings.TrimSpace(t.PaymentMethod) == "" {
			return domain.NewValidationError("paymentMethod", "requerido para cobranzas pagas")
		}
		if t.PaymentDate == nil {
			return domain.NewValidationError("paymentDate", "requerido para cobranzas pagas")
		}
	} else if hasPayment {
		return domain.NewValidationError("status", "datos de pago solo se admiten con estado paid")
	}
	return nil
}

func (t Template) status() string {
	if t.Status == "" {
		return entity.ChargeStatusPending
	}
	return t.Status
}

// Validate verifica cantidad, intervalo y cuotas explícitas.
func (r Recurrence) Validate() error {
	if r.Count < 1 || r.Count > MaxInstallments {
		return domain.NewValidationError("recurringCount", fmt.Sprintf("debe estar entre 1 y %d", MaxInstallments))
	}
	if r.IntervalDays < 1 {
		return domain.NewValidationError("intervalDays", "debe ser al menos 1")
	}
	if len(r.Installments) > r.Count {
		return domain.NewValidationError("installments", fmt.Sprintf("se recibieron %d cuotas para %d repeticiones", len(r.Installments), r.Count))
	}
	for i, in := range r.Installments {
		if in.DueDate.IsZero() {
			return domain.NewValidationError(fmt.Sprintf("installments[%d].dueDate", i), "fecha de vencimiento requerida")
		}
	}
	return nil
}

// Generate produce las cobranzas a persistir, en orden de generación.
// Con Count = 1 se usa la plantilla tal cual; con Count > 1 cada título lleva el sufijo "(i/N)".
func Generate(t Template, r Recurrence) ([]*entity.Charge, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(t.Title)
	out := make([]*entity.Charge, 0, r.Count)
	for i := 0; i < r.Count; i++ {
		c := &entity.Charge{
			CompanyID:     t.CompanyID,
			Title:         title,
			Amount:        t.Amount.Round(2),
			DueDate:       t.DueDate,
			Status:        t.status(),
			BoletoFile:    t.BoletoFile,
			InvoiceFile:   t.InvoiceFile,
			PaymentMethod: strings.TrimSpace(t.PaymentMethod),
			PaymentDate:   t.PaymentDate,
		}
		if r.Count > 1 {
			c.Title = fmt.Sprintf("%s (%d/%d)", title, i+1, r.Count)
			if i < len(r.Installments) {
				c.DueDate = r.Installments[i].DueDate
				if r.Installments[i].BoletoFile != "" {
					c.BoletoFile = r.Installments[i].BoletoFile
				}
			} else {
				c.DueDate = t.DueDate.AddDate(0, 0, i*r.IntervalDays)
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// EffectiveStatus devuelve overdue para una cobranza pendiente cuyo vencimiento es anterior a today.
// El estado persistido no se modifica.
func EffectiveStatus(c *entity.Charge, today time.Time) string {
	if c.Status == entity.ChargeStatusPending && c.DueDate.Before(today) {
		return entity.ChargeStatusOverdue
	}
	return c.Status
}

// Today fecha de calendario actual en loc, expresada a medianoche UTC como las columnas DATE.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate interpreta una fecha YYYY-MM-DD. field se usa en el ValidationError.
func ParseDate(field, s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "fecha inválida, use YYYY-MM-DD")
	}
	return d, nil
}

// Clock resuelve "hoy" en la zona horaria del negocio.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// NewClock reloj real en loc.
func NewClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

// Today fecha de calendario actual según el reloj.
func (c Clock) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return Today(now(), c.Location)
}
