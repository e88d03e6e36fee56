package billing

import (
	"context"
	"time"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

// ChargeTxRunner ejecuta fn dentro de una transacción con un repositorio de cobranzas
// atado a ella. Si fn devuelve error se hace rollback de todo lo escrito.
type ChargeTxRunner interface {
	RunCharges(ctx context.Context, fn func(charges repository.ChargeRepository) error) error
}

// ChargeStatement datos del demostrativo de una cobranza.
type ChargeStatement struct {
	Charge   *entity.Charge
	Company  *entity.Company
	Status   string // estado efectivo
	IssuedOn time.Time
}

// StatementPDFGenerator renderiza el demostrativo de cobranza.
type StatementPDFGenerator interface {
	GenerateChargeStatement(ctx context.Context, st ChargeStatement) ([]byte, error)
}
