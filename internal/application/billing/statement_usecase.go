package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/charge"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

// StatementUseCase genera el demostrativo (PDF) de una cobranza.
type StatementUseCase struct {
	charges   repository.ChargeRepository
	companies repository.CompanyRepository
	generator StatementPDFGenerator
	clock     charge.Clock
}

// NewStatementUseCase construye el caso de uso inyectando todas sus dependencias.
func NewStatementUseCase(
	charges repository.ChargeRepository,
	companies repository.CompanyRepository,
	generator StatementPDFGenerator,
	clock charge.Clock,
) *StatementUseCase {
	return &StatementUseCase{charges: charges, companies: companies, generator: generator, clock: clock}
}

// Download devuelve los bytes del PDF y el nombre de archivo sugerido.
//
// Retorna:
//   - domain.ErrNotFound si la cobranza no existe o no pertenece a scope.
func (uc *StatementUseCase) Download(ctx context.Context, id int64, scope *int64) (pdfBytes []byte, filename string, err error) {
	c, err := uc.charges.GetByID(ctx, id)
	if err != nil {
		return nil, "", asPersistence("obtener cobranza", err)
	}
	if c == nil || (scope != nil && c.CompanyID != *scope) {
		return nil, "", domain.ErrNotFound
	}

	company, err := uc.companies.GetByID(ctx, c.CompanyID)
	if err != nil {
		return nil, "", asPersistence("obtener empresa", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	today := uc.clock.Today()
	pdfBytes, err = uc.generator.GenerateChargeStatement(ctx, ChargeStatement{
		Charge:   c,
		Company:  company,
		Status:   charge.EffectiveStatus(c, today),
		IssuedOn: today,
	})
	if err != nil {
		return nil, "", fmt.Errorf("demostrativo: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("cobranca_%d.pdf", c.ID), nil
}
