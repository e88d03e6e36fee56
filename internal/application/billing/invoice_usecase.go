package billing

import (
	"context"
	"strings"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/charge"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

// InvoiceUseCase notas fiscales vinculadas a cobranzas.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	charges  repository.ChargeRepository
	clock    charge.Clock
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, charges repository.ChargeRepository, clock charge.Clock) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, charges: charges, clock: clock}
}

// Create registra una nota fiscal. La empresa se toma de la cobranza; si el caller envía
// otra, se rechaza.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ChargeID <= 0 {
		return nil, domain.NewValidationError("chargeId", "cobranza requerida")
	}
	fileURL := strings.TrimSpace(in.FileURL)
	if fileURL == "" {
		return nil, domain.NewValidationError("fileUrl", "archivo requerido")
	}
	c, err := uc.charges.GetByID(ctx, in.ChargeID)
	if err != nil {
		return nil, asPersistence("obtener cobranza", err)
	}
	if c == nil {
		return nil, domain.NewValidationError("chargeId", "la cobranza no existe")
	}
	if in.CompanyID != 0 && in.CompanyID != c.CompanyID {
		return nil, domain.NewValidationError("companyId", "no coincide con la empresa de la cobranza")
	}

	inv := &entity.Invoice{ChargeID: c.ID, CompanyID: c.CompanyID, FileURL: fileURL}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, asPersistence("crear nota fiscal", err)
	}
	resp := dto.NewInvoiceResponse(inv)
	return &resp, nil
}

// List lista notas fiscales con su cobranza y empresa.
func (uc *InvoiceUseCase) List(ctx context.Context, companyID *int64) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoices.List(ctx, companyID)
	if err != nil {
		return nil, asPersistence("listar notas fiscales", err)
	}
	today := uc.clock.Today()
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		resp := dto.NewInvoiceResponse(&inv.Invoice)
		ch := dto.NewChargeResponse(&inv.Charge, today)
		co := dto.NewCompanyResponse(&inv.Company)
		resp.Charge = &ch
		resp.Company = &co
		out = append(out, resp)
	}
	return out, nil
}

// Delete elimina una nota fiscal.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.invoices.Delete(ctx, id)
	if err != nil {
		return asPersistence("eliminar nota fiscal", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
