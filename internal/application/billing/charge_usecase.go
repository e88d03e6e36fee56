package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/charge"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
	"github.com/jhoicas/billing-portal/pkg/logger"
)

// ChargeUseCase ciclo de vida de cobranzas: alta (simple o en cuotas), pago, edición y consulta.
type ChargeUseCase struct {
	repo  repository.ChargeRepository
	tx    ChargeTxRunner
	clock charge.Clock
	log   *logger.Logger
}

// NewChargeUseCase construye el caso de uso.
func NewChargeUseCase(repo repository.ChargeRepository, tx ChargeTxRunner, clock charge.Clock, log *logger.Logger) *ChargeUseCase {
	return &ChargeUseCase{repo: repo, tx: tx, clock: clock, log: log.Component("charges")}
}

// Create valida la plantilla, genera las cuotas y las inserta en una sola transacción.
// Devuelve las cobranzas en orden de generación.
func (uc *ChargeUseCase) Create(ctx context.Context, in dto.CreateChargeRequest) ([]dto.ChargeResponse, error) {
	tpl, rec, err := templateFromRequest(in)
	if err != nil {
		return nil, err
	}
	charges, err := charge.Generate(tpl, rec)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunCharges(ctx, func(repo repository.ChargeRepository) error {
		for i, c := range charges {
			if err := repo.Create(ctx, c); err != nil {
				return fmt.Errorf("cuota %d/%d: %w", i+1, len(charges), err)
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Int64("company_id", tpl.CompanyID).Int("count", rec.Count).Msg("alta de cobranzas revertida")
		return nil, asPersistence("crear cobranzas", err)
	}

	uc.log.Info().Int64("company_id", tpl.CompanyID).Int("count", len(charges)).Msg("cobranzas creadas")
	today := uc.clock.Today()
	out := make([]dto.ChargeResponse, 0, len(charges))
	for _, c := range charges {
		out = append(out, dto.NewChargeResponse(c, today))
	}
	return out, nil
}

// Pay registra el pago. Pagar una cobranza ya paga reemplaza método y fecha.
func (uc *ChargeUseCase) Pay(ctx context.Context, id int64, in dto.PayChargeRequest) (*dto.ChargeResponse, error) {
	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		return nil, domain.NewValidationError("paymentMethod", "método de pago requerido")
	}
	if strings.TrimSpace(in.PaymentDate) == "" {
		return nil, domain.NewValidationError("paymentDate", "fecha de pago requerida")
	}
	paidOn, err := charge.ParseDate("paymentDate", in.PaymentDate)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, asPersistence("obtener cobranza", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if existing.Status == entity.ChargeStatusPaid {
		uc.log.Warn().Int64("charge_id", id).
			Str("previous_method", existing.PaymentMethod).
			Str("method", method).
			Msg("cobranza ya paga: se reemplazan método y fecha de pago")
	}

	updated, err := uc.repo.MarkPaid(ctx, id, method, paidOn)
	if err != nil {
		return nil, asPersistence("registrar pago", err)
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	uc.log.Info().Int64("charge_id", id).Str("method", method).Msg("pago registrado")
	resp := dto.NewChargeResponse(updated, uc.clock.Today())
	return &resp, nil
}

// Get devuelve una cobranza. Con scope no nil solo se ven las de esa empresa.
func (uc *ChargeUseCase) Get(ctx context.Context, id int64, scope *int64) (*dto.ChargeResponse, error) {
	c, err := uc.load(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	resp := dto.NewChargeResponse(c, uc.clock.Today())
	return &resp, nil
}

// List lista cobranzas con su empresa, más recientes primero.
func (uc *ChargeUseCase) List(ctx context.Context, companyID *int64) ([]dto.ChargeResponse, error) {
	list, err := uc.repo.List(ctx, companyID)
	if err != nil {
		return nil, asPersistence("listar cobranzas", err)
	}
	today := uc.clock.Today()
	out := make([]dto.ChargeResponse, 0, len(list))
	for _, c := range list {
		resp := dto.NewChargeResponse(&c.Charge, today)
		company := dto.NewCompanyResponse(&c.Company)
		resp.Company = &company
		out = append(out, resp)
	}
	return out, nil
}

// Update aplica una edición parcial. Un estado distinto de paid borra los datos de pago;
// paid exige método y fecha (ya guardados o enviados).
func (uc *ChargeUseCase) Update(ctx context.Context, id int64, in dto.UpdateChargeRequest) (*dto.ChargeResponse, error) {
	c, err := uc.load(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.NewValidationError("title", "título requerido")
		}
		c.Title = title
	}
	if in.Amount != nil {
		amount, err := charge.NormalizeAmount(*in.Amount)
		if err != nil {
			return nil, err
		}
		c.Amount = amount
	}
	if in.DueDate != nil {
		d, err := charge.ParseDate("dueDate", *in.DueDate)
		if err != nil {
			return nil, err
		}
		c.DueDate = d
	}
	if in.BoletoFile != nil {
		c.BoletoFile = *in.BoletoFile
	}
	if in.InvoiceFile != nil {
		c.InvoiceFile = *in.InvoiceFile
	}
	if in.PaymentMethod != nil {
		c.PaymentMethod = strings.TrimSpace(*in.PaymentMethod)
	}
	if in.PaymentDate != nil {
		if strings.TrimSpace(*in.PaymentDate) == "" {
			c.PaymentDate = nil
		} else {
			d, err := charge.ParseDate("paymentDate", *in.PaymentDate)
			if err != nil {
				return nil, err
			}
			c.PaymentDate = &d
		}
	}
	if in.Status != nil {
		if !entity.ValidChargeStatus(*in.Status) {
			return nil, domain.NewValidationError("status", fmt.Sprintf("estado desconocido %q", *in.Status))
		}
		c.Status = *in.Status
	}

	if c.Status == entity.ChargeStatusPaid {
		if c.PaymentMethod == "" {
			return nil, domain.NewValidationError("paymentMethod", "requerido para cobranzas pagas")
		}
		if c.PaymentDate == nil {
			return nil, domain.NewValidationError("paymentDate", "requerido para cobranzas pagas")
		}
	} else {
		c.PaymentMethod = ""
		c.PaymentDate = nil
	}

	updated, err := uc.repo.Update(ctx, c)
	if err != nil {
		return nil, asPersistence("actualizar cobranza", err)
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewChargeResponse(updated, uc.clock.Today())
	return &resp, nil
}

// Delete elimina una cobranza (y sus notas fiscales en cascada).
func (uc *ChargeUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return asPersistence("eliminar cobranza", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.log.Info().Int64("charge_id", id).Msg("cobranza eliminada")
	return nil
}

func (uc *ChargeUseCase) load(ctx context.Context, id int64, scope *int64) (*entity.Charge, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, asPersistence("obtener cobranza", err)
	}
	if c == nil || (scope != nil && c.CompanyID != *scope) {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func templateFromRequest(in dto.CreateChargeRequest) (charge.Template, charge.Recurrence, error) {
	tpl := charge.Template{
		CompanyID:     in.CompanyID,
		Title:         in.Title,
		Amount:        in.Amount,
		Status:        in.Status,
		BoletoFile:    in.BoletoFile,
		InvoiceFile:   in.InvoiceFile,
		PaymentMethod: in.PaymentMethod,
	}
	rec := charge.SingleCharge()

	if strings.TrimSpace(in.DueDate) == "" {
		return tpl, rec, domain.NewValidationError("dueDate", "fecha de vencimiento requerida")
	}
	due, err := charge.ParseDate("dueDate", in.DueDate)
	if err != nil {
		return tpl, rec, err
	}
	tpl.DueDate = due
	if strings.TrimSpace(in.PaymentDate) != "" {
		paid, err := charge.ParseDate("paymentDate", in.PaymentDate)
		if err != nil {
			return tpl, rec, err
		}
		tpl.PaymentDate = &paid
	}

	if in.RecurringCount != nil {
		rec.Count = *in.RecurringCount
	}
	if in.IntervalDays != nil {
		rec.IntervalDays = *in.IntervalDays
	}
	for i, inst := range in.Installments {
		field := fmt.Sprintf("installments[%d].dueDate", i)
		if strings.TrimSpace(inst.DueDate) == "" {
			return tpl, rec, domain.NewValidationError(field, "fecha de vencimiento requerida")
		}
		d, err := charge.ParseDate(field, inst.DueDate)
		if err != nil {
			return tpl, rec, err
		}
		rec.Installments = append(rec.Installments, charge.Installment{DueDate: d, BoletoFile: inst.BoletoFile})
	}
	return tpl, rec, nil
}

// asPersistence marca err como falla de persistencia salvo que ya sea un error de dominio.
func asPersistence(op string, err error) error {
	if errors.Is(err, domain.ErrPersistence) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return err
	}
	return domain.PersistenceError(op, err)
}
