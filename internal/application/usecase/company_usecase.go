package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/application/ports"
	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
	"github.com/jhoicas/billing-portal/pkg/brdoc"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo        repository.CompanyRepository
	cnpj        ports.CNPJLookup
	lookupLimit time.Duration
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y el de consulta de CNPJ.
func NewCompanyUseCase(repo repository.CompanyRepository, cnpj ports.CNPJLookup, lookupLimit time.Duration) *CompanyUseCase {
	if lookupLimit <= 0 {
		lookupLimit = 10 * time.Second
	}
	return &CompanyUseCase{repo: repo, cnpj: cnpj, lookupLimit: lookupLimit}
}

// Create crea una nueva empresa. Nombre, documento (CPF o CNPJ) y email son obligatorios.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		Name:              strings.TrimSpace(in.Name),
		Document:          strings.TrimSpace(in.Document),
		Email:             strings.TrimSpace(in.Email),
		Address:           strings.TrimSpace(in.Address),
		StateRegistration: strings.TrimSpace(in.StateRegistration),
		ContactNumber:     strings.TrimSpace(in.ContactNumber),
	}
	if err := validateCompany(company); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, persistence("crear empresa", err)
	}
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

// GetByID obtiene una empresa. Un usuario de empresa solo ve la suya (scope).
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64, scope *int64) (*dto.CompanyResponse, error) {
	if scope != nil && *scope != id {
		return nil, domain.ErrNotFound
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, persistence("obtener empresa", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

// List lista empresas; con scope solo la propia.
func (uc *CompanyUseCase) List(ctx context.Context, scope *int64) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx, scope)
	if err != nil {
		return nil, persistence("listar empresas", err)
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.NewCompanyResponse(c))
	}
	return items, nil
}

// Update aplica una edición parcial.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, persistence("obtener empresa", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&company.Name, in.Name)
	set(&company.Document, in.Document)
	set(&company.Email, in.Email)
	set(&company.Address, in.Address)
	set(&company.StateRegistration, in.StateRegistration)
	set(&company.ContactNumber, in.ContactNumber)
	if err := validateCompany(company); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, persistence("actualizar empresa", err)
	}
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

// Delete elimina la empresa y, en cascada, sus usuarios, cobranzas, notas, contratos y equipos.
func (uc *CompanyUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return persistence("eliminar empresa", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// LookupCNPJ valida el CNPJ y consulta sus datos públicos.
func (uc *CompanyUseCase) LookupCNPJ(ctx context.Context, raw string) (*dto.CNPJLookupResponse, error) {
	if err := brdoc.ValidateCNPJ(raw); err != nil {
		return nil, domain.NewValidationError("cnpj", "CNPJ inválido")
	}
	ctx, cancel := context.WithTimeout(ctx, uc.lookupLimit)
	defer cancel()

	data, err := uc.cnpj.LookupCNPJ(ctx, brdoc.Digits(raw))
	if err != nil {
		if errors.Is(err, ports.ErrCNPJNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("consulta CNPJ: %w", err)
	}
	return data, nil
}

func validateCompany(c *entity.Company) error {
	if c.Name == "" {
		return domain.NewValidationError("name", "nombre requerido")
	}
	if c.Document == "" {
		return domain.NewValidationError("document", "documento requerido")
	}
	if n := len(brdoc.Digits(c.Document)); n != 11 && n != 14 {
		return domain.NewValidationError("document", "debe ser un CPF (11 dígitos) o CNPJ (14 dígitos)")
	}
	if c.Email == "" {
		return domain.NewValidationError("email", "email requerido")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return domain.NewValidationError("email", "email inválido")
	}
	return nil
}
