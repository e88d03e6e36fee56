package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

// ContractUseCase contratos de servicio y de locación de equipos.
type ContractUseCase struct {
	repo repository.ContractRepository
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(repo repository.ContractRepository) *ContractUseCase {
	return &ContractUseCase{repo: repo}
}

// Create registra un contrato.
func (uc *ContractUseCase) Create(ctx context.Context, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if in.CompanyID <= 0 {
		return nil, domain.NewValidationError("companyId", "empresa requerida")
	}
	if !entity.ValidContractType(in.Type) {
		return nil, domain.NewValidationError("type", "debe ser service o equipment_lease")
	}
	duration := strings.TrimSpace(in.Duration)
	if duration == "" {
		return nil, domain.NewValidationError("duration", "duración requerida")
	}
	c := &entity.Contract{
		CompanyID: in.CompanyID,
		Type:      in.Type,
		Duration:  duration,
		FileURL:   strings.TrimSpace(in.FileURL),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, persistence("crear contrato", err)
	}
	resp := dto.NewContractResponse(c)
	return &resp, nil
}

// GetByID obtiene un contrato dentro del scope del caller.
func (uc *ContractUseCase) GetByID(ctx context.Context, id int64, scope *int64) (*dto.ContractResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, persistence("obtener contrato", err)
	}
	if c == nil || (scope != nil && c.CompanyID != *scope) {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewContractResponse(c)
	return &resp, nil
}

// List lista contratos, opcionalmente de una empresa.
func (uc *ContractUseCase) List(ctx context.Context, companyID *int64) ([]dto.ContractResponse, error) {
	list, err := uc.repo.List(ctx, companyID)
	if err != nil {
		return nil, persistence("listar contratos", err)
	}
	out := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewContractResponse(c))
	}
	return out, nil
}

// Delete elimina un contrato.
func (uc *ContractUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return persistence("eliminar contrato", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
