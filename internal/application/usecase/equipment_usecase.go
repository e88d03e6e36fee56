package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/charge"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

// EquipmentUseCase equipos instalados en las empresas y catálogo de modelos.
type EquipmentUseCase struct {
	repo   repository.EquipmentRepository
	models repository.EquipmentModelRepository
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(repo repository.EquipmentRepository, models repository.EquipmentModelRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, models: models}
}

// Create registra un equipo. Estado por defecto active.
func (uc *EquipmentUseCase) Create(ctx context.Context, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	if in.CompanyID <= 0 {
		return nil, domain.NewValidationError("companyId", "empresa requerida")
	}
	eq := &entity.Equipment{
		CompanyID:    in.CompanyID,
		Name:         strings.TrimSpace(in.Name),
		Model:        strings.TrimSpace(in.Model),
		SerialNumber: strings.TrimSpace(in.SerialNumber),
		Status:       in.Status,
	}
	if eq.Status == "" {
		eq.Status = entity.EquipmentStatusActive
	}
	var err error
	if eq.LastMaintenance, err = optionalDate("lastMaintenance", in.LastMaintenance); err != nil {
		return nil, err
	}
	if eq.NextMaintenance, err = optionalDate("nextMaintenance", in.NextMaintenance); err != nil {
		return nil, err
	}
	if err := validateEquipment(eq); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, eq); err != nil {
		return nil, persistence("crear equipo", err)
	}
	resp := dto.NewEquipmentResponse(eq)
	return &resp, nil
}

// List lista equipos, opcionalmente de una empresa.
func (uc *EquipmentUseCase) List(ctx context.Context, companyID *int64) ([]dto.EquipmentResponse, error) {
	list, err := uc.repo.List(ctx, companyID)
	if err != nil {
		return nil, persistence("listar equipos", err)
	}
	out := make([]dto.EquipmentResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.NewEquipmentResponse(e))
	}
	return out, nil
}

// Update aplica una edición parcial.
func (uc *EquipmentUseCase) Update(ctx context.Context, id int64, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	eq, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, persistence("obtener equipo", err)
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		eq.Name = strings.TrimSpace(*in.Name)
	}
	if in.Model != nil {
		eq.Model = strings.TrimSpace(*in.Model)
	}
	if in.SerialNumber != nil {
		eq.SerialNumber = strings.TrimSpace(*in.SerialNumber)
	}
	if in.Status != nil {
		eq.Status = *in.Status
	}
	if in.LastMaintenance != nil {
		if eq.LastMaintenance, err = optionalDate("lastMaintenance", *in.LastMaintenance); err != nil {
			return nil, err
		}
	}
	if in.NextMaintenance != nil {
		if eq.NextMaintenance, err = optionalDate("nextMaintenance", *in.NextMaintenance); err != nil {
			return nil, err
		}
	}
	if err := validateEquipment(eq); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, eq); err != nil {
		return nil, persistence("actualizar equipo", err)
	}
	resp := dto.NewEquipmentResponse(eq)
	return &resp, nil
}

// Delete elimina un equipo.
func (uc *EquipmentUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return persistence("eliminar equipo", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// CreateModel agrega un modelo al catálogo.
func (uc *EquipmentUseCase) CreateModel(ctx context.Context, in dto.CreateEquipmentModelRequest) (*dto.EquipmentModelResponse, error) {
	m := &entity.EquipmentModel{
		Brand:       strings.TrimSpace(in.Brand),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
	}
	if m.Name == "" {
		return nil, domain.NewValidationError("name", "nombre requerido")
	}
	if err := uc.models.Create(ctx, m); err != nil {
		return nil, persistence("crear modelo", err)
	}
	resp := dto.NewEquipmentModelResponse(m)
	return &resp, nil
}

// ListModels lista el catálogo de modelos.
func (uc *EquipmentUseCase) ListModels(ctx context.Context) ([]dto.EquipmentModelResponse, error) {
	list, err := uc.models.List(ctx)
	if err != nil {
		return nil, persistence("listar modelos", err)
	}
	out := make([]dto.EquipmentModelResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.NewEquipmentModelResponse(m))
	}
	return out, nil
}

// DeleteModel elimina un modelo del catálogo.
func (uc *EquipmentUseCase) DeleteModel(ctx context.Context, id int64) error {
	ok, err := uc.models.Delete(ctx, id)
	if err != nil {
		return persistence("eliminar modelo", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func validateEquipment(eq *entity.Equipment) error {
	if eq.Name == "" {
		return domain.NewValidationError("name", "nombre requerido")
	}
	if !entity.ValidEquipmentStatus(eq.Status) {
		return domain.NewValidationError("status", "debe ser active, maintenance o inactive")
	}
	return nil
}

// optionalDate: "" significa sin fecha.
func optionalDate(field, s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := charge.ParseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
