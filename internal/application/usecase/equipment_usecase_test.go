package usecase_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/application/usecase"
	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository/repomock"
)

func TestEquipmentUseCase_Create_EstadoPorDefecto(t *testing.T) {
	repo := &repomock.EquipmentRepo{}
	uc := usecase.NewEquipmentUseCase(repo, &repomock.EquipmentModelRepo{})
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.Equipment) bool {
		return e.Status == entity.EquipmentStatusActive && e.NextMaintenance != nil && e.LastMaintenance == nil
	})).Return(nil)

	out, err := uc.Create(context.Background(), dto.CreateEquipmentRequest{
		CompanyID: 7, Name: "Impressora", NextMaintenance: "2026-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EquipmentStatusActive, out.Status)
	require.NotNil(t, out.NextMaintenance)
	assert.Equal(t, "2026-06-01", *out.NextMaintenance)
}

func TestEquipmentUseCase_Create_EstadoInvalido(t *testing.T) {
	uc := usecase.NewEquipmentUseCase(&repomock.EquipmentRepo{}, &repomock.EquipmentModelRepo{})
	_, err := uc.Create(context.Background(), dto.CreateEquipmentRequest{CompanyID: 7, Name: "X", Status: "broken"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)
}

func TestEquipmentUseCase_Update_BorraFecha(t *testing.T) {
	repo := &repomock.EquipmentRepo{}
	uc := usecase.NewEquipmentUseCase(repo, &repomock.EquipmentModelRepo{})
	existing := &entity.Equipment{ID: 1, CompanyID: 7, Name: "X", Status: entity.EquipmentStatusActive}
	repo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	maint := entity.EquipmentStatusMaintenance
	empty := ""
	out, err := uc.Update(context.Background(), 1, dto.UpdateEquipmentRequest{Status: &maint, NextMaintenance: &empty})
	require.NoError(t, err)
	assert.Equal(t, entity.EquipmentStatusMaintenance, out.Status)
	assert.Nil(t, out.NextMaintenance)
}

func TestEquipmentUseCase_Modelos(t *testing.T) {
	models := &repomock.EquipmentModelRepo{}
	uc := usecase.NewEquipmentUseCase(&repomock.EquipmentRepo{}, models)
	models.On("Create", mock.Anything, mock.Anything).Return(nil)
	models.On("Delete", mock.Anything, int64(3)).Return(false, nil)

	_, err := uc.CreateModel(context.Background(), dto.CreateEquipmentModelRequest{Brand: "HP"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.CreateModel(context.Background(), dto.CreateEquipmentModelRequest{Brand: "HP", Name: "LaserJet"})
	require.NoError(t, err)
	assert.Equal(t, "LaserJet", out.Name)

	assert.ErrorIs(t, uc.DeleteModel(context.Background(), 3), domain.ErrNotFound)
}

func TestContractUseCase_Create_TipoInvalido(t *testing.T) {
	repo := &repomock.ContractRepo{}
	uc := usecase.NewContractUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateContractRequest{CompanyID: 7, Type: "rental", Duration: "12 meses"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "type", ve.Field)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	out, err := uc.Create(context.Background(), dto.CreateContractRequest{CompanyID: 7, Type: entity.ContractTypeEquipmentLease, Duration: "12 meses"})
	require.NoError(t, err)
	assert.Nil(t, out.FileURL)
}

func TestContractUseCase_GetByID_Scope(t *testing.T) {
	repo := &repomock.ContractRepo{}
	uc := usecase.NewContractUseCase(repo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&entity.Contract{ID: 1, CompanyID: 7}, nil)

	other := int64(8)
	_, err := uc.GetByID(context.Background(), 1, &other)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	own := int64(7)
	out, err := uc.GetByID(context.Background(), 1, &own)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
}

type memStore struct {
	name string
	body []byte
}

func (s *memStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.name, s.body = name, b
	return "/uploads/x-" + name, nil
}

func TestUploadUseCase(t *testing.T) {
	store := &memStore{}
	uc := usecase.NewUploadUseCase(store, 10)

	out, err := uc.Upload(context.Background(), "boleto.pdf", 4, bytes.NewReader([]byte("%PDF")))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/x-boleto.pdf", out.URL)
	assert.Equal(t, []byte("%PDF"), store.body)

	_, err = uc.Upload(context.Background(), "grande.pdf", 11, bytes.NewReader(nil))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upload(context.Background(), "", 1, bytes.NewReader(nil))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
