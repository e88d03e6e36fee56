// Package repomock dobles de prueba (testify/mock) para los puertos de repository.
package repomock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

var (
	_ repository.CompanyRepository        = (*CompanyRepo)(nil)
	_ repository.UserRepository           = (*UserRepo)(nil)
	_ repository.ChargeRepository         = (*ChargeRepo)(nil)
	_ repository.InvoiceRepository        = (*InvoiceRepo)(nil)
	_ repository.ContractRepository       = (*ContractRepo)(nil)
	_ repository.EquipmentRepository      = (*EquipmentRepo)(nil)
	_ repository.EquipmentModelRepository = (*EquipmentModelRepo)(nil)
	_ repository.DashboardRepository      = (*DashboardRepo)(nil)
)

// ── Company ──────────────────────────────────────────────────────────────────

type CompanyRepo struct{ mock.Mock }

func (m *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Company)
	return c, args.Error(1)
}

func (m *CompanyRepo) List(ctx context.Context, onlyID *int64) ([]*entity.Company, error) {
	args := m.Called(ctx, onlyID)
	list, _ := args.Get(0).([]*entity.Company)
	return list, args.Error(1)
}

func (m *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CompanyRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ── User ─────────────────────────────────────────────────────────────────────

type UserRepo struct{ mock.Mock }

func (m *UserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepo) UpdatePassword(ctx context.Context, id int64, hash string, forceChange bool) error {
	return m.Called(ctx, id, hash, forceChange).Error(0)
}

// ── Charge ───────────────────────────────────────────────────────────────────

type ChargeRepo struct{ mock.Mock }

func (m *ChargeRepo) Create(ctx context.Context, c *entity.Charge) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ChargeRepo) GetByID(ctx context.Context, id int64) (*entity.Charge, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Charge)
	return c, args.Error(1)
}

func (m *ChargeRepo) List(ctx context.Context, companyID *int64) ([]*entity.ChargeWithCompany, error) {
	args := m.Called(ctx, companyID)
	list, _ := args.Get(0).([]*entity.ChargeWithCompany)
	return list, args.Error(1)
}

func (m *ChargeRepo) Update(ctx context.Context, c *entity.Charge) (*entity.Charge, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*entity.Charge)
	return out, args.Error(1)
}

func (m *ChargeRepo) MarkPaid(ctx context.Context, id int64, method string, paymentDate time.Time) (*entity.Charge, error) {
	args := m.Called(ctx, id, method, paymentDate)
	out, _ := args.Get(0).(*entity.Charge)
	return out, args.Error(1)
}

func (m *ChargeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ── Invoice ──────────────────────────────────────────────────────────────────

type InvoiceRepo struct{ mock.Mock }

func (m *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*entity.Invoice)
	return inv, args.Error(1)
}

func (m *InvoiceRepo) List(ctx context.Context, companyID *int64) ([]*entity.InvoiceWithRefs, error) {
	args := m.Called(ctx, companyID)
	list, _ := args.Get(0).([]*entity.InvoiceWithRefs)
	return list, args.Error(1)
}

func (m *InvoiceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ── Contract ─────────────────────────────────────────────────────────────────

type ContractRepo struct{ mock.Mock }

func (m *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ContractRepo) GetByID(ctx context.Context, id int64) (*entity.Contract, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Contract)
	return c, args.Error(1)
}

func (m *ContractRepo) List(ctx context.Context, companyID *int64) ([]*entity.Contract, error) {
	args := m.Called(ctx, companyID)
	list, _ := args.Get(0).([]*entity.Contract)
	return list, args.Error(1)
}

func (m *ContractRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ── Equipment ────────────────────────────────────────────────────────────────

type EquipmentRepo struct{ mock.Mock }

func (m *EquipmentRepo) Create(ctx context.Context, eq *entity.Equipment) error {
	return m.Called(ctx, eq).Error(0)
}

func (m *EquipmentRepo) GetByID(ctx context.Context, id int64) (*entity.Equipment, error) {
	args := m.Called(ctx, id)
	eq, _ := args.Get(0).(*entity.Equipment)
	return eq, args.Error(1)
}

func (m *EquipmentRepo) List(ctx context.Context, companyID *int64) ([]*entity.Equipment, error) {
	args := m.Called(ctx, companyID)
	list, _ := args.Get(0).([]*entity.Equipment)
	return list, args.Error(1)
}

func (m *EquipmentRepo) Update(ctx context.Context, eq *entity.Equipment) error {
	return m.Called(ctx, eq).Error(0)
}

func (m *EquipmentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type EquipmentModelRepo struct{ mock.Mock }

func (m *EquipmentModelRepo) Create(ctx context.Context, em *entity.EquipmentModel) error {
	return m.Called(ctx, em).Error(0)
}

func (m *EquipmentModelRepo) List(ctx context.Context) ([]*entity.EquipmentModel, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.EquipmentModel)
	return list, args.Error(1)
}

func (m *EquipmentModelRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ── Dashboard ────────────────────────────────────────────────────────────────

type DashboardRepo struct{ mock.Mock }

func (m *DashboardRepo) ChargeTotals(ctx context.Context, companyID *int64, today time.Time) (*repository.ChargeTotalsResult, error) {
	args := m.Called(ctx, companyID, today)
	r, _ := args.Get(0).(*repository.ChargeTotalsResult)
	return r, args.Error(1)
}

func (m *DashboardRepo) MonthlyRevenue(ctx context.Context, companyID *int64, from time.Time) ([]repository.MonthlyRevenueResult, error) {
	args := m.Called(ctx, companyID, from)
	r, _ := args.Get(0).([]repository.MonthlyRevenueResult)
	return r, args.Error(1)
}

func (m *DashboardRepo) CountCompanies(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// ── Transacciones ────────────────────────────────────────────────────────────

// TxRunner ejecuta el callback con Charges y registra si hubo commit o rollback.
type TxRunner struct {
	Charges    repository.ChargeRepository
	Committed  bool
	RolledBack bool
}

func (r *TxRunner) RunCharges(_ context.Context, fn func(repository.ChargeRepository) error) error {
	if err := fn(r.Charges); err != nil {
		r.RolledBack = true
		return err
	}
	r.Committed = true
	return nil
}
