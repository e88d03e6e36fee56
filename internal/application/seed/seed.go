// Package seed carga datos de desarrollo: usuarios admin y de empresa, una empresa
// y dos cobranzas pendientes. Es idempotente: si el admin existe no hace nada.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
	"github.com/jhoicas/billing-portal/pkg/logger"
	"github.com/jhoicas/billing-portal/pkg/password"
)

const adminUsername = "admin"

// Seeder escribe los datos iniciales a través de los repositorios.
type Seeder struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	charges   repository.ChargeRepository
	log       *logger.Logger
}

// NewSeeder construye el seeder.
func NewSeeder(users repository.UserRepository, companies repository.CompanyRepository, charges repository.ChargeRepository, log *logger.Logger) *Seeder {
	return &Seeder{users: users, companies: companies, charges: charges, log: log.Component("seed")}
}

// Run aplica el seed. Devuelve false si ya estaba aplicado.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	existing, err := s.users.GetByUsername(ctx, adminUsername)
	if err != nil {
		return false, fmt.Errorf("seed: buscar admin: %w", err)
	}
	if existing != nil {
		s.log.Info().Msg("seed ya aplicado, se omite")
		return false, nil
	}

	if _, err := s.createUser(ctx, adminUsername, "admin123", entity.RoleAdmin, nil); err != nil {
		return false, err
	}

	company := &entity.Company{
		Name:     "Tech Solutions Ltda",
		Document: "12.345.678/0001-90",
		Email:    "contato@techsolutions.com",
		Address:  "Av. Paulista, 1000 - SP",
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return false, fmt.Errorf("seed: crear empresa: %w", err)
	}

	if _, err := s.createUser(ctx, "tech", "tech123", entity.RoleCompany, &company.ID); err != nil {
		return false, err
	}

	for _, c := range []struct {
		title  string
		amount int64
		due    time.Time
	}{
		{"Taxa de Serviço - Jan 2026", 1500, time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)},
		{"Licença de Software - Q1", 5000, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)},
	} {
		ch := &entity.Charge{
			CompanyID: company.ID,
			Title:     c.title,
			Amount:    decimal.NewFromInt(c.amount),
			DueDate:   c.due,
			Status:    entity.ChargeStatusPending,
		}
		if err := s.charges.Create(ctx, ch); err != nil {
			return false, fmt.Errorf("seed: crear cobranza %q: %w", c.title, err)
		}
	}

	s.log.Info().Int64("company_id", company.ID).Msg("seed aplicado")
	return true, nil
}

func (s *Seeder) createUser(ctx context.Context, username, plain, role string, companyID *int64) (*entity.User, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("seed: hash de %s: %w", username, err)
	}
	u := &entity.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CompanyID:    companyID,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("seed: crear usuario %s: %w", username, err)
	}
	return u, nil
}
