package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-portal/internal/application/seed"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository/repomock"
	"github.com/jhoicas/billing-portal/pkg/logger"
	"github.com/jhoicas/billing-portal/pkg/password"
)

func TestSeeder_Run_PrimeraVez(t *testing.T) {
	users := &repomock.UserRepo{}
	companies := &repomock.CompanyRepo{}
	charges := &repomock.ChargeRepo{}

	users.On("GetByUsername", mock.Anything, "admin").Return(nil, nil)
	var created []*entity.User
	users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) { created = append(created, args.Get(1).(*entity.User)) }).
		Return(nil)
	companies.On("Create", mock.Anything, mock.AnythingOfType("*entity.Company")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Company).ID = 1 }).
		Return(nil)
	var titles []string
	charges.On("Create", mock.Anything, mock.AnythingOfType("*entity.Charge")).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(*entity.Charge)
			assert.Equal(t, int64(1), c.CompanyID)
			assert.Equal(t, entity.ChargeStatusPending, c.Status)
			titles = append(titles, c.Title)
		}).
		Return(nil)

	applied, err := seed.NewSeeder(users, companies, charges, logger.Nop()).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, applied)

	require.Len(t, created, 2)
	assert.Equal(t, entity.RoleAdmin, created[0].Role)
	assert.Nil(t, created[0].CompanyID)
	assert.NoError(t, password.Verify(created[0].PasswordHash, "admin123"))
	assert.Equal(t, "tech", created[1].Username)
	require.NotNil(t, created[1].CompanyID)
	assert.Equal(t, int64(1), *created[1].CompanyID)
	assert.Equal(t, []string{"Taxa de Serviço - Jan 2026", "Licença de Software - Q1"}, titles)
}

func TestSeeder_Run_Idempotente(t *testing.T) {
	users := &repomock.UserRepo{}
	companies := &repomock.CompanyRepo{}
	charges := &repomock.ChargeRepo{}
	users.On("GetByUsername", mock.Anything, "admin").Return(&entity.User{ID: 1, Username: "admin"}, nil)

	applied, err := seed.NewSeeder(users, companies, charges, logger.Nop()).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, applied)
	companies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	charges.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
