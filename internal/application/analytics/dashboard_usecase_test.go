package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-portal/internal/application/analytics"
	"github.com/jhoicas/billing-portal/internal/domain/charge"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
	"github.com/jhoicas/billing-portal/internal/domain/repository/repomock"
)

func clockAt(y int, m time.Month, d int) charge.Clock {
	return charge.Clock{Now: func() time.Time { return time.Date(y, m, d, 12, 0, 0, 0, time.UTC) }, Location: time.UTC}
}

func TestDashboard_GetSummary_Admin(t *testing.T) {
	repo := &repomock.DashboardRepo{}
	uc := analytics.NewDashboardUseCase(repo, clockAt(2026, 3, 10))
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	repo.On("ChargeTotals", mock.Anything, (*int64)(nil), today).Return(&repository.ChargeTotalsResult{
		ChargeCount: 3, Total: decimal.NewFromInt(6500), Paid: decimal.NewFromInt(1500),
		Pending: decimal.NewFromInt(0), Overdue: decimal.NewFromInt(5000), OverdueCount: 2,
	}, nil)
	repo.On("MonthlyRevenue", mock.Anything, (*int64)(nil), from).Return([]repository.MonthlyRevenueResult{
		{Month: "2026-01", Total: decimal.NewFromInt(1500), Paid: decimal.NewFromInt(1500)},
		{Month: "2026-02", Total: decimal.NewFromInt(5000), Paid: decimal.Zero},
	}, nil)
	repo.On("CountCompanies", mock.Anything).Return(4, nil)

	out, err := uc.GetSummary(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "6500.00", out.TotalAmount)
	assert.Equal(t, "5000.00", out.OverdueAmount)
	assert.Equal(t, 2, out.OverdueCount)
	assert.Equal(t, 4, out.ActiveCompanies)
	require.Len(t, out.RevenueByMonth, 12)
	assert.Equal(t, "2025-04", out.RevenueByMonth[0].Month)
	assert.Equal(t, "0.00", out.RevenueByMonth[0].Total)
	assert.Equal(t, "2026-01", out.RevenueByMonth[9].Month)
	assert.Equal(t, "1500.00", out.RevenueByMonth[9].Paid)
	assert.Equal(t, "2026-03", out.RevenueByMonth[11].Month)
}

func TestDashboard_GetSummary_EmpresaNoCuentaEmpresas(t *testing.T) {
	repo := &repomock.DashboardRepo{}
	uc := analytics.NewDashboardUseCase(repo, clockAt(2026, 3, 10))
	scope := int64(7)
	repo.On("ChargeTotals", mock.Anything, &scope, mock.Anything).Return(&repository.ChargeTotalsResult{}, nil)
	repo.On("MonthlyRevenue", mock.Anything, &scope, mock.Anything).Return(nil, nil)

	out, err := uc.GetSummary(context.Background(), &scope)
	require.NoError(t, err)
	assert.Equal(t, 1, out.ActiveCompanies)
	assert.Equal(t, "0.00", out.TotalAmount)
	repo.AssertNotCalled(t, "CountCompanies", mock.Anything)
}

func TestDashboard_GetSummary_ErrorDeRepositorio(t *testing.T) {
	repo := &repomock.DashboardRepo{}
	uc := analytics.NewDashboardUseCase(repo, clockAt(2026, 3, 10))
	repo.On("ChargeTotals", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db"))
	repo.On("MonthlyRevenue", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("CountCompanies", mock.Anything).Return(0, nil)

	_, err := uc.GetSummary(context.Background(), nil)
	assert.Error(t, err)
}
