package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ChargeTotalsResult agregados crudos de cobranzas por estado efectivo.
// Lo produce la DB; el use case lo convierte en DTO.
type ChargeTotalsResult struct {
	ChargeCount  int
	Total        decimal.Decimal
	Paid         decimal.Decimal
	Pending      decimal.Decimal // pendientes aún no vencidas
	Overdue      decimal.Decimal
	OverdueCount int
}

// MonthlyRevenueResult montos por mes de vencimiento (Month = "YYYY-MM").
type MonthlyRevenueResult struct {
	Month string
	Total decimal.Decimal
	Paid  decimal.Decimal
}

// DashboardRepository consultas de lectura para el panel. companyID nil = todas las empresas.
type DashboardRepository interface {
	// ChargeTotals considera vencida una cobranza pending con due_date < today.
	ChargeTotals(ctx context.Context, companyID *int64, today time.Time) (*ChargeTotalsResult, error)
	// MonthlyRevenue agrupa por mes de vencimiento desde from (inclusive).
	MonthlyRevenue(ctx context.Context, companyID *int64, from time.Time) ([]MonthlyRevenueResult, error)
	CountCompanies(ctx context.Context) (int, error)
}
