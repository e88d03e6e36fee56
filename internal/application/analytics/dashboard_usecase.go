// Package analytics contiene los casos de uso del panel de cobranzas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/domain/charge"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

const revenueMonths = 12 // meses en el gráfico de ingresos

// DashboardUseCase genera el resumen de cobranzas (total, pagado, pendiente, vencido).
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	clock charge.Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, clock charge.Clock) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, clock: clock}
}

// GetSummary construye el resumen. companyID nil = todas las empresas (admin).
//
// Tres llamadas en paralelo:
//  1. ChargeTotals(hoy)          → montos por estado efectivo
//  2. MonthlyRevenue(12 meses)   → RevenueByMonth
//  3. CountCompanies             → ActiveCompanies (solo admin)
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID *int64) (*dto.DashboardSummary, error) {
	today := uc.clock.Today()
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(revenueMonths - 1), 0)

	type totalsResult struct {
		totals *repository.ChargeTotalsResult
		err    error
	}
	type revenueResult struct {
		rows []repository.MonthlyRevenueResult
		err  error
	}
	type countResult struct {
		n   int
		err error
	}

	totalsCh := make(chan totalsResult, 1)
	revenueCh := make(chan revenueResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		t, err := uc.repo.ChargeTotals(ctx, companyID, today)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		rows, err := uc.repo.MonthlyRevenue(ctx, companyID, from)
		revenueCh <- revenueResult{rows, err}
	}()
	go func() {
		if companyID != nil {
			countCh <- countResult{n: 1}
			return
		}
		n, err := uc.repo.CountCompanies(ctx)
		countCh <- countResult{n, err}
	}()

	totals := <-totalsCh
	revenue := <-revenueCh
	count := <-countCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", totals.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos por mes: %w", revenue.err)
	}
	if count.err != nil {
		return nil, fmt.Errorf("dashboard: empresas: %w", count.err)
	}

	t := totals.totals
	if t == nil {
		t = &repository.ChargeTotalsResult{}
	}
	return &dto.DashboardSummary{
		TotalAmount:     t.Total.StringFixed(2),
		PaidAmount:      t.Paid.StringFixed(2),
		PendingAmount:   t.Pending.StringFixed(2),
		OverdueAmount:   t.Overdue.StringFixed(2),
		OverdueCount:    t.OverdueCount,
		ChargeCount:     t.ChargeCount,
		ActiveCompanies: count.n,
		RevenueByMonth:  fillMonths(from, revenue.rows),
	}, nil
}

// fillMonths devuelve exactamente revenueMonths entradas desde from; los meses sin cobranzas van en cero.
func fillMonths(from time.Time, rows []repository.MonthlyRevenueResult) []dto.MonthlyRevenue {
	byMonth := make(map[string]repository.MonthlyRevenueResult, len(rows))
	for _, r := range rows {
		byMonth[r.Month] = r
	}
	out := make([]dto.MonthlyRevenue, 0, revenueMonths)
	for i := 0; i < revenueMonths; i++ {
		key := from.AddDate(0, i, 0).Format("2006-01")
		r, ok := byMonth[key]
		if !ok {
			r = repository.MonthlyRevenueResult{Month: key, Total: decimal.Zero, Paid: decimal.Zero}
		}
		out = append(out, dto.MonthlyRevenue{Month: key, Total: r.Total.StringFixed(2), Paid: r.Paid.StringFixed(2)})
	}
	return out
}
