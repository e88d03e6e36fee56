package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el panel de cobranzas.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del panel.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// ChargeTotals suma montos por estado efectivo. Una cobranza pending (u overdue guardada)
// cuenta como vencida cuando due_date < today.
func (r *DashboardRepo) ChargeTotals(ctx context.Context, companyID *int64, today time.Time) (*repository.ChargeTotalsResult, error) {
	const query = `
	SELECT
	    COUNT(*)                                                                 AS charge_count,
	    COALESCE(SUM(amount), 0)                                                 AS total,
	    COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)                  AS paid,
	    COALESCE(SUM(amount) FILTER (WHERE status = 'pending' AND due_date >= $2), 0) AS pending,
	    COALESCE(SUM(amount) FILTER (WHERE status = 'overdue'
	                                   OR (status = 'pending' AND due_date < $2)), 0) AS overdue,
	    COUNT(*) FILTER (WHERE status = 'overdue'
	                       OR (status = 'pending' AND due_date < $2))            AS overdue_count
	FROM charges
	WHERE ($1::bigint IS NULL OR company_id = $1)`

	var res repository.ChargeTotalsResult
	err := r.q.QueryRow(ctx, query, companyID, today).Scan(
		&res.ChargeCount,
		&res.Total,
		&res.Paid,
		&res.Pending,
		&res.Overdue,
		&res.OverdueCount,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ChargeTotals: %w", err)
	}
	return &res, nil
}

// MonthlyRevenue agrupa por mes de vencimiento desde from.
func (r *DashboardRepo) MonthlyRevenue(ctx context.Context, companyID *int64, from time.Time) ([]repository.MonthlyRevenueResult, error) {
	const query = `
	SELECT
	    to_char(date_trunc('month', due_date), 'YYYY-MM')                AS month,
	    SUM(amount)                                                      AS total,
	    COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)          AS paid
	FROM charges
	WHERE ($1::bigint IS NULL OR company_id = $1)
	  AND due_date >= $2
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.q.Query(ctx, query, companyID, from)
	if err != nil {
		return nil, fmt.Errorf("dashboard.MonthlyRevenue: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyRevenueResult
	for rows.Next() {
		var row repository.MonthlyRevenueResult
		if err := rows.Scan(&row.Month, &row.Total, &row.Paid); err != nil {
			return nil, fmt.Errorf("dashboard.MonthlyRevenue scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountCompanies total de empresas registradas.
func (r *DashboardRepo) CountCompanies(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountCompanies: %w", err)
	}
	return n, nil
}
