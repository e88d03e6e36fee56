package postgres

import (
	"context"

	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo notas fiscales sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la nota fiscal.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (charge_id, company_id, file_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	if err := r.q.QueryRow(ctx, query, inv.ChargeID, inv.CompanyID, inv.FileURL).Scan(&inv.ID, &inv.CreatedAt); err != nil {
		return writeError("insert invoice", err)
	}
	return nil
}

// GetByID obtiene una nota fiscal.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(ctx,
		`SELECT id, charge_id, company_id, file_url, created_at FROM invoices WHERE id = $1`, id,
	).Scan(&inv.ID, &inv.ChargeID, &inv.CompanyID, &inv.FileURL, &inv.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.PersistenceError("get invoice", err)
	}
	return &inv, nil
}

// List notas fiscales con cobranza y empresa, más recientes primero.
func (r *InvoiceRepo) List(ctx context.Context, companyID *int64) ([]*entity.InvoiceWithRefs, error) {
	query := `
		SELECT i.id, i.charge_id, i.company_id, i.file_url, i.created_at,
			` + chargeColumns + `, ` + joinedCompanyColumns + `
		FROM invoices i
		JOIN charges c ON c.id = i.charge_id
		JOIN companies co ON co.id = i.company_id
		WHERE ($1::bigint IS NULL OR i.company_id = $1)
		ORDER BY i.created_at DESC, i.id DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, domain.PersistenceError("list invoices", err)
	}
	defer rows.Close()

	list := make([]*entity.InvoiceWithRefs, 0)
	for rows.Next() {
		var item entity.InvoiceWithRefs
		inv, ch, co := &item.Invoice, &item.Charge, &item.Company
		if err := rows.Scan(
			&inv.ID, &inv.ChargeID, &inv.CompanyID, &inv.FileURL, &inv.CreatedAt,
			&ch.ID, &ch.CompanyID, &ch.Title, &ch.Amount, &ch.DueDate, &ch.Status,
			&ch.BoletoFile, &ch.InvoiceFile, &ch.PaymentMethod, &ch.PaymentDate, &ch.CreatedAt,
			&co.ID, &co.Name, &co.Document, &co.Email, &co.Address, &co.StateRegistration, &co.ContactNumber, &co.CreatedAt,
		); err != nil {
			return nil, domain.PersistenceError("scan invoice", err)
		}
		list = append(list, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.PersistenceError("list invoices", err)
	}
	return list, nil
}

// Delete elimina la nota fiscal.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, domain.PersistenceError("delete invoice", err)
	}
	return cmd.RowsAffected() > 0, nil
}
