package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

var _ repository.ChargeRepository = (*ChargeRepo)(nil)

// ChargeRepo implementación de ChargeRepository sobre PostgreSQL (usable con pool o tx).
type ChargeRepo struct {
	q Querier
}

// NewChargeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewChargeRepository(q Querier) *ChargeRepo {
	return &ChargeRepo{q: q}
}

const chargeColumns = `c.id, c.company_id, c.title, c.amount, c.due_date, c.status,
	COALESCE(c.boleto_file, ''), COALESCE(c.invoice_file, ''), COALESCE(c.payment_method, ''),
	c.payment_date, c.created_at`

// Create inserta una cobranza y completa ID y CreatedAt.
func (r *ChargeRepo) Create(ctx context.Context, ch *entity.Charge) error {
	query := `
		INSERT INTO charges (company_id, title, amount, due_date, status,
			boleto_file, invoice_file, payment_method, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		ch.CompanyID, ch.Title, ch.Amount, ch.DueDate, ch.Status,
		nullIfEmpty(ch.BoletoFile), nullIfEmpty(ch.InvoiceFile), nullIfEmpty(ch.PaymentMethod), ch.PaymentDate,
	).Scan(&ch.ID, &ch.CreatedAt)
	if err != nil {
		return writeError("insert charge", err)
	}
	return nil
}

// GetByID obtiene una cobranza por ID.
func (r *ChargeRepo) GetByID(ctx context.Context, id int64) (*entity.Charge, error) {
	ch, err := scanCharge(r.q.QueryRow(ctx, `SELECT `+chargeColumns+` FROM charges c WHERE c.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.PersistenceError("get charge", err)
	}
	return ch, nil
}

// List cobranzas con su empresa, más recientes primero.
func (r *ChargeRepo) List(ctx context.Context, companyID *int64) ([]*entity.ChargeWithCompany, error) {
	query := `
		SELECT ` + chargeColumns + `, ` + joinedCompanyColumns + `
		FROM charges c
		JOIN companies co ON co.id = c.company_id
		WHERE ($1::bigint IS NULL OR c.company_id = $1)
		ORDER BY c.created_at DESC, c.id DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, domain.PersistenceError("list charges", err)
	}
	defer rows.Close()

	list := make([]*entity.ChargeWithCompany, 0)
	for rows.Next() {
		var item entity.ChargeWithCompany
		ch := &item.Charge
		co := &item.Company
		if err := rows.Scan(
			&ch.ID, &ch.CompanyID, &ch.Title, &ch.Amount, &ch.DueDate, &ch.Status,
			&ch.BoletoFile, &ch.InvoiceFile, &ch.PaymentMethod, &ch.PaymentDate, &ch.CreatedAt,
			&co.ID, &co.Name, &co.Document, &co.Email, &co.Address, &co.StateRegistration, &co.ContactNumber, &co.CreatedAt,
		); err != nil {
			return nil, domain.PersistenceError("scan charge", err)
		}
		list = append(list, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.PersistenceError("list charges", err)
	}
	return list, nil
}

// Update escribe los campos editables y devuelve la fila resultante.
func (r *ChargeRepo) Update(ctx context.Context, ch *entity.Charge) (*entity.Charge, error) {
	query := `
		UPDATE charges c SET title = $2, amount = $3, due_date = $4, status = $5,
			boleto_file = $6, invoice_file = $7, payment_method = $8, payment_date = $9
		WHERE c.id = $1
		RETURNING ` + chargeColumns
	out, err := scanCharge(r.q.QueryRow(ctx, query,
		ch.ID, ch.Title, ch.Amount, ch.DueDate, ch.Status,
		nullIfEmpty(ch.BoletoFile), nullIfEmpty(ch.InvoiceFile), nullIfEmpty(ch.PaymentMethod), ch.PaymentDate,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, writeError("update charge", err)
	}
	return out, nil
}

// MarkPaid fija status=paid con método y fecha en una sola sentencia.
func (r *ChargeRepo) MarkPaid(ctx context.Context, id int64, method string, paymentDate time.Time) (*entity.Charge, error) {
	query := `
		UPDATE charges c SET status = 'paid', payment_method = $2, payment_date = $3
		WHERE c.id = $1
		RETURNING ` + chargeColumns
	out, err := scanCharge(r.q.QueryRow(ctx, query, id, method, paymentDate))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.PersistenceError("mark charge paid", err)
	}
	return out, nil
}

// Delete elimina la cobranza y sus notas fiscales.
func (r *ChargeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM charges WHERE id = $1`, id)
	if err != nil {
		return false, domain.PersistenceError("delete charge", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// joinedCompanyColumns columnas de companies con alias co.
const joinedCompanyColumns = `co.id, co.name, co.document, co.email, COALESCE(co.address, ''),
	COALESCE(co.state_registration, ''), COALESCE(co.contact_number, ''), co.created_at`

func scanCharge(row pgxScanner) (*entity.Charge, error) {
	var ch entity.Charge
	if err := row.Scan(
		&ch.ID, &ch.CompanyID, &ch.Title, &ch.Amount, &ch.DueDate, &ch.Status,
		&ch.BoletoFile, &ch.InvoiceFile, &ch.PaymentMethod, &ch.PaymentDate, &ch.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &ch, nil
}
