package postgres

import (
	"context"

	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, document, email, COALESCE(address, ''),
	COALESCE(state_registration, ''), COALESCE(contact_number, ''), created_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (name, document, email, address, state_registration, contact_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		company.Name, company.Document, company.Email,
		nullIfEmpty(company.Address), nullIfEmpty(company.StateRegistration), nullIfEmpty(company.ContactNumber),
	).Scan(&company.ID, &company.CreatedAt)
	if err != nil {
		return writeError("insert company", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.PersistenceError("get company", err)
	}
	return c, nil
}

// List devuelve empresas por nombre; onlyID restringe a una sola.
func (r *CompanyRepo) List(ctx context.Context, onlyID *int64) ([]*entity.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE ($1::bigint IS NULL OR id = $1)
		ORDER BY name`
	rows, err := r.q.Query(ctx, query, onlyID)
	if err != nil {
		return nil, domain.PersistenceError("list companies", err)
	}
	defer rows.Close()

	list := make([]*entity.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, domain.PersistenceError("scan company", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.PersistenceError("list companies", err)
	}
	return list, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, document = $3, email = $4, address = $5,
			state_registration = $6, contact_number = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.Document, company.Email,
		nullIfEmpty(company.Address), nullIfEmpty(company.StateRegistration), nullIfEmpty(company.ContactNumber),
	)
	if err != nil {
		return writeError("update company", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una empresa por ID; usuarios, cobranzas, notas, contratos y equipos caen en cascada.
func (r *CompanyRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return false, domain.PersistenceError("delete company", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanCompany(row pgxScanner) (*entity.Company, error) {
	var c entity.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Document, &c.Email, &c.Address,
		&c.StateRegistration, &c.ContactNumber, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
