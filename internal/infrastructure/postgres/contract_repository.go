package postgres

import (
	"context"

	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo contratos sobre PostgreSQL.
type ContractRepo struct {
	q Querier
}

func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, company_id, type, duration, COALESCE(file_url, ''), created_at`

func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	query := `
		INSERT INTO contracts (company_id, type, duration, file_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	if err := r.q.QueryRow(ctx, query, c.CompanyID, c.Type, c.Duration, nullIfEmpty(c.FileURL)).Scan(&c.ID, &c.CreatedAt); err != nil {
		return writeError("insert contract", err)
	}
	return nil
}

func (r *ContractRepo) GetByID(ctx context.Context, id int64) (*entity.Contract, error) {
	c, err := scanContract(r.q.QueryRow(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.PersistenceError("get contract", err)
	}
	return c, nil
}

func (r *ContractRepo) List(ctx context.Context, companyID *int64) ([]*entity.Contract, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+contractColumns+` FROM contracts
		WHERE ($1::bigint IS NULL OR company_id = $1)
		ORDER BY created_at DESC, id DESC`, companyID)
	if err != nil {
		return nil, domain.PersistenceError("list contracts", err)
	}
	defer rows.Close()

	list := make([]*entity.Contract, 0)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, domain.PersistenceError("scan contract", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.PersistenceError("list contracts", err)
	}
	return list, nil
}

func (r *ContractRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return false, domain.PersistenceError("delete contract", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanContract(row pgxScanner) (*entity.Contract, error) {
	var c entity.Contract
	if err := row.Scan(&c.ID, &c.CompanyID, &c.Type, &c.Duration, &c.FileURL, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
