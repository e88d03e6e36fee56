package postgres

import (
	"context"

	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
)

var (
	_ repository.EquipmentRepository      = (*EquipmentRepo)(nil)
	_ repository.EquipmentModelRepository = (*EquipmentModelRepo)(nil)
)

// EquipmentRepo equipos instalados en empresas.
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

const equipmentColumns = `id, company_id, name, COALESCE(model, ''), COALESCE(serial_number, ''), status,
	last_maintenance, next_maintenance, created_at`

// Create persiste un equipo.
func (r *EquipmentRepo) Create(ctx context.Context, eq *entity.Equipment) error {
	query := `
		INSERT INTO equipment (company_id, name, model, serial_number, status, last_maintenance, next_maintenance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		eq.CompanyID, eq.Name, nullIfEmpty(eq.Model), nullIfEmpty(eq.SerialNumber), eq.Status,
		eq.LastMaintenance, eq.NextMaintenance,
	).Scan(&eq.ID, &eq.CreatedAt)
	if err != nil {
		return writeError("insert equipment", err)
	}
	return nil
}

// GetByID obtiene un equipo.
func (r *EquipmentRepo) GetByID(ctx context.Context, id int64) (*entity.Equipment, error) {
	eq, err := scanEquipment(r.q.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.PersistenceError("get equipment", err)
	}
	return eq, nil
}

// List equipos por nombre; companyID nil lista todos.
func (r *EquipmentRepo) List(ctx context.Context, companyID *int64) ([]*entity.Equipment, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+equipmentColumns+` FROM equipment
		WHERE ($1::bigint IS NULL OR company_id = $1)
		ORDER BY name, id`, companyID)
	if err != nil {
		return nil, domain.PersistenceError("list equipment", err)
	}
	defer rows.Close()

	list := make([]*entity.Equipment, 0)
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, domain.PersistenceError("scan equipment", err)
		}
		list = append(list, eq)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.PersistenceError("list equipment", err)
	}
	return list, nil
}

// Update reescribe los campos editables.
func (r *EquipmentRepo) Update(ctx context.Context, eq *entity.Equipment) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE equipment SET company_id = $2, name = $3, model = $4, serial_number = $5, status = $6,
			last_maintenance = $7, next_maintenance = $8
		WHERE id = $1`,
		eq.ID, eq.CompanyID, eq.Name, nullIfEmpty(eq.Model), nullIfEmpty(eq.SerialNumber), eq.Status,
		eq.LastMaintenance, eq.NextMaintenance,
	)
	if err != nil {
		return writeError("update equipment", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un equipo.
func (r *EquipmentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return false, domain.PersistenceError("delete equipment", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanEquipment(row pgxScanner) (*entity.Equipment, error) {
	var eq entity.Equipment
	if err := row.Scan(&eq.ID, &eq.CompanyID, &eq.Name, &eq.Model, &eq.SerialNumber, &eq.Status,
		&eq.LastMaintenance, &eq.NextMaintenance, &eq.CreatedAt); err != nil {
		return nil, err
	}
	return &eq, nil
}

// EquipmentModelRepo catálogo global de modelos.
type EquipmentModelRepo struct {
	q Querier
}

func NewEquipmentModelRepository(q Querier) *EquipmentModelRepo {
	return &EquipmentModelRepo{q: q}
}

func (r *EquipmentModelRepo) Create(ctx context.Context, m *entity.EquipmentModel) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO equipment_models (brand, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		m.Brand, m.Name, nullIfEmpty(m.Description),
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return writeError("insert equipment model", err)
	}
	return nil
}

func (r *EquipmentModelRepo) List(ctx context.Context) ([]*entity.EquipmentModel, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, brand, name, COALESCE(description, ''), created_at
		FROM equipment_models ORDER BY brand, name`)
	if err != nil {
		return nil, domain.PersistenceError("list equipment models", err)
	}
	defer rows.Close()

	list := make([]*entity.EquipmentModel, 0)
	for rows.Next() {
		var m entity.EquipmentModel
		if err := rows.Scan(&m.ID, &m.Brand, &m.Name, &m.Description, &m.CreatedAt); err != nil {
			return nil, domain.PersistenceError("scan equipment model", err)
		}
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.PersistenceError("list equipment models", err)
	}
	return list, nil
}

func (r *EquipmentModelRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM equipment_models WHERE id = $1`, id)
	if err != nil {
		return false, domain.PersistenceError("delete equipment model", err)
	}
	return cmd.RowsAffected() > 0, nil
}
