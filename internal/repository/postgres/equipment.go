package postgres

import (
	"context"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
)

type equipmentRepository struct {
	db DBTX
}

func NewEquipmentRepository(db DBTX) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (unit_code, model_name, state, version)
	          VALUES ($1, $2, $3, 1) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, e.UnitCode, e.ModelName, e.State).Scan(&e.ID)
	if err != nil {
		return duplicateOr(err, "unit_code", e.UnitCode)
	}
	e.Version = 1
	return nil
}

func (r *equipmentRepository) GetByCode(ctx context.Context, unitCode string) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	query := `SELECT id, unit_code, model_name, state, version FROM equipment WHERE unit_code = $1`
	err := r.db.QueryRowContext(ctx, query, unitCode).Scan(&e.ID, &e.UnitCode, &e.ModelName, &e.State, &e.Version)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return e, nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT id, unit_code, model_name, state, version FROM equipment ORDER BY unit_code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.ID, &e.UnitCode, &e.ModelName, &e.State, &e.Version); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *equipmentRepository) Update(ctx context.Context, prevCode string, e *domain.Equipment) error {
	query := `UPDATE equipment SET unit_code = $1, model_name = $2, state = $3, version = version + 1
	          WHERE unit_code = $4 AND version = $5`
	res, err := r.db.ExecContext(ctx, query, e.UnitCode, e.ModelName, e.State, prevCode, e.Version)
	if err != nil {
		return duplicateOr(err, "unit_code", e.UnitCode)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Row gone vs. row moved on: distinguish not-found from a stale read.
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM equipment WHERE unit_code = $1)`, prevCode).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return domain.ErrConflict
		}
		return domain.ErrNotFound
	}
	e.Version++
	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, unitCode string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE unit_code = $1`, unitCode)
	if err != nil {
		return err
	}
	return requireRows(res)
}
