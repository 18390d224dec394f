package postgres

import (
	"context"
	"database/sql"
	"time"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
)

type serviceHistoryRepository struct {
	db DBTX
}

func NewServiceHistoryRepository(db DBTX) repository.ServiceHistoryRepository {
	return &serviceHistoryRepository{db: db}
}

const historyColumns = `id, folio, equipment_code, service_type, service_date, hour_meter, expense`

func (r *serviceHistoryRepository) Create(ctx context.Context, e *domain.ServiceEntry) error {
	query := `INSERT INTO service_history (folio, equipment_code, service_type, service_date, hour_meter, expense)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		e.Folio, e.EquipmentCode, e.Type, e.ServiceDate, e.HourMeter, e.Expense).Scan(&e.ID)
}

func (r *serviceHistoryRepository) GetByID(ctx context.Context, id int32) (*domain.ServiceEntry, error) {
	query := `SELECT ` + historyColumns + ` FROM service_history WHERE id = $1`
	e, err := scanServiceEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return e, nil
}

func (r *serviceHistoryRepository) ListByFolio(ctx context.Context, folio int64) ([]domain.ServiceEntry, error) {
	query := `SELECT ` + historyColumns + ` FROM service_history WHERE folio = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, folio)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ServiceEntry
	for rows.Next() {
		var e domain.ServiceEntry
		var date time.Time
		if err := rows.Scan(&e.ID, &e.Folio, &e.EquipmentCode, &e.Type, &date, &e.HourMeter, &e.Expense); err != nil {
			return nil, err
		}
		e.ServiceDate = date.Format("2006-01-02")
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *serviceHistoryRepository) Update(ctx context.Context, e *domain.ServiceEntry) error {
	query := `UPDATE service_history SET equipment_code = $1, service_type = $2, service_date = $3,
	          hour_meter = $4, expense = $5 WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query,
		e.EquipmentCode, e.Type, e.ServiceDate, e.HourMeter, e.Expense, e.ID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *serviceHistoryRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM service_history WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *serviceHistoryRepository) DeleteByFolio(ctx context.Context, folio int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM service_history WHERE folio = $1`, folio)
	return err
}

func (r *serviceHistoryRepository) CountDeliveries(ctx context.Context, folio int64) (int32, error) {
	var n int32
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM service_history WHERE folio = $1 AND service_type = $2`,
		folio, domain.ServiceDelivery).Scan(&n)
	return n, err
}

func (r *serviceHistoryRepository) LastBefore(ctx context.Context, folio int64, id int32) (*domain.ServiceEntry, error) {
	query := `SELECT ` + historyColumns + ` FROM service_history
	          WHERE folio = $1 AND id < $2 ORDER BY id DESC LIMIT 1`
	e, err := scanServiceEntry(r.db.QueryRowContext(ctx, query, folio, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return e, nil
}

func scanServiceEntry(row *sql.Row) (*domain.ServiceEntry, error) {
	e := &domain.ServiceEntry{}
	var date time.Time
	err := row.Scan(&e.ID, &e.Folio, &e.EquipmentCode, &e.Type, &date, &e.HourMeter, &e.Expense)
	if err != nil {
		return nil, err
	}
	e.ServiceDate = date.Format("2006-01-02")
	return e, nil
}
