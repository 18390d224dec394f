package postgres

import (
	"context"
	"database/sql"
	"time"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
)

type billingRepository struct {
	db DBTX
}

func NewBillingRepository(db DBTX) repository.BillingRepository {
	return &billingRepository{db: db}
}

const billingColumns = `id, kind, folio, equipment_code, service_entry_id, month, year,
	payment_date, overtime_hours, overtime_rate, amount, expense, status`

func (r *billingRepository) Create(ctx context.Context, b *domain.BillingRecord) error {
	query := `INSERT INTO billing (kind, folio, equipment_code, service_entry_id, month, year,
	          payment_date, overtime_hours, overtime_rate, amount, expense, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		b.Kind, b.Folio, b.EquipmentCode, b.ServiceEntryID, b.Month, b.Year,
		b.PaymentDate, b.OvertimeHours, b.OvertimeRate, b.Amount, b.Expense, b.Status).Scan(&b.ID)
}

func (r *billingRepository) GetByID(ctx context.Context, id int32) (*domain.BillingRecord, error) {
	query := `SELECT ` + billingColumns + ` FROM billing WHERE id = $1`
	b, err := scanBillingRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return b, nil
}

func (r *billingRepository) GetByServiceEntry(ctx context.Context, entryID int32) (*domain.BillingRecord, error) {
	query := `SELECT ` + billingColumns + ` FROM billing WHERE service_entry_id = $1`
	b, err := scanBillingRow(r.db.QueryRowContext(ctx, query, entryID))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return b, nil
}

func (r *billingRepository) ListByFolio(ctx context.Context, folio int64) ([]domain.BillingRecord, error) {
	query := `SELECT ` + billingColumns + ` FROM billing WHERE folio = $1 ORDER BY year, month, id`
	return r.queryRecords(ctx, query, folio)
}

func (r *billingRepository) ListOverduePending(ctx context.Context, asOf time.Time) ([]domain.BillingRecord, error) {
	query := `SELECT ` + billingColumns + ` FROM billing
	          WHERE kind = $1 AND status = $2 AND payment_date < $3 ORDER BY payment_date`
	return r.queryRecords(ctx, query, domain.BillingRentInvoice, domain.InvoicePending, asOf.Format("2006-01-02"))
}

func (r *billingRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]domain.BillingRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BillingRecord
	for rows.Next() {
		var b domain.BillingRecord
		var date time.Time
		if err := rows.Scan(&b.ID, &b.Kind, &b.Folio, &b.EquipmentCode, &b.ServiceEntryID,
			&b.Month, &b.Year, &date, &b.OvertimeHours, &b.OvertimeRate, &b.Amount, &b.Expense, &b.Status); err != nil {
			return nil, err
		}
		b.PaymentDate = date.Format("2006-01-02")
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *billingRepository) Update(ctx context.Context, b *domain.BillingRecord) error {
	query := `UPDATE billing SET equipment_code = $1, month = $2, year = $3, payment_date = $4,
	          overtime_hours = $5, overtime_rate = $6, amount = $7, expense = $8, status = $9
	          WHERE id = $10`
	res, err := r.db.ExecContext(ctx, query,
		b.EquipmentCode, b.Month, b.Year, b.PaymentDate,
		b.OvertimeHours, b.OvertimeRate, b.Amount, b.Expense, b.Status, b.ID)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *billingRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM billing WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *billingRepository) DeleteByServiceEntry(ctx context.Context, entryID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM billing WHERE service_entry_id = $1`, entryID)
	return err
}

func (r *billingRepository) DeleteByFolio(ctx context.Context, folio int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM billing WHERE folio = $1`, folio)
	return err
}

func scanBillingRow(row *sql.Row) (*domain.BillingRecord, error) {
	b := &domain.BillingRecord{}
	var date time.Time
	err := row.Scan(&b.ID, &b.Kind, &b.Folio, &b.EquipmentCode, &b.ServiceEntryID,
		&b.Month, &b.Year, &date, &b.OvertimeHours, &b.OvertimeRate, &b.Amount, &b.Expense, &b.Status)
	if err != nil {
		return nil, err
	}
	b.PaymentDate = date.Format("2006-01-02")
	return b, nil
}
