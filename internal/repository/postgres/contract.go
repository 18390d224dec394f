package postgres

import (
	"context"
	"database/sql"
	"time"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
)

type contractRepository struct {
	db DBTX
}

func NewContractRepository(db DBTX) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `folio, client_tax_id, current_equipment, start_date, end_date,
	monthly_rent, shipping_fee, accumulated_expense, contracted_hours, version`

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	query := `INSERT INTO contracts (` + contractColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1)`
	_, err := r.db.ExecContext(ctx, query,
		c.Folio, c.ClientTaxID, c.CurrentEquipment, c.StartDate, c.EndDate,
		c.MonthlyRent, c.ShippingFee, c.AccumulatedExpense, c.ContractedHours)
	if err != nil {
		return duplicateOr(err, "folio", formatFolio(c.Folio))
	}
	c.Version = 1
	return nil
}

func (r *contractRepository) GetByFolio(ctx context.Context, folio int64) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE folio = $1`
	c, err := scanContract(r.db.QueryRowContext(ctx, query, folio))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return c, nil
}

func (r *contractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts ORDER BY folio`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Contract
	for rows.Next() {
		var c domain.Contract
		var start, end time.Time
		if err := rows.Scan(&c.Folio, &c.ClientTaxID, &c.CurrentEquipment, &start, &end,
			&c.MonthlyRent, &c.ShippingFee, &c.AccumulatedExpense, &c.ContractedHours, &c.Version); err != nil {
			return nil, err
		}
		c.StartDate = start.Format("2006-01-02")
		c.EndDate = end.Format("2006-01-02")
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *contractRepository) ListFoliosByYear(ctx context.Context, year int) ([]int64, error) {
	// folio = year*100000 + sequence, so the year's folios form a dense range.
	lo := int64(year) * 100000
	hi := lo + 99999
	rows, err := r.db.QueryContext(ctx, `SELECT folio FROM contracts WHERE folio BETWEEN $1 AND $2`, lo, hi)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var f int64
		if err := rows.Scan(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *contractRepository) Update(ctx context.Context, c *domain.Contract) error {
	query := `UPDATE contracts SET client_tax_id = $1, current_equipment = $2, start_date = $3,
	          end_date = $4, monthly_rent = $5, shipping_fee = $6, accumulated_expense = $7,
	          contracted_hours = $8, version = version + 1
	          WHERE folio = $9 AND version = $10`
	res, err := r.db.ExecContext(ctx, query,
		c.ClientTaxID, c.CurrentEquipment, c.StartDate, c.EndDate,
		c.MonthlyRent, c.ShippingFee, c.AccumulatedExpense, c.ContractedHours,
		c.Folio, c.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM contracts WHERE folio = $1)`, c.Folio).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return domain.ErrConflict
		}
		return domain.ErrNotFound
	}
	c.Version++
	return nil
}

func (r *contractRepository) Delete(ctx context.Context, folio int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contracts WHERE folio = $1`, folio)
	if err != nil {
		return err
	}
	return requireRows(res)
}

func (r *contractRepository) CountByClient(ctx context.Context, taxID string) (int32, error) {
	var n int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM contracts WHERE client_tax_id = $1`, taxID).Scan(&n)
	return n, err
}

func (r *contractRepository) CountByEquipment(ctx context.Context, unitCode string) (int32, error) {
	var n int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM contracts WHERE current_equipment = $1`, unitCode).Scan(&n)
	return n, err
}

func scanContract(row *sql.Row) (*domain.Contract, error) {
	c := &domain.Contract{}
	var start, end time.Time
	err := row.Scan(&c.Folio, &c.ClientTaxID, &c.CurrentEquipment, &start, &end,
		&c.MonthlyRent, &c.ShippingFee, &c.AccumulatedExpense, &c.ContractedHours, &c.Version)
	if err != nil {
		return nil, err
	}
	c.StartDate = start.Format("2006-01-02")
	c.EndDate = end.Format("2006-01-02")
	return c, nil
}
