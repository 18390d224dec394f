package postgres

import (
	"context"
	"sort"
	"time"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
)

type rollupRepository struct {
	db DBTX
}

func NewRollupRepository(db DBTX) repository.RollupRepository {
	return &rollupRepository{db: db}
}

func (r *rollupRepository) EquipmentMonthly(ctx context.Context, unitCode string) ([]domain.MonthlySummary, error) {
	query := `SELECT year, month, COALESCE(SUM(amount), 0), COALESCE(SUM(expense), 0)
	          FROM billing WHERE equipment_code = $1
	          GROUP BY year, month ORDER BY year, month`
	return r.monthly(ctx, query, unitCode)
}

func (r *rollupRepository) ContractMonthly(ctx context.Context, folio int64) ([]domain.MonthlySummary, error) {
	query := `SELECT year, month, COALESCE(SUM(amount), 0), COALESCE(SUM(expense), 0)
	          FROM billing WHERE folio = $1
	          GROUP BY year, month ORDER BY year, month`
	return r.monthly(ctx, query, folio)
}

func (r *rollupRepository) monthly(ctx context.Context, query string, arg interface{}) ([]domain.MonthlySummary, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MonthlySummary
	for rows.Next() {
		var s domain.MonthlySummary
		if err := rows.Scan(&s.Year, &s.Month, &s.Income, &s.Expense); err != nil {
			return nil, err
		}
		s.Profit = s.Income - s.Expense
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *rollupRepository) EquipmentTotals(ctx context.Context) ([]domain.EquipmentRanking, error) {
	query := `SELECT equipment_code, COALESCE(SUM(amount), 0), COALESCE(SUM(expense), 0)
	          FROM billing
	          GROUP BY equipment_code
	          ORDER BY COALESCE(SUM(amount), 0) - COALESCE(SUM(expense), 0) DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.EquipmentRanking
	for rows.Next() {
		var rk domain.EquipmentRanking
		if err := rows.Scan(&rk.UnitCode, &rk.Income, &rk.Expense); err != nil {
			return nil, err
		}
		rk.Profit = rk.Income - rk.Expense
		out = append(out, rk)
	}
	return out, rows.Err()
}

// ClientTotals runs two aggregations and merges them: contract counts plus
// accumulated maintenance expense per client, and rent-invoice income per
// client. Expense deliberately comes from the contracts' accumulator field
// only, so line-item expense billing rows are not double-counted.
func (r *rollupRepository) ClientTotals(ctx context.Context, activeOnly bool, asOf time.Time) ([]domain.ClientRanking, error) {
	day := asOf.Format("2006-01-02")

	contractQuery := `SELECT cl.tax_id, cl.company_name, count(ct.folio), COALESCE(SUM(ct.accumulated_expense), 0)
	                  FROM clients cl
	                  LEFT JOIN contracts ct ON ct.client_tax_id = cl.tax_id`
	var args []interface{}
	if activeOnly {
		contractQuery += ` AND ct.start_date <= $1 AND ct.end_date >= $1`
		args = append(args, day)
	}
	contractQuery += ` GROUP BY cl.tax_id, cl.company_name`

	rows, err := r.db.QueryContext(ctx, contractQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byTaxID := make(map[string]*domain.ClientRanking)
	var order []string
	for rows.Next() {
		var rk domain.ClientRanking
		if err := rows.Scan(&rk.TaxID, &rk.CompanyName, &rk.Contracts, &rk.Expense); err != nil {
			return nil, err
		}
		byTaxID[rk.TaxID] = &rk
		order = append(order, rk.TaxID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	incomeQuery := `SELECT ct.client_tax_id, COALESCE(SUM(b.amount), 0)
	                FROM billing b
	                JOIN contracts ct ON ct.folio = b.folio
	                WHERE b.kind = $1`
	incomeArgs := []interface{}{domain.BillingRentInvoice}
	if activeOnly {
		incomeQuery += ` AND ct.start_date <= $2 AND ct.end_date >= $2`
		incomeArgs = append(incomeArgs, day)
	}
	incomeQuery += ` GROUP BY ct.client_tax_id`

	incomeRows, err := r.db.QueryContext(ctx, incomeQuery, incomeArgs...)
	if err != nil {
		return nil, err
	}
	defer incomeRows.Close()

	for incomeRows.Next() {
		var taxID string
		var income int64
		if err := incomeRows.Scan(&taxID, &income); err != nil {
			return nil, err
		}
		if rk, ok := byTaxID[taxID]; ok {
			rk.Income = income
		}
	}
	if err := incomeRows.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.ClientRanking, 0, len(order))
	for _, taxID := range order {
		rk := byTaxID[taxID]
		rk.Profit = rk.Income - rk.Expense
		out = append(out, *rk)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Income > out[j].Income })
	return out, nil
}
