package postgres

import (
	"context"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
)

type clientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) repository.ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `tax_id, company_name, site_name, rep_name, rep_tax_id, email, phone`

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (` + clientColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		c.TaxID, c.CompanyName, c.SiteName, c.RepresentativeName, c.RepresentativeTaxID, c.Email, c.Phone)
	return duplicateOr(err, "tax_id", c.TaxID)
}

func (r *clientRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients WHERE tax_id = $1`
	err := r.db.QueryRowContext(ctx, query, taxID).Scan(
		&c.TaxID, &c.CompanyName, &c.SiteName, &c.RepresentativeName, &c.RepresentativeTaxID, &c.Email, &c.Phone)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	return r.query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY company_name`)
}

func (r *clientRepository) Search(ctx context.Context, q string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients
	          WHERE company_name ILIKE '%' || $1 || '%'
	             OR tax_id LIKE '%' || $1 || '%'
	             OR rep_name ILIKE '%' || $1 || '%'
	          ORDER BY company_name`
	return r.query(ctx, query, q)
}

func (r *clientRepository) query(ctx context.Context, query string, args ...interface{}) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.TaxID, &c.CompanyName, &c.SiteName, &c.RepresentativeName, &c.RepresentativeTaxID, &c.Email, &c.Phone); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clientRepository) Update(ctx context.Context, prevTaxID string, c *domain.Client) error {
	query := `UPDATE clients SET tax_id = $1, company_name = $2, site_name = $3, rep_name = $4,
	          rep_tax_id = $5, email = $6, phone = $7 WHERE tax_id = $8`
	res, err := r.db.ExecContext(ctx, query,
		c.TaxID, c.CompanyName, c.SiteName, c.RepresentativeName, c.RepresentativeTaxID, c.Email, c.Phone, prevTaxID)
	if err != nil {
		return duplicateOr(err, "tax_id", c.TaxID)
	}
	return requireRows(res)
}

func (r *clientRepository) Delete(ctx context.Context, taxID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE tax_id = $1`, taxID)
	if err != nil {
		return err
	}
	return requireRows(res)
}
