package domain

// Client is a renting company. TaxID is the normalized (digits-only) RUT and
// acts as the primary key; contracts reference it.
type Client struct {
	TaxID               string `json:"tax_id"`
	CompanyName         string `json:"company_name"`
	SiteName            string `json:"site_name"`
	RepresentativeName  string `json:"representative_name"`
	RepresentativeTaxID string `json:"representative_tax_id"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
}
