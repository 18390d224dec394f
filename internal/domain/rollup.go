package domain

// MonthlySummary is one row of a per-equipment or per-contract income/expense
// series, grouped by calendar month.
type MonthlySummary struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Profit  int64 `json:"profit"`
}

// EquipmentRanking aggregates a unit's billing rows across every contract it
// served, ordered by profit so the best and worst earners surface first.
type EquipmentRanking struct {
	UnitCode string `json:"unit_code"`
	Income   int64  `json:"income"`
	Expense  int64  `json:"expense"`
	Profit   int64  `json:"profit"`
}

// ClientRanking aggregates a client's contracts: income is the sum of rent
// invoices across its contracts, expense the sum of the contracts' accumulated
// maintenance-expense fields. Clients whose contracts have no billing rows
// still appear with zero income.
type ClientRanking struct {
	TaxID       string `json:"tax_id"`
	CompanyName string `json:"company_name"`
	Contracts   int32  `json:"contracts"`
	Income      int64  `json:"income"`
	Expense     int64  `json:"expense"`
	Profit      int64  `json:"profit"`
}

// ContractSummary is the per-contract rollup: the monthly series plus totals
// and a guarded monthly equivalent of total profit over the months spanned.
type ContractSummary struct {
	Folio             int64            `json:"folio"`
	Months            []MonthlySummary `json:"months"`
	TotalIncome       int64            `json:"total_income"`
	TotalExpense      int64            `json:"total_expense"`
	TotalProfit       int64            `json:"total_profit"`
	MonthlyEquivalent int64            `json:"monthly_equivalent"`
}
