package domain

// IndefiniteEndDate is the sentinel end date for open-ended contracts.
const IndefiniteEndDate = "2099-12-31"

// Contract is a rental agreement. Folio is the year-prefixed sequential
// identifier (e.g. 202400003). CurrentEquipment is maintained transactionally
// by every operation that moves equipment; it is never re-derived from the
// service history.
type Contract struct {
	Folio            int64  `json:"folio"`
	ClientTaxID      string `json:"client_tax_id"`
	CurrentEquipment string `json:"current_equipment"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	MonthlyRent      int64  `json:"monthly_rent"`
	ShippingFee      int64  `json:"shipping_fee"`
	// AccumulatedExpense is the running total of maintenance and repair
	// costs charged against this contract (egreso arriendo).
	AccumulatedExpense int64 `json:"accumulated_expense"`
	ContractedHours    int32 `json:"contracted_hours"`
	Version            int32 `json:"version"`
}

func (c *Contract) Indefinite() bool {
	return c.EndDate == IndefiniteEndDate
}
