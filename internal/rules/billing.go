package rules

import (
	"ansimaq-erp-backend/internal/domain"
)

// ComputeRentInvoice returns the amount due for a monthly rent invoice:
// the contract's monthly rent, plus the one-time shipping fee on the first
// invoice only, plus overtime charges. All monetary values are whole,
// non-negative pesos.
func ComputeRentInvoice(c *domain.Contract, firstInvoice bool, overtimeHours, overtimeRate int64) (int64, error) {
	if c.MonthlyRent < 0 {
		return 0, &domain.ValidationError{Field: "monthly_rent", Reason: "must be non-negative"}
	}
	if c.ShippingFee < 0 {
		return 0, &domain.ValidationError{Field: "shipping_fee", Reason: "must be non-negative"}
	}
	if overtimeHours < 0 {
		return 0, &domain.ValidationError{Field: "overtime_hours", Reason: "must be non-negative"}
	}
	if overtimeRate < 0 {
		return 0, &domain.ValidationError{Field: "overtime_rate", Reason: "must be non-negative"}
	}

	amount := c.MonthlyRent
	if firstInvoice {
		amount += c.ShippingFee
	}
	amount += overtimeHours * overtimeRate
	return amount, nil
}

// FirstInvoice reports whether an invoice issued for (year, month) would be
// the contract's first: no other rent invoice exists with an earlier period,
// ordered by year then month. The result is derived from the existing
// records, never from a stored flag. selfID excludes the record being edited.
func FirstInvoice(records []domain.BillingRecord, year, month int, selfID int32) bool {
	for i := range records {
		r := &records[i]
		if !r.IsRentInvoice() || r.ID == selfID {
			continue
		}
		if r.Year < year || (r.Year == year && r.Month < month) {
			return false
		}
	}
	return true
}

// ApplyServiceExpense adds a maintenance or repair cost to the contract's
// expense accumulator.
func ApplyServiceExpense(c *domain.Contract, amount int64) error {
	if amount < 0 {
		return &domain.ValidationError{Field: "expense", Reason: "must be non-negative"}
	}
	c.AccumulatedExpense += amount
	return nil
}

// RevertServiceExpense removes a previously applied cost, flooring at zero so
// a corrected history entry can never drive the accumulator negative.
func RevertServiceExpense(c *domain.Contract, amount int64) {
	c.AccumulatedExpense -= amount
	if c.AccumulatedExpense < 0 {
		c.AccumulatedExpense = 0
	}
}

// MonthlyEquivalent spreads a total over a month count, reporting zero for
// zero-duration spans instead of dividing by zero.
func MonthlyEquivalent(total int64, months int) int64 {
	if months <= 0 {
		return 0
	}
	return total / int64(months)
}
