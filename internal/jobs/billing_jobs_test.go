package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ansimaq-erp-backend/internal/domain"
)

func TestHasInvoiceForPeriod(t *testing.T) {
	records := []domain.BillingRecord{
		{ID: 1, Kind: domain.BillingRentInvoice, Year: 2024, Month: 2},
		{ID: 2, Kind: domain.BillingExpense, Year: 2024, Month: 3},
	}

	assert.True(t, hasInvoiceForPeriod(records, 2024, 2))
	// An expense record for the month does not count as the rent invoice.
	assert.False(t, hasInvoiceForPeriod(records, 2024, 3))
	assert.False(t, hasInvoiceForPeriod(records, 2023, 2))
}
