package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ansimaq-erp-backend/internal/domain"
)

func billingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "kind", "folio", "equipment_code", "service_entry_id",
		"month", "year", "payment_date", "overtime_hours", "overtime_rate", "amount", "expense", "status"})
}

func TestBillingCreateReturnsID(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO billing`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	b := &domain.BillingRecord{
		Kind:        domain.BillingRentInvoice,
		Folio:       202400003,
		Month:       2,
		Year:        2024,
		PaymentDate: "2024-02-25",
		Amount:      570000,
		Status:      domain.InvoicePending,
	}
	require.NoError(t, store.Billing().Create(context.Background(), b))

	assert.Equal(t, int32(42), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillingListOverduePending(t *testing.T) {
	store, mock := newMock(t)

	rows := billingRows().AddRow(int32(1), string(domain.BillingRentInvoice), int64(202400003), "G-100", nil,
		1, 2024, time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC), int64(0), int64(0), int64(500000), int64(0), int(domain.InvoicePending))
	mock.ExpectQuery(`SELECT .+ FROM billing`).
		WithArgs(string(domain.BillingRentInvoice), int(domain.InvoicePending), "2024-03-01").
		WillReturnRows(rows)

	overdue, err := store.Billing().ListOverduePending(context.Background(),
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, overdue, 1)
	assert.Equal(t, "2024-01-25", overdue[0].PaymentDate)
	assert.Equal(t, int64(500000), overdue[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillingGetByServiceEntryNotFound(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM billing WHERE service_entry_id`).
		WithArgs(int32(9)).
		WillReturnRows(billingRows())

	_, err := store.Billing().GetByServiceEntry(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
