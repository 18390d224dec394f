package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
)

func TestContractCreateDuplicateFolio(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectExec(`INSERT INTO contracts`).
		WillReturnError(&pq.Error{Code: "23505"})

	c := &domain.Contract{Folio: 202400003, ClientTaxID: "123456789", CurrentEquipment: "G-100",
		StartDate: "2024-02-01", EndDate: "2024-08-01", MonthlyRent: 500000}
	err := store.Contracts().Create(context.Background(), c)

	var de *domain.DuplicateError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "folio", de.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractGetByFolioFormatsDates(t *testing.T) {
	store, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"folio", "client_tax_id", "current_equipment", "start_date", "end_date",
		"monthly_rent", "shipping_fee", "accumulated_expense", "contracted_hours", "version"}).
		AddRow(int64(202400003), "123456789", "G-100",
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC),
			int64(500000), int64(50000), int64(0), int32(200), int32(1))
	mock.ExpectQuery(`SELECT .+ FROM contracts WHERE folio`).
		WithArgs(int64(202400003)).
		WillReturnRows(rows)

	c, err := store.Contracts().GetByFolio(context.Background(), 202400003)
	require.NoError(t, err)

	assert.Equal(t, "2024-02-01", c.StartDate)
	assert.Equal(t, domain.IndefiniteEndDate, c.EndDate)
	assert.True(t, c.Indefinite())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractListFoliosByYearRange(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectQuery(`SELECT folio FROM contracts WHERE folio BETWEEN`).
		WithArgs(int64(202400000), int64(202499999)).
		WillReturnRows(sqlmock.NewRows([]string{"folio"}).AddRow(int64(202400000)).AddRow(int64(202400001)))

	folios, err := store.Contracts().ListFoliosByYear(context.Background(), 2024)
	require.NoError(t, err)

	assert.Equal(t, []int64{202400000, 202400001}, folios)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractUpdateConflict(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectExec(`UPDATE contracts SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(202400003)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	c := &domain.Contract{Folio: 202400003, ClientTaxID: "123456789", CurrentEquipment: "G-100",
		StartDate: "2024-02-01", EndDate: "2024-08-01", Version: 2}
	err := store.Contracts().Update(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecTxCommitsOnSuccess(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM contracts`).
		WithArgs(int64(202400003)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.ExecTx(context.Background(), func(tx repository.Store) error {
		return tx.Contracts().Delete(context.Background(), 202400003)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecTxRollsBackOnError(t *testing.T) {
	store, mock := newMock(t)

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM contracts`).
		WithArgs(int64(202400003)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := store.ExecTx(context.Background(), func(tx repository.Store) error {
		if err := tx.Contracts().Delete(context.Background(), 202400003); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
