package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/lib/pq"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so the same repository code
// runs standalone or inside a transaction opened by Store.ExecTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db        *sql.DB
	equipment repository.EquipmentRepository
	clients   repository.ClientRepository
	contracts repository.ContractRepository
	history   repository.ServiceHistoryRepository
	billing   repository.BillingRepository
	rollups   repository.RollupRepository
}

func NewStore(db *sql.DB) *Store {
	return bindStore(db, db)
}

func bindStore(db *sql.DB, q DBTX) *Store {
	return &Store{
		db:        db,
		equipment: NewEquipmentRepository(q),
		clients:   NewClientRepository(q),
		contracts: NewContractRepository(q),
		history:   NewServiceHistoryRepository(q),
		billing:   NewBillingRepository(q),
		rollups:   NewRollupRepository(q),
	}
}

func (s *Store) Equipment() repository.EquipmentRepository      { return s.equipment }
func (s *Store) Clients() repository.ClientRepository           { return s.clients }
func (s *Store) Contracts() repository.ContractRepository       { return s.contracts }
func (s *Store) History() repository.ServiceHistoryRepository   { return s.history }
func (s *Store) Billing() repository.BillingRepository          { return s.billing }
func (s *Store) Rollups() repository.RollupRepository           { return s.rollups }

// ExecTx runs fn with a Store bound to a single transaction. All writes of
// one logical operation commit or roll back together.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(bindStore(s.db, tx)); err != nil {
		return err
	}
	return tx.Commit()
}

func formatFolio(folio int64) string {
	return strconv.FormatInt(folio, 10)
}

// isUniqueViolation reports a postgres unique-constraint error (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func duplicateOr(err error, field, value string) error {
	if isUniqueViolation(err) {
		return &domain.DuplicateError{Field: field, Value: value}
	}
	return err
}

func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// requireRows maps a zero-rows-affected result to domain.ErrNotFound, making
// the legacy "zero rows means it was gone" signal explicit.
func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
