package repository

import (
	"context"
	"time"

	"ansimaq-erp-backend/internal/domain"
)

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByCode(ctx context.Context, unitCode string) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	// Update is version-guarded: it fails with domain.ErrConflict when the
	// row changed since it was read, and bumps e.Version on success.
	// prevCode addresses the row so the unit code itself can be corrected.
	Update(ctx context.Context, prevCode string, e *domain.Equipment) error
	Delete(ctx context.Context, unitCode string) error
}

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByTaxID(ctx context.Context, taxID string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Search(ctx context.Context, query string) ([]domain.Client, error)
	Update(ctx context.Context, prevTaxID string, c *domain.Client) error
	Delete(ctx context.Context, taxID string) error
}

type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	GetByFolio(ctx context.Context, folio int64) (*domain.Contract, error)
	List(ctx context.Context) ([]domain.Contract, error)
	// ListFoliosByYear feeds the folio generator inside the insert transaction.
	ListFoliosByYear(ctx context.Context, year int) ([]int64, error)
	Update(ctx context.Context, c *domain.Contract) error
	Delete(ctx context.Context, folio int64) error
	CountByClient(ctx context.Context, taxID string) (int32, error)
	CountByEquipment(ctx context.Context, unitCode string) (int32, error)
}

type ServiceHistoryRepository interface {
	Create(ctx context.Context, e *domain.ServiceEntry) error
	GetByID(ctx context.Context, id int32) (*domain.ServiceEntry, error)
	ListByFolio(ctx context.Context, folio int64) ([]domain.ServiceEntry, error)
	Update(ctx context.Context, e *domain.ServiceEntry) error
	Delete(ctx context.Context, id int32) error
	DeleteByFolio(ctx context.Context, folio int64) error
	CountDeliveries(ctx context.Context, folio int64) (int32, error)
	// LastBefore returns the chronologically previous entry for a contract,
	// or domain.ErrNotFound if the given entry is the first.
	LastBefore(ctx context.Context, folio int64, id int32) (*domain.ServiceEntry, error)
}

type BillingRepository interface {
	Create(ctx context.Context, b *domain.BillingRecord) error
	GetByID(ctx context.Context, id int32) (*domain.BillingRecord, error)
	ListByFolio(ctx context.Context, folio int64) ([]domain.BillingRecord, error)
	GetByServiceEntry(ctx context.Context, entryID int32) (*domain.BillingRecord, error)
	Update(ctx context.Context, b *domain.BillingRecord) error
	Delete(ctx context.Context, id int32) error
	DeleteByServiceEntry(ctx context.Context, entryID int32) error
	DeleteByFolio(ctx context.Context, folio int64) error
	// ListOverduePending returns pending rent invoices whose payment date has
	// passed, for the reminder job.
	ListOverduePending(ctx context.Context, asOf time.Time) ([]domain.BillingRecord, error)
}

type RollupRepository interface {
	EquipmentMonthly(ctx context.Context, unitCode string) ([]domain.MonthlySummary, error)
	ContractMonthly(ctx context.Context, folio int64) ([]domain.MonthlySummary, error)
	// EquipmentTotals aggregates billing income and expense per unit across
	// all contracts, best profit first.
	EquipmentTotals(ctx context.Context) ([]domain.EquipmentRanking, error)
	// ClientTotals aggregates income per client from rent invoices and expense
	// from the contracts' accumulated maintenance-expense fields. With
	// activeOnly set, only contracts whose date range contains asOf count.
	ClientTotals(ctx context.Context, activeOnly bool, asOf time.Time) ([]domain.ClientRanking, error)
}

// Store bundles the repositories and runs multi-write operations atomically:
// every repository call made through the Store handed to fn shares one
// database transaction, committed only if fn returns nil.
type Store interface {
	Equipment() EquipmentRepository
	Clients() ClientRepository
	Contracts() ContractRepository
	History() ServiceHistoryRepository
	Billing() BillingRepository
	Rollups() RollupRepository
	ExecTx(ctx context.Context, fn func(Store) error) error
}
