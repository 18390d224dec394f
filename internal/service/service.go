package service

import (
	"context"

	"ansimaq-erp-backend/internal/domain"
)

type EquipmentService interface {
	Create(ctx context.Context, e *domain.Equipment) error
	Get(ctx context.Context, unitCode string) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	Update(ctx context.Context, prevCode string, e *domain.Equipment) error
	RequestDelete(ctx context.Context, unitCode string) (string, error)
	ConfirmDelete(ctx context.Context, unitCode, token string) error
}

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	Get(ctx context.Context, taxID string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Search(ctx context.Context, query string) ([]domain.Client, error)
	Update(ctx context.Context, prevTaxID string, c *domain.Client) error
	RequestDelete(ctx context.Context, taxID string) (string, error)
	ConfirmDelete(ctx context.Context, taxID, token string) error
}

type ContractService interface {
	// Create assigns the folio, marks the equipment rented and writes the
	// initial delivery history entry, all in one transaction.
	Create(ctx context.Context, c *domain.Contract, deliveryHourMeter int32) (*domain.Contract, error)
	Get(ctx context.Context, folio int64) (*domain.Contract, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) error
	RequestDelete(ctx context.Context, folio int64) (string, error)
	ConfirmDelete(ctx context.Context, folio int64, token string) error
}

type HistoryService interface {
	Create(ctx context.Context, e *domain.ServiceEntry) error
	Get(ctx context.Context, id int32) (*domain.ServiceEntry, error)
	ListByFolio(ctx context.Context, folio int64) ([]domain.ServiceEntry, error)
	Update(ctx context.Context, e *domain.ServiceEntry) error
	Delete(ctx context.Context, id int32) error
}

type BillingService interface {
	// CreateInvoice and UpdateInvoice recompute the amount from the contract
	// terms; expense records are written by HistoryService only.
	CreateInvoice(ctx context.Context, b *domain.BillingRecord) error
	UpdateInvoice(ctx context.Context, b *domain.BillingRecord) error
	Get(ctx context.Context, id int32) (*domain.BillingRecord, error)
	ListByFolio(ctx context.Context, folio int64) ([]domain.BillingRecord, error)
	RequestDelete(ctx context.Context, id int32) (string, error)
	ConfirmDelete(ctx context.Context, id int32, token string) error
}

type RollupService interface {
	EquipmentMonthly(ctx context.Context, unitCode string) ([]domain.MonthlySummary, error)
	EquipmentRanking(ctx context.Context) ([]domain.EquipmentRanking, error)
	ContractSummary(ctx context.Context, folio int64) (*domain.ContractSummary, error)
	ClientRanking(ctx context.Context, activeOnly bool) ([]domain.ClientRanking, error)
}

type EmailService interface {
	SendOverdueInvoiceReminder(ctx context.Context, email, companyName string, folio int64, amount int64, paymentDate string) error
	SendContractExpiryNotice(ctx context.Context, email, companyName string, folio int64, endDate string) error
}
