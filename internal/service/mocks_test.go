package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
)

type MockEquipmentRepo struct{ mock.Mock }

func (m *MockEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEquipmentRepo) GetByCode(ctx context.Context, unitCode string) (*domain.Equipment, error) {
	args := m.Called(ctx, unitCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepo) Update(ctx context.Context, prevCode string, e *domain.Equipment) error {
	return m.Called(ctx, prevCode, e).Error(0)
}

func (m *MockEquipmentRepo) Delete(ctx context.Context, unitCode string) error {
	return m.Called(ctx, unitCode).Error(0)
}

type MockClientRepo struct{ mock.Mock }

func (m *MockClientRepo) Create(ctx context.Context, c *domain.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepo) GetByTaxID(ctx context.Context, taxID string) (*domain.Client, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepo) Search(ctx context.Context, query string) ([]domain.Client, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepo) Update(ctx context.Context, prevTaxID string, c *domain.Client) error {
	return m.Called(ctx, prevTaxID, c).Error(0)
}

func (m *MockClientRepo) Delete(ctx context.Context, taxID string) error {
	return m.Called(ctx, taxID).Error(0)
}

type MockContractRepo struct{ mock.Mock }

func (m *MockContractRepo) Create(ctx context.Context, c *domain.Contract) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockContractRepo) GetByFolio(ctx context.Context, folio int64) (*domain.Contract, error) {
	args := m.Called(ctx, folio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepo) List(ctx context.Context) ([]domain.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractRepo) ListFoliosByYear(ctx context.Context, year int) ([]int64, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockContractRepo) Update(ctx context.Context, c *domain.Contract) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockContractRepo) Delete(ctx context.Context, folio int64) error {
	return m.Called(ctx, folio).Error(0)
}

func (m *MockContractRepo) CountByClient(ctx context.Context, taxID string) (int32, error) {
	args := m.Called(ctx, taxID)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockContractRepo) CountByEquipment(ctx context.Context, unitCode string) (int32, error) {
	args := m.Called(ctx, unitCode)
	return args.Get(0).(int32), args.Error(1)
}

type MockHistoryRepo struct{ mock.Mock }

func (m *MockHistoryRepo) Create(ctx context.Context, e *domain.ServiceEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockHistoryRepo) GetByID(ctx context.Context, id int32) (*domain.ServiceEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceEntry), args.Error(1)
}

func (m *MockHistoryRepo) ListByFolio(ctx context.Context, folio int64) ([]domain.ServiceEntry, error) {
	args := m.Called(ctx, folio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceEntry), args.Error(1)
}

func (m *MockHistoryRepo) Update(ctx context.Context, e *domain.ServiceEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockHistoryRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockHistoryRepo) DeleteByFolio(ctx context.Context, folio int64) error {
	return m.Called(ctx, folio).Error(0)
}

func (m *MockHistoryRepo) CountDeliveries(ctx context.Context, folio int64) (int32, error) {
	args := m.Called(ctx, folio)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockHistoryRepo) LastBefore(ctx context.Context, folio int64, id int32) (*domain.ServiceEntry, error) {
	args := m.Called(ctx, folio, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceEntry), args.Error(1)
}

type MockBillingRepo struct{ mock.Mock }

func (m *MockBillingRepo) Create(ctx context.Context, b *domain.BillingRecord) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBillingRepo) GetByID(ctx context.Context, id int32) (*domain.BillingRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingRecord), args.Error(1)
}

func (m *MockBillingRepo) ListByFolio(ctx context.Context, folio int64) ([]domain.BillingRecord, error) {
	args := m.Called(ctx, folio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingRecord), args.Error(1)
}

func (m *MockBillingRepo) GetByServiceEntry(ctx context.Context, entryID int32) (*domain.BillingRecord, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingRecord), args.Error(1)
}

func (m *MockBillingRepo) Update(ctx context.Context, b *domain.BillingRecord) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBillingRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBillingRepo) DeleteByServiceEntry(ctx context.Context, entryID int32) error {
	return m.Called(ctx, entryID).Error(0)
}

func (m *MockBillingRepo) DeleteByFolio(ctx context.Context, folio int64) error {
	return m.Called(ctx, folio).Error(0)
}

func (m *MockBillingRepo) ListOverduePending(ctx context.Context, asOf time.Time) ([]domain.BillingRecord, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingRecord), args.Error(1)
}

type MockRollupRepo struct{ mock.Mock }

func (m *MockRollupRepo) EquipmentMonthly(ctx context.Context, unitCode string) ([]domain.MonthlySummary, error) {
	args := m.Called(ctx, unitCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySummary), args.Error(1)
}

func (m *MockRollupRepo) ContractMonthly(ctx context.Context, folio int64) ([]domain.MonthlySummary, error) {
	args := m.Called(ctx, folio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySummary), args.Error(1)
}

func (m *MockRollupRepo) EquipmentTotals(ctx context.Context) ([]domain.EquipmentRanking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentRanking), args.Error(1)
}

func (m *MockRollupRepo) ClientTotals(ctx context.Context, activeOnly bool, asOf time.Time) ([]domain.ClientRanking, error) {
	args := m.Called(ctx, activeOnly, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientRanking), args.Error(1)
}

// mockStore hands every transactional callback back to itself, so a test
// sees the same expectations inside and outside ExecTx.
type mockStore struct {
	equipment *MockEquipmentRepo
	clients   *MockClientRepo
	contracts *MockContractRepo
	history   *MockHistoryRepo
	billing   *MockBillingRepo
	rollups   *MockRollupRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		equipment: &MockEquipmentRepo{},
		clients:   &MockClientRepo{},
		contracts: &MockContractRepo{},
		history:   &MockHistoryRepo{},
		billing:   &MockBillingRepo{},
		rollups:   &MockRollupRepo{},
	}
}

func (s *mockStore) Equipment() repository.EquipmentRepository    { return s.equipment }
func (s *mockStore) Clients() repository.ClientRepository         { return s.clients }
func (s *mockStore) Contracts() repository.ContractRepository     { return s.contracts }
func (s *mockStore) History() repository.ServiceHistoryRepository { return s.history }
func (s *mockStore) Billing() repository.BillingRepository        { return s.billing }
func (s *mockStore) Rollups() repository.RollupRepository         { return s.rollups }

func (s *mockStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

func (s *mockStore) assertExpectations(t mock.TestingT) {
	s.equipment.AssertExpectations(t)
	s.clients.AssertExpectations(t)
	s.contracts.AssertExpectations(t)
	s.history.AssertExpectations(t)
	s.billing.AssertExpectations(t)
	s.rollups.AssertExpectations(t)
}
