package service

import (
	"context"
	"time"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/repository"
	"ansimaq-erp-backend/internal/rules"
)

type rollupService struct {
	store repository.Store
}

func NewRollupService(store repository.Store) RollupService {
	return &rollupService{store: store}
}

func (s *rollupService) EquipmentMonthly(ctx context.Context, unitCode string) ([]domain.MonthlySummary, error) {
	if _, err := s.store.Equipment().GetByCode(ctx, unitCode); err != nil {
		return nil, err
	}
	return s.store.Rollups().EquipmentMonthly(ctx, unitCode)
}

func (s *rollupService) EquipmentRanking(ctx context.Context) ([]domain.EquipmentRanking, error) {
	return s.store.Rollups().EquipmentTotals(ctx)
}

// ContractSummary collects the monthly income/expense series for a contract
// plus its lifetime totals and the profit spread per contracted month.
func (s *rollupService) ContractSummary(ctx context.Context, folio int64) (*domain.ContractSummary, error) {
	contract, err := s.store.Contracts().GetByFolio(ctx, folio)
	if err != nil {
		return nil, err
	}
	months, err := s.store.Rollups().ContractMonthly(ctx, folio)
	if err != nil {
		return nil, err
	}

	sum := &domain.ContractSummary{Folio: folio, Months: months}
	for i := range months {
		sum.TotalIncome += months[i].Income
		sum.TotalExpense += months[i].Expense
	}
	sum.TotalProfit = sum.TotalIncome - sum.TotalExpense
	// Open-ended contracts are measured up to today, not the sentinel date.
	end := contract.EndDate
	if contract.Indefinite() {
		end = time.Now().UTC().Format("2006-01-02")
	}
	span := rules.MonthsSpanned(contract.StartDate, end)
	sum.MonthlyEquivalent = rules.MonthlyEquivalent(sum.TotalProfit, span)
	return sum, nil
}

func (s *rollupService) ClientRanking(ctx context.Context, activeOnly bool) ([]domain.ClientRanking, error) {
	return s.store.Rollups().ClientTotals(ctx, activeOnly, time.Now())
}
