package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ansimaq-erp-backend/internal/domain"
)

func TestContractSummaryTotals(t *testing.T) {
	store := newMockStore()
	svc := NewRollupService(store)
	ctx := context.Background()

	contract := &domain.Contract{
		Folio: 202400002, StartDate: "2024-01-01", EndDate: "2024-05-31",
	}
	store.contracts.On("GetByFolio", ctx, int64(202400002)).Return(contract, nil)
	store.rollups.On("ContractMonthly", ctx, int64(202400002)).Return([]domain.MonthlySummary{
		{Year: 2024, Month: 1, Income: 550000, Expense: 0, Profit: 550000},
		{Year: 2024, Month: 2, Income: 500000, Expense: 50000, Profit: 450000},
	}, nil)

	sum, err := svc.ContractSummary(ctx, 202400002)
	require.NoError(t, err)

	assert.Equal(t, int64(1050000), sum.TotalIncome)
	assert.Equal(t, int64(50000), sum.TotalExpense)
	assert.Equal(t, int64(1000000), sum.TotalProfit)
	// 5 months spanned
	assert.Equal(t, int64(200000), sum.MonthlyEquivalent)
}

func TestContractSummaryNoBillingRows(t *testing.T) {
	store := newMockStore()
	svc := NewRollupService(store)
	ctx := context.Background()

	contract := &domain.Contract{
		Folio: 202400002, StartDate: "2024-01-01", EndDate: "2024-05-31",
	}
	store.contracts.On("GetByFolio", ctx, int64(202400002)).Return(contract, nil)
	store.rollups.On("ContractMonthly", ctx, int64(202400002)).Return([]domain.MonthlySummary{}, nil)

	sum, err := svc.ContractSummary(ctx, 202400002)
	require.NoError(t, err)

	assert.Zero(t, sum.TotalIncome)
	assert.Zero(t, sum.MonthlyEquivalent)
}

func TestEquipmentRankingOrdersByProfit(t *testing.T) {
	store := newMockStore()
	svc := NewRollupService(store)
	ctx := context.Background()

	store.rollups.On("EquipmentTotals", ctx).Return([]domain.EquipmentRanking{
		{UnitCode: "G-200", Income: 2000000, Expense: 100000, Profit: 1900000},
		{UnitCode: "G-100", Income: 1000000, Expense: 300000, Profit: 700000},
	}, nil)

	ranking, err := svc.EquipmentRanking(ctx)
	require.NoError(t, err)

	require.Len(t, ranking, 2)
	assert.Equal(t, "G-200", ranking[0].UnitCode)
	assert.Equal(t, int64(700000), ranking[1].Profit)
	store.assertExpectations(t)
}

func TestClientRankingPassesActiveFilter(t *testing.T) {
	store := newMockStore()
	svc := NewRollupService(store)
	ctx := context.Background()

	store.rollups.On("ClientTotals", ctx, true, mock.Anything).Return([]domain.ClientRanking{
		{TaxID: "123456789", CompanyName: "Constructora Sur", Contracts: 2, Income: 1000000, Expense: 100000, Profit: 900000},
	}, nil)

	ranking, err := svc.ClientRanking(ctx, true)
	require.NoError(t, err)

	require.Len(t, ranking, 1)
	assert.Equal(t, int64(100000), ranking[0].Expense)
	store.assertExpectations(t)
}
