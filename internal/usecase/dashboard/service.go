// Package dashboard combines investments, savings and the emergency fund into net worth.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/ledger"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/valuation"
)

// NetWorthResult represents the calculated net worth.
// Every component is already converted to Currency.
type NetWorthResult struct {
	Currency    domain.Currency
	Total       domain.Money
	Investments domain.Money
	Savings     domain.Money
	Emergency   domain.Money
}

// BalancesResult represents the savings buckets and the emergency fund, in RON
type BalancesResult struct {
	Buckets   []ledger.Balance
	Emergency ledger.Balance
	Total     decimal.Decimal // bucket balances only
}

// DashboardService handles dashboard-related operations
type DashboardService struct {
	DataRepo domain.DatasetRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(dataRepo domain.DatasetRepository) *DashboardService {
	return &DashboardService{
		DataRepo: dataRepo,
	}
}

// GetNetWorth calculates the total net worth in the requested currency
// Logic:
//   - Investments: current portfolio value (EUR)
//   - Savings: sum of all savings bucket balances (RON)
//   - Emergency: emergency fund balance (RON)
//   - Total: sum of the three after converting each to currency with Settings.EURRate
func (s *DashboardService) GetNetWorth(ctx context.Context, currency domain.Currency) (*NetWorthResult, error) {
	if currency != domain.EUR && currency != domain.RON {
		return nil, fmt.Errorf("%w: net worth currency must be EUR or RON, got %q", domain.ErrInvalid, currency)
	}

	data, err := s.DataRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	// 1. Compute each component in its own currency
	portfolio := valuation.ValuePortfolio(data.Assets, data.Deposits, data.Snapshots)
	savings := ledger.TotalSavings(ledger.BucketBalances(data.SavingsBuckets, data.SavingsTransactions))
	emergency := ledger.RunningBalance(data.EmergencyTransactions)

	// 2. Convert to the requested currency
	conv := domain.NewConverter(data.Settings)
	result := &NetWorthResult{Currency: currency}
	components := []struct {
		dst *domain.Money
		src domain.Money
	}{
		{&result.Investments, portfolio.Value()},
		{&result.Savings, domain.NewMoney(savings, domain.CashCurrency)},
		{&result.Emergency, domain.NewMoney(emergency, domain.CashCurrency)},
	}

	// 3. Sum
	result.Total = domain.Zero(currency)
	for _, c := range components {
		converted, err := conv.Convert(c.src, currency)
		if err != nil {
			return nil, err
		}
		*c.dst = converted
		if result.Total, err = result.Total.Add(converted); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// GetBalances computes every savings bucket balance and the emergency fund
func (s *DashboardService) GetBalances(ctx context.Context) (*BalancesResult, error) {
	data, err := s.DataRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	buckets := ledger.BucketBalances(data.SavingsBuckets, data.SavingsTransactions)
	return &BalancesResult{
		Buckets:   buckets,
		Emergency: ledger.EmergencyFund(data.EmergencyTransactions, data.Settings.EmergencyTarget),
		Total:     ledger.TotalSavings(buckets),
	}, nil
}
