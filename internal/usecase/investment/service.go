// Package investment serves portfolio valuation, monthly investment activity
// and the asset, deposit, trade and snapshot records behind them.
package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/calendar"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/activity"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/snapshot"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/valuation"
)

// DefaultTrendMonths is the length of the monthly trend series
const DefaultTrendMonths = 6

// Portfolio represents the valued portfolio with its allocation by asset type
type Portfolio struct {
	valuation.PortfolioValuation
	Allocation map[domain.AssetType]decimal.Decimal
}

// MonthlyActivity represents one month of investment activity
type MonthlyActivity struct {
	Month      calendar.Month
	Flow       activity.Flow
	NetFlow    activity.Comparison // against the previous month
	EndValue   activity.Comparison // end-of-month portfolio value against the previous month
	Movers     []activity.Mover
	FlowTrend  activity.Series
	ValueTrend activity.Series
}

// InvestmentService handles investment-related operations
type InvestmentService struct {
	DataRepo     domain.DatasetRepository
	AssetRepo    domain.AssetRepository
	SnapshotRepo domain.SnapshotRepository
	Resolver     *snapshot.Resolver
}

// NewInvestmentService creates a new InvestmentService instance
func NewInvestmentService(dataRepo domain.DatasetRepository, assetRepo domain.AssetRepository, snapshotRepo domain.SnapshotRepository) *InvestmentService {
	return &InvestmentService{
		DataRepo:     dataRepo,
		AssetRepo:    assetRepo,
		SnapshotRepo: snapshotRepo,
		Resolver:     snapshot.NewResolver(),
	}
}

// GetPortfolio values every asset at its latest snapshot
func (s *InvestmentService) GetPortfolio(ctx context.Context) (*Portfolio, error) {
	data, err := s.DataRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	p := valuation.ValuePortfolio(data.Assets, data.Deposits, data.Snapshots)
	return &Portfolio{
		PortfolioValuation: p,
		Allocation:         valuation.Allocation(p, data.Assets),
	}, nil
}

// CalculateProfit returns the unrealized gain of one asset
// Logic: Gain = CurrentValue - InvestedAmount, where CurrentValue falls back to
// InvestedAmount when the asset has no price yet (gain 0)
func (s *InvestmentService) CalculateProfit(ctx context.Context, assetID uuid.UUID) (decimal.Decimal, error) {
	asset, err := s.AssetRepo.GetAsset(ctx, assetID)
	if err != nil {
		return decimal.Zero, err
	}
	data, err := s.DataRepo.Load(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load dataset: %w", err)
	}
	v := valuation.ValueAsset(*asset, data.DepositsFor(assetID), data.SnapshotsFor(assetID))
	return v.Gain(), nil
}

// GetMonthlyActivity aggregates deposits and valuations for one month
func (s *InvestmentService) GetMonthlyActivity(ctx context.Context, year, month0, trendMonths int) (*MonthlyActivity, error) {
	if month0 < 0 || month0 > 11 {
		return nil, fmt.Errorf("%w: month must be in [0, 11], got %d", domain.ErrInvalid, month0)
	}
	if trendMonths > activity.MaxTrendMonths {
		return nil, fmt.Errorf("%w: trend months must be at most %d, got %d", domain.ErrInvalid, activity.MaxTrendMonths, trendMonths)
	}
	if trendMonths <= 0 {
		trendMonths = DefaultTrendMonths
	}
	data, err := s.DataRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	month := calendar.Month{Year: year, Month0: month0}
	prev := month.Shift(-1)
	flow := activity.MonthlyFlow(data.Deposits, year, month0)
	prevFlow := activity.MonthlyFlow(data.Deposits, prev.Year, prev.Month0)
	endValue := func(m calendar.Month) decimal.Decimal {
		return activity.EndOfMonthValue(data.Assets, data.Deposits, data.Snapshots, m.Year, m.Month0)
	}

	return &MonthlyActivity{
		Month:      month,
		Flow:       flow,
		NetFlow:    activity.Compare(flow.NetFlow, prevFlow.NetFlow),
		EndValue:   activity.Compare(endValue(month), endValue(prev)),
		Movers:     activity.TopMovers(data.Deposits, year, month0, data.Assets, activity.DefaultMoverLimit),
		FlowTrend:  activity.NetFlowTrend(data.Deposits, trendMonths, year, month0),
		ValueTrend: activity.Trend(trendMonths, year, month0, endValue),
	}, nil
}

// UpdateMarketValue records the price of an asset on a date
// Logic: a snapshot already recorded for (asset, date) is overwritten, keeping its id;
// any other date gets a new snapshot
func (s *InvestmentService) UpdateMarketValue(ctx context.Context, assetID uuid.UUID, date string, price decimal.Decimal) (*domain.Snapshot, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: market value cannot be negative", domain.ErrInvalid)
	}

	// Verify asset exists
	if _, err := s.AssetRepo.GetAsset(ctx, assetID); err != nil {
		return nil, err
	}

	var result domain.Snapshot
	err := s.SnapshotRepo.MutateSnapshots(ctx, func(current []domain.Snapshot) ([]domain.Snapshot, error) {
		out, snap, _, err := s.Resolver.Upsert(current, assetID, date, price)
		result = snap
		return out, err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateSnapshot edits a snapshot located by its id
func (s *InvestmentService) UpdateSnapshot(ctx context.Context, id uuid.UUID, date string, price decimal.Decimal) (*domain.Snapshot, error) {
	var result domain.Snapshot
	err := s.SnapshotRepo.MutateSnapshots(ctx, func(current []domain.Snapshot) ([]domain.Snapshot, error) {
		out, snap, err := s.Resolver.Update(current, id, date, price)
		result = snap
		return out, err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteSnapshot removes a snapshot by its id
func (s *InvestmentService) DeleteSnapshot(ctx context.Context, id uuid.UUID) error {
	return s.SnapshotRepo.MutateSnapshots(ctx, func(current []domain.Snapshot) ([]domain.Snapshot, error) {
		return s.Resolver.Delete(current, id)
	})
}

// CreateAsset registers a new position. The repository assigns its id.
func (s *InvestmentService) CreateAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error) {
	asset.ID = uuid.Nil
	if err := s.AssetRepo.AddAsset(ctx, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// DeleteAsset removes an asset together with its snapshots, trades and deposits
func (s *InvestmentService) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return s.AssetRepo.DeleteAsset(ctx, id)
}

// RecordDeposit adds a signed EUR cash flow to an asset.
// A negative amount is a withdrawal.
func (s *InvestmentService) RecordDeposit(ctx context.Context, deposit domain.Deposit) (*domain.Deposit, error) {
	deposit.ID = uuid.Nil
	if err := s.AssetRepo.AddDeposit(ctx, &deposit); err != nil {
		return nil, err
	}
	return &deposit, nil
}

// RecordTrade stores a buy or sell. Trades do not feed any valuation.
func (s *InvestmentService) RecordTrade(ctx context.Context, trade domain.Trade) (*domain.Trade, error) {
	trade.ID = uuid.Nil
	if err := s.AssetRepo.AddTrade(ctx, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}
