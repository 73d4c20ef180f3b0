// Package valuation values assets and the portfolio from deposits and price snapshots.
//
// An asset with no snapshot is carried at its net invested amount. Otherwise the
// latest snapshot price, ordered by date then creation time, is its current value,
// and zero is a valid price for a written-off position.
package valuation

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// AssetValuation is the current valuation of one asset
type AssetValuation struct {
	AssetID            uuid.UUID
	InvestedAmount     decimal.Decimal // signed sum of deposits
	HasPrice           bool
	LatestPrice        decimal.Decimal
	StartPrice         decimal.Decimal
	CurrentValue       decimal.Decimal // LatestPrice when HasPrice, InvestedAmount otherwise
	PriceChangePercent decimal.Decimal // return on invested capital, 0 when nothing is invested
}

// Gain returns CurrentValue - InvestedAmount
func (v AssetValuation) Gain() decimal.Decimal {
	return v.CurrentValue.Sub(v.InvestedAmount)
}

// PortfolioValuation is the sum of every asset valuation, in EUR
type PortfolioValuation struct {
	CurrentValue       decimal.Decimal
	InvestedAmount     decimal.Decimal
	PriceChangePercent decimal.Decimal
	Assets             []AssetValuation
}

// Value returns the portfolio value tagged with the investment currency
func (p PortfolioValuation) Value() domain.Money {
	return domain.NewMoney(p.CurrentValue, domain.InvestmentCurrency)
}

// Invested returns the invested amount tagged with the investment currency
func (p PortfolioValuation) Invested() domain.Money {
	return domain.NewMoney(p.InvestedAmount, domain.InvestmentCurrency)
}

// SortSnapshots returns a copy of snapshots ordered by date, then createdAt,
// then input position. A missing createdAt sorts before any set one.
func SortSnapshots(snapshots []domain.Snapshot) []domain.Snapshot {
	sorted := slices.Clone(snapshots)
	slices.SortStableFunc(sorted, compareSnapshots)
	return sorted
}

func compareSnapshots(a, b domain.Snapshot) int {
	if c := cmp.Compare(a.Date, b.Date); c != 0 {
		return c
	}
	return createdAt(a).Compare(createdAt(b))
}

func createdAt(s domain.Snapshot) time.Time {
	if s.CreatedAt == nil {
		return time.Time{}
	}
	return *s.CreatedAt
}

// ValueAsset computes the valuation of asset from the given deposits and snapshots.
// Records of other assets are ignored, so whole collections can be passed.
func ValueAsset(asset domain.Asset, deposits []domain.Deposit, snapshots []domain.Snapshot) AssetValuation {
	return valueAssetUntil(asset, deposits, snapshots, "")
}

// ValueAt replays the valuation of asset as it stood at the end of date (YYYY-MM-DD).
func ValueAt(asset domain.Asset, deposits []domain.Deposit, snapshots []domain.Snapshot, date string) AssetValuation {
	return valueAssetUntil(asset, deposits, snapshots, date)
}

// valueAssetUntil restricts records to date <= until; an empty until keeps everything.
func valueAssetUntil(asset domain.Asset, deposits []domain.Deposit, snapshots []domain.Snapshot, until string) AssetValuation {
	v := AssetValuation{
		AssetID:            asset.ID,
		InvestedAmount:     decimal.Zero,
		LatestPrice:        decimal.Zero,
		StartPrice:         decimal.Zero,
		PriceChangePercent: decimal.Zero,
	}

	for _, d := range deposits {
		if d.AssetID != asset.ID || (until != "" && d.Date > until) {
			continue
		}
		v.InvestedAmount = v.InvestedAmount.Add(d.Amount)
	}

	var own []domain.Snapshot
	for _, s := range snapshots {
		if s.AssetID != asset.ID || (until != "" && s.Date > until) {
			continue
		}
		own = append(own, s)
	}

	// Market price fully overrides cost basis when present
	v.CurrentValue = v.InvestedAmount
	if len(own) > 0 {
		own = SortSnapshots(own)
		v.HasPrice = true
		v.StartPrice = own[0].Price
		v.LatestPrice = own[len(own)-1].Price
		v.CurrentValue = v.LatestPrice
	}

	v.PriceChangePercent = returnPercent(v.CurrentValue, v.InvestedAmount)
	return v
}

func returnPercent(current, invested decimal.Decimal) decimal.Decimal {
	if !invested.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(invested).Div(invested).Mul(hundred)
}

// ValuePortfolio sums the valuation of every asset. No currency conversion happens here.
func ValuePortfolio(assets []domain.Asset, deposits []domain.Deposit, snapshots []domain.Snapshot) PortfolioValuation {
	p := PortfolioValuation{
		CurrentValue:   decimal.Zero,
		InvestedAmount: decimal.Zero,
		Assets:         make([]AssetValuation, 0, len(assets)),
	}
	for _, asset := range assets {
		v := ValueAsset(asset, deposits, snapshots)
		p.Assets = append(p.Assets, v)
		p.CurrentValue = p.CurrentValue.Add(v.CurrentValue)
		p.InvestedAmount = p.InvestedAmount.Add(v.InvestedAmount)
	}
	p.PriceChangePercent = returnPercent(p.CurrentValue, p.InvestedAmount)
	return p
}

// ValuePortfolioAt replays the portfolio value as it stood at the end of date
func ValuePortfolioAt(assets []domain.Asset, deposits []domain.Deposit, snapshots []domain.Snapshot, date string) decimal.Decimal {
	total := decimal.Zero
	for _, asset := range assets {
		total = total.Add(ValueAt(asset, deposits, snapshots, date).CurrentValue)
	}
	return total
}

// Allocation returns the share of CurrentValue held in each asset type, in percent.
// Types with no value are omitted. An empty or zero-valued portfolio yields an empty map.
func Allocation(p PortfolioValuation, assets []domain.Asset) map[domain.AssetType]decimal.Decimal {
	shares := make(map[domain.AssetType]decimal.Decimal)
	if !p.CurrentValue.IsPositive() {
		return shares
	}

	types := make(map[uuid.UUID]domain.AssetType, len(assets))
	for _, a := range assets {
		types[a.ID] = a.Type
	}

	byType := make(map[domain.AssetType]decimal.Decimal)
	for _, v := range p.Assets {
		t, ok := types[v.AssetID]
		if !ok || v.CurrentValue.IsZero() {
			continue
		}
		byType[t] = byType[t].Add(v.CurrentValue)
	}
	for t, value := range byType {
		shares[t] = value.Div(p.CurrentValue).Mul(hundred)
	}
	return shares
}
