package valuation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func deposit(assetID uuid.UUID, date string, amount int64) domain.Deposit {
	return domain.Deposit{ID: uuid.New(), AssetID: assetID, Date: date, Amount: dec(amount)}
}

func snapshot(assetID uuid.UUID, date string, price int64) domain.Snapshot {
	return domain.Snapshot{ID: uuid.New(), AssetID: assetID, Date: date, Price: dec(price)}
}

func at(t time.Time) *time.Time { return &t }

func TestValueAsset_PriceAndDeposits(t *testing.T) {
	asset := domain.Asset{ID: uuid.New(), Name: "A", Type: domain.AssetTypeETF}
	deposits := []domain.Deposit{deposit(asset.ID, "2024-01-05", 1000)}
	snapshots := []domain.Snapshot{
		snapshot(asset.ID, "2024-02-01", 1100),
		snapshot(asset.ID, "2024-01-10", 1050),
	}

	v := ValueAsset(asset, deposits, snapshots)

	assert.True(t, v.InvestedAmount.Equal(dec(1000)))
	assert.True(t, v.HasPrice)
	assert.True(t, v.StartPrice.Equal(dec(1050)))
	assert.True(t, v.LatestPrice.Equal(dec(1100)))
	assert.True(t, v.CurrentValue.Equal(dec(1100)))
	assert.True(t, v.PriceChangePercent.Equal(dec(10)), "got %s", v.PriceChangePercent)
	assert.True(t, v.Gain().Equal(dec(100)))
}

func TestValueAsset_FallsBackToInvestedAmount(t *testing.T) {
	asset := domain.Asset{ID: uuid.New(), Name: "A", Type: domain.AssetTypeStock}
	deposits := []domain.Deposit{
		deposit(asset.ID, "2024-01-05", 1000),
		deposit(asset.ID, "2024-02-05", -250),
	}

	v := ValueAsset(asset, deposits, nil)

	assert.False(t, v.HasPrice)
	assert.True(t, v.InvestedAmount.Equal(dec(750)))
	assert.True(t, v.CurrentValue.Equal(v.InvestedAmount))
	assert.True(t, v.PriceChangePercent.IsZero())
}

func TestValueAsset_EdgeCases(t *testing.T) {
	asset := domain.Asset{ID: uuid.New(), Name: "A", Type: domain.AssetTypeCrypto}

	t.Run("no deposits and no snapshots", func(t *testing.T) {
		v := ValueAsset(asset, nil, nil)
		assert.True(t, v.CurrentValue.IsZero())
		assert.True(t, v.PriceChangePercent.IsZero())
	})

	t.Run("snapshots without deposits", func(t *testing.T) {
		v := ValueAsset(asset, nil, []domain.Snapshot{snapshot(asset.ID, "2024-01-01", 500)})
		assert.True(t, v.InvestedAmount.IsZero())
		assert.True(t, v.CurrentValue.Equal(dec(500)))
		assert.True(t, v.PriceChangePercent.IsZero())
	})

	t.Run("net withdrawn position", func(t *testing.T) {
		v := ValueAsset(asset, []domain.Deposit{deposit(asset.ID, "2024-01-01", -100)}, []domain.Snapshot{snapshot(asset.ID, "2024-01-01", 50)})
		assert.True(t, v.PriceChangePercent.IsZero())
	})

	t.Run("written off to zero", func(t *testing.T) {
		v := ValueAsset(asset, []domain.Deposit{deposit(asset.ID, "2024-01-01", 400)}, []domain.Snapshot{
			snapshot(asset.ID, "2024-01-01", 500),
			snapshot(asset.ID, "2024-06-01", 0),
		})
		assert.True(t, v.HasPrice)
		assert.True(t, v.CurrentValue.IsZero())
		assert.True(t, v.PriceChangePercent.Equal(dec(-100)), "got %s", v.PriceChangePercent)
	})

	t.Run("records of other assets are ignored", func(t *testing.T) {
		other := uuid.New()
		v := ValueAsset(asset, []domain.Deposit{deposit(other, "2024-01-01", 100)}, []domain.Snapshot{snapshot(other, "2024-01-01", 900)})
		assert.False(t, v.HasPrice)
		assert.True(t, v.CurrentValue.IsZero())
	})
}

func TestSortSnapshots_TieBreak(t *testing.T) {
	assetID := uuid.New()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	early := snapshot(assetID, "2024-03-01", 100)
	early.CreatedAt = at(base)
	late := snapshot(assetID, "2024-03-01", 200)
	late.CreatedAt = at(base.Add(time.Hour))
	older := snapshot(assetID, "2024-02-28", 300)

	permutations := [][]domain.Snapshot{
		{early, late, older},
		{late, early, older},
		{older, late, early},
		{late, older, early},
	}
	for _, p := range permutations {
		sorted := SortSnapshots(p)
		require.Len(t, sorted, 3)
		assert.Equal(t, older.ID, sorted[0].ID)
		assert.Equal(t, early.ID, sorted[1].ID)
		assert.Equal(t, late.ID, sorted[2].ID)

		v := ValueAsset(domain.Asset{ID: assetID}, nil, p)
		assert.True(t, v.StartPrice.Equal(dec(300)))
		assert.True(t, v.LatestPrice.Equal(dec(200)))
	}
}

func TestSortSnapshots_SameDateWithoutCreatedAtKeepsInputOrder(t *testing.T) {
	assetID := uuid.New()
	first := snapshot(assetID, "2024-03-01", 100)
	second := snapshot(assetID, "2024-03-01", 200)

	input := []domain.Snapshot{first, second}
	sorted := SortSnapshots(input)

	assert.Equal(t, first.ID, sorted[0].ID)
	assert.Equal(t, second.ID, sorted[1].ID)
	assert.Equal(t, first.ID, input[0].ID, "input must not be reordered")
}

func TestValuePortfolio(t *testing.T) {
	etf := domain.Asset{ID: uuid.New(), Name: "ETF", Type: domain.AssetTypeETF}
	coin := domain.Asset{ID: uuid.New(), Name: "Coin", Type: domain.AssetTypeCrypto}
	deposits := []domain.Deposit{
		deposit(etf.ID, "2024-01-05", 1000),
		deposit(coin.ID, "2024-01-06", 500),
		deposit(uuid.New(), "2024-01-07", 9999), // orphan
	}
	snapshots := []domain.Snapshot{snapshot(etf.ID, "2024-01-31", 1500)}

	p := ValuePortfolio([]domain.Asset{etf, coin}, deposits, snapshots)

	assert.True(t, p.CurrentValue.Equal(dec(2000)))
	assert.True(t, p.InvestedAmount.Equal(dec(1500)))
	assert.Len(t, p.Assets, 2)
	assert.Equal(t, domain.EUR, p.Value().Currency)
	assert.True(t, p.PriceChangePercent.Sub(decimal.RequireFromString("33.3333")).Abs().LessThan(decimal.RequireFromString("0.001")))

	shares := Allocation(p, []domain.Asset{etf, coin})
	assert.True(t, shares[domain.AssetTypeETF].Equal(dec(75)))
	assert.True(t, shares[domain.AssetTypeCrypto].Equal(dec(25)))
	_, hasStock := shares[domain.AssetTypeStock]
	assert.False(t, hasStock)
}

func TestAllocation_EmptyPortfolio(t *testing.T) {
	assert.Empty(t, Allocation(ValuePortfolio(nil, nil, nil), nil))
}

func TestValueAt(t *testing.T) {
	asset := domain.Asset{ID: uuid.New(), Name: "A", Type: domain.AssetTypeETF}
	deposits := []domain.Deposit{
		deposit(asset.ID, "2024-01-05", 1000),
		deposit(asset.ID, "2024-02-10", 500),
	}
	snapshots := []domain.Snapshot{
		snapshot(asset.ID, "2024-02-15", 1600),
	}

	jan := ValueAt(asset, deposits, snapshots, "2024-01-31")
	assert.False(t, jan.HasPrice)
	assert.True(t, jan.CurrentValue.Equal(dec(1000)))

	feb := ValueAt(asset, deposits, snapshots, "2024-02-29")
	assert.True(t, feb.HasPrice)
	assert.True(t, feb.CurrentValue.Equal(dec(1600)))

	total := ValuePortfolioAt([]domain.Asset{asset}, deposits, snapshots, "2024-02-14")
	assert.True(t, total.Equal(dec(1500)))
}
