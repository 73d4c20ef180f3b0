package snapshot

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedResolver(t time.Time) *Resolver {
	clock := t
	return &Resolver{
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
		NewID: uuid.New,
	}
}

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestUpsert_AppendsNewKey(t *testing.T) {
	r := fixedResolver(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assetID := uuid.New()
	existing := []domain.Snapshot{{ID: uuid.New(), AssetID: assetID, Date: "2024-01-01", Price: price(100)}}

	out, s, created, err := r.Upsert(existing, assetID, "2024-01-02", price(110))
	require.NoError(t, err)

	assert.True(t, created)
	assert.Len(t, out, 2)
	assert.Len(t, existing, 1, "input must not be modified")
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.NotNil(t, s.CreatedAt)
	assert.Equal(t, s, out[1])
}

func TestUpsert_ReplacesInPlace(t *testing.T) {
	r := fixedResolver(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assetID := uuid.New()
	other := uuid.New()
	old := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	target := domain.Snapshot{ID: uuid.New(), AssetID: assetID, Date: "2024-01-05", Price: price(100), CreatedAt: &old}
	existing := []domain.Snapshot{
		{ID: uuid.New(), AssetID: other, Date: "2024-01-05", Price: price(7)},
		target,
		{ID: uuid.New(), AssetID: assetID, Date: "2024-01-06", Price: price(101)},
	}

	out, s, created, err := r.Upsert(existing, assetID, "2024-01-05", price(120))
	require.NoError(t, err)

	assert.False(t, created)
	require.Len(t, out, 3)
	assert.Equal(t, target.ID, out[1].ID)
	assert.True(t, out[1].Price.Equal(price(120)))
	assert.True(t, out[1].CreatedAt.After(old))
	assert.Equal(t, s, out[1])
	assert.True(t, existing[1].Price.Equal(price(100)), "input must not be modified")
	assert.Equal(t, existing[0], out[0])
	assert.Equal(t, existing[2], out[2])
}

func TestUpsert_Idempotent(t *testing.T) {
	r := fixedResolver(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assetID := uuid.New()

	once, first, _, err := r.Upsert(nil, assetID, "2024-02-01", price(50))
	require.NoError(t, err)
	twice, second, created, err := r.Upsert(once, assetID, "2024-02-01", price(50))
	require.NoError(t, err)

	assert.False(t, created)
	require.Len(t, twice, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, twice[0].Price.Equal(once[0].Price))
}

func TestUpsert_ZeroPrice(t *testing.T) {
	r := fixedResolver(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assetID := uuid.New()
	existing := []domain.Snapshot{{ID: uuid.New(), AssetID: assetID, Date: "2024-01-01", Price: price(100)}}

	out, s, created, err := r.Upsert(existing, assetID, "2024-01-01", decimal.Zero)
	require.NoError(t, err)

	assert.False(t, created)
	require.Len(t, out, 1)
	assert.True(t, s.Price.IsZero())
}

func TestUpsert_Validation(t *testing.T) {
	r := NewResolver()
	assetID := uuid.New()

	tests := []struct {
		name    string
		assetID uuid.UUID
		date    string
		price   decimal.Decimal
	}{
		{name: "negative price", assetID: assetID, date: "2024-01-01", price: price(-1)},
		{name: "bad date", assetID: assetID, date: "01/01/2024", price: price(1)},
		{name: "no asset", assetID: uuid.Nil, date: "2024-01-01", price: price(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := r.Upsert(nil, tt.assetID, tt.date, tt.price)
			assert.ErrorIs(t, err, domain.ErrInvalid)
		})
	}
}

func TestUpdate_ById(t *testing.T) {
	r := NewResolver()
	assetID := uuid.New()
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	a := domain.Snapshot{ID: uuid.New(), AssetID: assetID, Date: "2024-01-01", Price: price(10), CreatedAt: &created}
	b := domain.Snapshot{ID: uuid.New(), AssetID: assetID, Date: "2024-01-02", Price: price(11)}

	// moving a onto b's date keeps both records
	out, s, err := r.Update([]domain.Snapshot{a, b}, a.ID, "2024-01-02", price(12))
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, a.ID, s.ID)
	assert.Equal(t, "2024-01-02", out[0].Date)
	assert.True(t, out[0].Price.Equal(price(12)))
	assert.Equal(t, &created, out[0].CreatedAt)
	assert.Equal(t, b, out[1])
	assert.Equal(t, "2024-01-01", a.Date)
}

func TestUpdate_NotFound(t *testing.T) {
	_, _, err := NewResolver().Update(nil, uuid.New(), "2024-01-01", price(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	r := NewResolver()
	a := domain.Snapshot{ID: uuid.New()}
	b := domain.Snapshot{ID: uuid.New()}
	c := domain.Snapshot{ID: uuid.New()}
	in := []domain.Snapshot{a, b, c}

	out, err := r.Delete(in, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Snapshot{a, c}, out)
	assert.Len(t, in, 3)

	_, err = r.Delete(out, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
