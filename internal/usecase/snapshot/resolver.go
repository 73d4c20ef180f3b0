// Package snapshot merges price updates into the snapshot collection.
//
// Every operation returns a new slice and leaves its input untouched, so
// readers holding the previous collection keep a consistent view.
package snapshot

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

// Resolver applies snapshot mutations. Now and NewID are injectable for tests.
type Resolver struct {
	Now   func() time.Time
	NewID func() uuid.UUID
}

// NewResolver creates a Resolver backed by the wall clock and random ids
func NewResolver() *Resolver {
	return &Resolver{
		Now:   time.Now,
		NewID: uuid.New,
	}
}

func (r *Resolver) stamp() *time.Time {
	now := r.Now().UTC()
	return &now
}

// Upsert records price for (assetID, date). An existing snapshot with that
// exact key is replaced in place, keeping its id and refreshing createdAt;
// otherwise a new snapshot is appended. created reports which happened.
func (r *Resolver) Upsert(snapshots []domain.Snapshot, assetID uuid.UUID, date string, price decimal.Decimal) (out []domain.Snapshot, s domain.Snapshot, created bool, err error) {
	s = domain.Snapshot{AssetID: assetID, Date: date, Price: price}
	if err := s.Validate(); err != nil {
		return nil, domain.Snapshot{}, false, err
	}

	out = make([]domain.Snapshot, len(snapshots), len(snapshots)+1)
	copy(out, snapshots)
	s.CreatedAt = r.stamp()

	for i, existing := range out {
		if existing.AssetID == assetID && existing.Date == date {
			s.ID = existing.ID
			out[i] = s
			return out, s, false, nil
		}
	}

	s.ID = r.NewID()
	return append(out, s), s, true, nil
}

// Update replaces the snapshot with the given id, whatever its date.
// createdAt is kept, so same-date ordering does not change.
func (r *Resolver) Update(snapshots []domain.Snapshot, id uuid.UUID, date string, price decimal.Decimal) ([]domain.Snapshot, domain.Snapshot, error) {
	i := indexOf(snapshots, id)
	if i < 0 {
		return nil, domain.Snapshot{}, fmt.Errorf("snapshot %s: %w", id, domain.ErrNotFound)
	}

	s := snapshots[i]
	s.Date = date
	s.Price = price
	if err := s.Validate(); err != nil {
		return nil, domain.Snapshot{}, err
	}

	out := make([]domain.Snapshot, len(snapshots))
	copy(out, snapshots)
	out[i] = s
	return out, s, nil
}

// Delete removes the snapshot with the given id
func (r *Resolver) Delete(snapshots []domain.Snapshot, id uuid.UUID) ([]domain.Snapshot, error) {
	i := indexOf(snapshots, id)
	if i < 0 {
		return nil, fmt.Errorf("snapshot %s: %w", id, domain.ErrNotFound)
	}
	out := make([]domain.Snapshot, 0, len(snapshots)-1)
	out = append(out, snapshots[:i]...)
	return append(out, snapshots[i+1:]...), nil
}

func indexOf(snapshots []domain.Snapshot, id uuid.UUID) int {
	for i, s := range snapshots {
		if s.ID == id {
			return i
		}
	}
	return -1
}
