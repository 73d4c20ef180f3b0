package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

// GetAsset retrieves an asset by its ID
func (s *Store) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	data, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	asset, ok := data.Asset(id)
	if !ok {
		return nil, fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
	}
	return &asset, nil
}

// AddAsset stores a new asset, assigning an ID when it has none
func (s *Store) AddAsset(ctx context.Context, asset *domain.Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	return s.replace(ctx, func(next *domain.AppData) error {
		if _, ok := next.Asset(asset.ID); ok {
			return fmt.Errorf("%w: asset %s already exists", domain.ErrInvalid, asset.ID)
		}
		next.Assets = appended(next.Assets, *asset)
		return nil
	})
}

// DeleteAsset removes an asset with its snapshots, trades and deposits
func (s *Store) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return s.replace(ctx, func(next *domain.AppData) error {
		if _, ok := next.Asset(id); !ok {
			return fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
		}
		next.Assets = without(next.Assets, func(a domain.Asset) bool { return a.ID == id })
		next.Snapshots = without(next.Snapshots, func(x domain.Snapshot) bool { return x.AssetID == id })
		next.Trades = without(next.Trades, func(x domain.Trade) bool { return x.AssetID == id })
		next.Deposits = without(next.Deposits, func(x domain.Deposit) bool { return x.AssetID == id })
		return nil
	})
}

// AddDeposit stores a cash flow against an existing asset
func (s *Store) AddDeposit(ctx context.Context, deposit *domain.Deposit) error {
	if err := deposit.Validate(); err != nil {
		return err
	}
	if deposit.ID == uuid.Nil {
		deposit.ID = uuid.New()
	}
	return s.replace(ctx, func(next *domain.AppData) error {
		if _, ok := next.Asset(deposit.AssetID); !ok {
			return fmt.Errorf("asset %s: %w", deposit.AssetID, domain.ErrNotFound)
		}
		next.Deposits = appended(next.Deposits, *deposit)
		return nil
	})
}

// AddTrade stores a trade against an existing asset
func (s *Store) AddTrade(ctx context.Context, trade *domain.Trade) error {
	if err := trade.Validate(); err != nil {
		return err
	}
	if trade.ID == uuid.Nil {
		trade.ID = uuid.New()
	}
	return s.replace(ctx, func(next *domain.AppData) error {
		if _, ok := next.Asset(trade.AssetID); !ok {
			return fmt.Errorf("asset %s: %w", trade.AssetID, domain.ErrNotFound)
		}
		next.Trades = appended(next.Trades, *trade)
		return nil
	})
}

// MutateSnapshots replaces the snapshot collection with the result of fn
func (s *Store) MutateSnapshots(ctx context.Context, fn func([]domain.Snapshot) ([]domain.Snapshot, error)) error {
	return s.replace(ctx, func(next *domain.AppData) error {
		snapshots, err := fn(next.Snapshots)
		if err != nil {
			return err
		}
		next.Snapshots = snapshots
		return nil
	})
}
