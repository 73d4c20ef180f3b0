package domain

import (
	"context"

	"github.com/google/uuid"
)

// DatasetRepository supplies the current dataset snapshot
type DatasetRepository interface {
	// Load returns the current dataset. Callers must not mutate it.
	Load(ctx context.Context) (*AppData, error)
}

// AssetRepository defines operations on assets and their cash flows
type AssetRepository interface {
	// GetAsset retrieves an asset by its ID
	GetAsset(ctx context.Context, id uuid.UUID) (*Asset, error)
	// AddAsset stores a new asset, assigning an ID when it has none
	AddAsset(ctx context.Context, asset *Asset) error
	// DeleteAsset removes an asset with its snapshots, trades and deposits
	DeleteAsset(ctx context.Context, id uuid.UUID) error
	// AddDeposit stores a cash flow against an existing asset
	AddDeposit(ctx context.Context, deposit *Deposit) error
	// AddTrade stores a trade against an existing asset
	AddTrade(ctx context.Context, trade *Trade) error
}

// SnapshotRepository defines the snapshot collection replacement
type SnapshotRepository interface {
	// MutateSnapshots replaces the snapshot collection with the result of fn.
	// fn receives the current collection and must return a new slice.
	MutateSnapshots(ctx context.Context, fn func(current []Snapshot) ([]Snapshot, error)) error
}

// ExpenseRepository defines expense writes
type ExpenseRepository interface {
	AddExpense(ctx context.Context, expense *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

// SavingsRepository defines writes on savings buckets and the emergency fund
type SavingsRepository interface {
	AddSavingsBucket(ctx context.Context, bucket *SavingsBucket) error
	// DeleteSavingsBucket removes a bucket and its transactions
	DeleteSavingsBucket(ctx context.Context, id uuid.UUID) error
	AddSavingsTransaction(ctx context.Context, tx *SavingsTransaction) error
	AddEmergencyTransaction(ctx context.Context, tx *EmergencyTransaction) error
}

// HealthLogRepository defines health log writes
type HealthLogRepository interface {
	AddHealthLog(ctx context.Context, log *HealthLog) error
}

// SettingsRepository defines the settings replacement
type SettingsRepository interface {
	// MutateSettings replaces the settings with the result of fn.
	// The result is validated before it is stored.
	MutateSettings(ctx context.Context, fn func(current Settings) (Settings, error)) error
}
