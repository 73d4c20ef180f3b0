package domain

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// AppData is the full dataset the derived metrics are computed from.
// Collections are replaced, never mutated in place, so a loaded AppData
// is a consistent snapshot for as long as the caller holds it.
type AppData struct {
	Assets                []Asset                `json:"assets"`
	Trades                []Trade                `json:"trades"`
	Deposits              []Deposit              `json:"deposits"`
	Snapshots             []Snapshot             `json:"snapshots"`
	Expenses              []Expense              `json:"expenses"`
	SavingsBuckets        []SavingsBucket        `json:"savingsBuckets"`
	SavingsTransactions   []SavingsTransaction   `json:"savingsTransactions"`
	EmergencyTransactions []EmergencyTransaction `json:"emergencyTransactions"`
	HealthLogs            []HealthLog            `json:"healthLogs"`
	Settings              Settings               `json:"settings"`
}

// DecodeAppData reads a dataset document.
// Missing collections decode as empty.
func DecodeAppData(r io.Reader) (*AppData, error) {
	var data AppData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return &data, nil
}

// Clone returns a shallow copy. Slices are shared, which is safe because
// mutations always build new slices.
func (d *AppData) Clone() *AppData {
	c := *d
	c.Settings.ExpenseCategories = append([]string(nil), d.Settings.ExpenseCategories...)
	return &c
}

// Asset returns the asset with the given id
func (d *AppData) Asset(id uuid.UUID) (Asset, bool) {
	for _, a := range d.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// DepositsFor returns the deposits of one asset
func (d *AppData) DepositsFor(assetID uuid.UUID) []Deposit {
	var out []Deposit
	for _, dep := range d.Deposits {
		if dep.AssetID == assetID {
			out = append(out, dep)
		}
	}
	return out
}

// SnapshotsFor returns the snapshots of one asset in insertion order
func (d *AppData) SnapshotsFor(assetID uuid.UUID) []Snapshot {
	var out []Snapshot
	for _, s := range d.Snapshots {
		if s.AssetID == assetID {
			out = append(out, s)
		}
	}
	return out
}

// TransactionsFor returns the transactions of one savings bucket
func (d *AppData) TransactionsFor(bucketID uuid.UUID) []SavingsTransaction {
	var out []SavingsTransaction
	for _, t := range d.SavingsTransactions {
		if t.BucketID == bucketID {
			out = append(out, t)
		}
	}
	return out
}

// OrphanRef describes a record whose reference does not resolve
type OrphanRef struct {
	Collection string
	ID         uuid.UUID
	Ref        uuid.UUID
}

func (o OrphanRef) String() string {
	return fmt.Sprintf("%s %s references missing %s", o.Collection, o.ID, o.Ref)
}

// CheckReferences lists records pointing at a deleted asset or bucket.
// Derived metrics tolerate orphans; this is for diagnostics only.
func (d *AppData) CheckReferences() []OrphanRef {
	assets := make(map[uuid.UUID]bool, len(d.Assets))
	for _, a := range d.Assets {
		assets[a.ID] = true
	}
	buckets := make(map[uuid.UUID]bool, len(d.SavingsBuckets))
	for _, b := range d.SavingsBuckets {
		buckets[b.ID] = true
	}

	var orphans []OrphanRef
	for _, x := range d.Deposits {
		if !assets[x.AssetID] {
			orphans = append(orphans, OrphanRef{"deposits", x.ID, x.AssetID})
		}
	}
	for _, x := range d.Snapshots {
		if !assets[x.AssetID] {
			orphans = append(orphans, OrphanRef{"snapshots", x.ID, x.AssetID})
		}
	}
	for _, x := range d.Trades {
		if !assets[x.AssetID] {
			orphans = append(orphans, OrphanRef{"trades", x.ID, x.AssetID})
		}
	}
	for _, x := range d.SavingsTransactions {
		if !buckets[x.BucketID] {
			orphans = append(orphans, OrphanRef{"savingsTransactions", x.ID, x.BucketID})
		}
	}
	return orphans
}
