package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetType represents the kind of holding
type AssetType string

const (
	AssetTypeETF    AssetType = "ETF"
	AssetTypeStock  AssetType = "Stock"
	AssetTypeCrypto AssetType = "Crypto"
)

// Asset represents an investment position tracked by the user
type Asset struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Type  AssetType `json:"type"`
	Notes string    `json:"notes,omitempty"`
}

// Validate ensures the asset adheres to domain rules
func (a *Asset) Validate() error {
	if a.Name == "" {
		return invalid("asset name cannot be empty")
	}
	switch a.Type {
	case AssetTypeETF, AssetTypeStock, AssetTypeCrypto:
	default:
		return invalid("asset type must be ETF, Stock, or Crypto")
	}
	return nil
}

// Deposit is a signed EUR cash flow against an asset.
// A negative amount is a withdrawal.
type Deposit struct {
	ID      uuid.UUID       `json:"id"`
	AssetID uuid.UUID       `json:"assetId"`
	Date    string          `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Note    string          `json:"note,omitempty"`
}

// Validate ensures the deposit adheres to domain rules
func (d *Deposit) Validate() error {
	if d.AssetID == uuid.Nil {
		return invalid("deposit must reference an asset")
	}
	if !IsDate(d.Date) {
		return invalid(fmt.Sprintf("deposit date %q must be YYYY-MM-DD", d.Date))
	}
	if d.Amount.IsZero() {
		return invalid("deposit amount cannot be zero")
	}
	return nil
}

// Snapshot is the market value of an entire asset position at a date.
// Price is the value of the holding, not a per-unit price.
type Snapshot struct {
	ID        uuid.UUID       `json:"id"`
	AssetID   uuid.UUID       `json:"assetId"`
	Date      string          `json:"date"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt *time.Time      `json:"createdAt,omitempty"` // tie-break for snapshots sharing a date
}

// Validate ensures the snapshot adheres to domain rules
func (s *Snapshot) Validate() error {
	if s.AssetID == uuid.Nil {
		return invalid("snapshot must reference an asset")
	}
	if !IsDate(s.Date) {
		return invalid(fmt.Sprintf("snapshot date %q must be YYYY-MM-DD", s.Date))
	}
	if s.Price.IsNegative() {
		return invalid("snapshot price cannot be negative")
	}
	return nil
}

// TradeType represents the side of a trade
type TradeType string

const (
	TradeTypeBuy  TradeType = "Buy"
	TradeTypeSell TradeType = "Sell"
)

// Trade is a recorded buy or sell. No derived metric reads trades; they are
// kept and cascade-deleted with their asset.
type Trade struct {
	ID      uuid.UUID           `json:"id"`
	AssetID uuid.UUID           `json:"assetId"`
	Date    string              `json:"date"`
	Type    TradeType           `json:"type"`
	Units   decimal.Decimal     `json:"units"`
	Price   decimal.Decimal     `json:"price"`
	Fees    decimal.NullDecimal `json:"fees"`
	Notes   string              `json:"notes,omitempty"`
}

// Validate ensures the trade adheres to domain rules
func (t *Trade) Validate() error {
	if t.AssetID == uuid.Nil {
		return invalid("trade must reference an asset")
	}
	if !IsDate(t.Date) {
		return invalid(fmt.Sprintf("trade date %q must be YYYY-MM-DD", t.Date))
	}
	if t.Type != TradeTypeBuy && t.Type != TradeTypeSell {
		return invalid("trade type must be Buy or Sell")
	}
	if !t.Units.IsPositive() {
		return invalid("trade units must be positive")
	}
	if t.Price.IsNegative() {
		return invalid("trade price cannot be negative")
	}
	if t.Fees.Valid && t.Fees.Decimal.IsNegative() {
		return invalid("trade fees cannot be negative")
	}
	return nil
}
