package domain

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code
type Currency string

const (
	EUR Currency = "EUR"
	RON Currency = "RON"
)

// InvestmentCurrency is the currency of deposits and snapshot prices.
// CashCurrency is the currency of expenses, savings and the emergency fund.
const (
	InvestmentCurrency = EUR
	CashCurrency       = RON
)

var (
	// ErrCurrencyMismatch is returned when amounts of different currencies are combined without conversion
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrMissingRate is returned when a conversion needs an exchange rate that is not configured
	ErrMissingRate = errors.New("exchange rate not configured")
)

// Money is an amount tagged with its currency.
// Amounts of different currencies never add up without an explicit Converter call.
type Money struct {
	Amount   decimal.Decimal
	Currency Currency
}

// NewMoney creates a Money value
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Zero returns a zero amount in the given currency
func Zero(currency Currency) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Add returns m + n, or ErrCurrencyMismatch when the currencies differ
func (m Money) Add(n Money) (Money, error) {
	if m.Currency != n.Currency {
		return Money{}, fmt.Errorf("add %s to %s: %w", n.Currency, m.Currency, ErrCurrencyMismatch)
	}
	return Money{Amount: m.Amount.Add(n.Amount), Currency: m.Currency}, nil
}

// Sub returns m - n, or ErrCurrencyMismatch when the currencies differ
func (m Money) Sub(n Money) (Money, error) {
	if m.Currency != n.Currency {
		return Money{}, fmt.Errorf("subtract %s from %s: %w", n.Currency, m.Currency, ErrCurrencyMismatch)
	}
	return Money{Amount: m.Amount.Sub(n.Amount), Currency: m.Currency}, nil
}

func (m Money) IsZero() bool { return m.Amount.IsZero() }

// String formats the amount with the currency's grapheme and fraction digits
func (m Money) String() string {
	cur := money.GetCurrency(string(m.Currency))
	if cur == nil {
		return m.Amount.StringFixed(2) + " " + string(m.Currency)
	}
	minor := m.Amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// ValidCurrency reports whether code is a currency known to go-money
func ValidCurrency(code Currency) bool {
	return money.GetCurrency(string(code)) != nil
}

// Converter converts between the investment and cash currencies using Settings.EURRate
type Converter struct {
	// EURRate is the amount of RON for 1 EUR
	EURRate decimal.Decimal
}

// NewConverter builds a Converter from settings
func NewConverter(settings Settings) Converter {
	return Converter{EURRate: settings.EURRate}
}

// Convert returns m expressed in the target currency
func (c Converter) Convert(m Money, to Currency) (Money, error) {
	if m.Currency == to {
		return m, nil
	}
	eurToRON := m.Currency == EUR && to == RON
	if !eurToRON && !(m.Currency == RON && to == EUR) {
		return Money{}, fmt.Errorf("convert %s to %s: %w", m.Currency, to, ErrCurrencyMismatch)
	}
	// a zero amount is zero in any currency, rate or not
	if m.IsZero() {
		return Zero(to), nil
	}
	if !c.EURRate.IsPositive() {
		return Money{}, fmt.Errorf("convert %s to %s: %w", m.Currency, to, ErrMissingRate)
	}
	if eurToRON {
		return Money{Amount: m.Amount.Mul(c.EURRate), Currency: RON}, nil
	}
	return Money{Amount: m.Amount.Div(c.EURRate), Currency: EUR}, nil
}
