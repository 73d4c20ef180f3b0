package activity

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Comparison is the change of a metric between two periods
type Comparison struct {
	Current  decimal.Decimal
	Previous decimal.Decimal
	Diff     decimal.Decimal // Current - Previous
	Percent  decimal.Decimal // Diff / |Previous| * 100; zero when IsNew
	IsNew    bool            // Previous is zero and Current is not
}

// Compare computes the change from previous to current.
// A zero previous value never divides: the result is either IsNew or 0%.
func Compare(current, previous decimal.Decimal) Comparison {
	c := Comparison{
		Current:  current,
		Previous: previous,
		Diff:     current.Sub(previous),
		Percent:  decimal.Zero,
	}
	if previous.IsZero() {
		c.IsNew = !current.IsZero()
		return c
	}
	c.Percent = c.Diff.Div(previous.Abs()).Mul(hundred)
	return c
}

// PercentString renders the change as a whole percentage: "+20%", "-5%", "0%",
// or "New" when the metric went from zero to non-zero.
func (c Comparison) PercentString() string {
	if c.IsNew {
		return "New"
	}
	p := c.Percent.Round(0)
	if p.IsPositive() {
		return "+" + p.String() + "%"
	}
	if p.IsZero() {
		return "0%"
	}
	return p.String() + "%"
}
