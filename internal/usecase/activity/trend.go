package activity

import (
	"iter"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-tracker/internal/calendar"
)

// Metric computes a value for one month
type Metric func(m calendar.Month) decimal.Decimal

// Point is one month of a trend series
type Point struct {
	Month    calendar.Month
	Label    string
	Value    decimal.Decimal
	IsAnchor bool
}

// Series is an ordered, oldest-first run of months ending at the anchor
type Series struct {
	Points []Point
	Max    decimal.Decimal // largest |Value|, for scaling
}

// All iterates over the points. The series can be ranged over any number of times.
func (s Series) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range s.Points {
			if !yield(p) {
				return
			}
		}
	}
}

// MaxTrendMonths is the longest series Trend builds (ten years)
const MaxTrendMonths = 120

// Trend evaluates metric over the n months ending at (year, month0).
// n is capped at MaxTrendMonths.
func Trend(n, year, month0 int, metric Metric) Series {
	s := Series{Max: decimal.Zero}
	if n <= 0 {
		return s
	}
	n = min(n, MaxTrendMonths)
	anchor := calendar.Month{Year: year, Month0: month0}
	s.Points = make([]Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		m := anchor.Shift(-i)
		v := metric(m)
		s.Points = append(s.Points, Point{
			Month:    m,
			Label:    m.Label(),
			Value:    v,
			IsAnchor: i == 0,
		})
		if v.Abs().GreaterThan(s.Max) {
			s.Max = v.Abs()
		}
	}
	return s
}
