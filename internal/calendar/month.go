// Package calendar holds the month arithmetic shared by the derived metrics.
//
// Months are zero-based (January is 0). Dates are YYYY-MM-DD strings and are
// never parsed into time.Time for month matching, so no timezone can move a
// record across a month boundary.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month identifies a calendar month
type Month struct {
	Year   int
	Month0 int // 0-11
}

// Of returns the month containing t, in t's location
func Of(t time.Time) Month {
	return Month{Year: t.Year(), Month0: int(t.Month()) - 1}
}

// Shift returns the month delta months away
func (m Month) Shift(delta int) Month {
	y, mo := ShiftMonth(m.Year, m.Month0, delta)
	return Month{Year: y, Month0: mo}
}

// Contains reports whether date falls in m
func (m Month) Contains(date string) bool {
	return MatchesMonth(date, m.Year, m.Month0)
}

// End returns the last day of m as YYYY-MM-DD
func (m Month) End() string {
	return EndOfMonth(m.Year, m.Month0)
}

// Label returns the short month name, e.g. "Jan"
func (m Month) Label() string {
	return time.Month(m.Month0 + 1).String()[:3]
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month0+1)
}

// MatchesMonth reports whether the YYYY-MM-DD date falls in the given month.
// Malformed dates never match.
func MatchesMonth(date string, year, month0 int) bool {
	parts := strings.Split(date, "-")
	if len(parts) < 2 {
		return false
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	mo, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return y == year && mo-1 == month0
}

// ShiftMonth moves (year, month0) by delta months, carrying into the year
func ShiftMonth(year, month0, delta int) (int, int) {
	month0 += delta
	for month0 < 0 {
		month0 += 12
		year--
	}
	for month0 > 11 {
		month0 -= 12
		year++
	}
	return year, month0
}

// EndOfMonth returns the last calendar day of the month as YYYY-MM-DD.
// Day 0 of the following month normalizes to the last day of this one.
func EndOfMonth(year, month0 int) string {
	last := time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%04d-%02d-%02d", last.Year(), int(last.Month()), last.Day())
}
