// Package health derives body metrics and goal progress from health logs.
package health

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

// BMICategory is the WHO classification of a body mass index
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// DefaultTrendWindow is the number of recent weight logs used for the trend
const DefaultTrendWindow = 4

// BMI returns weightKg / (heightCm/100)^2.
// ok is false when either input is not positive; BMI is never reported as 0.
func BMI(weightKg, heightCm float64) (bmi float64, ok bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	m := heightCm / 100
	return weightKg / (m * m), true
}

// Categorize classifies a BMI. Each band includes its lower bound.
func Categorize(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// byType returns the logs of one type, most recent first.
// Logs sharing a date keep the later-recorded one first.
func byType(logs []domain.HealthLog, typ domain.HealthLogType) []domain.HealthLog {
	var out []domain.HealthLog
	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i].Type == typ {
			out = append(out, logs[i])
		}
	}
	slices.SortStableFunc(out, func(a, b domain.HealthLog) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return out
}

// WeightTrend is the average change per entry over the most recent windowSize
// weight logs: (mostRecent - oldestInWindow) / windowSize. It is 0 with fewer
// than two logs in the window. A windowSize <= 0 uses DefaultTrendWindow.
func WeightTrend(logs []domain.HealthLog, windowSize int) float64 {
	if windowSize <= 0 {
		windowSize = DefaultTrendWindow
	}
	weights := byType(logs, domain.HealthLogWeight)
	if len(weights) > windowSize {
		weights = weights[:windowSize]
	}
	if len(weights) < 2 {
		return 0
	}
	return (weights[0].Value - weights[len(weights)-1].Value) / float64(windowSize)
}

// ProjectedWeight extrapolates linearly: latest + trend*periods
func ProjectedWeight(latest, trend float64, periods int) float64 {
	return latest + trend*float64(periods)
}

// Latest returns the most recent log of the given type
func Latest(logs []domain.HealthLog, typ domain.HealthLogType) (domain.HealthLog, bool) {
	sorted := byType(logs, typ)
	if len(sorted) == 0 {
		return domain.HealthLog{}, false
	}
	return sorted[0], true
}

// DailyTotal sums the logs of one type recorded on date
func DailyTotal(logs []domain.HealthLog, typ domain.HealthLogType, date string) float64 {
	total := 0.0
	for _, l := range logs {
		if l.Type == typ && l.Date == date {
			total += l.Value
		}
	}
	return total
}

// GoalProgress returns round(value/target*100). ok is false without a positive target.
func GoalProgress(value float64, target *float64) (percent int, ok bool) {
	if target == nil || *target <= 0 {
		return 0, false
	}
	return int(math.Round(value / *target * 100)), true
}

// WeightGoalProgress is how far current has moved from start toward target,
// in percent clamped to [0, 100]. Works for both losing and gaining goals.
func WeightGoalProgress(start, current float64, target *float64) (percent float64, ok bool) {
	if target == nil || *target <= 0 || start == *target {
		return 0, false
	}
	p := (start - current) / (start - *target) * 100
	return math.Max(0, math.Min(100, p)), true
}

// DaysUntil counts whole days from today to the YYYY-MM-DD target date.
// It is negative once the date has passed.
func DaysUntil(today time.Time, targetDate string) (int, bool) {
	target, err := time.Parse(domain.DateFormat, targetDate)
	if err != nil {
		return 0, false
	}
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(math.Round(target.Sub(start).Hours() / 24)), true
}
