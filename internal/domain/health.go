package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// HealthLogType is the measured quantity of a health log
type HealthLogType string

const (
	HealthLogWeight   HealthLogType = "Weight"
	HealthLogSteps    HealthLogType = "Steps"
	HealthLogCalories HealthLogType = "Calories"
)

// HealthLog is one measurement. Weight is in kg.
type HealthLog struct {
	ID    uuid.UUID     `json:"id"`
	Date  string        `json:"date"`
	Type  HealthLogType `json:"type"`
	Value float64       `json:"value"`
}

// Validate ensures the log adheres to domain rules
func (h *HealthLog) Validate() error {
	switch h.Type {
	case HealthLogWeight, HealthLogSteps, HealthLogCalories:
	default:
		return invalid("health log type must be Weight, Steps, or Calories")
	}
	if !IsDate(h.Date) {
		return invalid(fmt.Sprintf("health log date %q must be YYYY-MM-DD", h.Date))
	}
	if h.Value < 0 {
		return invalid("health log value cannot be negative")
	}
	return nil
}
