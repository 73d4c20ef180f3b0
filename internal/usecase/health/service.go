package health

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
)

// DefaultProjectionPeriods is how many trend periods the weight projection looks ahead
const DefaultProjectionPeriods = 4

// Summary represents the derived health metrics for one day
type Summary struct {
	Date            string
	HasWeight       bool
	LatestWeight    float64
	HasBMI          bool
	BMI             float64
	Category        BMICategory
	Trend           float64
	ProjectedWeight float64

	HasWeightGoal      bool
	WeightGoalProgress float64
	HasTargetDate      bool
	DaysRemaining      int

	Steps           float64
	HasStepGoal     bool
	StepProgress    int
	Calories        float64
	HasCalorieGoal  bool
	CalorieProgress int
}

// HealthService handles health-related operations
type HealthService struct {
	DataRepo domain.DatasetRepository
	LogRepo  domain.HealthLogRepository
	Now      func() time.Time
}

// NewHealthService creates a new HealthService instance
func NewHealthService(dataRepo domain.DatasetRepository, logRepo domain.HealthLogRepository) *HealthService {
	return &HealthService{
		DataRepo: dataRepo,
		LogRepo:  logRepo,
		Now:      time.Now,
	}
}

// LogHealth records a measurement. An empty date means today.
func (s *HealthService) LogHealth(ctx context.Context, log domain.HealthLog) (*domain.HealthLog, error) {
	log.ID = uuid.Nil
	if log.Date == "" {
		log.Date = domain.FormatDate(s.Now())
	}
	if err := s.LogRepo.AddHealthLog(ctx, &log); err != nil {
		return nil, fmt.Errorf("failed to log %s: %w", log.Type, err)
	}
	return &log, nil
}

// GetSummary computes the health summary for today
func (s *HealthService) GetSummary(ctx context.Context) (*Summary, error) {
	data, err := s.DataRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return Summarize(data.HealthLogs, data.Settings, s.Now()), nil
}

// Summarize derives a Summary from logs and settings as of now
func Summarize(logs []domain.HealthLog, settings domain.Settings, now time.Time) *Summary {
	today := domain.FormatDate(now)
	sum := &Summary{Date: today}

	if latest, ok := Latest(logs, domain.HealthLogWeight); ok {
		sum.HasWeight = true
		sum.LatestWeight = latest.Value
		sum.BMI, sum.HasBMI = BMI(latest.Value, settings.Height)
		if sum.HasBMI {
			sum.Category = Categorize(sum.BMI)
		}
		sum.Trend = WeightTrend(logs, DefaultTrendWindow)
		sum.ProjectedWeight = ProjectedWeight(latest.Value, sum.Trend, DefaultProjectionPeriods)

		weights := byType(logs, domain.HealthLogWeight)
		start := weights[len(weights)-1].Value
		sum.WeightGoalProgress, sum.HasWeightGoal = WeightGoalProgress(start, latest.Value, settings.TargetWeight)
	}
	if settings.TargetDate != "" {
		sum.DaysRemaining, sum.HasTargetDate = DaysUntil(now, settings.TargetDate)
	}

	sum.Steps = DailyTotal(logs, domain.HealthLogSteps, today)
	sum.StepProgress, sum.HasStepGoal = GoalProgress(sum.Steps, settings.StepTarget)
	sum.Calories = DailyTotal(logs, domain.HealthLogCalories, today)
	sum.CalorieProgress, sum.HasCalorieGoal = GoalProgress(sum.Calories, settings.CalorieTarget)
	return sum
}
