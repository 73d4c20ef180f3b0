// Package expense records expenses and builds the monthly expense report.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/wealthflow-tracker/internal/calendar"
	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/activity"
)

const (
	// DefaultTrendMonths is the length of the monthly expense trend
	DefaultTrendMonths = 6
	// DefaultCategoryLimit is how many categories the report ranks
	DefaultCategoryLimit = 5
)

// MonthlyReport represents one month of spending, in RON
type MonthlyReport struct {
	Month          calendar.Month
	Total          activity.Comparison // against the previous month
	Categories     []activity.Total
	PaymentMethods []activity.Total
	Trend          activity.Series
}

// ExpenseService handles expense logging and reporting
type ExpenseService struct {
	DataRepo    domain.DatasetRepository
	ExpenseRepo domain.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService instance
func NewExpenseService(dataRepo domain.DatasetRepository, expenseRepo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{
		DataRepo:    dataRepo,
		ExpenseRepo: expenseRepo,
	}
}

// LogExpense records a RON expense
// Logic:
// 1. Validate the expense (positive amount, date, category)
// 2. Categories missing from Settings are accepted; they rank last in reports
// 3. Persist with a fresh id
func (s *ExpenseService) LogExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	expense.ID = uuid.Nil
	if err := expense.Validate(); err != nil {
		return nil, err
	}
	if err := s.ExpenseRepo.AddExpense(ctx, &expense); err != nil {
		return nil, fmt.Errorf("failed to log expense: %w", err)
	}
	return &expense, nil
}

// DeleteExpense removes an expense by its id
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.ExpenseRepo.DeleteExpense(ctx, id)
}

// GetMonthlyReport aggregates the expenses of one month
// Logic:
//  1. Total compared with the previous month (a zero previous month reads as "New")
//  2. Top categories, ties broken by the configured category order
//  3. Totals per payment method
//  4. Monthly totals over trendMonths ending at the month
func (s *ExpenseService) GetMonthlyReport(ctx context.Context, year, month0, trendMonths int) (*MonthlyReport, error) {
	if month0 < 0 || month0 > 11 {
		return nil, fmt.Errorf("%w: month must be in [0, 11], got %d", domain.ErrInvalid, month0)
	}
	if trendMonths > activity.MaxTrendMonths {
		return nil, fmt.Errorf("%w: trend months must be at most %d, got %d", domain.ErrInvalid, activity.MaxTrendMonths, trendMonths)
	}
	if trendMonths <= 0 {
		trendMonths = DefaultTrendMonths
	}

	data, err := s.DataRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	month := calendar.Month{Year: year, Month0: month0}
	prev := month.Shift(-1)
	return &MonthlyReport{
		Month: month,
		Total: activity.Compare(
			activity.ExpenseTotal(data.Expenses, year, month0),
			activity.ExpenseTotal(data.Expenses, prev.Year, prev.Month0),
		),
		Categories:     activity.TopCategories(data.Expenses, year, month0, data.Settings.ExpenseCategories, DefaultCategoryLimit),
		PaymentMethods: activity.PaymentMethodTotals(data.Expenses, year, month0),
		Trend:          activity.ExpenseTrend(data.Expenses, trendMonths, year, month0),
	}, nil
}
