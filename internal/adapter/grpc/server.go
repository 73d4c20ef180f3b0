package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/activity"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/dashboard"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/expense"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/health"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/investment"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/savings"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/settings"
)

// Server implements the InsightsService gRPC server
type Server struct {
	InvestmentService *investment.InvestmentService
	ExpenseService    *expense.ExpenseService
	DashboardService  *dashboard.DashboardService
	SavingsService    *savings.SavingsService
	HealthService     *health.HealthService
	SettingsService   *settings.SettingsService

	// Currency is the net worth currency when a request names none
	Currency domain.Currency
	// Now supplies today's date for requests that omit one
	Now func() time.Time
}

// NewServer creates a new gRPC server instance
func NewServer(
	investmentService *investment.InvestmentService,
	expenseService *expense.ExpenseService,
	dashboardService *dashboard.DashboardService,
	savingsService *savings.SavingsService,
	healthService *health.HealthService,
	settingsService *settings.SettingsService,
	currency domain.Currency,
) *Server {
	return &Server{
		InvestmentService: investmentService,
		ExpenseService:    expenseService,
		DashboardService:  dashboardService,
		SavingsService:    savingsService,
		HealthService:     healthService,
		SettingsService:   settingsService,
		Currency:          currency,
		Now:               time.Now,
	}
}

var _ InsightsServiceServer = (*Server)(nil)

// GetPortfolio handles the GetPortfolio RPC
func (s *Server) GetPortfolio(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	p, err := s.InvestmentService.GetPortfolio(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	assets := make([]any, 0, len(p.Assets))
	for _, a := range p.Assets {
		assets = append(assets, map[string]any{
			"assetId":            a.AssetID.String(),
			"investedAmount":     decimalValue(a.InvestedAmount),
			"hasPrice":           a.HasPrice,
			"latestPrice":        decimalValue(a.LatestPrice),
			"startPrice":         decimalValue(a.StartPrice),
			"currentValue":       decimalValue(a.CurrentValue),
			"gain":               decimalValue(a.Gain()),
			"priceChangePercent": decimalValue(a.PriceChangePercent.Round(2)),
		})
	}
	allocation := make(map[string]any, len(p.Allocation))
	for t, share := range p.Allocation {
		allocation[string(t)] = decimalValue(share.Round(2))
	}

	return toStruct(map[string]any{
		"value":              moneyValue(p.Value()),
		"invested":           moneyValue(p.Invested()),
		"priceChangePercent": decimalValue(p.PriceChangePercent.Round(2)),
		"allocation":         allocation,
		"assets":             assets,
	})
}

// GetMonthlyActivity handles the GetMonthlyActivity RPC
// Request: {year, month (0-11), trendMonths?}
func (s *Server) GetMonthlyActivity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	year, month0, trendMonths, err := monthRequest(req)
	if err != nil {
		return nil, err
	}

	a, err := s.InvestmentService.GetMonthlyActivity(ctx, year, month0, trendMonths)
	if err != nil {
		return nil, mapError(err)
	}

	movers := make([]any, 0, len(a.Movers))
	for _, m := range a.Movers {
		movers = append(movers, map[string]any{
			"assetId": m.Asset.ID.String(),
			"name":    m.Asset.Name,
			"type":    string(m.Asset.Type),
			"amount":  decimalValue(m.Amount),
		})
	}

	return toStruct(map[string]any{
		"month":      a.Month.String(),
		"deposited":  decimalValue(a.Flow.Deposited),
		"withdrawn":  decimalValue(a.Flow.Withdrawn),
		"netFlow":    comparisonValue(a.NetFlow),
		"endValue":   comparisonValue(a.EndValue),
		"movers":     movers,
		"flowTrend":  seriesValue(a.FlowTrend),
		"valueTrend": seriesValue(a.ValueTrend),
	})
}

// GetExpenseActivity handles the GetExpenseActivity RPC
// Request: {year, month (0-11), trendMonths?}
func (s *Server) GetExpenseActivity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	year, month0, trendMonths, err := monthRequest(req)
	if err != nil {
		return nil, err
	}

	r, err := s.ExpenseService.GetMonthlyReport(ctx, year, month0, trendMonths)
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(map[string]any{
		"month":          r.Month.String(),
		"total":          comparisonValue(r.Total),
		"categories":     totalsValue(r.Categories),
		"paymentMethods": totalsValue(r.PaymentMethods),
		"trend":          seriesValue(r.Trend),
	})
}

// GetNetWorth handles the GetNetWorth RPC
// Request: {currency?}
func (s *Server) GetNetWorth(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	currency := s.Currency
	if c := stringField(req, "currency"); c != "" {
		currency = domain.Currency(strings.ToUpper(c))
	}

	result, err := s.DashboardService.GetNetWorth(ctx, currency)
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(map[string]any{
		"currency":    string(result.Currency),
		"total":       moneyValue(result.Total),
		"investments": moneyValue(result.Investments),
		"savings":     moneyValue(result.Savings),
		"emergency":   moneyValue(result.Emergency),
	})
}

// GetBalances handles the GetBalances RPC
func (s *Server) GetBalances(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	result, err := s.DashboardService.GetBalances(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	buckets := make([]any, 0, len(result.Buckets))
	for _, b := range result.Buckets {
		buckets = append(buckets, balanceValue(b))
	}

	return toStruct(map[string]any{
		"buckets":   buckets,
		"emergency": balanceValue(result.Emergency),
		"total":     decimalValue(result.Total),
	})
}

// GetHealthSummary handles the GetHealthSummary RPC
func (s *Server) GetHealthSummary(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	sum, err := s.HealthService.GetSummary(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	v := map[string]any{
		"date":     sum.Date,
		"steps":    sum.Steps,
		"calories": sum.Calories,
	}
	if sum.HasWeight {
		v["latestWeight"] = sum.LatestWeight
		v["trend"] = sum.Trend
		v["projectedWeight"] = sum.ProjectedWeight
	}
	if sum.HasBMI {
		v["bmi"] = sum.BMI
		v["bmiCategory"] = string(sum.Category)
	}
	if sum.HasWeightGoal {
		v["weightGoalProgress"] = sum.WeightGoalProgress
	}
	if sum.HasTargetDate {
		v["daysRemaining"] = sum.DaysRemaining
	}
	if sum.HasStepGoal {
		v["stepProgress"] = sum.StepProgress
	}
	if sum.HasCalorieGoal {
		v["calorieProgress"] = sum.CalorieProgress
	}
	return toStruct(v)
}

// UpsertSnapshot handles the UpsertSnapshot RPC
// Request: {assetId, date?, price}; date defaults to today
func (s *Server) UpsertSnapshot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	assetID, err := uuidField(req, "assetId")
	if err != nil {
		return nil, err
	}
	price, err := decimalField(req, "price")
	if err != nil {
		return nil, err
	}
	snap, err := s.InvestmentService.UpdateMarketValue(ctx, assetID, s.dateField(req), price)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"snapshot": snapshotValue(*snap)})
}

// UpdateSnapshot handles the UpdateSnapshot RPC
// Request: {id, date, price}
func (s *Server) UpdateSnapshot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := uuidField(req, "id")
	if err != nil {
		return nil, err
	}
	price, err := decimalField(req, "price")
	if err != nil {
		return nil, err
	}

	snap, err := s.InvestmentService.UpdateSnapshot(ctx, id, stringField(req, "date"), price)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"snapshot": snapshotValue(*snap)})
}

// DeleteSnapshot handles the DeleteSnapshot RPC
// Request: {id}
func (s *Server) DeleteSnapshot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := uuidField(req, "id")
	if err != nil {
		return nil, err
	}
	if err := s.InvestmentService.DeleteSnapshot(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &structpb.Struct{}, nil
}

// Accepted calendar years for month-scoped requests
const (
	minYear = 1
	maxYear = 9999
)

func monthRequest(req *structpb.Struct) (year, month0, trendMonths int, err error) {
	if _, ok := req.GetFields()["year"]; !ok {
		return 0, 0, 0, status.Error(codes.InvalidArgument, "year is required")
	}
	if _, ok := req.GetFields()["month"]; !ok {
		return 0, 0, 0, status.Error(codes.InvalidArgument, "month is required")
	}
	if year, err = intField(req, "year", 0, minYear, maxYear); err != nil {
		return 0, 0, 0, err
	}
	if month0, err = intField(req, "month", 0, 0, 11); err != nil {
		return 0, 0, 0, err
	}
	if trendMonths, err = intField(req, "trendMonths", 0, 0, activity.MaxTrendMonths); err != nil {
		return 0, 0, 0, err
	}
	return year, month0, trendMonths, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrInvalid):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrMissingRate), errors.Is(err, domain.ErrCurrencyMismatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
