package grpc

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/activity"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/ledger"
)

// Request fields

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// intField reads an integral number in [lo, hi], returning def when the field is absent
func intField(req *structpb.Struct, name string, def, lo, hi int) (int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return def, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer", name)
	}
	if n.NumberValue < float64(lo) || n.NumberValue > float64(hi) {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be in [%d, %d]", name, lo, hi)
	}
	return int(n.NumberValue), nil
}

func uuidField(req *structpb.Struct, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(stringField(req, name))
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", name, err)
	}
	return id, nil
}

// decimalField accepts a decimal string or a number
func decimalField(req *structpb.Struct, name string) (decimal.Decimal, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(k.StringValue)
		if err != nil {
			return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", name, err)
		}
		return d, nil
	case *structpb.Value_NumberValue:
		return decimal.NewFromFloat(k.NumberValue), nil
	default:
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format", name)
	}
}

// nullDecimalField reads an optional decimal. Absent or null yields an invalid NullDecimal.
func nullDecimalField(req *structpb.Struct, name string) (decimal.NullDecimal, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return decimal.NullDecimal{}, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimalField(req, name)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// floatField reads a required finite number
func floatField(req *structpb.Struct, name string) (float64, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || math.IsInf(n.NumberValue, 0) || math.IsNaN(n.NumberValue) {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a number", name)
	}
	return n.NumberValue, nil
}

// optionalFloatField reads a number that may be null
func optionalFloatField(req *structpb.Struct, name string) (*float64, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, nil
	}
	f, err := floatField(req, name)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func stringListField(req *structpb.Struct, name string) ([]string, error) {
	list := req.GetFields()[name].GetListValue()
	if list == nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a list of strings", name)
	}
	out := make([]string, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		str, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "%s must be a list of strings", name)
		}
		out = append(out, str.StringValue)
	}
	return out, nil
}

// Response values. Decimals travel as strings to keep their precision.

func decimalValue(d decimal.Decimal) string {
	return d.String()
}

func nullDecimalValue(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.String()
}

func moneyValue(m domain.Money) map[string]any {
	return map[string]any{
		"amount":    decimalValue(m.Amount),
		"currency":  string(m.Currency),
		"formatted": m.String(),
	}
}

func comparisonValue(c activity.Comparison) map[string]any {
	return map[string]any{
		"current":  decimalValue(c.Current),
		"previous": decimalValue(c.Previous),
		"diff":     decimalValue(c.Diff),
		"percent":  decimalValue(c.Percent.Round(2)),
		"isNew":    c.IsNew,
		"label":    c.PercentString(),
	}
}

func seriesValue(s activity.Series) map[string]any {
	points := make([]any, 0, len(s.Points))
	for p := range s.All() {
		points = append(points, map[string]any{
			"month":    p.Month.String(),
			"label":    p.Label,
			"value":    decimalValue(p.Value),
			"isAnchor": p.IsAnchor,
		})
	}
	return map[string]any{
		"points": points,
		"max":    decimalValue(s.Max),
	}
}

func totalsValue(totals []activity.Total) []any {
	out := make([]any, 0, len(totals))
	for _, t := range totals {
		out = append(out, map[string]any{
			"name":   t.Name,
			"amount": decimalValue(t.Amount),
			"share":  decimalValue(t.Share.Round(2)),
		})
	}
	return out
}

func balanceValue(b ledger.Balance) map[string]any {
	v := map[string]any{
		"name":      b.Name,
		"balance":   decimalValue(b.Balance),
		"formatted": b.Money().String(),
		"target":    nullDecimalValue(b.Target),
	}
	if b.BucketID != uuid.Nil {
		v["bucketId"] = b.BucketID.String()
	}
	if b.HasProgress {
		v["progress"] = decimalValue(b.Progress.Round(2))
	}
	return v
}

func snapshotValue(s domain.Snapshot) map[string]any {
	v := map[string]any{
		"id":      s.ID.String(),
		"assetId": s.AssetID.String(),
		"date":    s.Date,
		"price":   decimalValue(s.Price),
	}
	if s.CreatedAt != nil {
		v["createdAt"] = s.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return v
}

func assetValue(a domain.Asset) map[string]any {
	return map[string]any{
		"id":    a.ID.String(),
		"name":  a.Name,
		"type":  string(a.Type),
		"notes": a.Notes,
	}
}

func depositValue(d domain.Deposit) map[string]any {
	return map[string]any{
		"id":      d.ID.String(),
		"assetId": d.AssetID.String(),
		"date":    d.Date,
		"amount":  decimalValue(d.Amount),
		"note":    d.Note,
	}
}

func tradeValue(t domain.Trade) map[string]any {
	return map[string]any{
		"id":      t.ID.String(),
		"assetId": t.AssetID.String(),
		"date":    t.Date,
		"type":    string(t.Type),
		"units":   decimalValue(t.Units),
		"price":   decimalValue(t.Price),
		"fees":    nullDecimalValue(t.Fees),
		"notes":   t.Notes,
	}
}

func expenseValue(e domain.Expense) map[string]any {
	return map[string]any{
		"id":            e.ID.String(),
		"amount":        decimalValue(e.Amount),
		"formatted":     e.Money().String(),
		"date":          e.Date,
		"category":      e.Category,
		"merchant":      e.Merchant,
		"paymentMethod": e.PaymentMethod,
		"notes":         e.Notes,
	}
}

func ledgerValue(id uuid.UUID, typ domain.LedgerType, amount decimal.Decimal, date string) map[string]any {
	return map[string]any{
		"id":     id.String(),
		"type":   string(typ),
		"amount": decimalValue(amount),
		"date":   date,
	}
}

func optionalFloatValue(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func settingsValue(s domain.Settings) map[string]any {
	categories := make([]any, 0, len(s.ExpenseCategories))
	for _, c := range s.ExpenseCategories {
		categories = append(categories, c)
	}
	return map[string]any{
		"eurRate":           decimalValue(s.EURRate),
		"eurRateDate":       s.EURRateDate,
		"expenseCategories": categories,
		"emergencyTarget":   nullDecimalValue(s.EmergencyTarget),
		"height":            s.Height,
		"targetWeight":      optionalFloatValue(s.TargetWeight),
		"targetDate":        s.TargetDate,
		"stepTarget":        optionalFloatValue(s.StepTarget),
		"calorieTarget":     optionalFloatValue(s.CalorieTarget),
	}
}

func toStruct(v map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return s, nil
}
