package grpc

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/wealthflow-tracker/internal/domain"
	"github.com/simaogato/wealthflow-tracker/internal/usecase/settings"
)

// CreateAsset handles the CreateAsset RPC
// Request: {name, type (ETF|Stock|Crypto), notes?}
func (s *Server) CreateAsset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	asset, err := s.InvestmentService.CreateAsset(ctx, domain.Asset{
		Name:  stringField(req, "name"),
		Type:  domain.AssetType(stringField(req, "type")),
		Notes: stringField(req, "notes"),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"asset": assetValue(*asset)})
}

// DeleteAsset handles the DeleteAsset RPC. Snapshots, trades and deposits of the asset go with it.
// Request: {id}
func (s *Server) DeleteAsset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := uuidField(req, "id")
	if err != nil {
		return nil, err
	}
	if err := s.InvestmentService.DeleteAsset(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &structpb.Struct{}, nil
}

// RecordDeposit handles the RecordDeposit RPC
// Request: {assetId, amount (EUR, negative to withdraw), date?, note?}
func (s *Server) RecordDeposit(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	assetID, err := uuidField(req, "assetId")
	if err != nil {
		return nil, err
	}
	amount, err := decimalField(req, "amount")
	if err != nil {
		return nil, err
	}

	deposit, err := s.InvestmentService.RecordDeposit(ctx, domain.Deposit{
		AssetID: assetID,
		Date:    s.dateField(req),
		Amount:  amount,
		Note:    stringField(req, "note"),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"deposit": depositValue(*deposit)})
}

// RecordTrade handles the RecordTrade RPC
// Request: {assetId, type (Buy|Sell), units, price, fees?, date?, notes?}
func (s *Server) RecordTrade(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	assetID, err := uuidField(req, "assetId")
	if err != nil {
		return nil, err
	}
	units, err := decimalField(req, "units")
	if err != nil {
		return nil, err
	}
	price, err := decimalField(req, "price")
	if err != nil {
		return nil, err
	}
	fees, err := nullDecimalField(req, "fees")
	if err != nil {
		return nil, err
	}

	trade, err := s.InvestmentService.RecordTrade(ctx, domain.Trade{
		AssetID: assetID,
		Date:    s.dateField(req),
		Type:    domain.TradeType(stringField(req, "type")),
		Units:   units,
		Price:   price,
		Fees:    fees,
		Notes:   stringField(req, "notes"),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"trade": tradeValue(*trade)})
}

// LogExpense handles the LogExpense RPC
// Request: {amount (RON), category, merchant?, paymentMethod?, date?, notes?}
func (s *Server) LogExpense(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	amount, err := decimalField(req, "amount")
	if err != nil {
		return nil, err
	}

	expense, err := s.ExpenseService.LogExpense(ctx, domain.Expense{
		Amount:        amount,
		Date:          s.dateField(req),
		Category:      stringField(req, "category"),
		Merchant:      stringField(req, "merchant"),
		PaymentMethod: stringField(req, "paymentMethod"),
		Notes:         stringField(req, "notes"),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"expense": expenseValue(*expense)})
}

// DeleteExpense handles the DeleteExpense RPC
// Request: {id}
func (s *Server) DeleteExpense(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := uuidField(req, "id")
	if err != nil {
		return nil, err
	}
	if err := s.ExpenseService.DeleteExpense(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &structpb.Struct{}, nil
}

// CreateSavingsBucket handles the CreateSavingsBucket RPC
// Request: {name, target?}
func (s *Server) CreateSavingsBucket(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	target, err := nullDecimalField(req, "target")
	if err != nil {
		return nil, err
	}

	bucket, err := s.SavingsService.CreateBucket(ctx, domain.SavingsBucket{
		Name:   stringField(req, "name"),
		Target: target,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"bucket": map[string]any{
		"id":     bucket.ID.String(),
		"name":   bucket.Name,
		"target": nullDecimalValue(bucket.Target),
	}})
}

// DeleteSavingsBucket handles the DeleteSavingsBucket RPC. The bucket's transactions go with it.
// Request: {id}
func (s *Server) DeleteSavingsBucket(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := uuidField(req, "id")
	if err != nil {
		return nil, err
	}
	if err := s.SavingsService.DeleteBucket(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &structpb.Struct{}, nil
}

// RecordSavingsTransaction handles the RecordSavingsTransaction RPC
// Request: {bucketId, type (Add|Withdraw), amount (RON), date?, notes?}
func (s *Server) RecordSavingsTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	bucketID, err := uuidField(req, "bucketId")
	if err != nil {
		return nil, err
	}
	amount, err := decimalField(req, "amount")
	if err != nil {
		return nil, err
	}

	tx, err := s.SavingsService.RecordSavings(ctx, domain.SavingsTransaction{
		BucketID: bucketID,
		Amount:   amount,
		Date:     s.dateField(req),
		Type:     domain.LedgerType(stringField(req, "type")),
		Notes:    stringField(req, "notes"),
	})
	if err != nil {
		return nil, mapError(err)
	}
	v := ledgerValue(tx.ID, tx.Type, tx.Amount, tx.Date)
	v["bucketId"] = tx.BucketID.String()
	return toStruct(map[string]any{"transaction": v})
}

// RecordEmergencyTransaction handles the RecordEmergencyTransaction RPC
// Request: {type (Add|Withdraw), amount (RON), date?, notes?}
func (s *Server) RecordEmergencyTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	amount, err := decimalField(req, "amount")
	if err != nil {
		return nil, err
	}

	tx, err := s.SavingsService.RecordEmergency(ctx, domain.EmergencyTransaction{
		Amount: amount,
		Date:   s.dateField(req),
		Type:   domain.LedgerType(stringField(req, "type")),
		Notes:  stringField(req, "notes"),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"transaction": ledgerValue(tx.ID, tx.Type, tx.Amount, tx.Date)})
}

// LogHealth handles the LogHealth RPC
// Request: {type (Weight|Steps|Calories), value, date?}
func (s *Server) LogHealth(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	value, err := floatField(req, "value")
	if err != nil {
		return nil, err
	}

	entry, err := s.HealthService.LogHealth(ctx, domain.HealthLog{
		Date:  stringField(req, "date"),
		Type:  domain.HealthLogType(stringField(req, "type")),
		Value: value,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"log": map[string]any{
		"id":    entry.ID.String(),
		"date":  entry.Date,
		"type":  string(entry.Type),
		"value": entry.Value,
	}})
}

// GetSettings handles the GetSettings RPC
func (s *Server) GetSettings(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	current, err := s.SettingsService.GetSettings(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(settingsValue(*current))
}

// UpdateSettings handles the UpdateSettings RPC.
// Only the fields present in the request change; null clears an optional goal.
// Request: {eurRate?, eurRateDate?, expenseCategories?, emergencyTarget?, height?,
// targetWeight?, targetDate?, stepTarget?, calorieTarget?}
func (s *Server) UpdateSettings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	u, err := settingsUpdate(req)
	if err != nil {
		return nil, err
	}
	updated, err := s.SettingsService.UpdateSettings(ctx, u)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(settingsValue(*updated))
}

func settingsUpdate(req *structpb.Struct) (settings.Update, error) {
	var u settings.Update
	fields := req.GetFields()

	if _, ok := fields["eurRate"]; ok {
		rate, err := decimalField(req, "eurRate")
		if err != nil {
			return u, err
		}
		u.EURRate = settings.Set(rate)
	}
	if _, ok := fields["eurRateDate"]; ok {
		u.EURRateDate = settings.Set(stringField(req, "eurRateDate"))
	}
	if _, ok := fields["targetDate"]; ok {
		u.TargetDate = settings.Set(stringField(req, "targetDate"))
	}
	if _, ok := fields["expenseCategories"]; ok {
		categories, err := stringListField(req, "expenseCategories")
		if err != nil {
			return u, err
		}
		u.ExpenseCategories = settings.Set(categories)
	}
	if _, ok := fields["emergencyTarget"]; ok {
		target, err := nullDecimalField(req, "emergencyTarget")
		if err != nil {
			return u, err
		}
		u.EmergencyTarget = settings.Set(target)
	}
	if _, ok := fields["height"]; ok {
		height, err := floatField(req, "height")
		if err != nil {
			return u, err
		}
		u.Height = settings.Set(height)
	}

	goals := []struct {
		name string
		dst  *settings.Field[*float64]
	}{
		{"targetWeight", &u.TargetWeight},
		{"stepTarget", &u.StepTarget},
		{"calorieTarget", &u.CalorieTarget},
	}
	for _, g := range goals {
		if _, ok := fields[g.name]; !ok {
			continue
		}
		v, err := optionalFloatField(req, g.name)
		if err != nil {
			return u, err
		}
		*g.dst = settings.Set(v)
	}
	return u, nil
}

// dateField reads the optional "date" field, defaulting to today
func (s *Server) dateField(req *structpb.Struct) string {
	if date := stringField(req, "date"); date != "" {
		return date
	}
	return domain.FormatDate(s.Now())
}
