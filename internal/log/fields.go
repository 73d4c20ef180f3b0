package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldMethod    = "method"
	FieldCode      = "code"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldAssetID   = "asset_id"
	FieldDate      = "date"
	FieldCurrency  = "currency"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldAddr      = "addr"
	FieldRecords   = "records"
)

// Standard component names
const (
	ComponentApp       = "app"
	ComponentGRPC      = "grpc"
	ComponentStore     = "store"
	ComponentSecurity  = "security"
	ComponentValuation = "valuation"
)

// Operation names
const (
	OpStartup  = "startup"
	OpShutdown = "shutdown"
	OpLoad     = "load"
	OpUpsert   = "upsert"
	OpUpdate   = "update"
)

// Fields provides a builder for structured log fields
type Fields map[string]any

// NewFields creates a new Fields instance
func NewFields() Fields {
	return make(Fields)
}

// WithError adds error field
func (f Fields) WithError(err error) Fields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f Fields) WithOperation(op string) Fields {
	f[FieldOperation] = op
	return f
}

// WithRPC adds the method, status code and duration of a call
func (f Fields) WithRPC(method, code string, durationMs int64) Fields {
	f[FieldMethod] = method
	f[FieldCode] = code
	f[FieldDuration] = durationMs
	return f
}

// ToSlice converts Fields to key/value pairs for slog
func (f Fields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
