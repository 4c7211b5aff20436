package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldOperation   = "operation"
	FieldYear        = "year"
	FieldMonth       = "month"
	FieldPath        = "path"
	FieldDate        = "date"
	FieldCategory    = "category"
	FieldColones     = "amount_colones"
	FieldDollars     = "amount_dollars"
	FieldEntries     = "entries"
	FieldStorageRoot = "storage_root"
	FieldChoice      = "choice"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentMenu    = "menu"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentRender  = "render"
	ComponentConfig  = "config"
)

// Operations defines standard operation names
const (
	OpAppend    = "append"
	OpList      = "list"
	OpSummarize = "summarize"
	OpYear      = "summarize_year"
	OpResolve   = "resolve"
	OpInit      = "init"
	OpValidate  = "validate"
	OpRender    = "render"
	OpStartup   = "startup"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeStorage       = "storage_error"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error category field
func (f LogFields) WithErrorType(kind string) LogFields {
	f[FieldErrorType] = kind
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithMonth adds year and month fields
func (f LogFields) WithMonth(year, month int) LogFields {
	f[FieldYear] = year
	f[FieldMonth] = month
	return f
}

// WithPath adds the ledger file path
func (f LogFields) WithPath(path string) LogFields {
	f[FieldPath] = path
	return f
}

// WithExpense adds expense-related fields
func (f LogFields) WithExpense(date, category, colones, dollars string) LogFields {
	f[FieldDate] = date
	f[FieldCategory] = category
	f[FieldColones] = colones
	f[FieldDollars] = dollars
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
