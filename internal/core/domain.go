package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the only accepted grammar for entry dates.
	DateLayout = "2006-01-02"
	// MonthLayout is the grammar for year-month selectors.
	MonthLayout = "2006-01"
)

// Field names used in validation errors and logs.
const (
	FieldDate        = "date"
	FieldCategory    = "category"
	FieldColones     = "amount_colones"
	FieldDollars     = "amount_dollars"
	FieldDescription = "description"
)

type (
	Date struct {
		time.Time
	}

	// Month identifies one monthly ledger file.
	Month struct {
		Year  int
		Month int // 1-12
	}

	// EntryInput is an expense as typed by the user, before validation.
	EntryInput struct {
		Date        string
		Category    string
		Colones     string
		Dollars     string
		Description string
	}

	// Expense is a validated entry ready to be appended.
	Expense struct {
		Date        Date
		Category    string
		Colones     Amount
		Dollars     Amount
		Description string
	}

	// Record is one stored row, cells kept exactly as read from the file.
	Record struct {
		Date        string
		Category    string
		Colones     string
		Dollars     string
		Description string
	}
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidMonth  = errors.New("invalid month")
	ErrInvalidAmount = errors.New("invalid amount")
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD date. The date must fall in a month that
// has a ledger file, so years before 0001 are rejected along with the zero
// date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	d := Date{Time: t}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

func (d Date) Validate() error {
	if d.IsZero() || d.Period().Validate() != nil {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// Period returns the month the date belongs to.
func (d Date) Period() Month {
	return Month{Year: d.Year(), Month: int(d.Time.Month())}
}

// NewMonth validates year and month and returns the matching Month.
func NewMonth(year, month int) (Month, error) {
	m := Month{Year: year, Month: month}
	if err := m.Validate(); err != nil {
		return Month{}, err
	}
	return m, nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: int(t.Month())}
}

// ParseMonth parses a YYYY-MM selector. An empty selector resolves to the
// month containing now.
func ParseMonth(s string, now time.Time) (Month, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MonthOf(now), nil
	}
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	m := MonthOf(t)
	if err := m.Validate(); err != nil {
		return Month{}, err
	}
	return m, nil
}

func (m Month) Validate() error {
	if m.Month < 1 || m.Month > 12 {
		return ErrInvalidMonth
	}
	if m.Year < 1 || m.Year > 9999 {
		return ErrInvalidMonth
	}
	return nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// MonthsOf returns the twelve months of a year in calendar order.
func MonthsOf(year int) []Month {
	months := make([]Month, 12)
	for i := range months {
		months[i] = Month{Year: year, Month: i + 1}
	}
	return months
}

// FieldError names one rejected input field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// ValidationError lists every field of an entry that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid entry: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, f := range e.Fields {
		errs[i] = f
	}
	return errs
}

// FieldNames returns the names of the rejected fields.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return names
}

// Parse validates every field of the input. Either all fields are valid and
// an Expense is returned, or a *ValidationError naming each bad field.
func (in EntryInput) Parse() (Expense, error) {
	var bad []FieldError

	date, err := ParseDate(in.Date)
	if err != nil {
		bad = append(bad, FieldError{Field: FieldDate, Value: in.Date, Err: err})
	}
	colones, err := ParseAmount(in.Colones)
	if err != nil {
		bad = append(bad, FieldError{Field: FieldColones, Value: in.Colones, Err: err})
	}
	dollars, err := ParseAmount(in.Dollars)
	if err != nil {
		bad = append(bad, FieldError{Field: FieldDollars, Value: in.Dollars, Err: err})
	}
	if len(bad) > 0 {
		return Expense{}, &ValidationError{Fields: bad}
	}

	return Expense{
		Date:        date,
		Category:    cleanText(in.Category),
		Colones:     colones,
		Dollars:     dollars,
		Description: cleanText(in.Description),
	}, nil
}

// cleanText trims free text and stores line breaks as "\n", the form a CSV
// reader returns for a quoted field.
func cleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}

func (e Expense) Validate() error {
	return e.Date.Validate()
}

// Record returns the row written to the ledger file for this expense.
// Absent amounts are stored as empty cells, never as zero.
func (e Expense) Record() Record {
	return Record{
		Date:        e.Date.String(),
		Category:    e.Category,
		Colones:     e.Colones.String(),
		Dollars:     e.Dollars.String(),
		Description: e.Description,
	}
}

// Cells returns the record in file column order.
func (r Record) Cells() []string {
	return []string{r.Date, r.Category, r.Colones, r.Dollars, r.Description}
}

// RecordFromCells builds a record from a file row. Missing trailing cells
// are treated as empty.
func RecordFromCells(cells []string) Record {
	get := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}
	return Record{
		Date:        get(0),
		Category:    get(1),
		Colones:     get(2),
		Dollars:     get(3),
		Description: get(4),
	}
}
