package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"gastos/internal/core"
	applog "gastos/internal/log"
	"gastos/internal/storage"
)

// LedgerServiceConfig holds configuration for the ledger service
type LedgerServiceConfig struct {
	// YearWorkers bounds how many monthly files SummarizeYear reads at once (default: 4)
	YearWorkers int
}

// DefaultLedgerServiceConfig returns sensible defaults
func DefaultLedgerServiceConfig() LedgerServiceConfig {
	return LedgerServiceConfig{
		YearWorkers: 4,
	}
}

// LedgerService validates new entries and reads monthly ledgers back.
type LedgerService struct {
	ledger storage.Ledger
	logger *applog.Logger
	config LedgerServiceConfig
}

func NewLedgerService(ledger storage.Ledger, logger *applog.Logger, config LedgerServiceConfig) *LedgerService {
	if logger == nil {
		logger = applog.Default()
	}
	if config.YearWorkers < 1 {
		config.YearWorkers = DefaultLedgerServiceConfig().YearWorkers
	}
	return &LedgerService{
		ledger: ledger,
		logger: logger.WithComponent(applog.ComponentLedger),
		config: config,
	}
}

// AddEntry validates every field of the input and, only if all of them are
// valid, appends one record to the file of the entry's month. It returns the
// path written. Validation failures are *core.ValidationError values.
func (s *LedgerService) AddEntry(ctx context.Context, in core.EntryInput) (string, error) {
	e, err := in.Parse()
	if err != nil {
		s.logger.WarnContext(ctx, "Expense rejected",
			applog.NewFields().
				WithOperation(applog.OpValidate).
				WithErrorType(applog.ErrorTypeValidation).
				WithError(err).
				ToSlice()...)
		return "", err
	}

	path, err := s.ledger.Append(ctx, e)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to save expense",
			applog.FieldOperation, applog.OpAppend,
			applog.FieldErrorType, applog.ErrorTypeStorage,
			applog.FieldError, err)
		return "", fmt.Errorf("save expense: %w", err)
	}

	s.logger.InfoContext(ctx, "Expense saved",
		applog.FieldPath, path,
		applog.FieldDate, e.Date.String(),
		applog.FieldCategory, e.Category)
	return path, nil
}

// ListEntries returns the records of a month in file order, exactly as
// stored. A month without a file yields storage.ErrNoData.
func (s *LedgerService) ListEntries(ctx context.Context, m core.Month) ([]core.Record, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	records, err := s.ledger.List(ctx, m)
	if err != nil {
		fields := applog.NewFields().
			WithOperation(applog.OpList).
			WithMonth(m.Year, m.Month).
			WithError(err)
		if errors.Is(err, storage.ErrNoData) {
			s.logger.DebugContext(ctx, "No ledger file for month",
				fields.WithErrorType(applog.ErrorTypeNotFound).ToSlice()...)
		} else {
			s.logger.ErrorContext(ctx, "Failed to list expenses",
				fields.WithErrorType(applog.ErrorTypeStorage).ToSlice()...)
		}
		return nil, fmt.Errorf("list %s: %w", m, err)
	}
	return records, nil
}

// Summarize computes the totals and per-category subtotals of a month.
func (s *LedgerService) Summarize(ctx context.Context, m core.Month) (core.Report, error) {
	records, err := s.ListEntries(ctx, m)
	if err != nil {
		return core.Report{Month: m}, err
	}
	report := core.Summarize(m, records)

	s.logger.DebugContext(ctx, "Month summarized",
		append(applog.NewFields().
			WithOperation(applog.OpSummarize).
			WithMonth(m.Year, m.Month).
			ToSlice(), applog.FieldEntries, report.Entries)...)
	return report, nil
}

// SummarizeYear summarizes every month of a year that has a ledger file.
// Months are read concurrently; the result keeps calendar order. A year
// without any file yields storage.ErrNoData.
func (s *LedgerService) SummarizeYear(ctx context.Context, year int) (core.YearOverview, error) {
	if _, err := core.NewMonth(year, 1); err != nil {
		return core.YearOverview{Year: year}, err
	}

	months := core.MonthsOf(year)
	found := make([]*core.Report, len(months))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.YearWorkers)
	for i, m := range months {
		i, m := i, m
		g.Go(func() error {
			r, err := s.Summarize(gctx, m)
			if errors.Is(err, storage.ErrNoData) {
				return nil
			}
			if err != nil {
				return err
			}
			found[i] = &r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return core.YearOverview{Year: year}, fmt.Errorf("summarize %d: %w", year, err)
	}

	var reports []core.Report
	for _, r := range found {
		if r != nil {
			reports = append(reports, *r)
		}
	}
	if len(reports) == 0 {
		return core.YearOverview{Year: year}, fmt.Errorf("summarize %d: %w", year, storage.ErrNoData)
	}

	s.logger.DebugContext(ctx, "Year summarized",
		applog.FieldOperation, applog.OpYear,
		applog.FieldYear, year,
		"months", len(reports))
	return core.NewYearOverview(year, reports), nil
}
