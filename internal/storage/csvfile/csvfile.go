// Package csvfile stores expenses in one CSV file per calendar month.
//
// Files live under a storage root and are named expenses_<YYYY>_<MM>.csv.
// A file is created with its header on the first append for that month and
// is only ever appended to afterwards.
package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gastos/internal/core"
	applog "gastos/internal/log"
	"gastos/internal/storage"
)

// Header is the fixed first row of every ledger file.
var Header = []string{"Date", "Category", "Amount (Colones)", "Amount (Dollars)", "Description"}

// Ensure interface conformance
var _ storage.Ledger = (*Store)(nil)

type Store struct {
	root   string
	logger *applog.Logger
}

func New(root string, logger *applog.Logger) *Store {
	if logger == nil {
		logger = applog.Default()
	}
	return &Store{
		root:   root,
		logger: logger.WithComponent(applog.ComponentStorage),
	}
}

// Root returns the storage directory.
func (s *Store) Root() string {
	return s.root
}

// FileName returns the base name of the ledger file of a month.
func FileName(m core.Month) string {
	return fmt.Sprintf("expenses_%04d_%02d.csv", m.Year, m.Month)
}

// ResolveFile maps a month to its ledger file path and makes sure the
// storage root exists. The file itself is not created.
func (s *Store) ResolveFile(m core.Month) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		s.logger.Error("Storage directory unavailable",
			applog.NewFields().
				WithOperation(applog.OpResolve).
				WithErrorType(applog.ErrorTypeStorage).
				WithError(err).
				ToSlice()...)
		return "", fmt.Errorf("create storage directory: %w", err)
	}
	return filepath.Join(s.root, FileName(m)), nil
}

// EnsureInitialized creates path with only the header row when it does not
// exist yet. An existing file is left untouched, except that an empty one
// gets its header. It reports whether it wrote a header.
func EnsureInitialized(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		info, statErr := os.Stat(path)
		if statErr != nil {
			return false, fmt.Errorf("stat ledger file: %w", statErr)
		}
		if info.Size() > 0 {
			return false, nil
		}
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	}
	if err != nil {
		return false, fmt.Errorf("create ledger file: %w", err)
	}

	if err := writeRow(f, Header); err != nil {
		f.Close()
		return false, fmt.Errorf("write header: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close ledger file: %w", err)
	}
	return true, nil
}

// Append implements storage.EntryAppender. The file is picked from the
// expense's own date.
func (s *Store) Append(ctx context.Context, e core.Expense) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := e.Validate(); err != nil {
		return "", err
	}
	m := e.Date.Period()
	path, err := s.ResolveFile(m)
	if err != nil {
		return "", err
	}

	created, err := EnsureInitialized(path)
	if err != nil {
		return "", err
	}
	if created {
		s.logger.InfoContext(ctx, "Ledger file created",
			applog.NewFields().
				WithOperation(applog.OpInit).
				WithPath(path).
				WithMonth(m.Year, m.Month).
				ToSlice()...)
	}

	if err := AppendRecord(path, e.Record()); err != nil {
		return "", err
	}

	s.logger.DebugContext(ctx, "Expense appended",
		applog.NewFields().
			WithOperation(applog.OpAppend).
			WithPath(path).
			WithExpense(e.Date.String(), e.Category, e.Colones.String(), e.Dollars.String()).
			ToSlice()...)

	return path, nil
}

// AppendRecord appends one row to an initialized ledger file. The row is
// encoded in memory first and written with a single call. A file whose last
// line lacks its newline gets one in front of the row.
func AppendRecord(path string, r core.Record) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger file: %w", err)
	}
	row, err := encodeRow(r.Cells())
	if err != nil {
		f.Close()
		return fmt.Errorf("encode record: %w", err)
	}
	terminated, err := endsWithNewline(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("read ledger file: %w", err)
	}
	if !terminated {
		row = append([]byte{'\n'}, row...)
	}
	if _, err := f.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("append record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close ledger file: %w", err)
	}
	return nil
}

// List implements storage.EntryLister.
func (s *Store) List(ctx context.Context, m core.Month) ([]core.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.ResolveFile(m)
	if err != nil {
		return nil, err
	}
	records, err := Load(path)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "Ledger file loaded",
		applog.FieldPath, path,
		applog.FieldEntries, len(records))
	return records, nil
}

// Load reads every record of a ledger file in file order. A missing file
// yields storage.ErrNoData; a file holding only its header yields an empty,
// non-nil slice.
func Load(path string) ([]core.Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records := []core.Record{}
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return records, nil
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		records = append(records, core.RecordFromCells(row))
	}
	return records, nil
}

// endsWithNewline reports whether f is empty or ends with a line break.
func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}

func encodeRow(cells []string) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(cells); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(w io.Writer, cells []string) error {
	row, err := encodeRow(cells)
	if err != nil {
		return err
	}
	_, err = w.Write(row)
	return err
}
