// Package storage defines the ports the ledger service uses to persist and
// read monthly expense files.
package storage

import (
	"context"
	"errors"

	"gastos/internal/core"
)

// ErrNoData signals that a month has no ledger file yet. It is a normal
// empty result, not a failure.
var ErrNoData = errors.New("no data for month")

// Ports for outbound adapters.
type (
	EntryAppender interface {
		// Append writes one expense to the file of its month and returns the path written.
		Append(ctx context.Context, e core.Expense) (path string, err error)
	}

	EntryLister interface {
		// List returns the records of a month in file order, or ErrNoData.
		List(ctx context.Context, m core.Month) ([]core.Record, error)
	}

	Ledger interface {
		EntryAppender
		EntryLister
	}
)
