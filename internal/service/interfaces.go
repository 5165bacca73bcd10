// Package service defines the contracts between the parsing core and its
// collaborators. The core calls these through narrow interfaces and treats
// the implementations as black boxes.
package service

import (
	"context"
	"time"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
)

// AccountStore resolves and creates bank accounts. Only the receipt engine
// uses it, synchronously, once per parse.
//
// When invoked concurrently for the same account number, implementations
// must provide at-most-one-writer-per-account-number semantics (upsert keyed
// by account number, or an equivalent per-number lock); the parsing core
// does not serialize these calls itself.
type AccountStore interface {
	// FindByNumber returns the account with the given number, or
	// common.ErrNotFound when no such account exists.
	FindByNumber(ctx context.Context, accountNumber string) (*model.Account, error)
	// Insert stores a new account and returns its id.
	Insert(ctx context.Context, account *model.Account) (int64, error)
}

// CategorySuggester returns a best-fit category for a parsed transaction.
// It is invoked by callers of the parse engines, never by the engines
// themselves.
type CategorySuggester interface {
	Suggest(ctx context.Context, merchant, description string, channel model.Channel) (category string, confidence float64, err error)
}

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Direction model.Direction
	Limit     int
}

// TransactionStore persists accepted parses. Persistence is entirely the
// caller's responsibility; the parsing core never writes transactions.
type TransactionStore interface {
	// Save stores a transaction, returning common.ErrDuplicateEntry when a
	// record with the same content hash already exists.
	Save(ctx context.Context, txn *model.Transaction) error
	List(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
}
