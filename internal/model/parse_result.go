package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParseResult is the outcome of a single parse attempt over one message.
// It is constructed once by the engine and never mutated afterwards.
//
// A zero-valued field means the corresponding piece of information could not
// be extracted; absence of a transaction altogether is expressed by
// IsFinancialTransaction = false, never by an error.
type ParseResult struct {
	// ExtractedDate is the transaction date: the platform receive timestamp
	// for SMS parses, or the in-message date (defaulting to processing time)
	// for receipt parses.
	ExtractedDate time.Time

	// Amount is the transaction amount. Exact decimal arithmetic is used
	// because the value represents currency.
	Amount *decimal.Decimal

	// IsDebit is nil when no direction could be determined, which only
	// happens on the no-match sentinel; a matched parse always carries a
	// direction (the classifier defaults ambiguous messages to debit).
	IsDebit *bool

	// ResolvedAccount is the account record resolved or created by the
	// account collaborator. Only the receipt engine populates it; the
	// parser does not own the record.
	ResolvedAccount *Account

	MerchantName  string
	Description   string
	ReferenceID   string
	AccountNumber string

	// DetectedChannel is the payment app independently detected from the
	// sender identity, message text, or image source hint.
	DetectedChannel Channel

	// Confidence is a heuristic score in [0, 1]. Callers apply their own
	// accept threshold; the surrounding application uses 0.7.
	Confidence float64

	// IsFinancialTransaction is false for the canonical no-match sentinel.
	IsFinancialTransaction bool
}

// NoMatch returns the canonical "no transaction recognized" sentinel.
func NoMatch() ParseResult {
	return ParseResult{IsFinancialTransaction: false, Confidence: 0}
}
