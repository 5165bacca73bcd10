// Package model defines the core domain models used throughout the application.
package model

// Direction indicates whether a transaction moves money out of or into an account.
type Direction string

// Direction constants.
const (
	DirectionUnknown Direction = ""
	DirectionDebit   Direction = "debit"
	DirectionCredit  Direction = "credit"
)

// IsDebit reports whether the direction is a debit. An unknown direction is
// not a debit; callers that need the ambiguous-message default should go
// through the engine classifier instead of this accessor.
func (d Direction) IsDebit() bool {
	return d == DirectionDebit
}
