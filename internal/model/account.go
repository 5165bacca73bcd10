package model

import "time"

// Account represents a bank account discovered while parsing messages.
// Accounts are keyed by the (masked-digits-stripped) account number that
// appears in bank SMS and receipt text.
type Account struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Name          string
	AccountNumber string
	BankName      string
	ID            int64
}
