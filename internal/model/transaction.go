package model

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionSource identifies where a transaction record was extracted from.
type TransactionSource string

// Transaction source constants.
const (
	SourceSMS     TransactionSource = "sms"
	SourceReceipt TransactionSource = "receipt"
)

// Transaction is a fully extracted financial transaction ready for
// persistence. It is what callers build from an accepted ParseResult; the
// parsing core itself never persists anything.
type Transaction struct {
	Date          time.Time
	CreatedAt     time.Time
	ID            string
	MerchantName  string
	Description   string
	ReferenceID   string
	AccountNumber string
	Category      string
	Hash          string
	Channel       Channel
	Source        TransactionSource
	Direction     Direction
	Amount        decimal.Decimal
	Confidence    float64
}

// GenerateHash creates a stable hash for duplicate detection across repeated
// imports of the same message dump.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount.String(),
		t.MerchantName,
		t.AccountNumber)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
