package pattern

import (
	"fmt"
	"regexp"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
)

// Issuer tags used for candidate filtering. Bank tags match the sender id by
// substring; the generic tags form the fallback tiers.
const (
	IssuerHDFC   = "HDFC"
	IssuerICICI  = "ICICI"
	IssuerSBI    = "SBI"
	IssuerAxis   = "AXIS"
	IssuerKotak  = "KOTAK"
	IssuerUPI    = "UPI"
	IssuerATM    = "ATM"
	IssuerGPay   = "GPAY"
	IssuerPhonPe = "PHONEPE"
	IssuerPaytm  = "PAYTM"
)

// TransactionPattern describes one recognized message shape: a compiled
// regular expression plus per-field references into its capture groups.
// Patterns are immutable once constructed; ids are versioned (e.g.
// "hdfc_debit_v1") so shapes can evolve side by side.
type TransactionPattern struct {
	Regexp *regexp.Regexp

	ID     string
	Issuer string

	Amount    FieldRef
	Merchant  FieldRef
	Reference FieldRef
	Account   FieldRef
	Date      FieldRef
	BankName  FieldRef

	// DeclaredDirection is a hint used only when keyword classification is
	// inconclusive.
	DeclaredDirection model.Direction

	// Receipt marks an OCR-receipt shape. Receipt patterns are served only
	// by channel lookup for the receipt engine; sender-based candidate
	// selection for message text never sees them.
	Receipt bool

	// BaseConfidence is the author's prior confidence in (0, 1] that a match
	// of this shape is a real transaction.
	BaseConfidence float64
}

// Validate checks the static authoring invariants: base confidence in (0, 1]
// and every capture reference within the expression's group count. A failure
// is a programmer error in the catalog, not a runtime input condition.
func (p TransactionPattern) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("pattern id is required")
	}
	if p.Regexp == nil {
		return fmt.Errorf("pattern %s: expression is required", p.ID)
	}
	if p.BaseConfidence <= 0 || p.BaseConfidence > 1 {
		return fmt.Errorf("pattern %s: base confidence must be in (0, 1], got %v", p.ID, p.BaseConfidence)
	}
	max := p.Regexp.NumSubexp()
	for name, ref := range map[string]FieldRef{
		"amount":    p.Amount,
		"merchant":  p.Merchant,
		"reference": p.Reference,
		"account":   p.Account,
		"date":      p.Date,
		"bank_name": p.BankName,
	} {
		if n, ok := ref.Group(); ok && n > max {
			return fmt.Errorf("pattern %s: %s group %d exceeds capture group count %d", p.ID, name, n, max)
		}
	}
	return nil
}
