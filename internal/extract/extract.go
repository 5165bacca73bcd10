// Package extract provides the stateless field extractors that pull and
// normalize a single field out of a successful pattern match. Every extractor
// is total: failure is an explicit return value, never a panic or error.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/pattern"
)

// Named policy fallbacks. These are deliberate business defaults, not bugs:
// a merchant the heuristics cannot recover is labeled rather than dropped,
// and an account whose bank cannot be resolved still gets a display name.
const (
	// FallbackMerchantName is returned when a pattern carries no merchant at
	// all and the heuristics find nothing.
	FallbackMerchantName = "Unknown Transaction"
	// UnknownAccountName labels accounts whose bank name could not be
	// extracted or resolved.
	UnknownAccountName = "Unknown Account"
)

var currencyTokens = strings.NewReplacer(",", "", "Rs.", "", "Rs", "", "INR", "", "₹", "")

// Amount parses the amount field of a match. Thousands separators and
// currency tokens (Rs./INR/₹) are stripped before parsing. The value is an
// exact decimal because it represents currency; binary floats are never used.
func Amount(groups []string, ref pattern.FieldRef) (decimal.Decimal, bool) {
	raw, ok := captured(groups, ref)
	if !ok {
		return decimal.Decimal{}, false
	}
	cleaned := strings.TrimSpace(currencyTokens.Replace(raw))
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Merchant fallback shapes, tried in order against the full message.
var merchantFallbacks = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bat\s+([A-Za-z0-9@.&'_ -]+?)\s+on\b`),
	regexp.MustCompile(`(?i)\bto\s+([A-Za-z0-9@.&'_ -]+?)\s+on\b`),
	regexp.MustCompile(`(?i)\bfrom\s+([A-Za-z0-9@.&'_ -]+)`),
	regexp.MustCompile(`(?i)\bpaid\s+to\s+([A-Za-z0-9@.&'_ -]+)`),
}

var upiHandle = regexp.MustCompile(`\S*@\S*`)

// Merchant extracts the merchant name. A captured group is returned trimmed.
// The heuristic reference tries the fallback shapes over the whole message
// and accepts the first captured name longer than two characters, with any
// UPI handle ("name@bank") stripped. An absent reference returns
// FallbackMerchantName so downstream display code always has a label.
func Merchant(groups []string, ref pattern.FieldRef, fullText string) string {
	switch ref.Kind() {
	case pattern.KindCapture:
		if raw, ok := captured(groups, ref); ok {
			return strings.TrimSpace(raw)
		}
		return FallbackMerchantName
	case pattern.KindHeuristic:
		for _, re := range merchantFallbacks {
			m := re.FindStringSubmatch(fullText)
			if m == nil {
				continue
			}
			name := strings.TrimSpace(m[1])
			if len(name) <= 2 {
				continue
			}
			name = strings.TrimSpace(upiHandle.ReplaceAllString(name, ""))
			if name == "" {
				continue
			}
			return name
		}
		return FallbackMerchantName
	default:
		return FallbackMerchantName
	}
}

// Reference extracts the transaction reference id. A Synthesize reference
// models "the message has a reference concept but no stable literal value":
// a fresh random id is generated. Absent references return ("", false).
func Reference(groups []string, ref pattern.FieldRef) (string, bool) {
	switch ref.Kind() {
	case pattern.KindCapture:
		raw, ok := captured(groups, ref)
		if !ok || strings.TrimSpace(raw) == "" {
			return "", false
		}
		return strings.TrimSpace(raw), true
	case pattern.KindSynthesize:
		return uuid.NewString(), true
	default:
		return "", false
	}
}

// AccountNumber extracts the account number with all x/X masking characters
// removed, e.g. "XX750" -> "750".
func AccountNumber(groups []string, ref pattern.FieldRef) (string, bool) {
	raw, ok := captured(groups, ref)
	if !ok {
		return "", false
	}
	cleaned := strings.TrimSpace(strings.NewReplacer("x", "", "X", "").Replace(raw))
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}

// BankName extracts the bank name group of a receipt pattern, trimmed.
// Resolution through the account store when the group is absent happens at
// the engine level, not here.
func BankName(groups []string, ref pattern.FieldRef) (string, bool) {
	raw, ok := captured(groups, ref)
	if !ok || strings.TrimSpace(raw) == "" {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

// dateLayouts are tried in priority order. The first four are the canonical
// SMS shapes; the trailing layouts cover compact and long-form dates seen in
// SBI messages and receipt screenshots.
var dateLayouts = []string{
	"02-Jan-06",           // 18-Oct-25
	"02/01/06",            // 01/09/25
	"02-01-06",            // 22-08-25
	"2006-01-02T15:04:05", // ISO local date-time
	"2006-01-02:15:04:05", // HDFC card statement timestamps
	"02Jan06",             // SBI compact dates, 18Oct25
	"2 January 2006",      // receipt long form
}

// Date parses the captured date against each supported layout in order.
// When the pattern has no date group, or no layout parses, the supplied
// processing time is returned: bank SMS routinely omit or abbreviate dates
// that are reconstructable from the message timestamp, so "now" is a
// deliberate fallback rather than an error.
func Date(groups []string, ref pattern.FieldRef, now time.Time) time.Time {
	raw, ok := captured(groups, ref)
	if !ok {
		return now
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, now.Location()); err == nil {
			return t
		}
	}
	return now
}

// captured returns the submatch for a capture reference. Out-of-range groups
// and empty submatches report false.
func captured(groups []string, ref pattern.FieldRef) (string, bool) {
	n, ok := ref.Group()
	if !ok || n >= len(groups) {
		return "", false
	}
	if groups[n] == "" {
		return "", false
	}
	return groups[n], true
}
