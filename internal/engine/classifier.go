// Package engine implements the parse engines that turn raw message text
// into structured transaction parses, along with the direction classifier
// and the confidence scorer they share.
package engine

import (
	"strings"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
)

// DefaultDirection is the business-policy fallback for messages whose
// direction cannot be determined: ambiguous messages are assumed to be
// expenses, since missing an expense is judged worse than a false positive.
const DefaultDirection = model.DirectionDebit

// Direction keyword lists, checked in order: debit keywords always win over
// credit keywords, and both win over the pattern's declared direction.
var (
	DebitKeywords  = []string{"debited", "paid", "sent", "withdrawn", "debit", "purchase", "spent"}
	CreditKeywords = []string{"credited", "received", "deposit", "credit", "refund", "cashback"}
)

// ClassifyDirection decides debit vs. credit for a message. The keyword
// check runs over the lower-cased text first; the pattern's declared
// direction is consulted only when the keywords are inconclusive, and a
// fully ambiguous message falls back to DefaultDirection.
func ClassifyDirection(text string, declared model.Direction) model.Direction {
	lower := strings.ToLower(text)
	for _, kw := range DebitKeywords {
		if strings.Contains(lower, kw) {
			return model.DirectionDebit
		}
	}
	for _, kw := range CreditKeywords {
		if strings.Contains(lower, kw) {
			return model.DirectionCredit
		}
	}
	if declared == model.DirectionDebit || declared == model.DirectionCredit {
		return declared
	}
	return DefaultDirection
}
