package pattern

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
)

// bankIssuers lists the bank tags in the order sender ids are checked.
// The first tag whose lowercase form appears in the sender wins.
var bankIssuers = []string{IssuerHDFC, IssuerICICI, IssuerSBI, IssuerAxis, IssuerKotak}

// channelIssuer maps a detected payment app to its pattern tier.
var channelIssuer = map[model.Channel]string{
	model.ChannelGPay:    IssuerGPay,
	model.ChannelPhonePe: IssuerPhonPe,
	model.ChannelPaytm:   IssuerPaytm,
}

// Registry holds the immutable pattern table, bucketed by issuer tag.
// Message patterns and receipt patterns live in separate buckets so a
// payment-app mention in an SMS never routes the text to OCR-receipt shapes.
// It is populated once at construction and safe for concurrent reads.
type Registry struct {
	byIssuer        map[string][]TransactionPattern
	receiptByIssuer map[string][]TransactionPattern
}

// NewRegistry validates the given patterns and builds a registry. Within an
// issuer tier, patterns are ordered by descending base confidence (stable, so
// catalog order breaks confidence ties). Tier order at lookup time is the
// tie-break policy for the engine's best-match search: bank-specific patterns
// come before generic ones, and the first pattern reaching the maximum score
// wins.
func NewRegistry(patterns []TransactionPattern) (*Registry, error) {
	byIssuer := make(map[string][]TransactionPattern)
	receiptByIssuer := make(map[string][]TransactionPattern)
	for _, p := range patterns {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		if p.Receipt {
			receiptByIssuer[p.Issuer] = append(receiptByIssuer[p.Issuer], p)
		} else {
			byIssuer[p.Issuer] = append(byIssuer[p.Issuer], p)
		}
	}
	for _, bucket := range []map[string][]TransactionPattern{byIssuer, receiptByIssuer} {
		for _, tier := range bucket {
			sort.SliceStable(tier, func(i, j int) bool {
				return tier[i].BaseConfidence > tier[j].BaseConfidence
			})
		}
	}
	return &Registry{byIssuer: byIssuer, receiptByIssuer: receiptByIssuer}, nil
}

// NewDefaultRegistry builds a registry over the built-in catalog.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(Catalog())
}

// Candidates returns the ordered candidate patterns for a message from the
// given sender, with app the payment channel detected from the sender or
// message text (ChannelNone if none).
//
// Selection policy: a sender matching a known bank tag gets that bank's
// patterns followed by the generic UPI tier; otherwise a detected app gets
// its own tier (generic UPI when the app has no message patterns); otherwise
// the generic UPI and ATM tiers. Receipt patterns are never served here.
func (r *Registry) Candidates(sender string, app model.Channel) []TransactionPattern {
	senderLower := strings.ToLower(sender)
	for _, bank := range bankIssuers {
		if strings.Contains(senderLower, strings.ToLower(bank)) {
			return r.tiers(bank, IssuerUPI)
		}
	}
	if app != model.ChannelNone {
		if tier := r.byIssuer[channelIssuer[app]]; len(tier) > 0 {
			return r.tiers(channelIssuer[app])
		}
		return r.tiers(IssuerUPI)
	}
	return r.tiers(IssuerUPI, IssuerATM)
}

// ChannelCandidates returns the receipt patterns for a single payment
// channel only. Receipt screenshots are channel-specific, so there is no
// generic UPI fallback tier; an unrecognized channel yields no candidates.
func (r *Registry) ChannelCandidates(app model.Channel) []TransactionPattern {
	issuer, ok := channelIssuer[app]
	if !ok {
		return nil
	}
	return r.receiptByIssuer[issuer]
}

// Len returns the total number of registered patterns.
func (r *Registry) Len() int {
	n := 0
	for _, tier := range r.byIssuer {
		n += len(tier)
	}
	for _, tier := range r.receiptByIssuer {
		n += len(tier)
	}
	return n
}

func (r *Registry) tiers(issuers ...string) []TransactionPattern {
	var out []TransactionPattern
	for _, issuer := range issuers {
		out = append(out, r.byIssuer[issuer]...)
	}
	return out
}
