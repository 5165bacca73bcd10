package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/extract"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/pattern"
)

// TextEngine parses bank SMS and notification text. It is stateless per
// call: the registry is read-only after construction, so a single engine is
// safe for concurrent use from multiple workers.
type TextEngine struct {
	registry *pattern.Registry
}

// NewTextEngine creates a text-message parse engine over the given registry.
func NewTextEngine(registry *pattern.Registry) *TextEngine {
	return &TextEngine{registry: registry}
}

// Parse extracts a transaction from a message body. observedAt is the
// platform-supplied receive timestamp; the text engine trusts it over any
// in-message date, since SMS dates are frequently abbreviated or absent.
//
// Parse never returns an error: no recognizable shape yields the no-match
// sentinel, and a candidate whose extraction fails is skipped.
func (e *TextEngine) Parse(ctx context.Context, body, sender string, observedAt time.Time) model.ParseResult {
	norm := Normalize(body)
	if norm == "" {
		return model.NoMatch()
	}

	app := model.DetectChannel(sender, norm)
	candidates := e.registry.Candidates(sender, app)

	best := model.NoMatch()
	for _, p := range candidates {
		select {
		case <-ctx.Done():
			return best
		default:
		}

		res, _, ok := attemptPattern(p, norm, app)
		if !ok {
			continue
		}
		res.ExtractedDate = observedAt

		slog.Debug("pattern matched",
			"pattern", p.ID,
			"confidence", res.Confidence)

		// Strictly-greater keeps the earlier candidate on ties, so registry
		// order is the tie-break.
		if res.Confidence > best.Confidence {
			best = res
		}
	}

	if best.IsFinancialTransaction {
		slog.Debug("parse accepted",
			"sender", sender,
			"channel", best.DetectedChannel,
			"confidence", best.Confidence)
	}
	return best
}

// Normalize collapses all whitespace runs to single spaces and trims.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// attemptPattern runs one candidate against the normalized text and builds a
// scored result plus the raw match groups. Any panic during field extraction
// marks the pattern as non-matching rather than aborting the whole parse.
func attemptPattern(p pattern.TransactionPattern, norm string, app model.Channel) (res model.ParseResult, groups []string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("pattern evaluation failed", "pattern", p.ID, "panic", r)
			res, groups, ok = model.ParseResult{}, nil, false
		}
	}()

	groups = p.Regexp.FindStringSubmatch(norm)
	if groups == nil {
		return model.ParseResult{}, nil, false
	}

	res = model.ParseResult{
		IsFinancialTransaction: true,
		Description:            norm,
		DetectedChannel:        app,
	}

	amount, hasAmount := extract.Amount(groups, p.Amount)
	if hasAmount {
		res.Amount = &amount
	}

	res.MerchantName = extract.Merchant(groups, p.Merchant, norm)
	// The fallback label is a display placeholder, not an extracted field.
	hasMerchant := res.MerchantName != "" && res.MerchantName != extract.FallbackMerchantName

	reference, hasReference := extract.Reference(groups, p.Reference)
	res.ReferenceID = reference

	if acct, okAcct := extract.AccountNumber(groups, p.Account); okAcct {
		res.AccountNumber = acct
	}

	isDebit := ClassifyDirection(norm, p.DeclaredDirection) == model.DirectionDebit
	res.IsDebit = &isDebit

	res.Confidence = Score(ScoreInput{
		BaseConfidence: p.BaseConfidence,
		HasAmount:      hasAmount,
		HasMerchant:    hasMerchant,
		HasReference:   hasReference,
		HasChannel:     app != model.ChannelNone,
	})

	return res, groups, true
}
