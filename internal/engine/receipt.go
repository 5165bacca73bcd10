package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/common"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/extract"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/pattern"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/service"
)

// ReceiptEngine parses OCR text from payment-app receipt screenshots.
// Receipts are channel-specific, so only the single detected channel's
// patterns are evaluated and there is no generic fallback tier. Unlike the
// text engine, the receipt engine resolves or creates the bank account named
// in the receipt through the account collaborator.
type ReceiptEngine struct {
	registry *pattern.Registry
	accounts service.AccountStore
	now      func() time.Time
}

// NewReceiptEngine creates a receipt parse engine. accounts may be nil, in
// which case parses are returned without a resolved account.
func NewReceiptEngine(registry *pattern.Registry, accounts service.AccountStore) *ReceiptEngine {
	return &ReceiptEngine{
		registry: registry,
		accounts: accounts,
		now:      time.Now,
	}
}

// Parse extracts a transaction from receipt OCR text. sourceHint is the
// image source identifier (file path or content URI); the channel is derived
// from it by substring match.
//
// Parse never returns an error. A failed account lookup or insert degrades
// to an unresolved account, not a failed parse.
func (e *ReceiptEngine) Parse(ctx context.Context, ocrText, sourceHint string) model.ParseResult {
	norm := Normalize(ocrText)
	if norm == "" {
		return model.NoMatch()
	}

	app := model.DetectChannelFromHint(sourceHint)
	candidates := e.registry.ChannelCandidates(app)
	if len(candidates) == 0 {
		return model.NoMatch()
	}

	best := model.NoMatch()
	var bestPattern pattern.TransactionPattern
	var bestGroups []string
	for _, p := range candidates {
		res, groups, ok := attemptPattern(p, norm, app)
		if !ok {
			continue
		}
		// Receipts carry their own date; fall back to processing time when
		// the pattern has no date group or the captured text will not parse.
		res.ExtractedDate = extract.Date(groups, p.Date, e.now())

		if res.Confidence > best.Confidence {
			best = res
			bestPattern = p
			bestGroups = groups
		}
	}

	if !best.IsFinancialTransaction {
		return best
	}

	best.ResolvedAccount = e.resolveAccount(ctx, bestPattern, bestGroups, best.AccountNumber)
	return best
}

// resolveAccount looks up the receipt's account by number and creates it
// when it does not exist yet, using the receipt's bank name or the unknown
// placeholder. Any collaborator failure leaves the parse with an unresolved
// account.
func (e *ReceiptEngine) resolveAccount(ctx context.Context, p pattern.TransactionPattern, groups []string, accountNumber string) *model.Account {
	if e.accounts == nil || accountNumber == "" {
		return nil
	}

	acct, err := e.accounts.FindByNumber(ctx, accountNumber)
	if err == nil {
		// An existing account whose bank name was recorded as unknown is
		// intentionally left untouched.
		return acct
	}
	if !errors.Is(err, common.ErrNotFound) {
		slog.Debug("account lookup failed", "account_number", accountNumber, "error", err)
		return nil
	}

	// A receipt that names no bank still yields an account row, labeled with
	// the unknown placeholder so a later backfill can find it.
	bankName, hasBank := extract.BankName(groups, p.BankName)
	if !hasBank {
		bankName = extract.UnknownAccountName
	}

	created := &model.Account{
		Name:          bankName,
		AccountNumber: accountNumber,
		BankName:      bankName,
	}
	id, err := e.accounts.Insert(ctx, created)
	if err != nil {
		slog.Debug("account insert failed", "account_number", accountNumber, "error", err)
		return nil
	}
	created.ID = id
	slog.Info("created account from receipt",
		"bank", bankName,
		"account_number", accountNumber)
	return created
}
