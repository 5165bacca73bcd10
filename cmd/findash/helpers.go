package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/common"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/config"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/pattern"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/storage"
)

// initStorage opens the configured SQLite database and applies migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not open database at %s", dbPath), err)
	}
	if err := store.Migrate(ctx); err != nil {
		return nil, common.NewUserError("could not prepare the database schema", err)
	}
	return store, nil
}

// initRegistry builds the built-in pattern registry.
func initRegistry() (*pattern.Registry, error) {
	reg, err := pattern.NewDefaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build pattern registry: %w", err)
	}
	return reg, nil
}

// toTransaction converts an accepted parse into a persistable record.
func toTransaction(res model.ParseResult, source model.TransactionSource, category string) *model.Transaction {
	direction := model.DirectionDebit
	if res.IsDebit != nil && !*res.IsDebit {
		direction = model.DirectionCredit
	}

	txn := &model.Transaction{
		ID:            uuid.NewString(),
		Date:          res.ExtractedDate,
		MerchantName:  res.MerchantName,
		Description:   res.Description,
		ReferenceID:   res.ReferenceID,
		AccountNumber: res.AccountNumber,
		Category:      category,
		Channel:       res.DetectedChannel,
		Source:        source,
		Direction:     direction,
		Confidence:    res.Confidence,
		CreatedAt:     time.Now(),
	}
	if res.Amount != nil {
		txn.Amount = *res.Amount
	}
	txn.Hash = txn.GenerateHash()
	return txn
}

// printResult renders a parse result as indented JSON.
func printResult(res model.ParseResult) error {
	out, err := json.MarshalIndent(resultView(res), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// resultView shapes a ParseResult for display.
func resultView(res model.ParseResult) map[string]any {
	view := map[string]any{
		"is_financial_transaction": res.IsFinancialTransaction,
		"confidence":               res.Confidence,
	}
	if !res.IsFinancialTransaction {
		return view
	}
	if res.Amount != nil {
		view["amount"] = res.Amount.String()
	}
	if res.IsDebit != nil {
		view["is_debit"] = *res.IsDebit
	}
	if res.MerchantName != "" {
		view["merchant_name"] = res.MerchantName
	}
	if res.ReferenceID != "" {
		view["reference_id"] = res.ReferenceID
	}
	if res.AccountNumber != "" {
		view["account_number"] = res.AccountNumber
	}
	if res.DetectedChannel != model.ChannelNone {
		view["detected_channel"] = string(res.DetectedChannel)
	}
	view["extracted_date"] = res.ExtractedDate.Format(time.RFC3339)
	if res.ResolvedAccount != nil {
		view["resolved_account"] = map[string]any{
			"id":             res.ResolvedAccount.ID,
			"bank_name":      res.ResolvedAccount.BankName,
			"account_number": res.ResolvedAccount.AccountNumber,
		}
	}
	return view
}
