package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/common"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/service"
)

// Save persists one accepted parse. Amounts are stored as their exact
// decimal string, never as REAL. Saving a transaction whose hash already
// exists leaves the stored record untouched and returns
// common.ErrDuplicateEntry so repeated scans of the same message dump can
// count duplicates without creating records.
func (s *SQLiteStorage) Save(ctx context.Context, txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("transaction is required")
	}
	if txn.ID == "" {
		return fmt.Errorf("transaction id is required")
	}
	if txn.Hash == "" {
		txn.Hash = txn.GenerateHash()
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions
		 (id, hash, date, merchant_name, description, reference_id, account_number,
		  category, channel, source, direction, amount, confidence)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(hash) DO NOTHING`,
		txn.ID, txn.Hash, txn.Date, txn.MerchantName, txn.Description,
		txn.ReferenceID, txn.AccountNumber, txn.Category, string(txn.Channel),
		string(txn.Source), string(txn.Direction), txn.Amount.String(), txn.Confidence)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("transaction with hash %s: %w", txn.Hash, common.ErrDuplicateEntry)
	}
	return nil
}

// List returns transactions matching the filter, newest first.
func (s *SQLiteStorage) List(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	var (
		conds []string
		args  []any
	)
	if filter.StartDate != nil {
		conds = append(conds, "date >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conds = append(conds, "date <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.Direction != model.DirectionUnknown {
		conds = append(conds, "direction = ?")
		args = append(args, string(filter.Direction))
	}

	query := `SELECT id, hash, date, merchant_name, description, reference_id,
		account_number, category, channel, source, direction, amount, confidence, created_at
		FROM transactions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var (
			txn       model.Transaction
			channel   string
			source    string
			direction string
			amount    string
		)
		if err := rows.Scan(&txn.ID, &txn.Hash, &txn.Date, &txn.MerchantName,
			&txn.Description, &txn.ReferenceID, &txn.AccountNumber, &txn.Category,
			&channel, &source, &direction, &amount, &txn.Confidence, &txn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Channel = model.Channel(channel)
		txn.Source = model.TransactionSource(source)
		txn.Direction = model.Direction(direction)
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q for transaction %s: %w", amount, txn.ID, err)
		}
		txn.Amount = d
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}
