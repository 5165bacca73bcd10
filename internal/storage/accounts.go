package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/common"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
)

// FindByNumber returns the account with the given number, or
// common.ErrNotFound when no such account exists.
func (s *SQLiteStorage) FindByNumber(ctx context.Context, accountNumber string) (*model.Account, error) {
	if accountNumber == "" {
		return nil, fmt.Errorf("accountNumber is required")
	}

	var acct model.Account
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, account_number, bank_name, created_at, updated_at
		 FROM accounts WHERE account_number = ?`, accountNumber).
		Scan(&acct.ID, &acct.Name, &acct.AccountNumber, &acct.BankName, &acct.CreatedAt, &acct.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}
	return &acct, nil
}

// Insert stores a new account and returns its id. The account_number UNIQUE
// constraint plus ON CONFLICT makes concurrent inserts of the same number
// converge on a single row, which is the at-most-one-writer-per-account
// semantics the receipt engine requires.
func (s *SQLiteStorage) Insert(ctx context.Context, account *model.Account) (int64, error) {
	if account == nil {
		return 0, fmt.Errorf("account is required")
	}
	if account.AccountNumber == "" {
		return 0, fmt.Errorf("account number is required")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (name, account_number, bank_name)
		 VALUES (?, ?, ?)
		 ON CONFLICT(account_number) DO NOTHING`,
		account.Name, account.AccountNumber, account.BankName)
	if err != nil {
		return 0, fmt.Errorf("failed to insert account: %w", err)
	}

	// Re-read rather than trusting LastInsertId: on conflict the insert is a
	// no-op and the surviving row's id is the one callers need.
	var id int64
	err = s.db.QueryRowContext(ctx,
		`SELECT id FROM accounts WHERE account_number = ?`, account.AccountNumber).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted account id: %w", err)
	}
	return id, nil
}

// ListAccounts returns all known accounts ordered by bank name.
func (s *SQLiteStorage) ListAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, account_number, bank_name, created_at, updated_at
		 FROM accounts ORDER BY bank_name, account_number`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.Account
	for rows.Next() {
		var acct model.Account
		if err := rows.Scan(&acct.ID, &acct.Name, &acct.AccountNumber,
			&acct.BankName, &acct.CreatedAt, &acct.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}
