package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/common"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/service"
	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/testutil"
)

func TestAccountRoundTrip(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	_, err := store.FindByNumber(ctx, "8696")
	assert.ErrorIs(t, err, common.ErrNotFound)

	id, err := store.Insert(ctx, &model.Account{
		Name:          "HDFC Bank",
		AccountNumber: "8696",
		BankName:      "HDFC Bank",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	acct, err := store.FindByNumber(ctx, "8696")
	require.NoError(t, err)
	assert.Equal(t, id, acct.ID)
	assert.Equal(t, "HDFC Bank", acct.BankName)
	assert.Equal(t, "8696", acct.AccountNumber)
}

func TestAccountInsertSameNumberConverges(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	first, err := store.Insert(ctx, &model.Account{Name: "HDFC Bank", AccountNumber: "750", BankName: "HDFC Bank"})
	require.NoError(t, err)

	// A second insert for the same account number must not create a second
	// row; it resolves to the surviving row's id.
	second, err := store.Insert(ctx, &model.Account{Name: "ICICI Bank", AccountNumber: "750", BankName: "ICICI Bank"})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	acct, err := store.FindByNumber(ctx, "750")
	require.NoError(t, err)
	assert.Equal(t, "HDFC Bank", acct.BankName, "first writer wins")

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func sampleTransaction(merchant string, amount string, date time.Time, direction model.Direction) *model.Transaction {
	txn := &model.Transaction{
		ID:            uuid.NewString(),
		Date:          date,
		MerchantName:  merchant,
		Description:   "test message",
		ReferenceID:   uuid.NewString(),
		AccountNumber: "8696",
		Category:      "Shopping",
		Channel:       model.ChannelGPay,
		Source:        model.SourceSMS,
		Direction:     direction,
		Amount:        decimal.RequireFromString(amount),
		Confidence:    0.95,
		CreatedAt:     time.Now(),
	}
	txn.Hash = txn.GenerateHash()
	return txn
}

func TestTransactionSaveAndList(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	date := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	txn := sampleTransaction("SWIGGY", "249.50", date, model.DirectionDebit)
	require.NoError(t, store.Save(ctx, txn))

	got, err := store.List(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, txn.ID, got[0].ID)
	assert.Equal(t, "SWIGGY", got[0].MerchantName)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("249.50")), "amount must round-trip exactly")
	assert.Equal(t, model.DirectionDebit, got[0].Direction)
	assert.Equal(t, model.ChannelGPay, got[0].Channel)
}

func TestTransactionSaveDuplicateHash(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	date := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	txn := sampleTransaction("SWIGGY", "100", date, model.DirectionDebit)
	require.NoError(t, store.Save(ctx, txn))

	dupe := sampleTransaction("SWIGGY", "100", date, model.DirectionDebit)
	err := store.Save(ctx, dupe)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	// The original record is untouched.
	got, err := store.List(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, txn.ID, got[0].ID)
}

func TestTransactionListFilters(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	oct := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	sep := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, sampleTransaction("SWIGGY", "100", oct, model.DirectionDebit)))
	require.NoError(t, store.Save(ctx, sampleTransaction("EMPLOYER", "50000", sep, model.DirectionCredit)))

	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	got, err := store.List(ctx, service.TransactionFilter{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "SWIGGY", got[0].MerchantName)

	got, err = store.List(ctx, service.TransactionFilter{Direction: model.DirectionCredit})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "EMPLOYER", got[0].MerchantName)

	got, err = store.List(ctx, service.TransactionFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	// Newest first.
	assert.Equal(t, "SWIGGY", got[0].MerchantName)
}
