package services

import (
	"context"
	"testing"
	"time"

	"core-banking-statements/internal/database"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerSeeder_SeedsReplayableLedger(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	client := database.CreateTestClient(t, db, "Ada Lovelace")
	account := database.CreateTestAccount(t, db, client.ID, models.ProductTypeCurrent, jan(1))
	accountRepo := repositories.NewAccountRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	seeder := NewLedgerSeeder(accountRepo, transactionRepo, "ONUS", 42, nil)
	ctx := context.Background()
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	created, err := seeder.Seed(ctx, account.ID, jan(1), to, 20)

	require.NoError(t, err)
	assert.Greater(t, created, 3)

	ledger, err := transactionRepo.ListForStatement(ctx, account.ID, jan(1), to)
	require.NoError(t, err)

	salaries, onUs := 0, 0
	balance := decimal.Zero
	for _, tx := range ledger {
		detail := tx.Detail()
		if detail.CategoryPurposeCode == "SALA" {
			salaries++
			assert.Equal(t, 1, tx.SubmittedOn.Day())
		}
		if detail.PaymentTypeCode == "ONUSTRANSFER" {
			onUs++
			assert.NotEmpty(t, detail.PartnerAccountNo)
		}
		switch {
		case tx.IsCredit():
			balance = balance.Add(tx.Amount)
		case tx.IsDebit():
			balance = balance.Sub(tx.Amount)
		}
	}
	assert.False(t, balance.IsNegative())
	assert.Equal(t, 2, salaries)
	assert.Equal(t, 1, onUs)
}

func TestLedgerSeeder_RespectsExistingLedger(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	client := database.CreateTestClient(t, db, "Ada Lovelace")
	account := database.CreateTestAccount(t, db, client.ID, models.ProductTypeCurrent, jan(1))
	overdrawn := database.CreateTestTransaction(t, db, account.ID, models.TransactionTypeDebit, "1000000000", jan(1))
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	seeder := NewLedgerSeeder(repositories.NewAccountRepository(db.DB), transactionRepo, "ONUS", 42, nil)
	ctx := context.Background()
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	created, err := seeder.Seed(ctx, account.ID, jan(1), to, 20)
	require.NoError(t, err)
	assert.Positive(t, created)

	ledger, err := transactionRepo.ListForBalance(ctx, account.ID, nil, to)
	require.NoError(t, err)

	for _, tx := range ledger {
		switch tx.TransactionType {
		case models.TransactionTypeDebit:
			assert.Equal(t, overdrawn.ID, tx.ID, "seeded debit on an overdrawn account")
		case models.TransactionTypeHold, models.TransactionTypeRelease:
			t.Errorf("seeded %s on an overdrawn account", tx.TransactionType)
		}
	}
}

func TestLedgerSeeder_StartsAtActivation(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	client := database.CreateTestClient(t, db, "Grace Hopper")
	account := database.CreateTestAccount(t, db, client.ID, models.ProductTypeCurrent, jan(15))
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	seeder := NewLedgerSeeder(repositories.NewAccountRepository(db.DB), transactionRepo, "ONUS", 7, nil)
	ctx := context.Background()

	_, err := seeder.Seed(ctx, account.ID, jan(1), jan(31), 10)
	require.NoError(t, err)

	ledger, err := transactionRepo.ListForStatement(ctx, account.ID, jan(1), jan(31))
	require.NoError(t, err)
	require.NotEmpty(t, ledger)
	for _, tx := range ledger {
		assert.False(t, tx.SubmittedOn.Before(jan(15)))
	}
}

func TestLedgerSeeder_EmptyRange(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	client := database.CreateTestClient(t, db, "Alan Turing")
	account := database.CreateTestAccount(t, db, client.ID, models.ProductTypeSavings, jan(1))
	seeder := NewLedgerSeeder(repositories.NewAccountRepository(db.DB), repositories.NewTransactionRepository(db.DB), "ONUS", 1, nil)

	created, err := seeder.Seed(context.Background(), account.ID, jan(10), jan(10), 5)

	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestLedgerSeeder_UnknownAccount(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	seeder := NewLedgerSeeder(repositories.NewAccountRepository(db.DB), repositories.NewTransactionRepository(db.DB), "ONUS", 1, nil)

	_, err := seeder.Seed(context.Background(), uuid.New(), jan(1), jan(31), 5)

	assert.ErrorIs(t, err, repositories.ErrAccountNotFound)
}
