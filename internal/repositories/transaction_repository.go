package repositories

import (
	"context"
	"fmt"
	"time"

	"core-banking-statements/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

func ledgerOrder(db *gorm.DB) *gorm.DB {
	return db.Order("submitted_on ASC").Order("created_at ASC").Order("id ASC")
}

// Create appends a transaction to the ledger
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	return mapWriteError(r.db.WithContext(ctx).Create(transaction).Error, "transaction", "reference", "create")
}

// ListForBalance returns the balance affecting transactions submitted in
// (after, upTo]. A nil after means from account inception.
func (r *transactionRepository) ListForBalance(ctx context.Context, accountID uuid.UUID, after *time.Time, upTo time.Time) ([]models.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Where("transaction_type IN ?", models.BalanceAffectingTypes).
		Where("submitted_on <= ?", models.DateOf(upTo))

	if after != nil {
		query = query.Where("submitted_on > ?", models.DateOf(*after))
	}

	var transactions []models.Transaction
	if err := ledgerOrder(query).Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions for balance: %w", err)
	}
	return transactions, nil
}

// ListForStatement returns the credits and debits submitted in [from, to).
func (r *transactionRepository) ListForStatement(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	query := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Where("transaction_type IN ?", []string{models.TransactionTypeCredit, models.TransactionTypeDebit}).
		Where("submitted_on >= ? AND submitted_on < ?", models.DateOf(from), models.DateOf(to))

	if err := ledgerOrder(query).Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions for statement: %w", err)
	}
	return transactions, nil
}

// ListPendingIDs returns the ids of credits in [from, to) still awaiting
// settlement.
func (r *transactionRepository) ListPendingIDs(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("account_id = ? AND transaction_type = ? AND pending_settlement = ?", accountID, models.TransactionTypeCredit, true).
		Where("submitted_on >= ? AND submitted_on < ?", models.DateOf(from), models.DateOf(to)).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}
	return ids, nil
}
