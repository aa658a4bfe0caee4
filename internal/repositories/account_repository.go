package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"core-banking-statements/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	return mapWriteError(r.db.WithContext(ctx).Create(account).Error, "account", "account_no", "create")
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByIDs loads accounts keyed by id. Missing ids are absent from the map.
func (r *accountRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Account, error) {
	result := make(map[uuid.UUID]*models.Account, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var accounts []*models.Account
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	for _, account := range accounts {
		result[account.ID] = account
	}
	return result, nil
}

// ListBalanceCalculationEnabled pages through accounts whose status keeps
// balance snapshots, ordered by id.
func (r *accountRepository) ListBalanceCalculationEnabled(ctx context.Context, afterID uuid.UUID, limit int) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Where("status IN ?", []string{models.AccountStatusActive, models.AccountStatusBlocked, models.AccountStatusDormant}).
		Where("id > ?", afterID).
		Order("id").
		Limit(limit).
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Update writes the mutable account fields guarded by the row version.
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	return updateAccount(r.db.WithContext(ctx), account)
}

// Close locks the account row, closes the account and inactivates its
// statements in one transaction.
func (r *accountRepository) Close(ctx context.Context, id uuid.UUID, on time.Time) (*models.Account, error) {
	var account models.Account

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		live, err := ledgerBalance(tx, account.ID)
		if err != nil {
			return err
		}
		account.ApplySnapshot(live)

		if err := account.Close(on); err != nil {
			return err
		}

		if err := updateAccount(tx, &account); err != nil {
			return err
		}

		if err := tx.Model(&models.AccountStatement{}).
			Where("account_id = ? AND statement_status = ?", id, models.StatementStatusActive).
			Updates(map[string]interface{}{
				"statement_status":    models.StatementStatusInactive,
				"next_statement_date": nil,
				"version":             gorm.Expr("version + 1"),
				"updated_at":          time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to inactivate account statements: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// ledgerBalance replays every posting after the newest daily snapshot. The
// stored running balance only moves when a snapshot is recorded, so it can
// lag the ledger. Postings dated in the future count as well.
func ledgerBalance(tx *gorm.DB, accountID uuid.UUID) (models.BalanceSnapshot, error) {
	snapshot := models.ZeroSnapshot(accountID)

	var latest []models.DailyBalance
	if err := tx.Where("account_id = ?", accountID).
		Order("balance_date DESC").
		Limit(1).
		Find(&latest).Error; err != nil {
		return snapshot, fmt.Errorf("failed to get daily balance: %w", err)
	}

	query := tx.Where("account_id = ?", accountID).
		Where("transaction_type IN ?", models.BalanceAffectingTypes)
	if len(latest) > 0 {
		snapshot = latest[0].Snapshot()
		query = query.Where("submitted_on > ?", snapshot.AsOfDate)
	}

	var transactions []models.Transaction
	if err := ledgerOrder(query).Find(&transactions).Error; err != nil {
		return snapshot, fmt.Errorf("failed to list transactions for balance: %w", err)
	}

	for _, t := range transactions {
		snapshot, _ = snapshot.Apply(t)
	}
	return snapshot, nil
}

func updateAccount(db *gorm.DB, account *models.Account) error {
	next := account.Version + 1
	result := db.Model(account).
		Where("version = ?", account.Version).
		Updates(map[string]interface{}{
			"status":            account.Status,
			"account_balance":   account.AccountBalance,
			"hold_amount":       account.HoldAmount,
			"activated_on":      account.ActivatedOn,
			"closed_on":         account.ClosedOn,
			"linked_account_id": account.LinkedAccountID,
			"version":           next,
			"updated_at":        time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: account %s", ErrConcurrentModification, account.ID)
	}

	account.Version = next
	return nil
}
