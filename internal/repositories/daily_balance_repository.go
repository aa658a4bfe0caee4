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

// dailyBalanceRepository implements DailyBalanceRepositoryInterface
type dailyBalanceRepository struct {
	db *gorm.DB
}

// NewDailyBalanceRepository creates a new daily balance repository
func NewDailyBalanceRepository(db *gorm.DB) DailyBalanceRepositoryInterface {
	return &dailyBalanceRepository{
		db: db,
	}
}

// LatestOnOrBefore returns the newest snapshot dated on or before date.
func (r *dailyBalanceRepository) LatestOnOrBefore(ctx context.Context, accountID uuid.UUID, date time.Time) (*models.DailyBalance, error) {
	var balance models.DailyBalance
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND balance_date <= ?", accountID, models.DateOf(date)).
		Order("balance_date DESC").
		First(&balance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDailyBalanceNotFound
		}
		return nil, fmt.Errorf("failed to get daily balance: %w", err)
	}
	return &balance, nil
}

// Record persists a snapshot as a new daily balance row. The account row is
// locked for the write; when the snapshot is the newest one the account's
// running balance is moved to it as well.
func (r *dailyBalanceRepository) Record(ctx context.Context, snapshot models.BalanceSnapshot) (*models.DailyBalance, error) {
	row := snapshot.ToDailyBalance()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", snapshot.AccountID).
			First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrAccountNotFound, snapshot.AccountID)
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		if err := tx.Create(row).Error; err != nil {
			return mapWriteError(err, "daily balance", "balance_date", "create")
		}

		var later int64
		if err := tx.Model(&models.DailyBalance{}).
			Where("account_id = ? AND balance_date > ?", snapshot.AccountID, row.BalanceDate).
			Count(&later).Error; err != nil {
			return fmt.Errorf("failed to check later daily balances: %w", err)
		}
		if later > 0 {
			return nil
		}

		account.ApplySnapshot(snapshot)
		return updateAccount(tx, &account)
	})
	if err != nil {
		return nil, err
	}

	return row, nil
}
