package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"core-banking-statements/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accountStatementRepository implements AccountStatementRepositoryInterface
type accountStatementRepository struct {
	db *gorm.DB
}

// NewAccountStatementRepository creates a new account statement repository
func NewAccountStatementRepository(db *gorm.DB) AccountStatementRepositoryInterface {
	return &accountStatementRepository{
		db: db,
	}
}

// Create inserts a statement. An account has at most one statement per template.
func (r *accountStatementRepository) Create(ctx context.Context, statement *models.AccountStatement) error {
	return mapWriteError(r.db.WithContext(ctx).Omit("ProductStatement").Create(statement).Error, "account statement", "account_id", "create")
}

func (r *accountStatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AccountStatement, error) {
	var statement models.AccountStatement
	if err := r.db.WithContext(ctx).
		Preload("ProductStatement").
		Where("id = ?", id).
		First(&statement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountStatementNotFound, id)
		}
		return nil, fmt.Errorf("failed to get account statement: %w", err)
	}
	return &statement, nil
}

// GetByIDs loads every statement of a batch in the order of ids. A missing id
// fails the whole load.
func (r *accountStatementRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.AccountStatement, error) {
	var statements []*models.AccountStatement
	if len(ids) == 0 {
		return statements, nil
	}

	if err := r.db.WithContext(ctx).
		Preload("ProductStatement").
		Where("id IN ?", ids).
		Find(&statements).Error; err != nil {
		return nil, fmt.Errorf("failed to get account statements: %w", err)
	}

	byID := make(map[uuid.UUID]*models.AccountStatement, len(statements))
	for _, s := range statements {
		byID[s.ID] = s
	}

	ordered := make([]*models.AccountStatement, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrAccountStatementNotFound, id)
		}
		ordered = append(ordered, s)
	}
	return ordered, nil
}

func (r *accountStatementRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.AccountStatement, error) {
	var statements []*models.AccountStatement
	if err := r.db.WithContext(ctx).
		Preload("ProductStatement").
		Where("account_id = ?", accountID).
		Order("created_at").
		Find(&statements).Error; err != nil {
		return nil, fmt.Errorf("failed to list account statements: %w", err)
	}
	return statements, nil
}

// ListDue pages through active statements whose next date is on or before
// date, ordered by id.
func (r *accountStatementRepository) ListDue(ctx context.Context, date time.Time, afterID uuid.UUID, limit int) ([]*models.AccountStatement, error) {
	var statements []*models.AccountStatement
	if err := r.db.WithContext(ctx).
		Preload("ProductStatement").
		Where("statement_status = ?", models.StatementStatusActive).
		Where("next_statement_date IS NOT NULL AND next_statement_date <= ?", models.DateOf(date)).
		Where("id > ?", afterID).
		Order("id").
		Limit(limit).
		Find(&statements).Error; err != nil {
		return nil, fmt.Errorf("failed to list due account statements: %w", err)
	}
	return statements, nil
}

// Update writes the statement state guarded by its version.
func (r *accountStatementRepository) Update(ctx context.Context, statement *models.AccountStatement) error {
	return updateStatement(r.db.WithContext(ctx), statement)
}

func updateStatement(db *gorm.DB, statement *models.AccountStatement) error {
	next := statement.Version + 1
	result := db.Model(&models.AccountStatement{}).
		Where("id = ? AND version = ?", statement.ID, statement.Version).
		Updates(map[string]interface{}{
			"recurrence":          statement.Recurrence,
			"sequence_prefix":     statement.SequencePrefix,
			"statement_status":    statement.StatementStatus,
			"sequence_no":         statement.SequenceNo,
			"activated_on":        statement.ActivatedOn,
			"statement_date":      statement.StatementDate,
			"next_statement_date": statement.NextStatementDate,
			"statement_balance":   statement.StatementBalance,
			"result_id":           statement.ResultID,
			"version":             next,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update account statement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: account statement %s", ErrConcurrentModification, statement.ID)
	}

	statement.Version = next
	return nil
}
