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

// statementResultRepository implements StatementResultRepositoryInterface
type statementResultRepository struct {
	db *gorm.DB
}

// NewStatementResultRepository creates a new statement result repository
func NewStatementResultRepository(db *gorm.DB) StatementResultRepositoryInterface {
	return &statementResultRepository{
		db: db,
	}
}

func (r *statementResultRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AccountStatementResult, error) {
	var result models.AccountStatementResult
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrStatementResultNotFound, id)
		}
		return nil, fmt.Errorf("failed to get statement result: %w", err)
	}
	return &result, nil
}

// Update writes the publication state guarded by the result version.
func (r *statementResultRepository) Update(ctx context.Context, result *models.AccountStatementResult) error {
	next := result.Version + 1
	res := r.db.WithContext(ctx).Model(&models.AccountStatementResult{}).
		Where("id = ? AND version = ?", result.ID, result.Version).
		Updates(map[string]interface{}{
			"result_status": result.ResultStatus,
			"result_path":   result.ResultPath,
			"published_on":  result.PublishedOn,
			"version":       next,
			"updated_at":    time.Now(),
		})

	if res.Error != nil {
		return fmt.Errorf("failed to update statement result: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: statement result %s", ErrConcurrentModification, result.ID)
	}

	result.Version = next
	return nil
}

// CommitGeneration stores the new result, moves every statement of the batch
// to it and optionally deletes superseded results, all in one transaction.
// A superseded result is only deleted while unpublished and unreferenced.
func (r *statementResultRepository) CommitGeneration(ctx context.Context, commit GenerationCommit) ([]uuid.UUID, error) {
	if commit.Result == nil {
		return nil, errors.New("generation commit requires a result")
	}

	var deleted []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(commit.Result).Error; err != nil {
			return mapWriteError(err, "statement result", "result_code", "create")
		}

		for _, statement := range commit.Statements {
			if err := updateStatement(tx, statement); err != nil {
				return err
			}
		}

		if !commit.DeleteSuperseded {
			return nil
		}

		seen := make(map[uuid.UUID]bool, len(commit.Superseded))
		for _, id := range commit.Superseded {
			if id == uuid.Nil || id == commit.Result.ID || seen[id] {
				continue
			}
			seen[id] = true

			var references int64
			if err := tx.Model(&models.AccountStatement{}).
				Where("result_id = ?", id).
				Count(&references).Error; err != nil {
				return fmt.Errorf("failed to count result references: %w", err)
			}
			if references > 0 {
				continue
			}

			res := tx.Where("id = ? AND result_status = ?", id, models.ResultStatusGenerated).
				Delete(&models.AccountStatementResult{})
			if res.Error != nil {
				return fmt.Errorf("failed to delete superseded result: %w", res.Error)
			}
			if res.RowsAffected > 0 {
				deleted = append(deleted, id)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
