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

// productStatementRepository implements ProductStatementRepositoryInterface
type productStatementRepository struct {
	db *gorm.DB
}

// NewProductStatementRepository creates a new product statement repository
func NewProductStatementRepository(db *gorm.DB) ProductStatementRepositoryInterface {
	return &productStatementRepository{
		db: db,
	}
}

// Create inserts a template. A second template with the same product and
// statement code yields a DuplicateError on statement_code.
func (r *productStatementRepository) Create(ctx context.Context, template *models.ProductStatement) error {
	return mapWriteError(r.db.WithContext(ctx).Create(template).Error, "product statement", "statement_code", "create")
}

// Update writes the template guarded by its version.
func (r *productStatementRepository) Update(ctx context.Context, template *models.ProductStatement) error {
	if err := template.Validate(); err != nil {
		return err
	}

	next := template.Version + 1
	result := r.db.WithContext(ctx).Model(template).
		Where("version = ?", template.Version).
		Updates(map[string]interface{}{
			"statement_code":  template.StatementCode,
			"recurrence":      template.Recurrence,
			"sequence_prefix": template.SequencePrefix,
			"statement_type":  template.StatementType,
			"publish_type":    template.PublishType,
			"batch_type":      template.BatchType,
			"version":         next,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return mapWriteError(result.Error, "product statement", "statement_code", "update")
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: product statement %s", ErrConcurrentModification, template.ID)
	}

	template.Version = next
	return nil
}

func (r *productStatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductStatement, error) {
	var template models.ProductStatement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductStatementNotFound, id)
		}
		return nil, fmt.Errorf("failed to get product statement: %w", err)
	}
	return &template, nil
}

func (r *productStatementRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductStatement, error) {
	var templates []models.ProductStatement
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("statement_code").
		Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list product statements: %w", err)
	}
	return templates, nil
}
