package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"core-banking-statements/internal/recurrence"
)

const (
	StatementTypeCAMT053 = "CAMT053"

	PublishTypeDownload   = "DOWNLOAD"
	PublishTypeDistribute = "DISTRIBUTE"

	// BatchTypeSingle produces one document per account statement;
	// BatchTypeClient produces one document per client.
	BatchTypeSingle = "SINGLE"
	BatchTypeClient = "CLIENT"
)

var (
	ErrInvalidStatementType = errors.New("invalid statement type")
	ErrInvalidPublishType   = errors.New("invalid publish type")
	ErrInvalidBatchType     = errors.New("invalid batch type")
)

// ProductStatement is the statement template of a product. Account
// statements inherit its recurrence and sequence prefix unless overridden.
type ProductStatement struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_statements_key,priority:1" json:"product_id"`
	ProductType    string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_product_statements_key,priority:2" json:"product_type"`
	StatementCode  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_statements_key,priority:3" json:"statement_code"`
	Recurrence     string    `gorm:"type:varchar(255)" json:"recurrence,omitempty"`
	SequencePrefix string    `gorm:"type:varchar(20)" json:"sequence_prefix,omitempty"`
	StatementType  string    `gorm:"type:varchar(20);not null;default:'CAMT053'" json:"statement_type"`
	PublishType    string    `gorm:"type:varchar(20);not null;default:'DOWNLOAD'" json:"publish_type"`
	BatchType      string    `gorm:"type:varchar(20);not null;default:'SINGLE'" json:"batch_type"`
	Version        int       `gorm:"not null;default:1" json:"version"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

func (p *ProductStatement) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.StatementType == "" {
		p.StatementType = StatementTypeCAMT053
	}
	if p.PublishType == "" {
		p.PublishType = PublishTypeDownload
	}
	if p.BatchType == "" {
		p.BatchType = BatchTypeSingle
	}
	if p.Version == 0 {
		p.Version = 1
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *ProductStatement) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// Validate validates the template fields
func (p *ProductStatement) Validate() error {
	if p.ProductID == uuid.Nil {
		return errors.New("product ID is required")
	}
	if !IsValidProductType(p.ProductType) {
		return ErrInvalidProductType
	}
	if strings.TrimSpace(p.StatementCode) == "" {
		return errors.New("statement code is required")
	}
	if p.StatementType != StatementTypeCAMT053 {
		return ErrInvalidStatementType
	}
	if !IsValidPublishType(p.PublishType) {
		return ErrInvalidPublishType
	}
	if p.BatchType != BatchTypeSingle && p.BatchType != BatchTypeClient {
		return ErrInvalidBatchType
	}
	return recurrence.Validate(p.Recurrence)
}

func (p *ProductStatement) TableName() string {
	return "product_statements"
}

func IsValidPublishType(publishType string) bool {
	return publishType == PublishTypeDownload || publishType == PublishTypeDistribute
}
