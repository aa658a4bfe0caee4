package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ResultStatusGenerated = "GENERATED"
	ResultStatusPublished = "PUBLISHED"
)

var ErrResultAlreadyPublished = errors.New("statement result is already published")

// AccountStatementResult is a generated statement document. One result may be
// shared by every account statement of a batch.
type AccountStatementResult struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ResultCode    string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"result_code"`
	ProductType   string     `gorm:"type:varchar(20);not null" json:"product_type"`
	StatementType string     `gorm:"type:varchar(20);not null" json:"statement_type"`
	PublishType   string     `gorm:"type:varchar(20);not null" json:"publish_type"`
	Content       string     `gorm:"type:text" json:"-"`
	Metadata      string     `gorm:"type:text" json:"-"`
	ResultPath    string     `gorm:"type:varchar(512)" json:"result_path"`
	ResultStatus  string     `gorm:"type:varchar(20);not null;default:'GENERATED'" json:"result_status"`
	GeneratedOn   time.Time  `gorm:"type:date;not null" json:"generated_on"`
	PublishedOn   *time.Time `gorm:"type:date" json:"published_on,omitempty"`
	Version       int        `gorm:"not null;default:1" json:"version"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

func (r *AccountStatementResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.ResultStatus == "" {
		r.ResultStatus = ResultStatusGenerated
	}
	if r.Version == 0 {
		r.Version = 1
	}

	now := time.Now()
	if r.GeneratedOn.IsZero() {
		r.GeneratedOn = DateOf(now)
	}
	if r.ResultCode == "" {
		r.ResultCode = NewResultCode(r.ProductType, r.GeneratedOn)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
	return nil
}

func (r *AccountStatementResult) IsPublished() bool {
	return r.ResultStatus == ResultStatusPublished
}

// CanPublish returns ErrResultAlreadyPublished for a published result.
func (r *AccountStatementResult) CanPublish() error {
	if r.IsPublished() {
		return fmt.Errorf("%w: %s", ErrResultAlreadyPublished, r.ResultCode)
	}
	return nil
}

// Published marks the result as published on the given business date.
func (r *AccountStatementResult) Published(on time.Time) error {
	if err := r.CanPublish(); err != nil {
		return err
	}
	publishedOn := DateOf(on)
	r.ResultStatus = ResultStatusPublished
	r.PublishedOn = &publishedOn
	return nil
}

func (r *AccountStatementResult) TableName() string {
	return "account_statement_results"
}

// NewResultCode returns a unique code such as "CUR-20240201-1a2b3c4d".
func NewResultCode(productType string, on time.Time) string {
	prefix := "STM"
	switch productType {
	case ProductTypeCurrent:
		prefix = "CUR"
	case ProductTypeSavings:
		prefix = "SAV"
	}
	return prefix + "-" + on.Format("20060102") + "-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
