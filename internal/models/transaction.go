package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeCredit  = "credit"
	TransactionTypeDebit   = "debit"
	TransactionTypeHold    = "hold"
	TransactionTypeRelease = "release"
	// Posted to the ledger but without effect on balance or hold.
	TransactionTypeInterestAccrual = "interest_accrual"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrOptimisticLockConflict = errors.New("optimistic lock conflict: version mismatch")
)

// BalanceAffectingTypes are the transaction types folded into balance snapshots.
var BalanceAffectingTypes = []string{
	TransactionTypeCredit,
	TransactionTypeDebit,
	TransactionTypeHold,
	TransactionTypeRelease,
}

// Transaction is an immutable ledger entry. Ledger order is
// (submitted_on, created_at, id).
type Transaction struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_account_submitted,priority:1" json:"account_id"`
	TransactionType   string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Amount            decimal.Decimal `gorm:"type:decimal(19,6);not null" json:"amount"`
	Currency          string          `gorm:"type:varchar(3);not null;default:'EUR'" json:"currency"`
	SubmittedOn       time.Time       `gorm:"type:date;not null;index:idx_transactions_account_submitted,priority:2" json:"submitted_on"`
	TransactionDate   time.Time       `gorm:"type:date;not null" json:"transaction_date"`
	Description       string          `gorm:"type:text" json:"description,omitempty"`
	Reference         string          `gorm:"type:varchar(100);index" json:"reference,omitempty"`
	PendingSettlement bool            `gorm:"not null;default:false" json:"pending_settlement"`
	Details           JSONBMap        `gorm:"type:text" json:"details,omitempty"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Currency == "" {
		t.Currency = "EUR"
	}

	if t.Reference == "" {
		t.Reference = GenerateTransactionReference()
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.TransactionDate.IsZero() {
		t.TransactionDate = t.SubmittedOn
	}

	return t.Validate()
}

// BeforeUpdate rejects updates; the ledger is append-only.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return errors.New("transactions are immutable")
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.SubmittedOn.IsZero() {
		return errors.New("submitted date is required")
	}

	return nil
}

func (t *Transaction) IsCredit() bool {
	return t.TransactionType == TransactionTypeCredit
}

func (t *Transaction) IsDebit() bool {
	return t.TransactionType == TransactionTypeDebit
}

// IsMonetary reports whether the transaction moves the account balance.
// Only monetary transactions appear as statement entries.
func (t *Transaction) IsMonetary() bool {
	return t.IsCredit() || t.IsDebit()
}

// Detail returns the typed view of the stored detail bag.
func (t *Transaction) Detail() TransactionDetail {
	return ParseTransactionDetail(t.Details)
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeCredit, TransactionTypeDebit, TransactionTypeHold,
		TransactionTypeRelease, TransactionTypeInterestAccrual:
		return true
	default:
		return false
	}
}

// GenerateTransactionReference generates a unique transaction reference
func GenerateTransactionReference() string {
	return "TXN-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
}
