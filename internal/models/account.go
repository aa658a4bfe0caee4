package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProductTypeCurrent = "current"
	ProductTypeSavings = "savings"

	AccountStatusSubmitted = "submitted"
	AccountStatusActive    = "active"
	AccountStatusBlocked   = "blocked"
	AccountStatusDormant   = "dormant"
	AccountStatusClosed    = "closed"

	// Sub-account roles. A conversion account receives incoming funds that are
	// forwarded to its linked disposal account.
	AccountKindStandard   = "standard"
	AccountKindConversion = "conversion"
	AccountKindDisposal   = "disposal"
)

var (
	ErrInvalidProductType    = errors.New("invalid product type")
	ErrInvalidAccountStatus  = errors.New("invalid account status")
	ErrInvalidAccountKind    = errors.New("invalid account kind")
	ErrAccountAlreadyClosed  = errors.New("account is already closed")
	ErrAccountBalanceNotZero = errors.New("account balance and hold amount must be zero to close")
)

// Account is a current or savings account together with its running balance.
type Account struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountNo       string          `gorm:"type:varchar(34);uniqueIndex;not null" json:"account_no"`
	ClientID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductType     string          `gorm:"type:varchar(20);not null" json:"product_type"`
	Kind            string          `gorm:"type:varchar(20);not null;default:'standard'" json:"kind"`
	LinkedAccountID *uuid.UUID      `gorm:"type:uuid" json:"linked_account_id,omitempty"`
	Currency        string          `gorm:"type:varchar(3);not null;default:'EUR'" json:"currency"`
	Status          string          `gorm:"type:varchar(20);not null;default:'submitted'" json:"status"`
	AccountBalance  decimal.Decimal `gorm:"type:decimal(19,6);not null;default:0" json:"account_balance"`
	HoldAmount      decimal.Decimal `gorm:"type:decimal(19,6);not null;default:0" json:"hold_amount"`
	ActivatedOn     *time.Time      `gorm:"type:date" json:"activated_on,omitempty"`
	ClosedOn        *time.Time      `gorm:"type:date" json:"closed_on,omitempty"`
	Version         int             `gorm:"not null;default:1" json:"version"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Status == "" {
		a.Status = AccountStatusSubmitted
	}
	if a.Kind == "" {
		a.Kind = AccountKindStandard
	}
	if a.Currency == "" {
		a.Currency = "EUR"
	}
	if a.Version == 0 {
		a.Version = 1
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.ClientID == uuid.Nil {
		return errors.New("client ID is required")
	}

	if a.AccountNo == "" {
		return errors.New("account number is required")
	}

	if !IsValidProductType(a.ProductType) {
		return ErrInvalidProductType
	}

	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}

	if !IsValidAccountKind(a.Kind) {
		return ErrInvalidAccountKind
	}

	if a.Kind == AccountKindConversion && a.ProductType == ProductTypeSavings && a.LinkedAccountID == nil {
		return errors.New("savings conversion account requires a linked disposal account")
	}

	return nil
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// IsBalanceCalculationEnabled reports whether balance snapshots are maintained
// for the account in its current status.
func (a *Account) IsBalanceCalculationEnabled() bool {
	switch a.Status {
	case AccountStatusActive, AccountStatusBlocked, AccountStatusDormant:
		return true
	default:
		return false
	}
}

// IsActivatedBy reports whether the account had been activated on or before date.
func (a *Account) IsActivatedBy(date time.Time) bool {
	if a.ActivatedOn == nil {
		return false
	}
	return !DateOf(date).Before(DateOf(*a.ActivatedOn))
}

func (a *Account) IsConversion() bool {
	return a.Kind == AccountKindConversion
}

func (a *Account) IsDisposal() bool {
	return a.Kind == AccountKindDisposal
}

// Activate moves a submitted, blocked or dormant account to active.
func (a *Account) Activate(on time.Time) error {
	if a.Status == AccountStatusClosed {
		return errors.New("cannot activate a closed account")
	}

	a.Status = AccountStatusActive
	if a.ActivatedOn == nil {
		activated := DateOf(on)
		a.ActivatedOn = &activated
	}
	return nil
}

// Close closes the account. Callers must hold an exclusive lock on the row
// and load the ledger balance onto it first; the stored running balance
// only follows recorded snapshots.
func (a *Account) Close(on time.Time) error {
	if a.Status == AccountStatusClosed {
		return ErrAccountAlreadyClosed
	}

	if !a.AccountBalance.IsZero() || !a.HoldAmount.IsZero() {
		return ErrAccountBalanceNotZero
	}

	a.Status = AccountStatusClosed
	closed := DateOf(on)
	a.ClosedOn = &closed
	return nil
}

// ApplySnapshot copies a computed balance snapshot onto the running balance.
func (a *Account) ApplySnapshot(s BalanceSnapshot) {
	a.AccountBalance = s.AccountBalance
	a.HoldAmount = s.HoldAmount
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidProductType checks if the product type is valid
func IsValidProductType(productType string) bool {
	switch productType {
	case ProductTypeCurrent, ProductTypeSavings:
		return true
	default:
		return false
	}
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusSubmitted, AccountStatusActive, AccountStatusBlocked, AccountStatusDormant, AccountStatusClosed:
		return true
	default:
		return false
	}
}

// IsValidAccountKind checks if the sub-account kind is valid
func IsValidAccountKind(kind string) bool {
	switch kind {
	case AccountKindStandard, AccountKindConversion, AccountKindDisposal:
		return true
	default:
		return false
	}
}
