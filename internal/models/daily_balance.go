package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyBalance is a persisted end-of-day balance snapshot. Rows are
// historical and never updated once a later row exists.
type DailyBalance struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_balances_account_date,priority:1" json:"account_id"`
	BalanceDate       time.Time       `gorm:"type:date;not null;uniqueIndex:idx_daily_balances_account_date,priority:2" json:"balance_date"`
	AccountBalance    decimal.Decimal `gorm:"type:decimal(19,6);not null;default:0" json:"account_balance"`
	HoldAmount        decimal.Decimal `gorm:"type:decimal(19,6);not null;default:0" json:"hold_amount"`
	AsOfTransactionID *uuid.UUID      `gorm:"type:uuid" json:"as_of_transaction_id,omitempty"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
}

func (d *DailyBalance) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	d.BalanceDate = DateOf(d.BalanceDate)
	return nil
}

// Snapshot returns the value form of the row.
func (d *DailyBalance) Snapshot() BalanceSnapshot {
	return BalanceSnapshot{
		AccountID:         d.AccountID,
		AccountBalance:    d.AccountBalance,
		HoldAmount:        d.HoldAmount,
		AsOfDate:          DateOf(d.BalanceDate),
		AsOfTransactionID: d.AsOfTransactionID,
	}
}

func (d *DailyBalance) TableName() string {
	return "daily_balances"
}

// BalanceSnapshot is an account balance and hold amount consistent with every
// transaction submitted on or before AsOfDate.
type BalanceSnapshot struct {
	AccountID         uuid.UUID       `json:"account_id"`
	AccountBalance    decimal.Decimal `json:"account_balance"`
	HoldAmount        decimal.Decimal `json:"hold_amount"`
	AsOfDate          time.Time       `json:"as_of_date"`
	AsOfTransactionID *uuid.UUID      `json:"as_of_transaction_id,omitempty"`
}

// ZeroSnapshot is the snapshot of an account with no applied transactions.
func ZeroSnapshot(accountID uuid.UUID) BalanceSnapshot {
	return BalanceSnapshot{
		AccountID:      accountID,
		AccountBalance: decimal.Zero,
		HoldAmount:     decimal.Zero,
	}
}

// AvailableBalance is the account balance minus the amount on hold.
func (s BalanceSnapshot) AvailableBalance() decimal.Decimal {
	return s.AccountBalance.Sub(s.HoldAmount)
}

// SameFigures reports whether both snapshots carry the same balance and hold.
func (s BalanceSnapshot) SameFigures(other BalanceSnapshot) bool {
	return s.AccountBalance.Equal(other.AccountBalance) && s.HoldAmount.Equal(other.HoldAmount)
}

// ToDailyBalance returns a new row for the snapshot.
func (s BalanceSnapshot) ToDailyBalance() *DailyBalance {
	return &DailyBalance{
		AccountID:         s.AccountID,
		BalanceDate:       DateOf(s.AsOfDate),
		AccountBalance:    s.AccountBalance,
		HoldAmount:        s.HoldAmount,
		AsOfTransactionID: s.AsOfTransactionID,
	}
}

// Apply returns the snapshot after folding in one transaction. changed is
// false for types that touch neither balance nor hold.
func (s BalanceSnapshot) Apply(tx Transaction) (next BalanceSnapshot, changed bool) {
	next = s

	switch tx.TransactionType {
	case TransactionTypeCredit:
		next.AccountBalance = s.AccountBalance.Add(tx.Amount)
	case TransactionTypeDebit:
		next.AccountBalance = s.AccountBalance.Sub(tx.Amount)
	case TransactionTypeHold:
		next.HoldAmount = s.HoldAmount.Add(tx.Amount)
	case TransactionTypeRelease:
		next.HoldAmount = s.HoldAmount.Sub(tx.Amount)
	default:
		return s, false
	}

	id := tx.ID
	next.AsOfTransactionID = &id
	if tx.SubmittedOn.After(next.AsOfDate) {
		next.AsOfDate = DateOf(tx.SubmittedOn)
	}
	return next, true
}
