package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"core-banking-statements/internal/recurrence"
)

const (
	StatementStatusInactive = "INACTIVE"
	StatementStatusActive   = "ACTIVE"
)

var ErrInvalidStatementStatus = errors.New("invalid statement status")

// AccountStatement tracks the statement cycle of one account for one
// product statement template.
type AccountStatement struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProductStatementID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_account_statements_key,priority:1" json:"product_statement_id"`
	AccountID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_account_statements_key,priority:2;index" json:"account_id"`
	Recurrence         string          `gorm:"type:varchar(255)" json:"recurrence,omitempty"`
	SequencePrefix     string          `gorm:"type:varchar(20)" json:"sequence_prefix,omitempty"`
	StatementStatus    string          `gorm:"type:varchar(20);not null;default:'INACTIVE'" json:"statement_status"`
	SequenceNo         int             `gorm:"not null;default:0" json:"sequence_no"`
	ActivatedOn        *time.Time      `gorm:"type:date" json:"activated_on,omitempty"`
	StatementDate      *time.Time      `gorm:"type:date" json:"statement_date,omitempty"`
	NextStatementDate  *time.Time      `gorm:"type:date;index" json:"next_statement_date,omitempty"`
	StatementBalance   decimal.Decimal `gorm:"type:decimal(19,6);not null;default:0" json:"statement_balance"`
	ResultID           *uuid.UUID      `gorm:"type:uuid;index" json:"result_id,omitempty"`
	Version            int             `gorm:"not null;default:1" json:"version"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`

	ProductStatement *ProductStatement `gorm:"foreignKey:ProductStatementID" json:"product_statement,omitempty"`
}

// NewAccountStatement creates an inactive statement for an account. Empty
// recurrence and prefix fall back to the template's values.
func NewAccountStatement(template *ProductStatement, accountID uuid.UUID, recurrenceOverride, prefixOverride string) *AccountStatement {
	s := &AccountStatement{
		ProductStatementID: template.ID,
		AccountID:          accountID,
		Recurrence:         template.Recurrence,
		SequencePrefix:     template.SequencePrefix,
		StatementStatus:    StatementStatusInactive,
		StatementBalance:   decimal.Zero,
		ProductStatement:   template,
	}
	if recurrenceOverride != "" {
		s.Recurrence = recurrenceOverride
	}
	if prefixOverride != "" {
		s.SequencePrefix = prefixOverride
	}
	return s
}

func (s *AccountStatement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.StatementStatus == "" {
		s.StatementStatus = StatementStatusInactive
	}
	if s.Version == 0 {
		s.Version = 1
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return recurrence.Validate(s.Recurrence)
}

func (s *AccountStatement) IsActive() bool {
	return s.StatementStatus == StatementStatusActive
}

// Activate makes the statement eligible for generation and derives the next
// statement date from the last statement date, or from today when the
// statement was never generated.
func (s *AccountStatement) Activate(today time.Time) error {
	today = DateOf(today)
	seed := today
	if s.StatementDate != nil {
		seed = DateOf(*s.StatementDate)
	}

	next, err := recurrence.NextFrom(s.Recurrence, seed)
	if err != nil {
		return err
	}

	s.StatementStatus = StatementStatusActive
	if s.ActivatedOn == nil {
		s.ActivatedOn = &today
	}
	s.NextStatementDate = next
	return nil
}

// Inactivate stops generation and clears the next statement date.
func (s *AccountStatement) Inactivate() {
	s.StatementStatus = StatementStatusInactive
	s.NextStatementDate = nil
}

// CanGenerate returns ErrInvalidStatementStatus unless the statement is active.
func (s *AccountStatement) CanGenerate() error {
	if !s.IsActive() {
		return fmt.Errorf("%w: account statement %s is %s", ErrInvalidStatementStatus, s.ID, s.StatementStatus)
	}
	return nil
}

// IsDue reports whether the next statement date is on or before date.
func (s *AccountStatement) IsDue(date time.Time) bool {
	return s.IsActive() && s.NextStatementDate != nil && !DateOf(*s.NextStatementDate).After(DateOf(date))
}

// PeriodStart is the first day covered by the next statement: the previous
// statement date, or the activation date for the first statement.
func (s *AccountStatement) PeriodStart() *time.Time {
	if s.StatementDate != nil {
		d := DateOf(*s.StatementDate)
		return &d
	}
	if s.ActivatedOn != nil {
		d := DateOf(*s.ActivatedOn)
		return &d
	}
	return nil
}

// PeriodEnd is the new statement date. It falls back to today when the
// statement has no next date (manual generation).
func (s *AccountStatement) PeriodEnd(today time.Time) time.Time {
	if s.NextStatementDate != nil {
		return DateOf(*s.NextStatementDate)
	}
	return DateOf(today)
}

// Generated completes one generation cycle. The statement date advances to
// the period end, the sequence number restarts at 1 in a new calendar year,
// the next date is recomputed from the new statement date and the closing
// balance is carried as the next opening balance.
func (s *AccountStatement) Generated(result *AccountStatementResult, closingBalance decimal.Decimal, today time.Time) error {
	if err := s.CanGenerate(); err != nil {
		return err
	}

	statementDate := s.PeriodEnd(today)
	next, err := recurrence.NextFrom(s.Recurrence, statementDate)
	if err != nil {
		return err
	}

	s.SequenceNo = s.nextSequenceNo(statementDate)
	s.StatementDate = &statementDate
	s.NextStatementDate = next
	s.StatementBalance = closingBalance
	if result != nil {
		id := result.ID
		s.ResultID = &id
	}
	return nil
}

func (s *AccountStatement) nextSequenceNo(statementDate time.Time) int {
	if s.StatementDate == nil || statementDate.Year() > s.StatementDate.Year() {
		return 1
	}
	return s.SequenceNo + 1
}

// NextElectronicSequenceNumber is the sequence number the statement generated
// for the current period will carry, formatted as prefix, year and a four
// digit counter, e.g. "ST20240003".
func (s *AccountStatement) NextElectronicSequenceNumber(today time.Time) string {
	statementDate := s.PeriodEnd(today)
	return fmt.Sprintf("%s%04d%04d", s.SequencePrefix, statementDate.Year(), s.nextSequenceNo(statementDate))
}

func (s *AccountStatement) TableName() string {
	return "account_statements"
}
