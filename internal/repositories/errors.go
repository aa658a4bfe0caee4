package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

var (
	ErrAccountNotFound          = errors.New("account not found")
	ErrClientNotFound           = errors.New("client not found")
	ErrDailyBalanceNotFound     = errors.New("daily balance not found")
	ErrProductStatementNotFound = errors.New("product statement not found")
	ErrAccountStatementNotFound = errors.New("account statement not found")
	ErrStatementResultNotFound  = errors.New("statement result not found")

	// ErrConcurrentModification is returned when a versioned row changed
	// between read and write. The operation can be retried.
	ErrConcurrentModification = errors.New("record was modified concurrently")
)

// DuplicateError reports a unique constraint violation on Field.
type DuplicateError struct {
	Entity string
	Field  string
	Err    error
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s: %s already exists", e.Entity, e.Field)
}

func (e *DuplicateError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a conflict the caller may retry.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentModification)
}

// IsDuplicate reports whether err is a DuplicateError and returns it.
func IsDuplicate(err error) (*DuplicateError, bool) {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return dup, true
	}
	return nil, false
}

// mapWriteError turns unique violations into a DuplicateError. gorm
// translates them to ErrDuplicatedKey when TranslateError is on; raw pgx
// errors are checked as well for connections opened without it.
func mapWriteError(err error, entity, field, op string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.Is(err, gorm.ErrDuplicatedKey) || (errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation) {
		return &DuplicateError{Entity: entity, Field: field, Err: err}
	}

	return fmt.Errorf("failed to %s %s: %w", op, entity, err)
}
