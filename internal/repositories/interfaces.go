package repositories

import (
	"context"
	"time"

	"core-banking-statements/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Account, error)
	ListBalanceCalculationEnabled(ctx context.Context, afterID uuid.UUID, limit int) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Close(ctx context.Context, id uuid.UUID, on time.Time) (*models.Account, error)
}

// TransactionRepositoryInterface defines the contract for ledger reads and appends.
// Every list is returned in ledger order.
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	ListForBalance(ctx context.Context, accountID uuid.UUID, after *time.Time, upTo time.Time) ([]models.Transaction, error)
	ListForStatement(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]models.Transaction, error)
	ListPendingIDs(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]uuid.UUID, error)
}

// DailyBalanceRepositoryInterface defines the contract for persisted balance snapshots
type DailyBalanceRepositoryInterface interface {
	LatestOnOrBefore(ctx context.Context, accountID uuid.UUID, date time.Time) (*models.DailyBalance, error)
	Record(ctx context.Context, snapshot models.BalanceSnapshot) (*models.DailyBalance, error)
}

// ClientRepositoryInterface defines the contract for clients and account identifiers
type ClientRepositoryInterface interface {
	Create(ctx context.Context, client *models.Client) error
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Client, error)
	AddIdentifier(ctx context.Context, identifier *models.AccountIdentifier) error
	GetIdentifiers(ctx context.Context, accountIDs []uuid.UUID) (map[uuid.UUID]models.AccountIdentifiers, error)
}

// ProductStatementRepositoryInterface defines the contract for statement templates
type ProductStatementRepositoryInterface interface {
	Create(ctx context.Context, template *models.ProductStatement) error
	Update(ctx context.Context, template *models.ProductStatement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductStatement, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductStatement, error)
}

// AccountStatementRepositoryInterface defines the contract for per-account statement state
type AccountStatementRepositoryInterface interface {
	Create(ctx context.Context, statement *models.AccountStatement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AccountStatement, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.AccountStatement, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.AccountStatement, error)
	ListDue(ctx context.Context, date time.Time, afterID uuid.UUID, limit int) ([]*models.AccountStatement, error)
	Update(ctx context.Context, statement *models.AccountStatement) error
}

// GenerationCommit is everything one batch generation writes.
type GenerationCommit struct {
	Result     *models.AccountStatementResult
	Statements []*models.AccountStatement
	// Results the statements pointed to before this generation.
	Superseded       []uuid.UUID
	DeleteSuperseded bool
}

// StatementResultRepositoryInterface defines the contract for generated statement results
type StatementResultRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.AccountStatementResult, error)
	Update(ctx context.Context, result *models.AccountStatementResult) error
	CommitGeneration(ctx context.Context, commit GenerationCommit) (deleted []uuid.UUID, err error)
}

// AuditLogRepositoryInterface defines the contract for the operator audit trail
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, filter models.AuditLogFilter) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
