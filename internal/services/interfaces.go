package services

import (
	"context"
	"time"

	"core-banking-statements/internal/models"

	"github.com/google/uuid"
)

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type StatementEventLoggerInterface interface {
	LogBalanceRecalculated(ctx context.Context, accountID uuid.UUID, balanceDate time.Time, oldBalance, newBalance string)
	LogStatementGenerated(ctx context.Context, resultID uuid.UUID, resultCode string, statementCount int, durationMs int64)
	LogResultPublished(ctx context.Context, resultID uuid.UUID, resultCode, resultPath string)
	LogResultDeleted(ctx context.Context, resultID uuid.UUID)
	LogOptimisticLockConflict(ctx context.Context, entityType string, entityID uuid.UUID, version int)
	LogBatchItemSkipped(ctx context.Context, job string, itemID uuid.UUID, reason string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogAccountClosed(ctx context.Context, accountID uuid.UUID, closedOn time.Time)
}

// BalanceServiceInterface computes balances as of a business date.
type BalanceServiceInterface interface {
	GetBalance(ctx context.Context, accountID uuid.UUID, asOf time.Time) (*models.BalanceSnapshot, error)
	BalanceFor(ctx context.Context, account *models.Account, asOf time.Time) (*models.BalanceSnapshot, error)
	RecordDailyBalance(ctx context.Context, account *models.Account, asOf time.Time) (*models.DailyBalance, error)
}

type StatementLifecycleServiceInterface interface {
	CreateProductStatement(ctx context.Context, template *models.ProductStatement) error
	UpdateProductStatement(ctx context.Context, template *models.ProductStatement) error
	GetProductStatement(ctx context.Context, id uuid.UUID) (*models.ProductStatement, error)
	CreateAccountStatement(ctx context.Context, templateID, accountID uuid.UUID, recurrence, sequencePrefix string) (*models.AccountStatement, error)
	Activate(ctx context.Context, statementID uuid.UUID) (*models.AccountStatement, error)
	Inactivate(ctx context.Context, statementID uuid.UUID) (*models.AccountStatement, error)
}

type StatementGeneratorInterface interface {
	GenerateBatch(ctx context.Context, productType, statementType, publishType string, statementIDs []uuid.UUID, deleteSuperseded bool) (*models.AccountStatementResult, error)
}

type PublisherInterface interface {
	PublishResult(ctx context.Context, resultID uuid.UUID) (*models.AccountStatementResult, error)
}

type AccountServiceInterface interface {
	CloseAccount(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
}

// ResultStore persists published statement content under its result path.
type ResultStore interface {
	Put(ctx context.Context, path string, content []byte) error
}

// ResultNotifier announces published results to downstream consumers.
type ResultNotifier interface {
	Notify(ctx context.Context, event models.ResultPublishedEvent) error
	Close() error
}

// TokenVerifierInterface validates operator bearer tokens.
type TokenVerifierInterface interface {
	ValidateAccessToken(tokenString string) (*models.OperatorClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// LedgerSeederInterface fills an account's ledger with realistic entries
// for development environments.
type LedgerSeederInterface interface {
	Seed(ctx context.Context, accountID uuid.UUID, from, to time.Time, purchases int) (int, error)
}

// AuditServiceInterface records and lists operator actions.
type AuditServiceInterface interface {
	Record(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, filter models.AuditLogFilter) ([]*models.AuditLog, int64, error)
	Purge(ctx context.Context, retention time.Duration) (int64, error)
}
