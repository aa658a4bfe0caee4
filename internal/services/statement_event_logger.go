package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type correlationIDKey struct{}

// WithCorrelationID returns a context whose statement events carry id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the id stored by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}

// StatementEventLogger writes the engine's audit trail as structured log events.
type StatementEventLogger struct {
	logger *slog.Logger
}

func NewStatementEventLogger(logger *slog.Logger) StatementEventLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatementEventLogger{
		logger: logger,
	}
}

func (l *StatementEventLogger) LogBalanceRecalculated(ctx context.Context, accountID uuid.UUID, balanceDate time.Time, oldBalance, newBalance string) {
	l.logger.InfoContext(ctx, "balance recalculated",
		slog.String("event_type", "balance_recalculated"),
		slog.String("account_id", accountID.String()),
		slog.String("balance_date", balanceDate.Format("2006-01-02")),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *StatementEventLogger) LogStatementGenerated(ctx context.Context, resultID uuid.UUID, resultCode string, statementCount int, durationMs int64) {
	l.logger.InfoContext(ctx, "statement generated",
		slog.String("event_type", "statement_generated"),
		slog.String("result_id", resultID.String()),
		slog.String("result_code", resultCode),
		slog.Int("statement_count", statementCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *StatementEventLogger) LogResultPublished(ctx context.Context, resultID uuid.UUID, resultCode, resultPath string) {
	l.logger.InfoContext(ctx, "statement result published",
		slog.String("event_type", "result_published"),
		slog.String("result_id", resultID.String()),
		slog.String("result_code", resultCode),
		slog.String("result_path", resultPath),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *StatementEventLogger) LogResultDeleted(ctx context.Context, resultID uuid.UUID) {
	l.logger.InfoContext(ctx, "superseded statement result deleted",
		slog.String("event_type", "result_deleted"),
		slog.String("result_id", resultID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *StatementEventLogger) LogOptimisticLockConflict(ctx context.Context, entityType string, entityID uuid.UUID, version int) {
	l.logger.WarnContext(ctx, "optimistic lock conflict",
		slog.String("event_type", "optimistic_lock_conflict"),
		slog.String("entity_type", entityType),
		slog.String("entity_id", entityID.String()),
		slog.Int("expected_version", version),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *StatementEventLogger) LogBatchItemSkipped(ctx context.Context, job string, itemID uuid.UUID, reason string) {
	l.logger.WarnContext(ctx, "batch item skipped",
		slog.String("event_type", "batch_item_skipped"),
		slog.String("job", job),
		slog.String("item_id", itemID.String()),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *StatementEventLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	l.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *StatementEventLogger) LogAccountClosed(ctx context.Context, accountID uuid.UUID, closedOn time.Time) {
	l.logger.InfoContext(ctx, "account closed",
		slog.String("event_type", "account_closed"),
		slog.String("account_id", accountID.String()),
		slog.String("closed_on", closedOn.Format("2006-01-02")),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}
