package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"
)

var (
	ErrInvalidAuditLog    = errors.New("invalid audit log")
	ErrUnknownAuditAction = errors.New("unknown audit action")
	ErrAuditDateRange     = errors.New("invalid date range: start date must be before end date")
)

// AuditService records operator actions and serves the audit trail
type AuditService struct {
	repo    repositories.AuditLogRepositoryInterface
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger, timeout time.Duration) AuditServiceInterface {
	return &AuditService{
		repo:    repo,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

// Record validates and stores one operator action. The correlation ID of
// ctx is used when the entry has no trace ID.
func (s *AuditService) Record(ctx context.Context, log *models.AuditLog) error {
	if log == nil || log.Operator == "" || log.Resource == "" {
		return ErrInvalidAuditLog
	}
	if !models.IsAuditAction(log.Action) {
		return fmt.Errorf("%w: %s", ErrUnknownAuditAction, log.Action)
	}

	if log.TraceID == "" {
		log.TraceID = CorrelationID(ctx)
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = s.now().UTC()
	}

	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to record audit log: %w", err)
	}

	s.logger.DebugContext(ctx, "operator action recorded",
		"operator", log.Operator,
		"action", log.Action,
		"resource_id", log.ResourceID)
	return nil
}

// List returns the audit trail newest first with the total match count
func (s *AuditService) List(ctx context.Context, filter models.AuditLogFilter) ([]*models.AuditLog, int64, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, 0, ErrAuditDateRange
	}
	if filter.Action != "" && !models.IsAuditAction(filter.Action) {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownAuditAction, filter.Action)
	}

	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.List(ctx, filter)
}

// Purge deletes entries older than retention. A non-positive retention keeps
// everything.
func (s *AuditService) Purge(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}

	cutoff := s.now().UTC().Add(-retention)
	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "audit trail purged",
		"cutoff", cutoff.Format(time.RFC3339),
		"deleted", deleted)
	return deleted, nil
}
