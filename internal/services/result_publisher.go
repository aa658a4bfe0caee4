package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"

	"github.com/google/uuid"
)

const notifierService = "result_notifier"

// ErrResultStoreFailed wraps failures writing result content to the store.
var ErrResultStoreFailed = errors.New("result store write failed")

type resultPublisher struct {
	resultRepo  repositories.StatementResultRepositoryInterface
	store       ResultStore
	notifier    ResultNotifier
	breaker     CircuitBreakerInterface
	eventLogger StatementEventLoggerInterface
	metrics     MetricsRecorderInterface
	timeout     time.Duration
	now         func() time.Time
}

func NewResultPublisher(
	resultRepo repositories.StatementResultRepositoryInterface,
	store ResultStore,
	notifier ResultNotifier,
	breaker CircuitBreakerInterface,
	eventLogger StatementEventLoggerInterface,
	metrics MetricsRecorderInterface,
	timeout time.Duration,
) PublisherInterface {
	return &resultPublisher{
		resultRepo:  resultRepo,
		store:       store,
		notifier:    notifier,
		breaker:     breaker,
		eventLogger: eventLogger,
		metrics:     metrics,
		timeout:     timeout,
		now:         time.Now,
	}
}

// PublishResult stores a generated result's content and metadata, marks it
// published and then announces it. A result is published and announced at
// most once: the event goes out only after the published state is saved.
// Announcement is best effort: a failing or tripped notifier does not undo
// publication.
func (p *resultPublisher) PublishResult(ctx context.Context, resultID uuid.UUID) (*models.AccountStatementResult, error) {
	ctx, cancel := withOperationTimeout(ctx, p.timeout)
	defer cancel()

	result, err := p.resultRepo.GetByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if err := result.CanPublish(); err != nil {
		return nil, err
	}

	if err := p.store.Put(ctx, result.ResultPath, []byte(result.Content)); err != nil {
		p.metrics.IncrementCounter(MetricResultPublished, map[string]string{"publish_type": result.PublishType, "status": "store_failed"})
		return nil, fmt.Errorf("%w: result %s: %w", ErrResultStoreFailed, result.ResultCode, err)
	}
	if result.Metadata != "" {
		if err := p.store.Put(ctx, metadataPath(result.ResultPath), []byte(result.Metadata)); err != nil {
			p.metrics.IncrementCounter(MetricResultPublished, map[string]string{"publish_type": result.PublishType, "status": "store_failed"})
			return nil, fmt.Errorf("%w: metadata of %s: %w", ErrResultStoreFailed, result.ResultCode, err)
		}
	}

	today := models.DateOf(p.now())
	if err := result.Published(today); err != nil {
		return nil, err
	}
	if err := p.resultRepo.Update(ctx, result); err != nil {
		if errors.Is(err, repositories.ErrConcurrentModification) {
			p.eventLogger.LogOptimisticLockConflict(ctx, "account_statement_result", result.ID, result.Version)
			p.metrics.IncrementCounter(MetricOptimisticLockFailure, map[string]string{"entity": "account_statement_result"})
		}
		return nil, err
	}

	event := models.ResultPublishedEvent{
		ResultID:    result.ID,
		ResultCode:  result.ResultCode,
		ProductType: result.ProductType,
		PublishType: result.PublishType,
		ResultPath:  result.ResultPath,
		PublishedOn: today.Format(models.DateLayout),
	}
	if result.Metadata != "" {
		event.Metadata = json.RawMessage(result.Metadata)
	}
	p.notify(ctx, event)

	p.metrics.IncrementCounter(MetricResultPublished, map[string]string{"publish_type": result.PublishType, "status": "success"})
	p.eventLogger.LogResultPublished(ctx, result.ID, result.ResultCode, result.ResultPath)
	return result, nil
}

func (p *resultPublisher) notify(ctx context.Context, event models.ResultPublishedEvent) {
	if p.breaker.IsOpen() {
		slog.WarnContext(ctx, "result notification skipped, circuit breaker open",
			"result_id", event.ResultID,
			"service", notifierService)
		return
	}

	before := p.breaker.GetState()
	if err := p.notifier.Notify(ctx, event); err != nil {
		p.breaker.RecordFailure()
		slog.WarnContext(ctx, "result notification failed",
			"result_id", event.ResultID,
			"error", err)
	} else {
		p.breaker.RecordSuccess()
	}

	if after := p.breaker.GetState(); after != before {
		p.eventLogger.LogCircuitBreakerStateChange(ctx, notifierService, before.String(), after.String())
		p.metrics.RecordGauge(MetricCircuitBreakerState, float64(after), map[string]string{"service": notifierService})
	}
}

// metadataPath places the metadata side document next to the content.
func metadataPath(resultPath string) string {
	return strings.TrimSuffix(resultPath, ".json") + ".metadata.json"
}
