package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"

	"github.com/google/uuid"
)

// ErrBalanceNotApplicable is returned for a business date before the
// account's activation. Batch callers skip the account.
var ErrBalanceNotApplicable = errors.New("balance not applicable before account activation")

type balanceService struct {
	accountRepo      repositories.AccountRepositoryInterface
	transactionRepo  repositories.TransactionRepositoryInterface
	dailyBalanceRepo repositories.DailyBalanceRepositoryInterface
	eventLogger      StatementEventLoggerInterface
	metrics          MetricsRecorderInterface
	timeout          time.Duration
}

func NewBalanceService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	dailyBalanceRepo repositories.DailyBalanceRepositoryInterface,
	eventLogger StatementEventLoggerInterface,
	metrics MetricsRecorderInterface,
	timeout time.Duration,
) BalanceServiceInterface {
	return &balanceService{
		accountRepo:      accountRepo,
		transactionRepo:  transactionRepo,
		dailyBalanceRepo: dailyBalanceRepo,
		eventLogger:      eventLogger,
		metrics:          metrics,
		timeout:          timeout,
	}
}

func (s *balanceService) GetBalance(ctx context.Context, accountID uuid.UUID, asOf time.Time) (*models.BalanceSnapshot, error) {
	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.BalanceFor(ctx, account, asOf)
}

// BalanceFor computes the balance as of the end of asOf. The latest persisted
// snapshot on or before asOf is the starting point; only transactions
// submitted after it are replayed. The result is not persisted.
func (s *balanceService) BalanceFor(ctx context.Context, account *models.Account, asOf time.Time) (*models.BalanceSnapshot, error) {
	snapshot, _, err := s.compute(ctx, account, asOf)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// compute returns the snapshot as of asOf together with the persisted
// snapshot it started from, if any.
func (s *balanceService) compute(ctx context.Context, account *models.Account, asOf time.Time) (models.BalanceSnapshot, *models.DailyBalance, error) {
	asOf = models.DateOf(asOf)
	if !account.IsActivatedBy(asOf) {
		return models.BalanceSnapshot{}, nil, fmt.Errorf("%w: account %s on %s", ErrBalanceNotApplicable, account.ID, asOf.Format(models.DateLayout))
	}

	start := models.ZeroSnapshot(account.ID)
	var after *time.Time

	latest, err := s.dailyBalanceRepo.LatestOnOrBefore(ctx, account.ID, asOf)
	switch {
	case err == nil:
		if models.SameDate(latest.BalanceDate, asOf) {
			return latest.Snapshot(), latest, nil
		}
		start = latest.Snapshot()
		markDate := models.DateOf(latest.BalanceDate)
		after = &markDate
	case errors.Is(err, repositories.ErrDailyBalanceNotFound):
		latest = nil
	default:
		return models.BalanceSnapshot{}, nil, err
	}

	transactions, err := s.transactionRepo.ListForBalance(ctx, account.ID, after, asOf)
	if err != nil {
		return models.BalanceSnapshot{}, nil, err
	}

	snapshot, _ := ApplyTransactions(start, transactions)
	snapshot.AsOfDate = asOf
	return snapshot, latest, nil
}

// RecordDailyBalance persists the balance as of asOf when the account keeps
// balance snapshots in its current status and the figures moved since the
// previous snapshot. It returns nil when nothing was written.
func (s *balanceService) RecordDailyBalance(ctx context.Context, account *models.Account, asOf time.Time) (*models.DailyBalance, error) {
	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	if !account.IsBalanceCalculationEnabled() {
		s.metrics.IncrementCounter(MetricBalanceRecalculation, map[string]string{"status": "disabled"})
		return nil, nil
	}

	snapshot, previous, err := s.compute(ctx, account, asOf)
	if err != nil {
		if errors.Is(err, ErrBalanceNotApplicable) {
			s.metrics.IncrementCounter(MetricBalanceRecalculation, map[string]string{"status": "not_applicable"})
			return nil, nil
		}
		s.metrics.IncrementCounter(MetricBalanceRecalculation, map[string]string{"status": "failed"})
		return nil, err
	}

	prior := models.ZeroSnapshot(account.ID)
	if previous != nil {
		prior = previous.Snapshot()
	}
	if snapshot.SameFigures(prior) {
		s.metrics.IncrementCounter(MetricBalanceRecalculation, map[string]string{"status": "unchanged"})
		return nil, nil
	}

	row, err := s.dailyBalanceRepo.Record(ctx, snapshot)
	if err != nil {
		s.metrics.IncrementCounter(MetricBalanceRecalculation, map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to record daily balance for account %s: %w", account.ID, err)
	}

	s.metrics.IncrementCounter(MetricBalanceRecalculation, map[string]string{"status": "recorded"})
	s.eventLogger.LogBalanceRecalculated(ctx, account.ID, snapshot.AsOfDate,
		prior.AccountBalance.String(), snapshot.AccountBalance.String())
	slog.Debug("daily balance recorded",
		"account_id", account.ID,
		"balance_date", snapshot.AsOfDate.Format(models.DateLayout),
		"account_balance", snapshot.AccountBalance.String(),
		"hold_amount", snapshot.HoldAmount.String())

	return row, nil
}

// withOperationTimeout bounds a call by the engine's execution deadline. A
// non-positive timeout leaves ctx unchanged.
func withOperationTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
