package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"

	"github.com/google/uuid"
)

// accountService implements AccountServiceInterface interface
type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	eventLogger StatementEventLoggerInterface
	logger      *slog.Logger
	timeout     time.Duration
	now         func() time.Time
}

// NewAccountService creates the account lifecycle service
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	eventLogger StatementEventLoggerInterface,
	logger *slog.Logger,
	timeout time.Duration,
) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		eventLogger: eventLogger,
		logger:      logger,
		timeout:     timeout,
		now:         time.Now,
	}
}

// CloseAccount closes an account with zero balance and zero hold. The
// account row is locked for the check so no posting can slip in between;
// the account's statements are inactivated in the same transaction.
func (s *accountService) CloseAccount(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	account, err := s.accountRepo.Close(ctx, accountID, s.now())
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAccountBalanceNotZero), errors.Is(err, models.ErrAccountAlreadyClosed):
			s.logger.Warn("account closure rejected",
				"account_id", accountID,
				"error", err)
		case errors.Is(err, repositories.ErrConcurrentModification):
			s.eventLogger.LogOptimisticLockConflict(ctx, "account", accountID, 0)
		}
		return nil, err
	}

	closedOn := models.DateOf(s.now())
	if account.ClosedOn != nil {
		closedOn = *account.ClosedOn
	}
	s.eventLogger.LogAccountClosed(ctx, account.ID, closedOn)
	return account, nil
}
