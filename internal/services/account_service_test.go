package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"
	"core-banking-statements/internal/repositories/repository_mocks"
	"core-banking-statements/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AccountServiceSuite defines the test suite for AccountServiceInterface
type AccountServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	accountRepo *repository_mocks.MockAccountRepositoryInterface
	eventLogger *service_mocks.MockStatementEventLoggerInterface
	service     *accountService
	ctx         context.Context
	today       time.Time
}

func (s *AccountServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.eventLogger = service_mocks.NewMockStatementEventLoggerInterface(s.ctrl)
	s.service = NewAccountService(s.accountRepo, s.eventLogger, slog.Default(), time.Second).(*accountService)
	s.today = time.Date(2024, 6, 30, 15, 4, 5, 0, time.UTC)
	s.service.now = func() time.Time { return s.today }
	s.ctx = context.Background()
}

func (s *AccountServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) TestCloseAccount_Success() {
	accountID := uuid.New()
	closedOn := models.DateOf(s.today)
	closed := &models.Account{ID: accountID, Status: models.AccountStatusClosed, ClosedOn: &closedOn}

	s.accountRepo.EXPECT().Close(gomock.Any(), accountID, s.today).Return(closed, nil)
	s.eventLogger.EXPECT().LogAccountClosed(gomock.Any(), accountID, closedOn)

	account, err := s.service.CloseAccount(s.ctx, accountID)

	s.Require().NoError(err)
	s.Equal(models.AccountStatusClosed, account.Status)
}

func (s *AccountServiceSuite) TestCloseAccount_RunsUnderDeadline() {
	accountID := uuid.New()

	s.accountRepo.EXPECT().Close(gomock.Any(), accountID, s.today).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, on time.Time) (*models.Account, error) {
			deadline, ok := ctx.Deadline()
			s.True(ok)
			s.WithinDuration(time.Now().Add(time.Second), deadline, time.Second)
			return nil, fmt.Errorf("%w: %s", repositories.ErrAccountNotFound, id)
		})

	_, err := s.service.CloseAccount(s.ctx, accountID)

	s.ErrorIs(err, repositories.ErrAccountNotFound)
}

func (s *AccountServiceSuite) TestCloseAccount_NonZeroBalance() {
	accountID := uuid.New()
	s.accountRepo.EXPECT().Close(gomock.Any(), accountID, s.today).Return(nil, models.ErrAccountBalanceNotZero)

	_, err := s.service.CloseAccount(s.ctx, accountID)

	s.ErrorIs(err, models.ErrAccountBalanceNotZero)
}

func (s *AccountServiceSuite) TestCloseAccount_AlreadyClosed() {
	accountID := uuid.New()
	s.accountRepo.EXPECT().Close(gomock.Any(), accountID, s.today).Return(nil, models.ErrAccountAlreadyClosed)

	_, err := s.service.CloseAccount(s.ctx, accountID)

	s.ErrorIs(err, models.ErrAccountAlreadyClosed)
}

func (s *AccountServiceSuite) TestCloseAccount_ConcurrentModificationIsLogged() {
	accountID := uuid.New()
	s.accountRepo.EXPECT().Close(gomock.Any(), accountID, s.today).
		Return(nil, fmt.Errorf("%w: account %s", repositories.ErrConcurrentModification, accountID))
	s.eventLogger.EXPECT().LogOptimisticLockConflict(gomock.Any(), "account", accountID, 0)

	_, err := s.service.CloseAccount(s.ctx, accountID)

	s.True(repositories.IsRetryable(err))
}
