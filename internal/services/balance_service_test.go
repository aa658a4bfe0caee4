package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"core-banking-statements/internal/database"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"
	"core-banking-statements/internal/repositories/repository_mocks"
	"core-banking-statements/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BalanceServiceSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	accountRepo      *repository_mocks.MockAccountRepositoryInterface
	transactionRepo  *repository_mocks.MockTransactionRepositoryInterface
	dailyBalanceRepo *repository_mocks.MockDailyBalanceRepositoryInterface
	eventLogger      *service_mocks.MockStatementEventLoggerInterface
	metrics          *service_mocks.MockMetricsRecorderInterface
	service          BalanceServiceInterface
	ctx              context.Context
	account          *models.Account
}

func (s *BalanceServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.dailyBalanceRepo = repository_mocks.NewMockDailyBalanceRepositoryInterface(s.ctrl)
	s.eventLogger = service_mocks.NewMockStatementEventLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewBalanceService(s.accountRepo, s.transactionRepo, s.dailyBalanceRepo, s.eventLogger, s.metrics, time.Second)
	s.ctx = context.Background()

	activated := jan(1)
	s.account = &models.Account{
		ID:          uuid.New(),
		ProductType: models.ProductTypeCurrent,
		Status:      models.AccountStatusActive,
		ActivatedOn: &activated,
	}
}

func (s *BalanceServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBalanceServiceSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceSuite))
}

func (s *BalanceServiceSuite) expectStatus(status string) {
	s.metrics.EXPECT().IncrementCounter(MetricBalanceRecalculation, map[string]string{"status": status})
}

func (s *BalanceServiceSuite) TestBalanceFor_FromZeroWithoutSnapshot() {
	s.dailyBalanceRepo.EXPECT().LatestOnOrBefore(gomock.Any(), s.account.ID, jan(10)).
		Return(nil, repositories.ErrDailyBalanceNotFound)
	s.transactionRepo.EXPECT().ListForBalance(gomock.Any(), s.account.ID, nil, jan(10)).
		Return([]models.Transaction{
			ledgerTx(models.TransactionTypeCredit, "100", jan(2)),
			ledgerTx(models.TransactionTypeDebit, "30", jan(5)),
			ledgerTx(models.TransactionTypeHold, "15", jan(6)),
		}, nil)

	snapshot, err := s.service.BalanceFor(s.ctx, s.account, jan(10))

	s.Require().NoError(err)
	s.True(decimal.NewFromInt(70).Equal(snapshot.AccountBalance))
	s.True(decimal.NewFromInt(15).Equal(snapshot.HoldAmount))
	s.Equal(jan(10), snapshot.AsOfDate)
}

func (s *BalanceServiceSuite) TestBalanceFor_ReplaysOnlyAfterLatestSnapshot() {
	latest := &models.DailyBalance{
		AccountID:      s.account.ID,
		BalanceDate:    jan(5),
		AccountBalance: decimal.NewFromInt(70),
		HoldAmount:     decimal.NewFromInt(15),
	}
	s.dailyBalanceRepo.EXPECT().LatestOnOrBefore(gomock.Any(), s.account.ID, jan(10)).Return(latest, nil)
	s.transactionRepo.EXPECT().ListForBalance(gomock.Any(), s.account.ID, gomock.Any(), jan(10)).
		DoAndReturn(func(ctx context.Context, accountID uuid.UUID, after *time.Time, upTo time.Time) ([]models.Transaction, error) {
			s.Require().NotNil(after)
			s.Equal(jan(5), *after)
			return []models.Transaction{
				ledgerTx(models.TransactionTypeRelease, "15", jan(7)),
				ledgerTx(models.TransactionTypeCredit, "5", jan(8)),
			}, nil
		})

	snapshot, err := s.service.BalanceFor(s.ctx, s.account, jan(10))

	s.Require().NoError(err)
	s.True(decimal.NewFromInt(75).Equal(snapshot.AccountBalance))
	s.True(snapshot.HoldAmount.IsZero())
}

func (s *BalanceServiceSuite) TestBalanceFor_SnapshotOnSameDateIsReturnedAsIs() {
	latest := &models.DailyBalance{
		AccountID:      s.account.ID,
		BalanceDate:    jan(10),
		AccountBalance: decimal.NewFromInt(42),
		HoldAmount:     decimal.Zero,
	}
	s.dailyBalanceRepo.EXPECT().LatestOnOrBefore(gomock.Any(), s.account.ID, jan(10)).Return(latest, nil)

	snapshot, err := s.service.BalanceFor(s.ctx, s.account, time.Date(2024, 1, 10, 18, 30, 0, 0, time.UTC))

	s.Require().NoError(err)
	s.True(decimal.NewFromInt(42).Equal(snapshot.AccountBalance))
}

func (s *BalanceServiceSuite) TestBalanceFor_BeforeActivationNotApplicable() {
	_, err := s.service.BalanceFor(s.ctx, s.account, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	s.ErrorIs(err, ErrBalanceNotApplicable)

	s.account.ActivatedOn = nil
	_, err = s.service.BalanceFor(s.ctx, s.account, jan(10))
	s.ErrorIs(err, ErrBalanceNotApplicable)
}

func (s *BalanceServiceSuite) TestGetBalance_AccountNotFound() {
	id := uuid.New()
	s.accountRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, repositories.ErrAccountNotFound)

	_, err := s.service.GetBalance(s.ctx, id, jan(10))

	s.ErrorIs(err, repositories.ErrAccountNotFound)
}

func (s *BalanceServiceSuite) TestRecordDailyBalance_RecordsChangedFigures() {
	s.dailyBalanceRepo.EXPECT().LatestOnOrBefore(gomock.Any(), s.account.ID, jan(10)).
		Return(nil, repositories.ErrDailyBalanceNotFound)
	s.transactionRepo.EXPECT().ListForBalance(gomock.Any(), s.account.ID, nil, jan(10)).
		Return([]models.Transaction{ledgerTx(models.TransactionTypeCredit, "100", jan(3))}, nil)
	s.dailyBalanceRepo.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, snapshot models.BalanceSnapshot) (*models.DailyBalance, error) {
			s.Equal(jan(10), snapshot.AsOfDate)
			return snapshot.ToDailyBalance(), nil
		})
	s.expectStatus("recorded")
	s.eventLogger.EXPECT().LogBalanceRecalculated(gomock.Any(), s.account.ID, jan(10), "0", "100")

	row, err := s.service.RecordDailyBalance(s.ctx, s.account, jan(10))

	s.Require().NoError(err)
	s.Require().NotNil(row)
	s.True(decimal.NewFromInt(100).Equal(row.AccountBalance))
}

func (s *BalanceServiceSuite) TestRecordDailyBalance_UnchangedWritesNothing() {
	latest := &models.DailyBalance{
		AccountID:      s.account.ID,
		BalanceDate:    jan(5),
		AccountBalance: decimal.NewFromInt(100),
		HoldAmount:     decimal.Zero,
	}
	s.dailyBalanceRepo.EXPECT().LatestOnOrBefore(gomock.Any(), s.account.ID, jan(10)).Return(latest, nil)
	s.transactionRepo.EXPECT().ListForBalance(gomock.Any(), s.account.ID, gomock.Any(), jan(10)).Return(nil, nil)
	s.expectStatus("unchanged")

	row, err := s.service.RecordDailyBalance(s.ctx, s.account, jan(10))

	s.NoError(err)
	s.Nil(row)
}

func (s *BalanceServiceSuite) TestRecordDailyBalance_DisabledStatusSkipped() {
	s.account.Status = models.AccountStatusSubmitted
	s.expectStatus("disabled")

	row, err := s.service.RecordDailyBalance(s.ctx, s.account, jan(10))

	s.NoError(err)
	s.Nil(row)
}

func (s *BalanceServiceSuite) TestRecordDailyBalance_BeforeActivationSkipped() {
	s.expectStatus("not_applicable")

	row, err := s.service.RecordDailyBalance(s.ctx, s.account, time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC))

	s.NoError(err)
	s.Nil(row)
}

func (s *BalanceServiceSuite) TestRecordDailyBalance_LedgerFailure() {
	s.dailyBalanceRepo.EXPECT().LatestOnOrBefore(gomock.Any(), s.account.ID, jan(10)).
		Return(nil, repositories.ErrDailyBalanceNotFound)
	s.transactionRepo.EXPECT().ListForBalance(gomock.Any(), s.account.ID, nil, jan(10)).
		Return(nil, errors.New("connection reset"))
	s.expectStatus("failed")

	_, err := s.service.RecordDailyBalance(s.ctx, s.account, jan(10))

	s.EqualError(err, "connection reset")
}

func TestBalanceService_RecordDailyBalanceIsIdempotent(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	client := database.CreateTestClient(t, db, "Ada Lovelace")
	account := database.CreateTestAccount(t, db, client.ID, models.ProductTypeCurrent, jan(1))
	database.CreateTestTransaction(t, db, account.ID, models.TransactionTypeCredit, "250.50", jan(2))
	database.CreateTestTransaction(t, db, account.ID, models.TransactionTypeHold, "50", jan(3))
	database.CreateTestTransaction(t, db, account.ID, models.TransactionTypeCredit, "10", jan(20))

	service := NewBalanceService(
		repositories.NewAccountRepository(db.DB),
		repositories.NewTransactionRepository(db.DB),
		repositories.NewDailyBalanceRepository(db.DB),
		NewStatementEventLogger(nil),
		NewPrometheusMetrics(prometheus.NewRegistry()),
		time.Second,
	)
	ctx := context.Background()

	first, err := service.RecordDailyBalance(ctx, account, jan(10))
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, decimal.RequireFromString("250.50").Equal(first.AccountBalance))
	assert.True(t, decimal.NewFromInt(50).Equal(first.HoldAmount))

	second, err := service.RecordDailyBalance(ctx, account, jan(10))
	require.NoError(t, err)
	assert.Nil(t, second)

	balance, err := service.GetBalance(ctx, account.ID, jan(10))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("200.50").Equal(balance.AvailableBalance()))

	later, err := service.GetBalance(ctx, account.ID, jan(31))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("260.50").Equal(later.AccountBalance))
}

func TestBalanceService_GetBalanceSameWithAndWithoutSnapshot(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	client := database.CreateTestClient(t, db, "Grace Hopper")
	account := database.CreateTestAccount(t, db, client.ID, models.ProductTypeSavings, jan(1))
	database.CreateTestTransaction(t, db, account.ID, models.TransactionTypeCredit, "400", jan(3))
	database.CreateTestTransaction(t, db, account.ID, models.TransactionTypeHold, "75.25", jan(4))
	database.CreateTestTransaction(t, db, account.ID, models.TransactionTypeDebit, "120", jan(8))
	database.CreateTestTransaction(t, db, account.ID, models.TransactionTypeRelease, "25.25", jan(9))

	service := NewBalanceService(
		repositories.NewAccountRepository(db.DB),
		repositories.NewTransactionRepository(db.DB),
		repositories.NewDailyBalanceRepository(db.DB),
		NewStatementEventLogger(nil),
		NewPrometheusMetrics(prometheus.NewRegistry()),
		time.Second,
	)
	ctx := context.Background()

	replayed, err := service.GetBalance(ctx, account.ID, jan(12))
	require.NoError(t, err)

	recorded, err := service.RecordDailyBalance(ctx, account, jan(12))
	require.NoError(t, err)
	require.NotNil(t, recorded)

	stored, err := service.GetBalance(ctx, account.ID, jan(12))
	require.NoError(t, err)

	assert.True(t, replayed.SameFigures(*stored), "replayed %s/%s, stored %s/%s",
		replayed.AccountBalance, replayed.HoldAmount, stored.AccountBalance, stored.HoldAmount)
	assert.True(t, decimal.NewFromInt(280).Equal(stored.AccountBalance))
	assert.True(t, decimal.NewFromInt(50).Equal(stored.HoldAmount))
	assert.Equal(t, replayed.AsOfDate, stored.AsOfDate)
	assert.Equal(t, replayed.AsOfTransactionID, stored.AsOfTransactionID)
}
