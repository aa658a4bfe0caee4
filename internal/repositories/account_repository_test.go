package repositories

import (
	"context"
	"testing"
	"time"

	"core-banking-statements/internal/database"
	"core-banking-statements/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   AccountRepositoryInterface
	ctx    context.Context
	client *models.Client
}

func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.ctx = context.Background()
	s.client = database.CreateTestClient(s.T(), s.db, gofakeit.Company())
}

func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) newAccount(status string) *models.Account {
	return &models.Account{
		AccountNo:   gofakeit.Numerify("DE##########"),
		ClientID:    s.client.ID,
		ProductID:   uuid.New(),
		ProductType: models.ProductTypeCurrent,
		Status:      status,
	}
}

func (s *AccountRepositorySuite) TestCreate() {
	account := s.newAccount(models.AccountStatusActive)

	s.Require().NoError(s.repo.Create(s.ctx, account))
	s.NotEqual(uuid.Nil, account.ID)
	s.Equal(1, account.Version)
	s.Equal(models.AccountKindStandard, account.Kind)
}

func (s *AccountRepositorySuite) TestCreate_DuplicateAccountNumber() {
	first := s.newAccount(models.AccountStatusActive)
	s.Require().NoError(s.repo.Create(s.ctx, first))

	second := s.newAccount(models.AccountStatusActive)
	second.AccountNo = first.AccountNo

	err := s.repo.Create(s.ctx, second)
	dup, ok := IsDuplicate(err)
	s.Require().True(ok, "expected duplicate error, got %v", err)
	s.Equal("account_no", dup.Field)
}

func (s *AccountRepositorySuite) TestGetByID() {
	account := s.newAccount(models.AccountStatusActive)
	s.Require().NoError(s.repo.Create(s.ctx, account))

	found, err := s.repo.GetByID(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(account.AccountNo, found.AccountNo)

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestGetByIDs_SkipsMissing() {
	account := s.newAccount(models.AccountStatusActive)
	s.Require().NoError(s.repo.Create(s.ctx, account))

	found, err := s.repo.GetByIDs(s.ctx, []uuid.UUID{account.ID, uuid.New()})
	s.Require().NoError(err)
	s.Len(found, 1)
	s.Contains(found, account.ID)

	empty, err := s.repo.GetByIDs(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *AccountRepositorySuite) TestListBalanceCalculationEnabled() {
	for _, status := range []string{
		models.AccountStatusSubmitted,
		models.AccountStatusActive,
		models.AccountStatusBlocked,
		models.AccountStatusDormant,
		models.AccountStatusClosed,
	} {
		s.Require().NoError(s.repo.Create(s.ctx, s.newAccount(status)))
	}

	first, err := s.repo.ListBalanceCalculationEnabled(s.ctx, uuid.Nil, 2)
	s.Require().NoError(err)
	s.Len(first, 2)

	rest, err := s.repo.ListBalanceCalculationEnabled(s.ctx, first[1].ID, 2)
	s.Require().NoError(err)
	s.Len(rest, 1)

	for _, account := range append(first, rest...) {
		s.True(account.IsBalanceCalculationEnabled(), account.Status)
	}
}

func (s *AccountRepositorySuite) TestUpdate_StaleVersion() {
	account := s.newAccount(models.AccountStatusActive)
	s.Require().NoError(s.repo.Create(s.ctx, account))

	stale := *account

	account.AccountBalance = decimal.NewFromInt(10)
	s.Require().NoError(s.repo.Update(s.ctx, account))
	s.Equal(2, account.Version)

	stale.AccountBalance = decimal.NewFromInt(20)
	err := s.repo.Update(s.ctx, &stale)
	s.ErrorIs(err, ErrConcurrentModification)
	s.True(IsRetryable(err))

	found, err := s.repo.GetByID(s.ctx, account.ID)
	s.Require().NoError(err)
	s.True(found.AccountBalance.Equal(decimal.NewFromInt(10)))
}

func (s *AccountRepositorySuite) TestClose_InactivatesStatements() {
	account := s.newAccount(models.AccountStatusActive)
	s.Require().NoError(s.repo.Create(s.ctx, account))

	template := database.CreateTestProductStatement(s.T(), s.db, account.ProductID, models.ProductTypeCurrent, "MONTHLY")
	statement := models.NewAccountStatement(template, account.ID, "", "")
	s.Require().NoError(statement.Activate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(NewAccountStatementRepository(s.db.DB).Create(s.ctx, statement))

	closedOn := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	closed, err := s.repo.Close(s.ctx, account.ID, closedOn)
	s.Require().NoError(err)
	s.Equal(models.AccountStatusClosed, closed.Status)
	s.Require().NotNil(closed.ClosedOn)
	s.True(models.SameDate(closedOn, *closed.ClosedOn))

	reloaded, err := NewAccountStatementRepository(s.db.DB).GetByID(s.ctx, statement.ID)
	s.Require().NoError(err)
	s.Equal(models.StatementStatusInactive, reloaded.StatementStatus)
	s.Nil(reloaded.NextStatementDate)
	s.Equal(2, reloaded.Version)
}

func (s *AccountRepositorySuite) TestClose_UnsnapshottedCredit() {
	account := s.newAccount(models.AccountStatusActive)
	s.Require().NoError(s.repo.Create(s.ctx, account))
	database.CreateTestTransaction(s.T(), s.db, account.ID, models.TransactionTypeCredit, "100", time.Now())

	_, err := s.repo.Close(s.ctx, account.ID, time.Now())
	s.ErrorIs(err, models.ErrAccountBalanceNotZero)

	found, err := s.repo.GetByID(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(models.AccountStatusActive, found.Status)
	s.True(found.AccountBalance.IsZero())
}

func (s *AccountRepositorySuite) TestClose_OpenHoldAfterSnapshot() {
	account := s.newAccount(models.AccountStatusActive)
	s.Require().NoError(s.repo.Create(s.ctx, account))

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := NewDailyBalanceRepository(s.db.DB).Record(s.ctx, models.BalanceSnapshot{
		AccountID:      account.ID,
		AccountBalance: decimal.Zero,
		HoldAmount:     decimal.Zero,
		AsOfDate:       day,
	})
	s.Require().NoError(err)
	database.CreateTestTransaction(s.T(), s.db, account.ID, models.TransactionTypeHold, "40", day.AddDate(0, 0, 1))

	_, err = s.repo.Close(s.ctx, account.ID, day.AddDate(0, 0, 2))
	s.ErrorIs(err, models.ErrAccountBalanceNotZero)
}

func (s *AccountRepositorySuite) TestClose_LedgerNetsToZero() {
	account := s.newAccount(models.AccountStatusActive)
	s.Require().NoError(s.repo.Create(s.ctx, account))

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := NewDailyBalanceRepository(s.db.DB).Record(s.ctx, models.BalanceSnapshot{
		AccountID:      account.ID,
		AccountBalance: decimal.NewFromInt(25),
		HoldAmount:     decimal.Zero,
		AsOfDate:       day,
	})
	s.Require().NoError(err)
	// dated on the snapshot day, so already part of it
	database.CreateTestTransaction(s.T(), s.db, account.ID, models.TransactionTypeCredit, "25", day)
	database.CreateTestTransaction(s.T(), s.db, account.ID, models.TransactionTypeDebit, "25", day.AddDate(0, 0, 3))

	closed, err := s.repo.Close(s.ctx, account.ID, day.AddDate(0, 0, 5))
	s.Require().NoError(err)
	s.Equal(models.AccountStatusClosed, closed.Status)
	s.True(closed.AccountBalance.IsZero())
}

func (s *AccountRepositorySuite) TestClose_AlreadyClosedAndMissing() {
	account := s.newAccount(models.AccountStatusClosed)
	s.Require().NoError(s.repo.Create(s.ctx, account))

	_, err := s.repo.Close(s.ctx, account.ID, time.Now())
	s.ErrorIs(err, models.ErrAccountAlreadyClosed)

	_, err = s.repo.Close(s.ctx, uuid.New(), time.Now())
	s.ErrorIs(err, ErrAccountNotFound)
}
