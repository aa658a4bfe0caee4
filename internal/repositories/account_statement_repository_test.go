package repositories

import (
	"context"
	"testing"
	"time"

	"core-banking-statements/internal/database"
	"core-banking-statements/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AccountStatementRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     AccountStatementRepositoryInterface
	ctx      context.Context
	client   *models.Client
	template *models.ProductStatement
}

func (s *AccountStatementRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountStatementRepository(s.db.DB)
	s.ctx = context.Background()
	s.client = database.CreateTestClient(s.T(), s.db, gofakeit.Name())
	s.template = database.CreateTestProductStatement(s.T(), s.db, uuid.New(), models.ProductTypeCurrent, "MONTHLY")
}

func (s *AccountStatementRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAccountStatementRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountStatementRepositorySuite))
}

func (s *AccountStatementRepositorySuite) statement(activateOn *time.Time) *models.AccountStatement {
	account := database.CreateTestAccount(s.T(), s.db, s.client.ID, models.ProductTypeCurrent, day(1))
	statement := models.NewAccountStatement(s.template, account.ID, "", "")
	if activateOn != nil {
		s.Require().NoError(statement.Activate(*activateOn))
	}
	s.Require().NoError(s.repo.Create(s.ctx, statement))
	return statement
}

func (s *AccountStatementRepositorySuite) TestCreate_OnePerTemplateAndAccount() {
	first := s.statement(nil)

	again := models.NewAccountStatement(s.template, first.AccountID, "WEEKLY", "")
	err := s.repo.Create(s.ctx, again)
	dup, ok := IsDuplicate(err)
	s.Require().True(ok, "expected duplicate error, got %v", err)
	s.Equal("account_id", dup.Field)
}

func (s *AccountStatementRepositorySuite) TestGetByID_PreloadsTemplate() {
	created := s.statement(nil)

	found, err := s.repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.ProductStatement)
	s.Equal(s.template.StatementCode, found.ProductStatement.StatementCode)
	s.Equal("MONTHLY", found.Recurrence)
	s.Equal("ST", found.SequencePrefix)

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrAccountStatementNotFound)
}

func (s *AccountStatementRepositorySuite) TestGetByIDs_KeepsOrderAndFailsOnMissing() {
	a, b := s.statement(nil), s.statement(nil)

	batch, err := s.repo.GetByIDs(s.ctx, []uuid.UUID{b.ID, a.ID})
	s.Require().NoError(err)
	s.Require().Len(batch, 2)
	s.Equal(b.ID, batch[0].ID)
	s.Equal(a.ID, batch[1].ID)

	_, err = s.repo.GetByIDs(s.ctx, []uuid.UUID{a.ID, uuid.New()})
	s.ErrorIs(err, ErrAccountStatementNotFound)
}

func (s *AccountStatementRepositorySuite) TestListDue() {
	jan1 := day(1)
	jan20 := day(20)
	due := s.statement(&jan1)     // next 2024-02-01
	notYet := s.statement(&jan20) // next 2024-02-20
	s.statement(nil)              // inactive

	statements, err := s.repo.ListDue(s.ctx, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), uuid.Nil, 10)
	s.Require().NoError(err)
	s.Require().Len(statements, 1)
	s.Equal(due.ID, statements[0].ID)
	s.NotNil(statements[0].ProductStatement)

	statements, err = s.repo.ListDue(s.ctx, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), uuid.Nil, 10)
	s.Require().NoError(err)
	s.Len(statements, 2)
	s.Contains([]uuid.UUID{statements[0].ID, statements[1].ID}, notYet.ID)
}

func (s *AccountStatementRepositorySuite) TestUpdate_ClearsNextDateAndChecksVersion() {
	jan1 := day(1)
	statement := s.statement(&jan1)
	stale := *statement

	statement.Inactivate()
	s.Require().NoError(s.repo.Update(s.ctx, statement))

	found, err := s.repo.GetByID(s.ctx, statement.ID)
	s.Require().NoError(err)
	s.Equal(models.StatementStatusInactive, found.StatementStatus)
	s.Nil(found.NextStatementDate)

	s.ErrorIs(s.repo.Update(s.ctx, &stale), ErrConcurrentModification)
}

func (s *AccountStatementRepositorySuite) TestListByAccount() {
	created := s.statement(nil)

	statements, err := s.repo.ListByAccount(s.ctx, created.AccountID)
	s.Require().NoError(err)
	s.Require().Len(statements, 1)
	s.Equal(created.ID, statements[0].ID)
}
