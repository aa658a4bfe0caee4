package services

import (
	"context"
	"testing"
	"time"

	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"
	"core-banking-statements/internal/repositories/repository_mocks"
	"core-banking-statements/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type StatementLifecycleServiceSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	productStatementRepo *repository_mocks.MockProductStatementRepositoryInterface
	accountStatementRepo *repository_mocks.MockAccountStatementRepositoryInterface
	accountRepo          *repository_mocks.MockAccountRepositoryInterface
	eventLogger          *service_mocks.MockStatementEventLoggerInterface
	service              *statementLifecycleService
	ctx                  context.Context
	today                time.Time
}

func (s *StatementLifecycleServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.productStatementRepo = repository_mocks.NewMockProductStatementRepositoryInterface(s.ctrl)
	s.accountStatementRepo = repository_mocks.NewMockAccountStatementRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.eventLogger = service_mocks.NewMockStatementEventLoggerInterface(s.ctrl)
	s.service = NewStatementLifecycleService(
		s.productStatementRepo,
		s.accountStatementRepo,
		s.accountRepo,
		s.eventLogger,
		time.Minute,
		time.Second,
	).(*statementLifecycleService)
	s.today = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.today }
	s.ctx = context.Background()
}

func (s *StatementLifecycleServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStatementLifecycleServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementLifecycleServiceSuite))
}

func (s *StatementLifecycleServiceSuite) template(productType string) *models.ProductStatement {
	return &models.ProductStatement{
		ID:             uuid.New(),
		ProductID:      uuid.New(),
		ProductType:    productType,
		StatementCode:  gofakeit.LetterN(6),
		Recurrence:     "MONTHLY",
		SequencePrefix: "ST",
		StatementType:  models.StatementTypeCAMT053,
		PublishType:    models.PublishTypeDownload,
		BatchType:      models.BatchTypeSingle,
	}
}

func (s *StatementLifecycleServiceSuite) TestGetProductStatement_CachesCopies() {
	template := s.template(models.ProductTypeCurrent)
	s.productStatementRepo.EXPECT().GetByID(gomock.Any(), template.ID).Return(template, nil).Times(1)

	first, err := s.service.GetProductStatement(s.ctx, template.ID)
	s.Require().NoError(err)
	first.Recurrence = "DAILY"

	second, err := s.service.GetProductStatement(s.ctx, template.ID)
	s.Require().NoError(err)
	s.Equal("MONTHLY", second.Recurrence)
}

func (s *StatementLifecycleServiceSuite) TestUpdateProductStatement_InvalidatesCache() {
	template := s.template(models.ProductTypeCurrent)
	updated := *template
	updated.Recurrence = "QUARTERLY"

	gomock.InOrder(
		s.productStatementRepo.EXPECT().GetByID(gomock.Any(), template.ID).Return(template, nil),
		s.productStatementRepo.EXPECT().Update(gomock.Any(), &updated).Return(nil),
		s.productStatementRepo.EXPECT().GetByID(gomock.Any(), template.ID).Return(&updated, nil),
	)

	_, err := s.service.GetProductStatement(s.ctx, template.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.service.UpdateProductStatement(s.ctx, &updated))

	got, err := s.service.GetProductStatement(s.ctx, template.ID)
	s.Require().NoError(err)
	s.Equal("QUARTERLY", got.Recurrence)
}

func (s *StatementLifecycleServiceSuite) TestUpdateProductStatement_ConflictLogged() {
	template := s.template(models.ProductTypeSavings)
	template.Version = 3

	s.productStatementRepo.EXPECT().Update(gomock.Any(), template).Return(repositories.ErrConcurrentModification)
	s.eventLogger.EXPECT().LogOptimisticLockConflict(gomock.Any(), "product_statement", template.ID, 3)

	err := s.service.UpdateProductStatement(s.ctx, template)

	s.ErrorIs(err, repositories.ErrConcurrentModification)
	s.True(repositories.IsRetryable(err))
}

func (s *StatementLifecycleServiceSuite) TestCreateAccountStatement_InheritsTemplate() {
	template := s.template(models.ProductTypeCurrent)
	account := &models.Account{ID: uuid.New(), ProductType: models.ProductTypeCurrent, Status: models.AccountStatusActive}

	s.productStatementRepo.EXPECT().GetByID(gomock.Any(), template.ID).Return(template, nil)
	s.accountRepo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil)
	s.accountStatementRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	statement, err := s.service.CreateAccountStatement(s.ctx, template.ID, account.ID, "", "")

	s.Require().NoError(err)
	s.Equal(models.StatementStatusInactive, statement.StatementStatus)
	s.Equal("MONTHLY", statement.Recurrence)
	s.Equal("ST", statement.SequencePrefix)
	s.Nil(statement.NextStatementDate)
}

func (s *StatementLifecycleServiceSuite) TestCreateAccountStatement_Overrides() {
	template := s.template(models.ProductTypeCurrent)
	account := &models.Account{ID: uuid.New(), ProductType: models.ProductTypeCurrent}

	s.productStatementRepo.EXPECT().GetByID(gomock.Any(), template.ID).Return(template, nil)
	s.accountRepo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil)
	s.accountStatementRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	statement, err := s.service.CreateAccountStatement(s.ctx, template.ID, account.ID, "WEEKLY", "WK")

	s.Require().NoError(err)
	s.Equal("WEEKLY", statement.Recurrence)
	s.Equal("WK", statement.SequencePrefix)
}

func (s *StatementLifecycleServiceSuite) TestCreateAccountStatement_ProductTypeMismatch() {
	template := s.template(models.ProductTypeSavings)
	account := &models.Account{ID: uuid.New(), ProductType: models.ProductTypeCurrent}

	s.productStatementRepo.EXPECT().GetByID(gomock.Any(), template.ID).Return(template, nil)
	s.accountRepo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil)

	_, err := s.service.CreateAccountStatement(s.ctx, template.ID, account.ID, "", "")

	s.ErrorIs(err, ErrProductTypeMismatch)
}

func (s *StatementLifecycleServiceSuite) TestActivate_DerivesNextDateFromToday() {
	template := s.template(models.ProductTypeCurrent)
	account := &models.Account{ID: uuid.New(), ProductType: models.ProductTypeCurrent, Status: models.AccountStatusActive}
	statement := models.NewAccountStatement(template, account.ID, "", "")
	statement.ID = uuid.New()

	s.accountStatementRepo.EXPECT().GetByID(gomock.Any(), statement.ID).Return(statement, nil)
	s.accountRepo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil)
	s.accountStatementRepo.EXPECT().Update(gomock.Any(), statement).Return(nil)

	activated, err := s.service.Activate(s.ctx, statement.ID)

	s.Require().NoError(err)
	s.True(activated.IsActive())
	s.Require().NotNil(activated.NextStatementDate)
	s.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *activated.NextStatementDate)
	s.Require().NotNil(activated.ActivatedOn)
	s.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *activated.ActivatedOn)
}

func (s *StatementLifecycleServiceSuite) TestActivate_ClosedAccountRejected() {
	statement := &models.AccountStatement{ID: uuid.New(), AccountID: uuid.New(), Recurrence: "MONTHLY"}
	account := &models.Account{ID: statement.AccountID, Status: models.AccountStatusClosed}

	s.accountStatementRepo.EXPECT().GetByID(gomock.Any(), statement.ID).Return(statement, nil)
	s.accountRepo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil)

	_, err := s.service.Activate(s.ctx, statement.ID)

	s.ErrorIs(err, ErrAccountClosed)
	s.False(statement.IsActive())
}

func (s *StatementLifecycleServiceSuite) TestActivate_InvalidRecurrence() {
	statement := &models.AccountStatement{ID: uuid.New(), AccountID: uuid.New(), Recurrence: "EVERY FULL MOON"}
	account := &models.Account{ID: statement.AccountID, Status: models.AccountStatusActive}

	s.accountStatementRepo.EXPECT().GetByID(gomock.Any(), statement.ID).Return(statement, nil)
	s.accountRepo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil)

	_, err := s.service.Activate(s.ctx, statement.ID)

	s.Error(err)
	s.False(statement.IsActive())
}

func (s *StatementLifecycleServiceSuite) TestInactivate_ClearsNextDate() {
	next := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	statement := &models.AccountStatement{
		ID:                uuid.New(),
		StatementStatus:   models.StatementStatusActive,
		NextStatementDate: &next,
		Version:           2,
	}

	s.accountStatementRepo.EXPECT().GetByID(gomock.Any(), statement.ID).Return(statement, nil)
	s.accountStatementRepo.EXPECT().Update(gomock.Any(), statement).Return(repositories.ErrConcurrentModification)
	s.eventLogger.EXPECT().LogOptimisticLockConflict(gomock.Any(), "account_statement", statement.ID, 2)

	_, err := s.service.Inactivate(s.ctx, statement.ID)

	s.ErrorIs(err, repositories.ErrConcurrentModification)
	s.Nil(statement.NextStatementDate)
	s.Equal(models.StatementStatusInactive, statement.StatementStatus)
}
