package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"core-banking-statements/internal/dto"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/repositories"
	"core-banking-statements/internal/services"
	"core-banking-statements/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AccountStatementHandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	lifecycle *service_mocks.MockStatementLifecycleServiceInterface
	handler   *AccountStatementHandler
	e         *echo.Echo
}

func TestAccountStatementHandler(t *testing.T) {
	suite.Run(t, new(AccountStatementHandlerSuite))
}

func (s *AccountStatementHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.lifecycle = service_mocks.NewMockStatementLifecycleServiceInterface(s.ctrl)
	s.handler = NewAccountStatementHandler(s.lifecycle)
	s.e = newTestEcho()
}

func (s *AccountStatementHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AccountStatementHandlerSuite) TestCreateProductStatement_Success() {
	productID := uuid.New()
	body := fmt.Sprintf(`{"product_id":"%s","product_type":"current","statement_code":"CUR-MONTHLY","recurrence":"MONTHLY","sequence_prefix":"CUR"}`, productID)
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/product-statements", body)

	s.lifecycle.EXPECT().CreateProductStatement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, template *models.ProductStatement) error {
			s.Equal(productID, template.ProductID)
			s.Equal("CUR-MONTHLY", template.StatementCode)
			s.Equal("MONTHLY", template.Recurrence)
			template.ID = uuid.New()
			template.StatementType = models.StatementTypeCAMT053
			template.PublishType = models.PublishTypeDownload
			template.BatchType = models.BatchTypeSingle
			template.Version = 1
			return nil
		})

	s.Require().NoError(s.handler.CreateProductStatement(c))

	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.ProductStatementResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("CUR-MONTHLY", resp.StatementCode)
	s.Equal(models.BatchTypeSingle, resp.BatchType)
	s.NotEqual(uuid.Nil, resp.ID)
}

func (s *AccountStatementHandlerSuite) TestCreateProductStatement_InvalidRecurrence() {
	body := fmt.Sprintf(`{"product_id":"%s","product_type":"current","statement_code":"X","recurrence":"FORTNIGHTLY-ISH"}`, uuid.New())
	c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/product-statements", body)

	err := s.handler.CreateProductStatement(c)

	var validationErrs validator.ValidationErrors
	s.Require().ErrorAs(err, &validationErrs)
	s.Equal("recurrence", validationErrs[0].Field())
}

func (s *AccountStatementHandlerSuite) TestCreateProductStatement_DuplicateCode() {
	body := fmt.Sprintf(`{"product_id":"%s","product_type":"savings","statement_code":"SAV"}`, uuid.New())
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/product-statements", body)

	s.lifecycle.EXPECT().CreateProductStatement(gomock.Any(), gomock.Any()).
		Return(&repositories.DuplicateError{Entity: "product statement", Field: "statement_code"})

	s.Require().NoError(s.handler.CreateProductStatement(c))

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("STATEMENT_004", errorCodeOf(s.T(), rec))
}

func (s *AccountStatementHandlerSuite) TestCreateAccountStatement_Success() {
	templateID, accountID := uuid.New(), uuid.New()
	body := fmt.Sprintf(`{"product_statement_id":"%s","account_id":"%s","recurrence":"WEEKLY"}`, templateID, accountID)
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/account-statements", body)

	statement := &models.AccountStatement{
		ID:                 uuid.New(),
		ProductStatementID: templateID,
		AccountID:          accountID,
		Recurrence:         "WEEKLY",
		StatementStatus:    models.StatementStatusInactive,
		Version:            1,
	}
	s.lifecycle.EXPECT().CreateAccountStatement(gomock.Any(), templateID, accountID, "WEEKLY", "").Return(statement, nil)

	s.Require().NoError(s.handler.CreateAccountStatement(c))

	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.AccountStatementResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(statement.ID, resp.ID)
	s.Equal(models.StatementStatusInactive, resp.StatementStatus)
	s.Empty(resp.NextStatementDate)
}

func (s *AccountStatementHandlerSuite) TestCreateAccountStatement_Errors() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"template missing", repositories.ErrProductStatementNotFound, http.StatusNotFound, "STATEMENT_005"},
		{"product mismatch", services.ErrProductTypeMismatch, http.StatusUnprocessableEntity, "STATEMENT_008"},
		{"closed account", services.ErrAccountClosed, http.StatusUnprocessableEntity, "ACCOUNT_005"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			body := fmt.Sprintf(`{"product_statement_id":"%s","account_id":"%s"}`, uuid.New(), uuid.New())
			c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/account-statements", body)
			s.lifecycle.EXPECT().CreateAccountStatement(gomock.Any(), gomock.Any(), gomock.Any(), "", "").Return(nil, tc.err)

			s.Require().NoError(s.handler.CreateAccountStatement(c))

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, errorCodeOf(s.T(), rec))
		})
	}
}

func (s *AccountStatementHandlerSuite) TestActivate_Success() {
	id := uuid.New()
	activated := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	next := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	c, rec := newJSONContext(s.e, http.MethodPost, "/", "")
	withParam(c, "id", id.String())
	c.Set(OperatorContextKey, "ops-jane")

	s.lifecycle.EXPECT().Activate(gomock.Any(), id).Return(&models.AccountStatement{
		ID:                id,
		StatementStatus:   models.StatementStatusActive,
		ActivatedOn:       &activated,
		NextStatementDate: &next,
		Version:           2,
	}, nil)

	s.Require().NoError(s.handler.Activate(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.AccountStatementResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.StatementStatusActive, resp.StatementStatus)
	s.Equal("2024-01-15", resp.ActivatedOn)
	s.Equal("2024-02-15", resp.NextStatementDate)
}

func (s *AccountStatementHandlerSuite) TestActivate_ConcurrentModification() {
	id := uuid.New()
	c, rec := newJSONContext(s.e, http.MethodPost, "/", "")
	withParam(c, "id", id.String())
	s.lifecycle.EXPECT().Activate(gomock.Any(), id).Return(nil, repositories.ErrConcurrentModification)

	s.Require().NoError(s.handler.Activate(c))

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("STATEMENT_003", errorCodeOf(s.T(), rec))
}

func (s *AccountStatementHandlerSuite) TestInactivate_Success() {
	id := uuid.New()
	c, rec := newJSONContext(s.e, http.MethodPost, "/", "")
	withParam(c, "id", id.String())
	s.lifecycle.EXPECT().Inactivate(gomock.Any(), id).Return(&models.AccountStatement{
		ID:              id,
		StatementStatus: models.StatementStatusInactive,
	}, nil)

	s.Require().NoError(s.handler.Inactivate(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"statement_status":"INACTIVE"`)
}

func (s *AccountStatementHandlerSuite) TestInactivate_InvalidID() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/", "")
	withParam(c, "id", "42")

	s.Require().NoError(s.handler.Inactivate(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_005", errorCodeOf(s.T(), rec))
}
