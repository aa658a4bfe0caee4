package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"core-banking-statements/internal/handlers"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuditTrailMiddleware(t *testing.T) {
	suite.Run(t, new(AuditTrailSuite))
}

type AuditTrailSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	audit *service_mocks.MockAuditServiceInterface
	e     *echo.Echo
}

func (s *AuditTrailSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.audit = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.e = echo.New()
}

func (s *AuditTrailSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuditTrailSuite) context(id string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/account-statements/"+id+"/activate", nil)
	req.Header.Set("User-Agent", "ops-console/1.0")
	req.Header.Set(echo.HeaderXRealIP, "10.1.2.3")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetPath("/api/v1/account-statements/:id/activate")
	c.SetParamNames("id")
	c.SetParamValues(id)
	c.Set(handlers.OperatorContextKey, "ops-jane")
	c.Set(TraceIDContextKey, "trace-7")
	return rec, c
}

func (s *AuditTrailSuite) TestRecordsSuccessfulAction() {
	_, c := s.context("st-1")

	s.audit.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
			s.Equal("ops-jane", log.Operator)
			s.Equal(models.AuditActionAccountStatementActivated, log.Action)
			s.Equal(models.AuditResourceAccountStatement, log.Resource)
			s.Equal("st-1", log.ResourceID)
			s.Equal("trace-7", log.TraceID)
			s.Equal("10.1.2.3", log.IPAddress)
			s.Equal("ops-console/1.0", log.UserAgent)
			s.Equal(http.MethodPost, log.GetMetadata("method", ""))
			s.Equal("/api/v1/account-statements/:id/activate", log.GetMetadata("route", ""))
			s.Equal(http.StatusOK, log.GetMetadata("status", 0))
			return nil
		})

	mw := AuditTrail(s.audit, models.AuditActionAccountStatementActivated, models.AuditResourceAccountStatement)
	err := mw(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})(c)

	s.NoError(err)
}

func (s *AuditTrailSuite) TestPrefersCreatedResourceID() {
	_, c := s.context("")

	s.audit.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
			s.Equal("res-99", log.ResourceID)
			return nil
		})

	mw := AuditTrail(s.audit, models.AuditActionStatementsGenerated, models.AuditResourceStatementResult)
	err := mw(func(c echo.Context) error {
		c.Set(handlers.AuditResourceIDContextKey, "res-99")
		return c.JSON(http.StatusCreated, map[string]string{"id": "res-99"})
	})(c)

	s.NoError(err)
}

func (s *AuditTrailSuite) TestSkipsFailedResponse() {
	rec, c := s.context("st-1")

	mw := AuditTrail(s.audit, models.AuditActionAccountStatementActivated, models.AuditResourceAccountStatement)
	err := mw(func(c echo.Context) error {
		return c.JSON(http.StatusConflict, map[string]string{"error": "conflict"})
	})(c)

	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *AuditTrailSuite) TestSkipsHandlerError() {
	_, c := s.context("st-1")
	boom := errors.New("boom")

	mw := AuditTrail(s.audit, models.AuditActionAccountClosed, models.AuditResourceAccount)
	err := mw(func(c echo.Context) error { return boom })(c)

	s.ErrorIs(err, boom)
}

func (s *AuditTrailSuite) TestRecordFailureDoesNotFailRequest() {
	rec, c := s.context("acc-1")

	s.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	mw := AuditTrail(s.audit, models.AuditActionAccountClosed, models.AuditResourceAccount)
	err := mw(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "closed"})
	})(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuditTrailSuite) TestNilServicePassesThrough() {
	rec, c := s.context("acc-1")

	mw := AuditTrail(nil, models.AuditActionAccountClosed, models.AuditResourceAccount)
	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c)

	s.NoError(err)
	s.Equal(http.StatusNoContent, rec.Code)
}
