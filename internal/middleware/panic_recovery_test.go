package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"core-banking-statements/internal/errors"
	"core-banking-statements/internal/handlers"
	"core-banking-statements/internal/services"
	"core-banking-statements/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoverySuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	metrics *service_mocks.MockMetricsRecorderInterface
	e       *echo.Echo
}

func TestPanicRecoverySuite(t *testing.T) {
	suite.Run(t, new(PanicRecoverySuite))
}

func (s *PanicRecoverySuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.e = echo.New()
}

func (s *PanicRecoverySuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PanicRecoverySuite) generateContext(traceID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements/generate", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetPath("/api/v1/statements/generate")
	c.Set(handlers.OperatorContextKey, "ops-jane")
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}
	return c, rec
}

func (s *PanicRecoverySuite) decode(rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *PanicRecoverySuite) TestPanicBecomesSystemError() {
	tests := []struct {
		name      string
		panicWith interface{}
	}{
		{"string", "builder exploded"},
		{"error value", services.ErrEmptyBatch},
		{"nil", nil},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := s.generateContext("trace-42")
			s.metrics.EXPECT().IncrementCounter(services.MetricAPIError, map[string]string{
				"code":   "SYSTEM_001",
				"status": "500",
			})

			s.NotPanics(func() {
				_ = PanicRecovery(s.metrics)(func(c echo.Context) error {
					panic(tt.panicWith)
				})(c)
			})

			s.Equal(http.StatusInternalServerError, rec.Code)
			body := s.decode(rec)
			s.Equal("SYSTEM_001", body.Error.Code)
			s.Equal("trace-42", body.Error.TraceID)
		})
	}
}

func (s *PanicRecoverySuite) TestUnknownTraceIDWithoutRequestID() {
	c, rec := s.generateContext("")

	_ = PanicRecovery(nil)(func(c echo.Context) error {
		panic("no trace")
	})(c)

	s.Equal("unknown", s.decode(rec).Error.TraceID)
}

func (s *PanicRecoverySuite) TestCommittedResponseIsLeftAlone() {
	c, rec := s.generateContext("trace-43")
	s.metrics.EXPECT().IncrementCounter(services.MetricAPIError, gomock.Any())

	_ = PanicRecovery(s.metrics)(func(c echo.Context) error {
		c.Response().WriteHeader(http.StatusAccepted)
		panic("after header")
	})(c)

	s.Equal(http.StatusAccepted, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *PanicRecoverySuite) TestPassesThroughWithoutPanic() {
	c, rec := s.generateContext("trace-44")

	err := PanicRecovery(s.metrics)(func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"result_id": "r-1"})
	})(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}
