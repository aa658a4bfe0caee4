package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DocsHandlerSuite struct {
	suite.Suite
	handler *DocsHandler
	e       *echo.Echo
}

func (s *DocsHandlerSuite) SetupTest() {
	s.handler = NewDocsHandler()
	s.e = echo.New()
}

func TestDocsHandler(t *testing.T) {
	suite.Run(t, new(DocsHandlerSuite))
}

func (s *DocsHandlerSuite) TestServeScalarUI() {
	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	rec := httptest.NewRecorder()

	err := s.handler.ServeScalarUI(s.e.NewContext(req, rec))

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "text/html")
	s.Contains(rec.Body.String(), "/docs/openapi.json")
	s.NotEmpty(rec.Header().Get("ETag"))
}

func (s *DocsHandlerSuite) TestServeScalarUI_NotModified() {
	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	req.Header.Set("If-None-Match", s.handler.scalarETag)
	rec := httptest.NewRecorder()

	err := s.handler.ServeScalarUI(s.e.NewContext(req, rec))

	s.NoError(err)
	s.Equal(http.StatusNotModified, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *DocsHandlerSuite) TestServeOpenAPI_IsValidJSONWithOperatorPaths() {
	req := httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil)
	rec := httptest.NewRecorder()

	err := s.handler.ServeOpenAPI(s.e.NewContext(req, rec))

	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "application/json")

	var doc struct {
		Paths map[string]interface{} `json:"paths"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &doc))
	s.Contains(doc.Paths, "/statements/generate")
	s.Contains(doc.Paths, "/statement-results/{id}/publish")
	s.Contains(doc.Paths, "/accounts/{id}/balance")
	s.Contains(doc.Paths, "/audit-logs")
}

func (s *DocsHandlerSuite) TestGenerateETag() {
	s.Empty(generateETag(nil))
	s.Equal(generateETag([]byte("a")), generateETag([]byte("a")))
	s.NotEqual(generateETag([]byte("a")), generateETag([]byte("b")))
}
