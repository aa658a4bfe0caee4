package handlers

import (
	"crypto/md5"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	//go:embed docs/scalar.html
	scalarPage []byte
	//go:embed docs/openapi.json
	openAPISpec []byte
)

// DocsHandler handles API documentation endpoints
type DocsHandler struct {
	scalarHTML []byte
	scalarETag string
	spec       []byte
	specETag   string
}

// NewDocsHandler creates a documentation handler serving the embedded pages
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{
		scalarHTML: scalarPage,
		scalarETag: generateETag(scalarPage),
		spec:       openAPISpec,
		specETag:   generateETag(openAPISpec),
	}
}

// ServeScalarUI serves the Scalar HTML page
// @Summary API Documentation UI
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if notModified(c, h.scalarETag) {
		return c.NoContent(http.StatusNotModified)
	}

	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOpenAPI serves the OpenAPI document loaded by the Scalar page
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "public, max-age=300")

	if notModified(c, h.specETag) {
		return c.NoContent(http.StatusNotModified)
	}

	return c.Blob(http.StatusOK, "application/json; charset=utf-8", h.spec)
}

func notModified(c echo.Context, etag string) bool {
	if etag == "" {
		return false
	}
	c.Response().Header().Set("ETag", etag)
	match := c.Request().Header.Get("If-None-Match")
	return match != "" && match == etag
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
