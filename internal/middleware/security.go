package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	apiCSP = "default-src 'none'; frame-ancestors 'none'"

	// Scalar loads its bundle and fonts from public CDNs.
	docsCSP = "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline' 'unsafe-eval' https://cdn.jsdelivr.net; " +
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com https://cdn.jsdelivr.net; " +
		"font-src 'self' https://fonts.gstatic.com https://cdn.jsdelivr.net data:; " +
		"img-src 'self' data: https: blob:; " +
		"connect-src 'self'; " +
		"worker-src 'self' blob:"
)

var baseSecurityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "no-referrer",
	"Permissions-Policy":     "geolocation=(), microphone=(), camera=()",
}

// SecurityHeaders adds security headers to responses. Statement and balance
// payloads carry account data, so API responses are never cached. HSTS is
// only sent when strictTransport is set.
func SecurityHeaders(strictTransport bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for name, value := range baseSecurityHeaders {
				h.Set(name, value)
			}
			if strictTransport {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			if isDocsPath(c) {
				h.Set("Content-Security-Policy", docsCSP)
				return next(c)
			}

			h.Set("Content-Security-Policy", apiCSP)
			h.Set("Cache-Control", "no-store")
			h.Set("Pragma", "no-cache")
			return next(c)
		}
	}
}

func isDocsPath(c echo.Context) bool {
	path := c.Path()
	if path == "" {
		path = c.Request().URL.Path
	}
	return path == "/docs" || strings.HasPrefix(path, "/docs/")
}
