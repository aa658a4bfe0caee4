package middleware

import (
	"core-banking-statements/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the correlation id in and out of the operator API.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey holds the correlation id in the echo context.
	TraceIDContextKey = "trace_id"

	maxTraceIDLength = 128
)

// RequestID attaches a correlation id to every operator request. A
// well-formed X-Trace-ID from the caller is kept, anything else is replaced
// by a fresh UUID. The id is echoed in the response, stored on the echo
// context for handlers and the audit trail, and put on the request context
// so statement events and published result notifications carry it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if !validTraceID(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(services.WithCorrelationID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// validTraceID accepts printable ASCII ids without spaces. The id ends up in
// log lines, audit rows and AMQP headers.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

// GetTraceID returns the request's correlation id, or "" outside RequestID.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
