package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"

	"core-banking-statements/internal/errors"
	"core-banking-statements/internal/handlers"
	"core-banking-statements/internal/services"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panicking handler into a SYSTEM_001 response and
// counts it as an API error. A batch interrupted this way rolls back with
// its transaction. Nothing is written when the handler already started the
// response.
func PanicRecovery(metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				operator, _ := c.Get(handlers.OperatorContextKey).(string)
				slog.ErrorContext(c.Request().Context(), "operator request panicked",
					"trace_id", traceID,
					"operator", operator,
					"route", c.Path(),
					"method", c.Request().Method,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
				)

				if metrics != nil {
					metrics.IncrementCounter(services.MetricAPIError, map[string]string{
						"code":   string(errors.SystemInternalError),
						"status": strconv.Itoa(http.StatusInternalServerError),
					})
				}

				if c.Response().Committed {
					return
				}
				if err := c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID)); err != nil {
					slog.Error("failed to send panic response",
						"trace_id", traceID,
						"error", err)
				}
			}()

			return next(c)
		}
	}
}
