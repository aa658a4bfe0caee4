package middleware

import (
	"log/slog"
	"net/http"

	"core-banking-statements/internal/handlers"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/services"

	"github.com/labstack/echo/v4"
)

// AuditTrail records action against resource once the handler succeeded.
// The resource ID is the one the handler created, or the :id path parameter.
// A failed audit write is logged and never fails the request.
func AuditTrail(audit services.AuditServiceInterface, action, resource string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if audit == nil {
			return next
		}

		return func(c echo.Context) error {
			if err := next(c); err != nil {
				return err
			}

			status := c.Response().Status
			if status >= http.StatusBadRequest {
				return nil
			}

			resourceID, _ := c.Get(handlers.AuditResourceIDContextKey).(string)
			if resourceID == "" {
				resourceID = c.Param("id")
			}
			operator, _ := c.Get(handlers.OperatorContextKey).(string)

			entry := &models.AuditLog{
				Operator:   operator,
				Action:     action,
				Resource:   resource,
				ResourceID: resourceID,
				TraceID:    GetTraceID(c),
				IPAddress:  c.RealIP(),
				UserAgent:  c.Request().UserAgent(),
			}
			entry.SetMetadata("method", c.Request().Method)
			entry.SetMetadata("route", c.Path())
			entry.SetMetadata("status", status)

			ctx := c.Request().Context()
			if err := audit.Record(ctx, entry); err != nil {
				slog.WarnContext(ctx, "failed to record operator action",
					"trace_id", entry.TraceID,
					"action", action,
					"resource_id", resourceID,
					"error", err)
			}
			return nil
		}
	}
}
