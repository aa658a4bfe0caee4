package handlers

import (
	"fmt"
	"time"

	"core-banking-statements/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// OperatorContextKey holds the authenticated operator's subject.
	OperatorContextKey = "operator"
	// OperatorRoleContextKey holds the authenticated operator's role.
	OperatorRoleContextKey = "operator_role"
	// AuditResourceIDContextKey holds the ID of a resource created by the
	// request, for routes without an :id parameter.
	AuditResourceIDContextKey = "audit_resource_id"
)

// getOperatorFromContext returns the subject set by the auth middleware, or
// "anonymous" on routes mounted without it.
func getOperatorFromContext(c echo.Context) string {
	operator, ok := c.Get(OperatorContextKey).(string)
	if !ok || operator == "" {
		return "anonymous"
	}
	return operator
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

// parseDateQuery parses an ISO date query parameter. A missing parameter
// yields today's date.
func parseDateQuery(c echo.Context, name string, now func() time.Time) (time.Time, error) {
	value := c.QueryParam(name)
	if value == "" {
		return models.DateOf(now()), nil
	}
	date, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return date, nil
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
