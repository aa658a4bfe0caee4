package handlers

import (
	"net/http"
	"time"

	"core-banking-statements/internal/dto"
	"core-banking-statements/internal/errors"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/services"

	"github.com/labstack/echo/v4"
)

const maxAuditPageSize = 200

// AuditHandler serves the operator audit trail
type AuditHandler struct {
	auditService services.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListAuditLogs lists recorded operator actions newest first
// @Summary List operator actions
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param operator query string false "Operator subject"
// @Param action query string false "Action, e.g. result_published"
// @Param resource_id query string false "Resource ID"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.AuditLogListResponse "Audit trail page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid date or range"
// @Router /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c echo.Context) error {
	page := clamp(getIntQueryParam(c, "page", 1), 1, 1<<20)
	limit := clamp(getIntQueryParam(c, "limit", 50), 1, maxAuditPageSize)

	filter := models.AuditLogFilter{
		Operator:   c.QueryParam("operator"),
		Action:     c.QueryParam("action"),
		ResourceID: c.QueryParam("resource_id"),
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}

	from, err := parseOptionalDate(c.QueryParam("from"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("from must be formatted as YYYY-MM-DD"))
	}
	to, err := parseOptionalDate(c.QueryParam("to"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("to must be formatted as YYYY-MM-DD"))
	}
	filter.From = from
	if to != nil {
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.To = &end
	}

	logs, total, err := h.auditService.List(c.Request().Context(), filter)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToAuditLogListResponse(logs, page, limit, total))
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
