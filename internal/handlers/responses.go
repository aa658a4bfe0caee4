package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"

	"core-banking-statements/internal/errors"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/recurrence"
	"core-banking-statements/internal/repositories"
	"core-banking-statements/internal/services"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError for known client and domain
// errors, SendServiceError for anything returned by a service, and
// SendSystemError for internal failures. Never return echo.NewHTTPError or
// write error JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internalErr)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps a domain error to its API code. Unknown errors are
// sent as system errors.
func SendServiceError(c echo.Context, err error) error {
	code, ok := ErrorCodeFor(err)
	if !ok {
		return SendSystemError(c, err)
	}
	if errors.GetHTTPStatus(code) >= http.StatusInternalServerError {
		slog.WarnContext(c.Request().Context(), "request failed",
			"trace_id", getTraceID(c),
			"error_code", code,
			"error", err)
	}
	return SendError(c, code)
}

// ErrorCodeFor returns the API error code of a known domain error.
func ErrorCodeFor(err error) (errors.ErrorCode, bool) {
	if _, ok := repositories.IsDuplicate(err); ok {
		return errors.StatementDuplicateCode, true
	}

	for _, m := range domainErrors {
		if stderrors.Is(err, m.err) {
			return m.code, true
		}
	}
	return "", false
}

// Order matters: more specific errors come first.
var domainErrors = []struct {
	err  error
	code errors.ErrorCode
}{
	{repositories.ErrAccountNotFound, errors.AccountNotFound},
	{repositories.ErrClientNotFound, errors.AccountNotFound},
	{repositories.ErrDailyBalanceNotFound, errors.BalanceNotFound},
	{repositories.ErrProductStatementNotFound, errors.StatementProductNotFound},
	{repositories.ErrAccountStatementNotFound, errors.StatementNotFound},
	{repositories.ErrStatementResultNotFound, errors.ResultNotFound},
	{repositories.ErrConcurrentModification, errors.StatementConcurrentUpdate},

	{models.ErrAccountAlreadyClosed, errors.AccountAlreadyClosed},
	{models.ErrAccountBalanceNotZero, errors.AccountBalanceNotZero},
	{models.ErrInvalidStatementStatus, errors.StatementInvalidStatus},
	{models.ErrResultAlreadyPublished, errors.ResultAlreadyPublished},
	{models.ErrInvalidProductType, errors.ValidationInvalidFormat},
	{models.ErrInvalidStatementType, errors.ValidationInvalidFormat},
	{models.ErrInvalidPublishType, errors.ValidationInvalidFormat},
	{models.ErrInvalidBatchType, errors.ValidationInvalidFormat},
	{recurrence.ErrInvalidRecurrence, errors.StatementInvalidRecurrence},

	{services.ErrBalanceNotApplicable, errors.BalanceNotApplicable},
	{services.ErrAccountClosed, errors.AccountOperationNotPermitted},
	{services.ErrProductTypeMismatch, errors.StatementBatchMismatch},
	{services.ErrEmptyBatch, errors.ValidationRequiredField},
	{services.ErrUnsupportedProductType, errors.StatementUnsupportedProduct},
	{services.ErrUnsupportedStatementType, errors.StatementUnsupportedProduct},
	{services.ErrResultStoreFailed, errors.ResultPublishFailed},
	{services.ErrCircuitBreakerOpen, errors.SystemServiceUnavailable},
	{services.ErrAuditDateRange, errors.ValidationInvalidDate},
	{services.ErrUnknownAuditAction, errors.ValidationInvalidFormat},
	{services.ErrInvalidAuditLog, errors.ValidationGeneral},

	{context.DeadlineExceeded, errors.SystemTimeout},
}
