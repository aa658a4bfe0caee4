package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"core-banking-statements/internal/errors"
	"core-banking-statements/internal/handlers"
	"core-banking-statements/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomHTTPErrorHandler formats every error that reaches echo as a
// standardized error response, logs it and counts it by code and status.
func CustomHTTPErrorHandler(metrics services.MetricsRecorderInterface) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		errorResponse, httpStatus := buildErrorResponse(err, traceID)

		logLevel := slog.LevelWarn
		if httpStatus >= http.StatusInternalServerError {
			logLevel = slog.LevelError
		}

		slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", httpStatus,
			"message", errorResponse.Error.Message,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		if metrics != nil {
			metrics.IncrementCounter(services.MetricAPIError, map[string]string{
				"code":   errorResponse.Error.Code,
				"status": strconv.Itoa(httpStatus),
			})
		}

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			slog.Error("Failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

func buildErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		code := mapHTTPStatusToErrorCode(echoErr.Code)
		response := errors.NewErrorResponse(code, traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)))
		return response, echoErr.Code
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fieldErrors := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
		}
		return errors.NewValidationError(fieldErrors, traceID), http.StatusBadRequest
	}

	if code, ok := handlers.ErrorCodeFor(err); ok {
		response := errors.NewErrorResponse(code, traceID)
		return response, response.GetHTTPStatus()
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge,
		http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInsufficientPermission
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusMethodNotAllowed:
		return errors.SystemMethodNotAllowed
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	case http.StatusGatewayTimeout:
		return errors.SystemTimeout
	default:
		return errors.SystemInternalError
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		default:
			return fmt.Sprintf("must be at most %s", fe.Param())
		}
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "alphanum":
		return "must contain only alphanumeric characters"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "product_type":
		return "must be a valid product type (current, savings)"
	case "statement_type":
		return "must be a valid statement type (CAMT053)"
	case "publish_type":
		return "must be a valid publish type (DOWNLOAD, DISTRIBUTE)"
	case "recurrence":
		return "must be a recurrence keyword, FREQ rule or cron expression"
	case "iso_date":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
