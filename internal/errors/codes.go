package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidID     ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound              ErrorCode = "ACCOUNT_001"
	AccountNotActivated          ErrorCode = "ACCOUNT_002"
	AccountBalanceNotZero        ErrorCode = "ACCOUNT_003"
	AccountAlreadyClosed         ErrorCode = "ACCOUNT_004"
	AccountOperationNotPermitted ErrorCode = "ACCOUNT_005"
)

// Balance error codes (BALANCE_*)
const (
	BalanceNotApplicable ErrorCode = "BALANCE_001"
	BalanceNotFound      ErrorCode = "BALANCE_002"
)

// Statement error codes (STATEMENT_*)
const (
	StatementNotFound           ErrorCode = "STATEMENT_001"
	StatementInvalidStatus      ErrorCode = "STATEMENT_002"
	StatementConcurrentUpdate   ErrorCode = "STATEMENT_003"
	StatementDuplicateCode      ErrorCode = "STATEMENT_004"
	StatementProductNotFound    ErrorCode = "STATEMENT_005"
	StatementInvalidRecurrence  ErrorCode = "STATEMENT_006"
	StatementUnsupportedProduct ErrorCode = "STATEMENT_007"
	StatementBatchMismatch      ErrorCode = "STATEMENT_008"
)

// Statement result error codes (RESULT_*)
const (
	ResultNotFound         ErrorCode = "RESULT_001"
	ResultAlreadyPublished ErrorCode = "RESULT_002"
	ResultPublishFailed    ErrorCode = "RESULT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemTimeout            ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
	SystemMethodNotAllowed   ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidID:     "Invalid identifier format",

	// Account errors
	AccountNotFound:              "Account not found",
	AccountNotActivated:          "Account was not active on the requested date",
	AccountBalanceNotZero:        "Account balance and hold amount must be zero",
	AccountAlreadyClosed:         "Account is already closed",
	AccountOperationNotPermitted: "Account operation not permitted",

	// Balance errors
	BalanceNotApplicable: "No balance is computed before account activation",
	BalanceNotFound:      "Balance snapshot not found",

	// Statement errors
	StatementNotFound:           "Account statement not found",
	StatementInvalidStatus:      "Account statement is not active",
	StatementConcurrentUpdate:   "Account statement was modified concurrently, retry the request",
	StatementDuplicateCode:      "A product statement with this code already exists",
	StatementProductNotFound:    "Product statement not found",
	StatementInvalidRecurrence:  "Invalid recurrence descriptor",
	StatementUnsupportedProduct: "No statement builder for this product type",
	StatementBatchMismatch:      "Account statements do not belong to the requested batch",

	// Result errors
	ResultNotFound:         "Statement result not found",
	ResultAlreadyPublished: "Statement result is already published",
	ResultPublishFailed:    "Statement result could not be published",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemTimeout:            "The operation did not complete in time",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
	SystemMethodNotAllowed:   "Method not allowed",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
