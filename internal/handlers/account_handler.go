package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"core-banking-statements/internal/dto"
	"core-banking-statements/internal/errors"
	"core-banking-statements/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler serves balance lookups and account closure
type AccountHandler struct {
	balanceService services.BalanceServiceInterface
	accountService services.AccountServiceInterface
	now            func() time.Time
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(balanceService services.BalanceServiceInterface, accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{
		balanceService: balanceService,
		accountService: accountService,
		now:            time.Now,
	}
}

// GetBalance returns the balance of an account at the end of a business date
// @Summary Get account balance
// @Description Balance and hold amount as of the end of the given date (default today)
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID"
// @Param date query string false "Business date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceResponse "Balance as of date"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid date"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "BALANCE_001 - Date is before account activation"
// @Router /accounts/{id}/balance [get]
func (h *AccountHandler) GetBalance(c echo.Context) error {
	accountID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid account ID"))
	}

	asOf, err := parseDateQuery(c, "date", h.now)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("date must be formatted as YYYY-MM-DD"))
	}

	snapshot, err := h.balanceService.GetBalance(c.Request().Context(), accountID, asOf)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToBalanceResponse(snapshot))
}

// CloseAccount closes an account with zero balance and hold
// @Summary Close an account
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse "Account closed"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_003 - Balance or hold is not zero"
// @Router /accounts/{id}/close [post]
func (h *AccountHandler) CloseAccount(c echo.Context) error {
	accountID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.CloseAccount(c.Request().Context(), accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	slog.InfoContext(c.Request().Context(), "account closed on request",
		"operator", getOperatorFromContext(c),
		"account_id", account.ID)

	return c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
