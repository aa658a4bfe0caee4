package handlers

import (
	"log/slog"
	"net/http"

	"core-banking-statements/internal/dto"
	"core-banking-statements/internal/errors"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountStatementHandler administers statement templates and the
// statement cycles of accounts.
type AccountStatementHandler struct {
	lifecycle services.StatementLifecycleServiceInterface
}

func NewAccountStatementHandler(lifecycle services.StatementLifecycleServiceInterface) *AccountStatementHandler {
	return &AccountStatementHandler{lifecycle: lifecycle}
}

// CreateProductStatement registers a statement template
// @Summary Create a product statement
// @Tags Statements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateProductStatementRequest true "Template"
// @Success 201 {object} dto.ProductStatementResponse "Template created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 409 {object} errors.ErrorResponse "STATEMENT_004 - Statement code already exists"
// @Router /product-statements [post]
func (h *AccountStatementHandler) CreateProductStatement(c echo.Context) error {
	var req dto.CreateProductStatementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid product ID"))
	}

	template := &models.ProductStatement{
		ProductID:      productID,
		ProductType:    req.ProductType,
		StatementCode:  req.StatementCode,
		Recurrence:     req.Recurrence,
		SequencePrefix: req.SequencePrefix,
		StatementType:  req.StatementType,
		PublishType:    req.PublishType,
		BatchType:      req.BatchType,
	}
	if err := h.lifecycle.CreateProductStatement(c.Request().Context(), template); err != nil {
		return SendServiceError(c, err)
	}

	c.Set(AuditResourceIDContextKey, template.ID.String())
	return c.JSON(http.StatusCreated, dto.ToProductStatementResponse(template))
}

// CreateAccountStatement opens an inactive statement cycle for an account
// @Summary Create an account statement
// @Tags Statements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountStatementRequest true "Account statement"
// @Success 201 {object} dto.AccountStatementResponse "Account statement created"
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_005 - Product statement not found"
// @Failure 422 {object} errors.ErrorResponse "STATEMENT_008 - Product type mismatch"
// @Router /account-statements [post]
func (h *AccountStatementHandler) CreateAccountStatement(c echo.Context) error {
	var req dto.CreateAccountStatementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	templateID, err := uuid.Parse(req.ProductStatementID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid product statement ID"))
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid account ID"))
	}

	statement, err := h.lifecycle.CreateAccountStatement(c.Request().Context(), templateID, accountID, req.Recurrence, req.SequencePrefix)
	if err != nil {
		return SendServiceError(c, err)
	}

	c.Set(AuditResourceIDContextKey, statement.ID.String())
	return c.JSON(http.StatusCreated, dto.ToAccountStatementResponse(statement))
}

// Activate makes an account statement eligible for generation
// @Summary Activate an account statement
// @Tags Statements
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account statement ID"
// @Success 200 {object} dto.AccountStatementResponse "Account statement activated"
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_001 - Account statement not found"
// @Failure 409 {object} errors.ErrorResponse "STATEMENT_003 - Concurrent modification, retry"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_005 - Account is closed"
// @Router /account-statements/{id}/activate [post]
func (h *AccountStatementHandler) Activate(c echo.Context) error {
	statementID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid account statement ID"))
	}

	statement, err := h.lifecycle.Activate(c.Request().Context(), statementID)
	if err != nil {
		return SendServiceError(c, err)
	}

	slog.InfoContext(c.Request().Context(), "account statement activated on request",
		"operator", getOperatorFromContext(c),
		"account_statement_id", statement.ID)

	return c.JSON(http.StatusOK, dto.ToAccountStatementResponse(statement))
}

// Inactivate stops generation for an account statement
// @Summary Inactivate an account statement
// @Tags Statements
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account statement ID"
// @Success 200 {object} dto.AccountStatementResponse "Account statement inactivated"
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_001 - Account statement not found"
// @Router /account-statements/{id}/inactivate [post]
func (h *AccountStatementHandler) Inactivate(c echo.Context) error {
	statementID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid account statement ID"))
	}

	statement, err := h.lifecycle.Inactivate(c.Request().Context(), statementID)
	if err != nil {
		return SendServiceError(c, err)
	}

	slog.InfoContext(c.Request().Context(), "account statement inactivated on request",
		"operator", getOperatorFromContext(c),
		"account_statement_id", statement.ID)

	return c.JSON(http.StatusOK, dto.ToAccountStatementResponse(statement))
}
