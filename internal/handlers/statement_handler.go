package handlers

import (
	"log/slog"
	"net/http"

	"core-banking-statements/internal/dto"
	"core-banking-statements/internal/errors"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/services"

	"github.com/labstack/echo/v4"
)

// StatementHandler serves on-demand generation and publication of
// statement results.
type StatementHandler struct {
	generator        services.StatementGeneratorInterface
	publisher        services.PublisherInterface
	deleteSuperseded bool
}

// NewStatementHandler creates a statement handler. deleteSuperseded is used
// when a generate request does not say whether to drop replaced results.
func NewStatementHandler(generator services.StatementGeneratorInterface, publisher services.PublisherInterface, deleteSuperseded bool) *StatementHandler {
	return &StatementHandler{
		generator:        generator,
		publisher:        publisher,
		deleteSuperseded: deleteSuperseded,
	}
}

// GenerateStatements builds one statement document for a batch of account statements
// @Summary Generate statements
// @Description Generate a CAMT.053 statement result covering the given account statements and advance their cycles
// @Tags Statements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.GenerateStatementsRequest true "Batch to generate"
// @Success 201 {object} dto.StatementResultResponse "Result generated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_001 - Account statement not found"
// @Failure 409 {object} errors.ErrorResponse "STATEMENT_003 - Concurrent modification, retry"
// @Failure 422 {object} errors.ErrorResponse "STATEMENT_002 - Account statement is not active"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /statements/generate [post]
func (h *StatementHandler) GenerateStatements(c echo.Context) error {
	var req dto.GenerateStatementsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ids, err := parseUUIDs(req.AccountStatementIDs)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid account statement ID"))
	}

	statementType := req.StatementType
	if statementType == "" {
		statementType = models.StatementTypeCAMT053
	}
	deleteSuperseded := h.deleteSuperseded
	if req.DeleteSuperseded != nil {
		deleteSuperseded = *req.DeleteSuperseded
	}

	result, err := h.generator.GenerateBatch(c.Request().Context(), req.ProductType, statementType, req.PublishType, ids, deleteSuperseded)
	if err != nil {
		return SendServiceError(c, err)
	}

	slog.InfoContext(c.Request().Context(), "statements generated on request",
		"operator", getOperatorFromContext(c),
		"result_id", result.ID,
		"statement_count", len(ids))

	c.Set(AuditResourceIDContextKey, result.ID.String())
	return c.JSON(http.StatusCreated, dto.ToStatementResultResponse(result))
}

// PublishResult publishes a generated statement result
// @Summary Publish a statement result
// @Description Store the result content, announce it and mark it published
// @Tags Statements
// @Security BearerAuth
// @Produce json
// @Param id path string true "Statement result ID"
// @Success 200 {object} dto.StatementResultResponse "Result published"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid result ID"
// @Failure 404 {object} errors.ErrorResponse "RESULT_001 - Result not found"
// @Failure 422 {object} errors.ErrorResponse "RESULT_002 - Result already published"
// @Failure 502 {object} errors.ErrorResponse "RESULT_003 - Result could not be stored"
// @Router /statement-results/{id}/publish [post]
func (h *StatementHandler) PublishResult(c echo.Context) error {
	resultID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid result ID"))
	}

	result, err := h.publisher.PublishResult(c.Request().Context(), resultID)
	if err != nil {
		return SendServiceError(c, err)
	}

	slog.InfoContext(c.Request().Context(), "statement result published on request",
		"operator", getOperatorFromContext(c),
		"result_id", result.ID)

	return c.JSON(http.StatusOK, dto.ToStatementResultResponse(result))
}
