package handlers

import (
	"fmt"
	"net/http"
	"time"

	"core-banking-statements/internal/errors"
	"core-banking-statements/internal/models"
	"core-banking-statements/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints are only mounted in development environments
type DevHandler struct {
	seeder services.LedgerSeederInterface
	now    func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(seeder services.LedgerSeederInterface) *DevHandler {
	return &DevHandler{seeder: seeder, now: time.Now}
}

// SeedLedger posts realistic test transactions to an account's ledger
//
// Method: POST /api/v1/dev/accounts/:id/ledger
// Environment: Development only
//
// Query parameters:
//   - purchases: Number of card purchases to generate (default: 50, max: 1000)
//   - days: Number of days of history ending today (default: 60, max: 365)
//
// Success Response: 200 OK
//   - transactions_created: Number of ledger entries written
func (h *DevHandler) SeedLedger(c echo.Context) error {
	accountID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid account ID"))
	}

	purchases := clamp(getIntQueryParam(c, "purchases", 50), 0, 1000)
	days := clamp(getIntQueryParam(c, "days", 60), 1, 365)

	to := models.DateOf(h.now())
	from := to.AddDate(0, 0, -days)

	created, err := h.seeder.Seed(c.Request().Context(), accountID, from, to, purchases)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "test ledger generated successfully",
		"transactions_created": created,
		"account_id":           accountID,
		"date_range": map[string]string{
			"start": from.Format(models.DateLayout),
			"end":   to.Format(models.DateLayout),
		},
	})
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
