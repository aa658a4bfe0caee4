package dto

import (
	"core-banking-statements/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceResponse is an account balance as of a business date.
type BalanceResponse struct {
	AccountID         uuid.UUID       `json:"account_id"`
	AsOfDate          string          `json:"as_of_date"`
	AccountBalance    decimal.Decimal `json:"account_balance"`
	HoldAmount        decimal.Decimal `json:"hold_amount"`
	AvailableBalance  decimal.Decimal `json:"available_balance"`
	AsOfTransactionID *uuid.UUID      `json:"as_of_transaction_id,omitempty"`
}

func ToBalanceResponse(snapshot *models.BalanceSnapshot) BalanceResponse {
	return BalanceResponse{
		AccountID:         snapshot.AccountID,
		AsOfDate:          snapshot.AsOfDate.Format(models.DateLayout),
		AccountBalance:    snapshot.AccountBalance,
		HoldAmount:        snapshot.HoldAmount,
		AvailableBalance:  snapshot.AccountBalance.Sub(snapshot.HoldAmount),
		AsOfTransactionID: snapshot.AsOfTransactionID,
	}
}

// AccountResponse is the account state returned after lifecycle changes.
type AccountResponse struct {
	ID             uuid.UUID       `json:"id"`
	AccountNo      string          `json:"account_no"`
	ProductType    string          `json:"product_type"`
	Status         string          `json:"status"`
	AccountBalance decimal.Decimal `json:"account_balance"`
	HoldAmount     decimal.Decimal `json:"hold_amount"`
	ClosedOn       string          `json:"closed_on,omitempty"`
	Version        int             `json:"version"`
}

func ToAccountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		ID:             account.ID,
		AccountNo:      account.AccountNo,
		ProductType:    account.ProductType,
		Status:         account.Status,
		AccountBalance: account.AccountBalance,
		HoldAmount:     account.HoldAmount,
		ClosedOn:       formatOptionalDate(account.ClosedOn),
		Version:        account.Version,
	}
}
