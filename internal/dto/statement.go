package dto

import (
	"time"

	"core-banking-statements/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Statement Request DTOs

// GenerateStatementsRequest asks for one statement document covering the
// given account statements.
type GenerateStatementsRequest struct {
	ProductType         string   `json:"product_type" validate:"required,product_type"`
	StatementType       string   `json:"statement_type" validate:"omitempty,statement_type"`
	PublishType         string   `json:"publish_type" validate:"required,publish_type"`
	AccountStatementIDs []string `json:"account_statement_ids" validate:"required,min=1,max=1000,dive,uuid"`
	DeleteSuperseded    *bool    `json:"delete_superseded,omitempty"`
}

// CreateProductStatementRequest registers a statement template for a product.
type CreateProductStatementRequest struct {
	ProductID      string `json:"product_id" validate:"required,uuid"`
	ProductType    string `json:"product_type" validate:"required,product_type"`
	StatementCode  string `json:"statement_code" validate:"required,min=1,max=50"`
	Recurrence     string `json:"recurrence" validate:"omitempty,recurrence"`
	SequencePrefix string `json:"sequence_prefix" validate:"max=20"`
	StatementType  string `json:"statement_type" validate:"omitempty,statement_type"`
	PublishType    string `json:"publish_type" validate:"omitempty,publish_type"`
	BatchType      string `json:"batch_type" validate:"omitempty,oneof=SINGLE CLIENT"`
}

// CreateAccountStatementRequest opens a statement cycle for an account.
// Empty recurrence and prefix inherit the template's values.
type CreateAccountStatementRequest struct {
	ProductStatementID string `json:"product_statement_id" validate:"required,uuid"`
	AccountID          string `json:"account_id" validate:"required,uuid"`
	Recurrence         string `json:"recurrence" validate:"omitempty,recurrence"`
	SequencePrefix     string `json:"sequence_prefix" validate:"max=20"`
}

// Statement Response DTOs

type StatementResultResponse struct {
	ID            uuid.UUID `json:"id"`
	ResultCode    string    `json:"result_code"`
	ProductType   string    `json:"product_type"`
	StatementType string    `json:"statement_type"`
	PublishType   string    `json:"publish_type"`
	ResultStatus  string    `json:"result_status"`
	ResultPath    string    `json:"result_path"`
	GeneratedOn   string    `json:"generated_on"`
	PublishedOn   string    `json:"published_on,omitempty"`
}

func ToStatementResultResponse(result *models.AccountStatementResult) StatementResultResponse {
	resp := StatementResultResponse{
		ID:            result.ID,
		ResultCode:    result.ResultCode,
		ProductType:   result.ProductType,
		StatementType: result.StatementType,
		PublishType:   result.PublishType,
		ResultStatus:  result.ResultStatus,
		ResultPath:    result.ResultPath,
		GeneratedOn:   result.GeneratedOn.Format(models.DateLayout),
	}
	if result.PublishedOn != nil {
		resp.PublishedOn = result.PublishedOn.Format(models.DateLayout)
	}
	return resp
}

type AccountStatementResponse struct {
	ID                 uuid.UUID       `json:"id"`
	ProductStatementID uuid.UUID       `json:"product_statement_id"`
	AccountID          uuid.UUID       `json:"account_id"`
	Recurrence         string          `json:"recurrence,omitempty"`
	SequencePrefix     string          `json:"sequence_prefix,omitempty"`
	StatementStatus    string          `json:"statement_status"`
	SequenceNo         int             `json:"sequence_no"`
	ActivatedOn        string          `json:"activated_on,omitempty"`
	StatementDate      string          `json:"statement_date,omitempty"`
	NextStatementDate  string          `json:"next_statement_date,omitempty"`
	StatementBalance   decimal.Decimal `json:"statement_balance"`
	ResultID           *uuid.UUID      `json:"result_id,omitempty"`
	Version            int             `json:"version"`
}

func ToAccountStatementResponse(statement *models.AccountStatement) AccountStatementResponse {
	return AccountStatementResponse{
		ID:                 statement.ID,
		ProductStatementID: statement.ProductStatementID,
		AccountID:          statement.AccountID,
		Recurrence:         statement.Recurrence,
		SequencePrefix:     statement.SequencePrefix,
		StatementStatus:    statement.StatementStatus,
		SequenceNo:         statement.SequenceNo,
		ActivatedOn:        formatOptionalDate(statement.ActivatedOn),
		StatementDate:      formatOptionalDate(statement.StatementDate),
		NextStatementDate:  formatOptionalDate(statement.NextStatementDate),
		StatementBalance:   statement.StatementBalance,
		ResultID:           statement.ResultID,
		Version:            statement.Version,
	}
}

type ProductStatementResponse struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductType    string    `json:"product_type"`
	StatementCode  string    `json:"statement_code"`
	Recurrence     string    `json:"recurrence,omitempty"`
	SequencePrefix string    `json:"sequence_prefix,omitempty"`
	StatementType  string    `json:"statement_type"`
	PublishType    string    `json:"publish_type"`
	BatchType      string    `json:"batch_type"`
	Version        int       `json:"version"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToProductStatementResponse(template *models.ProductStatement) ProductStatementResponse {
	return ProductStatementResponse{
		ID:             template.ID,
		ProductID:      template.ProductID,
		ProductType:    template.ProductType,
		StatementCode:  template.StatementCode,
		Recurrence:     template.Recurrence,
		SequencePrefix: template.SequencePrefix,
		StatementType:  template.StatementType,
		PublishType:    template.PublishType,
		BatchType:      template.BatchType,
		Version:        template.Version,
		CreatedAt:      template.CreatedAt,
	}
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(models.DateLayout)
}
