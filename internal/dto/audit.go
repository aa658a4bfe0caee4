package dto

import (
	"time"

	"core-banking-statements/internal/models"

	"github.com/google/uuid"
)

// AuditLogResponse is one recorded operator action.
type AuditLogResponse struct {
	ID         uuid.UUID              `json:"id"`
	Operator   string                 `json:"operator"`
	Action     string                 `json:"action"`
	Resource   string                 `json:"resource"`
	ResourceID string                 `json:"resource_id,omitempty"`
	TraceID    string                 `json:"trace_id,omitempty"`
	IPAddress  string                 `json:"ip_address,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// AuditLogListResponse is a page of the audit trail.
type AuditLogListResponse struct {
	Entries    []AuditLogResponse `json:"entries"`
	Pagination PaginationMeta     `json:"pagination"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func ToAuditLogListResponse(logs []*models.AuditLog, page, limit int, total int64) AuditLogListResponse {
	entries := make([]AuditLogResponse, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, AuditLogResponse{
			ID:         log.ID,
			Operator:   log.Operator,
			Action:     log.Action,
			Resource:   log.Resource,
			ResourceID: log.ResourceID,
			TraceID:    log.TraceID,
			IPAddress:  log.IPAddress,
			Metadata:   log.Metadata,
			CreatedAt:  log.CreatedAt,
		})
	}

	return AuditLogListResponse{
		Entries:    entries,
		Pagination: PaginationMeta{Page: page, Limit: limit, Total: total},
	}
}
