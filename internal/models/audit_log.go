package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Operator actions recorded in the audit trail.
const (
	AuditActionStatementsGenerated       = "statements_generated"
	AuditActionResultPublished           = "result_published"
	AuditActionProductStatementCreated   = "product_statement_created"
	AuditActionAccountStatementCreated   = "account_statement_created"
	AuditActionAccountStatementActivated = "account_statement_activated"
	AuditActionAccountStatementInactive  = "account_statement_inactivated"
	AuditActionAccountClosed             = "account_closed"
	AuditActionLedgerSeeded              = "ledger_seeded"
)

// Audited resources.
const (
	AuditResourceAccount          = "account"
	AuditResourceAccountStatement = "account_statement"
	AuditResourceProductStatement = "product_statement"
	AuditResourceStatementResult  = "statement_result"
)

var auditActions = map[string]bool{
	AuditActionStatementsGenerated:       true,
	AuditActionResultPublished:           true,
	AuditActionProductStatementCreated:   true,
	AuditActionAccountStatementCreated:   true,
	AuditActionAccountStatementActivated: true,
	AuditActionAccountStatementInactive:  true,
	AuditActionAccountClosed:             true,
	AuditActionLedgerSeeded:              true,
}

// IsAuditAction reports whether action is a recorded operator action.
func IsAuditAction(action string) bool {
	return auditActions[action]
}

// AuditLog is one operator action. Operator is the token subject; operators
// live in the identity provider so there is no foreign key.
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Operator   string    `gorm:"type:varchar(255);not null;index" json:"operator"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string    `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string    `gorm:"type:varchar(255);index" json:"resource_id,omitempty"`
	TraceID    string    `gorm:"type:varchar(64)" json:"trace_id,omitempty"`
	IPAddress  string    `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string    `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   JSONBMap  `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) GetMetadata(key string, defaultValue interface{}) interface{} {
	if value, exists := al.Metadata[key]; exists {
		return value
	}
	return defaultValue
}

func (al *AuditLog) String() string {
	return fmt.Sprintf("AuditLog[Operator: %s, Action: %s, Resource: %s/%s, Trace: %s, Time: %s]",
		al.Operator, al.Action, al.Resource, al.ResourceID, al.TraceID, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

// AuditLogFilter narrows an audit trail listing. Zero fields do not filter.
type AuditLogFilter struct {
	Operator   string
	Action     string
	ResourceID string
	From       *time.Time
	To         *time.Time
	Offset     int
	Limit      int
}
