package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is the owner of one or more accounts.
type Client struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientNo    string    `gorm:"type:varchar(34);uniqueIndex;not null" json:"client_no"`
	DisplayName string    `gorm:"type:varchar(255);not null" json:"display_name"`
	LegalForm   string    `gorm:"type:varchar(50)" json:"legal_form,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	return nil
}

func (c *Client) TableName() string {
	return "clients"
}

const (
	IdentifierTypeIBAN       = "IBAN"
	IdentifierTypeAlias      = "ALIAS"
	IdentifierTypeInternalID = "INTERNAL_ID"
)

// AccountIdentifier is an external identifier of an account such as its IBAN.
type AccountIdentifier struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_account_identifiers_type,priority:1" json:"account_id"`
	IdentifierType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_account_identifiers_type,priority:2" json:"identifier_type"`
	Value          string    `gorm:"type:varchar(64);not null" json:"value"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

func (a *AccountIdentifier) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return nil
}

func (a *AccountIdentifier) TableName() string {
	return "account_identifiers"
}

// AccountIdentifiers maps identifier type to value for one account.
type AccountIdentifiers map[string]string

func (ids AccountIdentifiers) IBAN() string {
	return ids[IdentifierTypeIBAN]
}

// Other returns the alias, else the internal id, with the scheme it was
// found under. ok is false when neither exists.
func (ids AccountIdentifiers) Other() (value, scheme string, ok bool) {
	if v := ids[IdentifierTypeAlias]; v != "" {
		return v, IdentifierSchemeAlias, true
	}
	if v := ids[IdentifierTypeInternalID]; v != "" {
		return v, IdentifierSchemeBBAN, true
	}
	return "", "", false
}
