package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ResultPublishedEvent is announced once per published statement result.
type ResultPublishedEvent struct {
	ResultID    uuid.UUID       `json:"result_id"`
	ResultCode  string          `json:"result_code"`
	ProductType string          `json:"product_type"`
	PublishType string          `json:"publish_type"`
	ResultPath  string          `json:"result_path"`
	PublishedOn string          `json:"published_on"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}
