package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONBMap represents a JSONB map field for PostgreSQL
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// String returns the value stored under key as a string, or "" when absent.
func (m JSONBMap) String(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}
