package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// MergeFunc combines the synthesized TransactionDetails of an entry with a
// channel supplied fragment.
type MergeFunc func(synthesized, fragment []interface{}) []interface{}

// MergeStructuredDetails splices channel supplied TransactionDetails
// fragments, keyed by entry reference, into a serialised statement document
// and returns the new document. content is not modified.
//
// An entry without EntryDetails gets one holding the fragment. Otherwise
// merge decides how the fragment joins EntryDetails[0].TransactionDetails.
// A fragment that is not valid JSON is logged and left out.
func MergeStructuredDetails(content []byte, details map[string]json.RawMessage, merge MergeFunc) ([]byte, error) {
	if len(details) == 0 {
		return content, nil
	}

	var root map[string]interface{}
	if err := decodeJSON(content, &root); err != nil {
		return nil, fmt.Errorf("failed to decode statement document: %w", err)
	}

	statements, _ := root["Statement"].([]interface{})
	for _, s := range statements {
		statement, ok := s.(map[string]interface{})
		if !ok {
			continue
		}
		entries, _ := statement["Entry"].([]interface{})
		for _, e := range entries {
			entry, ok := e.(map[string]interface{})
			if !ok {
				continue
			}
			ref, _ := entry["EntryReference"].(string)
			raw, ok := details[ref]
			if !ok {
				continue
			}

			fragment, err := parseFragment(raw)
			if err != nil {
				slog.Warn("ignoring malformed structured entry details",
					"entry_reference", ref,
					"error", err)
				continue
			}
			mergeEntry(entry, fragment, merge)
		}
	}

	merged, err := json.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to encode statement document: %w", err)
	}
	return merged, nil
}

func mergeEntry(entry map[string]interface{}, fragment []interface{}, merge MergeFunc) {
	entryDetails, _ := entry["EntryDetails"].([]interface{})
	if len(entryDetails) == 0 {
		entry["EntryDetails"] = []interface{}{
			map[string]interface{}{"TransactionDetails": fragment},
		}
		return
	}

	first, ok := entryDetails[0].(map[string]interface{})
	if !ok {
		first = map[string]interface{}{}
		entryDetails[0] = first
	}
	synthesized, _ := first["TransactionDetails"].([]interface{})
	first["TransactionDetails"] = merge(synthesized, fragment)
}

// parseFragment accepts a JSON array of TransactionDetails or a single object.
func parseFragment(raw json.RawMessage) ([]interface{}, error) {
	var v interface{}
	if err := decodeJSON(raw, &v); err != nil {
		return nil, err
	}

	switch f := v.(type) {
	case []interface{}:
		return f, nil
	case map[string]interface{}:
		return []interface{}{f}, nil
	default:
		return nil, fmt.Errorf("structured entry details must be an object or array, got %T", v)
	}
}

// decodeJSON keeps numbers as json.Number so amounts survive untouched.
func decodeJSON(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
