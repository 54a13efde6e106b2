package models

import (
	"encoding/json"
	"fmt"
)

// ToDoc flattens a typed model into the raw field map the document store
// expects. Field names follow the json tags, which match the live collection
// schemas.
func ToDoc(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// FromDoc decodes a raw field map into a typed model. Unknown fields are
// dropped; stored documents accumulated extra keys over time and only the
// canonical schema survives the boundary.
func FromDoc(data map[string]interface{}, v interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}
