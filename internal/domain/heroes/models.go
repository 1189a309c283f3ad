package heroes

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotText is returned for JSON objects and arrays where a text value is expected.
var ErrNotText = errors.New("value is not a JSON scalar")

// Editable hero fields.
const (
	FieldName  = "name"
	FieldLevel = "level"
	FieldPower = "power"
)

// Hero is a single roster entry. ID is assigned once at creation.
type Hero struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
	Power string `json:"power"`
}

// New returns a hero with the given id and blank fields.
func New(id string) Hero {
	return Hero{ID: id}
}

// IsEditable reports whether field may be changed through Set.
func IsEditable(field string) bool {
	switch field {
	case FieldName, FieldLevel, FieldPower:
		return true
	default:
		return false
	}
}

// Set assigns value to an editable field and reports whether it did.
// The id is never writable.
func (h *Hero) Set(field, value string) bool {
	switch field {
	case FieldName:
		h.Name = value
	case FieldLevel:
		h.Level = value
	case FieldPower:
		h.Power = value
	default:
		return false
	}
	return true
}

// UnmarshalJSON accepts any JSON scalar for the text fields, so documents
// written by older clients with numeric levels still load. Unknown keys are dropped.
func (h *Hero) UnmarshalJSON(data []byte) error {
	var doc struct {
		ID    json.RawMessage `json:"id"`
		Name  json.RawMessage `json:"name"`
		Level json.RawMessage `json:"level"`
		Power json.RawMessage `json:"power"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	var decoded Hero
	for _, f := range []struct {
		raw json.RawMessage
		dst *string
	}{
		{doc.ID, &decoded.ID},
		{doc.Name, &decoded.Name},
		{doc.Level, &decoded.Level},
		{doc.Power, &decoded.Power},
	} {
		if len(f.raw) == 0 {
			continue
		}
		text, err := DecodeText(f.raw)
		if err != nil {
			return err
		}
		*f.dst = text
	}
	*h = decoded
	return nil
}

// DecodeText converts a JSON scalar to the text stored on a hero. Strings are
// unquoted, null is empty and numbers and booleans keep their JSON spelling.
func DecodeText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", ErrNotText
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case 'n':
		return "", nil
	case '{', '[':
		return "", ErrNotText
	default:
		return string(data), nil
	}
}
