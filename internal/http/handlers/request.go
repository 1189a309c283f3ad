package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	domainheroes "heroes-service/internal/domain/heroes"
)

const maxBodyBytes = 1 << 20

var errInvalidJSON = errors.New("invalid json")

// decodeObject decodes a non-empty JSON object body into dst. Anything else
// (missing body, malformed JSON, arrays, scalars, {}) is errInvalidJSON.
func decodeObject(r *http.Request, dst any) error {
	if r.Body == nil {
		return errInvalidJSON
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errInvalidJSON
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return errInvalidJSON
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return errInvalidJSON
	}
	return nil
}

type updateHeroRequest struct {
	ID    *string   `json:"id"`
	Field *string   `json:"field"`
	Value textValue `json:"value"`
}

type deleteHeroRequest struct {
	ID *string `json:"id"`
}

// textValue accepts a JSON string, number or boolean. Non-strings keep their
// JSON text, so {"value": 10} stores "10". null decodes to "".
type textValue string

func (v *textValue) UnmarshalJSON(data []byte) error {
	text, err := domainheroes.DecodeText(data)
	if err != nil {
		return errInvalidJSON
	}
	*v = textValue(text)
	return nil
}
