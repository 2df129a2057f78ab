package query

import (
	"bytes"
	"encoding/json"

	"github.com/lunchdesk/lunchdesk/internal/logger"
)

// Record is a schema-less item, used by consumers that render arbitrary columns
type Record = map[string]any

// Envelope is the wrapper returned by the backend around a data payload.
// Data is kept raw so that a payload of an unexpected shape still decodes.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Fields decodes the data payload as an object. It returns nil when the
// payload is missing or is not an object.
func (e Envelope) Fields() map[string]json.RawMessage {
	trimmed := bytes.TrimSpace(e.Data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil
	}
	return fields
}

// NewEnvelope builds a successful envelope whose data object holds fields
func NewEnvelope(fields map[string]any) (Envelope, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Success: true, Data: raw}, nil
}

// Pagination is the pagination metadata found in an envelope
type Pagination struct {
	Page      int `json:"page"`
	Limit     int `json:"limit,omitempty"`
	Total     int `json:"total,omitempty"`
	TotalPage int `json:"totalPage"`
}

// Result is a normalized page of results
type Result[T any] struct {
	Items      []T
	Page       int
	TotalPages int
}

// Normalize extracts a page of items and the pagination metadata from an
// envelope. It never fails: a missing or malformed item field yields an empty
// slice and missing pagination yields page 1 of 1.
func Normalize[T any](env Envelope, resultsKey string) Result[T] {
	if resultsKey == "" {
		resultsKey = DefaultResultsKey
	}

	res := Result[T]{
		Items:      []T{},
		Page:       1,
		TotalPages: 1,
	}

	fields := env.Fields()
	if fields == nil {
		if t := bytes.TrimSpace(env.Data); len(t) > 0 && string(t) != "null" {
			logger.Warnf("Ignoring list payload that is not an object: %.64s", env.Data)
		}
		return res
	}

	if raw, ok := fields[resultsKey]; ok && isJSONArray(raw) {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			logger.WarnWithFields("Discarding malformed results", map[string]interface{}{
				"results_key": resultsKey,
				"error":       err.Error(),
			})
		} else if items != nil {
			res.Items = items
		}
	}

	if raw, ok := fields["pagination"]; ok {
		var p Pagination
		if err := json.Unmarshal(raw, &p); err == nil {
			if p.Page > 0 {
				res.Page = p.Page
			}
			if p.TotalPage > 0 {
				res.TotalPages = p.TotalPage
			}
		}
	}

	return res
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
