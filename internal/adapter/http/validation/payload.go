package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

var errInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order; plain dates are read as midnight UTC.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, errInvalidDate
}

// parseNullableDate reads a date field that may be omitted, null or set.
// The returned bool reports whether the field was present in raw at all.
func parseNullableDate(raw map[string]json.RawMessage, field string, value *string) (*time.Time, bool, error) {
	if !hasJSONField(raw, field) || isJSONNull(raw[field]) {
		return nil, hasJSONField(raw, field), nil
	}
	if value == nil {
		return nil, true, errInvalidDate
	}
	parsed, err := parseDate(*value)
	if err != nil {
		return nil, true, err
	}
	return &parsed, true, nil
}

// rejectsNull reports whether field was sent as explicit null although it cannot be cleared.
func rejectsNull(raw map[string]json.RawMessage, field string) bool {
	value, ok := raw[field]
	return ok && isJSONNull(value)
}

func hasAnyField(raw map[string]json.RawMessage, fields ...string) bool {
	for _, field := range fields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
