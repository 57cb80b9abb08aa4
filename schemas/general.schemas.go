package schemas

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

// ErrorResponse struct
type ErrorResponse struct {
	Error string
}

// StatusResponse struct
type StatusResponse struct {
	Status string `json:"status"`
}

// Body is a request body already validated as a JSON object
type Body map[string]jsoniter.RawMessage

// Has reports whether key is present, even with a null value
func (b Body) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// HasAny reports whether any of keys is present
func (b Body) HasAny(keys ...string) bool {
	for _, key := range keys {
		if b.Has(key) {
			return true
		}
	}
	return false
}

// IsObject reports whether key is present and holds a JSON object
func (b Body) IsObject(key string) bool {
	raw, ok := b[key]
	if !ok {
		return false
	}
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

// IsNull reports whether key is present with a JSON null value
func (b Body) IsNull(key string) bool {
	raw, ok := b[key]
	return ok && string(bytes.TrimSpace(raw)) == "null"
}

// HasNull reports whether any of keys is present with a JSON null value
func (b Body) HasNull(keys ...string) bool {
	for _, key := range keys {
		if b.IsNull(key) {
			return true
		}
	}
	return false
}
