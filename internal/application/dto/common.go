package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse is the body for operations with nothing else to return.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// IntOr coerces a loosely typed JSON value to an integer, falling back to
// def when the value is missing or unparseable. Clients send quantities as
// numbers or strings interchangeably.
func IntOr(v any, def int) int {
	switch n := v.(type) {
	case nil:
		return def
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return def
		}
		return int(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return def
		}
		return int(f)
	default:
		return def
	}
}
