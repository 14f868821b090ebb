package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is a JSON-shaped row in a collection. Typed entities cross this
// boundary via Encode/Decode so the snapshot stays a single JSON document.
type Record = map[string]any

// Encode converts a typed value into a Record through a JSON round trip.
func Encode(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var rec Record
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// Decode converts a Record back into a typed value.
func Decode(rec Record, out any) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	return nil
}

// DecodeSlice converts a sequence of records into a typed slice.
func DecodeSlice[T any](recs []Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		var v T
		if err := Decode(rec, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// recordID returns the record's id and whether it counts as assigned.
// Zero and missing ids are both unassigned, so freshly encoded entities
// with an int id of 0 get one allocated on insert.
func recordID(rec Record) (any, bool) {
	id, ok := rec["id"]
	if !ok || id == nil {
		return nil, false
	}
	if f, isNum := toFloat(id); isNum && f == 0 {
		return nil, false
	}
	if s, isStr := id.(string); isStr && s == "" {
		return nil, false
	}
	return id, true
}

// toFloat normalizes the numeric types a Record can carry after JSON
// decoding (json.Number, float64) plus native ints from direct inserts.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// looseEqual compares two field values the way the API's callers expect:
// 3, 3.0 and "3" all match each other, while two strings compare verbatim.
func looseEqual(a, b any) bool {
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return as == bs
	}
	if af, ok := toFloat(a); ok {
		if bf, ok2 := toFloat(b); ok2 {
			return af == bf
		}
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// matchesConditions reports whether a record satisfies every condition
// (implicit AND). A string condition containing '%' is a case-insensitive
// substring match on the stringified field; anything else is loose equality.
func matchesConditions(rec Record, conditions map[string]any) bool {
	for field, want := range conditions {
		got, ok := rec[field]
		if s, isStr := want.(string); isStr && strings.Contains(s, "%") {
			if !ok || got == nil {
				return false
			}
			needle := strings.ToLower(strings.ReplaceAll(s, "%", ""))
			if !strings.Contains(strings.ToLower(fmt.Sprint(got)), needle) {
				return false
			}
			continue
		}
		if !ok || !looseEqual(got, want) {
			return false
		}
	}
	return true
}
