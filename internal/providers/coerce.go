package providers

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The upstream feeds ship numeric fields as numbers or strings
// interchangeably, and boolean flags as "1"/1/true. These helpers coerce the
// loose shapes in one place so every normalizer treats them identically.

// LooseInt parses a numeric field that may arrive as a JSON number, a
// json.Number, or a numeric string. It reports false when the value cannot be
// read as an integer.
func LooseInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		if f, err := v.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case string:
		trimmed := strings.TrimSpace(v)
		if n, err := strconv.Atoi(trimmed); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// LooseID renders an identifier field (number or string) as its string form.
// Empty and non-scalar values report false.
func LooseID(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed, true
		}
		return "", false
	case float64:
		return strconv.FormatInt(int64(v), 10), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

// IsNumeric reports whether a scalar value is a number or a digits-only string.
func IsNumeric(value any) bool {
	switch v := value.(type) {
	case float64, int, int64, json.Number:
		return true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return false
		}
		_, err := strconv.Atoi(trimmed)
		return err == nil
	default:
		return false
	}
}

// Truthy reports whether a boolean-like flag is set, accepting true, 1, and "1".
func Truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v == 1
	case int:
		return v == 1
	case string:
		return v == "1"
	case json.Number:
		return v.String() == "1"
	default:
		return false
	}
}
