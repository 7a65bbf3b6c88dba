package importer

import (
	"strconv"
	"strings"

	"github.com/vehicle-catalog-api/internal/sanitize"
)

// The external source serializes booleans and numbers inconsistently: true,
// "true", 1, "1", "0", 0.0 all occur for the same field across exports.
// Coercion is centralized here with exhaustive branches so the literal "0"
// never gets truthy-coerced somewhere in the mapping code.

// coerceBool interprets bool, numeric and string renditions of a flag.
func coerceBool(v any) bool {
	switch val := sanitize.CleanValue(v).(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case int:
		return val != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "1", "si", "sí", "yes":
			return true
		case "false", "0", "no", "":
			return false
		default:
			return false
		}
	default:
		return false
	}
}

// coerceFloat interprets numeric and numeric-string values, 0 otherwise.
// Comma decimal separators from the spanish locale are accepted.
func coerceFloat(v any) float64 {
	switch val := sanitize.CleanValue(v).(type) {
	case nil:
		return 0
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(val), ",", ".")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

// coerceInt interprets numeric and numeric-string values, truncating floats.
func coerceInt(v any) int {
	return int(coerceFloat(v))
}

// coerceString stringifies scalars, "" otherwise.
func coerceString(v any) string {
	switch val := sanitize.CleanValue(v).(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// coerceStringSlice normalizes array-ish values into a clean string slice.
// A bare string becomes a one-element slice; empties are dropped.
func coerceStringSlice(v any) []string {
	var out []string
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		for _, s := range val {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	case []any:
		for _, item := range val {
			if s := coerceString(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		if trimmed := strings.TrimSpace(val); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// coerceAnySlice passes arrays through untouched so list fields survive
// CleanValue's first-element collapsing.
func coerceAnySlice(v any) []any {
	switch val := v.(type) {
	case []any:
		return val
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out
	case nil:
		return nil
	default:
		return []any{val}
	}
}
