package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	disallowed   = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	repeatedDash = regexp.MustCompile(`-+`)

	markSet = runes.In(unicode.Mn)
)

// stripMarks builds an NFD decompose, drop combining marks, recompose chain.
// Turns "Híbrid" into "Hibrid". Chained transformers carry state, so each
// caller gets its own; Slugify runs on concurrent goroutines.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(markSet), norm.NFC)
}

// CleanValue normalizes the heterogeneous shapes the external source emits
// into either nil or a meaningful scalar. Arrays collapse to their first
// non-empty element; blank strings become nil. Callers never need to
// special-case arrays or blank strings downstream.
func CleanValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		for _, item := range val {
			if cleaned := CleanValue(item); cleaned != nil {
				return cleaned
			}
		}
		return nil
	case []string:
		for _, item := range val {
			if strings.TrimSpace(item) != "" {
				return item
			}
		}
		return nil
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		return val
	default:
		return v
	}
}

// CleanString applies CleanValue and stringifies the result, returning ""
// when the value cleans to nil.
func CleanString(v any) string {
	cleaned := CleanValue(v)
	if cleaned == nil {
		return ""
	}
	if s, ok := cleaned.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// Slugify turns an arbitrary label into a deterministic URL-safe slug:
// lowercase, diacritics stripped, anything outside [a-z0-9 -] removed,
// whitespace runs collapsed to single dashes. Returns "" when the input
// cleans to nil. This is the fallback used when no reference entry matches.
func Slugify(v any) string {
	s := CleanString(v)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	if stripped, _, err := transform.String(stripMarks(), s); err == nil {
		s = stripped
	}
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = repeatedDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
