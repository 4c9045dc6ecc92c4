// Package validation provides generic input sanitization and URL checks.
package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidateURL reports whether raw has both a scheme and a host.
// A string the parser rejects is reported as invalid.
func ValidateURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Sanitize walks a decoded JSON structure and trims string values.
//
// Values held directly in a map are stringified and trimmed unless they are
// maps or slices, which are sanitized recursively. Scalars held directly in a
// slice are returned untouched. Any other input is returned as is.
// Stringification follows Go formatting: nil becomes "", booleans become
// "true"/"false" and integral numbers drop the fraction ("3", not "3.0").
func Sanitize(data any) any {
	switch v := data.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			if isContainer(item) {
				out[k] = Sanitize(item)
				continue
			}
			out[k] = strings.TrimSpace(stringify(item))
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			if isContainer(item) {
				out[i] = Sanitize(item)
				continue
			}
			out[i] = item
		}
		return out
	default:
		return data
	}
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(x)
	}
}
