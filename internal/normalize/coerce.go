package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Raw records come out of encoding/json as any; numeric fields arrive as
// float64 on legacy pages and as strings inside hydration blobs, so every
// coercion accepts both.

// coerceFloat converts a raw value to float64. nil (field absent or
// null) takes the default and still counts as success; a present but
// unparseable value fails.
func coerceFloat(v any, def float64) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return def, true
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// coerceInt converts a raw value to int, truncating fractional parts the
// way the source's minute field needs ("37.0" is minute 37).
func coerceInt(v any, def int) (int, bool) {
	f, ok := coerceFloat(v, float64(def))
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// rawString renders a raw value the way it would print: strings as-is,
// integral floats without a decimal point. Used for digit-string checks.
func rawString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}

// isDigits reports whether s is a non-empty pure digit string.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// optString returns a raw optional string field, empty when absent or
// not a string.
func optString(v any) string {
	s, _ := v.(string)
	return s
}

// round4 rounds to 4 decimal places, the precision coordinates are
// persisted at.
func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
