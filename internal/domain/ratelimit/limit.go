package ratelimit

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NewRule builds a validated Rule from loosely typed inputs as they arrive
// from JSON: rates may be native numbers or numeric strings. The rate must
// coerce to a positive integer. A burst that is absent or non-numeric falls
// back to defaultBurst; an explicit zero is kept, a negative value is
// rejected.
func NewRule(rate, burst any, defaultBurst int) (Rule, error) {
	rpm, ok := coerceInt(rate)
	if !ok || rpm <= 0 {
		return Rule{}, ErrNonPositiveRate
	}

	burstSize := defaultBurst
	if b, ok := coerceInt(burst); ok {
		if b < 0 {
			return Rule{}, ErrNegativeBurst
		}
		burstSize = b
	}

	return Rule{RequestsPerMinute: rpm, BurstSize: burstSize}, nil
}

// coerceInt converts the numeric shapes a decoded JSON value can take into
// an int. Fractional parts are truncated toward zero. Non-numeric values,
// including empty and unparsable strings, report false.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}
