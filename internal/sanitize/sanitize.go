// Package sanitize coerces single untrusted values (from an LLM-generated
// scene description) into guaranteed-valid values. Every function is total:
// any input type, including NaN, ±Inf, strings, maps, and nil, yields a
// usable in-range result. Downstream code never re-checks leaf values.
package sanitize

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// ColorSentinel is the neutral grey used when a color cannot be parsed.
const ColorSentinel uint32 = 0xCCCCCC

// Scale bounds for any object scale factor.
const (
	MinScale float32 = 0.1
	MaxScale float32 = 10
)

// asNumber converts v to float32 if it is any numeric type.
// Returns ok=false for everything else (strings, bools, maps, nil).
func asNumber(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int32:
		return float32(n), true
	case int64:
		return float32(n), true
	default:
		return 0, false
	}
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// Color coerces v into a packed RGB integer in [0, 0xFFFFFF].
// Numbers are floored, negatives clamp to 0, overflow clamps to 0xFFFFFF.
// Strings are parsed as hex with an optional "0x" or "#" prefix.
// Anything unparseable (including NaN/Inf) yields ColorSentinel.
func Color(v any) uint32 {
	if n, ok := asNumber(v); ok {
		if !isFinite(n) {
			return ColorSentinel
		}
		if n <= 0 {
			return 0
		}
		if n >= 0xFFFFFF {
			return 0xFFFFFF
		}
		return uint32(n)
	}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "#")
		s = strings.TrimPrefix(s, "0x")
		s = strings.TrimPrefix(s, "0X")
		packed, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			return ColorSentinel
		}
		if packed > 0xFFFFFF {
			return 0xFFFFFF
		}
		return uint32(packed)
	}
	return ColorSentinel
}

// Scale coerces v into a scale factor in [MinScale, MaxScale].
// Non-numbers and non-finite numbers count as 1 before clamping.
func Scale(v any) float32 {
	n, ok := asNumber(v)
	if !ok || !isFinite(n) {
		n = 1
	}
	if n < MinScale {
		return MinScale
	}
	if n > MaxScale {
		return MaxScale
	}
	return n
}

// Scalar returns v as a finite float32, or def when v is not a finite number.
func Scalar(v any, def float32) float32 {
	n, ok := asNumber(v)
	if !ok || !isFinite(n) {
		return def
	}
	return n
}

// Dimension coerces v into a positive extent no smaller than min.
// Missing, zero, and non-finite values count as 1 before the floor applies,
// so a dimension never collapses geometry.
func Dimension(v any, min float32) float32 {
	n, ok := asNumber(v)
	if !ok || !isFinite(n) || n == 0 {
		n = 1
	}
	return math32.Max(min, n)
}

// Count coerces v into an integer count no smaller than min (e.g. polygon
// sides, subdivisions). Non-numbers count as min.
func Count(v any, min int32) int32 {
	n, ok := asNumber(v)
	if !ok || !isFinite(n) {
		return min
	}
	c := int32(math32.Floor(n))
	if c < min {
		return min
	}
	return c
}
