package engine

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// NORMALIZER — raw text → typed optional values
// ============================================================================
// Census exports are messy: numeric columns carry stray text, floats where
// integers are expected, empty cells. Nothing here returns an error — a cell
// that cannot be parsed becomes a missing marker and the pipeline moves on.
// ============================================================================

// ParseCode converts a raw cell into an integer category code. The cell is
// parsed as a number and truncated toward zero, so "11", "11.0" and even
// "11.7" all normalize to 11. Anything non-numeric is missing.
func ParseCode(raw string) Code {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Code{}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return Code{Value: n, Valid: true}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Code{}
	}
	return Code{Value: int(f), Valid: true}
}

// ParseMeasure converts a raw cell into a float measurement. Non-numeric
// input (including NaN and infinities) is missing.
func ParseMeasure(raw string) Measure {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Measure{}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Measure{}
	}
	return Measure{Value: f, Valid: true}
}
