// Package services holds the quotation core: the per-service calculators,
// the field schema and validator, the quote codec, the cross-tab aggregator
// and the document renderers.
package services

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts a raw field value to a number. Empty or absent values
// and anything that does not parse to a finite number yield the fallback.
// Every calculator goes through this one parser so empty-value handling
// cannot diverge between services.
func ParseNumber(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return fallback
	}
	return n
}

// ParseFlag interprets a checkbox-style field value.
func ParseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}

// complexityFor resolves a complexity select value against a level table,
// falling back to the named default for empty or unknown keys.
func complexityFor(levels map[string]float64, raw, fallbackKey string) float64 {
	key := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := levels[key]; ok {
		return v
	}
	return levels[fallbackKey]
}

// orZero replaces NaN with zero. Cost formulas divide by values that can be
// zero when a quote is still blank; the quote should show 0, not NaN.
func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// Clamp limits v to the [min, max] range.
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MarginFraction converts a profit margin percentage to the clamped fraction
// used for sell-price inversion. 100% margin is disallowed (division by
// zero), so the fraction caps at 0.99.
func MarginFraction(percent float64) float64 {
	return Clamp(percent/100, 0, 0.99)
}

// ApplyMargin inverts an expense total into a sell price for the given
// margin fraction: expense / (1 - m), except at the 0.99 cap where the
// expense is returned unchanged.
func ApplyMargin(expense, marginFraction float64) float64 {
	if marginFraction >= 0.99 {
		return expense
	}
	return expense / (1 - marginFraction)
}
