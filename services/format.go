package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatPHP formats an amount as Philippine pesos with thousands grouping
// and exactly two decimal places, e.g. "PHP 12,345.68".
func FormatPHP(amount float64) string {
	return "PHP " + FormatAmount(amount)
}

// FormatAmount formats a number with thousands grouping and two decimals.
func FormatAmount(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	result := groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FormatDays renders a day count for display, e.g. "3 days" or "2.5 days".
func FormatDays(days float64) string {
	if days == 1 {
		return "1 day"
	}
	if days == math.Trunc(days) {
		return fmt.Sprintf("%.0f days", days)
	}
	return fmt.Sprintf("%.1f days", days)
}

// FormatHours renders an hour count for display, e.g. "2.5 h".
func FormatHours(hours float64) string {
	if hours == math.Trunc(hours) {
		return fmt.Sprintf("%.0f h", hours)
	}
	return fmt.Sprintf("%.1f h", hours)
}

// FormatMinutes renders a minute count for display, e.g. "45 min".
func FormatMinutes(minutes float64) string {
	if minutes == math.Trunc(minutes) {
		return fmt.Sprintf("%.0f min", minutes)
	}
	return fmt.Sprintf("%.1f min", minutes)
}

// FormatQty renders a quantity: whole numbers without decimals, fractional
// values with two decimal places.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
