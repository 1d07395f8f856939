// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCurrency formats a USD amount with comma grouping and two decimals.
// e.g., 1234.5 -> "$1,234.50", -42 -> "-$42.00". NaN/Inf formats as zero.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	neg := amount < 0
	cents := math.Round(math.Abs(amount) * 100)
	dollars := int64(cents) / 100
	rem := int64(cents) % 100

	s := fmt.Sprintf("$%s.%02d", groupThousands(dollars), rem)
	if neg {
		return "-" + s
	}
	return s
}

// FormatAbbreviatedCurrency abbreviates large amounts to one decimal place:
// 1,000,000 and up -> "$X.XM", 1,000 and up -> "$X.XK", everything else
// falls back to FormatCurrency. Halves round away from zero.
func FormatAbbreviatedCurrency(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.1fM", roundTenth(amount/1_000_000))
	case amount >= 1_000:
		return fmt.Sprintf("$%.1fK", roundTenth(amount/1_000))
	default:
		return FormatCurrency(amount)
	}
}

// FormatPercent formats a 0-100 percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// roundTenth rounds to one decimal, halves away from zero. %.1f alone would
// round half to even.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// groupThousands adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func groupThousands(n int64) string {
	if n < 0 {
		return "-" + groupThousands(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
