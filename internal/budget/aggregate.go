package budget

import (
	"math"
	"strconv"
	"strings"

	"bcalc/internal/model"
)

// ParseAmount parses a stored amount or income string. Empty, unparseable,
// or non-finite input is treated as zero — data entry is never interrupted
// by strict validation.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// TotalAllocated sums every category amount.
func TotalAllocated(s model.Snapshot) float64 {
	total := 0.0
	for _, id := range s.Order {
		total += ParseAmount(s.Amounts[id])
	}
	return total
}

// Remaining is income minus the allocated total. Negative remaining means
// overspend and is reported as-is, never clamped.
func Remaining(s model.Snapshot) float64 {
	return ParseAmount(s.Income) - TotalAllocated(s)
}

// Percentage returns amount as a share of income, 0-100. Zero when income
// or amount is zero/unset. Not clamped; display clamping is the caller's
// concern.
func Percentage(amount, income float64) float64 {
	if income == 0 || amount == 0 {
		return 0
	}
	return amount / income * 100
}

// Aggregate computes the full derived monthly result for a snapshot.
func Aggregate(s model.Snapshot) model.AggregateResult {
	income := ParseAmount(s.Income)
	res := model.AggregateResult{
		Income:      income,
		Percentages: make(map[string]float64, len(s.Order)),
	}
	for _, id := range s.Order {
		amount := ParseAmount(s.Amounts[id])
		res.TotalAllocated += amount
		res.Percentages[id] = Percentage(amount, income)
	}
	res.Remaining = income - res.TotalAllocated
	return res
}
