package chart

import (
	"bcalc/internal/budget"
	"bcalc/internal/model"
)

// IncomeBarColor is the fixed color of the trailing income reference bar.
const IncomeBarColor = "#28a745"

// Bar is one horizontal bar row: the monthly value, the value scaled by the
// projection months, and the drawn length in the caller's drawing units.
type Bar struct {
	Category string
	Label    string
	Color    string
	Monthly  float64
	Scaled   float64
	Length   float64
}

// BarLayout is the full bar-chart geometry for one snapshot and time frame.
type BarLayout struct {
	Bars   []Bar
	Income Bar // reference bar, drawn last

	// Scale converts a scaled value into a drawn length. Every bar,
	// including the income reference, uses this one scale.
	Scale float64

	// RowHeight is the fixed per-row height; only bar length encodes value.
	RowHeight float64

	Months int
}

// Bars lays out one bar per category with a positive amount, scaled so the
// largest category fills the available width, plus an income*months
// reference bar at the same scale.
//
// ok is false when income is zero/unset or no category qualifies. When all
// scaled values are somehow zero the scale is pinned to zero rather than
// dividing by it.
func Bars(s model.Snapshot, months int, width, height float64) (BarLayout, bool) {
	income := budget.ParseAmount(s.Income)
	if income <= 0 || months <= 0 {
		return BarLayout{}, false
	}

	var bars []Bar
	maxScaled := 0.0
	for _, id := range s.Order {
		amount := budget.ParseAmount(s.Amounts[id])
		if amount <= 0 {
			continue
		}
		b := Bar{
			Category: id,
			Label:    budget.DisplayName(id),
			Color:    budget.Color(s, id),
			Monthly:  amount,
			Scaled:   amount * float64(months),
		}
		if b.Scaled > maxScaled {
			maxScaled = b.Scaled
		}
		bars = append(bars, b)
	}
	if len(bars) == 0 {
		return BarLayout{}, false
	}

	scale := 0.0
	if maxScaled > 0 {
		scale = width / maxScaled
	}
	for i := range bars {
		bars[i].Length = bars[i].Scaled * scale
	}

	ref := Bar{
		Category: "income",
		Label:    "Total Income",
		Color:    IncomeBarColor,
		Monthly:  income,
		Scaled:   income * float64(months),
	}
	ref.Length = ref.Scaled * scale

	return BarLayout{
		Bars:      bars,
		Income:    ref,
		Scale:     scale,
		RowHeight: height / float64(len(bars)),
		Months:    months,
	}, true
}
