// Package chart turns a budget snapshot into numeric chart geometry:
// pie slice angles and bar rows with a shared scale. It produces numbers
// only; painting them is the caller's job.
package chart

import (
	"math"

	"bcalc/internal/budget"
	"bcalc/internal/model"
)

// UnallocatedID is the synthetic category for the income share no category
// claims.
const UnallocatedID = "unallocated"

// UnallocatedColor is the fixed color of the trailing unallocated slice.
const UnallocatedColor = "#6c757d"

// Slice is one pie arc. Angles are in degrees, 0 at the positive x-axis,
// increasing clockwise in screen coordinates.
type Slice struct {
	Category   string
	Label      string
	Color      string
	StartAngle float64
	EndAngle   float64
	Percent    float64 // share of income, 0-100
}

// Sweep is the angular width of the slice.
func (sl Slice) Sweep() float64 {
	return sl.EndAngle - sl.StartAngle
}

// LargeArc reports whether an SVG-style path for this slice needs the
// large-arc flag set.
func (sl Slice) LargeArc() bool {
	return sl.Sweep() > 180
}

// ArcPoints returns the arc's start and end coordinates for a circle of
// radius r centered at (cx, cy).
func (sl Slice) ArcPoints(cx, cy, r float64) (x1, y1, x2, y2 float64) {
	x1 = cx + r*math.Cos(sl.StartAngle*math.Pi/180)
	y1 = cy + r*math.Sin(sl.StartAngle*math.Pi/180)
	x2 = cx + r*math.Cos(sl.EndAngle*math.Pi/180)
	y2 = cy + r*math.Sin(sl.EndAngle*math.Pi/180)
	return x1, y1, x2, y2
}

// Pie walks the category order once with a running angle accumulator and
// emits one slice per category with a nonzero amount, plus a trailing
// unallocated slice when income is not fully allocated.
//
// ok is false when income is zero or unset: there is no distribution to
// draw, and reporting that beats dividing by zero.
func Pie(s model.Snapshot) (slices []Slice, ok bool) {
	income := budget.ParseAmount(s.Income)
	if income <= 0 {
		return nil, false
	}

	angle := 0.0
	for _, id := range s.Order {
		amount := budget.ParseAmount(s.Amounts[id])
		if amount == 0 {
			continue
		}
		pct := amount / income * 100
		sweep := pct / 100 * 360
		slices = append(slices, Slice{
			Category:   id,
			Label:      budget.DisplayName(id),
			Color:      budget.Color(s, id),
			StartAngle: angle,
			EndAngle:   angle + sweep,
			Percent:    pct,
		})
		angle += sweep
	}

	if remaining := budget.Remaining(s); remaining > 0 {
		pct := remaining / income * 100
		slices = append(slices, Slice{
			Category:   UnallocatedID,
			Label:      "Unallocated",
			Color:      UnallocatedColor,
			StartAngle: angle,
			EndAngle:   angle + pct/100*360,
			Percent:    pct,
		})
	}

	if len(slices) == 0 {
		return nil, false
	}
	return slices, true
}
