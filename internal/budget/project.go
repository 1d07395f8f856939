package budget

import (
	"fmt"

	"bcalc/internal/model"
)

// TimeFrames is the enumerated set of month counts offered by the UI.
// Project accepts any positive month count; these just get nicer labels.
var TimeFrames = []int{1, 3, 6, 12, 24, 60}

// TimeFrameLabel returns the canonical label for a month count, falling back
// to a generic "<N> Months" for anything outside the enumerated set.
func TimeFrameLabel(months int) string {
	switch months {
	case 1:
		return "1 Month"
	case 3:
		return "3 Months (Quarterly)"
	case 6:
		return "6 Months (Semi-Annually)"
	case 12:
		return "12 Months (Yearly)"
	case 24:
		return "24 Months (2 Years)"
	case 60:
		return "60 Months (5 Years)"
	}
	return fmt.Sprintf("%d Months", months)
}

// SetTimeFrame validates and stores the selected projection time frame.
func SetTimeFrame(s *model.Snapshot, months int) error {
	if months <= 0 {
		return fmt.Errorf("%d: %w", months, ErrInvalidTimeFrame)
	}
	s.TimeFrameMonths = months
	return nil
}

// Project scales the aggregate totals and every category amount by months.
func Project(s model.Snapshot, months int) (model.ProjectedResult, error) {
	if months <= 0 {
		return model.ProjectedResult{}, fmt.Errorf("%d: %w", months, ErrInvalidTimeFrame)
	}

	agg := Aggregate(s)
	m := float64(months)
	res := model.ProjectedResult{
		Months:         months,
		TotalIncome:    agg.Income * m,
		TotalAllocated: agg.TotalAllocated * m,
		TotalRemaining: agg.Remaining * m,
		Categories:     make(map[string]float64, len(s.Order)),
	}
	for _, id := range s.Order {
		res.Categories[id] = ParseAmount(s.Amounts[id]) * m
	}

	if v, ok := res.Categories["save"]; ok {
		res.TotalSaved = &v
	}
	if v, ok := res.Categories["bills"]; ok {
		res.TotalBills = &v
	}
	if v, ok := res.Categories["food"]; ok {
		res.TotalFood = &v
	}
	return res, nil
}
