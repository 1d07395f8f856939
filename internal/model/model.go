// Package model defines the budget snapshot and the derived result types.
package model

// Snapshot is the full persistable state of one budget: the monthly income,
// every category's raw amount and color keyed by identifier, the display
// order, and the selected projection time frame.
//
// Amounts and income are kept as the raw strings the user typed. Parsing to
// numbers happens at aggregation time so that half-typed input never has to
// be rejected.
type Snapshot struct {
	Income          string            `json:"income"`
	Amounts         map[string]string `json:"categories"`
	Colors          map[string]string `json:"colors"`
	Order           []string          `json:"order"`
	TimeFrameMonths int               `json:"timeFrameMonths"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Income:          s.Income,
		TimeFrameMonths: s.TimeFrameMonths,
		Amounts:         make(map[string]string, len(s.Amounts)),
		Colors:          make(map[string]string, len(s.Colors)),
		Order:           make([]string, len(s.Order)),
	}
	for k, v := range s.Amounts {
		out.Amounts[k] = v
	}
	for k, v := range s.Colors {
		out.Colors[k] = v
	}
	copy(out.Order, s.Order)
	return out
}

// AggregateResult holds the derived monthly totals. Never persisted;
// recomputed from the snapshot on every read.
type AggregateResult struct {
	Income         float64
	TotalAllocated float64
	Remaining      float64 // negative means overspend

	// Percentages maps category identifier -> share of income, 0-100.
	// Unclamped; clamping for progress-bar widths is a display concern.
	Percentages map[string]float64
}

// ProjectedResult holds aggregate totals scaled by a time frame.
type ProjectedResult struct {
	Months         int
	TotalIncome    float64
	TotalAllocated float64
	TotalRemaining float64

	// Categories maps category identifier -> monthly amount * Months.
	Categories map[string]float64

	// Highlighted totals for the seed categories, set only when the
	// category still exists in the snapshot.
	TotalSaved *float64
	TotalBills *float64
	TotalFood  *float64
}
