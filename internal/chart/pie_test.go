package chart

import (
	"math"
	"testing"

	"bcalc/internal/model"
)

func pieSnapshot() model.Snapshot {
	return model.Snapshot{
		Income: "5000",
		Amounts: map[string]string{
			"bills": "1500",
			"food":  "600",
			"save":  "400",
		},
		Colors: map[string]string{
			"bills": "#FF6B6B",
			"food":  "#4ECDC4",
			"save":  "#45B7D1",
		},
		Order:           []string{"bills", "food", "save"},
		TimeFrameMonths: 12,
	}
}

func TestPie_SweepsSumTo360(t *testing.T) {
	slices, ok := Pie(pieSnapshot())
	if !ok {
		t.Fatal("Pie reported no data")
	}

	sum := 0.0
	for _, sl := range slices {
		sum += sl.Sweep()
	}
	if math.Abs(sum-360) > 1e-9 {
		t.Errorf("sweep sum = %v, want 360", sum)
	}
}

func TestPie_SlicesFollowOrderAndAccumulate(t *testing.T) {
	slices, ok := Pie(pieSnapshot())
	if !ok {
		t.Fatal("Pie reported no data")
	}

	wantIDs := []string{"bills", "food", "save", UnallocatedID}
	if len(slices) != len(wantIDs) {
		t.Fatalf("got %d slices, want %d", len(slices), len(wantIDs))
	}

	angle := 0.0
	for i, sl := range slices {
		if sl.Category != wantIDs[i] {
			t.Errorf("slice %d = %q, want %q", i, sl.Category, wantIDs[i])
		}
		if math.Abs(sl.StartAngle-angle) > 1e-9 {
			t.Errorf("slice %d starts at %v, want %v", i, sl.StartAngle, angle)
		}
		angle = sl.EndAngle
	}

	// bills: 30% of income -> 108 degrees.
	if got := slices[0].Sweep(); math.Abs(got-108) > 1e-9 {
		t.Errorf("bills sweep = %v, want 108", got)
	}
	// unallocated: remaining 2500 -> half the circle.
	if got := slices[3].Sweep(); math.Abs(got-180) > 1e-9 {
		t.Errorf("unallocated sweep = %v, want 180", got)
	}
	if slices[3].Color != UnallocatedColor {
		t.Errorf("unallocated color = %q", slices[3].Color)
	}
}

func TestPie_SkipsZeroAmounts(t *testing.T) {
	s := pieSnapshot()
	s.Amounts["food"] = ""
	s.Amounts["save"] = "0"

	slices, ok := Pie(s)
	if !ok {
		t.Fatal("Pie reported no data")
	}
	for _, sl := range slices {
		if sl.Category == "food" || sl.Category == "save" {
			t.Errorf("zero-amount category %q emitted a slice", sl.Category)
		}
	}
}

func TestPie_ZeroIncomeIsNoData(t *testing.T) {
	for _, income := range []string{"", "0", "garbage"} {
		s := pieSnapshot()
		s.Income = income

		slices, ok := Pie(s)
		if ok || slices != nil {
			t.Errorf("income %q: expected no-data sentinel, got %d slices", income, len(slices))
		}
	}
}

func TestPie_NoNaNOrInf(t *testing.T) {
	s := pieSnapshot()
	s.Amounts["bills"] = "0"
	s.Amounts["food"] = "junk"

	slices, ok := Pie(s)
	if !ok {
		t.Fatal("Pie reported no data")
	}
	for _, sl := range slices {
		for _, v := range []float64{sl.StartAngle, sl.EndAngle, sl.Percent} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("slice %q has non-finite geometry: %+v", sl.Category, sl)
			}
		}
	}
}

func TestSlice_LargeArc(t *testing.T) {
	if (Slice{StartAngle: 0, EndAngle: 180}).LargeArc() {
		t.Error("exactly 180 degrees must not set the large-arc flag")
	}
	if !(Slice{StartAngle: 0, EndAngle: 180.1}).LargeArc() {
		t.Error("over 180 degrees must set the large-arc flag")
	}
}

func TestSlice_ArcPoints(t *testing.T) {
	sl := Slice{StartAngle: 0, EndAngle: 90}
	x1, y1, x2, y2 := sl.ArcPoints(100, 100, 80)

	if math.Abs(x1-180) > 1e-9 || math.Abs(y1-100) > 1e-9 {
		t.Errorf("start point = (%v, %v), want (180, 100)", x1, y1)
	}
	// Screen coordinates: +y is down, so 90 degrees lands below center.
	if math.Abs(x2-100) > 1e-9 || math.Abs(y2-180) > 1e-9 {
		t.Errorf("end point = (%v, %v), want (100, 180)", x2, y2)
	}
}
