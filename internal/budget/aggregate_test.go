package budget

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1500", 1500},
		{" 600.50 ", 600.5},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"-25", -25},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in); !approx(got, tt.want) {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAggregate_Scenario(t *testing.T) {
	s := testSnapshot() // income 5000, bills 1500, food 600, save 400

	res := Aggregate(s)
	if !approx(res.TotalAllocated, 2500) {
		t.Errorf("TotalAllocated = %v, want 2500", res.TotalAllocated)
	}
	if !approx(res.Remaining, 2500) {
		t.Errorf("Remaining = %v, want 2500", res.Remaining)
	}
	if !approx(res.Percentages["bills"], 30) {
		t.Errorf("bills%% = %v, want 30", res.Percentages["bills"])
	}
	if !approx(res.Percentages["food"], 12) {
		t.Errorf("food%% = %v, want 12", res.Percentages["food"])
	}
	if !approx(res.Percentages["save"], 8) {
		t.Errorf("save%% = %v, want 8", res.Percentages["save"])
	}
	if unallocated := res.Remaining / res.Income * 100; !approx(unallocated, 50) {
		t.Errorf("unallocated%% = %v, want 50", unallocated)
	}
}

func TestAggregate_PercentagesSumToAllocatedShare(t *testing.T) {
	s := testSnapshot()
	s.Amounts["food"] = "123.45"
	s.Amounts["save"] = "0.55"

	res := Aggregate(s)
	sum := 0.0
	for _, pct := range res.Percentages {
		sum += pct
	}
	want := res.TotalAllocated / res.Income * 100
	if math.Abs(sum-want) > 1e-9 {
		t.Errorf("sum of percentages = %v, want %v", sum, want)
	}
}

func TestRemaining_NegativeNotClamped(t *testing.T) {
	s := testSnapshot()
	s.Income = "1000"

	if got := Remaining(s); !approx(got, -1500) {
		t.Errorf("Remaining = %v, want -1500 (overspend must stay negative)", got)
	}
}

func TestAggregate_NonNumericAmountsCountAsZero(t *testing.T) {
	s := testSnapshot()
	s.Amounts["food"] = "not a number"

	if got := TotalAllocated(s); !approx(got, 1900) {
		t.Errorf("TotalAllocated = %v, want 1900", got)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		amount, income, want float64
	}{
		{1500, 5000, 30},
		{0, 5000, 0},
		{1500, 0, 0},
		{6000, 5000, 120}, // over 100 is reported, not clamped
	}
	for _, tt := range tests {
		if got := Percentage(tt.amount, tt.income); !approx(got, tt.want) {
			t.Errorf("Percentage(%v, %v) = %v, want %v", tt.amount, tt.income, got, tt.want)
		}
	}
}
