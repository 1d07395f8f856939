package budget

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	s := testSnapshot()
	if _, err := Add(&s, "Car Payment", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Exact identifiers and display names, then fuzzy forms: a truncated
	// identifier, and spaced input with a typo that can only match via the
	// display name.
	tests := []struct {
		in   string
		want string
	}{
		{"bills", "bills"},
		{"Bills", "bills"},
		{"car_payment", "car_payment"},
		{"Car Payment", "car_payment"},
		{"CAR PAYMENT ", "car_payment"},
		{"bil", "bills"},
		{"car paymnt", "car_payment"},
	}
	for _, tt := range tests {
		got, err := Resolve(s, tt.in)
		if err != nil {
			t.Errorf("Resolve(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolve_Unknown(t *testing.T) {
	s := testSnapshot()
	if _, err := Resolve(s, "zzzzzz"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}
