package budget

import (
	"errors"
	"reflect"
	"testing"

	"bcalc/internal/model"
)

func testSnapshot() model.Snapshot {
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

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Rent", "rent"},
		{"Rent ", "rent"},
		{"  Car  Payment ", "car_payment"},
		{"two\twords", "two_words"},
		{"already_normal", "already_normal"},
		{"MIXED Case Name", "mixed_case_name"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in)
		if err != nil {
			t.Errorf("Normalize(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}

		// Normalization must be idempotent.
		again, err := Normalize(got)
		if err != nil || again != got {
			t.Errorf("Normalize(Normalize(%q)) = %q, %v; want %q", tt.in, again, err, got)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := Normalize(in); !errors.Is(err, ErrEmptyName) {
			t.Errorf("Normalize(%q) error = %v, want ErrEmptyName", in, err)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"bills", "Bills"},
		{"car_payment", "Car payment"},
		{"save", "Save"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.id); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	s := testSnapshot()

	id, err := Add(&s, "Car Payment", "#ABCDEF")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id != "car_payment" {
		t.Errorf("Add returned id %q, want car_payment", id)
	}
	if s.Amounts[id] != "" {
		t.Errorf("new category amount = %q, want unset", s.Amounts[id])
	}
	if s.Colors[id] != "#ABCDEF" {
		t.Errorf("new category color = %q, want #ABCDEF", s.Colors[id])
	}
	if s.Order[len(s.Order)-1] != id {
		t.Errorf("new category not appended to order: %v", s.Order)
	}
}

func TestAdd_DuplicateAfterNormalization(t *testing.T) {
	s := testSnapshot()

	if _, err := Add(&s, "Rent ", ""); err != nil {
		t.Fatalf("first add: %v", err)
	}

	before := s.Clone()
	_, err := Add(&s, "rent", "")
	if !errors.Is(err, ErrDuplicateCategory) {
		t.Fatalf("second add error = %v, want ErrDuplicateCategory", err)
	}
	if !reflect.DeepEqual(s, before) {
		t.Error("failed add mutated the snapshot")
	}
}

func TestAdd_PicksPaletteColor(t *testing.T) {
	s := testSnapshot()
	id, err := Add(&s, "gym", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	found := false
	for _, c := range DefaultPalette {
		if s.Colors[id] == c {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("auto-assigned color %q not from the palette", s.Colors[id])
	}
}

func TestRename(t *testing.T) {
	s := testSnapshot()

	id, err := Rename(&s, "food", "Groceries And Snacks")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if id != "groceries_and_snacks" {
		t.Errorf("Rename returned %q", id)
	}
	if got := s.Order[1]; got != id {
		t.Errorf("order position not preserved: %v", s.Order)
	}
	if s.Amounts[id] != "600" {
		t.Errorf("amount not carried over: %q", s.Amounts[id])
	}
	if s.Colors[id] != "#4ECDC4" {
		t.Errorf("color not carried over: %q", s.Colors[id])
	}
	if _, exists := s.Amounts["food"]; exists {
		t.Error("old identifier still present")
	}
}

func TestRename_Collision(t *testing.T) {
	s := testSnapshot()
	before := s.Clone()

	_, err := Rename(&s, "food", "Bills")
	if !errors.Is(err, ErrDuplicateCategory) {
		t.Fatalf("error = %v, want ErrDuplicateCategory", err)
	}
	if !reflect.DeepEqual(s, before) {
		t.Error("failed rename mutated the snapshot")
	}
}

func TestRename_ToSelf(t *testing.T) {
	s := testSnapshot()
	before := s.Clone()

	id, err := Rename(&s, "food", "Food")
	if err != nil {
		t.Fatalf("rename to self: %v", err)
	}
	if id != "food" {
		t.Errorf("id = %q, want food", id)
	}
	if !reflect.DeepEqual(s, before) {
		t.Error("rename to self changed the snapshot")
	}
}

func TestRename_Unknown(t *testing.T) {
	s := testSnapshot()
	if _, err := Rename(&s, "nope", "whatever"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}

func TestRemove(t *testing.T) {
	s := testSnapshot()

	if err := Remove(&s, "food"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, exists := s.Amounts["food"]; exists {
		t.Error("amount not deleted")
	}
	if _, exists := s.Colors["food"]; exists {
		t.Error("color not deleted")
	}
	if !reflect.DeepEqual(s.Order, []string{"bills", "save"}) {
		t.Errorf("order = %v", s.Order)
	}
}

func TestRemove_LastCategory(t *testing.T) {
	s := model.Snapshot{
		Amounts: map[string]string{"bills": "100"},
		Colors:  map[string]string{"bills": "#FF6B6B"},
		Order:   []string{"bills"},
	}
	before := s.Clone()

	if err := Remove(&s, "bills"); !errors.Is(err, ErrLastCategory) {
		t.Fatalf("error = %v, want ErrLastCategory", err)
	}
	if !reflect.DeepEqual(s, before) {
		t.Error("failed remove mutated the snapshot")
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name    string
		dragged string
		target  string
		want    []string
	}{
		{"move later category before earlier", "save", "bills", []string{"save", "bills", "food"}},
		{"move earlier category before later", "bills", "save", []string{"food", "bills", "save"}},
		{"same category is a no-op", "food", "food", []string{"bills", "food", "save"}},
		{"absent dragged is a no-op", "nope", "food", []string{"bills", "food", "save"}},
		{"absent target is a no-op", "food", "nope", []string{"bills", "food", "save"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSnapshot()
			Reorder(&s, tt.dragged, tt.target)
			if !reflect.DeepEqual(s.Order, tt.want) {
				t.Errorf("order = %v, want %v", s.Order, tt.want)
			}
		})
	}
}

func TestSetAmount(t *testing.T) {
	s := testSnapshot()

	// Raw strings are stored as typed, numeric or not.
	if err := SetAmount(&s, "food", "12.5abc"); err != nil {
		t.Fatalf("SetAmount: %v", err)
	}
	if s.Amounts["food"] != "12.5abc" {
		t.Errorf("amount = %q, want raw string preserved", s.Amounts["food"])
	}

	if err := SetAmount(&s, "nope", "1"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}

func TestSetColor(t *testing.T) {
	s := testSnapshot()

	if err := SetColor(&s, "food", "#123456"); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	if s.Colors["food"] != "#123456" {
		t.Errorf("color = %q", s.Colors["food"])
	}

	if err := SetColor(&s, "food", ""); !errors.Is(err, ErrEmptyColor) {
		t.Errorf("error = %v, want ErrEmptyColor", err)
	}
	if err := SetColor(&s, "nope", "#fff"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}
