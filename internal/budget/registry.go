// Package budget implements the category registry, the aggregation math,
// and the multi-month projection over a model.Snapshot.
//
// All operations are synchronous and mutate the snapshot in place. A failed
// operation leaves the snapshot untouched. Callers that share one snapshot
// across goroutines must serialize access themselves.
package budget

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"bcalc/internal/model"
)

// DefaultPalette is the pool new categories draw their color from when the
// caller does not supply one.
var DefaultPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7", "#DDA0DD",
	"#A8E6CF", "#FF8B94", "#FFC3A0", "#FFD3B6", "#FFAAA5", "#FF8B94",
	"#B8E6B8", "#FFB6C1", "#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE",
}

// FallbackColor is used for categories with no stored color.
const FallbackColor = "#6C5CE7"

// DefaultTimeFrameMonths is the time frame a fresh budget starts with.
const DefaultTimeFrameMonths = 12

// DefaultSnapshot returns a fresh budget with the three seed categories.
func DefaultSnapshot() model.Snapshot {
	return model.Snapshot{
		Income: "",
		Amounts: map[string]string{
			"bills": "",
			"food":  "",
			"save":  "",
		},
		Colors: map[string]string{
			"bills": "#FF6B6B",
			"food":  "#4ECDC4",
			"save":  "#45B7D1",
		},
		Order:           []string{"bills", "food", "save"},
		TimeFrameMonths: DefaultTimeFrameMonths,
	}
}

// RandomColor draws a color from the default palette.
func RandomColor() string {
	return DefaultPalette[rand.Intn(len(DefaultPalette))]
}

// Normalize converts a raw category name into its identifier: trimmed,
// lowercased, runs of whitespace collapsed to a single underscore.
// Normalization is idempotent.
func Normalize(raw string) (string, error) {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return "", ErrEmptyName
	}
	return strings.Join(fields, "_"), nil
}

// DisplayName reverses identifier normalization for presentation:
// underscores back to spaces, first letter capitalized.
func DisplayName(id string) string {
	s := strings.ReplaceAll(id, "_", " ")
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Color returns the stored color for id, or the fallback color.
func Color(s model.Snapshot, id string) string {
	if c := s.Colors[id]; c != "" {
		return c
	}
	return FallbackColor
}

// Add normalizes rawName and inserts a new category with an unset amount,
// appended to the end of the order. An empty color means "pick one from the
// palette". Returns the new identifier.
func Add(s *model.Snapshot, rawName, color string) (string, error) {
	id, err := Normalize(rawName)
	if err != nil {
		return "", err
	}
	if _, exists := s.Amounts[id]; exists {
		return "", fmt.Errorf("%q: %w", id, ErrDuplicateCategory)
	}
	if color == "" {
		color = RandomColor()
	}
	if s.Amounts == nil {
		s.Amounts = make(map[string]string)
	}
	if s.Colors == nil {
		s.Colors = make(map[string]string)
	}
	s.Amounts[id] = ""
	s.Colors[id] = color
	s.Order = append(s.Order, id)
	return id, nil
}

// Rename normalizes newName and atomically rekeys the category: the order
// position is preserved, amount and color move to the new identifier.
// Renaming a category to itself is a no-op.
func Rename(s *model.Snapshot, oldID, newName string) (string, error) {
	if _, exists := s.Amounts[oldID]; !exists {
		return "", fmt.Errorf("%q: %w", oldID, ErrUnknownCategory)
	}
	id, err := Normalize(newName)
	if err != nil {
		return "", err
	}
	if id == oldID {
		return id, nil
	}
	if _, exists := s.Amounts[id]; exists {
		return "", fmt.Errorf("%q: %w", id, ErrDuplicateCategory)
	}

	for i, cur := range s.Order {
		if cur == oldID {
			s.Order[i] = id
		}
	}
	s.Amounts[id] = s.Amounts[oldID]
	s.Colors[id] = s.Colors[oldID]
	delete(s.Amounts, oldID)
	delete(s.Colors, oldID)
	return id, nil
}

// Remove deletes a category, its amount, color, and order entry. The last
// remaining category can never be removed.
func Remove(s *model.Snapshot, id string) error {
	if len(s.Order) <= 1 {
		return ErrLastCategory
	}
	if _, exists := s.Amounts[id]; !exists {
		return fmt.Errorf("%q: %w", id, ErrUnknownCategory)
	}
	delete(s.Amounts, id)
	delete(s.Colors, id)
	for i, cur := range s.Order {
		if cur == id {
			s.Order = append(s.Order[:i], s.Order[i+1:]...)
			break
		}
	}
	return nil
}

// SetAmount stores the raw amount string as typed. No numeric validation
// happens here; unparseable input aggregates as zero.
func SetAmount(s *model.Snapshot, id, raw string) error {
	if _, exists := s.Amounts[id]; !exists {
		return fmt.Errorf("%q: %w", id, ErrUnknownCategory)
	}
	s.Amounts[id] = raw
	return nil
}

// SetColor stores an opaque color token for the category.
func SetColor(s *model.Snapshot, id, color string) error {
	if _, exists := s.Amounts[id]; !exists {
		return fmt.Errorf("%q: %w", id, ErrUnknownCategory)
	}
	if color == "" {
		return ErrEmptyColor
	}
	s.Colors[id] = color
	return nil
}

// Reorder moves draggedID immediately before targetID's current position.
// A no-op when the two are equal or either is absent from the order.
func Reorder(s *model.Snapshot, draggedID, targetID string) {
	if draggedID == targetID {
		return
	}
	from := indexOf(s.Order, draggedID)
	if from < 0 || indexOf(s.Order, targetID) < 0 {
		return
	}

	order := append(s.Order[:from:from], s.Order[from+1:]...)
	to := indexOf(order, targetID)
	order = append(order, "")
	copy(order[to+1:], order[to:])
	order[to] = draggedID
	s.Order = order
}

func indexOf(order []string, id string) int {
	for i, cur := range order {
		if cur == id {
			return i
		}
	}
	return -1
}
