package budget

import "bcalc/internal/model"

// Sanitize repairs a snapshot from an untrusted source, typically a JSON
// import: nil maps become empty, duplicate and orphaned order entries are
// dropped, amounts with no order entry are pruned, and a non-positive time
// frame falls back to the default.
func Sanitize(s *model.Snapshot) {
	if s.Amounts == nil {
		s.Amounts = map[string]string{}
	}
	if s.Colors == nil {
		s.Colors = map[string]string{}
	}

	order := s.Order[:0]
	seen := make(map[string]bool, len(s.Order))
	for _, id := range s.Order {
		if _, ok := s.Amounts[id]; !ok || seen[id] {
			continue
		}
		seen[id] = true
		order = append(order, id)
	}
	s.Order = order
	for id := range s.Amounts {
		if !seen[id] {
			delete(s.Amounts, id)
			delete(s.Colors, id)
		}
	}

	if s.TimeFrameMonths <= 0 {
		s.TimeFrameMonths = DefaultTimeFrameMonths
	}
}
