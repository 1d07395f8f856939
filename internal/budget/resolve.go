package budget

import (
	"fmt"
	"sort"

	"bcalc/internal/model"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Resolve maps a user-typed name onto a registry identifier. An exact
// match after normalization wins; otherwise the best fuzzy match against
// both identifiers and display names is used, so "bil" and "car paymnt"
// both find their category.
func Resolve(s model.Snapshot, arg string) (string, error) {
	if id, err := Normalize(arg); err == nil {
		if _, ok := s.Amounts[id]; ok {
			return id, nil
		}
	}

	// Display names go into the candidate pool too: the fold does not
	// equate spaces with underscores, so spaced input would otherwise
	// miss multi-word identifiers.
	candidates := make([]string, 0, 2*len(s.Order))
	owner := make(map[string]string, 2*len(s.Order))
	for _, id := range s.Order {
		name := DisplayName(id)
		candidates = append(candidates, id, name)
		owner[id] = id
		owner[name] = id
	}

	matches := fuzzy.RankFindNormalizedFold(arg, candidates)
	if len(matches) == 0 {
		return "", fmt.Errorf("%q: %w", arg, ErrUnknownCategory)
	}
	sort.Sort(matches)
	return owner[matches[0].Target], nil
}
