package engine

import (
	"sort"

	"github.com/danharves/certsched/internal/contract"
)

// SortRecommendations orders recommendations by score descending. The sort
// is stable so input order is the tie-break, keeping results deterministic.
func SortRecommendations(recs []contract.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
}

// SortGroups orders groups by priority descending, stable.
func SortGroups(groups []contract.EmployeeGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Priority.Value > groups[j].Priority.Value
	})
}
