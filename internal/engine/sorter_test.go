package engine

import (
	"testing"

	"github.com/danharves/certsched/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestSortRecommendations_DescendingStable(t *testing.T) {
	recs := []contract.Recommendation{
		{ID: "a", Score: 70},
		{ID: "b", Score: 90},
		{ID: "c", Score: 70},
		{ID: "d", Score: 85},
	}

	SortRecommendations(recs)

	assert.Equal(t, []string{"b", "d", "a", "c"},
		[]string{recs[0].ID, recs[1].ID, recs[2].ID, recs[3].ID},
		"equal scores keep input order")
}

func TestSortGroups_DescendingStable(t *testing.T) {
	groups := []contract.EmployeeGroup{
		{Name: "first", Priority: contract.PriorityResult{Value: 50}},
		{Name: "session", Priority: contract.PriorityResult{Value: 100}},
		{Name: "second", Priority: contract.PriorityResult{Value: 50}},
	}

	SortGroups(groups)

	assert.Equal(t, "session", groups[0].Name)
	assert.Equal(t, "first", groups[1].Name)
	assert.Equal(t, "second", groups[2].Name)
}
