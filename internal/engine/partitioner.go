package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/domain"
)

// existingSessionPriority is the fixed priority of groups that fill existing
// capacity; they always outrank new-group creation.
const existingSessionPriority = 100.0

// GroupCandidate is one employee annotated with certificate-expiry standing,
// the unit the partitioner works on.
type GroupCandidate struct {
	EmployeeID      string
	Department      string
	Status          domain.CertStatus
	DaysUntilExpiry *int
	ExpiryDate      *time.Time
}

// PartitionInput is the snapshot a partitioning run consumes.
type PartitionInput struct {
	Now        time.Time
	Candidates []GroupCandidate
	Sessions   []domain.ExistingSession
	Policy     domain.GroupingPolicy
}

// Partition assigns employees to existing under-capacity sessions first,
// then partitions the remainder into new department groups bounded by size
// and expiry time-window. Deterministic: Phase 1 consumes sessions in input
// order, Phase 2 walks departments in lexical order, and every sort is
// stable with input order as the tie-break.
//
// Groups are returned in formation order without final priorities for new
// groups; the caller scores and sorts them (see NewGroupPriority, SortGroups).
func Partition(in PartitionInput) []contract.EmployeeGroup {
	remaining := make([]GroupCandidate, len(in.Candidates))
	copy(remaining, in.Candidates)

	var groups []contract.EmployeeGroup

	sessionGroups, remaining := fillExistingSessions(in.Now, remaining, in.Sessions, in.Policy)
	groups = append(groups, sessionGroups...)
	groups = append(groups, partitionRemainder(remaining, in.Policy)...)

	return groups
}

// fillExistingSessions is Phase 1: for each session with spare capacity, in
// input order, take the most urgent eligible employees up to the available
// spots.
func fillExistingSessions(
	now time.Time,
	remaining []GroupCandidate,
	sessions []domain.ExistingSession,
	policy domain.GroupingPolicy,
) ([]contract.EmployeeGroup, []GroupCandidate) {
	var groups []contract.EmployeeGroup

	for _, sess := range sessions {
		spots := sess.AvailableSpots()
		if spots == 0 || len(remaining) == 0 {
			continue
		}

		var eligible []GroupCandidate
		for _, c := range remaining {
			if sessionEligible(c, sess, now, policy.ExpiryBufferDays) {
				eligible = append(eligible, c)
			}
		}

		sortByUrgency(eligible)

		take := spots
		if take > len(eligible) {
			take = len(eligible)
		}
		if take == 0 {
			continue
		}

		selected := eligible[:take]
		remaining = withoutSelected(remaining, selected)

		groups = append(groups, contract.EmployeeGroup{
			Name:               "Add to: " + sess.Title,
			Members:            toMembers(selected),
			AvgDaysUntilExpiry: averageExpiryDays(selected),
			Priority:           contract.PriorityResult{Value: existingSessionPriority},
			Session: &contract.SessionLink{
				SessionID:      sess.ID,
				Date:           sess.StartsAt,
				Location:       sess.Location,
				RemainingSpots: spots - take,
			},
		})
	}

	return groups, remaining
}

// withoutSelected removes the selected employees from the pool, preserving
// the pool's original order for later phases.
func withoutSelected(pool, selected []GroupCandidate) []GroupCandidate {
	taken := make(map[string]bool, len(selected))
	for _, s := range selected {
		taken[s.EmployeeID] = true
	}
	var rest []GroupCandidate
	for _, c := range pool {
		if !taken[c.EmployeeID] {
			rest = append(rest, c)
		}
	}
	return rest
}

// sessionEligible applies the Phase 1 filter: already-expired employees need
// urgent dedicated handling and must not be routed into a slow capacity
// slot, and the session date must leave the fixed safety buffer before a
// known expiry.
func sessionEligible(c GroupCandidate, sess domain.ExistingSession, now time.Time, bufferDays int) bool {
	if c.Status == domain.CertExpired {
		return false
	}
	if c.DaysUntilExpiry != nil && *c.DaysUntilExpiry < 0 {
		return false
	}
	expiry := c.ExpiryDate
	if expiry == nil && c.DaysUntilExpiry != nil {
		d := now.AddDate(0, 0, *c.DaysUntilExpiry)
		expiry = &d
	}
	if expiry != nil && !sess.StartsAt.Before(expiry.AddDate(0, 0, -bufferDays)) {
		return false
	}
	return true
}

// partitionRemainder is Phase 2: department by department, walk employees in
// expiry order and cut groups on size, expiry spread, or department end.
func partitionRemainder(remaining []GroupCandidate, policy domain.GroupingPolicy) []contract.EmployeeGroup {
	byDept := make(map[string][]GroupCandidate)
	var depts []string
	for _, c := range remaining {
		if _, seen := byDept[c.Department]; !seen {
			depts = append(depts, c.Department)
		}
		byDept[c.Department] = append(byDept[c.Department], c)
	}
	sort.Strings(depts)

	var groups []contract.EmployeeGroup
	for _, dept := range depts {
		members := byDept[dept]
		sortByUrgency(members)
		groups = append(groups, walkDepartment(dept, members, policy)...)
	}
	return groups
}

func walkDepartment(dept string, sorted []GroupCandidate, policy domain.GroupingPolicy) []contract.EmployeeGroup {
	var groups []contract.EmployeeGroup
	var current []GroupCandidate
	seq := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		seq++
		groups = append(groups, newDepartmentGroup(dept, seq, current))
		current = nil
	}

	for _, next := range sorted {
		// Small groups are discouraged but never blocked: below the minimum
		// size the spread check is waived, with no bound on how far the
		// window may be exceeded.
		if len(current) >= policy.MinGroupSize && exceedsSpread(current, next, policy.TimeWindowDays) {
			flush()
		}
		current = append(current, next)
		if len(current) >= policy.MaxGroupSize {
			flush()
		}
	}
	flush()

	return groups
}

// exceedsSpread reports whether adding next would push the group's
// days-until-expiry spread past the time window. Members without expiry data
// do not constrain the spread.
func exceedsSpread(current []GroupCandidate, next GroupCandidate, timeWindowDays int) bool {
	if next.DaysUntilExpiry == nil {
		return false
	}
	lo, hi := *next.DaysUntilExpiry, *next.DaysUntilExpiry
	for _, c := range current {
		if c.DaysUntilExpiry == nil {
			continue
		}
		if *c.DaysUntilExpiry < lo {
			lo = *c.DaysUntilExpiry
		}
		if *c.DaysUntilExpiry > hi {
			hi = *c.DaysUntilExpiry
		}
	}
	return hi-lo > timeWindowDays
}

func newDepartmentGroup(dept string, seq int, members []GroupCandidate) contract.EmployeeGroup {
	label := classify(members)
	return contract.EmployeeGroup{
		Name:               fmt.Sprintf("%s %s Group %d", dept, label, seq),
		Classification:     label,
		Department:         dept,
		Members:            toMembers(members),
		AvgDaysUntilExpiry: averageExpiryDays(members),
	}
}

// classify picks the group label by member urgency, most urgent first:
// Urgent Expired > Urgent Renewal > New Employee > Renewal.
func classify(members []GroupCandidate) string {
	hasExpired := false
	hasUrgent := false
	hasNew := false
	for _, m := range members {
		if m.Status == domain.CertExpired {
			hasExpired = true
		}
		if m.DaysUntilExpiry != nil && *m.DaysUntilExpiry <= 30 && *m.DaysUntilExpiry >= 0 {
			hasUrgent = true
		}
		if m.Status == domain.CertNew {
			hasNew = true
		}
	}
	switch {
	case hasExpired:
		return "Urgent Expired"
	case hasUrgent:
		return "Urgent Renewal"
	case hasNew:
		return "New Employee"
	default:
		return "Renewal"
	}
}

// NewGroupPriority computes the standard priority of a newly formed group:
// base 50 plus urgency bonuses.
func NewGroupPriority(g contract.EmployeeGroup) float64 {
	priority := 50.0
	hasExpired := false
	hasUrgent := false
	hasNew := false
	hasExpiryData := false
	for _, m := range g.Members {
		if m.Status == domain.CertExpired {
			hasExpired = true
		}
		if m.DaysUntilExpiry != nil {
			hasExpiryData = true
			if *m.DaysUntilExpiry <= 30 {
				hasUrgent = true
			}
		}
		if m.Status == domain.CertNew {
			hasNew = true
		}
	}
	if hasExpired {
		priority += 40
	}
	if hasUrgent {
		priority += 30
	}
	if hasNew {
		priority += 20
	}
	if hasExpiryData && g.AvgDaysUntilExpiry <= 60 {
		priority += 25
	}
	return priority
}

// sortByUrgency stable-sorts candidates by days-until-expiry ascending, nil
// last, preserving input order for ties.
func sortByUrgency(candidates []GroupCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].DaysUntilExpiry, candidates[j].DaysUntilExpiry
		if (a == nil) != (b == nil) {
			return a != nil
		}
		if a == nil {
			return false
		}
		return *a < *b
	})
}

func toMembers(candidates []GroupCandidate) []contract.GroupMember {
	members := make([]contract.GroupMember, len(candidates))
	for i, c := range candidates {
		members[i] = contract.GroupMember{
			EmployeeID:      c.EmployeeID,
			Status:          c.Status,
			DaysUntilExpiry: c.DaysUntilExpiry,
			Department:      c.Department,
		}
	}
	return members
}

func averageExpiryDays(candidates []GroupCandidate) float64 {
	sum := 0
	n := 0
	for _, c := range candidates {
		if c.DaysUntilExpiry != nil {
			sum += *c.DaysUntilExpiry
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
