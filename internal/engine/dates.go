package engine

import (
	"time"

	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/domain"
)

// Default working-day window for proposed sessions.
const (
	sessionStartTime = "09:00"
	sessionEndTime   = "17:00"
)

// ProposeSessions emits the concrete session schedule for a provider:
// the preferred start date (default now) pushed out by the provider's
// advance-booking lead time.
//
// A single proposal is emitted today; spreading a course across multiple
// sessions is an extension point, not a current guarantee.
func ProposeSessions(p domain.ProviderCandidate, c domain.SchedulingConstraints, now time.Time) []contract.SessionProposal {
	start := now
	if c.PreferredStartDate != nil {
		start = *c.PreferredStartDate
	}
	return []contract.SessionProposal{
		{
			Date:      start.AddDate(0, 0, p.LeadTimeDays),
			StartTime: sessionStartTime,
			EndTime:   sessionEndTime,
		},
	}
}

// SessionWindow returns the inclusive day window covered by the proposals,
// used to test employee availability records against the plan.
func SessionWindow(proposals []contract.SessionProposal) (time.Time, time.Time) {
	if len(proposals) == 0 {
		return time.Time{}, time.Time{}
	}
	start, end := proposals[0].Date, proposals[0].Date
	for _, pr := range proposals[1:] {
		if pr.Date.Before(start) {
			start = pr.Date
		}
		if pr.Date.After(end) {
			end = pr.Date
		}
	}
	return start, end.AddDate(0, 0, 1)
}
