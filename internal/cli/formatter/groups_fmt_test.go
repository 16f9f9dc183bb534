package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestFormatGroups_SessionAndNewGroups(t *testing.T) {
	resp := &contract.GroupingResponse{
		LicenseID: "license-forklift",
		Groups: []contract.EmployeeGroup{
			{
				ID:       "grp-1",
				Name:     "Add to: October Refresher",
				Priority: contract.PriorityResult{Value: 100},
				Session: &contract.SessionLink{
					SessionID:      "sess-12345678",
					Date:           time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC),
					RemainingSpots: 1,
				},
				Members: []contract.GroupMember{
					{EmployeeID: "emp-1", Status: domain.CertRenewalDue, DaysUntilExpiry: intPtr(45)},
				},
			},
			{
				ID:             "grp-2",
				Name:           "Logistics Urgent Expired Group 1",
				Classification: "Urgent Expired",
				Department:     "Logistics",
				Priority:       contract.PriorityResult{Value: 50, Defaulted: true, Message: "scoring backend unavailable"},
				Members: []contract.GroupMember{
					{EmployeeID: "emp-2", Status: domain.CertExpired},
				},
			},
		},
	}

	out := FormatGroups(resp)
	assert.Contains(t, out, "Add to: October Refresher")
	assert.Contains(t, out, "P100")
	assert.Contains(t, out, "Oct 5, 2026")
	assert.Contains(t, out, "1 spots left")
	assert.Contains(t, out, "Logistics Urgent Expired Group 1")
	assert.Contains(t, out, "P50*")
	assert.Contains(t, out, "Priority defaulted: scoring backend unavailable")
	assert.Contains(t, out, "Expired")
	assert.Contains(t, out, "expires in 45d")
	assert.Contains(t, out, "expires in --")
}

func TestFormatGroups_Empty(t *testing.T) {
	out := FormatGroups(&contract.GroupingResponse{LicenseID: "license-x"})
	assert.Contains(t, out, "No groups formed.")
}
