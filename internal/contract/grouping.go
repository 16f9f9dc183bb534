package contract

import (
	"time"

	"github.com/danharves/certsched/internal/domain"
)

type GroupingRequest struct {
	LicenseID string
	Policy    domain.GroupingPolicy
	// Now pins the request clock for deterministic results; nil means wall time.
	Now *time.Time
}

// NewGroupingRequest builds a request for the given license with the default
// partitioning policy.
func NewGroupingRequest(licenseID string) GroupingRequest {
	return GroupingRequest{
		LicenseID: licenseID,
		Policy:    domain.DefaultGroupingPolicy(),
	}
}

type GroupingResponse struct {
	GeneratedAt time.Time
	LicenseID   string
	Groups      []EmployeeGroup
}

// GroupMember is one employee placed in a group, with the urgency data that
// drove the placement.
type GroupMember struct {
	EmployeeID      string
	Status          domain.CertStatus
	DaysUntilExpiry *int
	Department      string
}

// SessionLink binds a group to the existing session it augments. Mutually
// exclusive with a group being new.
type SessionLink struct {
	SessionID      string
	Date           time.Time
	Location       string
	RemainingSpots int
}

// PriorityResult distinguishes a computed priority from one defaulted after
// a scoring failure.
type PriorityResult struct {
	Value     float64
	Defaulted bool
	Message   string
}

// EmployeeGroup is one partition of employees slated for the same training
// delivery.
type EmployeeGroup struct {
	ID                 string
	Name               string
	Classification     string
	Department         string
	Members            []GroupMember
	AvgDaysUntilExpiry float64
	Priority           PriorityResult
	// Session is non-nil only for groups that fill existing capacity.
	Session *SessionLink
}

type GroupingErrorCode string

const (
	ErrMissingLicense GroupingErrorCode = "MISSING_LICENSE"
	ErrNoEmployees    GroupingErrorCode = "NO_EMPLOYEES"
	ErrGroupingLoad   GroupingErrorCode = "GROUPING_LOAD"
)

type GroupingError struct {
	Code    GroupingErrorCode
	Message string
}

func (e *GroupingError) Error() string {
	return string(e.Code) + ": " + e.Message
}
