package contract

import (
	"time"

	"github.com/danharves/certsched/internal/domain"
)

type RecommendRequest struct {
	Constraints domain.SchedulingConstraints
	// Now pins the request clock for deterministic results; nil means wall time.
	Now *time.Time
	// MaxResults caps the returned list; 0 means unlimited.
	MaxResults int
}

// NewRecommendRequest builds a request for the given course with defaults.
func NewRecommendRequest(courseID string) RecommendRequest {
	return RecommendRequest{
		Constraints: domain.SchedulingConstraints{
			CourseID: courseID,
			Urgency:  domain.UrgencyMedium,
		},
	}
}

type RecommendResponse struct {
	GeneratedAt     time.Time
	CourseID        string
	Recommendations []Recommendation
	// Exclusions lists providers filtered out by hard constraints.
	Exclusions []Exclusion
}

// ProviderSummary is the provider slice of a recommendation, with the
// computed totals attached.
type ProviderSummary struct {
	ID                 string
	Name               string
	TotalEstimatedCost float64
	Currency           string
	DistanceKm         float64
	LeadTimeDays       int
	HourlyRate         *float64
}

// SessionProposal is one concrete proposed training session.
type SessionProposal struct {
	Date      time.Time
	StartTime string
	EndTime   string
}

// EmployeeAvailabilitySummary surfaces the per-employee factor scores that
// fed the composite score.
type EmployeeAvailabilitySummary struct {
	EmployeeID         string
	AvailabilityScore  float64
	CompatibilityScore float64
	UrgencyScore       float64
	ExpiryDays         *int
}

// BusinessImpact estimates the organizational effect of acting on a
// recommendation. Only TeamCoverageScore is bounded; the others are relative
// priority signals.
type BusinessImpact struct {
	TeamCoverageScore float64
	SkillGapImpact    float64
	ComplianceUrgency float64
}

// Recommendation is one scored provider candidate. Ephemeral: recomputed per
// request, never persisted by the engine.
type Recommendation struct {
	ID        string
	Score     float64
	Provider  ProviderSummary
	Sessions  []SessionProposal
	Employees []EmployeeAvailabilitySummary
	Warnings  []ConflictWarning
	Impact    BusinessImpact
	Reasons   []ScoreReason
}

type RecommendErrorCode string

const (
	ErrMissingCourse     RecommendErrorCode = "MISSING_COURSE"
	ErrInvalidDateWindow RecommendErrorCode = "INVALID_DATE_WINDOW"
	ErrSnapshotLoad      RecommendErrorCode = "SNAPSHOT_LOAD"
)

type RecommendError struct {
	Code    RecommendErrorCode
	Message string
}

func (e *RecommendError) Error() string {
	return string(e.Code) + ": " + e.Message
}
