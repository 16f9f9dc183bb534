package contract

type ScoreReasonCode string

const (
	ReasonPublishedRate   ScoreReasonCode = "PUBLISHED_RATE"
	ReasonDistancePenalty ScoreReasonCode = "DISTANCE_PENALTY"
	ReasonUnderBudget     ScoreReasonCode = "UNDER_BUDGET"
	ReasonAvailability    ScoreReasonCode = "TEAM_AVAILABILITY"
	ReasonCompatibility   ScoreReasonCode = "LEARNING_COMPATIBILITY"
	ReasonUrgency         ScoreReasonCode = "CERT_URGENCY"
)

// ScoreReason records one factor's contribution to a composite score.
type ScoreReason struct {
	Code        ScoreReasonCode
	Message     string
	WeightDelta *float64
}

type ExclusionCode string

const (
	ExcludeCourseNotOffered ExclusionCode = "COURSE_NOT_OFFERED"
	ExcludeOverBudget       ExclusionCode = "OVER_BUDGET"
	ExcludeTooFar           ExclusionCode = "OVER_MAX_DISTANCE"
)

// Exclusion explains why a provider produced no recommendation. Exclusions
// are expected behavior, not errors.
type Exclusion struct {
	ProviderID   string
	ProviderName string
	Code         ExclusionCode
	Message      string
}

type ConflictType string

const (
	ConflictAvailability ConflictType = "availability"
	ConflictCapacity     ConflictType = "capacity"
)

type ConflictSeverity string

const (
	SeverityLow    ConflictSeverity = "low"
	SeverityMedium ConflictSeverity = "medium"
	SeverityHigh   ConflictSeverity = "high"
)

// ConflictWarning is an advisory flag on a recommendation. Warnings never
// block emission.
type ConflictWarning struct {
	Type     ConflictType
	Severity ConflictSeverity
	Message  string
}
