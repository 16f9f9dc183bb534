package domain

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

type CertStatus string

const (
	CertNew                CertStatus = "new"
	CertExpired            CertStatus = "expired"
	CertRenewalDue         CertStatus = "renewal_due"
	CertRenewalApproaching CertStatus = "renewal_approaching"
	CertValid              CertStatus = "valid"
)

type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

type AvailabilityStatus string

const (
	AvailabilityActive   AvailabilityStatus = "active"
	AvailabilityInactive AvailabilityStatus = "inactive"
)

// ValidAvailabilityTypes is the canonical set of accepted availability
// record type strings.
var ValidAvailabilityTypes = map[string]bool{
	"leave": true, "illness": true, "training": true,
	"parental": true, "sabbatical": true, "other": true,
}

// ValidLearningStyles is the canonical set of accepted learning style strings.
var ValidLearningStyles = map[string]bool{
	"visual": true, "auditory": true, "kinesthetic": true,
	"reading": true, "blended": true, "self_paced": true,
}

type ScheduleType string

const (
	ScheduleOnSite ScheduleType = "on_site"
	ScheduleHybrid ScheduleType = "hybrid"
	ScheduleRemote ScheduleType = "remote"
	ScheduleField  ScheduleType = "field"
)
