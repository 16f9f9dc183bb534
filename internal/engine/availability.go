package engine

import (
	"time"

	"github.com/danharves/certsched/internal/domain"
)

const (
	highImpactOverlapPenalty = 30.0
	travelRestrictedPenalty  = 20.0
	// travelRestrictedRangeKm is how far a travel-restricted employee can
	// reasonably be expected to go from their primary location.
	travelRestrictedRangeKm = 50.0

	neutralCompatibility  = 50.0
	matchedCompatibility  = 100.0
	mismatchCompatibility = 25.0
)

// EmployeeScoringInput bundles everything known about one employee for the
// proposed training window.
type EmployeeScoringInput struct {
	EmployeeID  string
	Records     []domain.EmployeeAvailabilityRecord
	Profile     *domain.LearningProfile
	Certificate *domain.CertificateExpiryRecord
	Arrangement *domain.WorkArrangement

	WindowStart time.Time
	WindowEnd   time.Time

	PreferredStyles  []string
	ProviderLocation *domain.GeoPoint
}

// EmployeeScores holds the three per-employee factor scores surfaced in the
// output for transparency.
type EmployeeScores struct {
	EmployeeID    string
	Availability  float64
	Compatibility float64
	Urgency       float64
	ExpiryDays    *int
}

// ScoreEmployee computes availability, compatibility, and urgency for one
// employee. Missing optional data resolves to documented neutral defaults,
// never an error.
func ScoreEmployee(in EmployeeScoringInput) EmployeeScores {
	scores := EmployeeScores{
		EmployeeID:    in.EmployeeID,
		Availability:  availabilityScore(in),
		Compatibility: compatibilityScore(in.Profile, in.PreferredStyles),
	}
	if in.Certificate != nil {
		scores.ExpiryDays = in.Certificate.DaysUntilExpiry
	}
	scores.Urgency = UrgencyScore(scores.ExpiryDays)
	return scores
}

// availabilityScore starts at 100 and subtracts a fixed penalty per active
// high-impact record overlapping the training window, floored at 0. A
// travel-restricted work arrangement adds one flat penalty when the provider
// is beyond reasonable range.
func availabilityScore(in EmployeeScoringInput) float64 {
	score := 100.0
	for _, rec := range in.Records {
		if rec.Status != domain.AvailabilityActive {
			continue
		}
		if rec.Impact == domain.ImpactHigh && rec.Overlaps(in.WindowStart, in.WindowEnd) {
			score -= highImpactOverlapPenalty
		}
	}
	if travelInfeasible(in.Arrangement, in.ProviderLocation) {
		score -= travelRestrictedPenalty
	}
	if score < 0 {
		return 0
	}
	return score
}

func travelInfeasible(arr *domain.WorkArrangement, providerLoc *domain.GeoPoint) bool {
	if arr == nil || !arr.TravelRestricted {
		return false
	}
	if arr.PrimaryLocation == nil || providerLoc == nil {
		return false
	}
	return Distance(*arr.PrimaryLocation, *providerLoc) > travelRestrictedRangeKm
}

// compatibilityScore is neutral without a profile or without any stated
// style preference.
func compatibilityScore(profile *domain.LearningProfile, preferred []string) float64 {
	if profile == nil || len(preferred) == 0 {
		return neutralCompatibility
	}
	for _, style := range preferred {
		if style == profile.LearningStyle {
			return matchedCompatibility
		}
	}
	return mismatchCompatibility
}

// UrgencyScore maps days-until-expiry to a 0-100 urgency. Missing expiry
// data scores 0.
func UrgencyScore(daysUntilExpiry *int) float64 {
	if daysUntilExpiry == nil {
		return 0
	}
	switch d := *daysUntilExpiry; {
	case d <= 0:
		return 100
	case d <= 30:
		return 80
	case d <= 90:
		return 60
	default:
		return 20
	}
}
