package domain

import "time"

// CourseOffering is one course a provider can deliver, with its per-course
// cost and capacity.
type CourseOffering struct {
	CourseID           string
	CostPerParticipant float64
	MaxCapacity        int
}

// ProviderCandidate is an external training provider under evaluation.
// Read-only within the engine.
type ProviderCandidate struct {
	ID   string
	Name string

	// HourlyRate is nil when the provider does not publish a rate.
	HourlyRate      *float64
	TravelCostPerKm float64
	SetupCost       float64
	CancellationFee float64
	Currency        string

	BaseLocation *GeoPoint

	MinGroupSize int
	MaxGroupSize int

	LeadTimeDays int

	Courses []CourseOffering

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Offering returns the provider's offering for the course, or nil if the
// provider does not deliver it.
func (p *ProviderCandidate) Offering(courseID string) *CourseOffering {
	for i := range p.Courses {
		if p.Courses[i].CourseID == courseID {
			return &p.Courses[i]
		}
	}
	return nil
}
