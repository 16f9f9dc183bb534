package engine

import "github.com/danharves/certsched/internal/domain"

// trainingDayHours is the billable length of one full training day.
const trainingDayHours = 8

// CostEstimate breaks down a provider's total estimated cost for one
// training day.
type CostEstimate struct {
	Base   float64
	Setup  float64
	Travel float64
	Total  float64
}

// EstimateCost combines the provider's rate, setup fee, and travel cost into
// a total estimate. distanceKm is zero when no coordinates are available,
// which zeroes the travel component.
func EstimateCost(p domain.ProviderCandidate, distanceKm float64) CostEstimate {
	var base float64
	if p.HourlyRate != nil {
		base = *p.HourlyRate * trainingDayHours
	}
	travel := p.TravelCostPerKm * distanceKm

	return CostEstimate{
		Base:   base,
		Setup:  p.SetupCost,
		Travel: travel,
		Total:  base + p.SetupCost + travel,
	}
}
