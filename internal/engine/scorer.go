package engine

import (
	"fmt"
	"math"

	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/domain"
)

const (
	publishedRateBonus = 20.0
	distancePenaltyCap = 30.0
	budgetRewardWeight = 25.0
)

// ScoringWeights controls how much each averaged employee factor contributes
// to the composite score.
type ScoringWeights struct {
	Availability  float64
	Compatibility float64
	Urgency       float64
}

// DefaultWeights returns the standard factor weights.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Availability:  0.30,
		Compatibility: 0.15,
		Urgency:       0.10,
	}
}

// ProviderScoringInput is one provider candidate with all precomputed data
// needed to score it.
type ProviderScoringInput struct {
	Provider    domain.ProviderCandidate
	Constraints domain.SchedulingConstraints
	DistanceKm  float64
	Cost        CostEstimate
	Employees   []EmployeeScores
	Weights     ScoringWeights
}

// ScoredProvider is the scoring outcome for one candidate. Excluded
// candidates carry the exclusion instead of a score.
type ScoredProvider struct {
	Input     ProviderScoringInput
	Score     float64
	Reasons   []contract.ScoreReason
	Excluded  bool
	Exclusion *contract.Exclusion
}

// ScoreProvider applies the hard constraint filter, then the composite
// scoring model. The final score is clamped to [0, 100].
func ScoreProvider(input ProviderScoringInput) ScoredProvider {
	result := ScoredProvider{Input: input}

	if excl := hardReject(input); excl != nil {
		result.Excluded = true
		result.Exclusion = excl
		return result
	}

	score := 100.0
	factors := []func(ProviderScoringInput) (float64, *contract.ScoreReason){
		scorePublishedRate,
		scoreDistancePenalty,
		scoreUnderBudget,
		scoreTeamAvailability,
		scoreCompatibility,
		scoreUrgency,
	}
	for _, f := range factors {
		delta, reason := f(input)
		score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}

	result.Score = clampScore(score)
	return result
}

// hardReject returns a typed exclusion when the candidate violates a hard
// constraint. Exclusion is expected behavior, not an error.
func hardReject(input ProviderScoringInput) *contract.Exclusion {
	c := input.Constraints
	p := input.Provider

	if c.MaxBudget != nil && input.Cost.Total > *c.MaxBudget {
		return &contract.Exclusion{
			ProviderID:   p.ID,
			ProviderName: p.Name,
			Code:         contract.ExcludeOverBudget,
			Message:      fmt.Sprintf("estimated cost %.2f exceeds budget %.2f", input.Cost.Total, *c.MaxBudget),
		}
	}
	if c.MaxTravelDistanceKm != nil && input.DistanceKm > *c.MaxTravelDistanceKm {
		return &contract.Exclusion{
			ProviderID:   p.ID,
			ProviderName: p.Name,
			Code:         contract.ExcludeTooFar,
			Message:      fmt.Sprintf("distance %.2f km exceeds limit %.2f km", input.DistanceKm, *c.MaxTravelDistanceKm),
		}
	}
	return nil
}

// scorePublishedRate rewards providers that publish an hourly rate, treated
// as a data-quality signal.
func scorePublishedRate(input ProviderScoringInput) (float64, *contract.ScoreReason) {
	if input.Provider.HourlyRate == nil {
		return 0, nil
	}
	delta := publishedRateBonus
	return delta, &contract.ScoreReason{
		Code:        contract.ReasonPublishedRate,
		Message:     "Provider publishes an hourly rate",
		WeightDelta: &delta,
	}
}

func scoreDistancePenalty(input ProviderScoringInput) (float64, *contract.ScoreReason) {
	if input.DistanceKm <= 0 {
		return 0, nil
	}
	delta := -math.Min(input.DistanceKm*0.5, distancePenaltyCap)
	return delta, &contract.ScoreReason{
		Code:        contract.ReasonDistancePenalty,
		Message:     fmt.Sprintf("%.2f km from preferred location", input.DistanceKm),
		WeightDelta: &delta,
	}
}

// scoreUnderBudget rewards headroom under the budget constraint. Only called
// for candidates that survived the hard budget reject.
func scoreUnderBudget(input ProviderScoringInput) (float64, *contract.ScoreReason) {
	budget := input.Constraints.MaxBudget
	if budget == nil || *budget <= 0 {
		return 0, nil
	}
	delta := ((*budget - input.Cost.Total) / *budget) * budgetRewardWeight
	return delta, &contract.ScoreReason{
		Code:        contract.ReasonUnderBudget,
		Message:     fmt.Sprintf("Estimated cost %.2f of %.2f budget", input.Cost.Total, *budget),
		WeightDelta: &delta,
	}
}

func scoreTeamAvailability(input ProviderScoringInput) (float64, *contract.ScoreReason) {
	if len(input.Employees) == 0 {
		return 0, nil
	}
	avg := averageOf(input.Employees, func(e EmployeeScores) float64 { return e.Availability })
	delta := avg * input.Weights.Availability
	return delta, &contract.ScoreReason{
		Code:        contract.ReasonAvailability,
		Message:     fmt.Sprintf("Average team availability %.0f", avg),
		WeightDelta: &delta,
	}
}

func scoreCompatibility(input ProviderScoringInput) (float64, *contract.ScoreReason) {
	if len(input.Employees) == 0 {
		return 0, nil
	}
	avg := averageOf(input.Employees, func(e EmployeeScores) float64 { return e.Compatibility })
	delta := avg * input.Weights.Compatibility
	return delta, &contract.ScoreReason{
		Code:        contract.ReasonCompatibility,
		Message:     fmt.Sprintf("Average learning-style compatibility %.0f", avg),
		WeightDelta: &delta,
	}
}

func scoreUrgency(input ProviderScoringInput) (float64, *contract.ScoreReason) {
	if len(input.Employees) == 0 {
		return 0, nil
	}
	avg := averageOf(input.Employees, func(e EmployeeScores) float64 { return e.Urgency })
	delta := avg * input.Weights.Urgency
	return delta, &contract.ScoreReason{
		Code:        contract.ReasonUrgency,
		Message:     fmt.Sprintf("Average certificate urgency %.0f", avg),
		WeightDelta: &delta,
	}
}

func averageOf(employees []EmployeeScores, pick func(EmployeeScores) float64) float64 {
	var sum float64
	for _, e := range employees {
		sum += pick(e)
	}
	return sum / float64(len(employees))
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
