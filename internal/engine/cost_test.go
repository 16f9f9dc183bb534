package engine

import (
	"testing"

	"github.com/danharves/certsched/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEstimateCost_RateTravelNoSetup(t *testing.T) {
	rate := 100.0
	p := domain.ProviderCandidate{
		HourlyRate:      &rate,
		TravelCostPerKm: 2,
	}

	est := EstimateCost(p, 50)

	assert.Equal(t, 800.0, est.Base)
	assert.Equal(t, 100.0, est.Travel)
	assert.Equal(t, 0.0, est.Setup)
	assert.Equal(t, 900.0, est.Total)
}

func TestEstimateCost_NoPublishedRate(t *testing.T) {
	p := domain.ProviderCandidate{
		TravelCostPerKm: 1.5,
		SetupCost:       250,
	}

	est := EstimateCost(p, 10)

	assert.Equal(t, 0.0, est.Base)
	assert.Equal(t, 265.0, est.Total)
}

func TestEstimateCost_ZeroDistanceZeroesTravel(t *testing.T) {
	rate := 80.0
	p := domain.ProviderCandidate{
		HourlyRate:      &rate,
		TravelCostPerKm: 3,
		SetupCost:       100,
	}

	est := EstimateCost(p, 0)

	assert.Equal(t, 0.0, est.Travel)
	assert.Equal(t, 740.0, est.Total)
}
