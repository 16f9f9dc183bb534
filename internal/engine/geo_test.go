package engine

import (
	"testing"

	"github.com/danharves/certsched/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDistance_KnownValue(t *testing.T) {
	// One degree of longitude on the equator.
	a := domain.GeoPoint{Lat: 0, Lng: 0}
	b := domain.GeoPoint{Lat: 0, Lng: 1}

	assert.InDelta(t, 111.19, Distance(a, b), 0.01)
}

func TestDistance_Symmetric(t *testing.T) {
	a := domain.GeoPoint{Lat: 52.52, Lng: 13.405}  // Berlin
	b := domain.GeoPoint{Lat: 53.551, Lng: 9.9937} // Hamburg

	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.Greater(t, Distance(a, b), 200.0)
	assert.Less(t, Distance(a, b), 300.0)
}

func TestDistance_SamePoint(t *testing.T) {
	p := domain.GeoPoint{Lat: 48.8566, Lng: 2.3522}

	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_RoundedToTwoDecimals(t *testing.T) {
	a := domain.GeoPoint{Lat: 10.1, Lng: 20.2}
	b := domain.GeoPoint{Lat: 10.3, Lng: 20.4}

	d := Distance(a, b)
	assert.Equal(t, round2(d), d)
}
