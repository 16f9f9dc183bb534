package domain

import "time"

// GeoPoint is a WGS84 coordinate pair in degrees.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// SchedulingConstraints is the immutable input of a recommendation request.
// Optional fields are nil when the caller leaves them unconstrained.
type SchedulingConstraints struct {
	CourseID string

	PreferredStartDate *time.Time
	PreferredEndDate   *time.Time

	MaxParticipants     *int
	MaxBudget           *float64
	MaxTravelDistanceKm *float64
	PreferredLocation   *GeoPoint

	RequiredEmployeeIDs []string
	ExcludedEmployeeIDs []string

	PreferredLearningStyles []string

	Urgency              UrgencyLevel
	TeamCoverageRequired bool
}

// HasPreferredStyle reports whether style is one of the preferred learning
// styles. An empty preference set matches nothing.
func (c SchedulingConstraints) HasPreferredStyle(style string) bool {
	for _, s := range c.PreferredLearningStyles {
		if s == style {
			return true
		}
	}
	return false
}

// IsExcluded reports whether the employee is in the excluded set.
func (c SchedulingConstraints) IsExcluded(employeeID string) bool {
	for _, id := range c.ExcludedEmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// GroupingPolicy holds the tunable bounds of the grouping partitioner.
type GroupingPolicy struct {
	MaxGroupSize int
	// MinGroupSize is the size below which a running group keeps accepting
	// members even past the time-window spread.
	MinGroupSize     int
	TimeWindowDays   int
	ExpiryBufferDays int
}

// DefaultGroupingPolicy returns the standard partitioning bounds.
func DefaultGroupingPolicy() GroupingPolicy {
	return GroupingPolicy{
		MaxGroupSize:     15,
		MinGroupSize:     3,
		TimeWindowDays:   90,
		ExpiryBufferDays: 30,
	}
}
