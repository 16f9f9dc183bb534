package engine

import (
	"testing"
	"time"

	"github.com/danharves/certsched/internal/domain"
	"github.com/stretchr/testify/assert"
)

var (
	windowStart = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	windowEnd   = windowStart.AddDate(0, 0, 1)
)

func absenceRecord(impact domain.ImpactLevel, status domain.AvailabilityStatus, start, end time.Time) domain.EmployeeAvailabilityRecord {
	return domain.EmployeeAvailabilityRecord{
		EmployeeID: "emp-1",
		Type:       "leave",
		StartDate:  start,
		EndDate:    end,
		Status:     status,
		Impact:     impact,
	}
}

func TestScoreEmployee_NoRecordsFullAvailability(t *testing.T) {
	s := ScoreEmployee(EmployeeScoringInput{
		EmployeeID:  "emp-1",
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	})

	assert.Equal(t, 100.0, s.Availability)
}

func TestScoreEmployee_HighImpactOverlapSubtracts30(t *testing.T) {
	rec := absenceRecord(domain.ImpactHigh, domain.AvailabilityActive,
		windowStart.AddDate(0, 0, -2), windowStart.AddDate(0, 0, 3))

	s := ScoreEmployee(EmployeeScoringInput{
		EmployeeID:  "emp-1",
		Records:     []domain.EmployeeAvailabilityRecord{rec},
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	})

	assert.Equal(t, 70.0, s.Availability)
}

func TestScoreEmployee_AvailabilityFlooredAtZero(t *testing.T) {
	rec := absenceRecord(domain.ImpactHigh, domain.AvailabilityActive,
		windowStart.AddDate(0, 0, -1), windowEnd.AddDate(0, 0, 1))
	records := []domain.EmployeeAvailabilityRecord{rec, rec, rec, rec}

	s := ScoreEmployee(EmployeeScoringInput{
		EmployeeID:  "emp-1",
		Records:     records,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	})

	assert.Equal(t, 0.0, s.Availability)
}

func TestScoreEmployee_IgnoresInactiveAndLowImpact(t *testing.T) {
	records := []domain.EmployeeAvailabilityRecord{
		absenceRecord(domain.ImpactHigh, domain.AvailabilityInactive, windowStart, windowEnd),
		absenceRecord(domain.ImpactLow, domain.AvailabilityActive, windowStart, windowEnd),
		absenceRecord(domain.ImpactMedium, domain.AvailabilityActive, windowStart, windowEnd),
	}

	s := ScoreEmployee(EmployeeScoringInput{
		EmployeeID:  "emp-1",
		Records:     records,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	})

	assert.Equal(t, 100.0, s.Availability)
}

func TestScoreEmployee_IgnoresNonOverlappingRecord(t *testing.T) {
	rec := absenceRecord(domain.ImpactHigh, domain.AvailabilityActive,
		windowEnd.AddDate(0, 0, 5), windowEnd.AddDate(0, 0, 10))

	s := ScoreEmployee(EmployeeScoringInput{
		EmployeeID:  "emp-1",
		Records:     []domain.EmployeeAvailabilityRecord{rec},
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	})

	assert.Equal(t, 100.0, s.Availability)
}

func TestScoreEmployee_TravelRestrictedPenalty(t *testing.T) {
	primary := domain.GeoPoint{Lat: 52.52, Lng: 13.405}
	farProvider := domain.GeoPoint{Lat: 53.551, Lng: 9.9937}

	s := ScoreEmployee(EmployeeScoringInput{
		EmployeeID: "emp-1",
		Arrangement: &domain.WorkArrangement{
			EmployeeID:       "emp-1",
			ScheduleType:     domain.ScheduleField,
			PrimaryLocation:  &primary,
			TravelRestricted: true,
		},
		ProviderLocation: &farProvider,
		WindowStart:      windowStart,
		WindowEnd:        windowEnd,
	})

	assert.Equal(t, 80.0, s.Availability)
}

func TestScoreEmployee_CompatibilityMatch(t *testing.T) {
	s := ScoreEmployee(EmployeeScoringInput{
		EmployeeID:      "emp-1",
		Profile:         &domain.LearningProfile{EmployeeID: "emp-1", LearningStyle: "visual"},
		PreferredStyles: []string{"auditory", "visual"},
		WindowStart:     windowStart,
		WindowEnd:       windowEnd,
	})

	assert.Equal(t, 100.0, s.Compatibility)
}

func TestScoreEmployee_CompatibilityMismatch(t *testing.T) {
	s := ScoreEmployee(EmployeeScoringInput{
		EmployeeID:      "emp-1",
		Profile:         &domain.LearningProfile{EmployeeID: "emp-1", LearningStyle: "kinesthetic"},
		PreferredStyles: []string{"visual"},
		WindowStart:     windowStart,
		WindowEnd:       windowEnd,
	})

	assert.Equal(t, 25.0, s.Compatibility)
}

func TestScoreEmployee_CompatibilityNeutralDefaults(t *testing.T) {
	noProfile := ScoreEmployee(EmployeeScoringInput{
		EmployeeID:      "emp-1",
		PreferredStyles: []string{"visual"},
		WindowStart:     windowStart,
		WindowEnd:       windowEnd,
	})
	assert.Equal(t, 50.0, noProfile.Compatibility)

	noPreference := ScoreEmployee(EmployeeScoringInput{
		EmployeeID:  "emp-1",
		Profile:     &domain.LearningProfile{EmployeeID: "emp-1", LearningStyle: "visual"},
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	})
	assert.Equal(t, 50.0, noPreference.Compatibility)
}

func TestUrgencyScore_Bands(t *testing.T) {
	cases := []struct {
		name string
		days *int
		want float64
	}{
		{"missing expiry data", nil, 0},
		{"already expired", intPtr(-5), 100},
		{"expires today", intPtr(0), 100},
		{"within 30 days", intPtr(30), 80},
		{"within 90 days", intPtr(90), 60},
		{"far out", intPtr(91), 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UrgencyScore(tc.days))
		})
	}
}

func intPtr(v int) *int { return &v }
