package domain

import "time"

// EmployeeAvailabilityRecord is one absence or restriction window for an
// employee. Multiple records per employee are allowed and independent.
type EmployeeAvailabilityRecord struct {
	ID         string
	EmployeeID string
	Type       string
	StartDate  time.Time
	EndDate    time.Time
	Status     AvailabilityStatus
	Impact     ImpactLevel
}

// Overlaps reports whether the record's date range intersects [start, end).
func (r EmployeeAvailabilityRecord) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && start.Before(r.EndDate)
}

// LearningProfile is optional per-employee training metadata. Absence of a
// profile implies neutral compatibility.
type LearningProfile struct {
	EmployeeID         string
	LearningStyle      string
	MonthlyCapacity    int
	LanguagePreference string
	PerformanceLevel   string
	SuccessRate        float64
}

// CertificateExpiryRecord is the primary urgency signal: one employee's
// standing against a license.
type CertificateExpiryRecord struct {
	EmployeeID string
	LicenseID  string
	Status     CertStatus
	// DaysUntilExpiry is nil when no expiry data exists (e.g. new employees).
	DaysUntilExpiry *int
	ExpiryDate      *time.Time
	Department      string
	Location        string
}

// WorkArrangement describes how and where an employee works, used to
// penalize infeasible assignments.
type WorkArrangement struct {
	EmployeeID       string
	ScheduleType     ScheduleType
	PrimaryLocation  *GeoPoint
	TravelRestricted bool
}
