package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/danharves/certsched/internal/domain"
)

// Provider options
type ProviderOption func(*domain.ProviderCandidate)

func WithHourlyRate(rate float64) ProviderOption {
	return func(p *domain.ProviderCandidate) {
		p.HourlyRate = &rate
	}
}

func WithTravelCost(perKm float64) ProviderOption {
	return func(p *domain.ProviderCandidate) {
		p.TravelCostPerKm = perKm
	}
}

func WithSetupCost(cost float64) ProviderOption {
	return func(p *domain.ProviderCandidate) {
		p.SetupCost = cost
	}
}

func WithBaseLocation(lat, lng float64) ProviderOption {
	return func(p *domain.ProviderCandidate) {
		p.BaseLocation = &domain.GeoPoint{Lat: lat, Lng: lng}
	}
}

func WithLeadTime(days int) ProviderOption {
	return func(p *domain.ProviderCandidate) {
		p.LeadTimeDays = days
	}
}

func WithGroupSizes(min, max int) ProviderOption {
	return func(p *domain.ProviderCandidate) {
		p.MinGroupSize = min
		p.MaxGroupSize = max
	}
}

func WithCourse(courseID string, costPerParticipant float64, maxCapacity int) ProviderOption {
	return func(p *domain.ProviderCandidate) {
		p.Courses = append(p.Courses, domain.CourseOffering{
			CourseID:           courseID,
			CostPerParticipant: costPerParticipant,
			MaxCapacity:        maxCapacity,
		})
	}
}

func NewTestProvider(name string, opts ...ProviderOption) *domain.ProviderCandidate {
	now := time.Now().UTC()
	p := &domain.ProviderCandidate{
		ID:           uuid.New().String(),
		Name:         name,
		Currency:     "EUR",
		MinGroupSize: 1,
		MaxGroupSize: 20,
		LeadTimeDays: 14,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Certificate options
type CertificateOption func(*domain.CertificateExpiryRecord)

func WithCertStatus(s domain.CertStatus) CertificateOption {
	return func(c *domain.CertificateExpiryRecord) {
		c.Status = s
	}
}

func WithDaysUntilExpiry(days int) CertificateOption {
	return func(c *domain.CertificateExpiryRecord) {
		c.DaysUntilExpiry = &days
	}
}

func WithExpiryDate(d time.Time) CertificateOption {
	return func(c *domain.CertificateExpiryRecord) {
		c.ExpiryDate = &d
	}
}

func WithDepartment(dept string) CertificateOption {
	return func(c *domain.CertificateExpiryRecord) {
		c.Department = dept
	}
}

func WithCertLocation(loc string) CertificateOption {
	return func(c *domain.CertificateExpiryRecord) {
		c.Location = loc
	}
}

func NewTestCertificate(employeeID, licenseID string, opts ...CertificateOption) *domain.CertificateExpiryRecord {
	c := &domain.CertificateExpiryRecord{
		EmployeeID: employeeID,
		LicenseID:  licenseID,
		Status:     domain.CertRenewalDue,
		Department: "Operations",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Availability options
type AvailabilityOption func(*domain.EmployeeAvailabilityRecord)

func WithImpact(i domain.ImpactLevel) AvailabilityOption {
	return func(r *domain.EmployeeAvailabilityRecord) {
		r.Impact = i
	}
}

func WithAvailabilityType(t string) AvailabilityOption {
	return func(r *domain.EmployeeAvailabilityRecord) {
		r.Type = t
	}
}

func WithAvailabilityStatus(s domain.AvailabilityStatus) AvailabilityOption {
	return func(r *domain.EmployeeAvailabilityRecord) {
		r.Status = s
	}
}

func NewTestAvailability(employeeID string, start, end time.Time, opts ...AvailabilityOption) *domain.EmployeeAvailabilityRecord {
	r := &domain.EmployeeAvailabilityRecord{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Type:       "leave",
		StartDate:  start,
		EndDate:    end,
		Status:     domain.AvailabilityActive,
		Impact:     domain.ImpactHigh,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Session options
type SessionOption func(*domain.ExistingSession)

func WithSessionLocation(loc string) SessionOption {
	return func(s *domain.ExistingSession) {
		s.Location = loc
	}
}

func WithSessionTitle(title string) SessionOption {
	return func(s *domain.ExistingSession) {
		s.Title = title
	}
}

func NewTestSession(courseID, licenseID string, startsAt time.Time, maxParticipants int, opts ...SessionOption) *domain.ExistingSession {
	s := &domain.ExistingSession{
		ID:              uuid.New().String(),
		CourseID:        courseID,
		LicenseID:       licenseID,
		Title:           "Certification Training",
		StartsAt:        startsAt,
		MaxParticipants: maxParticipants,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Learning profile options
type ProfileOption func(*domain.LearningProfile)

func WithLearningStyle(style string) ProfileOption {
	return func(p *domain.LearningProfile) {
		p.LearningStyle = style
	}
}

func WithSuccessRate(rate float64) ProfileOption {
	return func(p *domain.LearningProfile) {
		p.SuccessRate = rate
	}
}

func NewTestProfile(employeeID string, opts ...ProfileOption) *domain.LearningProfile {
	p := &domain.LearningProfile{
		EmployeeID:      employeeID,
		LearningStyle:   "blended",
		MonthlyCapacity: 2,
		SuccessRate:     0.8,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Work arrangement options
type ArrangementOption func(*domain.WorkArrangement)

func WithTravelRestricted() ArrangementOption {
	return func(a *domain.WorkArrangement) {
		a.TravelRestricted = true
	}
}

func WithPrimaryLocation(lat, lng float64) ArrangementOption {
	return func(a *domain.WorkArrangement) {
		a.PrimaryLocation = &domain.GeoPoint{Lat: lat, Lng: lng}
	}
}

func WithScheduleType(t domain.ScheduleType) ArrangementOption {
	return func(a *domain.WorkArrangement) {
		a.ScheduleType = t
	}
}

func NewTestArrangement(employeeID string, opts ...ArrangementOption) *domain.WorkArrangement {
	a := &domain.WorkArrangement{
		EmployeeID:   employeeID,
		ScheduleType: domain.ScheduleOnSite,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
