package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/danharves/certsched/internal/domain"
)

// ConvertedSnapshot holds the domain objects produced from a validated
// import schema, ready for persistence.
type ConvertedSnapshot struct {
	Providers    []*domain.ProviderCandidate
	Certificates []*domain.CertificateExpiryRecord
	Availability []*domain.EmployeeAvailabilityRecord
	Profiles     []*domain.LearningProfile
	Arrangements []*domain.WorkArrangement
	Sessions     []*domain.ExistingSession
	// Enrollments maps session id to the enrolled employee ids.
	Enrollments map[string][]string
}

// Convert transforms a validated SnapshotSchema into domain objects. Call
// ValidateSnapshotSchema first; Convert assumes the schema is valid.
func Convert(schema *SnapshotSchema) *ConvertedSnapshot {
	out := &ConvertedSnapshot{Enrollments: make(map[string][]string)}

	for _, p := range schema.Providers {
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		provider := &domain.ProviderCandidate{
			ID:              id,
			Name:            p.Name,
			HourlyRate:      p.HourlyRate,
			TravelCostPerKm: p.TravelCostPerKm,
			SetupCost:       p.SetupCost,
			CancellationFee: p.CancellationFee,
			Currency:        domain.CoalesceStr(p.Currency, "EUR"),
			BaseLocation:    toGeoPoint(p.BaseLocation),
			MinGroupSize:    defaultIfZero(p.MinGroupSize, 1),
			MaxGroupSize:    p.MaxGroupSize,
			LeadTimeDays:    p.LeadTimeDays,
		}
		for _, c := range p.Courses {
			provider.Courses = append(provider.Courses, domain.CourseOffering{
				CourseID:           c.CourseID,
				CostPerParticipant: c.CostPerParticipant,
				MaxCapacity:        c.MaxCapacity,
			})
		}
		out.Providers = append(out.Providers, provider)
	}

	for _, c := range schema.Certificates {
		out.Certificates = append(out.Certificates, &domain.CertificateExpiryRecord{
			EmployeeID:      c.EmployeeID,
			LicenseID:       c.LicenseID,
			Status:          domain.CertStatus(c.Status),
			DaysUntilExpiry: c.DaysUntilExpiry,
			ExpiryDate:      parseOptionalImportDate(c.ExpiryDate),
			Department:      c.Department,
			Location:        c.Location,
		})
	}

	for _, r := range schema.Availability {
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		start, _ := parseImportDate(r.StartDate)
		end, _ := parseImportDate(r.EndDate)
		out.Availability = append(out.Availability, &domain.EmployeeAvailabilityRecord{
			ID:         id,
			EmployeeID: r.EmployeeID,
			Type:       r.Type,
			StartDate:  start,
			EndDate:    end,
			Status:     domain.AvailabilityStatus(domain.CoalesceStr(r.Status, string(domain.AvailabilityActive))),
			Impact:     domain.ImpactLevel(domain.CoalesceStr(r.Impact, string(domain.ImpactMedium))),
		})
	}

	for _, p := range schema.Profiles {
		out.Profiles = append(out.Profiles, &domain.LearningProfile{
			EmployeeID:         p.EmployeeID,
			LearningStyle:      p.LearningStyle,
			MonthlyCapacity:    p.MonthlyCapacity,
			LanguagePreference: p.LanguagePreference,
			PerformanceLevel:   p.PerformanceLevel,
			SuccessRate:        p.SuccessRate,
		})
	}

	for _, a := range schema.Arrangements {
		out.Arrangements = append(out.Arrangements, &domain.WorkArrangement{
			EmployeeID:       a.EmployeeID,
			ScheduleType:     domain.ScheduleType(domain.CoalesceStr(a.ScheduleType, string(domain.ScheduleOnSite))),
			PrimaryLocation:  toGeoPoint(a.PrimaryLocation),
			TravelRestricted: a.TravelRestricted,
		})
	}

	for _, s := range schema.Sessions {
		id := s.ID
		if id == "" {
			id = uuid.New().String()
		}
		starts, _ := parseImportDate(s.StartsAt)
		out.Sessions = append(out.Sessions, &domain.ExistingSession{
			ID:              id,
			CourseID:        s.CourseID,
			LicenseID:       s.LicenseID,
			Title:           s.Title,
			StartsAt:        starts,
			Location:        s.Location,
			MaxParticipants: s.MaxParticipants,
		})
		if len(s.EnrolledIDs) > 0 {
			out.Enrollments[id] = s.EnrolledIDs
		}
	}

	return out
}

func toGeoPoint(g *GeoImport) *domain.GeoPoint {
	if g == nil {
		return nil
	}
	return &domain.GeoPoint{Lat: g.Lat, Lng: g.Lng}
}

func parseOptionalImportDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := parseImportDate(*s)
	if err != nil {
		return nil
	}
	return &t
}

func defaultIfZero(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
