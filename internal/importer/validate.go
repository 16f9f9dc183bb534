package importer

import (
	"fmt"
	"time"

	"github.com/danharves/certsched/internal/domain"
)

var (
	validCertStatuses = map[string]bool{
		"new": true, "expired": true, "renewal_due": true,
		"renewal_approaching": true, "valid": true,
	}
	validImpacts       = map[string]bool{"low": true, "medium": true, "high": true}
	validAvailStatuses = map[string]bool{"active": true, "inactive": true}
	validSchedules     = map[string]bool{"on_site": true, "hybrid": true, "remote": true, "field": true}
)

// ValidateSnapshotSchema checks the import schema before conversion. Returns
// a slice of all validation errors found.
func ValidateSnapshotSchema(schema *SnapshotSchema) []error {
	var errs []error

	errs = append(errs, validateProviders(schema.Providers)...)
	errs = append(errs, validateCertificates(schema.Certificates)...)
	errs = append(errs, validateAvailability(schema.Availability)...)
	errs = append(errs, validateProfiles(schema.Profiles)...)
	errs = append(errs, validateArrangements(schema.Arrangements)...)
	errs = append(errs, validateSessions(schema.Sessions)...)

	return errs
}

func validateProviders(providers []ProviderImport) []error {
	var errs []error

	for i, p := range providers {
		prefix := fmt.Sprintf("providers[%d]", i)

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.HourlyRate != nil && *p.HourlyRate < 0 {
			errs = append(errs, fmt.Errorf("%s.hourly_rate must not be negative", prefix))
		}
		if p.TravelCostPerKm < 0 {
			errs = append(errs, fmt.Errorf("%s.travel_cost_per_km must not be negative", prefix))
		}
		if p.MinGroupSize > 0 && p.MaxGroupSize > 0 && p.MinGroupSize > p.MaxGroupSize {
			errs = append(errs, fmt.Errorf("%s: min_group_size (%d) must be <= max_group_size (%d)", prefix, p.MinGroupSize, p.MaxGroupSize))
		}
		if len(p.Courses) == 0 {
			errs = append(errs, fmt.Errorf("%s.courses must not be empty", prefix))
		}
		for j, c := range p.Courses {
			if c.CourseID == "" {
				errs = append(errs, fmt.Errorf("%s.courses[%d].course_id is required", prefix, j))
			}
		}
	}

	return errs
}

func validateCertificates(certs []CertificateImport) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, c := range certs {
		prefix := fmt.Sprintf("certificates[%d]", i)

		if c.EmployeeID == "" {
			errs = append(errs, fmt.Errorf("%s.employee_id is required", prefix))
		}
		if c.LicenseID == "" {
			errs = append(errs, fmt.Errorf("%s.license_id is required", prefix))
		}
		if c.Status == "" {
			errs = append(errs, fmt.Errorf("%s.status is required", prefix))
		} else if !validCertStatuses[c.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, c.Status))
		}

		key := c.EmployeeID + "/" + c.LicenseID
		if c.EmployeeID != "" && c.LicenseID != "" {
			if seen[key] {
				errs = append(errs, fmt.Errorf("%s: duplicate record for employee %q license %q", prefix, c.EmployeeID, c.LicenseID))
			}
			seen[key] = true
		}

		errs = append(errs, validateOptionalDate(prefix+".expiry_date", c.ExpiryDate)...)
	}

	return errs
}

func validateAvailability(records []AvailabilityImport) []error {
	var errs []error

	for i, r := range records {
		prefix := fmt.Sprintf("availability[%d]", i)

		if r.EmployeeID == "" {
			errs = append(errs, fmt.Errorf("%s.employee_id is required", prefix))
		}
		if r.Type == "" {
			errs = append(errs, fmt.Errorf("%s.type is required", prefix))
		} else if !domain.ValidAvailabilityTypes[r.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, r.Type))
		}
		if r.Status != "" && !validAvailStatuses[r.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, r.Status))
		}
		if r.Impact != "" && !validImpacts[r.Impact] {
			errs = append(errs, fmt.Errorf("%s.impact: invalid value %q", prefix, r.Impact))
		}

		start, startErrs := requireDate(prefix+".start_date", r.StartDate)
		end, endErrs := requireDate(prefix+".end_date", r.EndDate)
		errs = append(errs, startErrs...)
		errs = append(errs, endErrs...)
		if len(startErrs) == 0 && len(endErrs) == 0 && !end.After(start) {
			errs = append(errs, fmt.Errorf("%s: end_date %q must be after start_date %q", prefix, r.EndDate, r.StartDate))
		}
	}

	return errs
}

func validateProfiles(profiles []ProfileImport) []error {
	var errs []error

	for i, p := range profiles {
		prefix := fmt.Sprintf("learning_profiles[%d]", i)

		if p.EmployeeID == "" {
			errs = append(errs, fmt.Errorf("%s.employee_id is required", prefix))
		}
		if p.LearningStyle == "" {
			errs = append(errs, fmt.Errorf("%s.learning_style is required", prefix))
		} else if !domain.ValidLearningStyles[p.LearningStyle] {
			errs = append(errs, fmt.Errorf("%s.learning_style: invalid value %q", prefix, p.LearningStyle))
		}
		if p.SuccessRate < 0 || p.SuccessRate > 1 {
			errs = append(errs, fmt.Errorf("%s.success_rate must be within [0, 1]", prefix))
		}
	}

	return errs
}

func validateArrangements(arrangements []ArrangementImport) []error {
	var errs []error

	for i, a := range arrangements {
		prefix := fmt.Sprintf("work_arrangements[%d]", i)

		if a.EmployeeID == "" {
			errs = append(errs, fmt.Errorf("%s.employee_id is required", prefix))
		}
		if a.ScheduleType != "" && !validSchedules[a.ScheduleType] {
			errs = append(errs, fmt.Errorf("%s.schedule_type: invalid value %q", prefix, a.ScheduleType))
		}
	}

	return errs
}

func validateSessions(sessions []SessionImport) []error {
	var errs []error

	for i, s := range sessions {
		prefix := fmt.Sprintf("sessions[%d]", i)

		if s.CourseID == "" {
			errs = append(errs, fmt.Errorf("%s.course_id is required", prefix))
		}
		if s.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if s.MaxParticipants <= 0 {
			errs = append(errs, fmt.Errorf("%s.max_participants must be positive", prefix))
		}
		if len(s.EnrolledIDs) > s.MaxParticipants {
			errs = append(errs, fmt.Errorf("%s: %d enrolled exceed max_participants %d", prefix, len(s.EnrolledIDs), s.MaxParticipants))
		}

		_, dateErrs := requireDate(prefix+".starts_at", s.StartsAt)
		errs = append(errs, dateErrs...)
	}

	return errs
}

func requireDate(field, value string) (time.Time, []error) {
	if value == "" {
		return time.Time{}, []error{fmt.Errorf("%s is required", field)}
	}
	t, err := parseImportDate(value)
	if err != nil {
		return time.Time{}, []error{fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD or RFC3339)", field, value)}
	}
	return t, nil
}

func validateOptionalDate(field string, value *string) []error {
	if value == nil || *value == "" {
		return nil
	}
	if _, err := parseImportDate(*value); err != nil {
		return []error{fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD or RFC3339)", field, *value)}
	}
	return nil
}

// parseImportDate accepts both bare dates and full RFC3339 timestamps.
func parseImportDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
