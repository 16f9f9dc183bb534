package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *SnapshotSchema {
	rate := 100.0
	days := 45
	return &SnapshotSchema{
		Providers: []ProviderImport{
			{
				Name:       "SafetyFirst Academy",
				HourlyRate: &rate,
				Courses:    []CourseImport{{CourseID: "course-forklift", CostPerParticipant: 250, MaxCapacity: 12}},
			},
		},
		Certificates: []CertificateImport{
			{EmployeeID: "emp-1", LicenseID: "license-forklift", Status: "renewal_due", DaysUntilExpiry: &days, Department: "Logistics"},
		},
		Availability: []AvailabilityImport{
			{EmployeeID: "emp-1", Type: "leave", StartDate: "2026-09-01", EndDate: "2026-09-14", Impact: "high"},
		},
		Profiles: []ProfileImport{
			{EmployeeID: "emp-1", LearningStyle: "visual", SuccessRate: 0.8},
		},
		Arrangements: []ArrangementImport{
			{EmployeeID: "emp-1", ScheduleType: "field", TravelRestricted: true},
		},
		Sessions: []SessionImport{
			{CourseID: "course-forklift", LicenseID: "license-forklift", Title: "Refresher", StartsAt: "2026-10-05T09:00:00Z", MaxParticipants: 10, EnrolledIDs: []string{"emp-2"}},
		},
	}
}

func TestValidateSnapshotSchema_Valid(t *testing.T) {
	errs := ValidateSnapshotSchema(validSchema())
	assert.Empty(t, errs)
}

func TestValidateSnapshotSchema_ProviderErrors(t *testing.T) {
	s := validSchema()
	s.Providers[0].Name = ""
	s.Providers[0].Courses = nil

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "name is required")
	assert.Contains(t, errs[1].Error(), "courses must not be empty")
}

func TestValidateSnapshotSchema_DuplicateCertificate(t *testing.T) {
	s := validSchema()
	s.Certificates = append(s.Certificates, s.Certificates[0])

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate record")
}

func TestValidateSnapshotSchema_InvalidStatus(t *testing.T) {
	s := validSchema()
	s.Certificates[0].Status = "lapsed"

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `invalid value "lapsed"`)
}

func TestValidateSnapshotSchema_AvailabilityDates(t *testing.T) {
	s := validSchema()
	s.Availability[0].StartDate = "2026-09-14"
	s.Availability[0].EndDate = "2026-09-01"

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "must be after")
}

func TestValidateSnapshotSchema_InvalidAvailabilityType(t *testing.T) {
	s := validSchema()
	s.Availability[0].Type = "holiday"

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `type: invalid value "holiday"`)
}

func TestValidateSnapshotSchema_ProfileBounds(t *testing.T) {
	s := validSchema()
	s.Profiles[0].SuccessRate = 1.5
	s.Profiles[0].LearningStyle = "osmosis"

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 2)
}

func TestValidateSnapshotSchema_SessionOverEnrolled(t *testing.T) {
	s := validSchema()
	s.Sessions[0].MaxParticipants = 1
	s.Sessions[0].EnrolledIDs = []string{"emp-1", "emp-2"}

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "enrolled exceed max_participants")
}
