package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/importer"
)

const snapshotJSON = `{
	"providers": [
		{
			"name": "SafetyFirst Academy",
			"hourly_rate": 100,
			"setup_cost": 500,
			"lead_time_days": 14,
			"base_location": {"lat": 52.52, "lng": 13.405},
			"courses": [
				{"course_id": "license-forklift", "cost_per_participant": 250, "max_capacity": 12}
			]
		}
	],
	"certificates": [
		{"employee_id": "emp-1", "license_id": "license-forklift", "status": "renewal_due", "days_until_expiry": 25, "department": "Logistics"},
		{"employee_id": "emp-2", "license_id": "license-forklift", "status": "expired", "department": "Logistics"}
	],
	"availability": [
		{"employee_id": "emp-1", "type": "leave", "start_date": "2026-09-01", "end_date": "2026-09-05", "impact": "high"}
	],
	"learning_profiles": [
		{"employee_id": "emp-1", "learning_style": "visual", "success_rate": 0.9}
	],
	"work_arrangements": [
		{"employee_id": "emp-2", "schedule_type": "field", "travel_restricted": true}
	],
	"sessions": [
		{"id": "sess-1", "course_id": "license-forklift", "license_id": "license-forklift", "title": "October Refresher", "starts_at": "2026-10-05T09:00:00Z", "max_participants": 10, "enrolled_ids": ["emp-9"]}
	]
}`

func writeSnapshotFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newImportService(f *recommendFixture) ImportService {
	return NewImportService(
		f.providers, f.availability, f.profiles,
		f.certificates, f.sessions, f.arrangements,
	)
}

func TestImportSnapshot_RoundTrip(t *testing.T) {
	f := newRecommendFixture(t)
	ctx := context.Background()

	result, err := newImportService(f).ImportSnapshot(ctx, writeSnapshotFile(t, snapshotJSON))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Providers)
	assert.Equal(t, 2, result.Certificates)
	assert.Equal(t, 1, result.Availability)
	assert.Equal(t, 1, result.Profiles)
	assert.Equal(t, 1, result.Arrangements)
	assert.Equal(t, 1, result.Sessions)
	assert.Equal(t, 1, result.Enrollments)

	// The imported snapshot is immediately usable by both engines.
	resp, err := f.svc.Recommend(ctx, contract.NewRecommendRequest("license-forklift"))
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "SafetyFirst Academy", resp.Recommendations[0].Provider.Name)
	assert.Len(t, resp.Recommendations[0].Employees, 2)

	sessions, err := f.sessions.ListByLicense(ctx, "license-forklift")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].CurrentEnrolled)
}

func TestImportSnapshot_InvalidSchemaRejected(t *testing.T) {
	f := newRecommendFixture(t)

	schema := &importer.SnapshotSchema{
		Certificates: []importer.CertificateImport{
			{EmployeeID: "emp-1", LicenseID: "license-a", Status: "bogus"},
		},
	}
	_, err := newImportService(f).ImportFromSchema(context.Background(), schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid snapshot")
}

func TestImportSnapshot_MissingFile(t *testing.T) {
	f := newRecommendFixture(t)

	_, err := newImportService(f).ImportSnapshot(context.Background(), "/nonexistent/snapshot.json")
	require.Error(t, err)
}
