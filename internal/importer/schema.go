package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotSchema is the top-level JSON structure for a scheduling snapshot
// import: providers, employee records, and existing sessions in one file.
type SnapshotSchema struct {
	Providers    []ProviderImport    `json:"providers,omitempty"`
	Certificates []CertificateImport `json:"certificates,omitempty"`
	Availability []AvailabilityImport `json:"availability,omitempty"`
	Profiles     []ProfileImport     `json:"learning_profiles,omitempty"`
	Arrangements []ArrangementImport `json:"work_arrangements,omitempty"`
	Sessions     []SessionImport     `json:"sessions,omitempty"`
}

// GeoImport is a latitude/longitude pair.
type GeoImport struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CourseImport defines one course a provider offers.
type CourseImport struct {
	CourseID           string  `json:"course_id"`
	CostPerParticipant float64 `json:"cost_per_participant"`
	MaxCapacity        int     `json:"max_capacity"`
}

// ProviderImport defines a training provider in the import file.
type ProviderImport struct {
	ID              string         `json:"id,omitempty"`
	Name            string         `json:"name"`
	HourlyRate      *float64       `json:"hourly_rate,omitempty"`
	TravelCostPerKm float64        `json:"travel_cost_per_km,omitempty"`
	SetupCost       float64        `json:"setup_cost,omitempty"`
	CancellationFee float64        `json:"cancellation_fee,omitempty"`
	Currency        string         `json:"currency,omitempty"`
	BaseLocation    *GeoImport     `json:"base_location,omitempty"`
	MinGroupSize    int            `json:"min_group_size,omitempty"`
	MaxGroupSize    int            `json:"max_group_size,omitempty"`
	LeadTimeDays    int            `json:"lead_time_days,omitempty"`
	Courses         []CourseImport `json:"courses"`
}

// CertificateImport defines one employee's standing against a license.
type CertificateImport struct {
	EmployeeID      string  `json:"employee_id"`
	LicenseID       string  `json:"license_id"`
	Status          string  `json:"status"`
	DaysUntilExpiry *int    `json:"days_until_expiry,omitempty"`
	ExpiryDate      *string `json:"expiry_date,omitempty"`
	Department      string  `json:"department,omitempty"`
	Location        string  `json:"location,omitempty"`
}

// AvailabilityImport defines one absence or restriction window.
type AvailabilityImport struct {
	ID         string `json:"id,omitempty"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status,omitempty"`
	Impact     string `json:"impact,omitempty"`
}

// ProfileImport defines optional per-employee learning metadata.
type ProfileImport struct {
	EmployeeID         string  `json:"employee_id"`
	LearningStyle      string  `json:"learning_style"`
	MonthlyCapacity    int     `json:"monthly_capacity,omitempty"`
	LanguagePreference string  `json:"language_preference,omitempty"`
	PerformanceLevel   string  `json:"performance_level,omitempty"`
	SuccessRate        float64 `json:"success_rate,omitempty"`
}

// ArrangementImport defines how and where an employee works.
type ArrangementImport struct {
	EmployeeID       string     `json:"employee_id"`
	ScheduleType     string     `json:"schedule_type,omitempty"`
	PrimaryLocation  *GeoImport `json:"primary_location,omitempty"`
	TravelRestricted bool       `json:"travel_restricted,omitempty"`
}

// SessionImport defines an already-scheduled session and its enrollments.
type SessionImport struct {
	ID              string   `json:"id,omitempty"`
	CourseID        string   `json:"course_id"`
	LicenseID       string   `json:"license_id,omitempty"`
	Title           string   `json:"title"`
	StartsAt        string   `json:"starts_at"`
	Location        string   `json:"location,omitempty"`
	MaxParticipants int      `json:"max_participants"`
	EnrolledIDs     []string `json:"enrolled_ids,omitempty"`
}

// LoadSnapshotSchema reads and parses a snapshot import JSON file.
func LoadSnapshotSchema(path string) (*SnapshotSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema SnapshotSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
