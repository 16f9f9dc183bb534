package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent; the whole
// list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS providers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		hourly_rate REAL,
		travel_cost_per_km REAL NOT NULL DEFAULT 0,
		setup_cost REAL NOT NULL DEFAULT 0,
		cancellation_fee REAL NOT NULL DEFAULT 0,
		currency TEXT NOT NULL DEFAULT 'EUR',
		base_lat REAL,
		base_lng REAL,
		min_group_size INTEGER NOT NULL DEFAULT 1,
		max_group_size INTEGER NOT NULL DEFAULT 0,
		lead_time_days INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS provider_courses (
		provider_id TEXT NOT NULL REFERENCES providers(id) ON DELETE CASCADE,
		course_id TEXT NOT NULL,
		cost_per_participant REAL NOT NULL DEFAULT 0,
		max_capacity INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (provider_id, course_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_provider_courses_course
		ON provider_courses(course_id)`,

	`CREATE TABLE IF NOT EXISTS availability_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		type TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		impact TEXT NOT NULL DEFAULT 'medium'
	)`,

	`CREATE INDEX IF NOT EXISTS idx_availability_employee
		ON availability_records(employee_id)`,

	`CREATE TABLE IF NOT EXISTS learning_profiles (
		employee_id TEXT PRIMARY KEY,
		learning_style TEXT NOT NULL,
		monthly_capacity INTEGER NOT NULL DEFAULT 0,
		language_preference TEXT NOT NULL DEFAULT '',
		performance_level TEXT NOT NULL DEFAULT '',
		success_rate REAL NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS certificate_records (
		employee_id TEXT NOT NULL,
		license_id TEXT NOT NULL,
		status TEXT NOT NULL,
		days_until_expiry INTEGER,
		expiry_date TEXT,
		department TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (employee_id, license_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_certificates_license
		ON certificate_records(license_id)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		course_id TEXT NOT NULL,
		license_id TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		starts_at TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		max_participants INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_course
		ON sessions(course_id)`,

	`CREATE TABLE IF NOT EXISTS session_enrollments (
		session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		employee_id TEXT NOT NULL,
		PRIMARY KEY (session_id, employee_id)
	)`,

	`CREATE TABLE IF NOT EXISTS work_arrangements (
		employee_id TEXT PRIMARY KEY,
		schedule_type TEXT NOT NULL DEFAULT 'on_site',
		primary_lat REAL,
		primary_lng REAL,
		travel_restricted INTEGER NOT NULL DEFAULT 0
	)`,
}
