package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danharves/certsched/internal/db"
	"github.com/danharves/certsched/internal/domain"
)

// SQLiteAvailabilityRepo implements AvailabilityRepo using a SQLite database.
type SQLiteAvailabilityRepo struct {
	db db.DBTX
}

// NewSQLiteAvailabilityRepo creates a new SQLiteAvailabilityRepo.
func NewSQLiteAvailabilityRepo(conn db.DBTX) *SQLiteAvailabilityRepo {
	return &SQLiteAvailabilityRepo{db: conn}
}

const availabilityColumns = `id, employee_id, type, start_date, end_date, status, impact`

func (r *SQLiteAvailabilityRepo) Create(ctx context.Context, rec *domain.EmployeeAvailabilityRecord) error {
	query := `INSERT INTO availability_records (` + availabilityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.Type,
		rec.StartDate.Format(time.RFC3339),
		rec.EndDate.Format(time.RFC3339),
		string(rec.Status),
		string(rec.Impact),
	)
	if err != nil {
		return fmt.Errorf("inserting availability record: %w", err)
	}
	return nil
}

func (r *SQLiteAvailabilityRepo) ListByEmployees(ctx context.Context, employeeIDs []string) ([]domain.EmployeeAvailabilityRecord, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	placeholders := strings.Repeat("?,", len(employeeIDs)-1) + "?"
	args := make([]any, len(employeeIDs))
	for i, id := range employeeIDs {
		args[i] = id
	}
	query := `SELECT ` + availabilityColumns + ` FROM availability_records
		WHERE employee_id IN (` + placeholders + `) ORDER BY employee_id, start_date, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing availability by employees: %w", err)
	}
	defer rows.Close()
	return scanAvailabilityRecords(rows)
}

func (r *SQLiteAvailabilityRepo) List(ctx context.Context) ([]domain.EmployeeAvailabilityRecord, error) {
	query := `SELECT ` + availabilityColumns + ` FROM availability_records
		ORDER BY employee_id, start_date, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing availability records: %w", err)
	}
	defer rows.Close()
	return scanAvailabilityRecords(rows)
}

func scanAvailabilityRecords(rows *sql.Rows) ([]domain.EmployeeAvailabilityRecord, error) {
	var records []domain.EmployeeAvailabilityRecord
	for rows.Next() {
		var rec domain.EmployeeAvailabilityRecord
		var start, end, status, impact string
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Type, &start, &end, &status, &impact); err != nil {
			return nil, fmt.Errorf("scanning availability record: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, start); err == nil {
			rec.StartDate = t
		}
		if t, err := time.Parse(time.RFC3339, end); err == nil {
			rec.EndDate = t
		}
		rec.Status = domain.AvailabilityStatus(status)
		rec.Impact = domain.ImpactLevel(impact)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating availability records: %w", err)
	}
	return records, nil
}

// SQLiteLearningProfileRepo implements LearningProfileRepo using a SQLite database.
type SQLiteLearningProfileRepo struct {
	db db.DBTX
}

// NewSQLiteLearningProfileRepo creates a new SQLiteLearningProfileRepo.
func NewSQLiteLearningProfileRepo(conn db.DBTX) *SQLiteLearningProfileRepo {
	return &SQLiteLearningProfileRepo{db: conn}
}

func (r *SQLiteLearningProfileRepo) Upsert(ctx context.Context, p *domain.LearningProfile) error {
	query := `INSERT INTO learning_profiles
		(employee_id, learning_style, monthly_capacity, language_preference, performance_level, success_rate)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id) DO UPDATE SET
			learning_style = excluded.learning_style,
			monthly_capacity = excluded.monthly_capacity,
			language_preference = excluded.language_preference,
			performance_level = excluded.performance_level,
			success_rate = excluded.success_rate`
	_, err := r.db.ExecContext(ctx, query,
		p.EmployeeID, p.LearningStyle, p.MonthlyCapacity,
		p.LanguagePreference, p.PerformanceLevel, p.SuccessRate,
	)
	if err != nil {
		return fmt.Errorf("upserting learning profile: %w", err)
	}
	return nil
}

func (r *SQLiteLearningProfileRepo) List(ctx context.Context) (map[string]domain.LearningProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT employee_id, learning_style, monthly_capacity, language_preference, performance_level, success_rate
		FROM learning_profiles`)
	if err != nil {
		return nil, fmt.Errorf("listing learning profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[string]domain.LearningProfile)
	for rows.Next() {
		var p domain.LearningProfile
		if err := rows.Scan(&p.EmployeeID, &p.LearningStyle, &p.MonthlyCapacity,
			&p.LanguagePreference, &p.PerformanceLevel, &p.SuccessRate); err != nil {
			return nil, fmt.Errorf("scanning learning profile: %w", err)
		}
		profiles[p.EmployeeID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating learning profiles: %w", err)
	}
	return profiles, nil
}

// SQLiteWorkArrangementRepo implements WorkArrangementRepo using a SQLite database.
type SQLiteWorkArrangementRepo struct {
	db db.DBTX
}

// NewSQLiteWorkArrangementRepo creates a new SQLiteWorkArrangementRepo.
func NewSQLiteWorkArrangementRepo(conn db.DBTX) *SQLiteWorkArrangementRepo {
	return &SQLiteWorkArrangementRepo{db: conn}
}

func (r *SQLiteWorkArrangementRepo) Upsert(ctx context.Context, a *domain.WorkArrangement) error {
	lat, lng := geoPointToColumns(a.PrimaryLocation)
	query := `INSERT INTO work_arrangements
		(employee_id, schedule_type, primary_lat, primary_lng, travel_restricted)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(employee_id) DO UPDATE SET
			schedule_type = excluded.schedule_type,
			primary_lat = excluded.primary_lat,
			primary_lng = excluded.primary_lng,
			travel_restricted = excluded.travel_restricted`
	_, err := r.db.ExecContext(ctx, query,
		a.EmployeeID, string(a.ScheduleType), lat, lng, boolToInt(a.TravelRestricted),
	)
	if err != nil {
		return fmt.Errorf("upserting work arrangement: %w", err)
	}
	return nil
}

func (r *SQLiteWorkArrangementRepo) List(ctx context.Context) (map[string]domain.WorkArrangement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT employee_id, schedule_type, primary_lat, primary_lng, travel_restricted
		FROM work_arrangements`)
	if err != nil {
		return nil, fmt.Errorf("listing work arrangements: %w", err)
	}
	defer rows.Close()

	arrangements := make(map[string]domain.WorkArrangement)
	for rows.Next() {
		var a domain.WorkArrangement
		var schedule string
		var lat, lng sql.NullFloat64
		var restricted int
		if err := rows.Scan(&a.EmployeeID, &schedule, &lat, &lng, &restricted); err != nil {
			return nil, fmt.Errorf("scanning work arrangement: %w", err)
		}
		a.ScheduleType = domain.ScheduleType(schedule)
		a.PrimaryLocation = geoPointFromColumns(lat, lng)
		a.TravelRestricted = intToBool(restricted)
		arrangements[a.EmployeeID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work arrangements: %w", err)
	}
	return arrangements, nil
}
