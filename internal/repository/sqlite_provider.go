package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danharves/certsched/internal/db"
	"github.com/danharves/certsched/internal/domain"
)

// SQLiteProviderRepo implements ProviderRepo using a SQLite database.
type SQLiteProviderRepo struct {
	db db.DBTX
}

// NewSQLiteProviderRepo creates a new SQLiteProviderRepo.
func NewSQLiteProviderRepo(conn db.DBTX) *SQLiteProviderRepo {
	return &SQLiteProviderRepo{db: conn}
}

const providerColumns = `id, name, hourly_rate, travel_cost_per_km, setup_cost,
	cancellation_fee, currency, base_lat, base_lng, min_group_size,
	max_group_size, lead_time_days, created_at, updated_at`

func (r *SQLiteProviderRepo) Create(ctx context.Context, p *domain.ProviderCandidate) error {
	lat, lng := geoPointToColumns(p.BaseLocation)
	query := `INSERT INTO providers (` + providerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		nullableFloatToValue(p.HourlyRate),
		p.TravelCostPerKm,
		p.SetupCost,
		p.CancellationFee,
		p.Currency,
		lat,
		lng,
		p.MinGroupSize,
		p.MaxGroupSize,
		p.LeadTimeDays,
		nowUTC(),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting provider: %w", err)
	}

	for _, course := range p.Courses {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO provider_courses (provider_id, course_id, cost_per_participant, max_capacity)
			VALUES (?, ?, ?, ?)`,
			p.ID, course.CourseID, course.CostPerParticipant, course.MaxCapacity,
		)
		if err != nil {
			return fmt.Errorf("inserting provider course: %w", err)
		}
	}
	return nil
}

func (r *SQLiteProviderRepo) GetByID(ctx context.Context, id string) (*domain.ProviderCandidate, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := r.scanProvider(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadCourses(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProviderRepo) ListByCourse(ctx context.Context, courseID string) ([]domain.ProviderCandidate, error) {
	query := `SELECT ` + providerColumns + ` FROM providers
		WHERE id IN (SELECT provider_id FROM provider_courses WHERE course_id = ?)
		ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing providers by course: %w", err)
	}
	defer rows.Close()
	return r.scanProviders(ctx, rows)
}

func (r *SQLiteProviderRepo) List(ctx context.Context) ([]domain.ProviderCandidate, error) {
	query := `SELECT ` + providerColumns + ` FROM providers ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing providers: %w", err)
	}
	defer rows.Close()
	return r.scanProviders(ctx, rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteProviderRepo) scanProvider(row rowScanner) (*domain.ProviderCandidate, error) {
	var p domain.ProviderCandidate
	var hourlyRate sql.NullFloat64
	var lat, lng sql.NullFloat64
	var createdAt, updatedAt string

	err := row.Scan(
		&p.ID,
		&p.Name,
		&hourlyRate,
		&p.TravelCostPerKm,
		&p.SetupCost,
		&p.CancellationFee,
		&p.Currency,
		&lat,
		&lng,
		&p.MinGroupSize,
		&p.MaxGroupSize,
		&p.LeadTimeDays,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning provider: %w", err)
	}

	p.HourlyRate = nullableFloat(hourlyRate)
	p.BaseLocation = geoPointFromColumns(lat, lng)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		p.UpdatedAt = t
	}
	return &p, nil
}

func (r *SQLiteProviderRepo) scanProviders(ctx context.Context, rows *sql.Rows) ([]domain.ProviderCandidate, error) {
	var providers []domain.ProviderCandidate
	for rows.Next() {
		p, err := r.scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating providers: %w", err)
	}
	for i := range providers {
		if err := r.loadCourses(ctx, &providers[i]); err != nil {
			return nil, err
		}
	}
	return providers, nil
}

func (r *SQLiteProviderRepo) loadCourses(ctx context.Context, p *domain.ProviderCandidate) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_id, cost_per_participant, max_capacity
		FROM provider_courses WHERE provider_id = ? ORDER BY course_id`,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("loading provider courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.CourseOffering
		if err := rows.Scan(&c.CourseID, &c.CostPerParticipant, &c.MaxCapacity); err != nil {
			return fmt.Errorf("scanning provider course: %w", err)
		}
		p.Courses = append(p.Courses, c)
	}
	return rows.Err()
}
