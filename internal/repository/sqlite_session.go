package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danharves/certsched/internal/db"
	"github.com/danharves/certsched/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
// CurrentEnrolled is never stored; it is derived from session_enrollments
// at read time.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.ExistingSession) error {
	query := `INSERT INTO sessions (id, course_id, license_id, title, starts_at, location, max_participants)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.CourseID,
		s.LicenseID,
		s.Title,
		s.StartsAt.Format(time.RFC3339),
		s.Location,
		s.MaxParticipants,
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Enroll(ctx context.Context, sessionID, employeeID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_enrollments (session_id, employee_id) VALUES (?, ?)`,
		sessionID, employeeID,
	)
	if err != nil {
		return fmt.Errorf("enrolling employee: %w", err)
	}
	return nil
}

const sessionQuery = `SELECT s.id, s.course_id, s.license_id, s.title, s.starts_at, s.location, s.max_participants,
		(SELECT COUNT(*) FROM session_enrollments e WHERE e.session_id = s.id) AS enrolled
	FROM sessions s`

func (r *SQLiteSessionRepo) ListByLicense(ctx context.Context, licenseID string) ([]domain.ExistingSession, error) {
	query := sessionQuery + ` WHERE s.license_id = ? ORDER BY s.starts_at, s.id`
	rows, err := r.db.QueryContext(ctx, query, licenseID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by license: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]domain.ExistingSession, error) {
	query := sessionQuery + ` ORDER BY s.starts_at, s.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]domain.ExistingSession, error) {
	var sessions []domain.ExistingSession
	for rows.Next() {
		var s domain.ExistingSession
		var startsAt string
		if err := rows.Scan(&s.ID, &s.CourseID, &s.LicenseID, &s.Title, &startsAt,
			&s.Location, &s.MaxParticipants, &s.CurrentEnrolled); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, startsAt); err == nil {
			s.StartsAt = t
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}
