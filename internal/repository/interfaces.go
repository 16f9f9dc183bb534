package repository

import (
	"context"

	"github.com/danharves/certsched/internal/domain"
)

// The engine computes over read-only snapshots supplied by these
// repositories. Write methods exist for seeding, import, and tests; the
// recommendation and grouping flows never write.

type ProviderRepo interface {
	Create(ctx context.Context, p *domain.ProviderCandidate) error
	GetByID(ctx context.Context, id string) (*domain.ProviderCandidate, error)
	// ListByCourse returns providers offering the course, ordered by name
	// then id for deterministic downstream tie-breaks.
	ListByCourse(ctx context.Context, courseID string) ([]domain.ProviderCandidate, error)
	List(ctx context.Context) ([]domain.ProviderCandidate, error)
}

type AvailabilityRepo interface {
	Create(ctx context.Context, r *domain.EmployeeAvailabilityRecord) error
	ListByEmployees(ctx context.Context, employeeIDs []string) ([]domain.EmployeeAvailabilityRecord, error)
	List(ctx context.Context) ([]domain.EmployeeAvailabilityRecord, error)
}

type LearningProfileRepo interface {
	Upsert(ctx context.Context, p *domain.LearningProfile) error
	// List returns all profiles keyed by employee id.
	List(ctx context.Context) (map[string]domain.LearningProfile, error)
}

type CertificateRepo interface {
	Upsert(ctx context.Context, c *domain.CertificateExpiryRecord) error
	// ListByLicense returns records for the license ordered by employee id.
	ListByLicense(ctx context.Context, licenseID string) ([]domain.CertificateExpiryRecord, error)
	List(ctx context.Context) ([]domain.CertificateExpiryRecord, error)
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.ExistingSession) error
	Enroll(ctx context.Context, sessionID, employeeID string) error
	// ListByLicense returns sessions for the license with CurrentEnrolled
	// derived from enrollments, ordered by start date then id. Phase 1 of
	// the partitioner consumes this order as-is.
	ListByLicense(ctx context.Context, licenseID string) ([]domain.ExistingSession, error)
	List(ctx context.Context) ([]domain.ExistingSession, error)
}

type WorkArrangementRepo interface {
	Upsert(ctx context.Context, a *domain.WorkArrangement) error
	// List returns all arrangements keyed by employee id.
	List(ctx context.Context) (map[string]domain.WorkArrangement, error)
}
