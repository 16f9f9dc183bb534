package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/danharves/certsched/internal/domain"
	"github.com/danharves/certsched/internal/repository"
)

// Snapshot is the immutable read-side data a scheduling run computes over.
// Both engines consume it; neither writes.
type Snapshot struct {
	Providers    []domain.ProviderCandidate
	Certificates []domain.CertificateExpiryRecord
	Sessions     []domain.ExistingSession
	Profiles     map[string]domain.LearningProfile
	Arrangements map[string]domain.WorkArrangement
	// Availability holds records grouped by employee, loaded only for the
	// relevant pool.
	Availability map[string][]domain.EmployeeAvailabilityRecord

	// Pool is the relevant employee set in deterministic (certificate
	// repository) order.
	Pool []string
}

// SnapshotLoader gathers the collaborator reads for a scheduling run. The
// independent reads run concurrently; availability is loaded afterwards
// because the relevant pool depends on the certificate records. Any failed
// read aborts the whole load.
type SnapshotLoader struct {
	providers    repository.ProviderRepo
	availability repository.AvailabilityRepo
	profiles     repository.LearningProfileRepo
	certificates repository.CertificateRepo
	sessions     repository.SessionRepo
	arrangements repository.WorkArrangementRepo
}

func NewSnapshotLoader(
	providers repository.ProviderRepo,
	availability repository.AvailabilityRepo,
	profiles repository.LearningProfileRepo,
	certificates repository.CertificateRepo,
	sessions repository.SessionRepo,
	arrangements repository.WorkArrangementRepo,
) *SnapshotLoader {
	return &SnapshotLoader{
		providers:    providers,
		availability: availability,
		profiles:     profiles,
		certificates: certificates,
		sessions:     sessions,
		arrangements: arrangements,
	}
}

// Load gathers the snapshot for one course/license id. The constraints drive
// the relevant-pool derivation; pass the zero value when grouping.
func (l *SnapshotLoader) Load(ctx context.Context, id string, c domain.SchedulingConstraints) (*Snapshot, error) {
	snap := &Snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Providers, err = l.providers.ListByCourse(gctx, id)
		if err != nil {
			return fmt.Errorf("loading providers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snap.Certificates, err = l.certificates.ListByLicense(gctx, id)
		if err != nil {
			return fmt.Errorf("loading certificates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snap.Sessions, err = l.sessions.ListByLicense(gctx, id)
		if err != nil {
			return fmt.Errorf("loading sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snap.Profiles, err = l.profiles.List(gctx)
		if err != nil {
			return fmt.Errorf("loading learning profiles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snap.Arrangements, err = l.arrangements.List(gctx)
		if err != nil {
			return fmt.Errorf("loading work arrangements: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.Pool = relevantPool(snap.Certificates, c)

	records, err := l.availability.ListByEmployees(ctx, snap.Pool)
	if err != nil {
		return nil, fmt.Errorf("loading availability: %w", err)
	}
	snap.Availability = make(map[string][]domain.EmployeeAvailabilityRecord, len(snap.Pool))
	for _, rec := range records {
		snap.Availability[rec.EmployeeID] = append(snap.Availability[rec.EmployeeID], rec)
	}

	return snap, nil
}

// relevantPool derives the employee set a request applies to: the required
// ids when given, otherwise every employee with a certificate record, minus
// the excluded set. Order follows the certificate repository.
func relevantPool(certs []domain.CertificateExpiryRecord, c domain.SchedulingConstraints) []string {
	if len(c.RequiredEmployeeIDs) > 0 {
		var pool []string
		for _, id := range c.RequiredEmployeeIDs {
			if !c.IsExcluded(id) {
				pool = append(pool, id)
			}
		}
		return pool
	}

	seen := make(map[string]bool, len(certs))
	var pool []string
	for _, cert := range certs {
		if seen[cert.EmployeeID] || c.IsExcluded(cert.EmployeeID) {
			continue
		}
		seen[cert.EmployeeID] = true
		pool = append(pool, cert.EmployeeID)
	}
	return pool
}

// certificateFor returns the employee's record for the pool's license, or nil.
func certificateFor(certs []domain.CertificateExpiryRecord, employeeID string) *domain.CertificateExpiryRecord {
	for i := range certs {
		if certs[i].EmployeeID == employeeID {
			return &certs[i]
		}
	}
	return nil
}
