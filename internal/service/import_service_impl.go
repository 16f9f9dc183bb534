package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danharves/certsched/internal/importer"
	"github.com/danharves/certsched/internal/repository"
)

// ImportResult summarizes what one snapshot import wrote.
type ImportResult struct {
	Providers    int
	Certificates int
	Availability int
	Profiles     int
	Arrangements int
	Sessions     int
	Enrollments  int
}

type ImportService interface {
	ImportSnapshot(ctx context.Context, path string) (*ImportResult, error)
	ImportFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error)
}

type importService struct {
	providers    repository.ProviderRepo
	availability repository.AvailabilityRepo
	profiles     repository.LearningProfileRepo
	certificates repository.CertificateRepo
	sessions     repository.SessionRepo
	arrangements repository.WorkArrangementRepo
	observer     UseCaseObserver
}

func NewImportService(
	providers repository.ProviderRepo,
	availability repository.AvailabilityRepo,
	profiles repository.LearningProfileRepo,
	certificates repository.CertificateRepo,
	sessions repository.SessionRepo,
	arrangements repository.WorkArrangementRepo,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		providers:    providers,
		availability: availability,
		profiles:     profiles,
		certificates: certificates,
		sessions:     sessions,
		arrangements: arrangements,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportSnapshot(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadSnapshotSchema(path)
	if err != nil {
		return nil, err
	}
	return s.ImportFromSchema(ctx, schema)
}

func (s *importService) ImportFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error) {
	started := time.Now()
	result, err := s.importFromSchema(ctx, schema)

	fields := map[string]any{}
	if result != nil {
		fields["providers"] = result.Providers
		fields["certificates"] = result.Certificates
		fields["sessions"] = result.Sessions
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "import_snapshot",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	return result, err
}

func (s *importService) importFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error) {
	if errs := importer.ValidateSnapshotSchema(schema); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, errors.New("invalid snapshot: " + strings.Join(msgs, "; "))
	}

	snap := importer.Convert(schema)
	result := &ImportResult{}

	for _, p := range snap.Providers {
		if err := s.providers.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("importing provider %q: %w", p.Name, err)
		}
		result.Providers++
	}
	for _, c := range snap.Certificates {
		if err := s.certificates.Upsert(ctx, c); err != nil {
			return nil, fmt.Errorf("importing certificate for %q: %w", c.EmployeeID, err)
		}
		result.Certificates++
	}
	for _, r := range snap.Availability {
		if err := s.availability.Create(ctx, r); err != nil {
			return nil, fmt.Errorf("importing availability for %q: %w", r.EmployeeID, err)
		}
		result.Availability++
	}
	for _, p := range snap.Profiles {
		if err := s.profiles.Upsert(ctx, p); err != nil {
			return nil, fmt.Errorf("importing profile for %q: %w", p.EmployeeID, err)
		}
		result.Profiles++
	}
	for _, a := range snap.Arrangements {
		if err := s.arrangements.Upsert(ctx, a); err != nil {
			return nil, fmt.Errorf("importing arrangement for %q: %w", a.EmployeeID, err)
		}
		result.Arrangements++
	}
	for _, sess := range snap.Sessions {
		if err := s.sessions.Create(ctx, sess); err != nil {
			return nil, fmt.Errorf("importing session %q: %w", sess.Title, err)
		}
		result.Sessions++
		for _, employeeID := range snap.Enrollments[sess.ID] {
			if err := s.sessions.Enroll(ctx, sess.ID, employeeID); err != nil {
				return nil, fmt.Errorf("enrolling %q in session %q: %w", employeeID, sess.Title, err)
			}
			result.Enrollments++
		}
	}

	return result, nil
}
