package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/domain"
	"github.com/danharves/certsched/internal/engine"
	"github.com/danharves/certsched/internal/repository"
)

// defaultedPriority is the fallback value when the priority scorer fails.
const defaultedPriority = 50.0

type groupingService struct {
	certificates repository.CertificateRepo
	sessions     repository.SessionRepo
	scorer       PriorityScorer
	observer     UseCaseObserver
}

func NewGroupingService(
	certificates repository.CertificateRepo,
	sessions repository.SessionRepo,
	scorer PriorityScorer,
	observers ...UseCaseObserver,
) GroupingService {
	if scorer == nil {
		scorer = StandardPriorityScorer{}
	}
	return &groupingService{
		certificates: certificates,
		sessions:     sessions,
		scorer:       scorer,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *groupingService) BuildGroups(ctx context.Context, req contract.GroupingRequest) (*contract.GroupingResponse, error) {
	started := time.Now()
	resp, err := s.buildGroups(ctx, req)

	fields := map[string]any{"license_id": req.LicenseID}
	if resp != nil {
		fields["groups"] = len(resp.Groups)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "build_groups",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	return resp, err
}

func (s *groupingService) buildGroups(ctx context.Context, req contract.GroupingRequest) (*contract.GroupingResponse, error) {
	if req.LicenseID == "" {
		return nil, &contract.GroupingError{
			Code:    contract.ErrMissingLicense,
			Message: "a license id is required",
		}
	}
	policy := req.Policy
	if policy.MaxGroupSize <= 0 {
		policy = domain.DefaultGroupingPolicy()
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	var certs []domain.CertificateExpiryRecord
	var sessions []domain.ExistingSession

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		certs, err = s.certificates.ListByLicense(gctx, req.LicenseID)
		if err != nil {
			return fmt.Errorf("loading certificates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sessions, err = s.sessions.ListByLicense(gctx, req.LicenseID)
		if err != nil {
			return fmt.Errorf("loading sessions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, &contract.GroupingError{
			Code:    contract.ErrGroupingLoad,
			Message: err.Error(),
		}
	}

	if len(certs) == 0 {
		return nil, &contract.GroupingError{
			Code:    contract.ErrNoEmployees,
			Message: "no certificate records for license " + req.LicenseID,
		}
	}

	groups := engine.Partition(engine.PartitionInput{
		Now:        now,
		Candidates: toCandidates(certs),
		Sessions:   sessions,
		Policy:     policy,
	})

	for i := range groups {
		groups[i].ID = uuid.New().String()
		if groups[i].Session != nil {
			continue
		}
		groups[i].Priority = s.scoreGroup(ctx, groups[i])
	}

	engine.SortGroups(groups)

	return &contract.GroupingResponse{
		GeneratedAt: now,
		LicenseID:   req.LicenseID,
		Groups:      groups,
	}, nil
}

// scoreGroup asks the priority port for a value. A failure is observed and
// degraded to a marked default; it never aborts the run.
func (s *groupingService) scoreGroup(ctx context.Context, g contract.EmployeeGroup) contract.PriorityResult {
	value, err := s.scorer.ScoreGroup(ctx, g)
	if err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:    "group_priority",
			Success: false,
			Err:     err,
			Fields:  map[string]any{"group": g.Name, "defaulted": true},
		})
		return contract.PriorityResult{
			Value:     defaultedPriority,
			Defaulted: true,
			Message:   err.Error(),
		}
	}
	return contract.PriorityResult{Value: value}
}

func toCandidates(certs []domain.CertificateExpiryRecord) []engine.GroupCandidate {
	candidates := make([]engine.GroupCandidate, len(certs))
	for i, c := range certs {
		candidates[i] = engine.GroupCandidate{
			EmployeeID:      c.EmployeeID,
			Department:      c.Department,
			Status:          c.Status,
			DaysUntilExpiry: c.DaysUntilExpiry,
			ExpiryDate:      c.ExpiryDate,
		}
	}
	return candidates
}

// StandardPriorityScorer computes group priority from member urgency alone.
// It never fails; the port exists so an external scorer can replace it.
type StandardPriorityScorer struct{}

func (StandardPriorityScorer) ScoreGroup(_ context.Context, g contract.EmployeeGroup) (float64, error) {
	return engine.NewGroupPriority(g), nil
}
