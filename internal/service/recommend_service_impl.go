package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/domain"
	"github.com/danharves/certsched/internal/engine"
	"github.com/danharves/certsched/internal/repository"
)

type recommendService struct {
	loader   *SnapshotLoader
	weights  engine.ScoringWeights
	observer UseCaseObserver
}

func NewRecommendService(
	providers repository.ProviderRepo,
	availability repository.AvailabilityRepo,
	profiles repository.LearningProfileRepo,
	certificates repository.CertificateRepo,
	sessions repository.SessionRepo,
	arrangements repository.WorkArrangementRepo,
	observers ...UseCaseObserver,
) RecommendService {
	return &recommendService{
		loader:   NewSnapshotLoader(providers, availability, profiles, certificates, sessions, arrangements),
		weights:  engine.DefaultWeights(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *recommendService) Recommend(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error) {
	started := time.Now()
	resp, err := s.recommend(ctx, req)

	fields := map[string]any{"course_id": req.Constraints.CourseID}
	if resp != nil {
		fields["recommendations"] = len(resp.Recommendations)
		fields["exclusions"] = len(resp.Exclusions)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "recommend",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	return resp, err
}

func (s *recommendService) recommend(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error) {
	c := req.Constraints
	if c.CourseID == "" {
		return nil, &contract.RecommendError{
			Code:    contract.ErrMissingCourse,
			Message: "a course id is required",
		}
	}
	if c.PreferredStartDate != nil && c.PreferredEndDate != nil && c.PreferredEndDate.Before(*c.PreferredStartDate) {
		return nil, &contract.RecommendError{
			Code:    contract.ErrInvalidDateWindow,
			Message: "preferred end date precedes preferred start date",
		}
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	snap, err := s.loader.Load(ctx, c.CourseID, c)
	if err != nil {
		return nil, &contract.RecommendError{
			Code:    contract.ErrSnapshotLoad,
			Message: err.Error(),
		}
	}

	resp := &contract.RecommendResponse{
		GeneratedAt: now,
		CourseID:    c.CourseID,
	}

	// Impact depends only on the relevant pool's certificate standing, not on
	// the provider, so it is computed once.
	impact := engine.AnalyzeImpact(poolCertificates(snap))

	for _, p := range snap.Providers {
		if p.Offering(c.CourseID) == nil {
			resp.Exclusions = append(resp.Exclusions, contract.Exclusion{
				ProviderID:   p.ID,
				ProviderName: p.Name,
				Code:         contract.ExcludeCourseNotOffered,
				Message:      "provider does not offer course " + c.CourseID,
			})
			continue
		}

		var distance float64
		if c.PreferredLocation != nil && p.BaseLocation != nil {
			distance = engine.Distance(*c.PreferredLocation, *p.BaseLocation)
		}
		cost := engine.EstimateCost(p, distance)

		proposals := engine.ProposeSessions(p, c, now)
		winStart, winEnd := engine.SessionWindow(proposals)
		employees := s.scoreEmployees(snap, p, c, winStart, winEnd)

		scored := engine.ScoreProvider(engine.ProviderScoringInput{
			Provider:    p,
			Constraints: c,
			DistanceKm:  distance,
			Cost:        cost,
			Employees:   employees,
			Weights:     s.weights,
		})
		if scored.Excluded {
			resp.Exclusions = append(resp.Exclusions, *scored.Exclusion)
			continue
		}

		resp.Recommendations = append(resp.Recommendations, contract.Recommendation{
			ID:    uuid.New().String(),
			Score: scored.Score,
			Provider: contract.ProviderSummary{
				ID:                 p.ID,
				Name:               p.Name,
				TotalEstimatedCost: cost.Total,
				Currency:           p.Currency,
				DistanceKm:         distance,
				LeadTimeDays:       p.LeadTimeDays,
				HourlyRate:         p.HourlyRate,
			},
			Sessions:  proposals,
			Employees: summarize(employees),
			Warnings:  engine.DetectConflicts(employees, c),
			Impact:    impact,
			Reasons:   scored.Reasons,
		})
	}

	engine.SortRecommendations(resp.Recommendations)
	if req.MaxResults > 0 && len(resp.Recommendations) > req.MaxResults {
		resp.Recommendations = resp.Recommendations[:req.MaxResults]
	}
	return resp, nil
}

func (s *recommendService) scoreEmployees(
	snap *Snapshot,
	p domain.ProviderCandidate,
	c domain.SchedulingConstraints,
	winStart, winEnd time.Time,
) []engine.EmployeeScores {
	var scores []engine.EmployeeScores
	for _, id := range snap.Pool {
		in := engine.EmployeeScoringInput{
			EmployeeID:       id,
			Records:          snap.Availability[id],
			Certificate:      certificateFor(snap.Certificates, id),
			WindowStart:      winStart,
			WindowEnd:        winEnd,
			PreferredStyles:  c.PreferredLearningStyles,
			ProviderLocation: p.BaseLocation,
		}
		if profile, ok := snap.Profiles[id]; ok {
			in.Profile = &profile
		}
		if arr, ok := snap.Arrangements[id]; ok {
			in.Arrangement = &arr
		}
		scores = append(scores, engine.ScoreEmployee(in))
	}
	return scores
}

// poolCertificates filters the snapshot's certificate records down to the
// relevant pool.
func poolCertificates(snap *Snapshot) []domain.CertificateExpiryRecord {
	inPool := make(map[string]bool, len(snap.Pool))
	for _, id := range snap.Pool {
		inPool[id] = true
	}
	var certs []domain.CertificateExpiryRecord
	for _, cert := range snap.Certificates {
		if inPool[cert.EmployeeID] {
			certs = append(certs, cert)
		}
	}
	return certs
}

func summarize(employees []engine.EmployeeScores) []contract.EmployeeAvailabilitySummary {
	summaries := make([]contract.EmployeeAvailabilitySummary, len(employees))
	for i, e := range employees {
		summaries[i] = contract.EmployeeAvailabilitySummary{
			EmployeeID:         e.EmployeeID,
			AvailabilityScore:  e.Availability,
			CompatibilityScore: e.Compatibility,
			UrgencyScore:       e.Urgency,
			ExpiryDays:         e.ExpiryDays,
		}
	}
	return summaries
}
