package service

import (
	"context"

	"github.com/danharves/certsched/internal/contract"
)

type RecommendService interface {
	Recommend(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error)
}

type GroupingService interface {
	BuildGroups(ctx context.Context, req contract.GroupingRequest) (*contract.GroupingResponse, error)
}

// PriorityScorer computes the priority of a newly formed group. It is a port:
// callers must treat a scoring failure as recoverable and fall back to a
// defaulted priority rather than abort the grouping run.
type PriorityScorer interface {
	ScoreGroup(ctx context.Context, g contract.EmployeeGroup) (float64, error)
}
