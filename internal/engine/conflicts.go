package engine

import (
	"fmt"

	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/domain"
)

// lowAvailabilityThreshold is the per-employee availability score below
// which a scheduling conflict is flagged.
const lowAvailabilityThreshold = 50.0

// DetectConflicts flags availability and capacity problems for a proposed
// recommendation. Warnings are advisory and never block emission.
func DetectConflicts(employees []EmployeeScores, c domain.SchedulingConstraints) []contract.ConflictWarning {
	var warnings []contract.ConflictWarning

	lowCount := 0
	for _, e := range employees {
		if e.Availability < lowAvailabilityThreshold {
			lowCount++
		}
	}
	if lowCount > 0 {
		warnings = append(warnings, contract.ConflictWarning{
			Type:     contract.ConflictAvailability,
			Severity: contract.SeverityHigh,
			Message:  fmt.Sprintf("%d employee(s) have availability conflicts in the proposed window", lowCount),
		})
	}

	if c.MaxParticipants != nil && len(employees) > *c.MaxParticipants {
		warnings = append(warnings, contract.ConflictWarning{
			Type:     contract.ConflictCapacity,
			Severity: contract.SeverityMedium,
			Message:  fmt.Sprintf("%d employees exceed the %d participant limit", len(employees), *c.MaxParticipants),
		})
	}

	return warnings
}
