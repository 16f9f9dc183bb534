package engine

import (
	"math"

	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/domain"
)

// AnalyzeImpact estimates the business effect of training the relevant
// employees, from their certificate standing. TeamCoverageScore is capped at
// 100; the other two are relative priority signals, unbounded above.
func AnalyzeImpact(certs []domain.CertificateExpiryRecord) contract.BusinessImpact {
	expired := 0
	renewalDue := 0
	for _, c := range certs {
		switch c.Status {
		case domain.CertExpired:
			expired++
		case domain.CertRenewalDue:
			renewalDue++
		}
	}
	available := len(certs) - expired

	return contract.BusinessImpact{
		TeamCoverageScore: math.Min(100, float64(available)*10),
		SkillGapImpact:    float64(expired) * 20,
		ComplianceUrgency: float64(expired)*30 + float64(renewalDue)*20,
	}
}
