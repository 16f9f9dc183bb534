package engine

import (
	"testing"

	"github.com/danharves/certsched/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeImpact_Formulas(t *testing.T) {
	certs := []domain.CertificateExpiryRecord{
		{EmployeeID: "emp-1", Status: domain.CertExpired},
		{EmployeeID: "emp-2", Status: domain.CertExpired},
		{EmployeeID: "emp-3", Status: domain.CertRenewalDue},
		{EmployeeID: "emp-4", Status: domain.CertValid},
		{EmployeeID: "emp-5", Status: domain.CertValid},
	}

	impact := AnalyzeImpact(certs)

	assert.Equal(t, 30.0, impact.TeamCoverageScore) // 3 available x 10
	assert.Equal(t, 40.0, impact.SkillGapImpact)    // 2 expired x 20
	assert.Equal(t, 80.0, impact.ComplianceUrgency) // 2x30 + 1x20
}

func TestAnalyzeImpact_CoverageCappedAt100(t *testing.T) {
	certs := make([]domain.CertificateExpiryRecord, 20)
	for i := range certs {
		certs[i] = domain.CertificateExpiryRecord{Status: domain.CertValid}
	}

	impact := AnalyzeImpact(certs)

	assert.Equal(t, 100.0, impact.TeamCoverageScore)
	assert.Equal(t, 0.0, impact.SkillGapImpact)
	assert.Equal(t, 0.0, impact.ComplianceUrgency)
}

func TestAnalyzeImpact_Empty(t *testing.T) {
	impact := AnalyzeImpact(nil)

	assert.Equal(t, 0.0, impact.TeamCoverageScore)
	assert.Equal(t, 0.0, impact.SkillGapImpact)
	assert.Equal(t, 0.0, impact.ComplianceUrgency)
}
