package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danharves/certsched/internal/domain"
	"github.com/danharves/certsched/internal/testutil"
)

func TestCertificateRepo_UpsertAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCertificateRepo(database)
	ctx := context.Background()

	expiry := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	c := testutil.NewTestCertificate("emp-1", "license-forklift",
		testutil.WithCertStatus(domain.CertRenewalDue),
		testutil.WithDaysUntilExpiry(45),
		testutil.WithExpiryDate(expiry),
		testutil.WithDepartment("Logistics"),
	)
	require.NoError(t, repo.Upsert(ctx, c))

	got, err := repo.ListByLicense(ctx, "license-forklift")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "emp-1", got[0].EmployeeID)
	assert.Equal(t, domain.CertRenewalDue, got[0].Status)
	require.NotNil(t, got[0].DaysUntilExpiry)
	assert.Equal(t, 45, *got[0].DaysUntilExpiry)
	require.NotNil(t, got[0].ExpiryDate)
	assert.True(t, expiry.Equal(*got[0].ExpiryDate))
	assert.Equal(t, "Logistics", got[0].Department)
}

func TestCertificateRepo_UpsertReplaces(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCertificateRepo(database)
	ctx := context.Background()

	c := testutil.NewTestCertificate("emp-1", "license-a",
		testutil.WithDaysUntilExpiry(90))
	require.NoError(t, repo.Upsert(ctx, c))

	c.Status = domain.CertExpired
	c.DaysUntilExpiry = nil
	require.NoError(t, repo.Upsert(ctx, c))

	got, err := repo.ListByLicense(ctx, "license-a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.CertExpired, got[0].Status)
	assert.Nil(t, got[0].DaysUntilExpiry)
}

func TestCertificateRepo_NilExpiryData(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCertificateRepo(database)
	ctx := context.Background()

	c := testutil.NewTestCertificate("emp-new", "license-a",
		testutil.WithCertStatus(domain.CertNew))
	require.NoError(t, repo.Upsert(ctx, c))

	got, err := repo.ListByLicense(ctx, "license-a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].DaysUntilExpiry)
	assert.Nil(t, got[0].ExpiryDate)
}

func TestCertificateRepo_ListByLicenseOrdering(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCertificateRepo(database)
	ctx := context.Background()

	for _, id := range []string{"emp-3", "emp-1", "emp-2"} {
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestCertificate(id, "license-a")))
	}
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestCertificate("emp-1", "license-b")))

	got, err := repo.ListByLicense(ctx, "license-a")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "emp-1", got[0].EmployeeID)
	assert.Equal(t, "emp-2", got[1].EmployeeID)
	assert.Equal(t, "emp-3", got[2].EmployeeID)
}
