package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/domain"
	"github.com/danharves/certsched/internal/repository"
	"github.com/danharves/certsched/internal/testutil"
)

type groupingFixture struct {
	certificates *repository.SQLiteCertificateRepo
	sessions     *repository.SQLiteSessionRepo
	svc          GroupingService
}

func newGroupingFixture(t *testing.T, scorer PriorityScorer) *groupingFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := &groupingFixture{
		certificates: repository.NewSQLiteCertificateRepo(database),
		sessions:     repository.NewSQLiteSessionRepo(database),
	}
	f.svc = NewGroupingService(f.certificates, f.sessions, scorer)
	return f
}

func TestBuildGroups_MissingLicense(t *testing.T) {
	f := newGroupingFixture(t, nil)

	_, err := f.svc.BuildGroups(context.Background(), contract.GroupingRequest{})
	require.Error(t, err)
	var gerr *contract.GroupingError
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, contract.ErrMissingLicense, gerr.Code)
}

func TestBuildGroups_NoEmployees(t *testing.T) {
	f := newGroupingFixture(t, nil)

	_, err := f.svc.BuildGroups(context.Background(), contract.NewGroupingRequest("license-empty"))
	require.Error(t, err)
	var gerr *contract.GroupingError
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, contract.ErrNoEmployees, gerr.Code)
}

func TestBuildGroups_SingleDepartmentGroup(t *testing.T) {
	f := newGroupingFixture(t, nil)
	ctx := context.Background()

	for id, days := range map[string]int{"emp-1": 10, "emp-2": 20, "emp-3": 25} {
		require.NoError(t, f.certificates.Upsert(ctx, testutil.NewTestCertificate(id, "license-a",
			testutil.WithDaysUntilExpiry(days),
			testutil.WithDepartment("Ops"),
		)))
	}

	req := contract.NewGroupingRequest("license-a")
	req.Now = timePtr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	resp, err := f.svc.BuildGroups(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Groups, 1)

	g := resp.Groups[0]
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "Ops Urgent Renewal Group 1", g.Name)
	assert.Equal(t, "Urgent Renewal", g.Classification)
	assert.Len(t, g.Members, 3)
	assert.Nil(t, g.Session)
	assert.False(t, g.Priority.Defaulted)
	// Base 50 + urgent 30 + avg expiry <= 60 bonus 25.
	assert.Equal(t, 105.0, g.Priority.Value)
}

func TestBuildGroups_FillsExistingSessionFirst(t *testing.T) {
	f := newGroupingFixture(t, nil)
	ctx := context.Background()

	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	sess := testutil.NewTestSession("course-a", "license-a", now.AddDate(0, 0, 7), 2,
		testutil.WithSessionTitle("September Refresher"))
	require.NoError(t, f.sessions.Create(ctx, sess))

	for id, days := range map[string]int{"emp-1": 45, "emp-2": 50, "emp-3": 60, "emp-4": 70} {
		require.NoError(t, f.certificates.Upsert(ctx, testutil.NewTestCertificate(id, "license-a",
			testutil.WithDaysUntilExpiry(days),
			testutil.WithDepartment("Ops"),
		)))
	}

	req := contract.NewGroupingRequest("license-a")
	req.Now = &now

	resp, err := f.svc.BuildGroups(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Groups, 2)

	// Session groups carry the fixed top priority and sort first.
	sessionGroup := resp.Groups[0]
	require.NotNil(t, sessionGroup.Session)
	assert.Equal(t, sess.ID, sessionGroup.Session.SessionID)
	assert.Equal(t, "Add to: September Refresher", sessionGroup.Name)
	assert.Equal(t, 100.0, sessionGroup.Priority.Value)
	require.Len(t, sessionGroup.Members, 2)
	// Most urgent two taken.
	assert.Equal(t, "emp-1", sessionGroup.Members[0].EmployeeID)
	assert.Equal(t, "emp-2", sessionGroup.Members[1].EmployeeID)
	assert.Equal(t, 0, sessionGroup.Session.RemainingSpots)

	newGroup := resp.Groups[1]
	assert.Nil(t, newGroup.Session)
	assert.Len(t, newGroup.Members, 2)
}

func TestBuildGroups_ExpiredEmployeesSkipSessions(t *testing.T) {
	f := newGroupingFixture(t, nil)
	ctx := context.Background()

	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.sessions.Create(ctx,
		testutil.NewTestSession("course-a", "license-a", now.AddDate(0, 0, 7), 5)))
	require.NoError(t, f.certificates.Upsert(ctx, testutil.NewTestCertificate("emp-1", "license-a",
		testutil.WithCertStatus(domain.CertExpired),
		testutil.WithDepartment("Ops"),
	)))

	req := contract.NewGroupingRequest("license-a")
	req.Now = &now

	resp, err := f.svc.BuildGroups(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Groups, 1)
	g := resp.Groups[0]
	assert.Nil(t, g.Session)
	assert.Equal(t, "Urgent Expired", g.Classification)
	// Base 50 + expired 40.
	assert.Equal(t, 90.0, g.Priority.Value)
}

func TestBuildGroups_DepartmentIsolation(t *testing.T) {
	f := newGroupingFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.certificates.Upsert(ctx, testutil.NewTestCertificate("emp-1", "license-a",
		testutil.WithDaysUntilExpiry(40), testutil.WithDepartment("Warehouse"))))
	require.NoError(t, f.certificates.Upsert(ctx, testutil.NewTestCertificate("emp-2", "license-a",
		testutil.WithDaysUntilExpiry(42), testutil.WithDepartment("Logistics"))))

	resp, err := f.svc.BuildGroups(ctx, contract.NewGroupingRequest("license-a"))
	require.NoError(t, err)
	require.Len(t, resp.Groups, 2)
	depts := []string{resp.Groups[0].Department, resp.Groups[1].Department}
	assert.ElementsMatch(t, []string{"Warehouse", "Logistics"}, depts)
}

type failingScorer struct{}

func (failingScorer) ScoreGroup(context.Context, contract.EmployeeGroup) (float64, error) {
	return 0, errors.New("scoring backend unavailable")
}

func TestBuildGroups_ScorerFailureDefaultsPriority(t *testing.T) {
	f := newGroupingFixture(t, failingScorer{})
	ctx := context.Background()

	require.NoError(t, f.certificates.Upsert(ctx, testutil.NewTestCertificate("emp-1", "license-a",
		testutil.WithDaysUntilExpiry(40), testutil.WithDepartment("Ops"))))

	resp, err := f.svc.BuildGroups(ctx, contract.NewGroupingRequest("license-a"))
	require.NoError(t, err)
	require.Len(t, resp.Groups, 1)

	g := resp.Groups[0]
	assert.True(t, g.Priority.Defaulted)
	assert.Equal(t, 50.0, g.Priority.Value)
	assert.Contains(t, g.Priority.Message, "scoring backend unavailable")
}

func TestBuildGroups_Deterministic(t *testing.T) {
	f := newGroupingFixture(t, nil)
	ctx := context.Background()

	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.sessions.Create(ctx,
		testutil.NewTestSession("course-a", "license-a", now.AddDate(0, 0, 10), 1)))
	for i, days := range []int{5, 15, 200, 210, 300} {
		id := string(rune('a' + i))
		require.NoError(t, f.certificates.Upsert(ctx, testutil.NewTestCertificate("emp-"+id, "license-a",
			testutil.WithDaysUntilExpiry(days), testutil.WithDepartment("Ops"))))
	}

	req := contract.NewGroupingRequest("license-a")
	req.Now = &now

	first, err := f.svc.BuildGroups(ctx, req)
	require.NoError(t, err)
	second, err := f.svc.BuildGroups(ctx, req)
	require.NoError(t, err)

	require.Equal(t, len(first.Groups), len(second.Groups))
	for i := range first.Groups {
		assert.Equal(t, first.Groups[i].Name, second.Groups[i].Name)
		assert.Equal(t, first.Groups[i].Priority.Value, second.Groups[i].Priority.Value)
		require.Equal(t, len(first.Groups[i].Members), len(second.Groups[i].Members))
		for j := range first.Groups[i].Members {
			assert.Equal(t, first.Groups[i].Members[j].EmployeeID, second.Groups[i].Members[j].EmployeeID)
		}
	}
}
