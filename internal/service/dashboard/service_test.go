package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	calls   atomic.Int32
	failing bool
	day     time.Time
}

func (f *fakeDashboardRepo) CountEmployeesOnLeave(ctx context.Context, day time.Time) (int64, error) {
	f.calls.Add(1)
	f.day = day
	return 2, nil
}

func (f *fakeDashboardRepo) CountPendingLeaveRequests(ctx context.Context) (int64, error) {
	if f.failing {
		return 0, errors.New("connection reset")
	}
	return 5, nil
}

func (f *fakeDashboardRepo) CountOpenPositions(ctx context.Context) (int64, error) { return 3, nil }

func (f *fakeDashboardRepo) CountPendingApplications(ctx context.Context) (int64, error) {
	return 7, nil
}

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository
	requests []leave.LeaveRequest
}

func (f fakeLeaveRepo) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return f.requests, nil
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func newService(repo *fakeDashboardRepo, requests ...leave.LeaveRequest) *DashboardServiceImpl {
	svc := NewDashboardService(repo, fakeLeaveRepo{requests: requests}, cache.NewMemoryCache(), time.Minute).(*DashboardServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestGetStats_ComputesAndCaches(t *testing.T) {
	repo := &fakeDashboardRepo{}
	svc := newService(repo)
	ctx := context.Background()

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.EmployeesOnLeave)
	assert.Equal(t, int64(5), stats.PendingRequests)
	assert.Equal(t, int64(3), stats.OpenPositions)
	assert.Equal(t, int64(7), stats.PendingApplications)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), repo.day)

	again, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.PendingApplications, again.PendingApplications)
	assert.Equal(t, int32(1), repo.calls.Load())

	_, err = svc.RefreshStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), repo.calls.Load())
}

func TestGetStats_RepositoryError(t *testing.T) {
	svc := newService(&fakeDashboardRepo{failing: true})

	_, err := svc.GetStats(context.Background())
	assert.ErrorContains(t, err, "count pending leave requests")
}

func TestGetLeaveTrend(t *testing.T) {
	svc := newService(&fakeDashboardRepo{},
		leave.LeaveRequest{ID: "1", LeaveType: leave.LeaveTypeAnnual, StartDate: day("2024-01-10"), EndDate: day("2024-01-12")},
		leave.LeaveRequest{ID: "2", LeaveType: leave.LeaveTypeSick, StartDate: day("2024-01-31"), EndDate: day("2024-02-01")},
		leave.LeaveRequest{ID: "3", LeaveType: leave.LeaveTypeAnnual, StartDate: day("2024-06-03"), EndDate: day("2024-06-07")},
		leave.LeaveRequest{ID: "4", LeaveType: leave.LeaveTypeAnnual, StartDate: day("2023-12-28"), EndDate: day("2024-01-02")},
	)

	trend, err := svc.GetLeaveTrend(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 2024, trend.Year)
	require.Len(t, trend.Months, 12)
	assert.Equal(t, "2024-01", trend.Months[0].Month)
	assert.Equal(t, 2, trend.Months[0].Total)
	assert.Equal(t, map[string]int{"annual": 1, "sick": 1}, trend.Months[0].Counts)
	assert.Equal(t, 0, trend.Months[1].Total)
	assert.Empty(t, trend.Months[1].Counts)
	assert.Equal(t, 1, trend.Months[5].Total)
}
