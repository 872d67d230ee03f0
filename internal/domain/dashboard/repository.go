package dashboard

import (
	"context"
	"time"
)

// DashboardRepository answers the counters with one query each.
type DashboardRepository interface {
	CountEmployeesOnLeave(ctx context.Context, day time.Time) (int64, error)
	CountPendingLeaveRequests(ctx context.Context) (int64, error)
	CountOpenPositions(ctx context.Context) (int64, error)
	CountPendingApplications(ctx context.Context) (int64, error)
}
