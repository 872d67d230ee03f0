package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetStats returns the headline counters, served from cache when fresh
	GetStats(ctx context.Context) (StatsResponse, error)

	// RefreshStats recomputes the counters and replaces the cached copy
	RefreshStats(ctx context.Context) (StatsResponse, error)

	// GetLeaveTrend counts leave requests per month and leave type for a year
	GetLeaveTrend(ctx context.Context, year int) (LeaveTrendResponse, error)
}
