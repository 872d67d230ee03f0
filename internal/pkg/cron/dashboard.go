package cron

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/dashboard"
)

// DashboardJobs keeps the cached dashboard counters warm.
type DashboardJobs struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardJobs(dashboardService dashboard.DashboardService) *DashboardJobs {
	return &DashboardJobs{dashboardService: dashboardService}
}

func (j *DashboardJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("refresh_dashboard_stats", interval, j.RefreshStats)
}

func (j *DashboardJobs) RefreshStats(ctx context.Context) error {
	_, err := j.dashboardService.RefreshStats(ctx)
	return err
}
