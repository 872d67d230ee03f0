package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/cache"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"golang.org/x/sync/errgroup"
)

const statsCacheKey = "dashboard:stats"

type DashboardServiceImpl struct {
	repo      dashboard.DashboardRepository
	leaveRepo leave.LeaveRequestRepository
	cache     cache.Cache
	ttl       time.Duration
	now       func() time.Time
}

func NewDashboardService(
	repo dashboard.DashboardRepository,
	leaveRepo leave.LeaveRequestRepository,
	c cache.Cache,
	ttl time.Duration,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		repo:      repo,
		leaveRepo: leaveRepo,
		cache:     c,
		ttl:       ttl,
		now:       time.Now,
	}
}

// GetStats implements dashboard.DashboardService. Cache failures are logged
// and fall through to the database.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	var cached dashboard.StatsResponse
	err := s.cache.Get(ctx, statsCacheKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("dashboard stats cache read failed", "error", err)
	}
	return s.RefreshStats(ctx)
}

// RefreshStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) RefreshStats(ctx context.Context) (dashboard.StatsResponse, error) {
	stats, err := s.compute(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	if err := s.cache.Set(ctx, statsCacheKey, stats, s.ttl); err != nil {
		slog.Warn("dashboard stats cache write failed", "error", err)
	}
	return stats, nil
}

func (s *DashboardServiceImpl) compute(ctx context.Context) (dashboard.StatsResponse, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var stats dashboard.StatsResponse
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.repo.CountEmployeesOnLeave(gCtx, today)
		if err != nil {
			return fmt.Errorf("count employees on leave: %w", err)
		}
		stats.EmployeesOnLeave = n
		return nil
	})

	g.Go(func() error {
		n, err := s.repo.CountPendingLeaveRequests(gCtx)
		if err != nil {
			return fmt.Errorf("count pending leave requests: %w", err)
		}
		stats.PendingRequests = n
		return nil
	})

	g.Go(func() error {
		n, err := s.repo.CountOpenPositions(gCtx)
		if err != nil {
			return fmt.Errorf("count open positions: %w", err)
		}
		stats.OpenPositions = n
		return nil
	})

	g.Go(func() error {
		n, err := s.repo.CountPendingApplications(gCtx)
		if err != nil {
			return fmt.Errorf("count pending applications: %w", err)
		}
		stats.PendingApplications = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.StatsResponse{}, err
	}
	stats.GeneratedAt = now
	return stats, nil
}

// GetLeaveTrend implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetLeaveTrend(ctx context.Context, year int) (dashboard.LeaveTrendResponse, error) {
	if year <= 0 {
		year = s.now().Year()
	}

	requests, err := s.leaveRepo.List(ctx)
	if err != nil {
		return dashboard.LeaveTrendResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	records := recordquery.From(requests)
	spec := recordquery.Spec{recordquery.Count(), recordquery.CountByField("leave_type")}

	trend := dashboard.LeaveTrendResponse{Year: year, Months: make([]dashboard.MonthlyLeave, 0, 12)}
	for m := time.January; m <= time.December; m++ {
		from := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)

		inMonth := recordquery.ApplyFilters(records, recordquery.Criteria{
			"start_date": recordquery.DateRange{From: &from, To: &to},
		})
		result := recordquery.Aggregate(inMonth, spec)

		counts := result.Groups("count_by_leave_type")
		if counts == nil {
			counts = map[string]int{}
		}
		trend.Months = append(trend.Months, dashboard.MonthlyLeave{
			Month:  from.Format("2006-01"),
			Counts: counts,
			Total:  result.Int("count"),
		})
	}
	return trend, nil
}
