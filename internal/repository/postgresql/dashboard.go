package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) count(ctx context.Context, name string, query string, args ...interface{}) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", name, err)
	}
	return n, nil
}

// CountEmployeesOnLeave counts distinct employees with an approved leave covering day.
func (r *dashboardRepositoryImpl) CountEmployeesOnLeave(ctx context.Context, day time.Time) (int64, error) {
	return r.count(ctx, "employees on leave", `
		SELECT COUNT(DISTINCT employee_id)
		FROM leave_requests
		WHERE status = 'approved' AND start_date <= $1::date AND end_date >= $1::date
	`, day)
}

func (r *dashboardRepositoryImpl) CountPendingLeaveRequests(ctx context.Context) (int64, error) {
	return r.count(ctx, "pending leave requests", `SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'`)
}

func (r *dashboardRepositoryImpl) CountOpenPositions(ctx context.Context) (int64, error) {
	return r.count(ctx, "open positions", `SELECT COUNT(*) FROM job_postings WHERE is_active`)
}

func (r *dashboardRepositoryImpl) CountPendingApplications(ctx context.Context) (int64, error) {
	return r.count(ctx, "pending applications", `SELECT COUNT(*) FROM job_applications WHERE status = 'pending'`)
}
