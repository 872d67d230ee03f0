package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	workDay        attendance.WorkDay
	now            func() time.Time
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, workDay attendance.WorkDay) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		workDay:        workDay,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("auto_close_stale_attendances", interval, j.AutoCloseStaleAttendances)
	scheduler.AddJob("mark_absent_employees", interval, j.MarkAbsentEmployees)
}

// AutoCloseStaleAttendances checks out sessions left open on an earlier day
// at that day's scheduled end.
func (j *AttendanceJobs) AutoCloseStaleAttendances(ctx context.Context) error {
	today := j.workDay.Date(j.now())

	staleSessions, err := j.attendanceRepo.GetOpenSessionsBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to get stale sessions: %w", err)
	}
	if len(staleSessions) == 0 {
		return nil
	}

	closedCount := 0
	for _, session := range staleSessions {
		closeAt := j.workDay.ScheduledEnd(session.Date).UTC()
		if session.CheckIn != nil && closeAt.Before(*session.CheckIn) {
			closeAt = *session.CheckIn
		}
		session.CheckOut = &closeAt
		session.AutoClosed = true

		if err := j.attendanceRepo.Update(ctx, session); err != nil {
			slog.Error("cron: failed to auto-close attendance",
				"attendance_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}
		closedCount++
	}

	slog.Info("cron: auto-closed stale attendances", "count", closedCount, "found", len(staleSessions))
	return nil
}

// MarkAbsentEmployees records yesterday for every active employee without a
// row, as on_leave or absent. Running it again is a no-op.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	yesterday := j.workDay.Date(j.now()).AddDate(0, 0, -1)

	n, err := j.attendanceRepo.MarkAbsent(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to mark absent employees: %w", err)
	}
	if n > 0 {
		slog.Info("cron: marked absent employees", "date", yesterday.Format("2006-01-02"), "count", n)
	}
	return nil
}
