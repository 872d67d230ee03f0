package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	List(ctx context.Context) ([]Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	Create(ctx context.Context, a Attendance) (Attendance, error)
	Update(ctx context.Context, a Attendance) error

	// GetOpenSessionsBefore returns sessions still open on a day before date.
	GetOpenSessionsBefore(ctx context.Context, date time.Time) ([]Attendance, error)

	// MarkAbsent inserts a row for every active employee without a record on
	// date: on_leave when an approved leave covers date, absent otherwise.
	// It returns how many rows were inserted.
	MarkAbsent(ctx context.Context, date time.Time) (int64, error)
}
