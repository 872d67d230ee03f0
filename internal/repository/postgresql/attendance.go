package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.work_type, a.status,
		a.location, a.auto_closed, a.created_at, a.updated_at,
		e.first_name || ' ' || e.last_name AS employee_name,
		d.name AS department_name
	FROM attendance_records a
	JOIN employees e ON e.id = a.employee_id
	LEFT JOIN departments d ON d.id = e.department_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.WorkType, &att.Status,
		&att.Location, &att.AutoClosed, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.DepartmentName,
	)
	return att, err
}

func (a *attendanceRepository) queryAll(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, att)
	}
	return records, rows.Err()
}

func (a *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	return a.queryAll(ctx, attendanceSelect+` ORDER BY a.date DESC, e.last_name`)
}

func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	att, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.employee_id = $1 AND a.date = $2`, employeeID, date))
	if err != nil {
		return attendance.Attendance{}, notFound(err, attendance.ErrAttendanceNotFound, "get attendance")
	}
	return att, nil
}

func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, check_in, check_out, work_type, status, location, auto_closed,
			created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id
	`
	var id string
	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID, newAttendance.Date, newAttendance.CheckIn, newAttendance.CheckOut,
		newAttendance.WorkType, newAttendance.Status, newAttendance.Location, newAttendance.AutoClosed,
	).Scan(&id)
	if err != nil {
		switch pgErrorCode(err) {
		case uniqueViolation:
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		case foreignKeyViolation:
			return attendance.Attendance{}, attendance.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("create attendance: %w", err)
	}
	return a.GetByEmployeeAndDate(ctx, newAttendance.EmployeeID, newAttendance.Date)
}

func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_in = $1, check_out = $2, work_type = $3, status = $4, location = $5,
			auto_closed = $6, updated_at = NOW()
		WHERE id = $7
	`
	tag, err := q.Exec(ctx, query, att.CheckIn, att.CheckOut, att.WorkType, att.Status, att.Location, att.AutoClosed, att.ID)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (a *attendanceRepository) GetOpenSessionsBefore(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return a.queryAll(ctx, attendanceSelect+` WHERE a.check_in IS NOT NULL AND a.check_out IS NULL AND a.date < $1 ORDER BY a.date`, date)
}

func (a *attendanceRepository) MarkAbsent(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, status, auto_closed, created_at, updated_at)
		SELECT uuidv7(), e.id, $1::date,
			CASE WHEN EXISTS (
				SELECT 1 FROM leave_requests lr
				WHERE lr.employee_id = e.id AND lr.status = 'approved'
					AND lr.start_date <= $1::date AND lr.end_date >= $1::date
			) THEN 'on_leave' ELSE 'absent' END,
			false, NOW(), NOW()
		FROM employees e
		WHERE e.status = 'active' AND e.deleted_at IS NULL AND e.hire_date <= $1::date
			AND NOT EXISTS (
				SELECT 1 FROM attendance_records a WHERE a.employee_id = e.id AND a.date = $1::date
			)
	`
	tag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("mark absent: %w", err)
	}
	return tag.RowsAffected(), nil
}
