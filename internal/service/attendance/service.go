package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	workDay        attendance.WorkDay
	schema         *view.Schema
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	workDay attendance.WorkDay,
	schema *view.Schema,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		workDay:        workDay,
		schema:         schema,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) records(ctx context.Context) ([]recordquery.Record, error) {
	rows, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return recordquery.From(rows), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, params url.Values) (view.Outcome, error) {
	records, err := s.records(ctx)
	if err != nil {
		return view.Outcome{}, err
	}
	return s.schema.List(records, params)
}

// ExportAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportAttendance(ctx context.Context, params url.Values) (view.File, error) {
	records, err := s.records(ctx)
	if err != nil {
		return view.File{}, err
	}
	return s.schema.ExportCSV(records, params, s.now())
}

func (s *AttendanceServiceImpl) activeEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, attendance.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.Status != employee.StatusActive {
		return employee.Employee{}, attendance.ErrEmployeeNotActive
	}
	return emp, nil
}

// CheckIn implements attendance.AttendanceService. A row created for the day
// by the absence job is reused.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	emp, err := s.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := s.now().UTC()
	date := s.workDay.Date(nowUTC)
	workType := attendance.WorkType(req.WorkType)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	switch {
	case err == nil:
		if existing.CheckIn != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		existing.CheckIn = &nowUTC
		existing.WorkType = &workType
		existing.Location = req.Location
		existing.Status = s.workDay.StatusAt(nowUTC)
		if err := s.attendanceRepo.Update(ctx, existing); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}
		return attendance.ToResponse(existing), nil
	case !errors.Is(err, attendance.ErrAttendanceNotFound):
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
		CheckIn:    &nowUTC,
		WorkType:   &workType,
		Status:     s.workDay.StatusAt(nowUTC),
		Location:   req.Location,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("employee checked in", "employee_id", emp.ID, "date", date.Format("2006-01-02"), "status", created.Status)
	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := s.now().UTC()
	date := s.workDay.Date(nowUTC)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if record.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOut = &nowUTC
	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}
	return attendance.ToResponse(record), nil
}
