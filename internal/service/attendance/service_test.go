package attendance

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	rows []attendance.Attendance
}

func (f *fakeAttendanceRepo) List(ctx context.Context) ([]attendance.Attendance, error) {
	return f.rows, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	for _, a := range f.rows {
		if a.EmployeeID == employeeID && a.Date.Equal(date) {
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	a.ID = "att-new"
	f.rows = append(f.rows, a)
	return a, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error {
	for i := range f.rows {
		if f.rows[i].ID == a.ID {
			f.rows[i] = a
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
}

func (fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	switch id {
	case "e-1", "e-2":
		return employee.Employee{ID: id, Status: employee.StatusActive}, nil
	case "e-3":
		return employee.Employee{ID: id, Status: employee.StatusInactive}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 3, hour, minute, 0, 0, time.UTC)
}

func newService(t *testing.T, clock time.Time) (*AttendanceServiceImpl, *fakeAttendanceRepo) {
	t.Helper()
	workDay, err := attendance.ParseWorkDay("09:00", "17:00", 15*time.Minute, "UTC")
	require.NoError(t, err)

	checkIn, checkOut := at(8, 50), at(17, 20)
	office := attendance.WorkTypeOffice
	repo := &fakeAttendanceRepo{rows: []attendance.Attendance{
		{ID: "att-1", EmployeeID: "e-2", EmployeeName: "Lisa Wang", Date: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), CheckIn: &checkIn, CheckOut: &checkOut, WorkType: &office, Status: attendance.StatusPresent},
		{ID: "att-2", EmployeeID: "e-2", EmployeeName: "Lisa Wang", Date: time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
	}}

	svc := NewAttendanceService(repo, fakeEmployeeRepo{}, workDay, view.MustBuiltin().MustGet(view.Attendance)).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return clock }
	return svc, repo
}

func TestListAttendance_StatusCounts(t *testing.T) {
	svc, _ := newService(t, at(9, 0))

	out, err := svc.ListAttendance(context.Background(), url.Values{})
	require.NoError(t, err)

	assert.Len(t, out.Items, 2)
	assert.Equal(t, map[string]int{"present": 1, "absent": 1}, out.Totals.Groups("count_by_status"))
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("on time", func(t *testing.T) {
		svc, repo := newService(t, at(9, 15))

		resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "e-1"})
		require.NoError(t, err)

		assert.Equal(t, attendance.StatusPresent, resp.Status)
		assert.Equal(t, "2024-06-03", resp.Date)
		require.NotNil(t, resp.WorkType)
		assert.Equal(t, attendance.WorkTypeOffice, *resp.WorkType)
		assert.Nil(t, resp.TotalHours)
		assert.Len(t, repo.rows, 3)
	})

	t.Run("late after grace period", func(t *testing.T) {
		svc, _ := newService(t, at(9, 16))

		resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "e-1", WorkType: "remote"})
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusLate, resp.Status)
	})

	t.Run("twice", func(t *testing.T) {
		svc, _ := newService(t, at(9, 0))

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "e-1"})
		require.NoError(t, err)
		_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "e-1"})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})

	t.Run("inactive employee", func(t *testing.T) {
		svc, _ := newService(t, at(9, 0))

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "e-3"})
		assert.ErrorIs(t, err, attendance.ErrEmployeeNotActive)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, _ := newService(t, at(9, 0))

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "e-9"})
		assert.ErrorIs(t, err, attendance.ErrEmployeeNotFound)
	})
}

func TestCheckOut(t *testing.T) {
	ctx := context.Background()

	t.Run("closes the session", func(t *testing.T) {
		svc, _ := newService(t, at(9, 0))
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "e-1"})
		require.NoError(t, err)

		svc.now = func() time.Time { return at(17, 30) }
		resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "e-1"})
		require.NoError(t, err)

		require.NotNil(t, resp.TotalHours)
		assert.Equal(t, 8.5, *resp.TotalHours)

		_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "e-1"})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	})

	t.Run("without check in", func(t *testing.T) {
		svc, _ := newService(t, at(17, 0))

		_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "e-1"})
		assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	})
}
