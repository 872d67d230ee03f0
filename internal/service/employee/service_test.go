package employee

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
	nextID    int
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	for _, e := range f.employees {
		if excludeID != nil && e.ID == *excludeID {
			continue
		}
		if strings.EqualFold(e.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.nextID++
	e.ID = "new-" + string(rune('0'+f.nextID))
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == e.ID {
			f.employees[i] = e
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

type fakeDepartmentRepo struct{}

func (fakeDepartmentRepo) List(ctx context.Context) ([]department.Department, error) { return nil, nil }
func (fakeDepartmentRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}
func (fakeDepartmentRepo) Create(ctx context.Context, d department.Department) (department.Department, error) {
	return d, nil
}
func (fakeDepartmentRepo) GetByID(ctx context.Context, id string) (department.Department, error) {
	if id == "eng" {
		return department.Department{ID: "eng", Name: "Engineering"}, nil
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func ptr[T any](v T) *T { return &v }

func seed() *fakeEmployeeRepo {
	eng, sales := "Engineering", "Sales"
	return &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "1", FirstName: "Sarah", LastName: "Johnson", Email: "sarah@acme.io", DepartmentID: ptr("eng"), DepartmentName: &eng, EmploymentType: employee.EmploymentTypeFullTime, Salary: decimal.NewFromInt(115000), HireDate: time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), Status: employee.StatusActive},
		{ID: "2", FirstName: "Lisa", LastName: "Wang", Email: "lisa@acme.io", DepartmentID: ptr("eng"), DepartmentName: &eng, EmploymentType: employee.EmploymentTypeContract, Salary: decimal.NewFromInt(75000), HireDate: time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC), Status: employee.StatusActive},
		{ID: "3", FirstName: "Emily", LastName: "Rodriguez", Email: "emily@acme.io", DepartmentName: &sales, EmploymentType: employee.EmploymentTypeFullTime, Salary: decimal.NewFromInt(75000), HireDate: time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC), Status: employee.StatusInactive},
	}}
}

func newService(repo *fakeEmployeeRepo) *EmployeeServiceImpl {
	svc := NewEmployeeService(repo, fakeDepartmentRepo{}, view.MustBuiltin().MustGet(view.Employees)).(*EmployeeServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestListEmployees_FiltersAndAggregates(t *testing.T) {
	svc := newService(seed())

	out, err := svc.ListEmployees(context.Background(), url.Values{"departments": {"Engineering"}})
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	assert.Equal(t, "Lisa Wang", out.Items[0]["name"])
	assert.Equal(t, 2, out.Aggregates.Int("count"))
	assert.Equal(t, float64(95000), out.Aggregates.Float("average_salary"))
	assert.Equal(t, 3, out.Totals.Int("all"))
}

func TestListEmployees_InvalidParam(t *testing.T) {
	svc := newService(seed())

	_, err := svc.ListEmployees(context.Background(), url.Values{"min_salary": {"abc"}})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestExportEmployees(t *testing.T) {
	svc := newService(seed())

	file, err := svc.ExportEmployees(context.Background(), url.Values{"status": {"inactive"}})
	require.NoError(t, err)

	assert.Equal(t, "employees_export_2024-06-15.csv", file.Name)
	assert.Equal(t, "text/csv", file.ContentType)
	lines := strings.Split(string(file.Body), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `"Emily Rodriguez","emily@acme.io","N/A"`))
}

func TestGetStatusSummary(t *testing.T) {
	svc := newService(seed())

	summary, err := svc.GetStatusSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, employee.StatusSummary{Total: 3, Active: 2, Inactive: 1, Terminated: 0}, summary)
}

func validRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:    "David",
		LastName:     "Thompson",
		Email:        "David@Acme.io",
		DepartmentID: ptr("eng"),
		Salary:       decimal.NewFromInt(98000),
		HireDate:     "2019-11-20",
	}
}

func TestCreateEmployee(t *testing.T) {
	repo := seed()
	svc := newService(repo)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "david@acme.io", created.Email)
	assert.Equal(t, employee.StatusActive, created.Status)
	assert.Equal(t, employee.EmploymentTypeFullTime, created.EmploymentType)
	assert.Len(t, repo.employees, 4)

	_, err = svc.CreateEmployee(ctx, validRequest())
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	req := validRequest()
	req.Email = "other@acme.io"
	req.DepartmentID = ptr("nope")
	_, err = svc.CreateEmployee(ctx, req)
	assert.ErrorIs(t, err, employee.ErrDepartmentNotFound)
}

func TestUpdateEmployee(t *testing.T) {
	repo := seed()
	svc := newService(repo)
	ctx := context.Background()

	req := employee.UpdateEmployeeRequest{ID: "2", CreateEmployeeRequest: validRequest()}
	req.Email = "lisa@acme.io"
	req.FirstName = "Lisa"
	req.LastName = "Wang"
	req.Status = "terminated"

	updated, err := svc.UpdateEmployee(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, employee.StatusTerminated, updated.Status)

	req.Email = "sarah@acme.io"
	_, err = svc.UpdateEmployee(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	req.ID = "missing"
	_, err = svc.UpdateEmployee(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	repo := seed()
	svc := newService(repo)

	require.NoError(t, svc.DeleteEmployee(context.Background(), "1"))
	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), "1"), employee.ErrEmployeeNotFound)
}
