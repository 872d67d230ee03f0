package department

import (
	"context"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDepartmentRepo struct {
	departments []department.Department
}

func (f *fakeDepartmentRepo) List(ctx context.Context) ([]department.Department, error) {
	return f.departments, nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id string) (department.Department, error) {
	for _, d := range f.departments {
		if d.ID == id {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, d := range f.departments {
		if strings.EqualFold(d.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, d department.Department) (department.Department, error) {
	d.ID = "dept-new"
	f.departments = append(f.departments, d)
	return d, nil
}

func TestCreateDepartment(t *testing.T) {
	repo := &fakeDepartmentRepo{departments: []department.Department{{ID: "d1", Name: "Engineering"}}}
	svc := NewDepartmentService(repo)
	ctx := context.Background()

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "  Sales "})
	require.NoError(t, err)
	assert.Equal(t, "Sales", created.Name)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "engineering"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: " "})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestGetDepartment_NotFound(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentRepo{})

	_, err := svc.GetDepartment(context.Background(), "missing")

	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}
