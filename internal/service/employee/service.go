package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	schema         *view.Schema
	now            func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	schema *view.Schema,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		schema:         schema,
		now:            time.Now,
	}
}

func (s *EmployeeServiceImpl) records(ctx context.Context) ([]recordquery.Record, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return recordquery.From(employees), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, params url.Values) (view.Outcome, error) {
	records, err := s.records(ctx)
	if err != nil {
		return view.Outcome{}, err
	}
	return s.schema.List(records, params)
}

// ExportEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ExportEmployees(ctx context.Context, params url.Values) (view.File, error) {
	records, err := s.records(ctx)
	if err != nil {
		return view.File{}, err
	}
	return s.schema.ExportCSV(records, params, s.now())
}

// GetStatusSummary implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetStatusSummary(ctx context.Context) (employee.StatusSummary, error) {
	records, err := s.records(ctx)
	if err != nil {
		return employee.StatusSummary{}, err
	}

	counts := recordquery.Aggregate(records, recordquery.Spec{
		recordquery.Count().As("total"),
		recordquery.CountByField("status").As("by_status"),
	})
	byStatus := counts.Groups("by_status")
	return employee.StatusSummary{
		Total:      counts.Int("total"),
		Active:     byStatus[string(employee.StatusActive)],
		Inactive:   byStatus[string(employee.StatusInactive)],
		Terminated: byStatus[string(employee.StatusTerminated)],
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.checkUnique(ctx, req, nil); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEntity())
	if err != nil {
		slog.Error("failed to create employee", "email", req.Email, "error", err)
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.checkUnique(ctx, req.CreateEmployeeRequest, &req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	entity := req.ToEntity()
	entity.ID = req.ID
	updated, err := s.employeeRepo.Update(ctx, entity)
	if err != nil {
		slog.Error("failed to update employee", "id", req.ID, "error", err)
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) checkUnique(ctx context.Context, req employee.CreateEmployeeRequest, excludeID *string) error {
	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.ErrEmailExists
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return employee.ErrDepartmentNotFound
			}
			return fmt.Errorf("failed to get department: %w", err)
		}
	}
	return nil
}
