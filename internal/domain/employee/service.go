package employee

import (
	"context"
	"net/url"

	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// ListEmployees runs the employees view over every employee
	ListEmployees(ctx context.Context, params url.Values) (view.Outcome, error)

	// ExportEmployees renders the filtered directory as CSV
	ExportEmployees(ctx context.Context, params url.Values) (view.File, error)

	// GetStatusSummary counts employees per employment status
	GetStatusSummary(ctx context.Context) (StatusSummary, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
}
