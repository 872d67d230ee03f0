package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/work"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Query errors
	case errors.Is(err, recordquery.ErrInvalidRange):
		BadRequest(w, "Minimum must not be greater than maximum", nil)
	case errors.Is(err, view.ErrUnknownView):
		NotFound(w, "View not found")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenMissing):
		BadRequest(w, "Refresh token is required", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is disabled")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound),
		errors.Is(err, employee.ErrDepartmentNotFound),
		errors.Is(err, recruitment.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, leave.ErrEmployeeNotFound),
		errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeaveRequest):
		Conflict(w, "Leave request overlaps an existing request")
	case errors.Is(err, leave.ErrEmployeeNotActive),
		errors.Is(err, attendance.ErrEmployeeNotActive):
		BadRequest(w, "Employee is not active", nil)

	// Recruitment domain errors
	case errors.Is(err, recruitment.ErrJobPostingNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, recruitment.ErrJobApplicationNotFound):
		NotFound(w, "Job application not found")
	case errors.Is(err, recruitment.ErrJobPostingClosed):
		Conflict(w, "Job posting is closed")
	case errors.Is(err, recruitment.ErrDuplicateApplication):
		Conflict(w, "Candidate already applied to this job posting")
	case errors.Is(err, recruitment.ErrInvalidStatusTransition):
		Conflict(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee has already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Employee has not checked in today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Employee has already checked out today")

	// Work domain errors
	case errors.Is(err, work.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, work.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, work.ErrMilestoneNotFound):
		NotFound(w, "Milestone not found")
	case errors.Is(err, work.ErrAssigneeNotFound):
		NotFound(w, "Assignee not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
