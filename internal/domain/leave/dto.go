package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}

	r.LeaveType = strings.ToLower(strings.TrimSpace(r.LeaveType))
	if !validator.IsInSlice(r.LeaveType, LeaveTypes) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be one of: " + strings.Join(LeaveTypes, ", ")})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity assumes Validate has passed.
func (r CreateLeaveRequestRequest) ToEntity() LeaveRequest {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return LeaveRequest{
		EmployeeID: r.EmployeeID,
		LeaveType:  LeaveType(r.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Reason:     strings.TrimSpace(r.Reason),
		Status:     LeaveRequestStatusPending,
	}
}

// ReviewLeaveRequest approves or rejects a pending request.
type ReviewLeaveRequest struct {
	ID       string `json:"-"`
	Comments string `json:"comments"`
}

func (r *ReviewLeaveRequest) Validate() error {
	if len(r.Comments) > 1000 {
		return validator.ValidationErrors{{Field: "comments", Message: "comments must not exceed 1000 characters"}}
	}
	return nil
}

type LeaveRequestResponse struct {
	ID              string             `json:"id"`
	EmployeeID      string             `json:"employee_id"`
	EmployeeName    string             `json:"employee_name"`
	DepartmentName  *string            `json:"department_name"`
	LeaveType       LeaveType          `json:"leave_type"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	Days            int                `json:"days"`
	Reason          string             `json:"reason"`
	Status          LeaveRequestStatus `json:"status"`
	ManagerComments *string            `json:"manager_comments"`
	ReviewedAt      *time.Time         `json:"reviewed_at"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func ToResponse(lr LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              lr.ID,
		EmployeeID:      lr.EmployeeID,
		EmployeeName:    lr.EmployeeName,
		DepartmentName:  lr.DepartmentName,
		LeaveType:       lr.LeaveType,
		StartDate:       lr.StartDate.Format("2006-01-02"),
		EndDate:         lr.EndDate.Format("2006-01-02"),
		Days:            lr.Days(),
		Reason:          lr.Reason,
		Status:          lr.Status,
		ManagerComments: lr.ManagerComments,
		ReviewedAt:      lr.ReviewedAt,
		CreatedAt:       lr.CreatedAt,
		UpdatedAt:       lr.UpdatedAt,
	}
}
