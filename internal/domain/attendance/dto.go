package attendance

import (
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	WorkType   string  `json:"work_type"`
	Location   *string `json:"location,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.WorkType == "" {
		r.WorkType = string(WorkTypeOffice)
	}
	if !validator.IsInSlice(r.WorkType, WorkTypes) {
		errs = append(errs, validator.ValidationError{Field: "work_type", Message: "work_type must be one of: office, remote, hybrid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	if validator.IsEmpty(r.EmployeeID) {
		return validator.ValidationErrors{{Field: "employee_id", Message: "employee_id is required"}}
	}
	return nil
}

type AttendanceResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	EmployeeName   string     `json:"employee_name"`
	DepartmentName *string    `json:"department_name"`
	Date           string     `json:"date"`
	CheckIn        *time.Time `json:"check_in"`
	CheckOut       *time.Time `json:"check_out"`
	WorkType       *WorkType  `json:"work_type"`
	Status         Status     `json:"status"`
	TotalHours     *float64   `json:"total_hours"`
	Location       *string    `json:"location"`
	AutoClosed     bool       `json:"auto_closed"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   a.EmployeeName,
		DepartmentName: a.DepartmentName,
		Date:           a.Date.Format("2006-01-02"),
		CheckIn:        a.CheckIn,
		CheckOut:       a.CheckOut,
		WorkType:       a.WorkType,
		Status:         a.Status,
		TotalHours:     a.TotalHours(),
		Location:       a.Location,
		AutoClosed:     a.AutoClosed,
	}
}
