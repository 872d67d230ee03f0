package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("employee has already checked in today")
	ErrNotCheckedIn       = errors.New("employee has not checked in today")
	ErrAlreadyCheckedOut  = errors.New("employee has already checked out today")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeNotActive  = errors.New("employee is not active")
)
