package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request has already been processed")
	ErrEmployeeNotFound             = errors.New("employee not found")
	ErrEmployeeNotActive            = errors.New("only active employees can request leave")
	ErrOverlappingLeaveRequest      = errors.New("leave request overlaps an existing request")
)
