package recruitment

import "errors"

var (
	ErrJobPostingNotFound      = errors.New("job posting not found")
	ErrJobPostingClosed        = errors.New("job posting is closed")
	ErrJobApplicationNotFound  = errors.New("job application not found")
	ErrDuplicateApplication    = errors.New("candidate already applied to this job posting")
	ErrInvalidStatusTransition = errors.New("invalid application status transition")
	ErrDepartmentNotFound      = errors.New("department not found")
)
