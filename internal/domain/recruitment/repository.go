package recruitment

import "context"

type JobPostingRepository interface {
	List(ctx context.Context) ([]JobPosting, error)
	GetByID(ctx context.Context, id string) (JobPosting, error)
	Create(ctx context.Context, posting JobPosting) (JobPosting, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type JobApplicationRepository interface {
	List(ctx context.Context) ([]JobApplication, error)
	GetByID(ctx context.Context, id string) (JobApplication, error)
	GetByIDForUpdate(ctx context.Context, id string) (JobApplication, error)
	ExistsForCandidate(ctx context.Context, jobPostingID, email string) (bool, error)
	Create(ctx context.Context, application JobApplication) (JobApplication, error)
	// UpdateStatus moves an application from one status to another and
	// returns ErrInvalidStatusTransition when it is no longer in from.
	UpdateStatus(ctx context.Context, id string, from, to ApplicationStatus) error
	UpdateRating(ctx context.Context, id string, rating int) error
}
