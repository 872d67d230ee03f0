package recruitment

import (
	"context"
	"net/url"

	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

type RecruitmentService interface {
	// Job postings
	ListJobPostings(ctx context.Context, params url.Values) (view.Outcome, error)
	ExportJobPostings(ctx context.Context, params url.Values) (view.File, error)
	GetJobPosting(ctx context.Context, id string) (JobPostingResponse, error)
	CreateJobPosting(ctx context.Context, req CreateJobPostingRequest) (JobPostingResponse, error)
	CloseJobPosting(ctx context.Context, id string) (JobPostingResponse, error)

	// Applications
	ListApplications(ctx context.Context, params url.Values) (view.Outcome, error)
	ExportApplications(ctx context.Context, params url.Values) (view.File, error)
	GetApplication(ctx context.Context, id string) (JobApplicationResponse, error)
	CreateApplication(ctx context.Context, req CreateJobApplicationRequest) (JobApplicationResponse, error)
	MoveApplication(ctx context.Context, id string, next ApplicationStatus) (JobApplicationResponse, error)
	RateApplication(ctx context.Context, req RateApplicationRequest) (JobApplicationResponse, error)
}
