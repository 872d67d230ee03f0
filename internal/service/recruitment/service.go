package recruitment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

type RecruitmentServiceImpl struct {
	tx              database.Transactor
	postingRepo     recruitment.JobPostingRepository
	applicationRepo recruitment.JobApplicationRepository
	departmentRepo  department.DepartmentRepository
	jobs            *view.Schema
	candidates      *view.Schema
	now             func() time.Time
}

func NewRecruitmentService(
	tx database.Transactor,
	postingRepo recruitment.JobPostingRepository,
	applicationRepo recruitment.JobApplicationRepository,
	departmentRepo department.DepartmentRepository,
	jobs *view.Schema,
	candidates *view.Schema,
) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		tx:              tx,
		postingRepo:     postingRepo,
		applicationRepo: applicationRepo,
		departmentRepo:  departmentRepo,
		jobs:            jobs,
		candidates:      candidates,
		now:             time.Now,
	}
}

func (s *RecruitmentServiceImpl) postingRecords(ctx context.Context) ([]recordquery.Record, error) {
	postings, err := s.postingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	return recordquery.From(postings), nil
}

func (s *RecruitmentServiceImpl) applicationRecords(ctx context.Context) ([]recordquery.Record, error) {
	applications, err := s.applicationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	return recordquery.From(applications), nil
}

// ListJobPostings implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListJobPostings(ctx context.Context, params url.Values) (view.Outcome, error) {
	records, err := s.postingRecords(ctx)
	if err != nil {
		return view.Outcome{}, err
	}
	return s.jobs.List(records, params)
}

// ExportJobPostings implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ExportJobPostings(ctx context.Context, params url.Values) (view.File, error) {
	records, err := s.postingRecords(ctx)
	if err != nil {
		return view.File{}, err
	}
	return s.jobs.ExportCSV(records, params, s.now())
}

// GetJobPosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetJobPosting(ctx context.Context, id string) (recruitment.JobPostingResponse, error) {
	posting, err := s.postingRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.JobPostingResponse{}, err
	}
	return recruitment.ToJobPostingResponse(posting), nil
}

// CreateJobPosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) CreateJobPosting(ctx context.Context, req recruitment.CreateJobPostingRequest) (recruitment.JobPostingResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobPostingResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return recruitment.JobPostingResponse{}, recruitment.ErrDepartmentNotFound
		}
		return recruitment.JobPostingResponse{}, fmt.Errorf("failed to get department: %w", err)
	}

	posting, err := s.postingRepo.Create(ctx, req.ToEntity())
	if err != nil {
		slog.Error("failed to create job posting", "title", req.Title, "error", err)
		return recruitment.JobPostingResponse{}, err
	}
	return recruitment.ToJobPostingResponse(posting), nil
}

// CloseJobPosting implements recruitment.RecruitmentService. Closing an
// already closed posting is a no-op.
func (s *RecruitmentServiceImpl) CloseJobPosting(ctx context.Context, id string) (recruitment.JobPostingResponse, error) {
	posting, err := s.postingRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.JobPostingResponse{}, err
	}
	if posting.IsActive {
		if err := s.postingRepo.SetActive(ctx, id, false); err != nil {
			return recruitment.JobPostingResponse{}, err
		}
		posting.IsActive = false
	}
	return recruitment.ToJobPostingResponse(posting), nil
}

// ListApplications implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListApplications(ctx context.Context, params url.Values) (view.Outcome, error) {
	records, err := s.applicationRecords(ctx)
	if err != nil {
		return view.Outcome{}, err
	}
	return s.candidates.List(records, params)
}

// ExportApplications implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ExportApplications(ctx context.Context, params url.Values) (view.File, error) {
	records, err := s.applicationRecords(ctx)
	if err != nil {
		return view.File{}, err
	}
	return s.candidates.ExportCSV(records, params, s.now())
}

// GetApplication implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetApplication(ctx context.Context, id string) (recruitment.JobApplicationResponse, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.JobApplicationResponse{}, err
	}
	return recruitment.ToJobApplicationResponse(application), nil
}

// CreateApplication implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) CreateApplication(ctx context.Context, req recruitment.CreateJobApplicationRequest) (recruitment.JobApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobApplicationResponse{}, err
	}

	posting, err := s.postingRepo.GetByID(ctx, req.JobPostingID)
	if err != nil {
		return recruitment.JobApplicationResponse{}, err
	}
	if !posting.IsActive {
		return recruitment.JobApplicationResponse{}, recruitment.ErrJobPostingClosed
	}

	exists, err := s.applicationRepo.ExistsForCandidate(ctx, posting.ID, req.CandidateEmail)
	if err != nil {
		return recruitment.JobApplicationResponse{}, fmt.Errorf("failed to check existing application: %w", err)
	}
	if exists {
		return recruitment.JobApplicationResponse{}, recruitment.ErrDuplicateApplication
	}

	application, err := s.applicationRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return recruitment.JobApplicationResponse{}, err
	}
	slog.Info("job application received", "id", application.ID, "job_posting_id", posting.ID)
	return recruitment.ToJobApplicationResponse(application), nil
}

// MoveApplication implements recruitment.RecruitmentService. The row is
// locked while the transition is checked, and the update only applies if the
// status is still the one that was checked.
func (s *RecruitmentServiceImpl) MoveApplication(ctx context.Context, id string, next recruitment.ApplicationStatus) (recruitment.JobApplicationResponse, error) {
	var application recruitment.JobApplication
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		application, err = s.applicationRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !application.Status.CanMoveTo(next) {
			return fmt.Errorf("%w: %s to %s", recruitment.ErrInvalidStatusTransition, application.Status, next)
		}
		return s.applicationRepo.UpdateStatus(ctx, id, application.Status, next)
	})
	if err != nil {
		return recruitment.JobApplicationResponse{}, err
	}

	slog.Info("job application moved", "id", id, "status", next)
	application.Status = next
	application.UpdatedAt = s.now()
	return recruitment.ToJobApplicationResponse(application), nil
}

// RateApplication implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) RateApplication(ctx context.Context, req recruitment.RateApplicationRequest) (recruitment.JobApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobApplicationResponse{}, err
	}

	application, err := s.applicationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return recruitment.JobApplicationResponse{}, err
	}
	if err := s.applicationRepo.UpdateRating(ctx, req.ID, req.Rating); err != nil {
		return recruitment.JobApplicationResponse{}, err
	}
	application.Rating = req.Rating
	application.UpdatedAt = s.now()
	return recruitment.ToJobApplicationResponse(application), nil
}
