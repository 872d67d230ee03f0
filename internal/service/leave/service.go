package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

type LeaveServiceImpl struct {
	tx           database.Transactor
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	schema       *view.Schema
	now          func() time.Time
}

func NewLeaveService(
	tx database.Transactor,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	schema *view.Schema,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:           tx,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		schema:       schema,
		now:          time.Now,
	}
}

func (s *LeaveServiceImpl) records(ctx context.Context) ([]recordquery.Record, error) {
	requests, err := s.leaveRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return recordquery.From(requests), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, params url.Values) (view.Outcome, error) {
	records, err := s.records(ctx)
	if err != nil {
		return view.Outcome{}, err
	}
	return s.schema.List(records, params)
}

// ExportLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ExportLeaveRequests(ctx context.Context, params url.Values) (view.File, error) {
	records, err := s.records(ctx)
	if err != nil {
		return view.File{}, err
	}
	return s.schema.ExportCSV(records, params, s.now())
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(request), nil
}

// CreateLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveRequestResponse{}, leave.ErrEmployeeNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.Status != employee.StatusActive {
		return leave.LeaveRequestResponse{}, leave.ErrEmployeeNotActive
	}

	entity := req.ToEntity()

	var created leave.LeaveRequest
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		overlap, err := s.leaveRepo.HasOverlap(ctx, entity.EmployeeID, entity.StartDate, entity.EndDate)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave: %w", err)
		}
		if overlap {
			return leave.ErrOverlappingLeaveRequest
		}

		created, err = s.leaveRepo.Create(ctx, entity)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request created", "id", created.ID, "employee_id", created.EmployeeID, "days", created.Days())
	return leave.ToResponse(created), nil
}

// ApproveLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error) {
	return s.review(ctx, req, leave.LeaveRequestStatusApproved)
}

// RejectLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error) {
	return s.review(ctx, req, leave.LeaveRequestStatusRejected)
}

func (s *LeaveServiceImpl) review(ctx context.Context, req leave.ReviewLeaveRequest, status leave.LeaveRequestStatus) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var comments *string
	if c := strings.TrimSpace(req.Comments); c != "" {
		comments = &c
	}

	var reviewed leave.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.leaveRepo.GetByIDForUpdate(ctx, req.ID)
		if err != nil {
			return err
		}
		if !request.IsPending() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		if err := s.leaveRepo.UpdateStatus(ctx, request.ID, status, comments); err != nil {
			return err
		}

		reviewed, err = s.leaveRepo.GetByID(ctx, request.ID)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request reviewed", "id", reviewed.ID, "status", reviewed.Status)
	return leave.ToResponse(reviewed), nil
}
