package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	List(ctx context.Context) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// GetByIDForUpdate locks the row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, comments *string) error
}
