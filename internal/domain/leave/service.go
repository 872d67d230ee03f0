package leave

import (
	"context"
	"net/url"

	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

type LeaveService interface {
	ListLeaveRequests(ctx context.Context, params url.Values) (view.Outcome, error)
	ExportLeaveRequests(ctx context.Context, params url.Values) (view.File, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	// ApproveLeaveRequest and RejectLeaveRequest only accept pending requests.
	ApproveLeaveRequest(ctx context.Context, req ReviewLeaveRequest) (LeaveRequestResponse, error)
	RejectLeaveRequest(ctx context.Context, req ReviewLeaveRequest) (LeaveRequestResponse, error)
}
