package attendance

import (
	"context"
	"net/url"

	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

type AttendanceService interface {
	ListAttendance(ctx context.Context, params url.Values) (view.Outcome, error)
	ExportAttendance(ctx context.Context, params url.Values) (view.File, error)
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
}
