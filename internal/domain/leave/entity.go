package leave

import (
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
)

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeMaternity LeaveType = "maternity"
)

var LeaveTypes = []string{
	string(LeaveTypeAnnual),
	string(LeaveTypeSick),
	string(LeaveTypePersonal),
	string(LeaveTypeMaternity),
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

type LeaveRequest struct {
	ID              string
	EmployeeID      string
	LeaveType       LeaveType
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          LeaveRequestStatus
	ManagerComments *string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for responses
	EmployeeName   string
	DepartmentName *string
}

// Days counts calendar days, both ends inclusive.
func (lr LeaveRequest) Days() int {
	return DaysBetween(lr.StartDate, lr.EndDate)
}

// IsPending reports whether the request can still be approved or rejected.
func (lr LeaveRequest) IsPending() bool {
	return lr.Status == LeaveRequestStatusPending
}

// Covers reports whether the leave includes day.
func (lr LeaveRequest) Covers(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(truncateDay(lr.StartDate)) && !d.After(truncateDay(lr.EndDate))
}

func (lr LeaveRequest) ToRecord() recordquery.Record {
	return recordquery.Record{
		"id":               lr.ID,
		"employee_id":      lr.EmployeeID,
		"employee":         lr.EmployeeName,
		"department":       recordquery.Optional(lr.DepartmentName),
		"leave_type":       string(lr.LeaveType),
		"start_date":       lr.StartDate.Format("2006-01-02"),
		"end_date":         lr.EndDate.Format("2006-01-02"),
		"days":             lr.Days(),
		"reason":           lr.Reason,
		"status":           string(lr.Status),
		"manager_comments": recordquery.Optional(lr.ManagerComments),
		"created_at":       lr.CreatedAt,
	}
}

func DaysBetween(start, end time.Time) int {
	return int(truncateDay(end).Sub(truncateDay(start)).Hours()/24) + 1
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
