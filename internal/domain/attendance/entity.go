package attendance

import (
	"math"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
)

type WorkType string

const (
	WorkTypeOffice WorkType = "office"
	WorkTypeRemote WorkType = "remote"
	WorkTypeHybrid WorkType = "hybrid"
)

var WorkTypes = []string{string(WorkTypeOffice), string(WorkTypeRemote), string(WorkTypeHybrid)}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on_leave"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	WorkType   *WorkType
	Status     Status
	Location   *string
	// AutoClosed is set when the session was closed by the stale session job.
	AutoClosed bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses
	EmployeeName   string
	DepartmentName *string
}

// TotalHours is the worked time rounded to two decimals. Absent and on-leave
// days count as zero; an open session has no total yet.
func (a Attendance) TotalHours() *float64 {
	if a.CheckIn == nil || a.CheckOut == nil {
		if a.Status == StatusAbsent || a.Status == StatusOnLeave {
			zero := 0.0
			return &zero
		}
		return nil
	}
	hours := math.Round(a.CheckOut.Sub(*a.CheckIn).Hours()*100) / 100
	return &hours
}

// IsOpen reports whether the employee checked in but not out.
func (a Attendance) IsOpen() bool {
	return a.CheckIn != nil && a.CheckOut == nil
}

func (a Attendance) ToRecord() recordquery.Record {
	var workType any
	if a.WorkType != nil {
		workType = string(*a.WorkType)
	}
	return recordquery.Record{
		"id":          a.ID,
		"employee_id": a.EmployeeID,
		"employee":    a.EmployeeName,
		"department":  recordquery.Optional(a.DepartmentName),
		"date":        a.Date.Format("2006-01-02"),
		"check_in":    clock(a.CheckIn),
		"check_out":   clock(a.CheckOut),
		"work_type":   workType,
		"status":      string(a.Status),
		"total_hours": recordquery.Optional(a.TotalHours()),
		"location":    recordquery.Optional(a.Location),
	}
}

func clock(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("15:04")
}
