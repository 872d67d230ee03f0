package department

import (
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
)

type Department struct {
	ID            string
	Name          string
	Description   *string
	EmployeeCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (d Department) ToRecord() recordquery.Record {
	return recordquery.Record{
		"id":             d.ID,
		"name":           d.Name,
		"description":    recordquery.Optional(d.Description),
		"employee_count": d.EmployeeCount,
		"created_at":     d.CreatedAt,
	}
}
