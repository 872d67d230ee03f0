package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Phone          *string
	DepartmentID   *string
	DepartmentName *string
	Gender         *Gender
	Role           *string
	EmploymentType EmploymentType
	Salary         decimal.Decimal
	HireDate       time.Time
	Status         Status
	Address        *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// ToRecord exposes the fields the employee and remuneration views filter on.
func (e Employee) ToRecord() recordquery.Record {
	var gender any
	if e.Gender != nil {
		gender = string(*e.Gender)
	}
	return recordquery.Record{
		"id":              e.ID,
		"name":            e.FullName(),
		"first_name":      e.FirstName,
		"last_name":       e.LastName,
		"email":           e.Email,
		"phone":           recordquery.Optional(e.Phone),
		"department_id":   recordquery.Optional(e.DepartmentID),
		"department":      recordquery.Optional(e.DepartmentName),
		"gender":          gender,
		"role":            recordquery.Optional(e.Role),
		"employment_type": string(e.EmploymentType),
		"salary":          e.Salary,
		"hire_date":       e.HireDate.Format("2006-01-02"),
		"status":          string(e.Status),
		"address":         recordquery.Optional(e.Address),
	}
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "full-time"
	EmploymentTypePartTime EmploymentType = "part-time"
	EmploymentTypeContract EmploymentType = "contract"
	EmploymentTypeIntern   EmploymentType = "intern"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)
