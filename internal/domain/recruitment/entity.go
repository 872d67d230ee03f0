package recruitment

import (
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/shopspring/decimal"
)

type JobPosting struct {
	ID               string
	Title            string
	DepartmentID     string
	DepartmentName   *string
	Location         *string
	EmploymentType   string
	Description      string
	Requirements     string
	SalaryMin        *decimal.Decimal
	SalaryMax        *decimal.Decimal
	IsActive         bool
	ApplicationCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const (
	PostingOpen   = "open"
	PostingClosed = "closed"
)

func (j JobPosting) Status() string {
	if j.IsActive {
		return PostingOpen
	}
	return PostingClosed
}

func (j JobPosting) ToRecord() recordquery.Record {
	return recordquery.Record{
		"id":              j.ID,
		"title":           j.Title,
		"department_id":   j.DepartmentID,
		"department":      recordquery.Optional(j.DepartmentName),
		"location":        recordquery.Optional(j.Location),
		"employment_type": j.EmploymentType,
		"salary_min":      recordquery.Optional(j.SalaryMin),
		"salary_max":      recordquery.Optional(j.SalaryMax),
		"applications":    j.ApplicationCount,
		"status":          j.Status(),
		"posted_at":       j.CreatedAt,
	}
}

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationInterview   ApplicationStatus = "interview"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

// transitions lists the statuses an application may move to next.
var transitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:     {ApplicationShortlisted, ApplicationInterview, ApplicationRejected},
	ApplicationShortlisted: {ApplicationInterview, ApplicationRejected},
	ApplicationInterview:   {ApplicationHired, ApplicationRejected},
}

// CanMoveTo reports whether an application in status s may move to next.
func (s ApplicationStatus) CanMoveTo(next ApplicationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

const MaxRating = 5

type JobApplication struct {
	ID             string
	JobPostingID   string
	CandidateName  string
	CandidateEmail string
	CandidatePhone *string
	ResumeURL      *string
	CoverLetter    *string
	Status         ApplicationStatus
	Rating         int
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for responses
	JobTitle       string
	DepartmentName *string
}

func (a JobApplication) ToRecord() recordquery.Record {
	return recordquery.Record{
		"id":         a.ID,
		"job_id":     a.JobPostingID,
		"name":       a.CandidateName,
		"email":      a.CandidateEmail,
		"phone":      recordquery.Optional(a.CandidatePhone),
		"role":       a.JobTitle,
		"department": recordquery.Optional(a.DepartmentName),
		"status":     string(a.Status),
		"rating":     a.Rating,
		"applied_at": a.CreatedAt,
	}
}
