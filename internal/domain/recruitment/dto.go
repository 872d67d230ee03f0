package recruitment

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var EmploymentTypes = []string{"full-time", "part-time", "contract", "intern"}

type CreateJobPostingRequest struct {
	Title          string           `json:"title"`
	DepartmentID   string           `json:"department_id"`
	Location       *string          `json:"location,omitempty"`
	EmploymentType string           `json:"employment_type"`
	Description    string           `json:"description"`
	Requirements   string           `json:"requirements"`
	SalaryMin      *decimal.Decimal `json:"salary_min,omitempty"`
	SalaryMax      *decimal.Decimal `json:"salary_max,omitempty"`
}

func (r *CreateJobPostingRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Title = strings.TrimSpace(r.Title)
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > 200 {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title must not exceed 200 characters"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if r.EmploymentType == "" {
		r.EmploymentType = "full-time"
	}
	if !validator.IsInSlice(r.EmploymentType, EmploymentTypes) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "employment_type must be one of: " + strings.Join(EmploymentTypes, ", ")})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if r.SalaryMin != nil && r.SalaryMin.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary_min", Message: "salary_min must not be negative"})
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && r.SalaryMax.LessThan(*r.SalaryMin) {
		errs = append(errs, validator.ValidationError{Field: "salary_max", Message: "salary_max must not be less than salary_min"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateJobPostingRequest) ToEntity() JobPosting {
	return JobPosting{
		Title:          r.Title,
		DepartmentID:   r.DepartmentID,
		Location:       r.Location,
		EmploymentType: r.EmploymentType,
		Description:    r.Description,
		Requirements:   r.Requirements,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		IsActive:       true,
	}
}

type JobPostingResponse struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	DepartmentID     string           `json:"department_id"`
	DepartmentName   *string          `json:"department_name"`
	Location         *string          `json:"location"`
	EmploymentType   string           `json:"employment_type"`
	Description      string           `json:"description"`
	Requirements     string           `json:"requirements"`
	SalaryMin        *decimal.Decimal `json:"salary_min"`
	SalaryMax        *decimal.Decimal `json:"salary_max"`
	Status           string           `json:"status"`
	ApplicationCount int              `json:"applications"`
	CreatedAt        time.Time        `json:"created_at"`
}

func ToJobPostingResponse(j JobPosting) JobPostingResponse {
	return JobPostingResponse{
		ID:               j.ID,
		Title:            j.Title,
		DepartmentID:     j.DepartmentID,
		DepartmentName:   j.DepartmentName,
		Location:         j.Location,
		EmploymentType:   j.EmploymentType,
		Description:      j.Description,
		Requirements:     j.Requirements,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		Status:           j.Status(),
		ApplicationCount: j.ApplicationCount,
		CreatedAt:        j.CreatedAt,
	}
}

type CreateJobApplicationRequest struct {
	JobPostingID   string  `json:"job_posting_id"`
	CandidateName  string  `json:"candidate_name"`
	CandidateEmail string  `json:"candidate_email"`
	CandidatePhone *string `json:"candidate_phone,omitempty"`
	ResumeURL      *string `json:"resume_url,omitempty"`
	CoverLetter    *string `json:"cover_letter,omitempty"`
}

func (r *CreateJobApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	r.CandidateName = strings.TrimSpace(r.CandidateName)
	r.CandidateEmail = strings.ToLower(strings.TrimSpace(r.CandidateEmail))

	if validator.IsEmpty(r.JobPostingID) {
		errs = append(errs, validator.ValidationError{Field: "job_posting_id", Message: "job_posting_id is required"})
	}
	if validator.IsEmpty(r.CandidateName) {
		errs = append(errs, validator.ValidationError{Field: "candidate_name", Message: "candidate_name is required"})
	}
	if !validator.IsValidEmail(r.CandidateEmail) {
		errs = append(errs, validator.ValidationError{Field: "candidate_email", Message: "candidate_email must be a valid email address"})
	}
	if r.CandidatePhone != nil && !validator.IsEmpty(*r.CandidatePhone) && !validator.IsValidPhoneNumber(*r.CandidatePhone) {
		errs = append(errs, validator.ValidationError{Field: "candidate_phone", Message: "candidate_phone must contain 7-20 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateJobApplicationRequest) ToEntity() JobApplication {
	return JobApplication{
		JobPostingID:   r.JobPostingID,
		CandidateName:  r.CandidateName,
		CandidateEmail: r.CandidateEmail,
		CandidatePhone: r.CandidatePhone,
		ResumeURL:      r.ResumeURL,
		CoverLetter:    r.CoverLetter,
		Status:         ApplicationPending,
	}
}

type RateApplicationRequest struct {
	ID     string `json:"-"`
	Rating int    `json:"rating"`
}

func (r *RateApplicationRequest) Validate() error {
	if r.Rating < 0 || r.Rating > MaxRating {
		return validator.ValidationErrors{{Field: "rating", Message: "rating must be between 0 and 5"}}
	}
	return nil
}

type JobApplicationResponse struct {
	ID             string            `json:"id"`
	JobPostingID   string            `json:"job_posting_id"`
	JobTitle       string            `json:"job_title"`
	CandidateName  string            `json:"candidate_name"`
	CandidateEmail string            `json:"candidate_email"`
	CandidatePhone *string           `json:"candidate_phone"`
	ResumeURL      *string           `json:"resume_url"`
	CoverLetter    *string           `json:"cover_letter"`
	Status         ApplicationStatus `json:"status"`
	Rating         int               `json:"rating"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func ToJobApplicationResponse(a JobApplication) JobApplicationResponse {
	return JobApplicationResponse{
		ID:             a.ID,
		JobPostingID:   a.JobPostingID,
		JobTitle:       a.JobTitle,
		CandidateName:  a.CandidateName,
		CandidateEmail: a.CandidateEmail,
		CandidatePhone: a.CandidatePhone,
		ResumeURL:      a.ResumeURL,
		CoverLetter:    a.CoverLetter,
		Status:         a.Status,
		Rating:         a.Rating,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
