package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Phone          *string         `json:"phone,omitempty"`
	DepartmentID   *string         `json:"department_id,omitempty"`
	Gender         *string         `json:"gender,omitempty"`
	Role           *string         `json:"role,omitempty"`
	EmploymentType string          `json:"employment_type"`
	Salary         decimal.Decimal `json:"salary"`
	HireDate       string          `json:"hire_date"`
	Status         string          `json:"status"`
	Address        *string         `json:"address,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	} else if len(r.FirstName) > 100 {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name must not exceed 100 characters"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	} else if len(r.LastName) > 100 {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name must not exceed 100 characters"})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must contain 7-20 digits"})
	}

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{string(Male), string(Female), string(Other)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be one of: male, female, other"})
	}

	if r.EmploymentType == "" {
		r.EmploymentType = string(EmploymentTypeFullTime)
	}
	if !validator.IsInSlice(r.EmploymentType, []string{
		string(EmploymentTypeFullTime), string(EmploymentTypePartTime),
		string(EmploymentTypeContract), string(EmploymentTypeIntern),
	}) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "employment_type must be one of: full-time, part-time, contract, intern"})
	}

	if r.Status == "" {
		r.Status = string(StatusActive)
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive), string(StatusTerminated)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: active, inactive, terminated"})
	}

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date is required"})
	} else if d, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be in YYYY-MM-DD format"})
	} else if d.After(time.Now()) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date cannot be in the future"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity assumes Validate has passed.
func (r CreateEmployeeRequest) ToEntity() Employee {
	hireDate, _ := validator.IsValidDate(r.HireDate)
	var gender *Gender
	if r.Gender != nil {
		g := Gender(*r.Gender)
		gender = &g
	}
	return Employee{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		DepartmentID:   r.DepartmentID,
		Gender:         gender,
		Role:           r.Role,
		EmploymentType: EmploymentType(r.EmploymentType),
		Salary:         r.Salary,
		HireDate:       hireDate,
		Status:         Status(r.Status),
		Address:        r.Address,
	}
}

// UpdateEmployeeRequest replaces every editable field (PUT semantics).
type UpdateEmployeeRequest struct {
	ID string `json:"-"`
	CreateEmployeeRequest
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Phone          *string         `json:"phone"`
	DepartmentID   *string         `json:"department_id"`
	DepartmentName *string         `json:"department_name"`
	Gender         *Gender         `json:"gender"`
	Role           *string         `json:"role"`
	EmploymentType EmploymentType  `json:"employment_type"`
	Salary         decimal.Decimal `json:"salary"`
	HireDate       string          `json:"hire_date"`
	Status         Status          `json:"status"`
	Address        *string         `json:"address"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Name:           e.FullName(),
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Gender:         e.Gender,
		Role:           e.Role,
		EmploymentType: e.EmploymentType,
		Salary:         e.Salary,
		HireDate:       e.HireDate.Format("2006-01-02"),
		Status:         e.Status,
		Address:        e.Address,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// StatusSummary backs the status tabs of the employee directory.
type StatusSummary struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Inactive   int `json:"inactive"`
	Terminated int `json:"terminated"`
}
