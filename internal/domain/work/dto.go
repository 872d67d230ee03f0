package work

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Deadline    *string `json:"deadline,omitempty"`
	TeamSize    int     `json:"team_size"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Status == "" {
		r.Status = string(ProjectPlanning)
	}
	if !validator.IsInSlice(r.Status, ProjectStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: " + strings.Join(ProjectStatuses, ", ")})
	}
	if r.TeamSize < 0 {
		errs = append(errs, validator.ValidationError{Field: "team_size", Message: "team_size must not be negative"})
	}
	errs = validateOptionalDate(errs, "deadline", r.Deadline)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateProjectRequest) ToEntity() Project {
	return Project{
		Name:        r.Name,
		Description: r.Description,
		Status:      ProjectStatus(r.Status),
		Deadline:    parseOptionalDate(r.Deadline),
		TeamSize:    r.TeamSize,
	}
}

type CreateTaskRequest struct {
	ProjectID   string  `json:"project_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
	Priority    string  `json:"priority"`
	Deadline    *string `json:"deadline,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Title = strings.TrimSpace(r.Title)
	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "project_id is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if r.Priority == "" {
		r.Priority = string(PriorityMedium)
	}
	if !validator.IsInSlice(r.Priority, Priorities) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "priority must be one of: low, medium, high"})
	}
	errs = validateOptionalDate(errs, "deadline", r.Deadline)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateTaskRequest) ToEntity() Task {
	return Task{
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		AssigneeID:  r.AssigneeID,
		Priority:    Priority(r.Priority),
		Status:      TaskPending,
		Deadline:    parseOptionalDate(r.Deadline),
	}
}

type UpdateTaskStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateTaskStatusRequest) Validate() error {
	if !validator.IsInSlice(r.Status, TaskStatuses) {
		return validator.ValidationErrors{{Field: "status", Message: "status must be one of: " + strings.Join(TaskStatuses, ", ")}}
	}
	return nil
}

type CreateMilestoneRequest struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
}

func (r *CreateMilestoneRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Title = strings.TrimSpace(r.Title)
	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "project_id is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateMilestoneRequest) ToEntity() Milestone {
	d, _ := validator.IsValidDate(r.Date)
	return Milestone{
		ProjectID: r.ProjectID,
		Title:     r.Title,
		Date:      d,
		Status:    MilestonePending,
	}
}

type UpdateMilestoneStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateMilestoneStatusRequest) Validate() error {
	if !validator.IsInSlice(r.Status, MilestoneStatuses) {
		return validator.ValidationErrors{{Field: "status", Message: "status must be one of: " + strings.Join(MilestoneStatuses, ", ")}}
	}
	return nil
}

func validateOptionalDate(errs validator.ValidationErrors, field string, value *string) validator.ValidationErrors {
	if value == nil || validator.IsEmpty(*value) {
		return errs
	}
	if _, ok := validator.IsValidDate(*value); !ok {
		errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be in YYYY-MM-DD format"})
	}
	return errs
}

func parseOptionalDate(value *string) *time.Time {
	if value == nil {
		return nil
	}
	d, ok := validator.IsValidDate(*value)
	if !ok {
		return nil
	}
	return &d
}

type ProjectResponse struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Status         ProjectStatus `json:"status"`
	Deadline       *string       `json:"deadline"`
	TeamSize       int           `json:"team_size"`
	TaskCount      int           `json:"tasks"`
	CompletedTasks int           `json:"completed"`
	Progress       int           `json:"progress"`
	CreatedAt      time.Time     `json:"created_at"`
}

func ToProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         p.Status,
		Deadline:       formatOptionalDate(p.Deadline),
		TeamSize:       p.TeamSize,
		TaskCount:      p.TaskCount,
		CompletedTasks: p.CompletedTasks,
		Progress:       p.Progress(),
		CreatedAt:      p.CreatedAt,
	}
}

type TaskResponse struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	ProjectName  string     `json:"project"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	AssigneeID   *string    `json:"assignee_id"`
	AssigneeName *string    `json:"assignee"`
	Priority     Priority   `json:"priority"`
	Status       TaskStatus `json:"status"`
	Deadline     *string    `json:"deadline"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToTaskResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		ProjectName:  t.ProjectName,
		Title:        t.Title,
		Description:  t.Description,
		AssigneeID:   t.AssigneeID,
		AssigneeName: t.AssigneeName,
		Priority:     t.Priority,
		Status:       t.Status,
		Deadline:     formatOptionalDate(t.Deadline),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type MilestoneResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	ProjectName string          `json:"project"`
	Title       string          `json:"title"`
	Date        string          `json:"date"`
	Status      MilestoneStatus `json:"status"`
}

func ToMilestoneResponse(m Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		ProjectName: m.ProjectName,
		Title:       m.Title,
		Date:        m.Date.Format("2006-01-02"),
		Status:      m.Status,
	}
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
