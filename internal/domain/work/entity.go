package work

import (
	"math"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
)

type ProjectStatus string

const (
	ProjectPlanning       ProjectStatus = "planning"
	ProjectInProgress     ProjectStatus = "in_progress"
	ProjectNearCompletion ProjectStatus = "near_completion"
	ProjectCompleted      ProjectStatus = "completed"
	ProjectOnHold         ProjectStatus = "on_hold"
)

var ProjectStatuses = []string{
	string(ProjectPlanning), string(ProjectInProgress), string(ProjectNearCompletion),
	string(ProjectCompleted), string(ProjectOnHold),
}

type Project struct {
	ID             string
	Name           string
	Description    string
	Status         ProjectStatus
	Deadline       *time.Time
	TeamSize       int
	TaskCount      int
	CompletedTasks int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Progress is the share of completed tasks as a whole percentage.
func (p Project) Progress() int {
	if p.TaskCount == 0 {
		return 0
	}
	return int(math.Round(float64(p.CompletedTasks) * 100 / float64(p.TaskCount)))
}

func (p Project) ToRecord() recordquery.Record {
	return recordquery.Record{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"status":      string(p.Status),
		"progress":    p.Progress(),
		"tasks":       p.TaskCount,
		"completed":   p.CompletedTasks,
		"team":        p.TeamSize,
		"deadline":    date(p.Deadline),
	}
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskOverdue    TaskStatus = "overdue"
)

var TaskStatuses = []string{string(TaskPending), string(TaskInProgress), string(TaskCompleted), string(TaskOverdue)}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}

type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	AssigneeID  *string
	Priority    Priority
	Status      TaskStatus
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for responses
	ProjectName  string
	AssigneeName *string
}

func (t Task) ToRecord() recordquery.Record {
	return recordquery.Record{
		"id":          t.ID,
		"project_id":  t.ProjectID,
		"project":     t.ProjectName,
		"title":       t.Title,
		"description": t.Description,
		"assignee_id": recordquery.Optional(t.AssigneeID),
		"assignee":    recordquery.Optional(t.AssigneeName),
		"priority":    string(t.Priority),
		"status":      string(t.Status),
		"deadline":    date(t.Deadline),
	}
}

type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

var MilestoneStatuses = []string{string(MilestonePending), string(MilestoneInProgress), string(MilestoneCompleted)}

type Milestone struct {
	ID        string
	ProjectID string
	Title     string
	Date      time.Time
	Status    MilestoneStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	ProjectName string
}

func (m Milestone) ToRecord() recordquery.Record {
	return recordquery.Record{
		"id":         m.ID,
		"project_id": m.ProjectID,
		"project":    m.ProjectName,
		"title":      m.Title,
		"date":       m.Date.Format("2006-01-02"),
		"status":     string(m.Status),
	}
}

func date(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
