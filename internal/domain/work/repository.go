package work

import (
	"context"
	"time"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Create(ctx context.Context, p Project) (Project, error)
}

type TaskRepository interface {
	List(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	Create(ctx context.Context, t Task) (Task, error)
	UpdateStatus(ctx context.Context, id string, status TaskStatus) error
	// MarkOverdue flags unfinished tasks whose deadline is before today.
	MarkOverdue(ctx context.Context, today time.Time) (int64, error)
}

type MilestoneRepository interface {
	List(ctx context.Context) ([]Milestone, error)
	GetByID(ctx context.Context, id string) (Milestone, error)
	Create(ctx context.Context, m Milestone) (Milestone, error)
	UpdateStatus(ctx context.Context, id string, status MilestoneStatus) error
}
