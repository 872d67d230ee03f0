package work

import (
	"context"
	"net/url"

	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

type WorkService interface {
	ListProjects(ctx context.Context, params url.Values) (view.Outcome, error)
	ExportProjects(ctx context.Context, params url.Values) (view.File, error)
	CreateProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)

	ListTasks(ctx context.Context, params url.Values) (view.Outcome, error)
	ExportTasks(ctx context.Context, params url.Values) (view.File, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	UpdateTaskStatus(ctx context.Context, req UpdateTaskStatusRequest) (TaskResponse, error)

	ListMilestones(ctx context.Context, params url.Values) (view.Outcome, error)
	ExportMilestones(ctx context.Context, params url.Values) (view.File, error)
	CreateMilestone(ctx context.Context, req CreateMilestoneRequest) (MilestoneResponse, error)
	UpdateMilestoneStatus(ctx context.Context, req UpdateMilestoneStatusRequest) (MilestoneResponse, error)
}
