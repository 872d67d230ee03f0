package work

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/work"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
)

// Views groups the schemas the work service lists and exports through.
type Views struct {
	Projects   *view.Schema
	Tasks      *view.Schema
	Milestones *view.Schema
}

type WorkServiceImpl struct {
	projectRepo   work.ProjectRepository
	taskRepo      work.TaskRepository
	milestoneRepo work.MilestoneRepository
	employeeRepo  employee.EmployeeRepository
	views         Views
	now           func() time.Time
}

func NewWorkService(
	projectRepo work.ProjectRepository,
	taskRepo work.TaskRepository,
	milestoneRepo work.MilestoneRepository,
	employeeRepo employee.EmployeeRepository,
	views Views,
) work.WorkService {
	return &WorkServiceImpl{
		projectRepo:   projectRepo,
		taskRepo:      taskRepo,
		milestoneRepo: milestoneRepo,
		employeeRepo:  employeeRepo,
		views:         views,
		now:           time.Now,
	}
}

func list[T interface{ ToRecord() recordquery.Record }](
	ctx context.Context,
	load func(context.Context) ([]T, error),
	what string,
) ([]recordquery.Record, error) {
	items, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", what, err)
	}
	return recordquery.From(items), nil
}

// ListProjects implements work.WorkService.
func (s *WorkServiceImpl) ListProjects(ctx context.Context, params url.Values) (view.Outcome, error) {
	records, err := list(ctx, s.projectRepo.List, "projects")
	if err != nil {
		return view.Outcome{}, err
	}
	return s.views.Projects.List(records, params)
}

// ExportProjects implements work.WorkService.
func (s *WorkServiceImpl) ExportProjects(ctx context.Context, params url.Values) (view.File, error) {
	records, err := list(ctx, s.projectRepo.List, "projects")
	if err != nil {
		return view.File{}, err
	}
	return s.views.Projects.ExportCSV(records, params, s.now())
}

// CreateProject implements work.WorkService.
func (s *WorkServiceImpl) CreateProject(ctx context.Context, req work.CreateProjectRequest) (work.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return work.ProjectResponse{}, err
	}
	project, err := s.projectRepo.Create(ctx, req.ToEntity())
	if err != nil {
		slog.Error("failed to create project", "name", req.Name, "error", err)
		return work.ProjectResponse{}, err
	}
	return work.ToProjectResponse(project), nil
}

// ListTasks implements work.WorkService.
func (s *WorkServiceImpl) ListTasks(ctx context.Context, params url.Values) (view.Outcome, error) {
	records, err := list(ctx, s.taskRepo.List, "tasks")
	if err != nil {
		return view.Outcome{}, err
	}
	return s.views.Tasks.List(records, params)
}

// ExportTasks implements work.WorkService.
func (s *WorkServiceImpl) ExportTasks(ctx context.Context, params url.Values) (view.File, error) {
	records, err := list(ctx, s.taskRepo.List, "tasks")
	if err != nil {
		return view.File{}, err
	}
	return s.views.Tasks.ExportCSV(records, params, s.now())
}

// CreateTask implements work.WorkService.
func (s *WorkServiceImpl) CreateTask(ctx context.Context, req work.CreateTaskRequest) (work.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return work.TaskResponse{}, err
	}

	project, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return work.TaskResponse{}, err
	}

	task := req.ToEntity()
	task.ProjectName = project.Name
	if task.AssigneeID != nil {
		assignee, err := s.employeeRepo.GetByID(ctx, *task.AssigneeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return work.TaskResponse{}, work.ErrAssigneeNotFound
			}
			return work.TaskResponse{}, fmt.Errorf("failed to get assignee: %w", err)
		}
		name := assignee.FullName()
		task.AssigneeName = &name
	}

	created, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return work.TaskResponse{}, err
	}
	return work.ToTaskResponse(created), nil
}

// UpdateTaskStatus implements work.WorkService.
func (s *WorkServiceImpl) UpdateTaskStatus(ctx context.Context, req work.UpdateTaskStatusRequest) (work.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return work.TaskResponse{}, err
	}
	if err := s.taskRepo.UpdateStatus(ctx, req.ID, work.TaskStatus(req.Status)); err != nil {
		return work.TaskResponse{}, err
	}
	task, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return work.TaskResponse{}, err
	}
	return work.ToTaskResponse(task), nil
}

// MarkOverdueTasks flags unfinished tasks whose deadline has passed. Called
// from the scheduler.
func (s *WorkServiceImpl) MarkOverdueTasks(ctx context.Context) (int64, error) {
	y, m, d := s.now().Date()
	return s.taskRepo.MarkOverdue(ctx, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ListMilestones implements work.WorkService.
func (s *WorkServiceImpl) ListMilestones(ctx context.Context, params url.Values) (view.Outcome, error) {
	records, err := list(ctx, s.milestoneRepo.List, "milestones")
	if err != nil {
		return view.Outcome{}, err
	}
	return s.views.Milestones.List(records, params)
}

// ExportMilestones implements work.WorkService.
func (s *WorkServiceImpl) ExportMilestones(ctx context.Context, params url.Values) (view.File, error) {
	records, err := list(ctx, s.milestoneRepo.List, "milestones")
	if err != nil {
		return view.File{}, err
	}
	return s.views.Milestones.ExportCSV(records, params, s.now())
}

// CreateMilestone implements work.WorkService.
func (s *WorkServiceImpl) CreateMilestone(ctx context.Context, req work.CreateMilestoneRequest) (work.MilestoneResponse, error) {
	if err := req.Validate(); err != nil {
		return work.MilestoneResponse{}, err
	}

	project, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return work.MilestoneResponse{}, err
	}

	milestone := req.ToEntity()
	milestone.ProjectName = project.Name
	created, err := s.milestoneRepo.Create(ctx, milestone)
	if err != nil {
		return work.MilestoneResponse{}, err
	}
	return work.ToMilestoneResponse(created), nil
}

// UpdateMilestoneStatus implements work.WorkService.
func (s *WorkServiceImpl) UpdateMilestoneStatus(ctx context.Context, req work.UpdateMilestoneStatusRequest) (work.MilestoneResponse, error) {
	if err := req.Validate(); err != nil {
		return work.MilestoneResponse{}, err
	}
	if err := s.milestoneRepo.UpdateStatus(ctx, req.ID, work.MilestoneStatus(req.Status)); err != nil {
		return work.MilestoneResponse{}, err
	}
	milestone, err := s.milestoneRepo.GetByID(ctx, req.ID)
	if err != nil {
		return work.MilestoneResponse{}, err
	}
	return work.ToMilestoneResponse(milestone), nil
}
