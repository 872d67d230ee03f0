package work

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/work"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjectRepo struct {
	projects []work.Project
}

func (f *fakeProjectRepo) List(ctx context.Context) ([]work.Project, error) { return f.projects, nil }

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (work.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return work.Project{}, work.ErrProjectNotFound
}

func (f *fakeProjectRepo) Create(ctx context.Context, p work.Project) (work.Project, error) {
	p.ID = "p-new"
	f.projects = append(f.projects, p)
	return p, nil
}

type fakeTaskRepo struct {
	tasks       []work.Task
	overdueDays []time.Time
}

func (f *fakeTaskRepo) List(ctx context.Context) ([]work.Task, error) { return f.tasks, nil }

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (work.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return work.Task{}, work.ErrTaskNotFound
}

func (f *fakeTaskRepo) Create(ctx context.Context, t work.Task) (work.Task, error) {
	t.ID = "t-new"
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeTaskRepo) UpdateStatus(ctx context.Context, id string, status work.TaskStatus) error {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Status = status
			return nil
		}
	}
	return work.ErrTaskNotFound
}

func (f *fakeTaskRepo) MarkOverdue(ctx context.Context, today time.Time) (int64, error) {
	f.overdueDays = append(f.overdueDays, today)
	var n int64
	for i := range f.tasks {
		t := &f.tasks[i]
		if t.Deadline != nil && t.Deadline.Before(today) && (t.Status == work.TaskPending || t.Status == work.TaskInProgress) {
			t.Status = work.TaskOverdue
			n++
		}
	}
	return n, nil
}

type fakeMilestoneRepo struct {
	milestones []work.Milestone
}

func (f *fakeMilestoneRepo) List(ctx context.Context) ([]work.Milestone, error) {
	return f.milestones, nil
}

func (f *fakeMilestoneRepo) GetByID(ctx context.Context, id string) (work.Milestone, error) {
	for _, m := range f.milestones {
		if m.ID == id {
			return m, nil
		}
	}
	return work.Milestone{}, work.ErrMilestoneNotFound
}

func (f *fakeMilestoneRepo) Create(ctx context.Context, m work.Milestone) (work.Milestone, error) {
	m.ID = "m-new"
	f.milestones = append(f.milestones, m)
	return m, nil
}

func (f *fakeMilestoneRepo) UpdateStatus(ctx context.Context, id string, status work.MilestoneStatus) error {
	for i := range f.milestones {
		if f.milestones[i].ID == id {
			f.milestones[i].Status = status
			return nil
		}
	}
	return work.ErrMilestoneNotFound
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
}

func (fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id == "e-1" {
		return employee.Employee{ID: id, FirstName: "Sarah", LastName: "Johnson"}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func day(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

type fixture struct {
	svc        *WorkServiceImpl
	projects   *fakeProjectRepo
	tasks      *fakeTaskRepo
	milestones *fakeMilestoneRepo
}

func newFixture() fixture {
	sarah := "Sarah Johnson"
	f := fixture{
		projects: &fakeProjectRepo{projects: []work.Project{
			{ID: "p-1", Name: "Website Redesign", Status: work.ProjectInProgress, Deadline: day("2024-08-01"), TeamSize: 3, TaskCount: 4, CompletedTasks: 3},
			{ID: "p-2", Name: "Payroll Migration", Status: work.ProjectPlanning, Deadline: day("2024-07-01"), TeamSize: 2, TaskCount: 5, CompletedTasks: 1},
		}},
		tasks: &fakeTaskRepo{tasks: []work.Task{
			{ID: "t-1", ProjectID: "p-1", ProjectName: "Website Redesign", Title: "Wireframes", AssigneeName: &sarah, Priority: work.PriorityHigh, Status: work.TaskInProgress, Deadline: day("2024-06-10")},
			{ID: "t-2", ProjectID: "p-1", ProjectName: "Website Redesign", Title: "Copy", Priority: work.PriorityLow, Status: work.TaskCompleted, Deadline: day("2024-06-01")},
			{ID: "t-3", ProjectID: "p-2", ProjectName: "Payroll Migration", Title: "Data mapping", Priority: work.PriorityMedium, Status: work.TaskPending, Deadline: day("2024-06-30")},
		}},
		milestones: &fakeMilestoneRepo{milestones: []work.Milestone{
			{ID: "m-1", ProjectID: "p-1", ProjectName: "Website Redesign", Title: "Design sign-off", Date: *day("2024-06-20"), Status: work.MilestonePending},
		}},
	}

	reg := view.MustBuiltin()
	f.svc = NewWorkService(f.projects, f.tasks, f.milestones, fakeEmployeeRepo{}, Views{
		Projects:   reg.MustGet(view.Projects),
		Tasks:      reg.MustGet(view.Tasks),
		Milestones: reg.MustGet(view.Milestones),
	}).(*WorkServiceImpl)
	f.svc.now = func() time.Time { return time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC) }
	return f
}

func TestListProjects_ProgressRange(t *testing.T) {
	f := newFixture()

	out, err := f.svc.ListProjects(context.Background(), url.Values{"min_progress": {"50"}})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Website Redesign", out.Items[0]["name"])
	assert.Equal(t, 75, out.Items[0]["progress"])
	assert.Equal(t, 2, out.Totals.Int("all"))
}

func TestListTasks_PriorityFilterAndTotals(t *testing.T) {
	f := newFixture()

	out, err := f.svc.ListTasks(context.Background(), url.Values{"priorities": {"high,medium"}})
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	assert.Equal(t, "Wireframes", out.Items[0]["title"])
	assert.Equal(t, 1, out.Totals.Int("completed"))
}

func TestExportMilestones(t *testing.T) {
	f := newFixture()

	file, err := f.svc.ExportMilestones(context.Background(), url.Values{})
	require.NoError(t, err)

	assert.Equal(t, "milestones_export_2024-06-15.csv", file.Name)
	assert.Equal(t, "\"Milestone\",\"Project\",\"Date\",\"Status\"\n\"Design sign-off\",\"Website Redesign\",\"2024-06-20\",\"pending\"", string(file.Body))
}

func TestCreateProject(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.CreateProject(context.Background(), work.CreateProjectRequest{Name: "Onboarding Portal", Deadline: ptr("2024-12-01")})
	require.NoError(t, err)

	assert.Equal(t, work.ProjectPlanning, resp.Status)
	assert.Equal(t, 0, resp.Progress)
	require.NotNil(t, resp.Deadline)
	assert.Equal(t, "2024-12-01", *resp.Deadline)

	_, err = f.svc.CreateProject(context.Background(), work.CreateProjectRequest{Name: "x", Deadline: ptr("soon")})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("with assignee", func(t *testing.T) {
		f := newFixture()

		resp, err := f.svc.CreateTask(ctx, work.CreateTaskRequest{ProjectID: "p-2", Title: "Cutover plan", AssigneeID: ptr("e-1")})
		require.NoError(t, err)

		assert.Equal(t, "Payroll Migration", resp.ProjectName)
		require.NotNil(t, resp.AssigneeName)
		assert.Equal(t, "Sarah Johnson", *resp.AssigneeName)
		assert.Equal(t, work.PriorityMedium, resp.Priority)
		assert.Equal(t, work.TaskPending, resp.Status)
	})

	t.Run("unknown project", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.CreateTask(ctx, work.CreateTaskRequest{ProjectID: "p-9", Title: "x"})
		assert.ErrorIs(t, err, work.ErrProjectNotFound)
	})

	t.Run("unknown assignee", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.CreateTask(ctx, work.CreateTaskRequest{ProjectID: "p-1", Title: "x", AssigneeID: ptr("e-9")})
		assert.ErrorIs(t, err, work.ErrAssigneeNotFound)
	})
}

func TestUpdateTaskStatus(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.UpdateTaskStatus(context.Background(), work.UpdateTaskStatusRequest{ID: "t-1", Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, work.TaskCompleted, resp.Status)

	_, err = f.svc.UpdateTaskStatus(context.Background(), work.UpdateTaskStatusRequest{ID: "t-1", Status: "done"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = f.svc.UpdateTaskStatus(context.Background(), work.UpdateTaskStatusRequest{ID: "t-9", Status: "completed"})
	assert.ErrorIs(t, err, work.ErrTaskNotFound)
}

func TestMarkOverdueTasks(t *testing.T) {
	f := newFixture()

	n, err := f.svc.MarkOverdueTasks(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), n)
	assert.Equal(t, []time.Time{time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)}, f.tasks.overdueDays)
	assert.Equal(t, work.TaskOverdue, f.tasks.tasks[0].Status)
	assert.Equal(t, work.TaskCompleted, f.tasks.tasks[1].Status)
}

func TestMilestones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.svc.CreateMilestone(ctx, work.CreateMilestoneRequest{ProjectID: "p-2", Title: "Go live", Date: "2024-07-01"})
	require.NoError(t, err)
	assert.Equal(t, "Payroll Migration", created.ProjectName)
	assert.Equal(t, work.MilestonePending, created.Status)

	updated, err := f.svc.UpdateMilestoneStatus(ctx, work.UpdateMilestoneStatusRequest{ID: "m-1", Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, work.MilestoneCompleted, updated.Status)

	out, err := f.svc.ListMilestones(ctx, url.Values{"statuses": {"pending"}})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Go live", out.Items[0]["title"])
}

func ptr[T any](v T) *T { return &v }
