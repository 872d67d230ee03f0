package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/work"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) work.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Team size is the number of distinct assignees across the project's tasks.
const projectSelect = `
	SELECT p.id, p.name, p.description, p.status, p.deadline,
		(SELECT COUNT(DISTINCT t.assignee_id) FROM tasks t WHERE t.project_id = p.id),
		(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id),
		(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id AND t.status = 'completed'),
		p.created_at, p.updated_at
	FROM projects p
`

func scanProject(row pgx.Row) (work.Project, error) {
	var p work.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Status, &p.Deadline,
		&p.TeamSize, &p.TaskCount, &p.CompletedTasks, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *projectRepositoryImpl) List(ctx context.Context) ([]work.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, projectSelect+` ORDER BY p.deadline NULLS LAST, p.name`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []work.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (work.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProject(q.QueryRow(ctx, projectSelect+` WHERE p.id = $1`, id))
	if err != nil {
		return work.Project{}, notFound(err, work.ErrProjectNotFound, "get project")
	}
	return p, nil
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p work.Project) (work.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, name, description, status, deadline, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	var id string
	if err := q.QueryRow(ctx, query, p.Name, p.Description, p.Status, p.Deadline).Scan(&id); err != nil {
		return work.Project{}, fmt.Errorf("create project: %w", err)
	}
	return r.GetByID(ctx, id)
}

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) work.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskSelect = `
	SELECT t.id, t.project_id, t.title, t.description, t.assignee_id, t.priority, t.status,
		t.deadline, t.created_at, t.updated_at,
		p.name, NULLIF(TRIM(COALESCE(e.first_name, '') || ' ' || COALESCE(e.last_name, '')), '')
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	LEFT JOIN employees e ON e.id = t.assignee_id
`

func scanTask(row pgx.Row) (work.Task, error) {
	var t work.Task
	err := row.Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.AssigneeID, &t.Priority, &t.Status,
		&t.Deadline, &t.CreatedAt, &t.UpdatedAt,
		&t.ProjectName, &t.AssigneeName,
	)
	return t, err
}

func (r *taskRepositoryImpl) List(ctx context.Context) ([]work.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, taskSelect+` ORDER BY t.deadline NULLS LAST, t.created_at`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []work.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (work.Task, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTask(q.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id))
	if err != nil {
		return work.Task{}, notFound(err, work.ErrTaskNotFound, "get task")
	}
	return t, nil
}

func (r *taskRepositoryImpl) Create(ctx context.Context, t work.Task) (work.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, project_id, title, description, assignee_id, priority, status, deadline, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`
	var id string
	err := q.QueryRow(ctx, query, t.ProjectID, t.Title, t.Description, t.AssigneeID, t.Priority, t.Status, t.Deadline).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == foreignKeyViolation {
			return work.Task{}, work.ErrProjectNotFound
		}
		return work.Task{}, fmt.Errorf("create task: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, id string, status work.TaskStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE tasks SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return work.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepositoryImpl) MarkOverdue(ctx context.Context, today time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks SET status = 'overdue', updated_at = NOW()
		WHERE status IN ('pending', 'in_progress') AND deadline IS NOT NULL AND deadline < $1::date
	`
	tag, err := q.Exec(ctx, query, today)
	if err != nil {
		return 0, fmt.Errorf("mark overdue tasks: %w", err)
	}
	return tag.RowsAffected(), nil
}

type milestoneRepositoryImpl struct {
	db *database.DB
}

func NewMilestoneRepository(db *database.DB) work.MilestoneRepository {
	return &milestoneRepositoryImpl{db: db}
}

const milestoneSelect = `
	SELECT m.id, m.project_id, m.title, m.date, m.status, m.created_at, m.updated_at, p.name
	FROM milestones m
	JOIN projects p ON p.id = m.project_id
`

func scanMilestone(row pgx.Row) (work.Milestone, error) {
	var m work.Milestone
	err := row.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Date, &m.Status, &m.CreatedAt, &m.UpdatedAt, &m.ProjectName)
	return m, err
}

func (r *milestoneRepositoryImpl) List(ctx context.Context) ([]work.Milestone, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, milestoneSelect+` ORDER BY m.date`)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	defer rows.Close()

	var milestones []work.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("scan milestone: %w", err)
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func (r *milestoneRepositoryImpl) GetByID(ctx context.Context, id string) (work.Milestone, error) {
	q := GetQuerier(ctx, r.db)

	m, err := scanMilestone(q.QueryRow(ctx, milestoneSelect+` WHERE m.id = $1`, id))
	if err != nil {
		return work.Milestone{}, notFound(err, work.ErrMilestoneNotFound, "get milestone")
	}
	return m, nil
}

func (r *milestoneRepositoryImpl) Create(ctx context.Context, m work.Milestone) (work.Milestone, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO milestones (id, project_id, title, date, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	var id string
	if err := q.QueryRow(ctx, query, m.ProjectID, m.Title, m.Date, m.Status).Scan(&id); err != nil {
		if pgErrorCode(err) == foreignKeyViolation {
			return work.Milestone{}, work.ErrProjectNotFound
		}
		return work.Milestone{}, fmt.Errorf("create milestone: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *milestoneRepositoryImpl) UpdateStatus(ctx context.Context, id string, status work.MilestoneStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE milestones SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update milestone status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return work.ErrMilestoneNotFound
	}
	return nil
}
