package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// OverdueMarker is implemented by the work service.
type OverdueMarker interface {
	MarkOverdueTasks(ctx context.Context) (int64, error)
}

type WorkJobs struct {
	tasks OverdueMarker
}

func NewWorkJobs(tasks OverdueMarker) *WorkJobs {
	return &WorkJobs{tasks: tasks}
}

func (j *WorkJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("mark_overdue_tasks", interval, j.MarkOverdueTasks)
}

func (j *WorkJobs) MarkOverdueTasks(ctx context.Context) error {
	n, err := j.tasks.MarkOverdueTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark overdue tasks: %w", err)
	}
	if n > 0 {
		slog.Info("cron: marked overdue tasks", "count", n)
	}
	return nil
}
