package ports

import (
	"context"

	"github.com/workspherex/workforce-api/internal/core/domain"
)

// CreateTaskInput carries the authoring form for a new task. Date arrives as
// the raw string the client submitted; the service parses it after the
// required-field check so a blank date reports like any other missing field.
type CreateTaskInput struct {
	TaskTitle   string
	Date        string
	Assignee    string
	AssigneeID  string
	Category    string
	Description string
}

// TaskStats is the aggregate view the dashboards render: absolute counts per
// status plus the total they sum to.
type TaskStats struct {
	Counts map[domain.TaskStatus]int
	Total  int
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	Stats(ctx context.Context) (*TaskStats, error)
}
