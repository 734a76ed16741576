package ports

import (
	"context"

	"github.com/workspherex/workforce-api/internal/core/domain"
)

// TaskRepository defines the interface for task persistence. The store makes
// no ordering guarantee on ListAll; callers sort if they need to.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListAll(ctx context.Context) ([]domain.Task, error)
	// UpdateStatus replaces only the status field and bumps updated_at.
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
