package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/workspherex/workforce-api/internal/core/domain"
	"github.com/workspherex/workforce-api/internal/core/ports"
)

// dateLayout is the calendar-date format the authoring form submits.
const dateLayout = "2006-01-02"

type TaskService struct {
	repo      ports.TaskRepository
	employees ports.EmployeeRepository
	log       zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, employees ports.EmployeeRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, employees: employees, log: log}
}

// CreateTask validates the draft, resolves the optional assignee reference,
// and persists the task with the default Accepted status.
func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	draft := domain.TaskDraft{
		TaskTitle:   input.TaskTitle,
		Date:        input.Date,
		Assignee:    input.Assignee,
		AssigneeID:  input.AssigneeID,
		Category:    input.Category,
		Description: input.Description,
	}
	if fields := draft.Validate(); len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	date, err := time.ParseInLocation(dateLayout, input.Date, time.UTC)
	if err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"date": "date must be a calendar date (YYYY-MM-DD)",
		}}
	}

	if input.AssigneeID != "" {
		if _, err := s.employees.FindByEmployeeID(ctx, input.AssigneeID); err != nil {
			if errors.Is(err, domain.ErrEmployeeNotFound) {
				return nil, domain.ErrAssigneeNotFound
			}
			return nil, err
		}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		TaskTitle:   input.TaskTitle,
		Date:        date,
		Assignee:    input.Assignee,
		AssigneeID:  input.AssigneeID,
		Category:    input.Category,
		Description: input.Description,
		Status:      domain.StatusAccepted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.log.Info().Str("task_id", created.ID).Str("assignee", created.Assignee).Msg("task created")
	return created, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.repo.ListAll(ctx)
}

// UpdateTaskStatus sets the task's status. Any valid status may be chosen
// regardless of the current one; only enum membership is enforced.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id string, status string) (*domain.Task, error) {
	next := domain.TaskStatus(status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", id).Str("status", string(next)).Msg("task status updated")
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

// Stats recomputes the per-status tally from the full task collection on
// every call; nothing is materialized.
func (s *TaskService) Stats(ctx context.Context) (*ports.TaskStats, error) {
	tasks, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.TaskStats{
		Counts: domain.CountByStatus(tasks),
		Total:  len(tasks),
	}, nil
}
