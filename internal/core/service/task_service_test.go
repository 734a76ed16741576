package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/workspherex/workforce-api/internal/core/domain"
	"github.com/workspherex/workforce-api/internal/core/ports"
)

type stubTaskRepo struct {
	tasks  map[string]*domain.Task
	nextID int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	r.nextID++
	created := *t
	created.ID = "task-" + strconv.Itoa(r.nextID)
	r.tasks[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubTaskRepo) ListAll(_ context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTaskRepo) UpdateStatus(_ context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	clone := *t
	return &clone, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func newTaskService(repo *stubTaskRepo, employees *stubEmployeeRepo) *TaskService {
	return NewTaskService(repo, employees, zerolog.Nop())
}

func createInput() ports.CreateTaskInput {
	return ports.CreateTaskInput{
		TaskTitle:   "Write report",
		Date:        "2024-01-01",
		Assignee:    "Jane",
		Category:    "Docs",
		Description: "Q1 report",
	}
}

func TestTaskService_CreateTask_DefaultsToAccepted(t *testing.T) {
	svc := newTaskService(newStubTaskRepo(), newStubEmployeeRepo())

	task, err := svc.CreateTask(context.Background(), createInput())
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}
	if task.Status != domain.StatusAccepted {
		t.Fatalf("expected default status Accepted, got %q", task.Status)
	}
	if task.ID == "" {
		t.Fatalf("expected server-assigned id")
	}
	if task.Date.Format("2006-01-02") != "2024-01-01" {
		t.Fatalf("unexpected date: %v", task.Date)
	}
	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestTaskService_CreateTask_AllFieldsMissing(t *testing.T) {
	svc := newTaskService(newStubTaskRepo(), newStubEmployeeRepo())

	_, err := svc.CreateTask(context.Background(), ports.CreateTaskInput{})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 5 {
		t.Fatalf("expected 5 field errors, got %d: %v", len(ve.Fields), ve.Fields)
	}
}

func TestTaskService_CreateTask_BadDate(t *testing.T) {
	svc := newTaskService(newStubTaskRepo(), newStubEmployeeRepo())

	in := createInput()
	in.Date = "January 1st"
	_, err := svc.CreateTask(context.Background(), in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["date"]; !ok || len(ve.Fields) != 1 {
		t.Fatalf("expected a single date error, got %v", ve.Fields)
	}
}

func TestTaskService_CreateTask_AssigneeReference(t *testing.T) {
	employees := newStubEmployeeRepo()
	_, err := employees.Create(context.Background(), &domain.Employee{
		EmployeeID: "EMP123",
		Email:      "jane@corp.example",
		Role:       domain.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	svc := newTaskService(newStubTaskRepo(), employees)

	in := createInput()
	in.AssigneeID = "EMP123"
	if _, err := svc.CreateTask(context.Background(), in); err != nil {
		t.Fatalf("create with valid assignee reference failed: %v", err)
	}

	in.AssigneeID = "EMP999"
	if _, err := svc.CreateTask(context.Background(), in); !errors.Is(err, domain.ErrAssigneeNotFound) {
		t.Fatalf("expected ErrAssigneeNotFound, got %v", err)
	}
}

func TestTaskService_UpdateTaskStatus(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTaskService(repo, newStubEmployeeRepo())

	task, err := svc.CreateTask(context.Background(), createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateTaskStatus(context.Background(), task.ID, "Completed")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.StatusCompleted {
		t.Fatalf("expected Completed, got %q", updated.Status)
	}
	if updated.TaskTitle != task.TaskTitle || updated.Assignee != task.Assignee {
		t.Fatalf("status update must not change other fields: %+v", updated)
	}

	// Free-choice status: moving out of Completed is allowed.
	if _, err := svc.UpdateTaskStatus(context.Background(), task.ID, "Rejected"); err != nil {
		t.Fatalf("Completed -> Rejected should be allowed: %v", err)
	}
}

func TestTaskService_UpdateTaskStatus_InvalidStatus(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTaskService(repo, newStubEmployeeRepo())

	task, _ := svc.CreateTask(context.Background(), createInput())
	if _, err := svc.UpdateTaskStatus(context.Background(), task.ID, "Done"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestTaskService_UpdateTaskStatus_NotFound(t *testing.T) {
	svc := newTaskService(newStubTaskRepo(), newStubEmployeeRepo())

	if _, err := svc.UpdateTaskStatus(context.Background(), "missing", "Completed"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_DeleteTask_Twice(t *testing.T) {
	svc := newTaskService(newStubTaskRepo(), newStubEmployeeRepo())

	task, _ := svc.CreateTask(context.Background(), createInput())
	if err := svc.DeleteTask(context.Background(), task.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.DeleteTask(context.Background(), task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("second delete should be NotFound, got %v", err)
	}
}

func TestTaskService_Stats(t *testing.T) {
	svc := newTaskService(newStubTaskRepo(), newStubEmployeeRepo())

	empty, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if empty.Total != 0 || len(empty.Counts) != 4 {
		t.Fatalf("empty stats should have 4 zero buckets: %+v", empty)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateTask(context.Background(), createInput()); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	task, _ := svc.CreateTask(context.Background(), createInput())
	if _, err := svc.UpdateTaskStatus(context.Background(), task.ID, "In Progress"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Total != 4 {
		t.Fatalf("expected total 4, got %d", stats.Total)
	}
	if stats.Counts[domain.StatusAccepted] != 3 || stats.Counts[domain.StatusInProgress] != 1 {
		t.Fatalf("unexpected counts: %v", stats.Counts)
	}

	sum := 0
	for _, n := range stats.Counts {
		sum += n
	}
	if sum != stats.Total {
		t.Fatalf("counts sum to %d, want %d", sum, stats.Total)
	}
}

// End-to-end shape of the authoring flow: create, flip status, list.
func TestTaskService_CreateUpdateList(t *testing.T) {
	svc := newTaskService(newStubTaskRepo(), newStubEmployeeRepo())

	task, err := svc.CreateTask(context.Background(), createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.UpdateTaskStatus(context.Background(), task.ID, "Completed"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	tasks, err := svc.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.Status != domain.StatusCompleted {
		t.Fatalf("expected Completed in listing, got %q", got.Status)
	}
	if got.TaskTitle != "Write report" || got.Assignee != "Jane" || got.Category != "Docs" || got.Description != "Q1 report" {
		t.Fatalf("other fields changed: %+v", got)
	}
}
