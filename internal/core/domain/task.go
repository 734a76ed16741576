package domain

import (
	"strings"
	"time"
)

// TaskStatus is the lifecycle state of a task. The enum values match what the
// dashboard renders, including the embedded space in "In Progress".
type TaskStatus string

const (
	StatusAccepted   TaskStatus = "Accepted"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
	StatusRejected   TaskStatus = "Rejected"
)

// AllStatuses lists every valid status in display order.
var AllStatuses = []TaskStatus{StatusAccepted, StatusInProgress, StatusCompleted, StatusRejected}

// IsValid reports whether s is one of the four known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusAccepted, StatusInProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a task may move from s to next. Status is a
// free-choice field: any valid status may be set from any other, so the only
// check is enum membership of the target.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	return next.IsValid()
}

// Task is the unit of work assigned to an employee.
//
// Assignee is the display name shown on dashboards; AssigneeID, when set,
// pins the task to a specific Employee.EmployeeID so two employees sharing a
// rendered name stay distinguishable.
type Task struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	TaskTitle   string     `json:"taskTitle" bson:"task_title"`
	Date        time.Time  `json:"date" bson:"date"`
	Assignee    string     `json:"assignee" bson:"assignee"`
	AssigneeID  string     `json:"assigneeId,omitempty" bson:"assignee_id,omitempty"`
	Category    string     `json:"category" bson:"category"`
	Description string     `json:"description" bson:"description"`
	Status      TaskStatus `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updated_at"`
}

// TaskDraft is the authoring form for a new task, before any parsing or
// persistence. Date stays a string here so a blank date is reported like any
// other missing field.
type TaskDraft struct {
	TaskTitle   string
	Date        string
	Assignee    string
	AssigneeID  string
	Category    string
	Description string
}

// requiredness, keyed by the JSON field name the client submitted.
var draftFields = []struct {
	name  string
	value func(TaskDraft) string
}{
	{"taskTitle", func(d TaskDraft) string { return d.TaskTitle }},
	{"date", func(d TaskDraft) string { return d.Date }},
	{"assignee", func(d TaskDraft) string { return d.Assignee }},
	{"category", func(d TaskDraft) string { return d.Category }},
	{"description", func(d TaskDraft) string { return d.Description }},
}

// Validate checks every required field and returns one message per missing
// field, keyed by field name. An empty map means the draft is complete.
func (d TaskDraft) Validate() map[string]string {
	errs := make(map[string]string)
	for _, f := range draftFields {
		if strings.TrimSpace(f.value(d)) == "" {
			errs[f.name] = f.name + " is required"
		}
	}
	return errs
}
