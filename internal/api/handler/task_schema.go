package handler

import "time"

// createTaskRequest carries the authoring form. Required-field checking is
// the domain's job so every missing field is reported at once, keyed by name;
// no validate tags here.
type createTaskRequest struct {
	TaskTitle   string `json:"taskTitle"`
	Date        string `json:"date"`
	Assignee    string `json:"assignee"`
	AssigneeID  string `json:"assigneeId,omitempty"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type updateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	TaskTitle   string    `json:"taskTitle"`
	Date        time.Time `json:"date"`
	Assignee    string    `json:"assignee"`
	AssigneeID  string    `json:"assigneeId,omitempty"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type createTaskResponse struct {
	Message string       `json:"message"`
	Task    taskResponse `json:"task"`
}

// taskStatsResponse feeds the dashboard tiles and the proportional charts.
// Counts always contains all four statuses, zeros included.
type taskStatsResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}
