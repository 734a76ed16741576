package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoToken            = errors.New("no token provided")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTaskID      = errors.New("invalid task id")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrAssigneeNotFound   = errors.New("assignee not found")
)

// ValidationError carries one message per failing field so the caller can
// render all of them at once instead of failing on the first.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
