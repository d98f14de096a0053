package repository

import (
	"time"

	"github.com/google/uuid"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title           string
	Description     string
	Status          string
	Priority        string
	DueDate         *time.Time
	Transcript      string
	CalendarEventID string
	CalendarLink    string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID uuid.UUID
}

// ListTasksOptions holds filter parameters for listing Tasks.
// All non-empty fields are applied as AND conditions.
type ListTasksOptions struct {
	Status   string
	Priority string
	Search   string
	OrderBy  string
}

// UpdateTaskOptions replaces every mutable field of a Task.
type UpdateTaskOptions struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Status          string
	Priority        string
	DueDate         *time.Time
	CalendarEventID string
	CalendarLink    string
}
