package model

import (
	"time"

	"github.com/google/uuid"
)

// Task is a persisted task record.
type Task struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Status          string
	Priority        string
	DueDate         *time.Time // naive local clock, nil when unset
	Transcript      string     // voice transcript the task was created from, if any
	CalendarEventID string     // Google Calendar event ID, if synced
	CalendarLink    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Task priorities
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Task statuses
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

var (
	Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
	Statuses   = []string{StatusToDo, StatusInProgress, StatusDone}
)
