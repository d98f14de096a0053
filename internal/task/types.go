package task

import "voice-task-tracker/internal/model"

// --- UseCase Inputs ---

// CreateTaskInput holds a new task. Empty Status/Priority take the defaults,
// DueDate is a wall-clock timestamp or empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     string
	Transcript  string
}

// ListTasksInput filters the task list. Search matches title or description, case-insensitively.
type ListTasksInput struct {
	Status   string
	Priority string
	Search   string
}

// UpdateTaskInput is a partial update: nil fields are left unchanged.
// A DueDate pointing at "" clears the due date.
type UpdateTaskInput struct {
	ID          string
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
