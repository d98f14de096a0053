package usecase

import (
	"context"

	"voice-task-tracker/internal/task"
	repo "voice-task-tracker/internal/task/repository"
)

// List returns the Tasks matching the filters, newest first.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:   input.Status,
		Priority: input.Priority,
		Search:   input.Search,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{Tasks: tasks}, nil
}
