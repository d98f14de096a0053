package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
	repo "voice-task-tracker/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return task.DetailTaskOutput{}, err
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update applies a partial update to an existing Task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.getTask(ctx, input.ID)
	if err != nil {
		return task.UpdateTaskOutput{}, err
	}

	updated := existing
	if input.Title != nil {
		updated.Title = strings.TrimSpace(*input.Title)
		if updated.Title == "" {
			return task.UpdateTaskOutput{}, task.ErrTitleEmpty
		}
	}
	updated.Description = coalesce(input.Description, existing.Description)
	if input.Status != nil {
		if updated.Status, err = normalizeStatus(*input.Status); err != nil {
			return task.UpdateTaskOutput{}, err
		}
	}
	if input.Priority != nil {
		if updated.Priority, err = normalizePriority(*input.Priority); err != nil {
			return task.UpdateTaskOutput{}, err
		}
	}
	if input.DueDate != nil {
		if updated.DueDate, err = parseDueDate(*input.DueDate); err != nil {
			return task.UpdateTaskOutput{}, err
		}
	}

	if !sameDueDate(existing.DueDate, updated.DueDate) || existing.Title != updated.Title ||
		existing.Description != updated.Description {
		event := uc.syncCalendar(ctx, updated)
		updated.CalendarEventID, updated.CalendarLink = event.ID, event.Link
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              updated.ID,
		Title:           updated.Title,
		Description:     updated.Description,
		Status:          updated.Status,
		Priority:        updated.Priority,
		DueDate:         updated.DueDate,
		CalendarEventID: updated.CalendarEventID,
		CalendarLink:    updated.CalendarLink,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if t.ID == uuid.Nil {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateTaskOutput{Task: t}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.getTask(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, existing.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	uc.removeCalendarEvent(ctx, existing)
	return nil
}

func (uc *implUseCase) getTask(ctx context.Context, id string) (model.Task, error) {
	parsed, err := parseID(id)
	if err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: parsed})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getTask GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == uuid.Nil {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
