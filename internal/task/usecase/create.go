package usecase

import (
	"context"
	"strings"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
	repo "voice-task-tracker/internal/task/repository"
)

// Create validates and stores a new Task, then mirrors a due date to the calendar.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateTaskOutput{}, task.ErrTitleRequired
	}

	status, err := normalizeStatus(input.Status)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}
	priority, err := normalizePriority(input.Priority)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}
	dueDate, err := parseDueDate(input.DueDate)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}

	event := uc.syncCalendar(ctx, model.Task{Title: title, Description: input.Description, DueDate: dueDate})

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:           title,
		Description:     input.Description,
		Status:          status,
		Priority:        priority,
		DueDate:         dueDate,
		Transcript:      input.Transcript,
		CalendarEventID: event.ID,
		CalendarLink:    event.Link,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		uc.removeCalendarEvent(ctx, model.Task{CalendarEventID: event.ID})
		return task.CreateTaskOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: created task %s %q", t.ID, t.Title)
	return task.CreateTaskOutput{Task: t}, nil
}
