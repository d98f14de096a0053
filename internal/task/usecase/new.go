package usecase

import (
	"time"

	"voice-task-tracker/internal/task"
	"voice-task-tracker/internal/task/repository"
	"voice-task-tracker/pkg/gcalendar"
	"voice-task-tracker/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	calendar   gcalendar.ICalendar
	calendarID string
	location   *time.Location
}

// New creates a new task UseCase. calendar may be nil, in which case tasks are not synced.
// Due dates are wall-clock times in location.
func New(l log.Logger, repo repository.Repository, calendar gcalendar.ICalendar, calendarID string, location *time.Location) task.UseCase {
	if location == nil {
		location = time.Local
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		location:   location,
	}
}
