package usecase

import (
	"context"
	"time"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/pkg/gcalendar"
)

// calendarEventDuration is the length of the event created for a due date.
const calendarEventDuration = time.Hour

// calendarEvent is the calendar side of a task.
type calendarEvent struct {
	ID   string
	Link string
}

// syncCalendar brings the calendar event of a task in line with its due date.
// Failures are logged and the previous event state is kept.
func (uc *implUseCase) syncCalendar(ctx context.Context, t model.Task) calendarEvent {
	current := calendarEvent{ID: t.CalendarEventID, Link: t.CalendarLink}
	if uc.calendar == nil {
		return current
	}

	if t.DueDate == nil {
		if current.ID == "" {
			return current
		}
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, current.ID); err != nil {
			uc.l.Warnf(ctx, "internal.task.usecase.syncCalendar: delete event %s (non-fatal): %v", current.ID, err)
			return current
		}
		return calendarEvent{}
	}

	start := uc.wallClock(*t.DueDate)
	end := start.Add(calendarEventDuration)

	if current.ID != "" {
		event, err := uc.calendar.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
			CalendarID:  uc.calendarID,
			EventID:     current.ID,
			Summary:     t.Title,
			Description: t.Description,
			StartTime:   start,
			EndTime:     end,
			Timezone:    uc.location.String(),
		})
		if err != nil {
			uc.l.Warnf(ctx, "internal.task.usecase.syncCalendar: update event %s (non-fatal): %v", current.ID, err)
			return current
		}
		return calendarEvent{ID: event.ID, Link: event.HtmlLink}
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.location.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.task.usecase.syncCalendar: create event for %q (non-fatal): %v", t.Title, err)
		return current
	}
	return calendarEvent{ID: event.ID, Link: event.HtmlLink}
}

// removeCalendarEvent deletes the event of a deleted task, best effort.
func (uc *implUseCase) removeCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.CalendarEventID == "" {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, t.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "internal.task.usecase.removeCalendarEvent: %s (non-fatal): %v", t.CalendarEventID, err)
	}
}

// wallClock places a stored due date on the configured location's clock.
func (uc *implUseCase) wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, uc.location)
}
