package gcalendar

import "context"

// ICalendar is the subset of the Calendar API the task domain syncs with.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, req UpdateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

var _ ICalendar = (*Client)(nil)
