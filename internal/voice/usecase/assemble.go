package usecase

import (
	"strings"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/voice"
	"voice-task-tracker/pkg/datemath"
)

// assemble merges service-reported fields with defaults into the final draft.
func assemble(transcript string, fields voice.ParsedFields) voice.TaskDraft {
	title := fields.Title
	if title == "" {
		title = truncateTitle(transcript)
	}

	return voice.TaskDraft{
		Title:       title,
		Description: transcript,
		Priority:    canonical(fields.Priority, model.Priorities, model.PriorityMedium),
		Status:      canonical(fields.Status, model.Statuses, model.StatusToDo),
		DueDate:     normalizeDueDate(fields.DueDate),
		Transcript:  transcript,
	}
}

func truncateTitle(transcript string) string {
	runes := []rune(transcript)
	if len(runes) > titleMaxRunes {
		return string(runes[:titleMaxRunes]) + titleSuffix
	}
	return transcript
}

// canonical returns the allowed value matching v case-insensitively, or def.
func canonical(v string, allowed []string, def string) string {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	return def
}

// normalizeDueDate returns v as YYYY-MM-DDTHH:MM:SS. A bare date gets the
// end-of-day clock, anything not starting with a date is dropped.
func normalizeDueDate(v string) string {
	if v == "" {
		return ""
	}

	if t, err := datemath.ParseDateTime(v); err == nil {
		return t.Format(datemath.DateTimeFormat)
	}

	if len(v) < len(datemath.DateFormatISO) {
		return ""
	}
	if t, err := datemath.ParseDateTime(v[:len(datemath.DateFormatISO)]); err == nil {
		return t.Format(datemath.DateTimeFormat)
	}
	return ""
}
