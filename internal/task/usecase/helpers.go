package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
	"voice-task-tracker/pkg/datemath"
)

// coalesce returns the new value when provided, otherwise the existing one.
func coalesce(newVal *string, existing string) string {
	if newVal != nil {
		return *newVal
	}
	return existing
}

// parseID turns a malformed ID into not-found, there is no such task either way.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, task.ErrTaskNotFound
	}
	return parsed, nil
}

// normalizeEnum matches v against allowed case-insensitively. Empty means def.
func normalizeEnum(v string, allowed []string, def string, errInvalid error) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return def, nil
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a, nil
		}
	}
	return "", errInvalid
}

// parseDueDate parses an optional wall-clock due date.
func parseDueDate(v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := datemath.ParseDateTime(v)
	if err != nil {
		return nil, task.ErrInvalidDueDate
	}
	return &t, nil
}

func normalizeStatus(v string) (string, error) {
	return normalizeEnum(v, model.Statuses, model.StatusToDo, task.ErrInvalidStatus)
}

func normalizePriority(v string) (string, error) {
	return normalizeEnum(v, model.Priorities, model.PriorityMedium, task.ErrInvalidPriority)
}

func sameDueDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
