package http

import (
	"errors"
	"net/http"

	"voice-task-tracker/internal/task"
	pkgErrors "voice-task-tracker/pkg/errors"
)

var errInvalidBody = errors.New("invalid request body")

var (
	errTitleRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Title is required")
	errTitleEmpty      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Title cannot be empty")
	errInvalidStatus   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Status must be one of: To Do, In Progress, Done")
	errInvalidPriority = pkgErrors.NewHTTPError(http.StatusBadRequest, "Priority must be one of: Low, Medium, High")
	errInvalidDueDate  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Due date must be YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS")
	errMalformedBody   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Request body must be a JSON object")
	errTaskNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, task.ErrTitleRequired):
		return errTitleRequired
	case errors.Is(err, task.ErrTitleEmpty):
		return errTitleEmpty
	case errors.Is(err, task.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, task.ErrInvalidPriority):
		return errInvalidPriority
	case errors.Is(err, task.ErrInvalidDueDate):
		return errInvalidDueDate
	case errors.Is(err, errInvalidBody):
		return errMalformedBody
	default:
		return pkgErrors.ErrInternalServerError
	}
}
