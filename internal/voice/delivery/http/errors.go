package http

import (
	"errors"
	"net/http"

	"voice-task-tracker/internal/voice"
	pkgErrors "voice-task-tracker/pkg/errors"
)

var errInvalidBody = errors.New("invalid request body")

var (
	errTranscriptRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Transcript is required")
	errMalformedBody      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Request body must be a JSON object")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voice.ErrMissingTranscript):
		return errTranscriptRequired
	case errors.Is(err, errInvalidBody):
		return errMalformedBody
	default:
		return pkgErrors.ErrInternalServerError
	}
}
