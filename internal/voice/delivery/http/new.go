package http

import (
	"voice-task-tracker/internal/voice"
	"voice-task-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc voice.UseCase
}

// New creates a new HTTP handler for the voice domain.
func New(l log.Logger, uc voice.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
