package usecase

import (
	"context"

	"voice-task-tracker/internal/voice"
	"voice-task-tracker/pkg/datemath"
	"voice-task-tracker/pkg/log"
)

// Completer sends a prompt to the completion service and returns its raw reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type implUseCase struct {
	l        log.Logger
	llm      Completer
	dateMath *datemath.Parser
}

// New creates a new voice UseCase. A nil llm means no usable credential:
// every transcript goes through the rule-based parser.
func New(l log.Logger, llm Completer, dateMath *datemath.Parser) voice.UseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		dateMath: dateMath,
	}
}
