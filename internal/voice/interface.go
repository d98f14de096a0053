package voice

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse turns a transcript into a task draft. The only error it returns is ErrMissingTranscript.
	Parse(ctx context.Context, input ParseInput) (TaskDraft, error)
}
