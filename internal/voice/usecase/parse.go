package usecase

import (
	"context"
	"strings"
	"time"

	"voice-task-tracker/internal/voice"
	"voice-task-tracker/pkg/datemath"
)

// Parse resolves a transcript into a task draft.
// Start -> Validating -> Prompting -> Requesting -> Extracting -> Assembling -> Done.
// Without a completer, or when the request fails, the rule-based parser produces the draft.
func (uc *implUseCase) Parse(ctx context.Context, input voice.ParseInput) (voice.TaskDraft, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return voice.TaskDraft{}, voice.ErrMissingTranscript
	}

	now := input.Now
	if now.IsZero() {
		now = uc.dateMath.Now()
	}

	if uc.llm == nil {
		uc.l.Infof(ctx, "internal.voice.usecase.Parse: %v, running rule-based parser", voice.ErrCredentialMissing)
		return uc.runFallback(ctx, input.Transcript, now), nil
	}

	prompt := buildPrompt(input.Transcript, datemath.NewAnchors(now))
	uc.l.Debugf(ctx, "internal.voice.usecase.Parse: prompt built, %d chars", len(prompt))

	raw, err := uc.llm.Complete(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "internal.voice.usecase.Parse: completion failed, running rule-based parser: %v", err)
		return uc.runFallback(ctx, input.Transcript, now), nil
	}
	uc.l.Debugf(ctx, "internal.voice.usecase.Parse: raw response %q", raw)

	obj := extractJSON(raw)
	if len(obj) == 0 {
		uc.l.Warnf(ctx, "internal.voice.usecase.Parse: %v, using defaults", voice.ErrMalformedResponse)
	}

	draft := assemble(input.Transcript, toParsedFields(obj))
	uc.l.Infof(ctx, "internal.voice.usecase.Parse: title=%q priority=%s status=%s due=%q",
		draft.Title, draft.Priority, draft.Status, draft.DueDate)
	return draft, nil
}

func (uc *implUseCase) runFallback(ctx context.Context, transcript string, now time.Time) voice.TaskDraft {
	draft := uc.fallbackParse(transcript, now)
	uc.l.Infof(ctx, "internal.voice.usecase.Parse: fallback title=%q priority=%s status=%s due=%q",
		draft.Title, draft.Priority, draft.Status, draft.DueDate)
	return draft
}
