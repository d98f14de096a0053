package voice

import "errors"

var (
	ErrMissingTranscript = errors.New("transcript is required")
	ErrCredentialMissing = errors.New("completion service credential missing")
	ErrMalformedResponse = errors.New("no JSON object in completion response")
)
