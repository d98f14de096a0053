package voice

import "time"

// ParseInput is the input for a single transcript resolution.
type ParseInput struct {
	Transcript string
	Now        time.Time // reference instant; zero means the current time
}

// ParsedFields is what the completion service reported. Empty means absent.
type ParsedFields struct {
	Title    string
	Priority string
	Status   string
	DueDate  string
}

// TaskDraft is the structured task produced from a transcript.
type TaskDraft struct {
	Title       string
	Description string
	Priority    string
	Status      string
	DueDate     string // YYYY-MM-DDTHH:MM:SS, empty when no date was resolved
	Transcript  string
}
