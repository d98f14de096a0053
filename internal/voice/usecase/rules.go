package usecase

import (
	"strings"

	"voice-task-tracker/internal/model"
)

// keywordRule assigns Value when the transcript contains any of Match.
// Hints are the wider phrasing the completion service is told about.
type keywordRule struct {
	Value string
	Match []string
	Hints []string
}

// Rules are evaluated in order and a later match overwrites an earlier one,
// so "urgent ... low" resolves to Low and "in progress ... done" to Done.
var (
	priorityRules = []keywordRule{
		{
			Value: model.PriorityHigh,
			Match: []string{"urgent", "high"},
			Hints: []string{"urgent", "asap", "important", "high priority", "critical"},
		},
		{
			Value: model.PriorityLow,
			Match: []string{"low"},
			Hints: []string{"low priority", "optional", "whenever", "eventually"},
		},
	}

	statusRules = []keywordRule{
		{
			Value: model.StatusInProgress,
			Match: []string{"in progress"},
			Hints: []string{"in progress", "start working on", "working on"},
		},
		{
			Value: model.StatusDone,
			Match: []string{"done"},
			Hints: []string{"mark as done", "completed", "finished"},
		},
	}
)

// classify runs rules over an already lower-cased transcript.
func classify(lower string, rules []keywordRule, def string) string {
	value := def
	for _, r := range rules {
		for _, kw := range r.Match {
			if strings.Contains(lower, kw) {
				value = r.Value
				break
			}
		}
	}
	return value
}
