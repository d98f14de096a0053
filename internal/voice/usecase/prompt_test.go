package usecase

import (
	"strings"
	"testing"

	"voice-task-tracker/pkg/datemath"
)

func TestBuildPrompt(t *testing.T) {
	anchors := datemath.NewAnchors(saturday)
	prompt := buildPrompt("call the plumber tuesday", anchors)

	wants := []string{
		`"""call the plumber tuesday"""`,
		"Today is Saturday, 2025-12-06",
		`"tomorrow" means 2025-12-07`,
		`"next Tuesday" means 2025-12-09`,
		`"next Saturday" means 2025-12-13`,
		`"asap"`,
		`"eventually"`,
		`"mark as done"`,
		"23:59:59",
		`"priority": "High|Medium|Low"`,
	}
	for _, w := range wants {
		if !strings.Contains(prompt, w) {
			t.Errorf("prompt missing %q", w)
		}
	}

	if again := buildPrompt("call the plumber tuesday", anchors); again != prompt {
		t.Error("prompt is not deterministic")
	}
}

func TestClassify(t *testing.T) {
	tcs := map[string]string{
		"urgent":         "High",
		"something high": "High",
		"urgent but low": "Low",
		"nothing to see": "Medium",
	}
	for in, want := range tcs {
		if got := classify(in, priorityRules, "Medium"); got != want {
			t.Errorf("classify(%q) = %s, want %s", in, got, want)
		}
	}
}
