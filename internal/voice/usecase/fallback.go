package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/voice"
	"voice-task-tracker/pkg/datemath"
)

var timeOfDayRe = regexp.MustCompile(`(?i)(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm|p\.m\.|a\.m\.)?`)

// relativePhrases are tried in order when no weekday is named.
var relativePhrases = []string{"tomorrow", "next week"}

// fallbackParse derives a task from the transcript with fixed rules.
// It never fails and depends only on transcript and now.
func (uc *implUseCase) fallbackParse(transcript string, now time.Time) voice.TaskDraft {
	lower := strings.ToLower(transcript)

	draft := voice.TaskDraft{
		Title:       fallbackTitle(transcript),
		Description: transcript,
		Priority:    classify(lower, priorityRules, model.PriorityMedium),
		Status:      classify(lower, statusRules, model.StatusToDo),
		Transcript:  transcript,
	}

	if date, ok := uc.resolveDate(lower, now); ok {
		draft.DueDate = withTimeOfDay(lower, date)
	}

	return draft
}

// resolveDate finds the first weekday named in the transcript, or else a relative phrase.
func (uc *implUseCase) resolveDate(lower string, now time.Time) (time.Time, bool) {
	for _, wd := range datemath.Weekdays {
		name := strings.ToLower(wd.String())
		if strings.Contains(lower, name) {
			if date, err := uc.dateMath.Parse("next "+name, now); err == nil {
				return date, true
			}
		}
	}

	for _, phrase := range relativePhrases {
		if strings.Contains(lower, phrase) {
			if date, err := uc.dateMath.Parse(phrase, now); err == nil {
				return date, true
			}
		}
	}

	return time.Time{}, false
}

// withTimeOfDay attaches the first time mentioned in the transcript to date.
// Hours without an am/pm marker are used as spoken.
func withTimeOfDay(lower string, date time.Time) string {
	day := date.Format(datemath.DateFormatISO)

	m := timeOfDayRe.FindStringSubmatch(lower)
	if m == nil {
		return day + "T" + endOfDayClock
	}

	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}

	switch strings.ReplaceAll(strings.ToLower(m[3]), ".", "") {
	case "pm":
		if hours < 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}

	return fmt.Sprintf("%sT%02d:%02d:00", day, hours, minutes)
}

// fallbackTitle is the first six words plus "...", even for shorter transcripts.
func fallbackTitle(transcript string) string {
	tokens := strings.Fields(transcript)
	if len(tokens) > titleTokenCount {
		tokens = tokens[:titleTokenCount]
	}
	return strings.Join(tokens, " ") + titleSuffix
}
