package usecase

import (
	"fmt"
	"strings"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/pkg/datemath"
)

const promptOutputSchema = `{
  "title": "<short summary of the action>",
  "priority": "High|Medium|Low",
  "dueDate": "<YYYY-MM-DDTHH:MM:SS or null>",
  "status": "To Do|In Progress|Done"
}`

const promptExamples = `Example 1 (today is Saturday, 2025-12-06)
TRANSCRIPT: "Remind me to call Dr. Smith next Tuesday at 10 am, it's urgent."
{"title": "Call Dr. Smith", "priority": "High", "dueDate": "2025-12-09T10:00:00", "status": "To Do"}

Example 2 (today is Saturday, 2025-12-06)
TRANSCRIPT: "Add buy groceries to my list, no rush, whenever this weekend."
{"title": "Buy groceries", "priority": "Low", "dueDate": "2025-12-07T23:59:59", "status": "To Do"}

Example 3
TRANSCRIPT: "Mark the budget review as done."
{"title": "Budget review", "priority": "Medium", "dueDate": null, "status": "Done"}`

// buildPrompt renders the extraction instructions for one transcript.
// All dates come from anchors; nothing here does date arithmetic.
func buildPrompt(transcript string, anchors datemath.Anchors) string {
	var sb strings.Builder

	sb.WriteString("You extract a single task from a voice transcript and reply with one JSON object.\n\n")
	fmt.Fprintf(&sb, "TRANSCRIPT:\n\"\"\"%s\"\"\"\n\n", transcript)

	sb.WriteString("REFERENCE DATE (resolve every relative date from this):\n")
	fmt.Fprintf(&sb, "Today is %s, %s (timestamp %s).\n", anchors.WeekdayName, anchors.TodayISO, anchors.Timestamp)
	fmt.Fprintf(&sb, "- \"today\" means %s\n", anchors.TodayISO)
	fmt.Fprintf(&sb, "- \"tomorrow\" means %s\n", anchors.TomorrowISO)
	for _, wd := range datemath.Weekdays {
		fmt.Fprintf(&sb, "- \"next %s\" means %s\n", wd, anchors.NextOccurrence[wd])
	}

	sb.WriteString("\nOUTPUT FORMAT (exactly this object, nothing else):\n")
	sb.WriteString(promptOutputSchema)

	sb.WriteString("\n\nRULES\n")
	sb.WriteString("1. title: the core action only. Drop filler such as \"remind me to\", \"please\", \"I need to\". No dates, times or priority words.\n")
	fmt.Fprintf(&sb, "2. priority: %s. Otherwise %s.\n", describeRules(priorityRules), model.PriorityMedium)
	fmt.Fprintf(&sb, "3. status: %s unless the speaker says so explicitly: %s.\n", model.StatusToDo, describeRules(statusRules))
	fmt.Fprintf(&sb, "4. dueDate: count forward from %s. Keep a stated time exactly as said. "+
		"With no stated time use %s. If no date can be inferred use null.\n", anchors.TodayISO, endOfDayClock)
	sb.WriteString("5. Fix obvious speech-to-text misspellings. Reply with the JSON object only, no markdown.\n")

	sb.WriteString("\nEXAMPLES\n")
	sb.WriteString(promptExamples)
	sb.WriteString("\n\nNow return the JSON object for the transcript above.\n")

	return sb.String()
}

// describeRules renders a rule table as `High for "urgent", "asap"; Low for ...`.
func describeRules(rules []keywordRule) string {
	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		quoted := make([]string, len(r.Hints))
		for i, h := range r.Hints {
			quoted[i] = fmt.Sprintf("%q", h)
		}
		parts = append(parts, fmt.Sprintf("%s for %s", r.Value, strings.Join(quoted, ", ")))
	}
	return strings.Join(parts, "; ")
}
