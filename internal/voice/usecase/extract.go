package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"voice-task-tracker/internal/voice"
)

var (
	codeFenceRe  = regexp.MustCompile("```[A-Za-z]*")
	jsonObjectRe = regexp.MustCompile(`(?s)\{.*?\}`)
)

// extractJSON recovers a JSON object from model output. It never fails:
// anything unrecoverable yields an empty map.
func extractJSON(raw string) map[string]any {
	cleaned := strings.TrimSpace(codeFenceRe.ReplaceAllString(raw, ""))

	if obj, ok := decodeObject(cleaned); ok {
		return obj
	}

	if block := jsonObjectRe.FindString(cleaned); block != "" {
		if obj, ok := decodeObject(block); ok {
			return obj
		}
	}

	return map[string]any{}
}

func decodeObject(s string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// toParsedFields keeps the string-valued fields the service reported.
func toParsedFields(obj map[string]any) voice.ParsedFields {
	return voice.ParsedFields{
		Title:    stringField(obj, "title"),
		Priority: stringField(obj, "priority"),
		Status:   stringField(obj, "status"),
		DueDate:  stringField(obj, "dueDate"),
	}
}

func stringField(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
