package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"voice-task-tracker/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2025, 12, 9, 10, 0, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if string(b) != `"2025-12-09T10:00:00"` {
		t.Errorf("unexpected DateTime JSON: %s", b)
	}
}

func TestNewDateTime(t *testing.T) {
	if response.NewDateTime(nil) != nil {
		t.Fatalf("expected nil for nil time")
	}

	tm := time.Date(2025, 12, 9, 23, 59, 59, 0, time.UTC)
	payload := struct {
		Due *response.DateTime `json:"due"`
		Nil *response.DateTime `json:"nil"`
	}{Due: response.NewDateTime(&tm)}

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"due":"2025-12-09T23:59:59","nil":null}` {
		t.Errorf("unexpected payload JSON: %s", b)
	}
}
