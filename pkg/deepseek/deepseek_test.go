package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voice-task-tracker/pkg/deepseek"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Messages[0].Content == "cause_429" {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
			return
		}
		if req.Model != deepseek.DefaultModel {
			t.Errorf("expected default model, got %s", req.Model)
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != deepseek.ResponseFormatJSONObject {
			t.Errorf("expected json_object response format, got %+v", req.ResponseFormat)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"1","choices":[{"index":0,"message":{"role":"assistant","content":"{}"},"finish_reason":"stop"}],"usage":{"total_tokens":3}}`))
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages:       []deepseek.Message{{Role: "user", Content: "hi"}},
			ResponseFormat: &deepseek.ResponseFormat{Type: deepseek.ResponseFormatJSONObject},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "{}" {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("API Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "cause_429"}},
		})
		if err == nil || !strings.Contains(err.Error(), "rate limited") {
			t.Fatalf("expected rate limit error, got %v", err)
		}
	})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}
}
