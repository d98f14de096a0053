package llmprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice-task-tracker/pkg/deepseek"
	"voice-task-tracker/pkg/groq"
)

func newChatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		messages, _ := body["messages"].([]any)
		if len(messages) != 2 {
			t.Errorf("expected system + user messages, got %d", len(messages))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	}))
}

func TestAdapters(t *testing.T) {
	req := &Request{
		SystemInstruction: "reply in json",
		Messages:          []Message{{Role: RoleUser, Content: "hi"}},
		Temperature:       0.1,
		JSONMode:          true,
	}

	t.Run("groq", func(t *testing.T) {
		ts := newChatServer(t, `{"ok":true}`)
		defer ts.Close()

		client, err := groq.New(groq.Config{APIKey: "k", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp, err := NewGroqAdapter(client).GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != `{"ok":true}` || resp.ProviderName != ProviderGroq {
			t.Errorf("unexpected response %+v", resp)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("deepseek", func(t *testing.T) {
		ts := newChatServer(t, `{"ok":true}`)
		defer ts.Close()

		client, err := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp, err := NewDeepSeekAdapter(client).GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != `{"ok":true}` || resp.ProviderName != ProviderDeepSeek {
			t.Errorf("unexpected response %+v", resp)
		}
	})
}
