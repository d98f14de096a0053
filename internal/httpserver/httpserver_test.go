package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-task-tracker/internal/middleware"
	"voice-task-tracker/internal/task"
	"voice-task-tracker/internal/voice"
	"voice-task-tracker/pkg/log"
)

type stubVoiceUC struct{}

func (stubVoiceUC) Parse(_ context.Context, in voice.ParseInput) (voice.TaskDraft, error) {
	return voice.TaskDraft{Title: "x", Transcript: in.Transcript}, nil
}

type stubTaskUC struct{ task.UseCase }

func (stubTaskUC) List(context.Context, task.ListTasksInput) (task.ListTasksOutput, error) {
	return task.ListTasksOutput{}, nil
}

func newServer(t *testing.T, taskUC task.UseCase) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:     l,
		Port:       8080,
		Mode:       gin.TestMode,
		Middleware: middleware.New(l, middleware.Config{}),
		VoiceUC:    stubVoiceUC{},
		TaskUC:     taskUC,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 1, VoiceUC: stubVoiceUC{}}},
		{"missing port", Config{Mode: gin.TestMode, VoiceUC: stubVoiceUC{}}},
		{"missing voice usecase", Config{Mode: gin.TestMode, Port: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(l, tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	t.Run("health and request id", func(t *testing.T) {
		w := serve(newServer(t, nil), http.MethodGet, "/health", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), ServiceName) {
			t.Fatalf("got %d %s", w.Code, w.Body.String())
		}
		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Error("missing request id header")
		}
	})

	t.Run("voice parse always registered", func(t *testing.T) {
		w := serve(newServer(t, nil), http.MethodPost, "/api/voice/parse", `{"transcript":"hello"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("tasks absent without store", func(t *testing.T) {
		w := serve(newServer(t, nil), http.MethodGet, "/api/tasks", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("tasks present with store", func(t *testing.T) {
		srv := newServer(t, stubTaskUC{})
		if w := serve(srv, http.MethodGet, "/api/tasks", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := serve(srv, http.MethodGet, "/ready", ""); !strings.Contains(w.Body.String(), `"taskStore":true`) {
			t.Errorf("unexpected ready body %s", w.Body.String())
		}
	})
}
