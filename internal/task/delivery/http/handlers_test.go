package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
	"voice-task-tracker/pkg/log"
)

type mockUseCase struct {
	task        model.Task
	tasks       []model.Task
	err         error
	createInput task.CreateTaskInput
	listInput   task.ListTasksInput
	updateInput task.UpdateTaskInput
	deletedID   string
}

func (m *mockUseCase) Create(_ context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	m.createInput = input
	return task.CreateTaskOutput{Task: m.task}, m.err
}

func (m *mockUseCase) List(_ context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	m.listInput = input
	return task.ListTasksOutput{Tasks: m.tasks}, m.err
}

func (m *mockUseCase) Detail(_ context.Context, _ string) (task.DetailTaskOutput, error) {
	return task.DetailTaskOutput{Task: m.task}, m.err
}

func (m *mockUseCase) Update(_ context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	m.updateInput = input
	return task.UpdateTaskOutput{Task: m.task}, m.err
}

func (m *mockUseCase) Delete(_ context.Context, id string) error {
	m.deletedID = id
	return m.err
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/tasks"), New(log.NewNop(), uc))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleTask() model.Task {
	due := time.Date(2025, 12, 8, 18, 0, 0, 0, time.UTC)
	return model.Task{
		ID:       uuid.MustParse("6f1c1c2e-0d8c-4d59-9d7c-3c1f0f1e2a3b"),
		Title:    "Review PR",
		Status:   model.StatusToDo,
		Priority: model.PriorityHigh,
		DueDate:  &due,
	}
}

func TestCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &mockUseCase{task: sampleTask()}
		w := do(newTestRouter(uc), http.MethodPost, "/api/tasks", `{"title":"Review PR","priority":"High","dueDate":"2025-12-08T18:00:00"}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Data map[string]any `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Data["dueDate"] != "2025-12-08T18:00:00" || body.Data["id"] != "6f1c1c2e-0d8c-4d59-9d7c-3c1f0f1e2a3b" {
			t.Errorf("unexpected data %v", body.Data)
		}
		if uc.createInput.Priority != "High" || uc.createInput.DueDate != "2025-12-08T18:00:00" {
			t.Errorf("input not forwarded: %+v", uc.createInput)
		}
	})

	errCases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"title required", task.ErrTitleRequired, http.StatusBadRequest, "Title is required"},
		{"invalid status", task.ErrInvalidStatus, http.StatusBadRequest, "Status must be one of"},
		{"invalid due date", task.ErrInvalidDueDate, http.StatusBadRequest, "Due date must be"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range errCases {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newTestRouter(&mockUseCase{err: tt.err}), http.MethodPost, "/api/tasks", `{"title":""}`)
			if w.Code != tt.wantCode || !strings.Contains(w.Body.String(), tt.wantMsg) {
				t.Errorf("got %d %s, want %d %q", w.Code, w.Body.String(), tt.wantCode, tt.wantMsg)
			}
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		w := do(newTestRouter(&mockUseCase{}), http.MethodPost, "/api/tasks", `[`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestList(t *testing.T) {
	uc := &mockUseCase{tasks: []model.Task{sampleTask()}}
	w := do(newTestRouter(uc), http.MethodGet, "/api/tasks?status=Done&priority=High&search=report", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.listInput != (task.ListTasksInput{Status: "Done", Priority: "High", Search: "report"}) {
		t.Errorf("filters not forwarded: %+v", uc.listInput)
	}
	var body struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body.Data) != 1 {
		t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
	}

	t.Run("empty list is an array", func(t *testing.T) {
		w := do(newTestRouter(&mockUseCase{}), http.MethodGet, "/api/tasks", "")
		if !strings.Contains(w.Body.String(), `"data":[]`) {
			t.Errorf("expected empty array, got %s", w.Body.String())
		}
	})
}

func TestDetail(t *testing.T) {
	w := do(newTestRouter(&mockUseCase{task: sampleTask()}), http.MethodGet, "/api/tasks/6f1c1c2e-0d8c-4d59-9d7c-3c1f0f1e2a3b", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = do(newTestRouter(&mockUseCase{err: task.ErrTaskNotFound}), http.MethodGet, "/api/tasks/missing", "")
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "Task not found") {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantTitle   *string
		wantDueDate *string
	}{
		{name: "omitted due date unchanged", body: `{"title":"New"}`, wantTitle: strPtr("New")},
		{name: "null due date clears", body: `{"dueDate":null}`, wantDueDate: strPtr("")},
		{name: "due date set", body: `{"dueDate":"2025-12-10"}`, wantDueDate: strPtr("2025-12-10")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{task: sampleTask()}
			w := do(newTestRouter(uc), http.MethodPut, "/api/tasks/abc", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if uc.updateInput.ID != "abc" {
				t.Errorf("id = %q", uc.updateInput.ID)
			}
			if !equalPtr(uc.updateInput.Title, tt.wantTitle) || !equalPtr(uc.updateInput.DueDate, tt.wantDueDate) {
				t.Errorf("unexpected input %+v", uc.updateInput)
			}
		})
	}

	t.Run("empty title", func(t *testing.T) {
		w := do(newTestRouter(&mockUseCase{err: task.ErrTitleEmpty}), http.MethodPut, "/api/tasks/abc", `{"title":""}`)
		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Title cannot be empty") {
			t.Errorf("got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestDelete(t *testing.T) {
	uc := &mockUseCase{}
	w := do(newTestRouter(uc), http.MethodDelete, "/api/tasks/abc", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Task deleted successfully") {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
	if uc.deletedID != "abc" {
		t.Errorf("deleted id = %q", uc.deletedID)
	}

	w = do(newTestRouter(&mockUseCase{err: task.ErrTaskNotFound}), http.MethodDelete, "/api/tasks/abc", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func strPtr(s string) *string { return &s }

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
