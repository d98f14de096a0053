package http

import (
	"bytes"
	"encoding/json"
	"time"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
	"voice-task-tracker/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Transcript  string `json:"transcript"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		Transcript:  r.Transcript,
	}
}

type listReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Search   string `form:"search"`
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		Status:   r.Status,
		Priority: r.Priority,
		Search:   r.Search,
	}
}

// nullableString tells an absent field apart from an explicit null.
type nullableString struct {
	Set   bool
	Value string
}

// UnmarshalJSON is only called when the key is present. null clears.
func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = ""
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

type updateReq struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *string        `json:"status"`
	Priority    *string        `json:"priority"`
	DueDate     nullableString `json:"dueDate" swaggertype:"string"`
}

func (r updateReq) toInput(id string) task.UpdateTaskInput {
	input := task.UpdateTaskInput{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
	}
	if r.DueDate.Set {
		due := r.DueDate.Value
		input.DueDate = &due
	}
	return input
}

// --- Response DTOs ---

type taskResp struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Status       string             `json:"status"`
	Priority     string             `json:"priority"`
	DueDate      *response.DateTime `json:"dueDate" swaggertype:"string"`
	Transcript   string             `json:"transcript"`
	CalendarLink string             `json:"calendarLink,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID.String(),
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		Priority:     t.Priority,
		DueDate:      response.NewDateTime(t.DueDate),
		Transcript:   t.Transcript,
		CalendarLink: t.CalendarLink,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (h *handler) newListResp(tasks []model.Task) []taskResp {
	resp := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, h.newTaskResp(t))
	}
	return resp
}
