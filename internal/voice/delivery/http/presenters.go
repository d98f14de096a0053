package http

import (
	"strings"

	"voice-task-tracker/internal/voice"
)

// --- Request DTOs ---

type parseReq struct {
	Transcript string `json:"transcript"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return voice.ErrMissingTranscript
	}
	return nil
}

func (r parseReq) toInput() voice.ParseInput {
	return voice.ParseInput{Transcript: r.Transcript}
}

// --- Response DTOs ---

type parseResp struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
	Transcript  string  `json:"transcript"`
}

func (h *handler) newParseResp(d voice.TaskDraft) parseResp {
	resp := parseResp{
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		Status:      d.Status,
		Transcript:  d.Transcript,
	}
	if d.DueDate != "" {
		due := d.DueDate
		resp.DueDate = &due
	}
	return resp
}
