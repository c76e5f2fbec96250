package model

import (
	"time"

	"content-studio/internal/content"

	"github.com/google/uuid"
)

// Job is a queued generation request.
// Options carries form-style string values decoded by content.StyleFromForm
// on top of the worker's configured style.
type Job struct {
	ID        string                    `json:"id"`
	Session   string                    `json:"session"`
	Kind      content.Kind              `json:"kind"`
	Product   content.ProductAttributes `json:"product"`
	Options   map[string]string         `json:"options,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}

// NewJob stamps a job with a fresh ID and creation time.
func NewJob(session string, kind content.Kind, p content.ProductAttributes, opts map[string]string) Job {
	return Job{
		ID:        uuid.NewString(),
		Session:   session,
		Kind:      kind,
		Product:   p,
		Options:   opts,
		CreatedAt: time.Now().UTC(),
	}
}

// JobResult is stored once per job. Error is set instead of Content when
// generation failed.
type JobResult struct {
	JobID      string                    `json:"job_id"`
	Session    string                    `json:"session"`
	Content    *content.GeneratedContent `json:"content,omitempty"`
	Error      string                    `json:"error,omitempty"`
	FinishedAt time.Time                 `json:"finished_at"`
}
