package dto

import (
	"time"
)

// Request DTOs

// SaveDraftRequest carries a full snapshot of the form. Immediate marks
// blur/change saves, which skip the settle window; keystroke saves are
// debounced.
type SaveDraftRequest struct {
	Fields     map[string]string `json:"fields"`
	Checkboxes map[string]bool   `json:"checkboxes"`
	Immediate  bool              `json:"immediate"`
}

// Response DTOs

type DraftResponse struct {
	Key        string            `json:"key"`
	Fields     map[string]string `json:"fields"`
	Checkboxes map[string]bool   `json:"checkboxes"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
