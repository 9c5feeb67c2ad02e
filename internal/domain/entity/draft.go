package entity

import (
	"time"
)

// LocalDraft is a snapshot of in-progress form input, keyed by form
// identity. Checkbox state is recorded explicitly, unchecked included, so a
// restore reproduces the form exactly rather than only the truthy parts.
type LocalDraft struct {
	Fields     map[string]string `json:"fields"`
	Checkboxes map[string]bool   `json:"checkboxes"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func NewLocalDraft() *LocalDraft {
	return &LocalDraft{
		Fields:     make(map[string]string),
		Checkboxes: make(map[string]bool),
	}
}
