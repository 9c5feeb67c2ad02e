package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDraft_RoundTrip(t *testing.T) {
	draft := NewLocalDraft()
	draft.Fields["firstName"] = "Jane"
	draft.Fields["lastName"] = ""
	draft.Fields["email"] = "jane@example.com"
	draft.Checkboxes["privacyConsent"] = true
	draft.Checkboxes["communicationConsent"] = false
	draft.UpdatedAt = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	payload, err := json.Marshal(draft)
	require.NoError(t, err)

	var restored LocalDraft
	require.NoError(t, json.Unmarshal(payload, &restored))

	// Exact reproduction, including empty strings and unchecked boxes
	assert.Equal(t, draft.Fields, restored.Fields)
	assert.Equal(t, draft.Checkboxes, restored.Checkboxes)
	assert.Equal(t, "", restored.Fields["lastName"])
	checked, present := restored.Checkboxes["communicationConsent"]
	assert.True(t, present)
	assert.False(t, checked)
	assert.Equal(t, draft.UpdatedAt, restored.UpdatedAt)
}
