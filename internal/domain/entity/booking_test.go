package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidZipCode(t *testing.T) {
	tests := []struct {
		zip   string
		valid bool
	}{
		{"22601", true},
		{"00000", true},
		{"1234", false},
		{"123456", false},
		{"2260a", false},
		{"22-601", false},
		{" 22601", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidZipCode(tt.zip), "zip=%q", tt.zip)
	}
}

func TestHasSchedulePreference(t *testing.T) {
	b := &BookingRequest{PreferredDate: "2025-01-15"}
	assert.False(t, b.HasSchedulePreference())

	b.PreferredTime = "10:30"
	assert.True(t, b.HasSchedulePreference())
}
