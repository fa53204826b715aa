package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Priority
		wantErr bool
	}{
		{name: "high", input: "high", want: PriorityHigh},
		{name: "medium", input: "medium", want: PriorityMedium},
		{name: "normal", input: "normal", want: PriorityNormal},
		{name: "unknown", input: "low", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPriority(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriorityFromCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     Priority
	}{
		{name: "urgent category", category: "urgent_issue", want: PriorityHigh},
		{name: "complaint category", category: "guest_complaint", want: PriorityHigh},
		{name: "booking category", category: "booking_inquiry", want: PriorityMedium},
		{name: "booking modification", category: "booking_modification", want: PriorityMedium},
		{name: "general category", category: "general_inquiry", want: PriorityNormal},
		{name: "uncategorized", category: "uncategorized", want: PriorityNormal},
		{name: "empty category", category: "", want: PriorityNormal},
		{name: "matching is case sensitive", category: "URGENT", want: PriorityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityFromCategory(tt.category))
		})
	}
}
