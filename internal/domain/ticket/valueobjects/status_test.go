package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TicketStatus
		wantErr bool
	}{
		{name: "open", input: "open", want: StatusOpen},
		{name: "in progress", input: "in_progress", want: StatusInProgress},
		{name: "resolved", input: "resolved", want: StatusResolved},
		{name: "unknown status", input: "pending", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicketStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{name: "open to in_progress", from: StatusOpen, to: StatusInProgress, want: true},
		{name: "open to resolved", from: StatusOpen, to: StatusResolved, want: true},
		{name: "in_progress back to open", from: StatusInProgress, to: StatusOpen, want: true},
		{name: "in_progress to resolved", from: StatusInProgress, to: StatusResolved, want: true},
		{name: "resolved reopens", from: StatusResolved, to: StatusOpen, want: true},
		{name: "resolved cannot skip to in_progress", from: StatusResolved, to: StatusInProgress, want: false},
		{name: "no self transition", from: StatusOpen, to: StatusOpen, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
