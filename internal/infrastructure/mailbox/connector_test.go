package mailbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDelay(t *testing.T) {
	base := 5 * time.Second
	max := 30 * time.Second

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: 5 * time.Second},
		{attempt: 1, want: 10 * time.Second},
		{attempt: 2, want: 20 * time.Second},
		{attempt: 3, want: 30 * time.Second},
		{attempt: 4, want: 30 * time.Second},
		{attempt: 10, want: 30 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, backoffDelay(tt.attempt, base, max), "attempt %d", tt.attempt)
	}
}

func TestBackoffDelay_ZeroConfigFallsBack(t *testing.T) {
	assert.Equal(t, 5*time.Second, backoffDelay(0, 0, 0))
	assert.Equal(t, 30*time.Second, backoffDelay(5, 0, 0))
}

func TestConnState_String(t *testing.T) {
	assert.Equal(t, "disconnected", stateDisconnected.String())
	assert.Equal(t, "connecting", stateConnecting.String())
	assert.Equal(t, "authenticated", stateAuthenticated.String())
	assert.Equal(t, "mailbox_open", stateMailboxOpen.String())
}
