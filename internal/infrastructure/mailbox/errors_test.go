package mailbox

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionError_MatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("cycle aborted: %w", &ConnectionError{Op: "dial", Err: assert.AnError})

	var connErr *ConnectionError
	require.ErrorAs(t, wrapped, &connErr)
	assert.Equal(t, "dial", connErr.Op)
	assert.ErrorIs(t, wrapped, assert.AnError)
}

func TestFetchError_MatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("cycle aborted: %w", &FetchError{Err: assert.AnError})

	var fetchErr *FetchError
	require.ErrorAs(t, wrapped, &fetchErr)
	assert.ErrorIs(t, wrapped, assert.AnError)
}
