package mailbox

import (
	"errors"
	"fmt"
)

// ErrBackoff is returned by Connector.Ensure when a reconnect attempt is
// requested before the backoff deadline has passed.
var ErrBackoff = errors.New("mailbox: reconnect backoff in effect")

// ConnectionError indicates the connection could not be established. The
// connector arms its backoff; the cycle is skipped and retried later.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("mailbox: %s failed: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// FetchError indicates a batch fetch broke mid-cycle. Messages fetched
// before the failure are still handed to the caller.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("mailbox: fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// SearchError indicates the UID search failed; the whole cycle is aborted
// and retried on the next poll.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("mailbox: search failed: %v", e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// ParseError indicates a message body could not be decoded. The message is
// skipped without a partial result.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mailbox: parse failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
