// Package usecases contains the application operations on support tickets.
package usecases

import (
	"context"

	"stayops/internal/infrastructure/analysis"
)

// Analyzer re-runs classification for a stored ticket.
type Analyzer interface {
	Analyze(ctx context.Context, subject, body, fromEmail string) (*analysis.Result, error)
}

// ReplySender delivers an agent reply back to the ticket's sender.
type ReplySender interface {
	SendReply(to, subject, body, inReplyTo string) error
}

// InboxTrigger requests an immediate mailbox check.
type InboxTrigger interface {
	TriggerCheck() bool
}
