// Package ingestion turns inbound mailbox messages into support tickets.
package ingestion

import (
	"context"

	"stayops/internal/infrastructure/analysis"
	"stayops/internal/infrastructure/mailbox"
)

// Source yields raw mailbox messages above a UID high-water mark.
type Source interface {
	// FetchNew returns messages with UID above the mark in ascending order.
	// A partial batch may be returned together with an error.
	FetchNew(ctx context.Context, above uint32) ([]mailbox.FetchedMessage, error)
	Close()
}

// Analyzer classifies an email into category, sentiment and booking details.
type Analyzer interface {
	Analyze(ctx context.Context, subject, body, fromEmail string) (*analysis.Result, error)
}

// Sanitizer cleans HTML email bodies before they are stored.
type Sanitizer interface {
	Sanitize(html string) string
}

// ParseFunc decodes a raw message; mailbox.ParseMessage in production.
type ParseFunc func(raw []byte) (*mailbox.ParsedMessage, error)
