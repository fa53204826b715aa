package ingestion

import (
	"context"
	"fmt"

	"stayops/internal/domain/ticket"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

// Pipeline processes one fetched message end to end: parse, dedup,
// classify, persist. Analysis failures are tolerated; parse and persistence
// failures are not.
type Pipeline struct {
	tickets   ticket.Repository
	analyzer  Analyzer
	sanitizer Sanitizer
	parse     ParseFunc
	logger    logger.Interface
}

func NewPipeline(
	tickets ticket.Repository,
	analyzer Analyzer,
	sanitizer Sanitizer,
	parse ParseFunc,
	log logger.Interface,
) *Pipeline {
	return &Pipeline{
		tickets:   tickets,
		analyzer:  analyzer,
		sanitizer: sanitizer,
		parse:     parse,
		logger:    log.Named("ingestion.pipeline"),
	}
}

// ProcessMessage ingests a single raw message. A nil return means the
// message is settled: either a ticket was created or it was a known
// duplicate. Any error means the message must be retried.
func (p *Pipeline) ProcessMessage(ctx context.Context, uid uint32, raw []byte) error {
	parsed, err := p.parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse message uid %d: %w", uid, err)
	}

	exists, err := p.tickets.ExistsByMessageID(ctx, parsed.MessageID)
	if err != nil {
		return fmt.Errorf("failed to check for duplicate: %w", err)
	}
	if exists {
		p.logger.Debugw("duplicate message skipped",
			"uid", uid,
			"message_id", parsed.MessageID)
		return nil
	}

	htmlBody := ""
	if parsed.HTMLBody != "" {
		htmlBody = p.sanitizer.Sanitize(parsed.HTMLBody)
	}

	t := ticket.NewTicketFromEmail(parsed.MessageID, uid, parsed.Subject, parsed.TextBody, htmlBody, parsed.From)

	analysisBody := parsed.TextBody
	if analysisBody == "" {
		analysisBody = htmlBody
	}

	result, err := p.analyzer.Analyze(ctx, parsed.Subject, analysisBody, parsed.From)
	if err != nil {
		p.logger.Warnw("analysis failed, storing ticket with defaults",
			"uid", uid,
			"message_id", parsed.MessageID,
			"error", err)
		t.ApplyDefaultAnalysis()
	} else {
		t.ApplyAnalysis(result.Category, result.Sentiment, result.BookingInfo)
	}

	if err := p.tickets.Create(ctx, t); err != nil {
		// A concurrent insert of the same message is a duplicate, not a failure.
		if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Type == apperrors.ErrorTypeConflict {
			p.logger.Debugw("duplicate message lost insert race",
				"uid", uid,
				"message_id", parsed.MessageID)
			return nil
		}
		return fmt.Errorf("failed to persist ticket: %w", err)
	}

	p.logger.Infow("ticket created from email",
		"ticket_id", t.ID(),
		"uid", uid,
		"from", t.FromEmail(),
		"category", t.Category(),
		"priority", t.Priority().String())

	return nil
}
