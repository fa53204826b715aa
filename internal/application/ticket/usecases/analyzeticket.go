package usecases

import (
	"context"
	"strings"

	"stayops/internal/application/ticket/dto"
	"stayops/internal/domain/ticket"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

// AnalyzeTicketUseCase re-runs classification for a stored ticket, for
// example after the analysis service was down at ingest time.
type AnalyzeTicketUseCase struct {
	repo     ticket.Repository
	analyzer Analyzer
	logger   logger.Interface
}

func NewAnalyzeTicketUseCase(repo ticket.Repository, analyzer Analyzer, log logger.Interface) *AnalyzeTicketUseCase {
	return &AnalyzeTicketUseCase{
		repo:     repo,
		analyzer: analyzer,
		logger:   log.Named("usecase.analyze_ticket"),
	}
}

func (uc *AnalyzeTicketUseCase) Execute(ctx context.Context, id uint) (*dto.TicketResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	body := t.Message()
	if strings.TrimSpace(body) == "" {
		body = t.HTMLBody()
	}

	result, err := uc.analyzer.Analyze(ctx, t.Subject(), body, t.FromEmail())
	if err != nil {
		uc.logger.Errorw("re-analysis failed", "ticket_id", id, "error", err)
		return nil, apperrors.NewInternalError("analysis service unavailable")
	}

	t.ApplyAnalysis(result.Category, result.Sentiment, result.BookingInfo)

	if err := uc.repo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to store analysis result", "ticket_id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket re-analyzed",
		"ticket_id", id,
		"category", t.Category(),
		"priority", t.Priority().String())

	return dto.NewTicketResponse(t), nil
}
