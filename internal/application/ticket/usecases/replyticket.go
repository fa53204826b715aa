package usecases

import (
	"context"
	"strings"

	"stayops/internal/application/ticket/dto"
	"stayops/internal/domain/ticket"
	vo "stayops/internal/domain/ticket/valueobjects"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

// ReplyTicketUseCase emails an agent reply to the ticket's sender and moves
// an open ticket to in_progress.
type ReplyTicketUseCase struct {
	repo   ticket.Repository
	sender ReplySender
	logger logger.Interface
}

func NewReplyTicketUseCase(repo ticket.Repository, sender ReplySender, log logger.Interface) *ReplyTicketUseCase {
	return &ReplyTicketUseCase{
		repo:   repo,
		sender: sender,
		logger: log.Named("usecase.reply_ticket"),
	}
}

func (uc *ReplyTicketUseCase) Execute(ctx context.Context, id uint, req dto.ReplyTicketRequest) (*dto.TicketResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.NewValidationError("reply message is required")
	}

	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Synthesized placeholder IDs never left this system, so threading
	// headers would be meaningless.
	inReplyTo := t.MessageID()
	if strings.HasPrefix(inReplyTo, "no-id-") {
		inReplyTo = ""
	}

	if err := uc.sender.SendReply(t.FromEmail(), t.Subject(), req.Message, inReplyTo); err != nil {
		uc.logger.Errorw("failed to send reply", "ticket_id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to send reply")
	}

	if t.Status().IsOpen() {
		if err := t.ChangeStatus(vo.StatusInProgress); err == nil {
			if err := uc.repo.Update(ctx, t); err != nil {
				uc.logger.Warnw("reply sent but status update failed", "ticket_id", id, "error", err)
			}
		}
	}

	uc.logger.Infow("reply sent", "ticket_id", id, "to", t.FromEmail())
	return dto.NewTicketResponse(t), nil
}
