package usecases

import (
	"stayops/internal/shared/logger"
)

// CheckInboxUseCase asks the ingestion service for an immediate mailbox
// check. It returns right away; the cycle runs in the background.
type CheckInboxUseCase struct {
	trigger InboxTrigger
	logger  logger.Interface
}

func NewCheckInboxUseCase(trigger InboxTrigger, log logger.Interface) *CheckInboxUseCase {
	return &CheckInboxUseCase{
		trigger: trigger,
		logger:  log.Named("usecase.check_inbox"),
	}
}

// Execute reports whether a new check was queued. False means one was
// already pending, which is just as good for the caller.
func (uc *CheckInboxUseCase) Execute() bool {
	queued := uc.trigger.TriggerCheck()
	uc.logger.Infow("inbox check requested", "queued", queued)
	return queued
}
