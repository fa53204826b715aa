package ingestion

import (
	"context"
	"errors"
	"sync"
	"time"

	"stayops/internal/domain/ticket"
	"stayops/internal/infrastructure/mailbox"
	"stayops/internal/infrastructure/scheduler"
	"stayops/internal/shared/goroutine"
	"stayops/internal/shared/logger"
)

// Service drives the ingestion loop: it owns the UID high-water mark and
// runs one cycle per poll tick or manual trigger. Cycles never overlap.
type Service struct {
	source   Source
	pipeline *Pipeline
	tickets  ticket.Repository
	interval time.Duration
	logger   logger.Interface

	mu         sync.Mutex
	mark       uint32
	markLoaded bool

	sched    *scheduler.IngestionScheduler
	trigger  chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewService(
	source Source,
	pipeline *Pipeline,
	tickets ticket.Repository,
	pollInterval time.Duration,
	log logger.Interface,
) *Service {
	return &Service{
		source:   source,
		pipeline: pipeline,
		tickets:  tickets,
		interval: pollInterval,
		logger:   log.Named("ingestion.service"),
		trigger:  make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
}

// Start launches the poll loop and the manual-trigger listener.
func (s *Service) Start() {
	s.sched = scheduler.NewIngestionScheduler(s.interval, func() {
		s.RunCycle(context.Background())
	}, s.logger)
	s.sched.Start()

	s.wg.Add(1)
	goroutine.SafeGo(s.logger, "ingestion.trigger", func() {
		defer s.wg.Done()
		for {
			select {
			case <-s.stopChan:
				return
			case <-s.trigger:
				s.RunCycle(context.Background())
			}
		}
	})
}

// Stop shuts both loops down, waits for any in-flight cycle to finish, then
// logs out of the mailbox.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	if s.sched != nil {
		s.sched.Stop()
	}
	s.wg.Wait()
	s.source.Close()
}

// TriggerCheck requests an immediate cycle without blocking. It reports
// false when a trigger is already pending.
func (s *Service) TriggerCheck() bool {
	select {
	case s.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

// Mark returns the current UID high-water mark.
func (s *Service) Mark() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mark
}

// RunCycle performs one search-fetch-process pass. The mark advances only
// past messages that processed successfully, in ascending UID order, and
// stops at the first failure so that message is retried next cycle.
func (s *Service) RunCycle(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.markLoaded {
		mark, err := s.tickets.MaxUID(ctx)
		if err != nil {
			s.logger.Errorw("failed to load UID high-water mark", "error", err)
			return
		}
		s.mark = mark
		s.markLoaded = true
		s.logger.Infow("UID high-water mark loaded", "mark", mark)
	}

	messages, fetchErr := s.source.FetchNew(ctx, s.mark)
	if fetchErr != nil && len(messages) == 0 {
		var connErr *mailbox.ConnectionError
		switch {
		case errors.Is(fetchErr, mailbox.ErrBackoff):
			s.logger.Debug("skipping cycle, reconnect backoff in effect")
		case errors.As(fetchErr, &connErr):
			// Backoff is already armed; the next cycle retries.
			s.logger.Warnw("mailbox unreachable, cycle skipped",
				"op", connErr.Op,
				"error", fetchErr)
		default:
			s.logger.Errorw("mailbox fetch failed", "error", fetchErr)
		}
		return
	}
	if len(messages) == 0 {
		return
	}

	s.logger.Infow("processing new messages", "count", len(messages), "mark", s.mark)

	advancing := true
	processed := 0
	for _, msg := range messages {
		if err := s.pipeline.ProcessMessage(ctx, msg.UID, msg.Raw); err != nil {
			s.logger.Errorw("message processing failed",
				"uid", msg.UID,
				"error", err)
			advancing = false
			continue
		}
		processed++
		if advancing && msg.UID > s.mark {
			s.mark = msg.UID
		}
	}

	if fetchErr != nil {
		s.logger.Errorw("mailbox fetch ended with error after partial batch", "error", fetchErr)
	}

	s.logger.Infow("cycle finished",
		"processed", processed,
		"total", len(messages),
		"mark", s.mark)
}
