// Package scheduler runs recurring background jobs.
package scheduler

import (
	"sync"
	"time"

	"stayops/internal/shared/logger"
)

// IngestionScheduler periodically triggers the mailbox ingestion cycle. The
// first run fires immediately on Start, then on every tick.
type IngestionScheduler struct {
	interval time.Duration
	run      func()

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	logger   logger.Interface
}

func NewIngestionScheduler(interval time.Duration, run func(), log logger.Interface) *IngestionScheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &IngestionScheduler{
		interval: interval,
		run:      run,
		stopChan: make(chan struct{}),
		logger:   log.Named("scheduler.ingestion"),
	}
}

func (s *IngestionScheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.logger.Infow("ingestion scheduler started", "interval", s.interval)

		s.safeRun()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.safeRun()
			case <-s.stopChan:
				s.logger.Info("ingestion scheduler stopped")
				return
			}
		}
	}()
}

// Stop signals the loop to exit and waits for the current run to finish.
func (s *IngestionScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
}

func (s *IngestionScheduler) safeRun() {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorw("ingestion run panicked", "panic", r)
		}
	}()
	s.run()
}
