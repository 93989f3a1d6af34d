// Package cleanup enforces data retention in the background.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/patchwork-dev/patchwork/pkg/config"
)

// SessionSweeper deletes expired agent session blobs. Satisfied by
// services.SessionBlobService.
type SessionSweeper interface {
	DeleteExpired(ctx context.Context) (int, error)
}

// QueuePurger deletes settled queue messages past retention. Satisfied by
// queue.Service.
type QueuePurger interface {
	PurgeSettled(ctx context.Context, olderThan time.Duration) (int, error)
}

// Service periodically enforces retention:
//   - Deletes agent session blobs past their TTL
//   - Purges settled (completed or dead) queue messages past retention
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config   *config.RetentionConfig
	sessions SessionSweeper
	queue    QueuePurger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the retention service.
func NewService(cfg *config.RetentionConfig, sessions SessionSweeper, queue QueuePurger) *Service {
	return &Service{
		config:   cfg,
		sessions: sessions,
		queue:    queue,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"interval", s.config.CleanupInterval,
		"message_retention", s.config.MessageRetention)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes every retention task once. Each task fails open: an error
// is logged and the next task still runs.
func (s *Service) RunAll(ctx context.Context) {
	s.sweepSessions(ctx)
	s.purgeQueue(ctx)
}

func (s *Service) sweepSessions(ctx context.Context) {
	count, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		slog.Error("Retention: session sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired sessions deleted", "count", count)
	}
}

func (s *Service) purgeQueue(ctx context.Context) {
	count, err := s.queue.PurgeSettled(ctx, s.config.MessageRetention)
	if err != nil {
		slog.Error("Retention: queue purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: settled queue messages purged", "count", count)
	}
}
