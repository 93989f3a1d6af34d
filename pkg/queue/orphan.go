package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/queuemessage"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRequeued int
}

// runOrphanDetection periodically scans for orphaned messages.
// All pods run this independently — operations are idempotent.
func (p *Pool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.requeueOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// requeueOrphans finds in-flight messages with stale heartbeats — claimed by
// a pod that died — and puts them back in the queue. Delivery is
// at-least-once: the handler's idempotency guards absorb the redelivery.
// A message that keeps orphaning burns an attempt per requeue, so a poison
// message still dead-letters.
func (p *Pool) requeueOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.QueueMessage.Query().
		Where(
			queuemessage.StatusEQ(queuemessage.StatusInFlight),
			queuemessage.LastHeartbeatAtNotNil(),
			queuemessage.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned messages: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned messages", "count", len(orphans))

	requeued := 0
	for _, msg := range orphans {
		if err := p.requeueOrphan(ctx, msg); err != nil {
			slog.Error("Failed to requeue orphaned message",
				"message_id", msg.ID,
				"error", err)
			continue
		}
		requeued++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphan returns a single orphaned message to the queue, or
// dead-letters it when the attempt budget is spent.
func (p *Pool) requeueOrphan(ctx context.Context, msg *ent.QueueMessage) error {
	lastHeartbeat := "unknown"
	if msg.LastHeartbeatAt != nil {
		lastHeartbeat = msg.LastHeartbeatAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if msg.LockedBy != nil {
		podID = *msg.LockedBy
	}
	failure := fmt.Errorf("orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)

	attempts := msg.Attempts + 1
	if attempts >= p.config.MaxAttempts {
		if err := msg.Update().
			SetStatus(queuemessage.StatusDead).
			SetAttempts(attempts).
			SetLastError(failure.Error()).
			SetCompletedAt(time.Now()).
			ClearLockedBy().
			ClearLockedAt().
			ClearLastHeartbeatAt().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to dead-letter orphan: %w", err)
		}
		p.dispatcher.HandleDead(ctx, msg, failure)
		slog.Error("Orphaned message dead-lettered", "message_id", msg.ID, "attempts", attempts)
		return nil
	}

	if err := msg.Update().
		SetStatus(queuemessage.StatusPending).
		SetAttempts(attempts).
		SetLastError(failure.Error()).
		SetAvailableAt(time.Now()).
		ClearLockedBy().
		ClearLockedAt().
		ClearLastHeartbeatAt().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to requeue orphan: %w", err)
	}

	slog.Warn("Orphaned message requeued",
		"message_id", msg.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time requeue of messages claimed by
// this pod before it crashed. Called once during startup, before the worker
// pool begins processing. No attempt is burned: the pod restart itself is
// not evidence against the message.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.QueueMessage.Update().
		Where(
			queuemessage.StatusEQ(queuemessage.StatusInFlight),
			queuemessage.LockedByEQ(podID),
		).
		SetStatus(queuemessage.StatusPending).
		SetAvailableAt(time.Now()).
		ClearLockedBy().
		ClearLockedAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue startup orphans: %w", err)
	}

	if n > 0 {
		slog.Warn("Requeued startup orphans from previous run",
			"pod_id", podID,
			"count", n)
	}
	return nil
}
