// Package queue provides the durable work queue: message persistence,
// worker claiming, retry with backoff, and the dispatcher that routes
// message variants to their handlers.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/patchwork-dev/patchwork/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoMessagesAvailable indicates no claimable messages are in the queue.
	ErrNoMessagesAvailable = errors.New("no messages available")

	// ErrAtCapacity indicates the global in-flight execution limit has been
	// reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrRequestBusy indicates another worker holds the per-request
	// serialization lock; the message is released back to the queue.
	ErrRequestBusy = errors.New("request is being processed elsewhere")

	// ErrDuplicate marks a delivery whose effect was already applied.
	// Handlers return it (wrapped) to acknowledge without side effects.
	ErrDuplicate = errors.New("duplicate delivery")
)

// Dispatcher routes one claimed message to its variant handler.
//
// Handle returning nil or ErrDuplicate acknowledges the message. Any other
// error schedules a retry with backoff until the attempt limit, after which
// the message is dead-lettered and HandleDead runs once with the final
// failure so the owning request can be transitioned and users notified.
type Dispatcher interface {
	Handle(ctx context.Context, msg *ent.QueueMessage) error
	HandleDead(ctx context.Context, msg *ent.QueueMessage, failure error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	InFlight        int            `json:"in_flight"`
	MaxInFlight     int            `json:"max_in_flight"`
	QueueDepth      int            `json:"queue_depth"`
	DeadLetters     int            `json:"dead_letters"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastOrphanScan  time.Time      `json:"last_orphan_scan"`
	OrphansRequeued int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentMessageID  string    `json:"current_message_id,omitempty"`
	MessagesProcessed int       `json:"messages_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
