package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/queuemessage"
	"github.com/patchwork-dev/patchwork/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes messages.
type Worker struct {
	id         string
	podID      string
	client     *ent.Client
	db         *sql.DB
	config     *config.QueueConfig
	dispatcher Dispatcher
	pool       RequestRegistry
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentMessageID  string
	messagesProcessed int
	lastActivity      time.Time
}

// RequestRegistry is the subset of Pool used by Worker for cancellation
// registration.
type RequestRegistry interface {
	RegisterRequest(requestID string, cancel context.CancelFunc)
	UnregisterRequest(requestID string)
}

// NewWorker creates a new queue worker. db is the raw connection pool used
// for per-request advisory locks.
func NewWorker(id, podID string, client *ent.Client, db *sql.DB, cfg *config.QueueConfig, dispatcher Dispatcher, pool RequestRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		db:           db,
		config:       cfg,
		dispatcher:   dispatcher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentMessageID:  w.currentMessageID,
		MessagesProcessed: w.messagesProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoMessagesAvailable) || errors.Is(err, ErrRequestBusy) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing message", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next message, serializes on its request, and
// runs the dispatcher.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check the global execution bound (best-effort; racy with concurrent
	//    workers but bounded by WorkerCount and mitigated by poll jitter).
	//    Lightweight variants stay claimable at capacity.
	inFlight, err := w.client.QueueMessage.Query().
		Where(
			queuemessage.StatusEQ(queuemessage.StatusInFlight),
			queuemessage.VariantEQ(queuemessage.VariantRequestExecute),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking in-flight executions: %w", err)
	}
	atCapacity := inFlight >= w.config.MaxInFlightExecutions

	// 2. Claim next message
	msg, err := w.claimNext(ctx, atCapacity)
	if err != nil {
		return err
	}

	log := slog.With("message_id", msg.ID, "variant", msg.Variant, "worker_id", w.id)
	log.Info("Message claimed")

	// 3. Serialize per request: one execution per request at a time, across
	//    all pods. Creation variants lock on the correlation key instead.
	lockConn, err := w.acquireRequestLock(ctx, lockKey(msg))
	if err != nil {
		if relErr := w.releaseClaim(ctx, msg); relErr != nil {
			log.Error("Failed to release claim on busy request", "error", relErr)
		}
		return err
	}
	defer w.releaseRequestLock(lockConn, lockKey(msg))

	w.setStatus(WorkerStatusWorking, msg.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 4. Create message context with the variant's timeout
	timeout := w.config.HandlerTimeout
	if msg.Variant == queuemessage.VariantRequestExecute {
		timeout = w.config.ExecuteTimeout
	}
	msgCtx, cancelMsg := context.WithTimeout(ctx, timeout)
	defer cancelMsg()

	// 5. Register cancel function for API-triggered cancellation
	if msg.RequestID != nil {
		w.pool.RegisterRequest(*msg.RequestID, cancelMsg)
		defer w.pool.UnregisterRequest(*msg.RequestID)
	}

	// 6. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(msgCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, msg.ID)

	// 7. Dispatch
	handleErr := w.dispatcher.Handle(msgCtx, msg)

	// 8. Stop heartbeat
	cancelHeartbeat()

	// 9. Write the delivery outcome (use background context — the message
	//    ctx may be cancelled)
	if err := w.settle(context.Background(), msg, handleErr); err != nil {
		log.Error("Failed to settle message", "error", err)
		return err
	}

	w.mu.Lock()
	w.messagesProcessed++
	w.mu.Unlock()

	log.Info("Message processing complete", "handled", handleErr == nil)
	return nil
}

// claimNext atomically claims the oldest claimable message using
// FOR UPDATE SKIP LOCKED. With excludeExecute set, request_execute messages
// are left for workers with execution capacity.
func (w *Worker) claimNext(ctx context.Context, excludeExecute bool) (*ent.QueueMessage, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.QueueMessage.Query().
		Where(
			queuemessage.StatusEQ(queuemessage.StatusPending),
			queuemessage.AvailableAtLTE(time.Now()),
		)
	if excludeExecute {
		query = query.Where(queuemessage.VariantNEQ(queuemessage.VariantRequestExecute))
	}

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by seq for FIFO processing
	msg, err := query.
		Order(ent.Asc(queuemessage.FieldSeq)).
		Limit(1).
		ForUpdate(entsql.WithLockAction(entsql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoMessagesAvailable
		}
		return nil, fmt.Errorf("failed to query pending message: %w", err)
	}

	now := time.Now()
	msg, err = msg.Update().
		SetStatus(queuemessage.StatusInFlight).
		SetLockedBy(w.podID).
		SetLockedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return msg, nil
}

// lockKey returns the serialization key for a message: the request id when
// the request exists, otherwise the surface correlation key.
func lockKey(msg *ent.QueueMessage) string {
	if msg.RequestID != nil && *msg.RequestID != "" {
		return *msg.RequestID
	}
	return msg.CorrelationKey
}

// acquireRequestLock takes the cross-pod advisory lock for the key on a
// dedicated connection. Session-level locks outlive transactions, so the
// connection is held for the whole message and must be released with
// releaseRequestLock.
func (w *Worker) acquireRequestLock(ctx context.Context, key string) (*sql.Conn, error) {
	conn, err := w.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lock connection: %w", err)
	}

	var acquired bool
	if err := conn.QueryRowContext(ctx,
		"SELECT pg_try_advisory_lock(hashtext($1))", key).Scan(&acquired); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to acquire request lock: %w", err)
	}
	if !acquired {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %s", ErrRequestBusy, key)
	}
	return conn, nil
}

// releaseRequestLock drops the advisory lock and returns the connection to
// the pool.
func (w *Worker) releaseRequestLock(conn *sql.Conn, key string) {
	if _, err := conn.ExecContext(context.Background(),
		"SELECT pg_advisory_unlock(hashtext($1))", key); err != nil {
		slog.Warn("Failed to release request lock", "key", key, "error", err)
	}
	_ = conn.Close()
}

// releaseClaim puts a claimed message back in the queue without consuming an
// attempt, slightly delayed so the holder of the request lock can finish.
func (w *Worker) releaseClaim(ctx context.Context, msg *ent.QueueMessage) error {
	return w.client.QueueMessage.UpdateOneID(msg.ID).
		SetStatus(queuemessage.StatusPending).
		SetAvailableAt(time.Now().Add(w.config.RetryBackoffBase)).
		ClearLockedBy().
		ClearLockedAt().
		ClearLastHeartbeatAt().
		Exec(ctx)
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, messageID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.QueueMessage.UpdateOneID(messageID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "message_id", messageID, "error", err)
			}
		}
	}
}

// settle writes the delivery outcome: acknowledge, schedule a retry, or
// dead-letter after the attempt limit.
func (w *Worker) settle(ctx context.Context, msg *ent.QueueMessage, handleErr error) error {
	if handleErr == nil || errors.Is(handleErr, ErrDuplicate) {
		update := w.client.QueueMessage.UpdateOneID(msg.ID).
			SetStatus(queuemessage.StatusCompleted).
			SetCompletedAt(time.Now()).
			ClearLockedBy().
			ClearLockedAt()
		if handleErr != nil {
			update = update.SetLastError(handleErr.Error())
		}
		return update.Exec(ctx)
	}

	attempts := msg.Attempts + 1
	if attempts >= w.config.MaxAttempts {
		if err := w.client.QueueMessage.UpdateOneID(msg.ID).
			SetStatus(queuemessage.StatusDead).
			SetAttempts(attempts).
			SetLastError(handleErr.Error()).
			SetCompletedAt(time.Now()).
			ClearLockedBy().
			ClearLockedAt().
			Exec(ctx); err != nil {
			return err
		}
		slog.Error("Message dead-lettered",
			"message_id", msg.ID,
			"variant", msg.Variant,
			"attempts", attempts,
			"error", handleErr)
		w.dispatcher.HandleDead(ctx, msg, handleErr)
		return nil
	}

	delay := retryBackoff(w.config.RetryBackoffBase, w.config.RetryBackoffCap, attempts)
	slog.Warn("Message delivery failed, scheduling retry",
		"message_id", msg.ID,
		"variant", msg.Variant,
		"attempt", attempts,
		"retry_in", delay,
		"error", handleErr)
	return w.client.QueueMessage.UpdateOneID(msg.ID).
		SetStatus(queuemessage.StatusPending).
		SetAttempts(attempts).
		SetLastError(handleErr.Error()).
		SetAvailableAt(time.Now().Add(delay)).
		ClearLockedBy().
		ClearLockedAt().
		ClearLastHeartbeatAt().
		Exec(ctx)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, messageID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentMessageID = messageID
	w.lastActivity = time.Now()
}
