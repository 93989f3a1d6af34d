package queue

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/queuemessage"
	"github.com/patchwork-dev/patchwork/pkg/config"
)

// Pool manages a pool of queue workers.
type Pool struct {
	podID      string
	client     *ent.Client
	db         *sql.DB
	config     *config.QueueConfig
	dispatcher Dispatcher
	workers    []*Worker
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Cancellation registry: request_id → cancel function
	activeRequests map[string]context.CancelFunc
	mu             sync.RWMutex
	started        bool

	// Orphan detection state
	orphans orphanState
}

// NewPool creates a new worker pool.
func NewPool(podID string, client *ent.Client, db *sql.DB, cfg *config.QueueConfig, dispatcher Dispatcher) *Pool {
	return &Pool{
		podID:          podID,
		client:         client,
		db:             db,
		config:         cfg,
		dispatcher:     dispatcher,
		workers:        make([]*Worker, 0, cfg.WorkerCount),
		stopCh:         make(chan struct{}),
		activeRequests: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.db, p.config, p.dispatcher, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current messages before exiting (graceful shutdown).
func (p *Pool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.activeRequestIDs()
	if len(active) > 0 {
		slog.Info("Waiting for in-flight requests to complete",
			"count", len(active),
			"request_ids", active)
	}

	// Signal all workers to stop (they finish current messages)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterRequest stores a cancel function for manual cancellation.
func (p *Pool) RegisterRequest(requestID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeRequests[requestID] = cancel
}

// UnregisterRequest removes the cancel function when processing ends.
func (p *Pool) UnregisterRequest(requestID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeRequests, requestID)
}

// CancelRequest triggers context cancellation for a request on this pod.
// Returns true if the request was found and cancelled on this pod.
func (p *Pool) CancelRequest(requestID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeRequests[requestID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *Pool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.QueueMessage.Query().
		Where(queuemessage.StatusEQ(queuemessage.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	inFlight, errA := p.client.QueueMessage.Query().
		Where(
			queuemessage.StatusEQ(queuemessage.StatusInFlight),
			queuemessage.VariantEQ(queuemessage.VariantRequestExecute),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query in-flight executions for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	deadLetters, errD := p.client.QueueMessage.Query().
		Where(queuemessage.StatusEQ(queuemessage.StatusDead)).
		Count(ctx)
	if errD != nil {
		slog.Error("Failed to query dead letters for health check",
			"pod_id", p.podID,
			"error", errD)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil && errD == nil
	isHealthy := len(p.workers) > 0 && inFlight <= p.config.MaxInFlightExecutions && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRequeued := p.orphans.orphansRequeued
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		switch {
		case errQ != nil:
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		case errA != nil:
			dbError = fmt.Sprintf("in-flight query failed: %v", errA)
		case errD != nil:
			dbError = fmt.Sprintf("dead letter query failed: %v", errD)
		}
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		PodID:           p.podID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		InFlight:        inFlight,
		MaxInFlight:     p.config.MaxInFlightExecutions,
		QueueDepth:      queueDepth,
		DeadLetters:     deadLetters,
		WorkerStats:     workerStats,
		LastOrphanScan:  lastOrphanScan,
		OrphansRequeued: orphansRequeued,
	}
}

// activeRequestIDs returns IDs of currently processing requests (for logging).
func (p *Pool) activeRequestIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	requests := make([]string, 0, len(p.activeRequests))
	for id := range p.activeRequests {
		requests = append(requests, id)
	}
	return requests
}
