package config

import (
	"fmt"
	"time"
)

// QueueConfig contains queue and worker pool configuration.
// These values control how messages are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes messages.
	WorkerCount int

	// MaxInFlightExecutions is the global limit of concurrent agent
	// executions across ALL replicas/pods. Enforced by database COUNT(*)
	// check. Lightweight message variants are not bounded by it.
	MaxInFlightExecutions int

	// PollInterval is the base interval for checking pending messages.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// ExecuteTimeout is the maximum wall time for one agent execution.
	ExecuteTimeout time.Duration

	// HandlerTimeout bounds every non-execution message variant.
	HandlerTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// messages to complete during shutdown. Should match ExecuteTimeout.
	GracefulShutdownTimeout time.Duration

	// HeartbeatInterval is how often a worker refreshes the heartbeat on
	// the message it is processing.
	HeartbeatInterval time.Duration

	// OrphanScanInterval is how often to scan for orphaned messages.
	OrphanScanInterval time.Duration

	// OrphanThreshold is how long a claimed message can go without a
	// heartbeat before it is requeued.
	OrphanThreshold time.Duration

	// MaxAttempts is the delivery limit before a message is dead-lettered.
	MaxAttempts int

	// RetryBackoffBase and RetryBackoffCap bound the full-jitter
	// exponential backoff between delivery attempts.
	RetryBackoffBase time.Duration
	RetryBackoffCap  time.Duration

	// ReplayMessageCount is how many conversation-log entries are handed
	// to strategies that cannot resume from a session blob.
	ReplayMessageCount int
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxInFlightExecutions:   4,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		ExecuteTimeout:          15 * time.Minute,
		HandlerTimeout:          1 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanScanInterval:      1 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		MaxAttempts:             5,
		RetryBackoffBase:        2 * time.Second,
		RetryBackoffCap:         5 * time.Minute,
		ReplayMessageCount:      20,
	}
}

// loadQueueConfig reads queue overrides from the environment on top of the
// defaults.
func loadQueueConfig() (*QueueConfig, error) {
	cfg := DefaultQueueConfig()

	var err error
	if cfg.WorkerCount, err = envInt("QUEUE_WORKER_COUNT", cfg.WorkerCount); err != nil {
		return nil, err
	}
	if cfg.MaxInFlightExecutions, err = envInt("QUEUE_MAX_IN_FLIGHT", cfg.MaxInFlightExecutions); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = envDuration("QUEUE_POLL_INTERVAL", cfg.PollInterval); err != nil {
		return nil, err
	}
	if cfg.PollIntervalJitter, err = envDuration("QUEUE_POLL_JITTER", cfg.PollIntervalJitter); err != nil {
		return nil, err
	}
	if cfg.ExecuteTimeout, err = envDuration("QUEUE_EXECUTE_TIMEOUT", cfg.ExecuteTimeout); err != nil {
		return nil, err
	}
	if cfg.HandlerTimeout, err = envDuration("QUEUE_HANDLER_TIMEOUT", cfg.HandlerTimeout); err != nil {
		return nil, err
	}
	if cfg.GracefulShutdownTimeout, err = envDuration("QUEUE_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout); err != nil {
		return nil, err
	}
	if cfg.HeartbeatInterval, err = envDuration("QUEUE_HEARTBEAT_INTERVAL", cfg.HeartbeatInterval); err != nil {
		return nil, err
	}
	if cfg.OrphanScanInterval, err = envDuration("QUEUE_ORPHAN_SCAN_INTERVAL", cfg.OrphanScanInterval); err != nil {
		return nil, err
	}
	if cfg.OrphanThreshold, err = envDuration("QUEUE_ORPHAN_THRESHOLD", cfg.OrphanThreshold); err != nil {
		return nil, err
	}
	if cfg.MaxAttempts, err = envInt("QUEUE_MAX_ATTEMPTS", cfg.MaxAttempts); err != nil {
		return nil, err
	}
	if cfg.RetryBackoffBase, err = envDuration("QUEUE_RETRY_BACKOFF_BASE", cfg.RetryBackoffBase); err != nil {
		return nil, err
	}
	if cfg.RetryBackoffCap, err = envDuration("QUEUE_RETRY_BACKOFF_CAP", cfg.RetryBackoffCap); err != nil {
		return nil, err
	}
	if cfg.ReplayMessageCount, err = envInt("QUEUE_REPLAY_MESSAGES", cfg.ReplayMessageCount); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the queue configuration for nonsensical values.
func (c *QueueConfig) Validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("worker_count must be at least 1, got %d", c.WorkerCount)
	}
	if c.MaxInFlightExecutions < 1 {
		return fmt.Errorf("max_in_flight_executions must be at least 1, got %d", c.MaxInFlightExecutions)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %v", c.PollInterval)
	}
	if c.PollIntervalJitter < 0 {
		return fmt.Errorf("poll_interval_jitter must not be negative, got %v", c.PollIntervalJitter)
	}
	if c.PollIntervalJitter >= c.PollInterval {
		return fmt.Errorf("poll_interval_jitter %v must be below poll_interval %v", c.PollIntervalJitter, c.PollInterval)
	}
	if c.ExecuteTimeout <= 0 {
		return fmt.Errorf("execute_timeout must be positive, got %v", c.ExecuteTimeout)
	}
	if c.HandlerTimeout <= 0 {
		return fmt.Errorf("handler_timeout must be positive, got %v", c.HandlerTimeout)
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be positive, got %v", c.HeartbeatInterval)
	}
	if c.OrphanThreshold <= c.HeartbeatInterval {
		return fmt.Errorf("orphan_threshold %v must exceed heartbeat_interval %v", c.OrphanThreshold, c.HeartbeatInterval)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.RetryBackoffBase <= 0 {
		return fmt.Errorf("retry_backoff_base must be positive, got %v", c.RetryBackoffBase)
	}
	if c.RetryBackoffCap < c.RetryBackoffBase {
		return fmt.Errorf("retry_backoff_cap %v must not be below retry_backoff_base %v", c.RetryBackoffCap, c.RetryBackoffBase)
	}
	if c.ReplayMessageCount < 0 {
		return fmt.Errorf("replay_message_count must not be negative, got %d", c.ReplayMessageCount)
	}
	return nil
}
