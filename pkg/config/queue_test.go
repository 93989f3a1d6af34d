package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQueueConfig(t *testing.T) {
	cfg := DefaultQueueConfig()
	assert.Equal(t, 5, cfg.WorkerCount)
	assert.Equal(t, 4, cfg.MaxInFlightExecutions)
	assert.Equal(t, 15*time.Minute, cfg.ExecuteTimeout)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.RetryBackoffBase)
	assert.Equal(t, 5*time.Minute, cfg.RetryBackoffCap)
	require.NoError(t, cfg.Validate())
}

func TestQueueConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QueueConfig)
		errMsg string
	}{
		{
			name:   "valid defaults",
			mutate: func(*QueueConfig) {},
		},
		{
			name:   "zero workers",
			mutate: func(c *QueueConfig) { c.WorkerCount = 0 },
			errMsg: "worker_count",
		},
		{
			name:   "zero in-flight limit",
			mutate: func(c *QueueConfig) { c.MaxInFlightExecutions = 0 },
			errMsg: "max_in_flight_executions",
		},
		{
			name:   "jitter at poll interval",
			mutate: func(c *QueueConfig) { c.PollIntervalJitter = c.PollInterval },
			errMsg: "poll_interval_jitter",
		},
		{
			name:   "negative execute timeout",
			mutate: func(c *QueueConfig) { c.ExecuteTimeout = -time.Second },
			errMsg: "execute_timeout",
		},
		{
			name:   "orphan threshold below heartbeat",
			mutate: func(c *QueueConfig) { c.OrphanThreshold = c.HeartbeatInterval },
			errMsg: "orphan_threshold",
		},
		{
			name:   "zero attempts",
			mutate: func(c *QueueConfig) { c.MaxAttempts = 0 },
			errMsg: "max_attempts",
		},
		{
			name:   "cap below base",
			mutate: func(c *QueueConfig) { c.RetryBackoffCap = time.Second },
			errMsg: "retry_backoff_cap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultQueueConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadQueueConfig_EnvOverrides(t *testing.T) {
	t.Setenv("QUEUE_WORKER_COUNT", "2")
	t.Setenv("QUEUE_EXECUTE_TIMEOUT", "5m")
	t.Setenv("QUEUE_MAX_ATTEMPTS", "3")

	cfg, err := loadQueueConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.ExecuteTimeout)
	assert.Equal(t, 3, cfg.MaxAttempts)
	// Untouched fields keep their defaults.
	assert.Equal(t, time.Second, cfg.PollInterval)
}

func TestLoadQueueConfig_InvalidDuration(t *testing.T) {
	t.Setenv("QUEUE_POLL_INTERVAL", "soon")

	_, err := loadQueueConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUEUE_POLL_INTERVAL")
}
