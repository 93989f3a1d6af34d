// Package config loads process configuration from the environment.
// Integration configuration (forge app, chat tokens, LLM keys) lives in the
// database config store; only deployment-shaped knobs are read here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Load and used
// throughout the application.
type Config struct {
	Server    *ServerConfig
	Queue     *QueueConfig
	Runner    *RunnerConfig
	Workspace *WorkspaceConfig
	Retention *RetentionConfig

	// EncryptionKey derives the AES key protecting secrets at rest.
	EncryptionKey string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Host and Port form the listen address.
	Host string
	Port int

	// PodID identifies this replica in queue claims and health output.
	// Defaults to the hostname.
	PodID string

	// DashboardURL is the external base URL of the dashboard, used to build
	// deep links in notifications. Empty disables the links.
	DashboardURL string
}

// Addr returns the listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RunnerConfig holds agent-runner sidecar configuration.
type RunnerConfig struct {
	// Addr is the gRPC address of the runner sidecar. Empty disables the
	// runner strategy (only built-in strategies register).
	Addr string
}

// WorkspaceConfig holds workspace (repository clone) configuration.
type WorkspaceConfig struct {
	// BaseDir is where per-request clones are created.
	// Defaults to a directory under the OS temp dir.
	BaseDir string
}

// RetentionConfig holds data-retention configuration. All retention
// operations are idempotent and safe to run from multiple pods.
type RetentionConfig struct {
	// CleanupInterval is how often the retention loop runs.
	CleanupInterval time.Duration

	// MessageRetention is how long settled (completed or dead) queue
	// messages are kept for inspection before being purged.
	MessageRetention time.Duration
}

// Validate checks retention invariants.
func (c *RetentionConfig) Validate() error {
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %v", c.CleanupInterval)
	}
	if c.MessageRetention <= 0 {
		return fmt.Errorf("message retention must be positive, got %v", c.MessageRetention)
	}
	return nil
}

func loadRetentionConfig() (*RetentionConfig, error) {
	interval, err := envDuration("CLEANUP_INTERVAL", time.Hour)
	if err != nil {
		return nil, err
	}
	retention, err := envDuration("MESSAGE_RETENTION", 72*time.Hour)
	if err != nil {
		return nil, err
	}
	return &RetentionConfig{
		CleanupInterval:  interval,
		MessageRetention: retention,
	}, nil
}

// Load reads process configuration from the environment, applying defaults
// for everything except the encryption key.
func Load() (*Config, error) {
	port, err := envInt("PORT", 8080)
	if err != nil {
		return nil, err
	}

	queue, err := loadQueueConfig()
	if err != nil {
		return nil, err
	}
	if err := queue.Validate(); err != nil {
		return nil, fmt.Errorf("invalid queue config: %w", err)
	}

	retention, err := loadRetentionConfig()
	if err != nil {
		return nil, err
	}
	if err := retention.Validate(); err != nil {
		return nil, fmt.Errorf("invalid retention config: %w", err)
	}

	podID := os.Getenv("POD_ID")
	if podID == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("failed to determine pod id: %w", err)
		}
		podID = hostname
	}

	key := os.Getenv("ENCRYPTION_KEY")
	if key == "" {
		return nil, fmt.Errorf("ENCRYPTION_KEY is required")
	}

	return &Config{
		Server: &ServerConfig{
			Host:         envStr("HOST", "0.0.0.0"),
			Port:         port,
			PodID:        podID,
			DashboardURL: os.Getenv("DASHBOARD_URL"),
		},
		Queue: queue,
		Runner: &RunnerConfig{
			Addr: os.Getenv("AGENT_RUNNER_ADDR"),
		},
		Workspace: &WorkspaceConfig{
			BaseDir: os.Getenv("WORKSPACE_DIR"),
		},
		Retention:     retention,
		EncryptionKey: key,
	}, nil
}

// ─── Env helpers ───

func envStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
