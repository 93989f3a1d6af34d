// Package workspace owns the scratch working directories agent executions
// run in. Every execution gets a fresh clone; directories are removed when
// the execution finishes.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Manager creates and removes per-execution working directories.
type Manager struct {
	baseDir string
	logger  *slog.Logger
}

// NewManager creates a Manager rooted at baseDir. An empty baseDir falls
// back to the system temp directory.
func NewManager(baseDir string, logger *slog.Logger) *Manager {
	if baseDir == "" {
		baseDir = filepath.Join(os.TempDir(), "patchwork")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{baseDir: baseDir, logger: logger}
}

// Workspace is one execution's working copy.
type Workspace struct {
	Dir    string
	Branch string
}

// Clone creates a fresh working directory for the request and clones the
// repository into it. With branch set, the clone checks out that branch;
// otherwise the remote default branch.
func (m *Manager) Clone(ctx context.Context, requestID, cloneURL, branch string) (*Workspace, error) {
	if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workspace base dir: %w", err)
	}
	dir, err := os.MkdirTemp(m.baseDir, requestID+"-")
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace dir: %w", err)
	}

	args := []string{"clone", "--depth", "50"}
	if branch != "" {
		args = append(args, "--branch", branch, "--single-branch")
	}
	args = append(args, cloneURL, dir)

	m.logger.Info("cloning repository into workspace",
		"request_id", requestID,
		"dir", dir,
		"branch", branch)

	cmd := exec.CommandContext(ctx, "git", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("git clone failed: %s: %w", sanitizeGitOutput(string(out), cloneURL), err)
	}

	checkedOut := branch
	if checkedOut == "" {
		checkedOut = m.currentBranch(ctx, dir)
	}
	return &Workspace{Dir: dir, Branch: checkedOut}, nil
}

// Remove deletes the working directory. Safe to call twice.
func (m *Manager) Remove(ws *Workspace) {
	if ws == nil || ws.Dir == "" {
		return
	}
	if err := os.RemoveAll(ws.Dir); err != nil {
		m.logger.Warn("failed to remove workspace", "dir", ws.Dir, "error", err)
	}
}

// RemoveAll clears every workspace under the base dir. Called on startup
// to drop directories orphaned by a previous process.
func (m *Manager) RemoveAll() error {
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read workspace base dir: %w", err)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(m.baseDir, e.Name())); err != nil {
			return fmt.Errorf("failed to remove stale workspace %s: %w", e.Name(), err)
		}
	}
	return nil
}

func (m *Manager) currentBranch(ctx context.Context, dir string) string {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--abbrev-ref", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// sanitizeGitOutput strips the clone URL (which may embed a token) from
// git's error output before it reaches logs or user-visible errors.
func sanitizeGitOutput(out, cloneURL string) string {
	return strings.ReplaceAll(out, cloneURL, "<clone-url>")
}
