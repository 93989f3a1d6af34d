// Package agent defines the pluggable execution contract between the
// request-lifecycle engine and concrete coding agents. The engine never
// talks to an LLM or runs git itself; it builds a Context, hands it to a
// Strategy, and interprets the Result.
package agent

import (
	"context"
	"time"
)

// Strategy is the engine's abstraction over one agent implementation.
// Instances are single-use: one Execute per instance, then Cleanup.
type Strategy interface {
	// Kind identifies the agent implementation ("runner", "stub", ...).
	Kind() string

	// Execute runs the agent to completion or cancellation. Progress is
	// streamed through ac.OnEvent; the returned Result carries the final
	// outcome. A non-nil error means the strategy itself failed (not the
	// task) and the dispatcher maps it to the error taxonomy.
	Execute(ctx context.Context, ac *Context) (*Result, error)

	// Abort interrupts a running Execute. Safe to call when nothing runs.
	Abort(ctx context.Context) error

	// SupportsStreaming reports whether Execute emits incremental events
	// or only a terminal Result.
	SupportsStreaming() bool

	// Capabilities describes what this strategy can do.
	Capabilities() Capabilities

	// Validate checks the context before Execute. Returns one error per
	// problem; empty means runnable.
	Validate(ctx context.Context, ac *Context) []error

	// Cleanup releases strategy-held resources. Idempotent.
	Cleanup()
}

// Capabilities describes a strategy's feature surface.
type Capabilities struct {
	Streaming          bool
	SessionPersistence bool
	Providers          []string
}

// SupportsProvider reports whether the strategy can run on the provider.
// An empty provider list means any provider.
func (c Capabilities) SupportsProvider(provider string) bool {
	if len(c.Providers) == 0 {
		return true
	}
	for _, p := range c.Providers {
		if p == provider {
			return true
		}
	}
	return false
}

// Context carries everything a strategy needs for one execution.
type Context struct {
	RequestID  string
	Repository string // owner/name
	WorkDir    string // fresh clone, already checked out at the right branch
	Branch     string

	// Prompt is the composed task description (initial request plus any
	// clarification answers or follow-up instructions).
	Prompt string

	// Session resumption. When the strategy supports sessionPersistence
	// and a recent blob exists, both fields are set and Replay is empty.
	// Otherwise Replay holds the last N conversation messages.
	ResumeSessionID string
	SessionBlob     []byte // compressed, opaque to the engine
	Replay          []ReplayMessage

	Provider string
	Model    string
	APIKey   string // decrypted credential for Provider

	// OnEvent receives progress events during Execute. May be nil.
	OnEvent func(Event)
}

// ReplayMessage is one conversation-log entry handed to strategies that
// cannot resume from a session blob.
type ReplayMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

// Result is the terminal outcome of one Execute.
type Result struct {
	Success bool

	// Output is the agent's final text, including any structured
	// completion block for the progress analyzer.
	Output string

	// Session persistence. SessionID is agent-assigned; SessionBlob is
	// compressed and opaque. Both empty when unsupported.
	SessionID        string
	SessionBlob      []byte
	UncompressedSize int

	FilesModified []string
	Branch        string // branch the agent pushed, if any
	Summary       string

	CostCents    int
	DurationMs   int64
	InputTokens  int
	OutputTokens int
}

// EventKind classifies a progress event.
type EventKind string

const (
	EventStarted    EventKind = "started"
	EventThinking   EventKind = "thinking"
	EventToolCall   EventKind = "tool_call"
	EventToolResult EventKind = "tool_result"
	EventFileChange EventKind = "file_change"
	EventTerminal   EventKind = "terminal"
	EventCompleted  EventKind = "completed"
	EventError      EventKind = "error"
)

// Event is one progress observation streamed during Execute.
type Event struct {
	Kind      EventKind
	TurnID    string
	Timestamp time.Time
	Content   string
	ToolName  string
	FilePath  string
}

// emit delivers an event through the context's sink, stamping the time
// when unset.
func (ac *Context) emit(e Event) {
	if ac.OnEvent == nil {
		return
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	ac.OnEvent(e)
}
