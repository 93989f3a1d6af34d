package agent

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	agentrunnerv1 "github.com/patchwork-dev/patchwork/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// KindRunner executes requests through the sandboxed agent-runner service
// over gRPC. This is the default production strategy.
const KindRunner = "runner"

// RunnerStrategy implements Strategy by streaming a Run call to the
// agent-runner service.
type RunnerStrategy struct {
	conn   *grpc.ClientConn
	client agentrunnerv1.AgentRunnerClient

	mu        sync.Mutex
	requestID string
}

// NewRunnerStrategy connects to the agent-runner service at addr.
func NewRunnerStrategy(addr string) (*RunnerStrategy, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent runner at %s: %w", addr, err)
	}
	return &RunnerStrategy{
		conn:   conn,
		client: agentrunnerv1.NewAgentRunnerClient(conn),
	}, nil
}

// RunnerManifest returns the manifest installing the runner strategy for
// the given providers.
func RunnerManifest(addr string, providers []string, defaultProvider string) Manifest {
	return Manifest{
		Kind:            KindRunner,
		Providers:       providers,
		DefaultProvider: defaultProvider,
		New: func() (Strategy, error) {
			return NewRunnerStrategy(addr)
		},
	}
}

func (s *RunnerStrategy) Kind() string            { return KindRunner }
func (s *RunnerStrategy) SupportsStreaming() bool { return true }

func (s *RunnerStrategy) Capabilities() Capabilities {
	return Capabilities{
		Streaming:          true,
		SessionPersistence: true,
	}
}

// Validate checks the minimum fields the runner service rejects anyway,
// so failures surface before a container spins up.
func (s *RunnerStrategy) Validate(_ context.Context, ac *Context) []error {
	var errs []error
	if ac.RequestID == "" {
		errs = append(errs, fmt.Errorf("request id is required"))
	}
	if ac.Repository == "" {
		errs = append(errs, fmt.Errorf("repository is required"))
	}
	if ac.Prompt == "" {
		errs = append(errs, fmt.Errorf("prompt is required"))
	}
	if ac.APIKey == "" {
		errs = append(errs, fmt.Errorf("provider api key is required"))
	}
	return errs
}

// Execute streams the run, forwarding progress events and assembling the
// final Result from the terminating Completed event.
func (s *RunnerStrategy) Execute(ctx context.Context, ac *Context) (*Result, error) {
	s.mu.Lock()
	s.requestID = ac.RequestID
	s.mu.Unlock()

	started := time.Now()
	stream, err := s.client.Run(ctx, toRunRequest(ac))
	if err != nil {
		return nil, fmt.Errorf("gRPC Run call failed: %w", err)
	}

	var result *Result
	var completed bool
	var lastErr *agentrunnerv1.Error
	for {
		event, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("agent runner stream failed: %w", err)
		}

		switch p := event.Payload.(type) {
		case *agentrunnerv1.RunEvent_Started:
			ac.emit(Event{Kind: EventStarted, TurnID: event.TurnId, Timestamp: eventTime(event)})
		case *agentrunnerv1.RunEvent_Thinking:
			ac.emit(Event{Kind: EventThinking, TurnID: event.TurnId, Timestamp: eventTime(event), Content: p.Thinking.Content})
		case *agentrunnerv1.RunEvent_ToolCall:
			ac.emit(Event{Kind: EventToolCall, TurnID: event.TurnId, Timestamp: eventTime(event), ToolName: p.ToolCall.Name, Content: p.ToolCall.Arguments})
		case *agentrunnerv1.RunEvent_ToolResult:
			kind := EventToolResult
			if p.ToolResult.IsError {
				kind = EventError
			}
			ac.emit(Event{Kind: kind, TurnID: event.TurnId, Timestamp: eventTime(event), ToolName: p.ToolResult.ToolName, Content: p.ToolResult.Content})
		case *agentrunnerv1.RunEvent_FileChange:
			ac.emit(Event{Kind: EventFileChange, TurnID: event.TurnId, Timestamp: eventTime(event), FilePath: p.FileChange.Path, Content: p.FileChange.ChangeType})
		case *agentrunnerv1.RunEvent_Usage:
			if result == nil {
				result = &Result{}
			}
			result.InputTokens += int(p.Usage.InputTokens)
			result.OutputTokens += int(p.Usage.OutputTokens)
			result.CostCents += int(p.Usage.CostCents)
		case *agentrunnerv1.RunEvent_Error:
			lastErr = p.Error
			ac.emit(Event{Kind: EventError, TurnID: event.TurnId, Timestamp: eventTime(event), Content: p.Error.Message})
		case *agentrunnerv1.RunEvent_Completed:
			result = mergeCompleted(result, p.Completed)
			completed = true
			ac.emit(Event{Kind: EventCompleted, TurnID: event.TurnId, Timestamp: eventTime(event), Content: p.Completed.Summary})
		}
	}

	if !completed {
		if lastErr != nil {
			return nil, fmt.Errorf("agent runner failed: %s (%s)", lastErr.Message, lastErr.Code)
		}
		return nil, fmt.Errorf("agent runner stream ended without a completion event")
	}
	if result.DurationMs == 0 {
		result.DurationMs = time.Since(started).Milliseconds()
	}
	ac.emit(Event{Kind: EventTerminal, Timestamp: time.Now()})
	return result, nil
}

// Abort asks the runner service to stop the in-flight run.
func (s *RunnerStrategy) Abort(ctx context.Context) error {
	s.mu.Lock()
	requestID := s.requestID
	s.mu.Unlock()
	if requestID == "" {
		return nil
	}

	_, err := s.client.Abort(ctx, &agentrunnerv1.AbortRequest{RequestId: requestID})
	if err != nil {
		return fmt.Errorf("gRPC Abort call failed: %w", err)
	}
	return nil
}

// Cleanup releases the gRPC connection.
func (s *RunnerStrategy) Cleanup() {
	_ = s.conn.Close()
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toRunRequest(ac *Context) *agentrunnerv1.RunRequest {
	req := &agentrunnerv1.RunRequest{
		RequestId:       ac.RequestID,
		Repository:      ac.Repository,
		WorkDir:         ac.WorkDir,
		Branch:          ac.Branch,
		Prompt:          ac.Prompt,
		ResumeSessionId: ac.ResumeSessionID,
		SessionBlob:     ac.SessionBlob,
		Provider:        ac.Provider,
		Model:           ac.Model,
		ApiKey:          ac.APIKey,
	}
	for _, m := range ac.Replay {
		req.Replay = append(req.Replay, &agentrunnerv1.ReplayMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return req
}

func mergeCompleted(result *Result, c *agentrunnerv1.Completed) *Result {
	if result == nil {
		result = &Result{}
	}
	result.Success = c.Success
	result.Output = c.Output
	result.SessionID = c.SessionId
	result.SessionBlob = c.SessionBlob
	result.UncompressedSize = int(c.UncompressedSize)
	result.FilesModified = c.FilesModified
	result.Branch = c.Branch
	result.Summary = c.Summary
	if c.DurationMs > 0 {
		result.DurationMs = c.DurationMs
	}
	return result
}

func eventTime(e *agentrunnerv1.RunEvent) time.Time {
	if e.TimestampMs == 0 {
		return time.Now()
	}
	return time.UnixMilli(e.TimestampMs)
}
