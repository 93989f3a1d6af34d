package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/agent"
	"github.com/patchwork-dev/patchwork/pkg/models"
)

func prResult(branch, sessionID string) *agent.Result {
	return &agent.Result{
		Success:          true,
		Output:           "STATUS: complete\nEXIT_SIGNAL: true\nFILES_MODIFIED: 2\nPR_READY: true",
		SessionID:        sessionID,
		SessionBlob:      []byte("blob-" + sessionID),
		UncompressedSize: 64,
		FilesModified:    []string{"auth/login.go", "auth/login_test.go"},
		Branch:           branch,
		Summary:          "Refreshed expired-token handling in the login flow",
		CostCents:        120,
		DurationMs:       3000,
	}
}

func clarifyResult() *agent.Result {
	return &agent.Result{
		Success: true,
		Output: "STATUS: needs-clarification\nCLARIFICATION_NEEDED: true\n" +
			"CLARIFICATION_QUESTIONS: Which token type is expiring? | Web or mobile clients?",
		Summary: "Need to know which token flow is affected",
	}
}

func TestChatRequestToPullRequest(t *testing.T) {
	fx := newFixture(t)
	fx.installStub([]*agent.Result{prResult("patchwork/login-fix", "sess-1")}, nil)

	fx.enqueueChatRequest("C1", "171234.5678", "Fix the login crash on expired tokens")

	row := fx.waitForThreadRequest("C1", "171234.5678", request.StatusPrCreated)
	assert.Equal(t, agent.KindStub, row.AgentKind)
	assert.Equal(t, "acme/api", row.Repository)
	assert.Equal(t, "Fix the login crash on expired tokens", row.Title)

	// Chat requests get a tracking issue so both surfaces share one thread.
	require.NotNil(t, row.IssueNumber)
	assert.Equal(t, 1, *row.IssueNumber)

	require.NotNil(t, row.PrURL)
	prs := fx.forge.pullRequests()
	require.Len(t, prs, 1)
	assert.Equal(t, prs[0].HTMLURL, *row.PrURL)
	assert.Equal(t, "patchwork/login-fix", prs[0].Branch)
	assert.Equal(t, []string{"main"}, fx.forge.prBases())

	// First turn clones the default branch.
	clones := fx.workspace.cloneLog()
	require.Len(t, clones, 1)
	assert.Equal(t, row.ID+"@main", clones[0])

	// Lifecycle lands on both surfaces: accepted + PR in chat, processing +
	// PR as issue comments.
	assert.GreaterOrEqual(t, fx.chat.postCount(), 2)
	comments := strings.Join(fx.forge.issueComments(), "\n---\n")
	assert.Contains(t, comments, "Working on this now")
	assert.Contains(t, comments, "Pull request opened")

	fx.waitForQueueDrained()
	assert.Zero(t, fx.deadMessageCount())

	// The summary's cost rolls up onto the request row.
	row = fx.waitForStatus(row.ID, request.StatusPrCreated)
	assert.Equal(t, 120, row.CostCents)
}

func TestClarificationRoundTrip(t *testing.T) {
	fx := newFixture(t)
	stub := fx.installStub([]*agent.Result{
		clarifyResult(),
		prResult("patchwork/token-fix", "sess-1"),
	}, nil)

	fx.enqueueChatRequest("C1", "171234.9999", "Sessions expire too aggressively")
	row := fx.waitForThreadRequest("C1", "171234.9999", request.StatusAwaitingClarification)

	// The questions reach the tracking issue verbatim.
	comments := strings.Join(fx.forge.issueComments(), "\n---\n")
	assert.Contains(t, comments, "Which token type is expiring?")

	err := fx.queue.Enqueue(context.Background(), models.Envelope{
		Variant:   models.VariantChatClarificationAnswer,
		RequestID: row.ID,
		Payload: models.ToPayloadMap(models.UtterancePayload{
			Content:   "JWT access tokens, web clients only",
			Source:    "chat",
			ActorID:   "U1",
			ActorName: "alice",
		}),
	})
	require.NoError(t, err)

	fx.waitForStatus(row.ID, request.StatusPrCreated)
	assert.Equal(t, 2, stub.Calls())

	// The resumed turn sees the original ask plus the answer.
	prompt := stub.LastContext().Prompt
	assert.Contains(t, prompt, "Sessions expire too aggressively")
	assert.Contains(t, prompt, "JWT access tokens, web clients only")

	fx.waitForQueueDrained()
	assert.Zero(t, fx.deadMessageCount())
}

// stuckStrategy replays the same failure every loop and never finishes on
// its own; only the circuit breaker can stop it.
type stuckStrategy struct {
	mu      sync.Mutex
	aborted bool
}

func (s *stuckStrategy) Kind() string                                     { return agent.KindStub }
func (s *stuckStrategy) SupportsStreaming() bool                          { return true }
func (s *stuckStrategy) Capabilities() agent.Capabilities                 { return agent.Capabilities{Streaming: true} }
func (s *stuckStrategy) Validate(context.Context, *agent.Context) []error { return nil }
func (s *stuckStrategy) Cleanup()                                         {}

func (s *stuckStrategy) Abort(context.Context) error {
	s.mu.Lock()
	s.aborted = true
	s.mu.Unlock()
	return nil
}

func (s *stuckStrategy) wasAborted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aborted
}

func (s *stuckStrategy) Execute(ctx context.Context, ac *agent.Context) (*agent.Result, error) {
	for i := 0; i < 8 && ctx.Err() == nil; i++ {
		if ac.OnEvent != nil {
			ac.OnEvent(agent.Event{
				Kind:    agent.EventTerminal,
				TurnID:  fmt.Sprintf("turn-%d", i),
				Content: "ERROR: connection refused by sandbox proxy",
			})
		}
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestCircuitBreakerHaltsStuckExecution(t *testing.T) {
	fx := newFixture(t)
	stuck := &stuckStrategy{}
	fx.factory.Register(agent.Manifest{
		Kind: agent.KindStub,
		New:  func() (agent.Strategy, error) { return stuck, nil },
	})

	fx.enqueueChatRequest("C1", "171235.0001", "Make the build pass")

	row := fx.waitForOnlyRequest(request.StatusError)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "circuit breaker opened")
	assert.True(t, stuck.wasAborted())

	// Five identical failure loops were observed before the trip.
	n, err := fx.messages.CountByType(context.Background(), row.ID, message.TypeAgentTerminal)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	fx.waitForQueueDrained()
	assert.Zero(t, fx.deadMessageCount())
}

func TestFollowUpAmendsExistingPullRequest(t *testing.T) {
	fx := newFixture(t)
	stub := fx.installStub([]*agent.Result{
		prResult("patchwork/docs-fix", "sess-1"),
		prResult("patchwork/docs-fix", "sess-2"),
	}, nil)

	fx.enqueueChatRequest("C1", "171236.0001", "Fix the broken install instructions")
	row := fx.waitForThreadRequest("C1", "171236.0001", request.StatusPrCreated)

	err := fx.queue.Enqueue(context.Background(), models.Envelope{
		Variant:   models.VariantChatSuggestChanges,
		RequestID: row.ID,
		Payload: models.ToPayloadMap(models.UtterancePayload{
			Content: "Please also cover the Windows setup",
			Source:  "chat",
			ActorID: "U1",
		}),
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return stub.Calls() == 2 }, 20*time.Second, 50*time.Millisecond)
	fx.waitForStatus(row.ID, request.StatusPrCreated)
	fx.waitForQueueDrained()

	// The follow-up amends the recorded PR instead of opening a second one,
	// and clones its branch so the agent continues where it left off.
	assert.Len(t, fx.forge.pullRequests(), 1)
	clones := fx.workspace.cloneLog()
	require.Len(t, clones, 2)
	assert.Equal(t, row.ID+"@patchwork/docs-fix", clones[1])

	assert.Contains(t, stub.LastContext().Prompt, "Please also cover the Windows setup")

	// The thread holds exactly one pr_created entry; the second landing
	// logs pr_updated.
	created, err := fx.messages.CountByType(context.Background(), row.ID, message.TypePrCreated)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	updated, err := fx.messages.CountByType(context.Background(), row.ID, message.TypePrUpdated)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	assert.Zero(t, fx.deadMessageCount())
}

func TestFollowUpResumesAgentSession(t *testing.T) {
	fx := newFixture(t)
	stub := fx.installStub([]*agent.Result{
		prResult("patchwork/resume", "sess-1"),
		prResult("patchwork/resume", "sess-2"),
	}, nil)

	fx.enqueueChatRequest("C1", "171237.0001", "Tighten the retry backoff")
	row := fx.waitForThreadRequest("C1", "171237.0001", request.StatusPrCreated)

	// The first turn's blob is on disk and recorded on the request.
	session, err := fx.sessions.GetLatest(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", session.SessionID)
	require.NotNil(t, row.LatestSessionID)
	assert.Equal(t, "sess-1", *row.LatestSessionID)

	err = fx.queue.Enqueue(context.Background(), models.Envelope{
		Variant:   models.VariantChatSuggestChanges,
		RequestID: row.ID,
		Payload: models.ToPayloadMap(models.UtterancePayload{
			Content: "Cap it at one minute",
			Source:  "chat",
			ActorID: "U1",
		}),
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		current, err := fx.requests.FindByRequestID(context.Background(), row.ID)
		return err == nil && current.LatestSessionID != nil && *current.LatestSessionID == "sess-2"
	}, 20*time.Second, 50*time.Millisecond, "second session never recorded")

	// The second turn resumed from the blob instead of replaying messages.
	ac := stub.LastContext()
	assert.Equal(t, "sess-1", ac.ResumeSessionID)
	assert.Equal(t, []byte("blob-sess-1"), ac.SessionBlob)
	assert.Empty(t, ac.Replay)

	fx.waitForQueueDrained()
	assert.Zero(t, fx.deadMessageCount())
}

func TestDuplicateForgeDeliveriesCreateOneRequest(t *testing.T) {
	fx := newFixture(t)
	stub := fx.installStub([]*agent.Result{prResult("patchwork/issue-7", "sess-1")}, nil)

	env := models.Envelope{
		Variant:        models.VariantRequestCreateFromForge,
		CorrelationKey: "forge:acme/api#7",
		Payload: models.ToPayloadMap(models.CreateFromForgePayload{
			Repository:  "acme/api",
			IssueID:     "9007",
			IssueNumber: 7,
			IssueURL:    "https://forge.example.com/acme/api/issues/7",
			Title:       "Flaky retry loop",
			Description: "The retry loop gives up one attempt too early",
			Labels:      []string{"bug"},
			ActorID:     "7",
			ActorName:   "alice",
		}),
	}
	require.NoError(t, fx.queue.Enqueue(context.Background(), env))
	require.NoError(t, fx.queue.Enqueue(context.Background(), env))

	row := fx.waitForOnlyRequest(request.StatusPrCreated)
	assert.Equal(t, request.OriginForgeIssue, row.Origin)
	require.NotNil(t, row.IssueNumber)
	assert.Equal(t, 7, *row.IssueNumber)

	fx.waitForQueueDrained()

	// Both deliveries settle cleanly, but only one of everything happened.
	assert.Equal(t, 1, fx.requestCount())
	assert.Equal(t, 1, stub.Calls())
	assert.Len(t, fx.forge.pullRequests(), 1)
	assert.Zero(t, fx.deadMessageCount())
}
