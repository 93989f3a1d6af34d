package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/agent"
	"github.com/patchwork-dev/patchwork/pkg/breaker"
	"github.com/patchwork-dev/patchwork/pkg/chat"
	"github.com/patchwork-dev/patchwork/pkg/events"
	"github.com/patchwork-dev/patchwork/pkg/forge"
	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/services"
)

// handleExecute runs one agent execution turn for a request: clone, resume
// or replay, execute, analyze, and land the outcome (PR, clarification,
// completion, or error).
func (h *Handler) handleExecute(ctx context.Context, msg *ent.QueueMessage) error {
	if msg.RequestID == nil {
		return fmt.Errorf("execute message without request id")
	}
	var payload models.ExecutePayload
	if err := models.FromPayloadMap(msg.Payload, &payload); err != nil {
		return fmt.Errorf("malformed execute payload: %w", err)
	}

	req, err := h.deps.Requests.FindByRequestID(ctx, *msg.RequestID)
	if err != nil {
		return err
	}

	// Idempotency: a redelivered execute whose work already landed is
	// acknowledged without side effects.
	if dup := h.executeIsDuplicate(req, payload.Reason); dup != "" {
		return fmt.Errorf("%s: %w", dup, ErrDuplicate)
	}

	from := req.Status
	req, err = h.deps.Requests.UpdateStatus(ctx, req.ID, request.StatusProcessing, nil)
	if err != nil {
		var invalid *services.InvalidTransitionError
		if errors.As(err, &invalid) {
			return fmt.Errorf("request %s cannot start processing from %s: %w", *msg.RequestID, from, ErrDuplicate)
		}
		return err
	}
	h.publishStatus(ctx, req.ID, string(from), string(request.StatusProcessing))
	if payload.Reason == models.ExecuteReasonInitial && req.IssueNumber != nil {
		h.deps.ForgeNotifier.NotifyProcessingStarted(ctx, req.Repository, *req.IssueNumber, req.ID)
	}

	// Resolve the strategy. Hint on the message outranks what intake stored
	// on the request row.
	sel := h.routeAgent(ctx, payload.Agent, nil)
	if payload.Agent.IsZero() {
		sel = agent.Selection{Kind: req.AgentKind, Provider: deref(req.Provider), Model: deref(req.Model)}
	}
	resolved, err := h.deps.Factory.Resolve(ctx, sel)
	if err != nil {
		// Configuration problem; retrying the delivery will not fix it.
		code := models.ErrCodeValidation
		if errors.Is(err, agent.ErrMissingCredentials) {
			code = models.ErrCodeIntegrationAuth
		}
		h.failRequest(ctx, req, code, fmt.Sprintf("agent unavailable: %v", err))
		return nil
	}
	defer resolved.Strategy.Cleanup()

	// Fresh clone for the turn. Follow-ups on an existing PR check out its
	// branch so the agent amends rather than restarts.
	if h.deps.Forge == nil {
		h.failRequest(ctx, req, models.ErrCodeIntegrationAuth, "forge integration is not configured")
		return nil
	}
	cloneURL, err := h.deps.Forge.CloneURL(ctx, req.Repository)
	if err != nil {
		var authErr *forge.AuthError
		if errors.As(err, &authErr) {
			h.failRequest(ctx, req, models.ErrCodeIntegrationAuth, fmt.Sprintf("forge authentication failed: %v", err))
			return nil
		}
		return fmt.Errorf("failed to resolve clone url: %w", err)
	}
	ws, err := h.deps.Workspace.Clone(ctx, req.ID, cloneURL, deref(req.PrBranchName))
	if err != nil {
		return fmt.Errorf("failed to prepare workspace: %w", err)
	}
	defer h.deps.Workspace.Remove(ws)

	ac, err := h.buildAgentContext(ctx, req, resolved, ws.Dir, ws.Branch)
	if err != nil {
		return err
	}

	analyzer := breaker.NewAnalyzer()
	execCtx, cancelExec := context.WithCancel(ctx)
	defer cancelExec()

	// Per-loop terminal events feed the circuit breaker so a stuck agent is
	// halted mid-run instead of burning the full timeout.
	halted := false
	userSink := ac.OnEvent
	ac.OnEvent = func(ev agent.Event) {
		userSink(ev)
		switch ev.Kind {
		case agent.EventFileChange:
			// Streamed edits count as progress for loops whose terminal
			// output carries no status block.
			analyzer.ObserveFileChange()
		case agent.EventTerminal:
			if _, decision := analyzer.Analyze(ev.Content); decision == breaker.DecisionHalt {
				halted = true
				cancelExec()
			}
		}
	}

	result, execErr := resolved.Strategy.Execute(execCtx, ac)

	if execErr != nil || result == nil {
		return h.settleFailedExecution(ctx, req, resolved, result, execErr, halted)
	}

	h.persistSession(ctx, req, resolved, result)

	if !result.Success {
		h.appendSummary(ctx, req, result)
		h.failRequest(ctx, req, models.ErrCodeAgentFailure, h.deps.Masker.Mask(agentFailureReason(result)))
		return nil
	}

	outcome, decision := analyzer.Analyze(result.Output)
	if decision == breaker.DecisionHalt {
		h.appendSummary(ctx, req, result)
		h.failRequest(ctx, req, models.ErrCodeCircuitOpen, fmt.Sprintf("circuit breaker opened: %s", haltReason(outcome)))
		return nil
	}
	if decision == breaker.DecisionClarify {
		return h.landClarification(ctx, req, result)
	}
	return h.landCompletion(ctx, req, result)
}

// executeIsDuplicate classifies redeliveries by request status and
// execution reason. Empty return means the execution should proceed.
func (h *Handler) executeIsDuplicate(req *ent.Request, reason string) string {
	switch req.Status {
	case request.StatusCompleted, request.StatusError, request.StatusCancelled:
		return fmt.Sprintf("request %s is already %s", req.ID, req.Status)
	case request.StatusPrCreated:
		if reason != models.ExecuteReasonFollowUp {
			return fmt.Sprintf("request %s already has a pull request", req.ID)
		}
	case request.StatusAwaitingClarification:
		if reason != models.ExecuteReasonClarified {
			return fmt.Sprintf("request %s is waiting on the user", req.ID)
		}
	}
	return ""
}

// settleFailedExecution maps a failed Execute to the error taxonomy.
// Transient failures return an error so the delivery retries; permanent
// ones transition the request and acknowledge.
func (h *Handler) settleFailedExecution(ctx context.Context, req *ent.Request, resolved *agent.Resolved, result *agent.Result, execErr error, halted bool) error {
	// The execution context is gone; abort and settle on a fresh one.
	bg := context.Background()

	switch {
	case halted:
		_ = resolved.Strategy.Abort(bg)
		h.failRequest(bg, req, models.ErrCodeCircuitOpen, "circuit breaker opened: no progress across consecutive loops")
		return nil

	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		_ = resolved.Strategy.Abort(bg)
		h.persistSession(bg, req, resolved, result)
		h.failRequest(bg, req, models.ErrCodeTimeout, fmt.Sprintf("execution timed out after %v", h.cfg.ExecuteTimeout))
		return nil

	case errors.Is(ctx.Err(), context.Canceled):
		_ = resolved.Strategy.Abort(bg)
		h.persistSession(bg, req, resolved, result)
		// An API cancel already moved the request to cancelled; anything
		// else cancelling the context is a shutdown — requeue.
		current, err := h.deps.Requests.FindByRequestID(bg, req.ID)
		if err == nil && current.Status == request.StatusCancelled {
			return nil
		}
		return fmt.Errorf("execution cancelled: %w", context.Canceled)

	default:
		// Transport or strategy infrastructure error.
		return fmt.Errorf("agent execution failed: %w", execErr)
	}
}

// buildAgentContext assembles the strategy input: prompt, credentials, and
// session resumption or conversation replay.
func (h *Handler) buildAgentContext(ctx context.Context, req *ent.Request, resolved *agent.Resolved, workDir, branch string) (*agent.Context, error) {
	prompt, err := h.composePrompt(ctx, req)
	if err != nil {
		return nil, err
	}

	ac := &agent.Context{
		RequestID:  req.ID,
		Repository: req.Repository,
		WorkDir:    workDir,
		Branch:     branch,
		Prompt:     prompt,
		Provider:   resolved.Provider,
		Model:      resolved.Model,
		APIKey:     resolved.APIKey,
		OnEvent:    h.eventSink(req.ID),
	}

	if resolved.Strategy.Capabilities().SessionPersistence && req.LatestSessionID != nil {
		if session, err := h.deps.Sessions.GetLatest(ctx, req.ID); err == nil {
			ac.ResumeSessionID = session.SessionID
			ac.SessionBlob = session.Blob
		} else if !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
	}

	if len(ac.SessionBlob) == 0 && h.cfg.ReplayMessageCount > 0 {
		rows, err := h.deps.Messages.LastN(ctx, req.ID, h.cfg.ReplayMessageCount)
		if err != nil {
			return nil, err
		}
		ac.Replay = toReplay(rows)
	}

	return ac, nil
}

// composePrompt builds the task description: the original ask plus every
// clarification answer and follow-up instruction so far, oldest first.
func (h *Handler) composePrompt(ctx context.Context, req *ent.Request) (string, error) {
	var b strings.Builder
	b.WriteString(req.Description)

	rows, err := h.deps.Messages.Thread(ctx, req.ID)
	if err != nil {
		return "", err
	}
	for _, row := range rows {
		switch row.Type {
		case message.TypeClarificationAnswer:
			fmt.Fprintf(&b, "\n\nClarification from the user:\n%s", row.Content)
		case message.TypeFollowUpRequest:
			fmt.Fprintf(&b, "\n\nFollow-up instruction:\n%s", row.Content)
		}
	}
	return b.String(), nil
}

// eventSink returns the OnEvent callback: persist durable agent activity to
// the conversation log and broadcast everything as transient progress.
func (h *Handler) eventSink(requestID string) func(agent.Event) {
	return func(ev agent.Event) {
		// Use background context — the execution ctx dies with the agent,
		// and late events (final summaries) must still land.
		ctx := context.Background()
		content := h.deps.Masker.Mask(ev.Content)

		h.deps.Events.PublishAgentProgress(ctx, requestID, events.AgentProgressPayload{
			Kind:     string(ev.Kind),
			TurnID:   ev.TurnID,
			Content:  content,
			ToolName: ev.ToolName,
			FilePath: ev.FilePath,
		})

		msgType, meta := eventLogEntry(ev)
		if msgType == "" {
			return
		}
		if _, err := h.deps.Messages.Append(ctx, models.AppendMessageRequest{
			RequestID: requestID,
			Type:      msgType,
			Source:    message.SourceSystem,
			Content:   content,
			Metadata:  meta,
		}); err != nil {
			h.logger.Warn("Failed to log agent event",
				"request_id", requestID,
				"kind", ev.Kind,
				"error", err)
		}
	}
}

// eventLogEntry maps a progress event to its conversation-log entry.
// Lifecycle-only kinds (started, completed, error) return an empty type and
// are not persisted; the transition log covers them.
func eventLogEntry(ev agent.Event) (message.Type, map[string]interface{}) {
	switch ev.Kind {
	case agent.EventThinking:
		return message.TypeAgentThinking, map[string]interface{}{models.MetaTurnID: ev.TurnID}
	case agent.EventToolCall:
		return message.TypeAgentToolCall, map[string]interface{}{
			models.MetaTurnID:   ev.TurnID,
			models.MetaToolName: ev.ToolName,
		}
	case agent.EventToolResult:
		return message.TypeAgentToolResult, map[string]interface{}{
			models.MetaTurnID:   ev.TurnID,
			models.MetaToolName: ev.ToolName,
		}
	case agent.EventFileChange:
		return message.TypeAgentFileChange, map[string]interface{}{
			models.MetaTurnID:   ev.TurnID,
			models.MetaFilePath: ev.FilePath,
		}
	case agent.EventTerminal:
		return message.TypeAgentTerminal, map[string]interface{}{models.MetaTurnID: ev.TurnID}
	default:
		return "", nil
	}
}

// persistSession stores the returned session blob for follow-up resumption.
// Fail-open: a lost blob only costs the next turn its resume.
func (h *Handler) persistSession(ctx context.Context, req *ent.Request, resolved *agent.Resolved, result *agent.Result) {
	if result == nil || result.SessionID == "" || len(result.SessionBlob) == 0 {
		return
	}
	_, err := h.deps.Sessions.Put(ctx, services.PutSessionInput{
		RequestID:        req.ID,
		SessionID:        result.SessionID,
		AgentKind:        resolved.Kind,
		Blob:             result.SessionBlob,
		UncompressedSize: result.UncompressedSize,
	})
	if err != nil && !errors.Is(err, services.ErrAlreadyExists) {
		h.logger.Warn("Failed to persist session blob",
			"request_id", req.ID, "error", err)
		return
	}
	if err := h.deps.Requests.SetLatestSessionID(ctx, req.ID, result.SessionID); err != nil {
		h.logger.Warn("Failed to record latest session",
			"request_id", req.ID, "error", err)
	}
}

// appendSummary logs the turn's summary with its cost so the aggregate
// figures stay authoritative in the thread.
func (h *Handler) appendSummary(ctx context.Context, req *ent.Request, result *agent.Result) {
	content := result.Summary
	if content == "" {
		content = truncate(result.Output, 2000)
	}
	content = h.deps.Masker.Mask(content)
	row, err := h.deps.Messages.Append(ctx, models.AppendMessageRequest{
		RequestID: req.ID,
		Type:      message.TypeAgentSummary,
		Source:    message.SourceSystem,
		Content:   content,
		Metadata: map[string]interface{}{
			models.MetaCostCents:   result.CostCents,
			models.MetaDurationMs:  result.DurationMs,
			models.MetaFilesChange: len(result.FilesModified),
		},
	})
	if err != nil {
		h.logger.Warn("Failed to log agent summary", "request_id", req.ID, "error", err)
		return
	}
	h.deps.Events.PublishMessageAppended(ctx, req.ID, row.ID, string(message.TypeAgentSummary), content)
	if _, err := h.deps.Requests.SyncAggregates(ctx, req.ID); err != nil {
		h.logger.Warn("Failed to sync aggregates", "request_id", req.ID, "error", err)
	}
}

// landClarification parks the request on the user's answer.
func (h *Handler) landClarification(ctx context.Context, req *ent.Request, result *agent.Result) error {
	questions := clarificationQuestions(result.Output)

	h.appendSummary(ctx, req, result)
	if _, err := h.deps.Requests.UpdateStatus(ctx, req.ID, request.StatusAwaitingClarification, &models.StatusPatch{
		LogContent: "Clarification needed:\n- " + strings.Join(questions, "\n- "),
		Meta:       map[string]interface{}{"questions": questions},
	}); err != nil {
		return err
	}
	h.publishStatus(ctx, req.ID, string(request.StatusProcessing), string(request.StatusAwaitingClarification))

	if req.ChatChannel != nil && req.ChatThreadKey != nil {
		h.deps.ChatNotifier.NotifyClarification(ctx, req.ID, *req.ChatChannel, *req.ChatThreadKey, questions)
	}
	if req.IssueNumber != nil {
		h.deps.ForgeNotifier.NotifyClarification(ctx, req.Repository, *req.IssueNumber, req.ID, questions)
	}
	return nil
}

// landCompletion finishes a successful turn: open or update the pull
// request when the agent pushed a branch, otherwise complete without code
// changes.
func (h *Handler) landCompletion(ctx context.Context, req *ent.Request, result *agent.Result) error {
	h.appendSummary(ctx, req, result)
	now := time.Now()

	if result.Branch == "" && len(result.FilesModified) == 0 {
		if _, err := h.deps.Requests.UpdateStatus(ctx, req.ID, request.StatusCompleted, &models.StatusPatch{
			LogContent:  completionLog(result),
			ProcessedAt: &now,
		}); err != nil {
			return err
		}
		h.publishStatus(ctx, req.ID, string(request.StatusProcessing), string(request.StatusCompleted))

		if req.ChatChannel != nil && req.ChatThreadKey != nil {
			h.deps.ChatNotifier.NotifyCompleted(ctx, req.ID, *req.ChatChannel, *req.ChatThreadKey, result.Summary)
		}
		if req.IssueNumber != nil {
			h.deps.ForgeNotifier.NotifyCompleted(ctx, req.Repository, *req.IssueNumber, req.ID, result.Summary)
		}
		return nil
	}

	pr, updated, err := h.ensurePullRequest(ctx, req, result)
	if err != nil {
		var authErr *forge.AuthError
		if errors.As(err, &authErr) {
			h.failRequest(ctx, req, models.ErrCodeIntegrationAuth, fmt.Sprintf("forge authentication failed: %v", err))
			return nil
		}
		return err
	}

	logContent := fmt.Sprintf("Pull request created: %s", pr.HTMLURL)
	logType := message.TypePrCreated
	if updated {
		logContent = fmt.Sprintf("Pull request updated: %s", pr.HTMLURL)
		logType = message.TypePrUpdated
	}
	if _, err := h.deps.Requests.UpdateStatus(ctx, req.ID, request.StatusPrCreated, &models.StatusPatch{
		LogContent:  logContent,
		LogType:     logType,
		ProcessedAt: &now,
		Meta: map[string]interface{}{
			models.MetaPRURL:      pr.HTMLURL,
			models.MetaPRNumber:   pr.Number,
			models.MetaBranchName: result.Branch,
		},
	}); err != nil {
		return err
	}
	h.publishStatus(ctx, req.ID, string(request.StatusProcessing), string(request.StatusPrCreated))

	if req.ChatChannel != nil && req.ChatThreadKey != nil {
		h.deps.ChatNotifier.NotifyPullRequest(ctx, chat.PullRequestInput{
			RequestID:     req.ID,
			Channel:       *req.ChatChannel,
			ThreadKey:     *req.ChatThreadKey,
			PRURL:         pr.HTMLURL,
			Summary:       result.Summary,
			FilesModified: len(result.FilesModified),
			CostCents:     result.CostCents,
			DurationMs:    result.DurationMs,
			Updated:       updated,
		})
	}
	if req.IssueNumber != nil {
		h.deps.ForgeNotifier.NotifyPullRequest(ctx, req.Repository, *req.IssueNumber, req.ID, pr.HTMLURL, result.Summary, updated)
	}
	return nil
}

// ensurePullRequest resolves the turn's pull request exactly once: reuse
// the request's recorded PR, adopt one already open for the branch (a
// crashed turn may have gotten that far), or open a new one.
func (h *Handler) ensurePullRequest(ctx context.Context, req *ent.Request, result *agent.Result) (*forge.PullRequest, bool, error) {
	if req.PrURL != nil && *req.PrURL != "" {
		return &forge.PullRequest{
			Number:  deref(req.PrNumber),
			HTMLURL: *req.PrURL,
			Branch:  deref(req.PrBranchName),
		}, true, nil
	}

	if existing, err := h.deps.Forge.FindPullRequestByBranch(ctx, req.Repository, result.Branch); err == nil && existing != nil {
		if _, err := h.deps.Requests.SetPullRequest(ctx, req.ID, existing.HTMLURL, existing.Number, result.Branch); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	base := ""
	if defaults, err := h.deps.Config.GetSystemDefaults(ctx); err == nil {
		base = defaults.DefaultBranch
	}
	if base == "" {
		base = "main"
	}

	body := prBody(req, result)
	pr, err := h.deps.Forge.CreatePullRequest(ctx, req.Repository, req.Title, body, result.Branch, base)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create pull request: %w", err)
	}
	if _, err := h.deps.Requests.SetPullRequest(ctx, req.ID, pr.HTMLURL, pr.Number, result.Branch); err != nil {
		return nil, false, err
	}
	return pr, false, nil
}

// ─── Small helpers ───

func prBody(req *ent.Request, result *agent.Result) string {
	var b strings.Builder
	if result.Summary != "" {
		b.WriteString(result.Summary)
		b.WriteString("\n")
	}
	if req.IssueNumber != nil {
		fmt.Fprintf(&b, "\nCloses #%d\n", *req.IssueNumber)
	}
	fmt.Fprintf(&b, "\n<sub>request: %s</sub>", req.ID)
	return b.String()
}

func completionLog(result *agent.Result) string {
	if result.Summary != "" {
		return "Completed: " + result.Summary
	}
	return "Completed without code changes"
}

func agentFailureReason(result *agent.Result) string {
	if sig := breaker.ExtractErrorSignature(result.Output); sig != "" {
		return "agent failed: " + truncate(sig, 400)
	}
	if result.Summary != "" {
		return "agent failed: " + truncate(result.Summary, 400)
	}
	return "agent reported failure without detail"
}

func haltReason(outcome breaker.LoopOutcome) string {
	if outcome.ErrorSignature != "" {
		return "repeated identical errors: " + truncate(outcome.ErrorSignature, 400)
	}
	return "no progress across consecutive loops"
}

// clarificationQuestions pulls the question list from the status block,
// falling back to a generic prompt when the agent gave none.
func clarificationQuestions(output string) []string {
	if block, ok := breaker.ParseStatusBlock(output); ok && len(block.ClarificationQuestions) > 0 {
		return block.ClarificationQuestions
	}
	return []string{"The agent needs more detail about the request. Could you elaborate?"}
}

func toReplay(rows []*ent.Message) []agent.ReplayMessage {
	out := make([]agent.ReplayMessage, 0, len(rows))
	for _, row := range rows {
		role := "assistant"
		switch row.Type {
		case message.TypeInitialRequest, message.TypeClarificationAnswer, message.TypeFollowUpRequest:
			role = "user"
		}
		out = append(out, agent.ReplayMessage{Role: role, Content: row.Content})
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func deref[T any](p *T) (v T) {
	if p != nil {
		v = *p
	}
	return v
}
