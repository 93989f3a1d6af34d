package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/message"
	"github.com/patchwork-dev/patchwork/ent/queuemessage"
	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/agent"
	"github.com/patchwork-dev/patchwork/pkg/chat"
	"github.com/patchwork-dev/patchwork/pkg/config"
	"github.com/patchwork-dev/patchwork/pkg/events"
	"github.com/patchwork-dev/patchwork/pkg/forge"
	"github.com/patchwork-dev/patchwork/pkg/masking"
	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/services"
	"github.com/patchwork-dev/patchwork/pkg/workspace"
)

// RequestStore is the request persistence surface the dispatcher needs.
// Satisfied by services.RequestService.
type RequestStore interface {
	Create(ctx context.Context, req models.CreateRequestRequest) (*ent.Request, error)
	FindByRequestID(ctx context.Context, requestID string) (*ent.Request, error)
	FindByForgeIssue(ctx context.Context, repository string, issueNumber int) (*ent.Request, error)
	FindActiveInChatThread(ctx context.Context, channel, threadKey string) (*ent.Request, error)
	UpdateStatus(ctx context.Context, requestID string, newStatus request.Status, patch *models.StatusPatch) (*ent.Request, error)
	SetPullRequest(ctx context.Context, requestID, url string, number int, branch string) (*ent.Request, error)
	IncrementRetry(ctx context.Context, requestID string) (*ent.Request, error)
	SetLatestSessionID(ctx context.Context, requestID, sessionID string) error
	SyncAggregates(ctx context.Context, requestID string) (*ent.Request, error)
}

// MessageStore is the conversation-log surface the dispatcher needs.
// Satisfied by services.MessageService.
type MessageStore interface {
	Append(ctx context.Context, req models.AppendMessageRequest) (*ent.Message, error)
	Thread(ctx context.Context, requestID string) ([]*ent.Message, error)
	LastN(ctx context.Context, requestID string, n int) ([]*ent.Message, error)
}

// SessionStore is the session-blob surface the dispatcher needs.
// Satisfied by services.SessionBlobService.
type SessionStore interface {
	Put(ctx context.Context, in services.PutSessionInput) (*ent.AgentSession, error)
	GetLatest(ctx context.Context, requestID string) (*ent.AgentSession, error)
	DeleteExpired(ctx context.Context) (int, error)
}

// ConfigStore is the config-store surface the dispatcher needs.
// Satisfied by services.ConfigService.
type ConfigStore interface {
	GetSystemDefaults(ctx context.Context) (*models.SystemDefaults, error)
}

// Enqueuer enqueues follow-on messages from within handlers.
// Satisfied by Service.
type Enqueuer interface {
	Enqueue(ctx context.Context, env models.Envelope) error
	EnqueueExecute(ctx context.Context, requestID string, payload models.ExecutePayload) error
}

// WorkspaceManager provides per-execution repository clones.
// Satisfied by workspace.Manager.
type WorkspaceManager interface {
	Clone(ctx context.Context, requestID, cloneURL, branch string) (*workspace.Workspace, error)
	Remove(ws *workspace.Workspace)
}

// ChatIntake routes raw chat mentions. Satisfied by chat.Router.
type ChatIntake interface {
	RouteChat(ctx context.Context, u chat.Utterance) (*models.Envelope, error)
}

// ChatUserResolver resolves chat user IDs to display names. Satisfied by
// chat.Client.
type ChatUserResolver interface {
	UserDisplayName(ctx context.Context, userID string) (string, error)
}

// Deps bundles the handler's collaborators. Forge may be nil when the forge
// integration is unconfigured; the notifiers and event publisher are
// nil-safe.
type Deps struct {
	Requests RequestStore
	Messages MessageStore
	Sessions SessionStore
	Config   ConfigStore
	Queue    Enqueuer

	Factory   *agent.Factory
	Workspace WorkspaceManager

	Forge         forge.Client
	ForgeNotifier *forge.Notifier
	ChatNotifier  *chat.Notifier
	ChatRouter    ChatIntake
	ChatUsers     ChatUserResolver
	Events        *events.Publisher

	// Masker scrubs credentials from agent output before it is persisted or
	// broadcast. Nil disables masking.
	Masker *masking.Masker
}

// Handler routes claimed messages to their variant handlers. It implements
// Dispatcher.
type Handler struct {
	cfg    *config.QueueConfig
	deps   Deps
	logger *slog.Logger
}

// NewHandler creates the dispatcher over its collaborators.
func NewHandler(cfg *config.QueueConfig, deps Deps) *Handler {
	return &Handler{
		cfg:    cfg,
		deps:   deps,
		logger: slog.Default().With("component", "dispatcher"),
	}
}

// Handle processes one claimed message.
func (h *Handler) Handle(ctx context.Context, msg *ent.QueueMessage) error {
	switch msg.Variant {
	case queuemessage.VariantRequestCreateFromChat:
		return h.handleCreateFromChat(ctx, msg)
	case queuemessage.VariantRequestCreateFromForge:
		return h.handleCreateFromForge(ctx, msg)
	case queuemessage.VariantChatMention:
		return h.handleChatMention(ctx, msg)
	case queuemessage.VariantChatClarificationAnswer:
		return h.handleUtterance(ctx, msg, message.TypeClarificationAnswer)
	case queuemessage.VariantChatSuggestChanges:
		return h.handleUtterance(ctx, msg, message.TypeFollowUpRequest)
	case queuemessage.VariantChatRetryRequest:
		return h.handleRetry(ctx, msg)
	case queuemessage.VariantRequestExecute:
		return h.handleExecute(ctx, msg)
	case queuemessage.VariantSessionSweep:
		return h.handleSessionSweep(ctx)
	default:
		return fmt.Errorf("unroutable message variant %q", msg.Variant)
	}
}

// HandleDead transitions the owning request to error after a message
// exhausted its delivery attempts, and tells the user on every surface the
// request is correlated to.
func (h *Handler) HandleDead(ctx context.Context, msg *ent.QueueMessage, failure error) {
	if msg.RequestID == nil || *msg.RequestID == "" {
		h.logger.Error("Dead-lettered message had no request",
			"message_id", msg.ID,
			"variant", msg.Variant,
			"error", failure)
		return
	}

	req, err := h.deps.Requests.FindByRequestID(ctx, *msg.RequestID)
	if err != nil {
		h.logger.Error("Failed to load request for dead letter",
			"request_id", *msg.RequestID, "error", err)
		return
	}
	if services.IsTerminal(req.Status) {
		return
	}

	reason := fmt.Sprintf("gave up after %d attempts: %v", h.cfg.MaxAttempts, failure)
	h.failRequest(ctx, req, models.ErrCodeTransientIO, reason)
}

// ─── Creation variants ───

func (h *Handler) handleCreateFromChat(ctx context.Context, msg *ent.QueueMessage) error {
	var payload models.CreateFromChatPayload
	if err := models.FromPayloadMap(msg.Payload, &payload); err != nil {
		return fmt.Errorf("malformed create_from_chat payload: %w", err)
	}

	// Redelivery guard: the thread already owns an active request with this
	// exact ask. Re-enqueue the execution (it may have been lost with the
	// crash) and acknowledge.
	if existing, err := h.deps.Requests.FindActiveInChatThread(ctx, payload.Channel, payload.ThreadKey); err == nil &&
		existing.Description == payload.Description {
		if err := h.deps.Queue.EnqueueExecute(ctx, existing.ID, models.ExecutePayload{
			Agent:  payload.Agent,
			Reason: models.ExecuteReasonInitial,
		}); err != nil {
			return err
		}
		return fmt.Errorf("request %s already exists for thread: %w", existing.ID, ErrDuplicate)
	}

	requestID := models.NewRequestID()
	title := payload.Title
	if title == "" {
		title = deriveTitle(payload.Description)
	}
	sel := h.routeAgent(ctx, payload.Agent, nil)

	create := models.CreateRequestRequest{
		RequestID:     requestID,
		Origin:        request.OriginChat,
		Repository:    payload.Repository,
		Title:         title,
		Description:   payload.Description,
		RequestType:   payload.RequestType,
		AgentKind:     sel.Kind,
		Provider:      sel.Provider,
		Model:         sel.Model,
		ChatUserID:    payload.UserID,
		ChatChannel:   payload.Channel,
		ChatThreadKey: payload.ThreadKey,
	}

	// Track the chat request as a forge issue when the forge is wired, so
	// both surfaces converge on one conversation.
	var issue *forge.Issue
	if h.deps.Forge != nil {
		body := fmt.Sprintf("%s\n\n<sub>request: %s</sub>", payload.Description, requestID)
		created, err := h.deps.Forge.CreateIssue(ctx, payload.Repository, title, body, nil)
		if err != nil {
			return fmt.Errorf("failed to create tracking issue: %w", err)
		}
		issue = created
		create.IssueID = strconv.FormatInt(issue.ID, 10)
		create.IssueNumber = issue.Number
		create.IssueURL = issue.HTMLURL
	}

	req, err := h.deps.Requests.Create(ctx, create)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if _, err := h.deps.Messages.Append(ctx, models.AppendMessageRequest{
		RequestID: req.ID,
		Type:      message.TypeInitialRequest,
		Source:    message.SourceChat,
		Content:   payload.Description,
		ActorID:   payload.UserID,
		ActorName: payload.UserName,
	}); err != nil {
		return err
	}

	if issue != nil {
		if _, err := h.deps.Requests.UpdateStatus(ctx, req.ID, request.StatusIssueCreated, &models.StatusPatch{
			LogContent: fmt.Sprintf("Tracking issue created: %s", issue.HTMLURL),
			Meta: map[string]interface{}{
				"issue_number": issue.Number,
				"issue_url":    issue.HTMLURL,
			},
		}); err != nil {
			return err
		}
	}

	h.deps.ChatNotifier.NotifyAccepted(ctx, req.ID, payload.Channel, payload.ThreadKey, payload.Repository)
	h.publishStatus(ctx, req.ID, "", currentStatus(issue))

	return h.deps.Queue.EnqueueExecute(ctx, req.ID, models.ExecutePayload{
		Agent:  payload.Agent,
		Reason: models.ExecuteReasonInitial,
	})
}

func (h *Handler) handleCreateFromForge(ctx context.Context, msg *ent.QueueMessage) error {
	var payload models.CreateFromForgePayload
	if err := models.FromPayloadMap(msg.Payload, &payload); err != nil {
		return fmt.Errorf("malformed create_from_forge payload: %w", err)
	}

	// Redelivery and near-simultaneous webhook deliveries: one request per
	// issue, enforced here and by the partial unique index under it.
	if existing, err := h.deps.Requests.FindByForgeIssue(ctx, payload.Repository, payload.IssueNumber); err == nil {
		if err := h.deps.Queue.EnqueueExecute(ctx, existing.ID, models.ExecutePayload{
			Reason: models.ExecuteReasonInitial,
		}); err != nil {
			return err
		}
		return fmt.Errorf("request %s already exists for issue #%d: %w", existing.ID, payload.IssueNumber, ErrDuplicate)
	}

	sel := h.routeAgent(ctx, models.AgentHint{}, payload.Labels)

	req, err := h.deps.Requests.Create(ctx, models.CreateRequestRequest{
		RequestID:   models.NewRequestID(),
		Origin:      request.OriginForgeIssue,
		Repository:  payload.Repository,
		Title:       payload.Title,
		Description: payload.Description,
		AgentKind:   sel.Kind,
		Provider:    sel.Provider,
		Model:       sel.Model,
		IssueID:     payload.IssueID,
		IssueNumber: payload.IssueNumber,
		IssueURL:    payload.IssueURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return fmt.Errorf("issue #%d raced another delivery: %w", payload.IssueNumber, ErrDuplicate)
		}
		return fmt.Errorf("failed to create request: %w", err)
	}
	if _, err := h.deps.Messages.Append(ctx, models.AppendMessageRequest{
		RequestID: req.ID,
		Type:      message.TypeInitialRequest,
		Source:    message.SourceForge,
		Content:   payload.Description,
		ActorID:   payload.ActorID,
		ActorName: payload.ActorName,
	}); err != nil {
		return err
	}

	h.publishStatus(ctx, req.ID, "", string(request.StatusPending))

	return h.deps.Queue.EnqueueExecute(ctx, req.ID, models.ExecutePayload{
		Reason: models.ExecuteReasonInitial,
	})
}

// ─── Correlated utterances ───

func (h *Handler) handleChatMention(ctx context.Context, msg *ent.QueueMessage) error {
	var payload models.MentionPayload
	if err := models.FromPayloadMap(msg.Payload, &payload); err != nil {
		return fmt.Errorf("malformed chat_mention payload: %w", err)
	}

	// The HTTP intake acknowledges the platform event inside its delivery
	// deadline and leaves name resolution to this handler. Fail-open: an
	// unresolved name leaves the actor identified by ID only.
	if payload.UserName == "" && payload.UserID != "" && h.deps.ChatUsers != nil {
		if name, err := h.deps.ChatUsers.UserDisplayName(ctx, payload.UserID); err == nil {
			payload.UserName = name
		} else {
			h.logger.Debug("Failed to resolve chat user name",
				"user_id", payload.UserID, "error", err)
		}
	}

	_, err := h.deps.ChatRouter.RouteChat(ctx, chat.Utterance{
		Channel:   payload.Channel,
		ThreadKey: payload.ThreadKey,
		UserID:    payload.UserID,
		UserName:  payload.UserName,
		Text:      payload.Text,
	})
	if errors.Is(err, chat.ErrNeedsRepo) {
		// User error, not a delivery failure. Tell them and acknowledge.
		h.deps.ChatNotifier.NotifyError(ctx, "", payload.Channel, payload.ThreadKey,
			"No target repository. Add [repo=owner/name] to your message or configure a default repository.")
		return nil
	}
	return err
}

func (h *Handler) handleUtterance(ctx context.Context, msg *ent.QueueMessage, msgType message.Type) error {
	if msg.RequestID == nil {
		return fmt.Errorf("utterance message without request id")
	}
	var payload models.UtterancePayload
	if err := models.FromPayloadMap(msg.Payload, &payload); err != nil {
		return fmt.Errorf("malformed utterance payload: %w", err)
	}

	req, err := h.deps.Requests.FindByRequestID(ctx, *msg.RequestID)
	if err != nil {
		return err
	}

	// An answer is only meaningful while the question is open. A redelivery
	// after the resumed execution already moved on is acknowledged silently.
	if msgType == message.TypeClarificationAnswer && req.Status != request.StatusAwaitingClarification {
		return fmt.Errorf("request %s is %s, not awaiting clarification: %w", req.ID, req.Status, ErrDuplicate)
	}
	if req.Status == request.StatusCompleted {
		return fmt.Errorf("request %s is completed: %w", req.ID, ErrDuplicate)
	}

	row, err := h.deps.Messages.Append(ctx, models.AppendMessageRequest{
		RequestID: req.ID,
		Type:      msgType,
		Source:    utteranceSource(payload.Source),
		Content:   payload.Content,
		ActorID:   payload.ActorID,
		ActorName: payload.ActorName,
	})
	if err != nil {
		return err
	}
	h.deps.Events.PublishMessageAppended(ctx, req.ID, row.ID, string(msgType), payload.Content)

	reason := models.ExecuteReasonFollowUp
	if msgType == message.TypeClarificationAnswer {
		reason = models.ExecuteReasonClarified
	}
	return h.deps.Queue.EnqueueExecute(ctx, req.ID, models.ExecutePayload{Reason: reason})
}

func (h *Handler) handleRetry(ctx context.Context, msg *ent.QueueMessage) error {
	if msg.RequestID == nil {
		return fmt.Errorf("retry message without request id")
	}

	req, err := h.deps.Requests.FindByRequestID(ctx, *msg.RequestID)
	if err != nil {
		return err
	}
	if req.Status != request.StatusError && req.Status != request.StatusCancelled {
		return fmt.Errorf("request %s is %s, nothing to retry: %w", req.ID, req.Status, ErrDuplicate)
	}

	if _, err := h.deps.Requests.IncrementRetry(ctx, req.ID); err != nil {
		return err
	}
	if _, err := h.deps.Requests.UpdateStatus(ctx, req.ID, request.StatusPending, &models.StatusPatch{
		LogContent: fmt.Sprintf("Retry requested (attempt %d)", req.RetryCount+1),
	}); err != nil {
		return err
	}
	h.publishStatus(ctx, req.ID, string(req.Status), string(request.StatusPending))

	return h.deps.Queue.EnqueueExecute(ctx, req.ID, models.ExecutePayload{
		Reason: models.ExecuteReasonRetry,
	})
}

// ─── Maintenance ───

func (h *Handler) handleSessionSweep(ctx context.Context) error {
	n, err := h.deps.Sessions.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		h.logger.Info("Expired agent sessions swept", "count", n)
	}
	return nil
}

// ─── Shared helpers ───

// routeAgent resolves the effective agent selection from hint, labels, and
// system defaults.
func (h *Handler) routeAgent(ctx context.Context, hint models.AgentHint, labels []string) agent.Selection {
	var defaults agent.Selection
	if d, err := h.deps.Config.GetSystemDefaults(ctx); err == nil {
		defaults = agent.Selection{Kind: d.AgentKind, Provider: d.Provider, Model: d.Model}
	}

	var hintSel *agent.Selection
	if !hint.IsZero() {
		hintSel = &agent.Selection{Kind: hint.Kind, Provider: hint.Provider, Model: hint.Model}
	}

	sel := agent.Route(hintSel, labels, defaults)
	if sel.Kind == "" {
		sel.Kind = agent.KindRunner
	}
	return sel
}

// failRequest transitions a request to error and notifies every correlated
// surface. The error code lands in the transition log's metadata alongside
// the message. Fail-open: notification errors are swallowed by the
// notifiers.
func (h *Handler) failRequest(ctx context.Context, req *ent.Request, code, reason string) {
	from := req.Status
	if _, err := h.deps.Requests.UpdateStatus(ctx, req.ID, request.StatusError, &models.StatusPatch{
		ErrorMessage: &reason,
		LogContent:   reason,
		Meta: map[string]interface{}{
			models.MetaErrorCode: code,
			models.MetaErrorMsg:  reason,
		},
	}); err != nil {
		h.logger.Error("Failed to mark request as errored",
			"request_id", req.ID, "error", err)
		return
	}
	h.publishStatus(ctx, req.ID, string(from), string(request.StatusError))
	h.notifyError(ctx, req, reason)
}

func (h *Handler) notifyError(ctx context.Context, req *ent.Request, reason string) {
	if req.ChatChannel != nil && req.ChatThreadKey != nil {
		h.deps.ChatNotifier.NotifyError(ctx, req.ID, *req.ChatChannel, *req.ChatThreadKey, reason)
	}
	if req.IssueNumber != nil {
		h.deps.ForgeNotifier.NotifyError(ctx, req.Repository, *req.IssueNumber, req.ID, reason)
	}
}

func (h *Handler) publishStatus(ctx context.Context, requestID, from, to string) {
	h.deps.Events.PublishRequestStatus(ctx, requestID, from, to)
}

// deriveTitle builds a request title from the first line of the description.
func deriveTitle(description string) string {
	line := strings.TrimSpace(description)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	const maxTitle = 72
	if len(line) > maxTitle {
		line = strings.TrimSpace(line[:maxTitle-1]) + "…"
	}
	if line == "" {
		return "Untitled request"
	}
	return line
}

// utteranceSource maps a payload source string to the message enum,
// defaulting to chat.
func utteranceSource(source string) message.Source {
	switch source {
	case "forge":
		return message.SourceForge
	case "web":
		return message.SourceWeb
	default:
		return message.SourceChat
	}
}

// currentStatus reports the post-creation status for event payloads.
func currentStatus(issue *forge.Issue) string {
	if issue != nil {
		return string(request.StatusIssueCreated)
	}
	return string(request.StatusPending)
}
