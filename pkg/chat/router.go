package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/services"
)

// NewRequestPrefix forces a fresh request regardless of thread state when
// an utterance starts with it (case-insensitive).
const NewRequestPrefix = "agent "

// ErrNeedsRepo is the user-visible failure when no target repository can
// be resolved for a new request.
var ErrNeedsRepo = errors.New("no target repository: add [repo=owner/name] or configure a default")

// Enqueuer hands routed envelopes to the queue.
type Enqueuer interface {
	Enqueue(ctx context.Context, env models.Envelope) error
}

// requestStore is the slice of the request store the router reads.
// Implemented by services.RequestService.
type requestStore interface {
	FindFollowUpTargetInChatThread(ctx context.Context, channel, threadKey string) (*ent.Request, error)
	FindByForgeIssue(ctx context.Context, repository string, issueNumber int) (*ent.Request, error)
}

// configStore is the slice of the config store the router reads.
// Implemented by services.ConfigService.
type configStore interface {
	GetSystemDefaults(ctx context.Context) (*models.SystemDefaults, error)
	GetForge(ctx context.Context) (*models.ForgeConfig, error)
}

// Router correlates incoming utterances with requests and enqueues the
// matching queue variant. It never touches request state itself.
type Router struct {
	requests requestStore
	config   configStore
	queue    Enqueuer
	logger   *slog.Logger
}

// NewRouter creates the clarification / follow-up router.
func NewRouter(requests requestStore, config configStore, queue Enqueuer) *Router {
	return &Router{
		requests: requests,
		config:   config,
		queue:    queue,
		logger:   slog.Default().With("component", "chat-router"),
	}
}

// Utterance is one inbound chat message targeting a thread.
type Utterance struct {
	Channel   string
	ThreadKey string
	UserID    string
	UserName  string
	Text      string
}

// RouteChat routes a chat utterance per the correlation rules and enqueues
// the resulting message. The returned envelope reports what was enqueued.
func (r *Router) RouteChat(ctx context.Context, u Utterance) (*models.Envelope, error) {
	opts, text := ParseInlineOptions(u.Text)

	forceNew := opts.NewRequest
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(text)), NewRequestPrefix) {
		forceNew = true
		text = strings.TrimSpace(text[len(NewRequestPrefix):])
	}

	if !forceNew {
		target, err := r.requests.FindFollowUpTargetInChatThread(ctx, u.Channel, u.ThreadKey)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			return nil, fmt.Errorf("failed to correlate thread: %w", err)
		}
		if target != nil {
			return r.enqueueUtteranceFor(ctx, target, text, "chat", u.UserID, u.UserName)
		}
	}

	return r.enqueueCreateFromChat(ctx, u, opts, text)
}

// RouteForgeComment correlates a forge issue comment by (repo, issue
// number). Comments on issues without a request, or on requests that can
// absorb nothing, are ignored (nil envelope).
func (r *Router) RouteForgeComment(ctx context.Context, repository string, issueNumber int, comment, actorID, actorName string) (*models.Envelope, error) {
	target, err := r.requests.FindByForgeIssue(ctx, repository, issueNumber)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to correlate forge comment: %w", err)
	}

	trimmed := strings.TrimSpace(comment)
	if strings.EqualFold(trimmed, "retry") && target.Status == request.StatusError {
		env := models.Envelope{
			Variant:   models.VariantChatRetryRequest,
			RequestID: target.ID,
			Payload:   toPayloadMap(models.RetryPayload{ActorID: actorID, ActorName: actorName}),
		}
		return r.enqueue(ctx, env)
	}

	switch {
	case target.Status == request.StatusAwaitingClarification:
		return r.enqueueUtteranceFor(ctx, target, comment, "forge", actorID, actorName)
	case target.PrURL != nil && *target.PrURL != "":
		return r.enqueueUtteranceFor(ctx, target, comment, "forge", actorID, actorName)
	default:
		r.logger.Debug("ignoring forge comment with no correlation target",
			"repository", repository,
			"issue_number", issueNumber,
			"status", target.Status)
		return nil, nil
	}
}

func (r *Router) enqueueUtteranceFor(ctx context.Context, target *ent.Request, text, source, actorID, actorName string) (*models.Envelope, error) {
	variant := models.VariantChatSuggestChanges
	if target.Status == request.StatusAwaitingClarification {
		variant = models.VariantChatClarificationAnswer
	}
	env := models.Envelope{
		Variant:   variant,
		RequestID: target.ID,
		Payload: toPayloadMap(models.UtterancePayload{
			Content:   text,
			Source:    source,
			ActorID:   actorID,
			ActorName: actorName,
		}),
	}
	return r.enqueue(ctx, env)
}

func (r *Router) enqueueCreateFromChat(ctx context.Context, u Utterance, opts InlineOptions, text string) (*models.Envelope, error) {
	repo, err := r.resolveRepository(ctx, opts.Repo)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty request description")
	}

	env := models.Envelope{
		Variant:        models.VariantRequestCreateFromChat,
		CorrelationKey: fmt.Sprintf("chat:%s:%s", u.Channel, u.ThreadKey),
		Payload: toPayloadMap(models.CreateFromChatPayload{
			Channel:     u.Channel,
			ThreadKey:   u.ThreadKey,
			UserID:      u.UserID,
			UserName:    u.UserName,
			Repository:  repo,
			Branch:      opts.Branch,
			RequestType: opts.Type,
			Description: text,
			Agent:       opts.Agent,
		}),
	}
	return r.enqueue(ctx, env)
}

// resolveRepository applies the selection priority: inline repo, system
// default, the single configured repo, then ErrNeedsRepo.
func (r *Router) resolveRepository(ctx context.Context, inline string) (string, error) {
	if inline != "" {
		return inline, nil
	}

	defaults, err := r.config.GetSystemDefaults(ctx)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return "", fmt.Errorf("failed to load system defaults: %w", err)
	}
	if defaults != nil && defaults.DefaultRepository != "" {
		return defaults.DefaultRepository, nil
	}

	forgeCfg, err := r.config.GetForge(ctx)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return "", fmt.Errorf("failed to load forge config: %w", err)
	}
	if forgeCfg != nil && len(forgeCfg.Repositories) == 1 {
		return forgeCfg.Repositories[0], nil
	}

	return "", ErrNeedsRepo
}

func (r *Router) enqueue(ctx context.Context, env models.Envelope) (*models.Envelope, error) {
	if err := r.queue.Enqueue(ctx, env); err != nil {
		return nil, fmt.Errorf("failed to enqueue %s: %w", env.Variant, err)
	}
	return &env, nil
}

// ─── Inline options ──────────────────────────────────────────────────────

// InlineOptions are the `[k=v, …]` overrides parsed out of an utterance.
type InlineOptions struct {
	Repo       string
	Branch     string
	Type       string
	Agent      models.AgentHint
	NewRequest bool
}

var inlineOptionsRe = regexp.MustCompile(`\[([^\[\]]+=[^\[\]]*)\]`)

// ParseInlineOptions extracts inline options from an utterance and returns
// the remaining text with the option block removed. Unknown keys are
// ignored.
func ParseInlineOptions(text string) (InlineOptions, string) {
	var opts InlineOptions
	m := inlineOptionsRe.FindStringSubmatch(text)
	if m == nil {
		return opts, strings.TrimSpace(text)
	}

	for _, pair := range strings.Split(m[1], ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		switch k {
		case "repo":
			opts.Repo = v
		case "branch":
			opts.Branch = v
		case "type":
			opts.Type = strings.ToLower(v)
		case "agent":
			opts.Agent = parseAgentOverride(v)
		case "new":
			opts.NewRequest = parseOptionBool(v)
		}
	}

	remaining := strings.Replace(text, m[0], "", 1)
	return opts, strings.TrimSpace(remaining)
}

func parseOptionBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "yes", "1":
		return true
	default:
		return false
	}
}

// parseAgentOverride parses "kind", "kind:provider" or
// "kind:provider:model".
func parseAgentOverride(v string) models.AgentHint {
	parts := strings.SplitN(v, ":", 3)
	hint := models.AgentHint{Kind: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		hint.Provider = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		hint.Model = strings.TrimSpace(parts[2])
	}
	return hint
}

func toPayloadMap(v interface{}) map[string]interface{} {
	return models.ToPayloadMap(v)
}
