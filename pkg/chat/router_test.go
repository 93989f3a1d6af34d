package chat

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchwork-dev/patchwork/ent"
	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/services"
)

type fakeRequests struct {
	byThread map[string]*ent.Request
	byIssue  map[string]*ent.Request
}

func (f *fakeRequests) FindFollowUpTargetInChatThread(_ context.Context, channel, threadKey string) (*ent.Request, error) {
	if r, ok := f.byThread[channel+"/"+threadKey]; ok {
		return r, nil
	}
	return nil, services.ErrNotFound
}

func (f *fakeRequests) FindByForgeIssue(_ context.Context, repo string, number int) (*ent.Request, error) {
	if r, ok := f.byIssue[fmt.Sprintf("%s#%d", repo, number)]; ok {
		return r, nil
	}
	return nil, services.ErrNotFound
}

type fakeConfig struct {
	defaults *models.SystemDefaults
	forge    *models.ForgeConfig
}

func (f *fakeConfig) GetSystemDefaults(context.Context) (*models.SystemDefaults, error) {
	if f.defaults == nil {
		return nil, services.ErrNotFound
	}
	return f.defaults, nil
}

func (f *fakeConfig) GetForge(context.Context) (*models.ForgeConfig, error) {
	if f.forge == nil {
		return nil, services.ErrNotFound
	}
	return f.forge, nil
}

type fakeQueue struct {
	envelopes []models.Envelope
}

func (f *fakeQueue) Enqueue(_ context.Context, env models.Envelope) error {
	f.envelopes = append(f.envelopes, env)
	return nil
}

func newTestRouter(reqs *fakeRequests, cfg *fakeConfig) (*Router, *fakeQueue) {
	if reqs.byThread == nil {
		reqs.byThread = map[string]*ent.Request{}
	}
	if reqs.byIssue == nil {
		reqs.byIssue = map[string]*ent.Request{}
	}
	q := &fakeQueue{}
	return NewRouter(reqs, cfg, q), q
}

func strPtr(s string) *string { return &s }

func TestParseInlineOptions(t *testing.T) {
	opts, text := ParseInlineOptions("add auth [repo=acme/api, branch=main, type=feature, agent=runner:anthropic:opus] please")
	assert.Equal(t, "acme/api", opts.Repo)
	assert.Equal(t, "main", opts.Branch)
	assert.Equal(t, "feature", opts.Type)
	assert.Equal(t, models.AgentHint{Kind: "runner", Provider: "anthropic", Model: "opus"}, opts.Agent)
	assert.Equal(t, "add auth  please", text)
}

func TestParseInlineOptions_NoBlock(t *testing.T) {
	opts, text := ParseInlineOptions("  just a request  ")
	assert.Empty(t, opts.Repo)
	assert.Equal(t, "just a request", text)
}

func TestRouteChat_CreatesWhenThreadHasNoRequest(t *testing.T) {
	router, q := newTestRouter(&fakeRequests{}, &fakeConfig{
		defaults: &models.SystemDefaults{DefaultRepository: "acme/api"},
	})

	env, err := router.RouteChat(context.Background(), Utterance{
		Channel: "C1", ThreadKey: "T1", UserID: "U1",
		Text: "add /health endpoint",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VariantRequestCreateFromChat, env.Variant)
	assert.Equal(t, "chat:C1:T1", env.CorrelationKey)
	require.Len(t, q.envelopes, 1)

	var payload models.CreateFromChatPayload
	require.NoError(t, models.FromPayloadMap(env.Payload, &payload))
	assert.Equal(t, "acme/api", payload.Repository)
	assert.Equal(t, "add /health endpoint", payload.Description)
}

func TestRouteChat_AnswerWhenAwaitingClarification(t *testing.T) {
	router, _ := newTestRouter(&fakeRequests{
		byThread: map[string]*ent.Request{
			"C1/T1": {ID: "req-1", Status: request.StatusAwaitingClarification},
		},
	}, &fakeConfig{})

	env, err := router.RouteChat(context.Background(), Utterance{
		Channel: "C1", ThreadKey: "T1", UserID: "U1", Text: "tailwind",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VariantChatClarificationAnswer, env.Variant)
	assert.Equal(t, "req-1", env.RequestID)
}

func TestRouteChat_FollowUpWhenProcessingOrPRCreated(t *testing.T) {
	for _, status := range []request.Status{request.StatusProcessing, request.StatusPrCreated} {
		router, _ := newTestRouter(&fakeRequests{
			byThread: map[string]*ent.Request{
				"C1/T1": {ID: "req-2", Status: status},
			},
		}, &fakeConfig{})

		env, err := router.RouteChat(context.Background(), Utterance{
			Channel: "C1", ThreadKey: "T1", Text: "also log requests",
		})
		require.NoError(t, err)
		assert.Equal(t, models.VariantChatSuggestChanges, env.Variant, "status %s", status)
		assert.Equal(t, "req-2", env.RequestID)
	}
}

func TestRouteChat_AgentPrefixForcesNewRequest(t *testing.T) {
	router, _ := newTestRouter(&fakeRequests{
		byThread: map[string]*ent.Request{
			"C1/T1": {ID: "req-1", Status: request.StatusProcessing},
		},
	}, &fakeConfig{
		defaults: &models.SystemDefaults{DefaultRepository: "acme/api"},
	})

	env, err := router.RouteChat(context.Background(), Utterance{
		Channel: "C1", ThreadKey: "T1", Text: "Agent add dark mode",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VariantRequestCreateFromChat, env.Variant)

	var payload models.CreateFromChatPayload
	require.NoError(t, models.FromPayloadMap(env.Payload, &payload))
	assert.Equal(t, "add dark mode", payload.Description)
}

func TestRouteChat_NewOptionForcesNewRequest(t *testing.T) {
	router, _ := newTestRouter(&fakeRequests{
		byThread: map[string]*ent.Request{
			"C1/T1": {ID: "req-1", Status: request.StatusProcessing},
		},
	}, &fakeConfig{
		defaults: &models.SystemDefaults{DefaultRepository: "acme/api"},
	})

	env, err := router.RouteChat(context.Background(), Utterance{
		Channel: "C1", ThreadKey: "T1", Text: "add dark mode [new=true]",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VariantRequestCreateFromChat, env.Variant)

	var payload models.CreateFromChatPayload
	require.NoError(t, models.FromPayloadMap(env.Payload, &payload))
	assert.Equal(t, "add dark mode", payload.Description)
}

func TestParseInlineOptions_NewFlag(t *testing.T) {
	opts, _ := ParseInlineOptions("add auth [new=true]")
	assert.True(t, opts.NewRequest)

	opts, _ = ParseInlineOptions("add auth [new=false]")
	assert.False(t, opts.NewRequest)

	opts, _ = ParseInlineOptions("add auth [repo=acme/api, new=yes]")
	assert.True(t, opts.NewRequest)
	assert.Equal(t, "acme/api", opts.Repo)
}

func TestRouteChat_RepoResolutionPriority(t *testing.T) {
	// Inline beats default.
	router, _ := newTestRouter(&fakeRequests{}, &fakeConfig{
		defaults: &models.SystemDefaults{DefaultRepository: "acme/default"},
	})
	env, err := router.RouteChat(context.Background(), Utterance{
		Channel: "C1", ThreadKey: "T1", Text: "fix it [repo=acme/special]",
	})
	require.NoError(t, err)
	var payload models.CreateFromChatPayload
	require.NoError(t, models.FromPayloadMap(env.Payload, &payload))
	assert.Equal(t, "acme/special", payload.Repository)

	// Single configured repo is used when no default exists.
	router, _ = newTestRouter(&fakeRequests{}, &fakeConfig{
		forge: &models.ForgeConfig{Repositories: []string{"acme/only"}},
	})
	env, err = router.RouteChat(context.Background(), Utterance{
		Channel: "C1", ThreadKey: "T1", Text: "fix it",
	})
	require.NoError(t, err)
	require.NoError(t, models.FromPayloadMap(env.Payload, &payload))
	assert.Equal(t, "acme/only", payload.Repository)
}

func TestRouteChat_NeedsRepo(t *testing.T) {
	router, _ := newTestRouter(&fakeRequests{}, &fakeConfig{
		forge: &models.ForgeConfig{Repositories: []string{"acme/a", "acme/b"}},
	})

	_, err := router.RouteChat(context.Background(), Utterance{
		Channel: "C1", ThreadKey: "T1", Text: "fix it",
	})
	assert.ErrorIs(t, err, ErrNeedsRepo)
}

func TestRouteForgeComment_ClarificationAnswer(t *testing.T) {
	router, _ := newTestRouter(&fakeRequests{
		byIssue: map[string]*ent.Request{
			"acme/api#7": {ID: "req-3", Status: request.StatusAwaitingClarification},
		},
	}, &fakeConfig{})

	env, err := router.RouteForgeComment(context.Background(), "acme/api", 7, "use postgres", "42", "alice")
	require.NoError(t, err)
	assert.Equal(t, models.VariantChatClarificationAnswer, env.Variant)

	var payload models.UtterancePayload
	require.NoError(t, models.FromPayloadMap(env.Payload, &payload))
	assert.Equal(t, "forge", payload.Source)
}

func TestRouteForgeComment_FollowUpWhenPRExists(t *testing.T) {
	router, _ := newTestRouter(&fakeRequests{
		byIssue: map[string]*ent.Request{
			"acme/api#7": {ID: "req-4", Status: request.StatusPrCreated, PrURL: strPtr("https://example.com/pr/1")},
		},
	}, &fakeConfig{})

	env, err := router.RouteForgeComment(context.Background(), "acme/api", 7, "also log requests", "42", "alice")
	require.NoError(t, err)
	assert.Equal(t, models.VariantChatSuggestChanges, env.Variant)
}

func TestRouteForgeComment_RetryOnErrorRequest(t *testing.T) {
	router, _ := newTestRouter(&fakeRequests{
		byIssue: map[string]*ent.Request{
			"acme/api#7": {ID: "req-5", Status: request.StatusError},
		},
	}, &fakeConfig{})

	env, err := router.RouteForgeComment(context.Background(), "acme/api", 7, "retry", "42", "alice")
	require.NoError(t, err)
	assert.Equal(t, models.VariantChatRetryRequest, env.Variant)
}

func TestRouteForgeComment_IgnoredWithoutTarget(t *testing.T) {
	router, q := newTestRouter(&fakeRequests{
		byIssue: map[string]*ent.Request{
			"acme/api#7": {ID: "req-6", Status: request.StatusPending},
		},
	}, &fakeConfig{})

	// Pending with no PR: nothing to absorb.
	env, err := router.RouteForgeComment(context.Background(), "acme/api", 7, "thoughts?", "42", "alice")
	require.NoError(t, err)
	assert.Nil(t, env)

	// No request at all.
	env, err = router.RouteForgeComment(context.Background(), "acme/api", 8, "hello", "42", "alice")
	require.NoError(t, err)
	assert.Nil(t, env)
	assert.Empty(t, q.envelopes)
}
