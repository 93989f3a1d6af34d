package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/services"
	"github.com/patchwork-dev/patchwork/test/util"
)

func setupConfig(t *testing.T) *services.ConfigService {
	client, _ := util.SetupTestDatabase(t)
	return services.NewConfigService(client)
}

func TestConfigService_NotFoundBeforeUpsert(t *testing.T) {
	svc := setupConfig(t)
	ctx := context.Background()

	_, err := svc.GetForge(ctx)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = svc.GetChat(ctx)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = svc.GetSystemDefaults(ctx)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestConfigService_ForgeRoundTrip(t *testing.T) {
	svc := setupConfig(t)
	ctx := context.Background()

	cfg := &models.ForgeConfig{
		AppID:                  "12345",
		InstallationID:         "67890",
		EncryptedPrivateKey:    "enc:pem",
		EncryptedWebhookSecret: "enc:hook",
		Repositories:           []string{"acme/api", "acme/web"},
	}
	require.NoError(t, svc.UpsertForge(ctx, cfg))

	got, err := svc.GetForge(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	// Upsert replaces in place; still one row per kind.
	cfg.Repositories = []string{"acme/api"}
	require.NoError(t, svc.UpsertForge(ctx, cfg))
	got, err = svc.GetForge(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"acme/api"}, got.Repositories)
}

func TestConfigService_ChatRoundTrip(t *testing.T) {
	svc := setupConfig(t)
	ctx := context.Background()

	cfg := &models.ChatConfig{
		EncryptedSigningSecret: "enc:sign",
		EncryptedBotToken:      "enc:token",
	}
	require.NoError(t, svc.UpsertChat(ctx, cfg))

	got, err := svc.GetChat(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestConfigService_SystemDefaultsRoundTrip(t *testing.T) {
	svc := setupConfig(t)
	ctx := context.Background()

	cfg := &models.SystemDefaults{
		AgentKind:         "runner",
		Provider:          "anthropic",
		Model:             "claude-sonnet-4",
		DefaultRepository: "acme/api",
		DefaultBranch:     "main",
		ForgeOrg:          "acme",
	}
	require.NoError(t, svc.UpsertSystemDefaults(ctx, cfg))

	got, err := svc.GetSystemDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestConfigService_AvailableProviders(t *testing.T) {
	svc := setupConfig(t)
	ctx := context.Background()

	providers, err := svc.AvailableProviders(ctx)
	require.NoError(t, err)
	assert.Nil(t, providers)

	require.NoError(t, svc.UpsertLLM(ctx, &models.LLMConfig{
		EncryptedKeys: map[string]string{
			"anthropic": "enc:key1",
			"openai":    "enc:key2",
			"mistral":   "",
		},
	}))

	providers, err = svc.AvailableProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"anthropic", "openai"}, providers)
}
