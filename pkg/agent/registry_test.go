package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreds struct {
	keys map[string]string
}

func (f *fakeCreds) ProviderKey(_ context.Context, provider string) (string, error) {
	return f.keys[provider], nil
}

func testManifest(kind string, providers []string) Manifest {
	return Manifest{
		Kind:            kind,
		Providers:       providers,
		DefaultProvider: firstOrEmpty(providers),
		New: func() (Strategy, error) {
			return NewStubStrategy(nil, nil), nil
		},
	}
}

func firstOrEmpty(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

func TestFactory_ResolveHappyPath(t *testing.T) {
	f := NewFactory(&fakeCreds{keys: map[string]string{"anthropic": "sk-test"}})
	f.Register(testManifest("runner", []string{"anthropic", "openai"}))

	resolved, err := f.Resolve(context.Background(), Selection{Kind: "runner", Provider: "anthropic", Model: "opus"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", resolved.Provider)
	assert.Equal(t, "opus", resolved.Model)
	assert.Equal(t, "sk-test", resolved.APIKey)
	assert.NotNil(t, resolved.Strategy)
}

func TestFactory_DefaultProvider(t *testing.T) {
	f := NewFactory(&fakeCreds{keys: map[string]string{"anthropic": "sk-test"}})
	f.Register(testManifest("runner", []string{"anthropic", "openai"}))

	resolved, err := f.Resolve(context.Background(), Selection{Kind: "runner"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", resolved.Provider)
}

func TestFactory_MissingCredentials(t *testing.T) {
	f := NewFactory(&fakeCreds{keys: map[string]string{}})
	f.Register(testManifest("runner", []string{"anthropic"}))

	_, err := f.Resolve(context.Background(), Selection{Kind: "runner", Provider: "anthropic"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestFactory_UnknownKind(t *testing.T) {
	f := NewFactory(&fakeCreds{})

	_, err := f.Resolve(context.Background(), Selection{Kind: "nope"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestFactory_UnsupportedProvider(t *testing.T) {
	f := NewFactory(&fakeCreds{keys: map[string]string{"google": "key"}})
	f.Register(testManifest("runner", []string{"anthropic"}))

	_, err := f.Resolve(context.Background(), Selection{Kind: "runner", Provider: "google"})
	assert.ErrorContains(t, err, "does not support provider")
}

func TestFactory_ProviderAgnosticKindNeedsNoCredentials(t *testing.T) {
	f := NewFactory(&fakeCreds{})
	f.Register(testManifest("stub", nil))

	resolved, err := f.Resolve(context.Background(), Selection{Kind: "stub"})
	require.NoError(t, err)
	assert.Empty(t, resolved.APIKey)
}
