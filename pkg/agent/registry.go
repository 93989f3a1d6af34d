package agent

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownKind is returned when no manifest matches the selected kind.
var ErrUnknownKind = errors.New("unknown agent kind")

// ErrMissingCredentials is returned when the resolved provider has no
// usable credential configured.
var ErrMissingCredentials = errors.New("missing provider credentials")

// CredentialSource resolves a provider name to a decrypted API key.
// Implemented over the config store plus the crypto boundary.
type CredentialSource interface {
	ProviderKey(ctx context.Context, provider string) (string, error)
}

// Manifest declares one installable agent kind.
type Manifest struct {
	Kind string

	// Providers the strategy can run on; empty means provider-agnostic
	// (no credential required).
	Providers []string

	// DefaultProvider is used when the selection names no provider.
	DefaultProvider string

	// New builds a fresh single-use Strategy instance.
	New func() (Strategy, error)
}

// Factory resolves agent selections to runnable Strategy instances.
type Factory struct {
	mu        sync.RWMutex
	manifests map[string]Manifest
	creds     CredentialSource
}

// NewFactory creates a Factory backed by the given credential source.
func NewFactory(creds CredentialSource) *Factory {
	return &Factory{
		manifests: make(map[string]Manifest),
		creds:     creds,
	}
}

// Register installs a manifest. Later registrations replace earlier ones
// of the same kind.
func (f *Factory) Register(m Manifest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.manifests[m.Kind] = m
}

// Kinds returns the registered agent kinds, sorted.
func (f *Factory) Kinds() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	kinds := make([]string, 0, len(f.manifests))
	for k := range f.manifests {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Resolved pairs a runnable strategy with the fully-resolved selection
// and credential that Execute should use.
type Resolved struct {
	Strategy Strategy
	Kind     string
	Provider string
	Model    string
	APIKey   string
}

// Resolve builds a Strategy for the selection. It fails when the kind is
// unregistered, the provider is unsupported, or the provider's credential
// is absent.
func (f *Factory) Resolve(ctx context.Context, sel Selection) (*Resolved, error) {
	f.mu.RLock()
	m, ok := f.manifests[sel.Kind]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, sel.Kind)
	}

	provider := sel.Provider
	if provider == "" {
		provider = m.DefaultProvider
	}

	apiKey := ""
	if len(m.Providers) > 0 {
		if !containsString(m.Providers, provider) {
			return nil, fmt.Errorf("agent kind %q does not support provider %q", sel.Kind, provider)
		}
		key, err := f.creds.ProviderKey(ctx, provider)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve credentials for provider %q: %w", provider, err)
		}
		if key == "" {
			return nil, fmt.Errorf("%w: provider %q", ErrMissingCredentials, provider)
		}
		apiKey = key
	}

	strategy, err := m.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create %q strategy: %w", sel.Kind, err)
	}
	return &Resolved{
		Strategy: strategy,
		Kind:     sel.Kind,
		Provider: provider,
		Model:    sel.Model,
		APIKey:   apiKey,
	}, nil
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
