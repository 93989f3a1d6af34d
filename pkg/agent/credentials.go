package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/patchwork-dev/patchwork/pkg/crypto"
	"github.com/patchwork-dev/patchwork/pkg/services"
)

// ConfigCredentialSource resolves provider keys from the config store,
// decrypting through the crypto boundary.
type ConfigCredentialSource struct {
	config    *services.ConfigService
	encryptor *crypto.Encryptor
}

// NewConfigCredentialSource creates a credential source over the config
// store.
func NewConfigCredentialSource(config *services.ConfigService, encryptor *crypto.Encryptor) *ConfigCredentialSource {
	return &ConfigCredentialSource{config: config, encryptor: encryptor}
}

// ProviderKey returns the decrypted API key for the provider, or empty
// when none is configured.
func (s *ConfigCredentialSource) ProviderKey(ctx context.Context, provider string) (string, error) {
	llm, err := s.config.GetLLM(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load llm config: %w", err)
	}
	ciphertext := llm.EncryptedKeys[provider]
	if ciphertext == "" {
		return "", nil
	}

	key, err := s.encryptor.Decrypt(ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt key for provider %q: %w", provider, err)
	}
	return key, nil
}
