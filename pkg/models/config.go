package models

// Typed payloads for the Config Store. Fields named Encrypted* hold
// ciphertext produced by the crypto boundary; the store never sees plaintext
// secrets.

// ForgeConfig is the source-forge integration configuration.
type ForgeConfig struct {
	AppID                  string   `json:"app_id"`
	InstallationID         string   `json:"installation_id"`
	EncryptedPrivateKey    string   `json:"encrypted_private_key"`
	EncryptedWebhookSecret string   `json:"encrypted_webhook_secret"`
	Repositories           []string `json:"repositories"`
}

// ChatConfig is the chat-platform integration configuration.
type ChatConfig struct {
	EncryptedSigningSecret string `json:"encrypted_signing_secret"`
	EncryptedBotToken      string `json:"encrypted_bot_token"`
}

// LLMProviders lists every provider the engine knows how to carry a key for.
var LLMProviders = []string{
	"anthropic", "openai", "google", "groq",
	"deepseek", "mistral", "together", "fireworks",
}

// LLMConfig carries one optional encrypted key per provider.
type LLMConfig struct {
	EncryptedKeys map[string]string `json:"encrypted_keys"`
}

// AvailableProviders returns the providers that have a key configured.
func (c *LLMConfig) AvailableProviders() []string {
	if c == nil || len(c.EncryptedKeys) == 0 {
		return nil
	}
	var out []string
	for _, p := range LLMProviders {
		if c.EncryptedKeys[p] != "" {
			out = append(out, p)
		}
	}
	return out
}

// HasProvider reports whether a key is configured for the provider.
func (c *LLMConfig) HasProvider(provider string) bool {
	if c == nil {
		return false
	}
	return c.EncryptedKeys[provider] != ""
}

// AuthSettings is consumed by the auth subsystem; the core only stores it.
type AuthSettings struct {
	AllowedDomains  []string `json:"allowed_domains,omitempty"`
	AllowedEmails   []string `json:"allowed_emails,omitempty"`
	DefaultPolicyID string   `json:"default_policy_id,omitempty"`
}

// SystemDefaults is the system-defaults configuration row.
type SystemDefaults struct {
	AgentKind         string       `json:"agent_kind"`
	Provider          string       `json:"provider"`
	Model             string       `json:"model"`
	DefaultRepository string       `json:"default_repository"`
	DefaultBranch     string       `json:"default_branch"`
	ForgeOrg          string       `json:"forge_org"`
	Auth              AuthSettings `json:"auth"`
}
