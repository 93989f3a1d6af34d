package masking

import "regexp"

// CompiledPattern holds a pre-compiled regex with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns covers the credentials an agent run is most likely to leak
// into its transcript: provider API keys, bearer headers, token-bearing clone
// URLs, and private key blocks. Patterns are applied in order; the clone-URL
// pattern must run before the generic token ones so the URL shape survives.
func builtinPatterns() []*CompiledPattern {
	return []*CompiledPattern{
		{
			Name:        "clone_url_token",
			Regex:       regexp.MustCompile(`(https?://)(?:x-access-token|oauth2)?:?[A-Za-z0-9_\-]{8,}@`),
			Replacement: "${1}***@",
		},
		{
			Name:        "anthropic_api_key",
			Regex:       regexp.MustCompile(`sk-ant-[A-Za-z0-9_\-]{16,}`),
			Replacement: "***MASKED_API_KEY***",
		},
		{
			Name:        "openai_api_key",
			Regex:       regexp.MustCompile(`sk-[A-Za-z0-9_\-]{20,}`),
			Replacement: "***MASKED_API_KEY***",
		},
		{
			Name:        "forge_token",
			Regex:       regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{16,}`),
			Replacement: "***MASKED_TOKEN***",
		},
		{
			Name:        "chat_token",
			Regex:       regexp.MustCompile(`xox[baprs]-[A-Za-z0-9\-]{10,}`),
			Replacement: "***MASKED_TOKEN***",
		},
		{
			Name:        "bearer_header",
			Regex:       regexp.MustCompile(`(?i)(authorization:\s*bearer\s+)[A-Za-z0-9._\-]+`),
			Replacement: "${1}***MASKED***",
		},
		{
			Name:        "private_key_block",
			Regex:       regexp.MustCompile(`(?s)-----BEGIN [A-Z ]*PRIVATE KEY-----.*?-----END [A-Z ]*PRIVATE KEY-----`),
			Replacement: "***MASKED_PRIVATE_KEY***",
		},
	}
}
