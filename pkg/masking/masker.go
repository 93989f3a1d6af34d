// Package masking scrubs credentials from agent output before it reaches the
// conversation log or any notification surface. Agent transcripts quote tool
// output verbatim, and tool output routinely echoes environment variables,
// clone URLs, and HTTP headers.
package masking

import "strings"

// Masker applies the built-in credential patterns to free-form text.
// A nil *Masker is a no-op, matching the notifier convention elsewhere.
type Masker struct {
	patterns []*CompiledPattern

	// extra holds per-deployment secrets (decrypted config values) that must
	// never appear verbatim, regardless of shape.
	extra []string
}

// NewMasker builds a masker over the built-in patterns.
func NewMasker() *Masker {
	return &Masker{patterns: builtinPatterns()}
}

// AddLiteral registers a known secret value to be replaced wherever it
// appears. Values shorter than 8 bytes are ignored; masking them would
// mangle ordinary prose.
func (m *Masker) AddLiteral(secret string) {
	if m == nil || len(secret) < 8 {
		return
	}
	m.extra = append(m.extra, secret)
}

// Mask returns text with every recognized credential replaced.
func (m *Masker) Mask(text string) string {
	if m == nil || text == "" {
		return text
	}
	for _, secret := range m.extra {
		text = strings.ReplaceAll(text, secret, "***MASKED***")
	}
	for _, p := range m.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}
