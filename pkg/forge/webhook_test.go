package forge

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWebhook_IssueLabeled(t *testing.T) {
	body := []byte(`{
		"action": "labeled",
		"label": {"name": "engine:runner"},
		"issue": {
			"id": 99, "number": 7, "title": "Add /health endpoint",
			"body": "please add it", "state": "open",
			"html_url": "https://example.com/acme/api/issues/7",
			"labels": [{"name": "engine:runner"}, {"name": "bug"}]
		},
		"repository": {"full_name": "acme/api"},
		"sender": {"id": 42, "login": "alice", "type": "User"}
	}`)

	event, err := DecodeWebhook("issues", body)
	require.NoError(t, err)
	assert.Equal(t, WebhookIssueLabeled, event.Kind)
	assert.Equal(t, "acme/api", event.Repository)
	assert.Equal(t, 7, event.IssueNumber)
	assert.Equal(t, "engine:runner", event.Label)
	assert.Equal(t, []string{"engine:runner", "bug"}, event.Labels)
	assert.Equal(t, "alice", event.ActorName)
	assert.False(t, event.ActorIsBot)
}

func TestDecodeWebhook_IssueComment(t *testing.T) {
	body := []byte(`{
		"action": "created",
		"issue": {"number": 7},
		"comment": {"body": "also log requests"},
		"repository": {"full_name": "acme/api"},
		"sender": {"id": 42, "login": "alice", "type": "User"}
	}`)

	event, err := DecodeWebhook("issue_comment", body)
	require.NoError(t, err)
	assert.Equal(t, WebhookIssueComment, event.Kind)
	assert.Equal(t, "also log requests", event.CommentBody)
}

func TestDecodeWebhook_BotSenderFlagged(t *testing.T) {
	body := []byte(`{
		"action": "created",
		"issue": {"number": 7},
		"comment": {"body": "🤖 Working on this now."},
		"repository": {"full_name": "acme/api"},
		"sender": {"id": 1, "login": "patchwork[bot]", "type": "Bot"}
	}`)

	event, err := DecodeWebhook("issue_comment", body)
	require.NoError(t, err)
	assert.True(t, event.ActorIsBot)
}

func TestDecodeWebhook_UnhandledActionIgnored(t *testing.T) {
	event, err := DecodeWebhook("issues", []byte(`{"action": "closed", "repository": {"full_name": "acme/api"}}`))
	require.NoError(t, err)
	assert.Equal(t, WebhookIgnored, event.Kind)

	event, err = DecodeWebhook("push", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, WebhookIgnored, event.Kind)
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "s3cret"
	body := []byte(`{"action":"opened"}`)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	valid := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifyWebhookSignature(secret, body, valid))
	assert.False(t, VerifyWebhookSignature(secret, body, "sha256=deadbeef"))
	assert.False(t, VerifyWebhookSignature(secret, body, ""))
	assert.False(t, VerifyWebhookSignature("wrong", body, valid))
}
