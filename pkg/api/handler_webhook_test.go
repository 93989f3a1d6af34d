package api

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchwork-dev/patchwork/pkg/crypto"
	"github.com/patchwork-dev/patchwork/pkg/models"
)

const testWebhookSecret = "hook-secret-for-tests"

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func webhookDeps(t *testing.T) (Deps, *fakeEnqueuer, *fakeChatIntake) {
	t.Helper()
	encryptor, err := crypto.NewEncryptor("unit-test-encryption-key")
	require.NoError(t, err)
	encSecret, err := encryptor.Encrypt(testWebhookSecret)
	require.NoError(t, err)

	enqueuer := &fakeEnqueuer{}
	intake := &fakeChatIntake{}
	deps := Deps{
		Config:     &fakeConfig{forge: &models.ForgeConfig{EncryptedWebhookSecret: encSecret}},
		Queue:      enqueuer,
		ChatRouter: intake,
		Crypto:     encryptor,
	}
	return deps, enqueuer, intake
}

func postWebhook(s *Server, eventName string, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/forge", bytes.NewReader(body))
	req.Header.Set("X-GitHub-Event", eventName)
	req.Header.Set("X-Hub-Signature-256", signature)
	return doRequest(s, req)
}

func issueOpenedBody(labels string) []byte {
	return []byte(`{
		"action": "opened",
		"issue": {
			"id": 9001,
			"number": 42,
			"title": "Fix login crash",
			"body": "Crash on expired token",
			"html_url": "https://forge.example.com/acme/api/issues/42",
			"labels": [` + labels + `]
		},
		"repository": {"full_name": "acme/api"},
		"sender": {"id": 7, "login": "alice", "type": "User"}
	}`)
}

func TestForgeWebhook_UnconfiguredIntegration(t *testing.T) {
	deps, _, _ := webhookDeps(t)
	deps.Config = &fakeConfig{}
	s := newTestServer(t, deps)

	body := issueOpenedBody(`{"name": "engine:runner"}`)
	w := postWebhook(s, "issues", body, signBody(testWebhookSecret, body))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestForgeWebhook_RejectsBadSignature(t *testing.T) {
	deps, enqueuer, _ := webhookDeps(t)
	s := newTestServer(t, deps)

	body := issueOpenedBody(`{"name": "engine:runner"}`)
	w := postWebhook(s, "issues", body, signBody("wrong-secret", body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, enqueuer.envelopes)

	w = postWebhook(s, "issues", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestForgeWebhook_IssueOpenedNeedsEngineLabel(t *testing.T) {
	deps, enqueuer, _ := webhookDeps(t)
	s := newTestServer(t, deps)

	body := issueOpenedBody(`{"name": "bug"}`)
	w := postWebhook(s, "issues", body, signBody(testWebhookSecret, body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, enqueuer.envelopes)
}

func TestForgeWebhook_IssueOpenedEnqueues(t *testing.T) {
	deps, enqueuer, _ := webhookDeps(t)
	s := newTestServer(t, deps)

	body := issueOpenedBody(`{"name": "engine:runner"}, {"name": "bug"}`)
	w := postWebhook(s, "issues", body, signBody(testWebhookSecret, body))
	assert.Equal(t, http.StatusAccepted, w.Code)

	require.Len(t, enqueuer.envelopes, 1)
	env := enqueuer.envelopes[0]
	assert.Equal(t, models.VariantRequestCreateFromForge, env.Variant)
	assert.Equal(t, "forge:acme/api#42", env.CorrelationKey)

	var payload models.CreateFromForgePayload
	require.NoError(t, models.FromPayloadMap(env.Payload, &payload))
	assert.Equal(t, "acme/api", payload.Repository)
	assert.Equal(t, 42, payload.IssueNumber)
	assert.Equal(t, "Fix login crash", payload.Title)
	assert.Equal(t, []string{"engine:runner", "bug"}, payload.Labels)
}

func TestForgeWebhook_IssueLabeledEnqueues(t *testing.T) {
	deps, enqueuer, _ := webhookDeps(t)
	s := newTestServer(t, deps)

	body := []byte(`{
		"action": "labeled",
		"label": {"name": "engine:runner"},
		"issue": {
			"id": 9001,
			"number": 42,
			"title": "Fix login crash",
			"html_url": "https://forge.example.com/acme/api/issues/42",
			"labels": [{"name": "engine:runner"}]
		},
		"repository": {"full_name": "acme/api"},
		"sender": {"id": 7, "login": "alice", "type": "User"}
	}`)
	w := postWebhook(s, "issues", body, signBody(testWebhookSecret, body))
	assert.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, enqueuer.envelopes, 1)
	assert.Equal(t, "forge:acme/api#42", enqueuer.envelopes[0].CorrelationKey)

	// An unrelated label added later is ignored.
	body = bytes.Replace(body, []byte(`"label": {"name": "engine:runner"}`), []byte(`"label": {"name": "bug"}`), 1)
	w = postWebhook(s, "issues", body, signBody(testWebhookSecret, body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, enqueuer.envelopes, 1)
}

func TestForgeWebhook_DropsBotActors(t *testing.T) {
	deps, enqueuer, intake := webhookDeps(t)
	s := newTestServer(t, deps)

	body := []byte(`{
		"action": "created",
		"issue": {"id": 9001, "number": 42, "labels": []},
		"comment": {"body": "working on it"},
		"repository": {"full_name": "acme/api"},
		"sender": {"id": 99, "login": "patchwork[bot]", "type": "Bot"}
	}`)
	w := postWebhook(s, "issue_comment", body, signBody(testWebhookSecret, body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, enqueuer.envelopes)
	assert.Empty(t, intake.comment)
}

func TestForgeWebhook_IssueCommentRoutesInline(t *testing.T) {
	deps, _, intake := webhookDeps(t)
	s := newTestServer(t, deps)

	body := []byte(`{
		"action": "created",
		"issue": {"id": 9001, "number": 42, "labels": []},
		"comment": {"body": "please also update the docs"},
		"repository": {"full_name": "acme/api"},
		"sender": {"id": 7, "login": "alice", "type": "User"}
	}`)
	w := postWebhook(s, "issue_comment", body, signBody(testWebhookSecret, body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acme/api", intake.repository)
	assert.Equal(t, 42, intake.issueNumber)
	assert.Equal(t, "please also update the docs", intake.comment)
}

func TestForgeWebhook_IgnoresUnhandledEvents(t *testing.T) {
	deps, enqueuer, _ := webhookDeps(t)
	s := newTestServer(t, deps)

	body := []byte(`{"action": "closed", "repository": {"full_name": "acme/api"}, "sender": {"id": 7, "login": "alice", "type": "User"}}`)
	w := postWebhook(s, "issues", body, signBody(testWebhookSecret, body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, enqueuer.envelopes)
}
