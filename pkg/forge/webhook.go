package forge

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// WebhookEventKind classifies a decoded forge delivery.
type WebhookEventKind string

const (
	WebhookIssueOpened  WebhookEventKind = "issue_opened"
	WebhookIssueLabeled WebhookEventKind = "issue_labeled"
	WebhookIssueComment WebhookEventKind = "issue_comment"
	WebhookInstallation WebhookEventKind = "installation"
	WebhookIgnored      WebhookEventKind = "ignored"
)

// WebhookEvent is the engine-facing shape of one forge delivery.
type WebhookEvent struct {
	Kind        WebhookEventKind
	Repository  string // owner/name
	IssueNumber int
	IssueID     int64
	IssueTitle  string
	IssueBody   string
	IssueURL    string
	Labels      []string
	Label       string // the label added, for issue_labeled
	CommentBody string
	ActorID     string
	ActorName   string
	ActorIsBot  bool
}

// DecodeWebhook turns a raw delivery (the X-GitHub-Event header value plus
// body) into a WebhookEvent. Unhandled event/action pairs decode to
// WebhookIgnored rather than an error.
func DecodeWebhook(eventName string, body []byte) (*WebhookEvent, error) {
	var raw struct {
		Action string `json:"action"`
		Label  struct {
			Name string `json:"name"`
		} `json:"label"`
		Issue      *rawIssue `json:"issue"`
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
		Comment struct {
			Body string `json:"body"`
		} `json:"comment"`
		Sender struct {
			ID    int64  `json:"id"`
			Login string `json:"login"`
			Type  string `json:"type"`
		} `json:"sender"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode webhook body: %w", err)
	}

	event := &WebhookEvent{
		Kind:       WebhookIgnored,
		Repository: raw.Repository.FullName,
		ActorID:    fmt.Sprintf("%d", raw.Sender.ID),
		ActorName:  raw.Sender.Login,
		ActorIsBot: raw.Sender.Type == "Bot",
	}
	if raw.Issue != nil {
		issue := raw.Issue.toIssue()
		event.IssueNumber = issue.Number
		event.IssueID = issue.ID
		event.IssueTitle = issue.Title
		event.IssueBody = issue.Body
		event.IssueURL = issue.HTMLURL
		event.Labels = issue.Labels
	}

	switch eventName {
	case "issues":
		switch raw.Action {
		case "opened":
			event.Kind = WebhookIssueOpened
		case "labeled":
			event.Kind = WebhookIssueLabeled
			event.Label = raw.Label.Name
		}
	case "issue_comment":
		if raw.Action == "created" {
			event.Kind = WebhookIssueComment
			event.CommentBody = raw.Comment.Body
		}
	case "installation", "installation_repositories":
		event.Kind = WebhookInstallation
	}
	return event, nil
}

// VerifyWebhookSignature checks the X-Hub-Signature-256 header against the
// shared webhook secret.
func VerifyWebhookSignature(secret string, body []byte, signatureHeader string) bool {
	const prefix = "sha256="
	if len(signatureHeader) <= len(prefix) || signatureHeader[:len(prefix)] != prefix {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signatureHeader[len(prefix):]))
}
