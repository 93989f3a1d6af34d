package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/patchwork-dev/patchwork/pkg/forge"
	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/services"
)

// maxWebhookBody bounds webhook payloads; forge deliveries are small.
const maxWebhookBody = 1 << 20

// engineLabelPrefix marks forge labels that trigger or configure a request.
const engineLabelPrefix = "engine:"

// forgeWebhookHandler handles POST /webhook/forge. Verification and
// decoding happen inline; everything else is enqueued so the forge gets its
// ack within the delivery timeout.
func (s *Server) forgeWebhookHandler(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	secret, err := s.decryptedForgeSecret(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "forge integration is not configured"})
			return
		}
		abortWithServiceError(c, err)
		return
	}
	if !forge.VerifyWebhookSignature(secret, body, c.GetHeader("X-Hub-Signature-256")) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "signature verification failed"})
		return
	}

	event, err := forge.DecodeWebhook(c.GetHeader("X-GitHub-Event"), body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed webhook payload"})
		return
	}

	// The engine's own comments echo back as deliveries; bot actors are
	// dropped to break the loop.
	if event.ActorIsBot {
		c.JSON(http.StatusOK, ackIgnored)
		return
	}

	switch event.Kind {
	case forge.WebhookIssueOpened:
		if !hasEngineLabel(event.Labels) {
			c.JSON(http.StatusOK, ackIgnored)
			return
		}
		s.enqueueForgeCreate(c, event)

	case forge.WebhookIssueLabeled:
		if !strings.HasPrefix(event.Label, engineLabelPrefix) {
			c.JSON(http.StatusOK, ackIgnored)
			return
		}
		s.enqueueForgeCreate(c, event)

	case forge.WebhookIssueComment:
		// Correlation is cheap (one indexed lookup plus an insert), so it
		// runs inline; uncorrelated comments are simply ignored.
		if _, err := s.deps.ChatRouter.RouteForgeComment(c.Request.Context(),
			event.Repository, event.IssueNumber, event.CommentBody, event.ActorID, event.ActorName); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, ackAccepted)

	default:
		c.JSON(http.StatusOK, ackIgnored)
	}
}

// enqueueForgeCreate enqueues a request_create_from_forge message keyed by
// issue so duplicate deliveries collapse in the dispatcher.
func (s *Server) enqueueForgeCreate(c *gin.Context, event *forge.WebhookEvent) {
	env := models.Envelope{
		Variant:        models.VariantRequestCreateFromForge,
		CorrelationKey: fmt.Sprintf("forge:%s#%d", event.Repository, event.IssueNumber),
		Payload: models.ToPayloadMap(models.CreateFromForgePayload{
			Repository:  event.Repository,
			IssueID:     strconv.FormatInt(event.IssueID, 10),
			IssueNumber: event.IssueNumber,
			IssueURL:    event.IssueURL,
			Title:       event.IssueTitle,
			Description: event.IssueBody,
			Labels:      event.Labels,
			ActorID:     event.ActorID,
			ActorName:   event.ActorName,
		}),
	}
	if err := s.deps.Queue.Enqueue(c.Request.Context(), env); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, ackAccepted)
}

func hasEngineLabel(labels []string) bool {
	for _, l := range labels {
		if strings.HasPrefix(l, engineLabelPrefix) {
			return true
		}
	}
	return false
}
