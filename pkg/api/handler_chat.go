package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	goslack "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/chat"
	"github.com/patchwork-dev/patchwork/pkg/models"
	"github.com/patchwork-dev/patchwork/pkg/services"
)

// readVerifiedChatBody reads the body and checks the platform signature.
// A nil return means the response has already been written.
func (s *Server) readVerifiedChatBody(c *gin.Context) []byte {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return nil
	}

	secret, err := s.decryptedChatSigningSecret(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat integration is not configured"})
			return nil
		}
		abortWithServiceError(c, err)
		return nil
	}

	sv, err := goslack.NewSecretsVerifier(c.Request.Header, secret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "signature verification failed"})
		return nil
	}
	if _, err := sv.Write(body); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "signature verification failed"})
		return nil
	}
	if err := sv.Ensure(); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "signature verification failed"})
		return nil
	}
	return body
}

// chatCommandHandler handles POST /chat/command: the slash command always
// creates a new request, so the new-request prefix is prepended before the
// utterance goes through the normal mention route.
func (s *Server) chatCommandHandler(c *gin.Context) {
	body := s.readVerifiedChatBody(c)
	if body == nil {
		return
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	cmd, err := goslack.SlashCommandParse(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed slash command"})
		return
	}

	env := models.Envelope{
		Variant:        models.VariantChatMention,
		CorrelationKey: fmt.Sprintf("cmd:%s", cmd.TriggerID),
		Payload: models.ToPayloadMap(models.MentionPayload{
			Channel:  cmd.ChannelID,
			UserID:   cmd.UserID,
			UserName: cmd.UserName,
			Text:     chat.NewRequestPrefix + cmd.Text,
		}),
	}
	if err := s.deps.Queue.Enqueue(c.Request.Context(), env); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response_type": "ephemeral",
		"text":          "On it. I'll post updates in this channel.",
	})
}

// chatEventsHandler handles POST /chat/events: URL verification plus
// app_mention deliveries. Mentions are acked immediately and routed by the
// dispatcher; the 3-second delivery deadline leaves no room for API or DB
// lookups here, so the dispatcher resolves the mentioning user's name.
func (s *Server) chatEventsHandler(c *gin.Context) {
	body := s.readVerifiedChatBody(c)
	if body == nil {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed challenge"})
			return
		}
		c.String(http.StatusOK, challenge.Challenge)

	case slackevents.CallbackEvent:
		mention, ok := event.InnerEvent.Data.(*slackevents.AppMentionEvent)
		if !ok || mention.BotID != "" {
			c.JSON(http.StatusOK, ackIgnored)
			return
		}

		threadKey := mention.ThreadTimeStamp
		if threadKey == "" {
			threadKey = mention.TimeStamp
		}
		env := models.Envelope{
			Variant:        models.VariantChatMention,
			CorrelationKey: fmt.Sprintf("mention:%s:%s", mention.Channel, mention.TimeStamp),
			Payload: models.ToPayloadMap(models.MentionPayload{
				Channel:   mention.Channel,
				ThreadKey: threadKey,
				UserID:    mention.User,
				Text:      mention.Text,
			}),
		}
		if err := s.deps.Queue.Enqueue(c.Request.Context(), env); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, ackAccepted)

	default:
		c.JSON(http.StatusOK, ackIgnored)
	}
}

// chatInteractivityHandler handles POST /chat/interactivity: Block Kit
// button presses from the notifier's messages.
func (s *Server) chatInteractivityHandler(c *gin.Context) {
	body := s.readVerifiedChatBody(c)
	if body == nil {
		return
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	raw := c.Request.FormValue("payload")
	var callback goslack.InteractionCallback
	if err := json.Unmarshal([]byte(raw), &callback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed interaction payload"})
		return
	}
	if len(callback.ActionCallback.BlockActions) == 0 {
		c.JSON(http.StatusOK, ackIgnored)
		return
	}

	action := callback.ActionCallback.BlockActions[0]
	requestID := action.Value

	switch action.ActionID {
	case chat.ActionAnswer:
		c.JSON(http.StatusOK, gin.H{
			"response_type": "ephemeral",
			"text":          "Reply in this thread with your answer and I'll pick it up.",
		})

	case chat.ActionRetry:
		env := models.Envelope{
			Variant:   models.VariantChatRetryRequest,
			RequestID: requestID,
			Payload: models.ToPayloadMap(models.RetryPayload{
				ActorID:   callback.User.ID,
				ActorName: callback.User.Name,
			}),
		}
		if err := s.deps.Queue.Enqueue(c.Request.Context(), env); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"response_type": "ephemeral",
			"text":          "Retrying the request.",
		})

	case chat.ActionCancel:
		_, err := s.deps.Requests.UpdateStatus(c.Request.Context(), requestID, request.StatusCancelled, &models.StatusPatch{
			LogContent: fmt.Sprintf("Cancelled from chat by %s", callback.User.Name),
		})
		if err != nil {
			var transErr *services.InvalidTransitionError
			if errors.As(err, &transErr) {
				c.JSON(http.StatusOK, gin.H{
					"response_type": "ephemeral",
					"text":          "This request can no longer be cancelled.",
				})
				return
			}
			abortWithServiceError(c, err)
			return
		}
		if s.deps.Pool != nil {
			s.deps.Pool.CancelRequest(requestID)
		}
		c.JSON(http.StatusOK, gin.H{
			"response_type": "ephemeral",
			"text":          "Request cancelled.",
		})

	default:
		c.JSON(http.StatusOK, ackIgnored)
	}
}
