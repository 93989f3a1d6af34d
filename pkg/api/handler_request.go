package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/patchwork-dev/patchwork/ent/request"
	"github.com/patchwork-dev/patchwork/pkg/models"
)

// listRequestsHandler handles GET /api/requests.
func (s *Server) listRequestsHandler(c *gin.Context) {
	filters := models.RequestFilters{Limit: 25}

	if v := c.Query("status"); v != "" {
		if err := request.StatusValidator(request.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = v
	}
	if v := c.Query("origin"); v != "" {
		if err := request.OriginValidator(request.Origin(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid origin: " + v})
			return
		}
		filters.Origin = v
	}
	filters.Repository = c.Query("repository")

	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	result, err := s.deps.Requests.List(c.Request.Context(), filters)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getRequestHandler handles GET /api/requests/:id.
func (s *Server) getRequestHandler(c *gin.Context) {
	req, err := s.deps.Requests.FindByRequestID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// listMessagesHandler handles GET /api/requests/:id/messages with pivot
// pagination: ?before_id=<message id>&limit=<n>.
func (s *Server) listMessagesHandler(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	// Fetch one extra row to learn whether older messages remain.
	rows, err := s.deps.Messages.ThreadPage(c.Request.Context(), c.Param("id"), c.Query("before_id"), limit+1)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[len(rows)-limit:]
	}
	c.JSON(http.StatusOK, &MessagePageResponse{Messages: rows, HasMore: hasMore})
}

// cancelRequestHandler handles POST /api/requests/:id/cancel. The status
// transition is the source of truth; the in-process pool cancel only
// shortens an execution already in flight on this pod.
func (s *Server) cancelRequestHandler(c *gin.Context) {
	requestID := c.Param("id")
	user := extractUser(c)

	req, err := s.deps.Requests.UpdateStatus(c.Request.Context(), requestID, request.StatusCancelled, &models.StatusPatch{
		LogContent: fmt.Sprintf("Cancelled by %s", user),
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if s.deps.Pool != nil {
		s.deps.Pool.CancelRequest(requestID)
	}
	c.JSON(http.StatusOK, req)
}

// retryRequestHandler handles POST /api/requests/:id/retry by enqueuing a
// retry message; the dispatcher owns the transition back to pending.
func (s *Server) retryRequestHandler(c *gin.Context) {
	requestID := c.Param("id")

	req, err := s.deps.Requests.FindByRequestID(c.Request.Context(), requestID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if req.Status != request.StatusError && req.Status != request.StatusCancelled {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("request is %s, nothing to retry", req.Status)})
		return
	}

	env := models.Envelope{
		Variant:   models.VariantChatRetryRequest,
		RequestID: requestID,
		Payload:   models.ToPayloadMap(models.RetryPayload{ActorID: extractUser(c)}),
	}
	if err := s.deps.Queue.Enqueue(c.Request.Context(), env); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, ackAccepted)
}
