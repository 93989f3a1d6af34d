package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/patchwork-dev/patchwork/ent"
)

// getSessionBlobHandler handles GET /api/requests/:id/session. The runner
// fetches the compressed session blob here when resuming; ?session_id=
// selects a specific session, otherwise the latest one is served. The blob
// stays opaque: it is returned byte-for-byte as stored.
func (s *Server) getSessionBlobHandler(c *gin.Context) {
	requestID := c.Param("id")

	var (
		row *ent.AgentSession
		err error
	)
	if sessionID := c.Query("session_id"); sessionID != "" {
		row, err = s.deps.Sessions.GetBySessionID(c.Request.Context(), requestID, sessionID)
	} else {
		row, err = s.deps.Sessions.GetLatest(c.Request.Context(), requestID)
	}
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Header("X-Session-Id", row.SessionID)
	c.Header("X-Agent-Kind", row.AgentKind)
	c.Header("X-Uncompressed-Size", strconv.Itoa(row.UncompressedSize))
	c.Data(http.StatusOK, "application/octet-stream", row.Blob)
}
