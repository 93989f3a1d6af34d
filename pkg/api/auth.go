package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthorizeFunc decides whether a user may perform an action on a request.
// The deployment's auth proxy handles authentication; this hook only
// carries the authorization policy.
type AuthorizeFunc func(userID, action, requestID string) bool

// extractUser pulls the authenticated user from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email >
// X-Remote-User (kube-rbac-proxy) > "api-client".
func extractUser(c *gin.Context) string {
	if user := c.Request.Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request.Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.Request.Header.Get("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}

// authorize gates a mutating endpoint on the configured policy.
func (s *Server) authorize(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.deps.Authorize == nil {
			c.Next()
			return
		}
		if !s.deps.Authorize(extractUser(c), action, c.Param("id")) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not authorized"})
			return
		}
		c.Next()
	}
}
