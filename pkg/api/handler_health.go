package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/patchwork-dev/patchwork/pkg/database"
	"github.com/patchwork-dev/patchwork/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health. Only the engine's own components
// (database, worker pool) are checked; a broken forge or chat integration
// must not make the orchestrator restart the pod.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(ctx, s.db.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	resp := &HealthResponse{Version: version.GitCommit, Checks: checks}

	if s.deps.Pool != nil {
		pool := s.deps.Pool.Health()
		resp.Pool = pool
		if pool != nil && !pool.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := pool.DBError
			if msg == "" {
				msg = "worker pool unhealthy"
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	resp.Status = status
	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, resp)
}
