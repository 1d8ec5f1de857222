package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jorguzz-fer/aquinaotem/internal/categorize"
	"github.com/jorguzz-fer/aquinaotem/internal/config"
	"github.com/jorguzz-fer/aquinaotem/internal/handlers"
	"github.com/jorguzz-fer/aquinaotem/internal/ratelimit"
	"github.com/jorguzz-fer/aquinaotem/internal/store"
)

// NewRouter wires the public endpoints.
// Health: /health, /ready
// Intake: POST /submissions, POST /metrics (plus the frontend's /api aliases)
func NewRouter(cfg config.Config, st store.Store, cat categorize.Categorizer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the store dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	limiter := ratelimit.New(st, cfg.RateLimitMax, cfg.RateLimitWindow)

	handlers.RegisterSubmissionRoutes(r, cfg.City, st, limiter, cat)
	handlers.RegisterMetricRoutes(r, st)

	return r
}
