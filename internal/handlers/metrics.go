package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/jorguzz-fer/aquinaotem/internal/models"
	"github.com/jorguzz-fer/aquinaotem/internal/store"
)

// RegisterMetricRoutes registers the UX timing recorder. This path is fully
// decoupled from the submission pipeline: no rate limiting, no deduplication.
//
// POST /metrics
//   - session_id and ttfc_ms required, everything else defaulted
//   - Fire-and-forget from the client's perspective; best-effort delivery
func RegisterMetricRoutes(r gin.IRoutes, st store.Store) {
	handler := func(c *gin.Context) {
		var req models.MetricRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		if req.SessionID == "" || req.TTFCMs == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		metric := models.UxMetric{
			SessionID:    req.SessionID,
			Page:         req.Page,
			TTFCMs:       *req.TTFCMs,
			FirstFocusMs: req.FirstFocusMs,
			DeviceType:   req.DeviceType,
			Referrer:     req.Referrer,
		}
		if metric.Page == "" {
			metric.Page = "/"
		}
		if metric.DeviceType == "" {
			metric.DeviceType = "unknown"
		}

		if err := st.InsertMetric(c.Request.Context(), metric); err != nil {
			log.WithError(err).Error("metric insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}

	r.POST("/metrics", handler)
	// Route used by the deployed frontend.
	r.POST("/api/metrics", handler)
}
