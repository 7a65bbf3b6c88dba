package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/service"
)

// SyncHandler handles catalog initialization endpoints
type SyncHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(services *service.Services, log zerolog.Logger) *SyncHandler {
	return &SyncHandler{
		services: services,
		log:      log.With().Str("handler", "sync").Logger(),
	}
}

// StartSync handles POST /v1/sync
// Starts catalog initialization in the background. Only one run at a time.
func (h *SyncHandler) StartSync(c *gin.Context) {
	if err := h.services.Catalog.StartInitialization(); err != nil {
		h.log.Warn().Err(err).Msg("Sync start refused")
		c.JSON(http.StatusConflict, gin.H{
			"error":    err.Error(),
			"progress": h.services.Catalog.Progress(),
		})
		return
	}

	h.log.Info().Msg("Catalog initialization started")
	c.JSON(http.StatusAccepted, gin.H{
		"message":  "Catalog initialization started",
		"progress": h.services.Catalog.Progress(),
	})
}

// GetProgress handles GET /v1/sync/progress
func (h *SyncHandler) GetProgress(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Catalog.Progress())
}

// GetStats handles GET /v1/catalog/stats
func (h *SyncHandler) GetStats(c *gin.Context) {
	stats, err := h.services.Catalog.Stats(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to read catalog stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read catalog stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
