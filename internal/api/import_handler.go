package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/config"
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/service"
)

// ImportHandler handles bulk vehicle import endpoints
type ImportHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ImportHandler {
	return &ImportHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "import").Logger(),
	}
}

// ImportVehicles handles POST /v1/imports/vehicles
// Accepts a JSON array of raw vehicle records. The optional `clear` query
// flag wipes the vehicle table before importing.
func (h *ImportHandler) ImportVehicles(c *gin.Context) {
	ctx := c.Request.Context()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.Sync.MaxUploadSize)

	var raw []models.RawVehicle
	if err := json.NewDecoder(c.Request.Body).Decode(&raw); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("payload too large, max size is %d MB", h.cfg.Sync.MaxUploadSize/(1024*1024)),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON array of vehicle records"})
		return
	}
	if len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty vehicle array"})
		return
	}

	clearExisting := c.Query("clear") == "true"

	report, err := h.services.Import.ImportVehicles(ctx, raw, clearExisting)
	if err != nil {
		h.log.Error().Err(err).Msg("Vehicle import failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "vehicle import failed"})
		return
	}

	h.log.Info().
		Int("records", len(raw)).
		Int("imported", report.Imported).
		Int("skipped", report.Skipped).
		Bool("clear", clearExisting).
		Msg("Vehicle import completed")

	c.JSON(http.StatusOK, report)
}
