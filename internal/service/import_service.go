package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/importer"
	"github.com/vehicle-catalog-api/internal/models"
)

// importService implements ImportService on top of the import pipeline.
type importService struct {
	pipeline *importer.Pipeline
	log      zerolog.Logger
}

func newImportService(pipeline *importer.Pipeline, log zerolog.Logger) *importService {
	return &importService{
		pipeline: pipeline,
		log:      log.With().Str("service", "import").Logger(),
	}
}

// ImportVehicles runs one bulk import and returns its report. Imports are
// synchronous; the report is the response, nothing is tracked across calls.
func (s *importService) ImportVehicles(ctx context.Context, raw []models.RawVehicle, clearExisting bool) (*models.ImportReport, error) {
	s.log.Info().
		Int("records", len(raw)).
		Bool("clear_existing", clearExisting).
		Msg("Bulk vehicle import requested")
	return s.pipeline.ImportVehicles(ctx, raw, clearExisting)
}
