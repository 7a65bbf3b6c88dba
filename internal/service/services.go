package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/config"
	"github.com/vehicle-catalog-api/internal/extsync"
	"github.com/vehicle-catalog-api/internal/importer"
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/progress"
	"github.com/vehicle-catalog-api/internal/reconcile"
	"github.com/vehicle-catalog-api/internal/repository"
	"github.com/vehicle-catalog-api/internal/resolver"
)

// CatalogService drives catalog initialization: brand reconciliation followed
// by per-brand model sync, with observable progress.
type CatalogService interface {
	StartInitialization() error
	RunInitialization(ctx context.Context) error
	Progress() models.ProgressState
	Stats(ctx context.Context) (*models.CatalogStats, error)
}

// ImportService runs bulk vehicle imports.
type ImportService interface {
	ImportVehicles(ctx context.Context, raw []models.RawVehicle, clearExisting bool) (*models.ImportReport, error)
}

// Services holds all service interfaces
type Services struct {
	Catalog CatalogService
	Import  ImportService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	client := extsync.NewClient(&cfg.Catalog, log)
	worker := extsync.NewWorker(client, repos.Brand, repos.Model, &cfg.Catalog, log)
	reconciler := reconcile.New(repos.Brand, cfg.Sync.MaxBrands, log)
	res := resolver.New(repos.Reference, log)
	pipeline := importer.NewPipeline(repos.Vehicle, res, log)

	return &Services{
		Catalog: newCatalogService(repos, reconciler, worker, client,
			newStaticCatalog(cfg.Sync.DataDir, log), progress.NewTracker(), log),
		Import: newImportService(pipeline, log),
	}
}
