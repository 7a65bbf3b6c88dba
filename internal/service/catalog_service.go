package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/extsync"
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/progress"
	"github.com/vehicle-catalog-api/internal/reconcile"
	"github.com/vehicle-catalog-api/internal/repository"
)

// BrandLister fetches full brand lists from the live catalog API.
type BrandLister interface {
	FetchBrands(ctx context.Context, vehicleType string) ([]models.BrandEntry, error)
}

// catalogService implements CatalogService. One initialization run walks
// three stages: brand reconciliation, car model sync, motorcycle model sync.
// Setup failures abort the run; per-brand failures are recorded and the run
// continues.
type catalogService struct {
	repos      *repository.Repositories
	reconciler *reconcile.Reconciler
	worker     *extsync.Worker
	live       BrandLister
	static     *staticCatalog
	tracker    *progress.Tracker
	log        zerolog.Logger
}

func newCatalogService(repos *repository.Repositories, reconciler *reconcile.Reconciler, worker *extsync.Worker, live BrandLister, static *staticCatalog, tracker *progress.Tracker, log zerolog.Logger) *catalogService {
	return &catalogService{
		repos:      repos,
		reconciler: reconciler,
		worker:     worker,
		live:       live,
		static:     static,
		tracker:    tracker,
		log:        log.With().Str("service", "catalog").Logger(),
	}
}

// StartInitialization claims the tracker and runs initialization in the
// background. The "already running" error surfaces synchronously so callers
// can refuse the request.
func (s *catalogService) StartInitialization() error {
	if err := s.tracker.Start(); err != nil {
		return err
	}

	go func() {
		if err := s.run(context.Background()); err != nil {
			s.log.Error().Err(err).Msg("Catalog initialization failed")
		}
	}()
	return nil
}

// RunInitialization runs initialization synchronously. Used by the CLI.
func (s *catalogService) RunInitialization(ctx context.Context) error {
	if err := s.tracker.Start(); err != nil {
		return err
	}
	return s.run(ctx)
}

// Progress returns the current initialization state.
func (s *catalogService) Progress() models.ProgressState {
	return s.tracker.Snapshot()
}

func (s *catalogService) run(ctx context.Context) error {
	s.log.Info().Msg("Starting catalog initialization")

	if err := s.stageBrands(ctx); err != nil {
		s.tracker.Fail(err)
		return err
	}
	if err := s.stageModels(ctx, models.VehicleTypeCar, progress.StageCarModels); err != nil {
		s.tracker.Fail(err)
		return err
	}
	if err := s.stageModels(ctx, models.VehicleTypeMotorcycle, progress.StageMotorcycleModels); err != nil {
		s.tracker.Fail(err)
		return err
	}

	s.tracker.Finish()
	s.log.Info().Msg("Catalog initialization completed")
	return nil
}

// stageBrands seeds the curated reference collections and reconciles the
// merged brand lists into the brand catalog.
func (s *catalogService) stageBrands(ctx context.Context) error {
	s.tracker.Update(progress.Update{Stage: progress.StageBrands, Message: "reconciling brand lists"})

	if err := s.seedReferences(ctx); err != nil {
		return fmt.Errorf("reference seed failed: %w", err)
	}

	sources, err := s.brandSources(ctx)
	if err != nil {
		return fmt.Errorf("brand sources unavailable: %w", err)
	}

	stats, err := s.reconciler.Reconcile(ctx, sources)
	if err != nil {
		return fmt.Errorf("brand reconciliation failed: %w", err)
	}

	s.tracker.Update(progress.Update{
		StageProgress: 100,
		Completed:     stats.Total,
		Total:         stats.Total,
		Message:       fmt.Sprintf("brands reconciled: %d created, %d skipped", stats.Created, stats.Skipped),
	})
	return nil
}

// seedReferences upserts the curated reference entries from the optional
// data/references.json seed. Entries already resolvable by name are skipped,
// so re-running initialization never duplicates a collection.
func (s *catalogService) seedReferences(ctx context.Context) error {
	file, err := s.static.loadReferences()
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	created := 0
	for kind, seeds := range file {
		for _, seed := range seeds {
			if seed.Slug == "" || seed.NameCA == "" {
				continue
			}
			existing, err := s.repos.Reference.FindByName(ctx, kind, seed.NameCA)
			if err != nil {
				return fmt.Errorf("reference lookup failed for %s/%s: %w", kind, seed.Slug, err)
			}
			if existing != nil {
				continue
			}

			entry := &models.ReferenceEntry{
				ID:     uuid.New().String(),
				Kind:   kind,
				Slug:   seed.Slug,
				NameCA: seed.NameCA,
				NameES: seed.NameES,
				NameEN: seed.NameEN,
				NameFR: seed.NameFR,
			}
			if err := s.repos.Reference.Create(ctx, entry); err != nil {
				return fmt.Errorf("reference create failed for %s/%s: %w", kind, seed.Slug, err)
			}
			created++
		}
	}

	if created > 0 {
		s.log.Info().Int("created", created).Msg("Seeded reference collections")
	}
	return nil
}

// brandSources loads the brand lists: the static seed file when present,
// otherwise the live API per vehicle type.
func (s *catalogService) brandSources(ctx context.Context) ([]reconcile.SourceList, error) {
	if file, err := s.static.loadBrands(); err != nil {
		return nil, err
	} else if file != nil {
		return []reconcile.SourceList{
			{VehicleType: models.VehicleTypeCar, Entries: file.CarBrands},
			{VehicleType: models.VehicleTypeMotorcycle, Entries: file.MotorcycleBrands},
		}, nil
	}

	var sources []reconcile.SourceList
	for _, vehicleType := range []string{models.VehicleTypeCar, models.VehicleTypeMotorcycle} {
		entries, err := s.live.FetchBrands(ctx, vehicleType)
		if err != nil {
			return nil, fmt.Errorf("live brand list for %s: %w", vehicleType, err)
		}
		sources = append(sources, reconcile.SourceList{VehicleType: vehicleType, Entries: entries})
	}
	return sources, nil
}

// stageModels syncs the model catalogs of every brand of one vehicle type.
// Brands covered by the static seed file are loaded from it; the rest go
// through the batched live sync.
func (s *catalogService) stageModels(ctx context.Context, vehicleType string, stage progress.Stage) error {
	s.tracker.Update(progress.Update{Stage: stage})

	brands, err := s.repos.Brand.ListByVehicleType(ctx, vehicleType)
	if err != nil {
		return fmt.Errorf("brand listing for %s: %w", vehicleType, err)
	}
	if len(brands) == 0 {
		s.tracker.Update(progress.Update{StageProgress: 100})
		return nil
	}

	seeded, err := s.static.loadModels()
	if err != nil {
		return err
	}

	total := len(brands)
	done := 0
	var liveBrands []*models.Brand

	for _, brand := range brands {
		entries, ok := seeded.forBrand(vehicleType, brand.Slug)
		if !ok {
			liveBrands = append(liveBrands, brand)
			continue
		}
		if _, err := s.worker.UpsertModels(ctx, brand, entries); err != nil {
			s.tracker.AddError(fmt.Errorf("%s: %w", brand.Slug, err))
			s.log.Warn().Err(err).Str("brand", brand.Slug).Msg("Static model seed failed")
		}
		done++
		s.tracker.Update(progress.Update{
			Completed:    done,
			Total:        total,
			CurrentBrand: brand.Slug,
		})
	}

	result, err := s.worker.SyncAll(ctx, vehicleType, liveBrands, func(completed, _ int, current string) {
		s.tracker.Update(progress.Update{
			Completed:    done + completed,
			Total:        total,
			CurrentBrand: current,
		})
	})
	if err != nil {
		return fmt.Errorf("model sync for %s: %w", vehicleType, err)
	}
	for _, msg := range result.Errors {
		s.tracker.AddError(errors.New(msg))
	}

	s.tracker.Update(progress.Update{StageProgress: 100})
	return nil
}

// Stats returns current catalog row counts.
func (s *catalogService) Stats(ctx context.Context) (*models.CatalogStats, error) {
	brands, err := s.repos.Brand.Count(ctx)
	if err != nil {
		return nil, err
	}
	mods, err := s.repos.Model.Count(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.repos.Vehicle.Count(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.repos.Vehicle.CountByVehicleType(ctx)
	if err != nil {
		return nil, err
	}

	return &models.CatalogStats{
		Brands:         brands,
		Models:         mods,
		Vehicles:       vehicles,
		VehiclesByType: byType,
	}, nil
}
