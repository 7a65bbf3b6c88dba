package extsync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/config"
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/observability"
	"github.com/vehicle-catalog-api/internal/repository"
	"github.com/vehicle-catalog-api/internal/sanitize"
)

// ModelFetcher fetches the raw model list of one brand from an external
// source.
type ModelFetcher interface {
	FetchModels(ctx context.Context, vehicleType, brandSlug string) ([]models.BrandEntry, error)
}

// Worker syncs per-brand model catalogs from a rate-limited external API.
// Brands are processed in fixed-size concurrent batches with a pause between
// batches; within a brand, failed fetches are retried with a fixed delay.
type Worker struct {
	fetcher ModelFetcher
	brands  repository.BrandRepository
	mods    repository.ModelRepository

	maxRetries int
	retryDelay time.Duration
	batchSize  int
	batchDelay time.Duration

	log zerolog.Logger
}

// NewWorker creates a sync Worker configured from the catalog settings.
func NewWorker(fetcher ModelFetcher, brands repository.BrandRepository, mods repository.ModelRepository, cfg *config.CatalogConfig, log zerolog.Logger) *Worker {
	return &Worker{
		fetcher:    fetcher,
		brands:     brands,
		mods:       mods,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		batchSize:  cfg.BatchSize,
		batchDelay: cfg.BatchDelay,
		log:        log.With().Str("component", "model-sync").Logger(),
	}
}

// RunResult aggregates one sync run across many brands.
type RunResult struct {
	Stats    models.SyncStats
	PerBrand map[string]models.SyncStats
	Errors   []string
}

// ProgressFunc is invoked after each finished brand with the running counts.
type ProgressFunc func(completed, total int, currentBrand string)

// SyncAll syncs models for every given brand of one vehicle type. A brand
// whose fetch keeps failing contributes zero models and an error entry; the
// run always continues to the next batch.
func (w *Worker) SyncAll(ctx context.Context, vehicleType string, brands []*models.Brand, onProgress ProgressFunc) (*RunResult, error) {
	result := &RunResult{PerBrand: make(map[string]models.SyncStats)}

	var mu sync.Mutex
	completed := 0

	for start := 0; start < len(brands); start += w.batchSize {
		end := start + w.batchSize
		if end > len(brands) {
			end = len(brands)
		}
		batch := brands[start:end]

		var wg sync.WaitGroup
		for _, brand := range batch {
			wg.Add(1)
			go func(b *models.Brand) {
				defer wg.Done()

				stats, err := w.syncBrand(ctx, vehicleType, b)

				mu.Lock()
				defer mu.Unlock()
				result.PerBrand[b.Slug] = stats
				result.Stats.Add(stats)
				if err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", b.Slug, err))
				}
				completed++
				if onProgress != nil {
					onProgress(completed, len(brands), b.Slug)
				}
			}(brand)
		}
		wg.Wait()

		if end < len(brands) {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(w.batchDelay):
			}
		}
	}

	w.log.Info().
		Str("vehicle_type", vehicleType).
		Int("brands", len(brands)).
		Int("imported", result.Stats.Imported).
		Int("skipped", result.Stats.Skipped).
		Int("errors", len(result.Errors)).
		Msg("Model sync run completed")

	return result, nil
}

// syncBrand fetches one brand's model list with retries and upserts the
// result. Retry exhaustion degrades to an empty list plus an error; it never
// aborts the run.
func (w *Worker) syncBrand(ctx context.Context, vehicleType string, brand *models.Brand) (models.SyncStats, error) {
	entries, err := w.fetchWithRetry(ctx, vehicleType, brand.Slug)
	if err != nil {
		w.log.Error().
			Err(err).
			Str("brand", brand.Slug).
			Int("attempts", w.maxRetries+1).
			Msg("Model fetch failed after retries")
		return models.SyncStats{}, err
	}

	return w.UpsertModels(ctx, brand, entries)
}

// fetchWithRetry attempts the fetch up to maxRetries+1 times with a fixed
// delay between attempts.
func (w *Worker) fetchWithRetry(ctx context.Context, vehicleType, brandSlug string) ([]models.BrandEntry, error) {
	var lastErr error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			observability.ModelFetchRetries.Inc()
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(w.retryDelay):
			}
		}

		entries, err := w.fetcher.FetchModels(ctx, vehicleType, brandSlug)
		if err == nil {
			return entries, nil
		}
		lastErr = err
		w.log.Warn().
			Err(err).
			Str("brand", brandSlug).
			Int("attempt", attempt+1).
			Msg("Model fetch attempt failed")
	}
	return nil, lastErr
}

// UpsertModels applies the (brandID, slug) upsert contract to a fetched model
// list: existing models are skipped, new ones created. Re-running a sync adds
// only genuinely new models.
func (w *Worker) UpsertModels(ctx context.Context, brand *models.Brand, entries []models.BrandEntry) (models.SyncStats, error) {
	stats := models.SyncStats{Total: len(entries)}

	for _, entry := range entries {
		slug := sanitize.Slugify(entry.SlugValue())
		name := entry.LabelValue()
		if slug == "" {
			stats.Skipped++
			continue
		}
		if name == "" {
			name = entry.SlugValue()
		}

		existing, err := w.mods.GetByBrandAndSlug(ctx, brand.ID, slug)
		if err != nil {
			return stats, fmt.Errorf("model lookup failed for %s/%s: %w", brand.Slug, slug, err)
		}
		if existing != nil {
			stats.Skipped++
			continue
		}

		model := &models.Model{
			ID:      uuid.New().String(),
			BrandID: brand.ID,
			Slug:    slug,
			Name:    name,
		}
		if err := w.mods.Create(ctx, model); err != nil {
			return stats, fmt.Errorf("model create failed for %s/%s: %w", brand.Slug, slug, err)
		}
		observability.ModelsSynced.Inc()
		stats.Imported++
	}

	return stats, nil
}

// UpsertForBrandSlug resolves the brand by slug first and rejects models for
// unknown brands instead of creating orphans. Used by the static-file source.
func (w *Worker) UpsertForBrandSlug(ctx context.Context, brandSlug string, entries []models.BrandEntry) (models.SyncStats, error) {
	brand, err := w.brands.GetBySlug(ctx, brandSlug)
	if err != nil {
		return models.SyncStats{}, err
	}
	if brand == nil {
		return models.SyncStats{}, fmt.Errorf("unknown brand %q, models rejected", brandSlug)
	}
	return w.UpsertModels(ctx, brand, entries)
}
