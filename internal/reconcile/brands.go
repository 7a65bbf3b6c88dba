package reconcile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/repository"
)

// SourceList is one external brand list tagged with the vehicle type it
// belongs to.
type SourceList struct {
	VehicleType string
	Entries     []models.BrandEntry
}

// Reconciler merges brand lists from multiple vehicle-type sources into the
// deduplicated brand catalog.
type Reconciler struct {
	brands    repository.BrandRepository
	maxBrands int
	log       zerolog.Logger
}

// New creates a brand Reconciler. maxBrands 0 disables truncation.
func New(brands repository.BrandRepository, maxBrands int, log zerolog.Logger) *Reconciler {
	return &Reconciler{
		brands:    brands,
		maxBrands: maxBrands,
		log:       log.With().Str("component", "brand-reconciler").Logger(),
	}
}

// candidate is one merged brand before persistence.
type candidate struct {
	slug         string
	label        string
	vehicleTypes []string
}

// Reconcile merges the source lists and upserts the result. A slug appearing
// under several vehicle types ends up as exactly one brand whose VehicleTypes
// is the union; persisted brands never lose a type.
func (r *Reconciler) Reconcile(ctx context.Context, sources []SourceList) (*models.BrandReconcileStats, error) {
	merged := make(map[string]*candidate)
	var order []string // map iteration is random; keep source order for truncation
	invalid := 0

	for _, source := range sources {
		for _, entry := range source.Entries {
			slug := entry.SlugValue()
			if slug == "" {
				invalid++
				continue
			}
			if existing, ok := merged[slug]; ok {
				if !contains(existing.vehicleTypes, source.VehicleType) {
					existing.vehicleTypes = append(existing.vehicleTypes, source.VehicleType)
				}
				continue
			}
			merged[slug] = &candidate{
				slug:         slug,
				label:        entry.LabelValue(),
				vehicleTypes: []string{source.VehicleType},
			}
			order = append(order, slug)
		}
	}

	if r.maxBrands > 0 && len(order) > r.maxBrands {
		r.log.Info().
			Int("merged", len(order)).
			Int("max", r.maxBrands).
			Msg("Truncating merged brand set")
		order = order[:r.maxBrands]
	}

	stats := &models.BrandReconcileStats{Total: len(order) + invalid, Skipped: invalid}

	for _, slug := range order {
		cand := merged[slug]
		if cand.slug == "" || cand.label == "" {
			stats.Skipped++
			continue
		}

		existing, err := r.brands.GetBySlug(ctx, cand.slug)
		if err != nil {
			return stats, fmt.Errorf("brand lookup failed for %q: %w", cand.slug, err)
		}

		if existing != nil {
			// No new row either way; counted as skipped. The union update is
			// still applied when the stored set is missing a type.
			stats.Skipped++
			if missing := missingTypes(existing, cand.vehicleTypes); len(missing) > 0 {
				existing.VehicleTypes = append(existing.VehicleTypes, missing...)
				if err := r.brands.Update(ctx, existing); err != nil {
					return stats, fmt.Errorf("brand update failed for %q: %w", cand.slug, err)
				}
				r.log.Debug().
					Str("slug", cand.slug).
					Strs("added_types", missing).
					Msg("Extended brand vehicle types")
			}
			continue
		}

		brand := &models.Brand{
			ID:           uuid.New().String(),
			Slug:         cand.slug,
			Name:         cand.label,
			VehicleTypes: cand.vehicleTypes,
		}
		if err := r.brands.Create(ctx, brand); err != nil {
			return stats, fmt.Errorf("brand create failed for %q: %w", cand.slug, err)
		}
		stats.Created++
	}

	r.log.Info().
		Int("total", stats.Total).
		Int("created", stats.Created).
		Int("skipped", stats.Skipped).
		Msg("Brand reconciliation completed")

	return stats, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func missingTypes(brand *models.Brand, wanted []string) []string {
	var missing []string
	for _, vt := range wanted {
		if !brand.HasVehicleType(vt) {
			missing = append(missing, vt)
		}
	}
	return missing
}
