package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/observability"
	"github.com/vehicle-catalog-api/internal/repository"
	"github.com/vehicle-catalog-api/internal/resolver"
	"golang.org/x/sync/errgroup"
)

// Pipeline maps raw external vehicle records into the canonical schema and
// upserts them idempotently. Records are processed one at a time so failure
// attribution and report ordering stay deterministic; within one record, all
// categorical field resolutions run concurrently.
type Pipeline struct {
	vehicles repository.VehicleRepository
	resolver *resolver.Resolver
	log      zerolog.Logger
}

// NewPipeline creates a vehicle import Pipeline.
func NewPipeline(vehicles repository.VehicleRepository, res *resolver.Resolver, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		vehicles: vehicles,
		resolver: res,
		log:      log.With().Str("service", "vehicle-import").Logger(),
	}
}

// resolvedFields holds the outcome of the concurrent categorical resolution
// for one record. Every field is written by exactly one goroutine.
type resolvedFields struct {
	fuelType        string
	transmission    string
	exteriorColor   string
	vehicleState    string
	carBody         string
	motorcycleBody  string
	caravanBody     string
	upholsteryType  string
	upholsteryColor string
	propulsion      string

	battery       string
	cable         string
	connector     string
	chargingSpeed string
	emission      string

	carExtras        []string
	motorcycleExtras []string
	motorhomeExtras  []string
	habitationExtras []string
}

// ImportVehicles runs one bulk import. One bad record never aborts the batch:
// its failure is recorded in the report and processing continues.
func (p *Pipeline) ImportVehicles(ctx context.Context, raw []models.RawVehicle, clearExisting bool) (*models.ImportReport, error) {
	report := &models.ImportReport{}

	if clearExisting {
		deleted, err := p.vehicles.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to clear vehicle table: %w", err)
		}
		p.log.Info().Int64("deleted", deleted).Msg("Cleared existing vehicles")
	}

	p.log.Info().Int("records", len(raw)).Msg("Starting vehicle import")

	for i, record := range raw {
		slug := rawSlug(record)
		if slug == "" {
			report.Skipped++
			report.DetailedReport.SkippedVehicles = append(report.DetailedReport.SkippedVehicles, models.SkippedVehicle{
				ID:     rawOriginalID(record),
				Reason: "no usable slug or title",
			})
			continue
		}

		outcome, err := p.importOne(ctx, record, slug)
		if err != nil {
			report.Skipped++
			observability.VehiclesFailed.Inc()
			failure := models.FailedVehicle{
				Slug:  slug,
				ID:    rawOriginalID(record),
				Title: rawTitle(record),
				Error: err.Error(),
			}
			report.DetailedReport.FailedImports = append(report.DetailedReport.FailedImports, failure)
			report.Errors = append(report.Errors, fmt.Sprintf("record %d (%s): %v", i, slug, err))
			continue
		}

		report.Imported++
		observability.VehiclesImported.WithLabelValues(string(outcome)).Inc()
		report.DetailedReport.SuccessfulImports = append(report.DetailedReport.SuccessfulImports, models.ImportedVehicle{
			Slug:    slug,
			Title:   rawTitle(record),
			Outcome: outcome,
		})
	}

	p.logBreakdown(report)
	return report, nil
}

// importOne maps and upserts a single record. Either the record is fully
// written or the catalog is left untouched.
func (p *Pipeline) importOne(ctx context.Context, record models.RawVehicle, slug string) (models.ImportOutcome, error) {
	if rawTitle(record) == "" {
		return "", fmt.Errorf("missing required title")
	}

	resolved, err := p.resolveFields(ctx, record)
	if err != nil {
		return "", fmt.Errorf("field resolution failed: %w", err)
	}

	vehicle := mapVehicle(record, slug, resolved)

	existing, err := p.vehicles.GetBySlug(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("lookup failed: %w", err)
	}

	if existing != nil {
		vehicle.ID = existing.ID
		vehicle.CreatedAt = existing.CreatedAt
		if err := p.vehicles.Update(ctx, vehicle); err != nil {
			return "", fmt.Errorf("update failed: %w", err)
		}
		return models.OutcomeUpdated, nil
	}

	vehicle.ID = uuid.New().String()
	if err := p.vehicles.Create(ctx, vehicle); err != nil {
		return "", fmt.Errorf("create failed: %w", err)
	}
	return models.OutcomeCreated, nil
}

// resolveFields issues every categorical resolution of one record
// concurrently. The resolutions are independent of each other, so they are
// all in flight together and awaited as a group.
func (p *Pipeline) resolveFields(ctx context.Context, raw models.RawVehicle) (*resolvedFields, error) {
	resolved := &resolvedFields{}
	g, gctx := errgroup.WithContext(ctx)

	type lookup struct {
		kind models.ReferenceKind
		keys []string
		dst  *string
	}
	lookups := []lookup{
		{models.KindFuelType, []string{"tipus-combustible", "tipo-combustible"}, &resolved.fuelType},
		{models.KindTransmissionType, []string{"tipus-canvi", "tipo-cambio"}, &resolved.transmission},
		{models.KindExteriorColor, []string{"color-exterior", "color-vehicle"}, &resolved.exteriorColor},
		{models.KindVehicleState, []string{"estat-vehicle", "estado-vehiculo"}, &resolved.vehicleState},
		{models.KindCarBodyType, []string{"carrosseria-cotxe", "carroceria-coche"}, &resolved.carBody},
		{models.KindMotorcycleBody, []string{"carrosseria-moto", "carroceria-moto"}, &resolved.motorcycleBody},
		{models.KindCaravanBodyType, []string{"carrosseria-caravana", "carroceria-caravana"}, &resolved.caravanBody},
		{models.KindUpholsteryType, []string{"tipus-tapisseria", "tipo-tapiceria"}, &resolved.upholsteryType},
		{models.KindUpholsteryColor, []string{"color-tapisseria", "color-tapiceria"}, &resolved.upholsteryColor},
		{models.KindPropulsionType, []string{"tipus-propulsor", "tipo-propulsor"}, &resolved.propulsion},
		{models.KindBatteryType, []string{"tipus-bateria", "tipo-bateria"}, &resolved.battery},
		{models.KindChargingCable, []string{"cables-recarrega", "cables-recarga"}, &resolved.cable},
		{models.KindElectricConnector, []string{"connectors-recarrega", "conectores-recarga"}, &resolved.connector},
		{models.KindChargingSpeed, []string{"velocitat-recarrega", "velocidad-recarga"}, &resolved.chargingSpeed},
		{models.KindEmissionType, []string{"tipus-emissions", "tipo-emisiones"}, &resolved.emission},
	}
	for _, l := range lookups {
		l := l
		g.Go(func() error {
			slug, err := p.resolver.Resolve(gctx, firstOf(raw, l.keys...), l.kind)
			if err != nil {
				return fmt.Errorf("%s: %w", l.kind, err)
			}
			*l.dst = slug
			return nil
		})
	}

	extras := []struct {
		keys []string
		dst  *[]string
	}{
		{[]string{"extres-cotxe", "extras-coche"}, &resolved.carExtras},
		{[]string{"extres-moto", "extras-moto"}, &resolved.motorcycleExtras},
		{[]string{"extres-autocaravana", "extras-autocaravana"}, &resolved.motorhomeExtras},
		{[]string{"extres-habitacle", "extras-habitaculo"}, &resolved.habitationExtras},
	}
	for _, e := range extras {
		e := e
		g.Go(func() error {
			*e.dst = resolver.ResolveExtras(coerceAnySlice(firstOf(raw, e.keys...)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}

// logBreakdown emits the human-readable failure summary of a run.
func (p *Pipeline) logBreakdown(report *models.ImportReport) {
	p.log.Info().
		Int("imported", report.Imported).
		Int("skipped", report.Skipped).
		Int("failed", len(report.DetailedReport.FailedImports)).
		Msg("Vehicle import completed")

	for _, failure := range report.DetailedReport.FailedImports {
		p.log.Warn().
			Str("slug", failure.Slug).
			Str("id", failure.ID).
			Str("title", failure.Title).
			Str("error", failure.Error).
			Msg("Vehicle import failure")
	}
}
