package importer_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/importer"
	"github.com/vehicle-catalog-api/internal/mocks"
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/resolver"
)

func newTestPipeline(vehicles *mocks.MockVehicleRepository, refs *mocks.MockReferenceRepository) *importer.Pipeline {
	res := resolver.New(refs, zerolog.Nop())
	return importer.NewPipeline(vehicles, res, zerolog.Nop())
}

func refEntry(kind models.ReferenceKind, slug, nameCA string) *models.ReferenceEntry {
	return &models.ReferenceEntry{
		ID:     "ref-" + slug,
		Kind:   kind,
		Slug:   slug,
		NameCA: nameCA,
	}
}

// rawRecord builds a legacy-export record with the quirks the pipeline has to
// absorb: flags as strings, prices as strings, single-value arrays.
func rawRecord(slug, title string) models.RawVehicle {
	return models.RawVehicle{
		"slug":              slug,
		"titol-anunci":      title,
		"id":                "orig-" + slug,
		"tipus-vehicle":     models.VehicleTypeCar,
		"anunci-destacat":   "1",
		"venut":             "false",
		"preu":              "15900,50",
		"tipus-combustible": []any{"Benzina"},
		"tipus-canvi":       "Manual",
		"marques-cotxe":     "BMW",
		"extres-cotxe":      []any{"Bluetooth", "Llandes d'aliatge", "Bluetooth"},
	}
}

func TestImportVehicles_CreatesAndResolves(t *testing.T) {
	vehicles := mocks.NewMockVehicleRepository()
	refs := mocks.NewMockReferenceRepository()
	refs.Entries = append(refs.Entries,
		refEntry(models.KindFuelType, "benzina", "Benzina"),
		refEntry(models.KindTransmissionType, "manual", "Manual"),
	)
	pipeline := newTestPipeline(vehicles, refs)

	report, err := pipeline.ImportVehicles(context.Background(),
		[]models.RawVehicle{rawRecord("bmw-serie-3", "BMW Serie 3 320d")}, false)
	if err != nil {
		t.Fatalf("ImportVehicles failed: %v", err)
	}

	if report.Imported != 1 || report.Skipped != 0 {
		t.Fatalf("report = %d imported / %d skipped, want 1 / 0", report.Imported, report.Skipped)
	}
	if got := report.DetailedReport.SuccessfulImports[0].Outcome; got != models.OutcomeCreated {
		t.Errorf("outcome = %q, want created", got)
	}

	v := vehicles.Vehicles["bmw-serie-3"]
	if v == nil {
		t.Fatal("vehicle not persisted")
	}
	if v.FuelType != "benzina" || v.TransmissionType != "manual" {
		t.Errorf("resolved fields = %q / %q, want benzina / manual", v.FuelType, v.TransmissionType)
	}
	if !v.Featured {
		t.Error("featured flag \"1\" should coerce to true")
	}
	if v.Sold {
		t.Error("sold flag \"false\" should coerce to false")
	}
	if v.Price != 15900.50 {
		t.Errorf("price = %v, want 15900.50", v.Price)
	}
	if v.CarBrand != "bmw" {
		t.Errorf("car brand = %q, want bmw", v.CarBrand)
	}
	if len(v.CarExtras) != 2 || v.CarExtras[0] != "bluetooth" || v.CarExtras[1] != "llandes-daliatge" {
		t.Errorf("car extras = %v, want deduplicated normalized list", v.CarExtras)
	}
}

func TestImportVehicles_UpsertIdempotence(t *testing.T) {
	vehicles := mocks.NewMockVehicleRepository()
	refs := mocks.NewMockReferenceRepository()
	pipeline := newTestPipeline(vehicles, refs)
	ctx := context.Background()

	var batch []models.RawVehicle
	for i := 0; i < 3; i++ {
		slug := fmt.Sprintf("vehicle-%d", i)
		batch = append(batch, rawRecord(slug, "Vehicle "+slug))
	}

	first, err := pipeline.ImportVehicles(ctx, batch, false)
	if err != nil {
		t.Fatal(err)
	}
	if first.Imported != 3 || vehicles.CreateCalls != 3 {
		t.Fatalf("first run: %d imported, %d creates", first.Imported, vehicles.CreateCalls)
	}
	firstID := vehicles.Vehicles["vehicle-0"].ID

	second, err := pipeline.ImportVehicles(ctx, batch, false)
	if err != nil {
		t.Fatal(err)
	}

	if vehicles.CreateCalls != 3 {
		t.Errorf("second run issued %d new creates, want 0", vehicles.CreateCalls-3)
	}
	if vehicles.UpdateCalls != 3 {
		t.Errorf("second run issued %d updates, want 3", vehicles.UpdateCalls)
	}
	if second.Imported != 3 {
		t.Errorf("second run imported = %d, want 3", second.Imported)
	}
	for _, imported := range second.DetailedReport.SuccessfulImports {
		if imported.Outcome != models.OutcomeUpdated {
			t.Errorf("second-run outcome for %s = %q, want updated", imported.Slug, imported.Outcome)
		}
	}
	if len(vehicles.Vehicles) != 3 {
		t.Errorf("row count changed between runs: %d", len(vehicles.Vehicles))
	}
	if vehicles.Vehicles["vehicle-0"].ID != firstID {
		t.Error("update must preserve the original vehicle ID")
	}
}

func TestImportVehicles_PartialFailureIsolation(t *testing.T) {
	vehicles := mocks.NewMockVehicleRepository()
	pipeline := newTestPipeline(vehicles, mocks.NewMockReferenceRepository())

	var batch []models.RawVehicle
	for i := 0; i < 5; i++ {
		slug := fmt.Sprintf("vehicle-%d", i)
		batch = append(batch, rawRecord(slug, "Vehicle "+slug))
	}
	// Record index 2 keeps its slug but loses the required title.
	delete(batch[2], "titol-anunci")

	report, err := pipeline.ImportVehicles(context.Background(), batch, false)
	if err != nil {
		t.Fatalf("a malformed record must not abort the batch: %v", err)
	}

	if report.Imported != 4 || report.Skipped != 1 {
		t.Fatalf("report = %d imported / %d skipped, want 4 / 1", report.Imported, report.Skipped)
	}
	if len(report.DetailedReport.FailedImports) != 1 {
		t.Fatalf("expected exactly 1 failure, got %d", len(report.DetailedReport.FailedImports))
	}
	failure := report.DetailedReport.FailedImports[0]
	if failure.Slug != "vehicle-2" {
		t.Errorf("failure attributed to %q, want vehicle-2", failure.Slug)
	}
	if failure.ID != "orig-vehicle-2" {
		t.Errorf("failure id = %q, want orig-vehicle-2", failure.ID)
	}
	if !strings.Contains(failure.Error, "title") {
		t.Errorf("failure error %q should mention the missing title", failure.Error)
	}
	if len(vehicles.Vehicles) != 4 {
		t.Errorf("expected 4 persisted vehicles, got %d", len(vehicles.Vehicles))
	}
}

func TestImportVehicles_PersistenceErrorIsIsolated(t *testing.T) {
	vehicles := mocks.NewMockVehicleRepository()
	vehicles.FailSlugs["vehicle-1"] = errors.New("constraint violation")
	pipeline := newTestPipeline(vehicles, mocks.NewMockReferenceRepository())

	batch := []models.RawVehicle{
		rawRecord("vehicle-0", "Vehicle 0"),
		rawRecord("vehicle-1", "Vehicle 1"),
		rawRecord("vehicle-2", "Vehicle 2"),
	}

	report, err := pipeline.ImportVehicles(context.Background(), batch, false)
	if err != nil {
		t.Fatal(err)
	}
	if report.Imported != 2 || report.Skipped != 1 {
		t.Errorf("report = %d imported / %d skipped, want 2 / 1", report.Imported, report.Skipped)
	}
	if len(report.Errors) != 1 || !strings.Contains(report.Errors[0], "vehicle-1") {
		t.Errorf("errors = %v, want one entry naming vehicle-1", report.Errors)
	}
}

func TestImportVehicles_SkipsRecordsWithoutSlug(t *testing.T) {
	vehicles := mocks.NewMockVehicleRepository()
	pipeline := newTestPipeline(vehicles, mocks.NewMockReferenceRepository())

	report, err := pipeline.ImportVehicles(context.Background(), []models.RawVehicle{
		{"id": "orphan-1", "preu": "9000"},
		rawRecord("vehicle-0", "Vehicle 0"),
	}, false)
	if err != nil {
		t.Fatal(err)
	}

	if report.Imported != 1 || report.Skipped != 1 {
		t.Errorf("report = %d imported / %d skipped, want 1 / 1", report.Imported, report.Skipped)
	}
	if len(report.DetailedReport.SkippedVehicles) != 1 {
		t.Fatalf("expected 1 skipped entry, got %d", len(report.DetailedReport.SkippedVehicles))
	}
	if got := report.DetailedReport.SkippedVehicles[0].ID; got != "orphan-1" {
		t.Errorf("skipped id = %q, want orphan-1", got)
	}
}

func TestImportVehicles_SlugFallsBackToTitle(t *testing.T) {
	vehicles := mocks.NewMockVehicleRepository()
	pipeline := newTestPipeline(vehicles, mocks.NewMockReferenceRepository())

	record := rawRecord("", "Citroën C4 Grand Picasso")
	delete(record, "slug")

	report, err := pipeline.ImportVehicles(context.Background(), []models.RawVehicle{record}, false)
	if err != nil {
		t.Fatal(err)
	}
	if report.Imported != 1 {
		t.Fatalf("report = %+v, want 1 imported", report)
	}
	if _, ok := vehicles.Vehicles["citroen-c4-grand-picasso"]; !ok {
		t.Errorf("expected slug derived from title, got %v", keysOf(vehicles.Vehicles))
	}
}

func TestImportVehicles_ClearExisting(t *testing.T) {
	vehicles := mocks.NewMockVehicleRepository()
	pipeline := newTestPipeline(vehicles, mocks.NewMockReferenceRepository())
	ctx := context.Background()

	if _, err := pipeline.ImportVehicles(ctx, []models.RawVehicle{rawRecord("old-one", "Old One")}, false); err != nil {
		t.Fatal(err)
	}

	report, err := pipeline.ImportVehicles(ctx, []models.RawVehicle{rawRecord("new-one", "New One")}, true)
	if err != nil {
		t.Fatal(err)
	}
	if report.Imported != 1 {
		t.Fatalf("report = %+v, want 1 imported", report)
	}
	if _, stale := vehicles.Vehicles["old-one"]; stale {
		t.Error("clearExisting left the previous vehicle in place")
	}
	if len(vehicles.Vehicles) != 1 {
		t.Errorf("expected 1 vehicle after clearing run, got %d", len(vehicles.Vehicles))
	}
}

func keysOf(m map[string]*models.Vehicle) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
