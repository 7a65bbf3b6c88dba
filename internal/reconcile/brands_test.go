package reconcile_test

import (
	"context"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/mocks"
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/reconcile"
)

func carAndMotoSources() []reconcile.SourceList {
	return []reconcile.SourceList{
		{
			VehicleType: models.VehicleTypeCar,
			Entries: []models.BrandEntry{
				{Value: "bmw", Label: "BMW"},
				{Value: "seat", Label: "SEAT"},
				{Value: "audi", Label: "Audi"},
			},
		},
		{
			VehicleType: models.VehicleTypeMotorcycle,
			Entries: []models.BrandEntry{
				{Value: "bmw", Label: "BMW"},
				{Value: "ducati", Label: "Ducati"},
			},
		},
	}
}

func TestReconcile_DedupAcrossVehicleTypes(t *testing.T) {
	brands := mocks.NewMockBrandRepository()
	r := reconcile.New(brands, 0, zerolog.Nop())

	stats, err := r.Reconcile(context.Background(), carAndMotoSources())
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if len(brands.Brands) != 4 {
		t.Fatalf("expected 4 brands, got %d", len(brands.Brands))
	}
	if stats.Created != 4 {
		t.Errorf("expected 4 created, got %d", stats.Created)
	}

	bmw := brands.Brands["bmw"]
	if bmw == nil {
		t.Fatal("bmw brand missing")
	}
	got := append([]string(nil), bmw.VehicleTypes...)
	sort.Strings(got)
	want := []string{models.VehicleTypeCar, models.VehicleTypeMotorcycle}
	sort.Strings(want)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("bmw vehicle types = %v, want %v", bmw.VehicleTypes, want)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	brands := mocks.NewMockBrandRepository()
	r := reconcile.New(brands, 0, zerolog.Nop())
	ctx := context.Background()

	if _, err := r.Reconcile(ctx, carAndMotoSources()); err != nil {
		t.Fatal(err)
	}
	stats, err := r.Reconcile(ctx, carAndMotoSources())
	if err != nil {
		t.Fatal(err)
	}

	if stats.Created != 0 {
		t.Errorf("second run created %d brands, want 0", stats.Created)
	}
	if stats.Skipped != 4 {
		t.Errorf("second run skipped %d, want 4", stats.Skipped)
	}
	if len(brands.Brands) != 4 {
		t.Errorf("brand count changed between runs: %d", len(brands.Brands))
	}
}

func TestReconcile_ExtendsPersistedVehicleTypes(t *testing.T) {
	brands := mocks.NewMockBrandRepository()
	brands.Brands["bmw"] = &models.Brand{
		ID:           "existing-bmw",
		Slug:         "bmw",
		Name:         "BMW",
		VehicleTypes: []string{models.VehicleTypeCar},
	}

	r := reconcile.New(brands, 0, zerolog.Nop())
	stats, err := r.Reconcile(context.Background(), []reconcile.SourceList{
		{
			VehicleType: models.VehicleTypeMotorcycle,
			Entries:     []models.BrandEntry{{Value: "bmw", Label: "BMW"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	// No new row, but the union side effect happened.
	if stats.Created != 0 || stats.Skipped != 1 {
		t.Errorf("stats = %+v, want 0 created / 1 skipped", stats)
	}
	bmw := brands.Brands["bmw"]
	if bmw.ID != "existing-bmw" {
		t.Errorf("existing row replaced: %s", bmw.ID)
	}
	if !bmw.HasVehicleType(models.VehicleTypeMotorcycle) || !bmw.HasVehicleType(models.VehicleTypeCar) {
		t.Errorf("vehicle types not unioned: %v", bmw.VehicleTypes)
	}
	if brands.UpdateCalls != 1 {
		t.Errorf("expected exactly one update, got %d", brands.UpdateCalls)
	}
}

func TestReconcile_SupersetCausesNoWrite(t *testing.T) {
	brands := mocks.NewMockBrandRepository()
	brands.Brands["bmw"] = &models.Brand{
		ID:           "existing-bmw",
		Slug:         "bmw",
		Name:         "BMW",
		VehicleTypes: []string{models.VehicleTypeCar, models.VehicleTypeMotorcycle},
	}

	r := reconcile.New(brands, 0, zerolog.Nop())
	if _, err := r.Reconcile(context.Background(), carAndMotoSources()); err != nil {
		t.Fatal(err)
	}
	if brands.UpdateCalls != 0 {
		t.Errorf("superset brand should not be written, got %d updates", brands.UpdateCalls)
	}
}

func TestReconcile_SkipsInvalidEntries(t *testing.T) {
	brands := mocks.NewMockBrandRepository()
	r := reconcile.New(brands, 0, zerolog.Nop())

	stats, err := r.Reconcile(context.Background(), []reconcile.SourceList{
		{
			VehicleType: models.VehicleTypeCar,
			Entries: []models.BrandEntry{
				{Value: "", Label: "No Slug"},
				{Value: "no-label", Label: ""},
				{Value: "ok", Label: "OK Motors"},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Created != 1 {
		t.Errorf("expected 1 created, got %d", stats.Created)
	}
	if stats.Skipped != 2 {
		t.Errorf("expected 2 skipped, got %d", stats.Skipped)
	}
}

func TestReconcile_TruncatesMergedSet(t *testing.T) {
	brands := mocks.NewMockBrandRepository()
	r := reconcile.New(brands, 2, zerolog.Nop())

	stats, err := r.Reconcile(context.Background(), carAndMotoSources())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Created != 2 {
		t.Errorf("expected 2 created after truncation, got %d", stats.Created)
	}
	if len(brands.Brands) != 2 {
		t.Errorf("expected 2 brands persisted, got %d", len(brands.Brands))
	}
}

func TestReconcile_AlternateKeyNames(t *testing.T) {
	brands := mocks.NewMockBrandRepository()
	r := reconcile.New(brands, 0, zerolog.Nop())

	// The motorcycle endpoint emits slug/name instead of value/label.
	_, err := r.Reconcile(context.Background(), []reconcile.SourceList{
		{
			VehicleType: models.VehicleTypeMotorcycle,
			Entries:     []models.BrandEntry{{AltSlug: "ducati", AltName: "Ducati"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if brands.Brands["ducati"] == nil {
		t.Fatal("brand from slug/name keys not created")
	}
}
