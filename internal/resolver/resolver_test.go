package resolver_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/mocks"
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/resolver"
)

func newResolver(refs *mocks.MockReferenceRepository) *resolver.Resolver {
	return resolver.New(refs, zerolog.Nop())
}

func TestResolve_CollectionMatchIsAuthoritative(t *testing.T) {
	refs := mocks.NewMockReferenceRepository()
	refs.Entries = append(refs.Entries, &models.ReferenceEntry{
		Kind:   models.KindFuelType,
		Slug:   "hibrid-endollable",
		NameCA: "Híbrid Endollable",
		NameES: "Híbrido Enchufable",
		NameEN: "Plug-in Hybrid",
	})

	ctx := context.Background()
	r := newResolver(refs)

	tests := []struct {
		label string
		want  string
	}{
		{"Híbrid Endollable", "hibrid-endollable"},
		{"híbrid endollable", "hibrid-endollable"},
		{"PLUG-IN HYBRID", "hibrid-endollable"},
		{"Híbrido Enchufable", "hibrid-endollable"},
	}
	for _, tt := range tests {
		got, err := r.Resolve(ctx, tt.label, models.KindFuelType)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", tt.label, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	refs := mocks.NewMockReferenceRepository()
	refs.Entries = append(refs.Entries, &models.ReferenceEntry{
		Kind:   models.KindExteriorColor,
		Slug:   "vermell",
		NameCA: "Vermell",
		NameES: "Rojo",
	})

	ctx := context.Background()
	r := newResolver(refs)

	first, err := r.Resolve(ctx, "Rojo", models.KindExteriorColor)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		got, err := r.Resolve(ctx, "Rojo", models.KindExteriorColor)
		if err != nil {
			t.Fatal(err)
		}
		if got != first {
			t.Fatalf("resolution not idempotent: %q vs %q", got, first)
		}
	}
}

func TestResolve_EmptyLabel(t *testing.T) {
	r := newResolver(mocks.NewMockReferenceRepository())
	for _, label := range []any{nil, "", "   ", []any{"", nil}} {
		got, err := r.Resolve(context.Background(), label, models.KindFuelType)
		if err != nil {
			t.Fatal(err)
		}
		if got != "" {
			t.Errorf("Resolve(%v) = %q, want empty", label, got)
		}
	}
}

func TestResolve_AbsentCollectionShortCircuits(t *testing.T) {
	// No fuel_type entries at all: the label must not be slugified.
	refs := mocks.NewMockReferenceRepository()
	r := newResolver(refs)

	got, err := r.Resolve(context.Background(), "Benzina", models.KindFuelType)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("expected empty slug for absent collection, got %q", got)
	}
}

func TestResolve_MissFallsBackToManualSlug(t *testing.T) {
	refs := mocks.NewMockReferenceRepository()
	refs.Entries = append(refs.Entries, &models.ReferenceEntry{
		Kind:   models.KindFuelType,
		Slug:   "benzina",
		NameCA: "Benzina",
	})

	r := newResolver(refs)
	got, err := r.Resolve(context.Background(), "Gas Natural Comprimit", models.KindFuelType)
	if err != nil {
		t.Fatal(err)
	}
	if got != "gas-natural-comprimit" {
		t.Errorf("expected manual fallback slug, got %q", got)
	}
}

func TestResolve_ElectricStaticTableTier(t *testing.T) {
	// Fresh environment: battery_type collection is empty, but the bundled
	// translation table still resolves all four languages.
	refs := mocks.NewMockReferenceRepository()
	r := newResolver(refs)
	ctx := context.Background()

	tests := []struct {
		label string
		kind  models.ReferenceKind
		want  string
	}{
		{"Fosfat de ferro i liti (LifeP04)", models.KindBatteryType, "fosfat-de-ferro-i-liti"},
		{"Lithium-ion (Li-ion)", models.KindBatteryType, "ions-de-liti"},
		{"Carga rápida", models.KindChargingSpeed, "carrega-rapida"},
		{"Connecteur Schuko", models.KindElectricConnector, "connector-schuko"},
		{"Etiqueta ECO", models.KindEmissionType, "etiqueta-eco"},
	}
	for _, tt := range tests {
		got, err := r.Resolve(ctx, tt.label, tt.kind)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q, %s) = %q, want %q", tt.label, tt.kind, got, tt.want)
		}
	}
}

func TestResolve_ElectricCollectionBeatsStaticTable(t *testing.T) {
	refs := mocks.NewMockReferenceRepository()
	refs.Entries = append(refs.Entries, &models.ReferenceEntry{
		Kind:   models.KindBatteryType,
		Slug:   "liti-ion-curated",
		NameCA: "Ions de liti (Li-ion)",
	})

	r := newResolver(refs)
	got, err := r.Resolve(context.Background(), "Ions de liti (Li-ion)", models.KindBatteryType)
	if err != nil {
		t.Fatal(err)
	}
	if got != "liti-ion-curated" {
		t.Errorf("collection entry should win over static table, got %q", got)
	}
}

func TestResolve_ElectricUnknownFallsBackToManual(t *testing.T) {
	r := newResolver(mocks.NewMockReferenceRepository())
	got, err := r.Resolve(context.Background(), "Bateria d'Estat Sòlid", models.KindBatteryType)
	if err != nil {
		t.Fatal(err)
	}
	if got != "bateria-destat-solid" {
		t.Errorf("expected manual fallback, got %q", got)
	}
}

func TestResolveExtras(t *testing.T) {
	in := []any{"Llandes d'aliatge", "Sostre solar", "", "sostre solar", nil, "Càmera de visió posterior"}
	got := resolver.ResolveExtras(in)
	want := []string{"llandes-daliatge", "sostre-solar", "camera-de-visio-posterior"}

	if len(got) != len(want) {
		t.Fatalf("ResolveExtras returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResolveExtras[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
