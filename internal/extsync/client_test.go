package extsync_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/config"
	"github.com/vehicle-catalog-api/internal/extsync"
	"github.com/vehicle-catalog-api/internal/models"
)

func newTestClient(serverURL string) *extsync.Client {
	cfg := &config.CatalogConfig{
		BaseURL:        serverURL,
		RequestTimeout: 5 * time.Second,
	}
	return extsync.NewClient(cfg, zerolog.Nop())
}

func TestFetchModels_EnvelopeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/marques-cotxe" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("marca") != "bmw" {
			t.Errorf("unexpected marca %s", r.URL.Query().Get("marca"))
		}
		w.Write([]byte(`{"status":"ok","total":2,"data":[{"value":"serie-3","label":"Serie 3"},{"value":"x5","label":"X5"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	entries, err := client.FetchModels(context.Background(), models.VehicleTypeCar, "bmw")
	if err != nil {
		t.Fatalf("FetchModels failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].SlugValue() != "serie-3" || entries[0].LabelValue() != "Serie 3" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
}

func TestFetchModels_BareArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"slug":"panigale","name":"Panigale V4"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	entries, err := client.FetchModels(context.Background(), models.VehicleTypeMotorcycle, "ducati")
	if err != nil {
		t.Fatalf("FetchModels failed: %v", err)
	}
	if len(entries) != 1 || entries[0].SlugValue() != "panigale" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestFetchModels_UnexpectedShapeYieldsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"maintenance"`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	entries, err := client.FetchModels(context.Background(), models.VehicleTypeCar, "seat")
	if err != nil {
		t.Fatalf("unexpected shape must not error, got: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result, got %+v", entries)
	}
}

func TestFetchBrands_ListsWithoutBrandFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/marques-moto" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("brand listing must not carry a query, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"status":"ok","total":1,"data":[{"value":"ducati","label":"Ducati"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	entries, err := client.FetchBrands(context.Background(), models.VehicleTypeMotorcycle)
	if err != nil {
		t.Fatalf("FetchBrands failed: %v", err)
	}
	if len(entries) != 1 || entries[0].SlugValue() != "ducati" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestFetchModels_Non200IsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.FetchModels(context.Background(), models.VehicleTypeCar, "audi"); err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestFetchModels_UnknownVehicleType(t *testing.T) {
	client := newTestClient("http://localhost:0")
	if _, err := client.FetchModels(context.Background(), "submarine", "x"); err == nil {
		t.Fatal("expected error for unknown vehicle type")
	}
}
