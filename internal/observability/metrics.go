package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	VehiclesImported = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_vehicles_imported_total",
			Help: "Vehicles upserted by the import pipeline, by outcome",
		},
		[]string{"outcome"},
	)

	VehiclesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_vehicles_failed_total",
			Help: "Vehicle records that failed to import",
		},
	)

	ModelFetchRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_model_fetch_retries_total",
			Help: "Retried requests against the external catalog API",
		},
	)

	ModelsSynced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_models_synced_total",
			Help: "Models created by the external sync worker",
		},
	)
)

// Register registers all collectors on the default registry. Called once
// from main.
func Register() {
	prometheus.MustRegister(VehiclesImported, VehiclesFailed, ModelFetchRetries, ModelsSynced)
}
