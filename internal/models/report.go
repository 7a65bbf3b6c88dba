package models

// ImportOutcome tags what the upsert did with one record.
type ImportOutcome string

const (
	OutcomeCreated ImportOutcome = "created"
	OutcomeUpdated ImportOutcome = "updated"
)

// ImportedVehicle is one successful line of the detailed report.
type ImportedVehicle struct {
	Slug    string        `json:"slug"`
	Title   string        `json:"title"`
	Outcome ImportOutcome `json:"outcome"`
}

// FailedVehicle records one record that could not be imported.
type FailedVehicle struct {
	Slug  string `json:"slug"`
	ID    string `json:"id"`
	Title string `json:"title"`
	Error string `json:"error"`
}

// SkippedVehicle records one record that was skipped before mapping (for
// example because it carries no usable slug).
type SkippedVehicle struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// DetailedReport is the per-record breakdown of an import run.
type DetailedReport struct {
	SuccessfulImports []ImportedVehicle `json:"successful_imports"`
	FailedImports     []FailedVehicle   `json:"failed_imports"`
	SkippedVehicles   []SkippedVehicle  `json:"skipped_vehicles"`
}

// ImportReport aggregates one bulk vehicle import run. It is returned to the
// caller and logged, not persisted.
type ImportReport struct {
	Imported       int            `json:"imported"`
	Skipped        int            `json:"skipped"`
	Errors         []string       `json:"errors,omitempty"`
	DetailedReport DetailedReport `json:"detailed_report"`
}

// SyncStats aggregates one model-sync pass for a brand or a whole run.
type SyncStats struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}

// Add accumulates another stats block into s.
func (s *SyncStats) Add(other SyncStats) {
	s.Imported += other.Imported
	s.Skipped += other.Skipped
	s.Total += other.Total
}

// BrandReconcileStats aggregates one brand reconciliation pass.
type BrandReconcileStats struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// CatalogStats is a point-in-time row count summary of the catalog.
type CatalogStats struct {
	Brands         int            `json:"brands"`
	Models         int            `json:"models"`
	Vehicles       int            `json:"vehicles"`
	VehiclesByType map[string]int `json:"vehicles_by_type"`
}
