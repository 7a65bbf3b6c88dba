package models

import "time"

// Vehicle type tags carried on brands and used to pick the external catalog
// endpoint.
const (
	VehicleTypeCar        = "car"
	VehicleTypeMotorcycle = "motorcycle"
	VehicleTypeCaravan    = "caravan"
)

// Brand is a vehicle manufacturer. VehicleTypes records which source lists the
// brand appeared in; it only ever grows.
type Brand struct {
	ID           string    `json:"id" db:"id"`
	Slug         string    `json:"slug" db:"slug"`
	Name         string    `json:"name" db:"name"`
	VehicleTypes []string  `json:"vehicle_types" db:"vehicle_types"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// HasVehicleType reports whether the brand is already tagged with the type.
func (b *Brand) HasVehicleType(vt string) bool {
	for _, t := range b.VehicleTypes {
		if t == vt {
			return true
		}
	}
	return false
}

// Model is one vehicle model of a brand. (BrandID, Slug) is unique.
type Model struct {
	ID        string    `json:"id" db:"id"`
	BrandID   string    `json:"brand_id" db:"brand_id"`
	Slug      string    `json:"slug" db:"slug"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BrandEntry is one item of an external or static brand/model list. The
// external API emits either value/label or slug/name keys depending on the
// endpoint, so both are accepted.
type BrandEntry struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	AltSlug string `json:"slug,omitempty"`
	AltName string `json:"name,omitempty"`
}

// SlugValue returns the canonical slug of the entry regardless of which key
// the source used.
func (e BrandEntry) SlugValue() string {
	if e.Value != "" {
		return e.Value
	}
	return e.AltSlug
}

// LabelValue returns the display label of the entry regardless of which key
// the source used.
func (e BrandEntry) LabelValue() string {
	if e.Label != "" {
		return e.Label
	}
	return e.AltName
}
