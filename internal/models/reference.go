package models

import "time"

// ReferenceKind names a reference collection used to resolve free-text labels
// into canonical slugs.
type ReferenceKind string

const (
	KindFuelType          ReferenceKind = "fuel_type"
	KindTransmissionType  ReferenceKind = "transmission_type"
	KindExteriorColor     ReferenceKind = "exterior_color"
	KindVehicleState      ReferenceKind = "vehicle_state"
	KindCarBodyType       ReferenceKind = "car_body_type"
	KindMotorcycleBody    ReferenceKind = "motorcycle_body_type"
	KindCaravanBodyType   ReferenceKind = "caravan_body_type"
	KindUpholsteryType    ReferenceKind = "upholstery_type"
	KindUpholsteryColor   ReferenceKind = "upholstery_color"
	KindPropulsionType    ReferenceKind = "propulsion_type"
	KindBatteryType       ReferenceKind = "battery_type"
	KindChargingCable     ReferenceKind = "charging_cable"
	KindElectricConnector ReferenceKind = "electric_connector"
	KindChargingSpeed     ReferenceKind = "charging_speed"
	KindEmissionType      ReferenceKind = "emission_type"
)

// ElectricKinds are the collections that may be unpopulated in a fresh
// environment and therefore get an extra static-translation fallback tier.
var ElectricKinds = map[ReferenceKind]bool{
	KindBatteryType:       true,
	KindChargingCable:     true,
	KindElectricConnector: true,
	KindChargingSpeed:     true,
	KindEmissionType:      true,
}

// ReferenceEntry is one row of a reference collection: a canonical slug plus
// its localized display names.
type ReferenceEntry struct {
	ID        string        `json:"id" db:"id"`
	Kind      ReferenceKind `json:"kind" db:"kind"`
	Slug      string        `json:"slug" db:"slug"`
	NameCA    string        `json:"name_ca" db:"name_ca"`
	NameES    string        `json:"name_es" db:"name_es"`
	NameEN    string        `json:"name_en" db:"name_en"`
	NameFR    string        `json:"name_fr" db:"name_fr"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

// Names returns the non-empty localized names of the entry.
func (e *ReferenceEntry) Names() []string {
	var names []string
	for _, n := range []string{e.NameCA, e.NameES, e.NameEN, e.NameFR} {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}
