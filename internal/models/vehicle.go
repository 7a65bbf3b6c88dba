package models

import "time"

// Vehicle is the canonical internal schema for a marketplace listing. It is
// derived from raw external payloads whose keys mix catalan/spanish legacy
// naming; the importer owns that mapping. Uniquely identified by Slug;
// OriginalID keeps traceability to the external source.
type Vehicle struct {
	ID         string `json:"id" db:"id"`
	OriginalID string `json:"original_id" db:"original_id"`
	Slug       string `json:"slug" db:"slug"`

	// Listing
	Title              string  `json:"title" db:"title"`
	Description        string  `json:"description"`
	VehicleType        string  `json:"vehicle_type" db:"vehicle_type"`
	Status             string  `json:"status"`
	Featured           bool    `json:"featured" db:"featured"`
	Sold               bool    `json:"sold"`
	Reserved           bool    `json:"reserved"`
	Price              float64 `json:"price" db:"price"`
	PriceOnDemand      bool    `json:"price_on_demand"`
	FinancedPrice      float64 `json:"financed_price,omitempty"`
	MonthlyInstallment float64 `json:"monthly_installment,omitempty"`

	// Brand / model (slugs into the brand and model catalogs)
	CarBrand        string `json:"car_brand,omitempty"`
	CarModel        string `json:"car_model,omitempty"`
	MotorcycleBrand string `json:"motorcycle_brand,omitempty"`
	MotorcycleModel string `json:"motorcycle_model,omitempty"`
	CaravanBrand    string `json:"caravan_brand,omitempty"`
	CaravanModel    string `json:"caravan_model,omitempty"`
	CommercialName  string `json:"commercial_name,omitempty"`
	Version         string `json:"version,omitempty"`

	// Registration / history
	Year              string `json:"year,omitempty"`
	RegistrationDate  string `json:"registration_date,omitempty"`
	Mileage           int    `json:"mileage,omitempty"`
	Owners            int    `json:"owners,omitempty"`
	Origin            string `json:"origin,omitempty"`
	IVADeductible     bool   `json:"iva_deductible"`
	Imported          bool   `json:"imported"`
	Accidented        bool   `json:"accidented"`
	WarrantyMonths    int    `json:"warranty_months,omitempty"`
	ITVExpiry         string `json:"itv_expiry,omitempty"`
	MaintenanceBook   bool   `json:"maintenance_book"`
	OfficialRevisions bool   `json:"official_revisions"`

	// Categorical fields resolved against reference collections
	FuelType           string `json:"fuel_type,omitempty"`
	TransmissionType   string `json:"transmission_type,omitempty"`
	ExteriorColor      string `json:"exterior_color,omitempty"`
	VehicleState       string `json:"vehicle_state,omitempty"`
	CarBodyType        string `json:"car_body_type,omitempty"`
	MotorcycleBodyType string `json:"motorcycle_body_type,omitempty"`
	CaravanBodyType    string `json:"caravan_body_type,omitempty"`
	UpholsteryType     string `json:"upholstery_type,omitempty"`
	UpholsteryColor    string `json:"upholstery_color,omitempty"`
	PropulsionType     string `json:"propulsion_type,omitempty"`

	// Mechanical
	EngineSizeCC    int     `json:"engine_size_cc,omitempty"`
	PowerCV         float64 `json:"power_cv,omitempty"`
	PowerKW         float64 `json:"power_kw,omitempty"`
	Cylinders       int     `json:"cylinders,omitempty"`
	Traction        string  `json:"traction,omitempty"`
	Gears           int     `json:"gears,omitempty"`
	MaxSpeed        int     `json:"max_speed,omitempty"`
	Acceleration    float64 `json:"acceleration,omitempty"`
	FuelConsumption float64 `json:"fuel_consumption,omitempty"`
	CO2Emissions    int     `json:"co2_emissions,omitempty"`
	EmissionLabel   string  `json:"emission_label,omitempty"`

	// Body / dimensions
	Doors       int     `json:"doors,omitempty"`
	Seats       int     `json:"seats,omitempty"`
	TrunkLiters int     `json:"trunk_liters,omitempty"`
	LengthM     float64 `json:"length_m,omitempty"`
	WidthM      float64 `json:"width_m,omitempty"`
	HeightM     float64 `json:"height_m,omitempty"`
	WeightKG    int     `json:"weight_kg,omitempty"`
	TankLiters  int     `json:"tank_liters,omitempty"`
	RoofRack    bool    `json:"roof_rack"`

	// Electric vehicle
	BatteryType        string  `json:"battery_type,omitempty"`
	ChargingCable      string  `json:"charging_cable,omitempty"`
	ElectricConnector  string  `json:"electric_connector,omitempty"`
	ChargingSpeed      string  `json:"charging_speed,omitempty"`
	EmissionType       string  `json:"emission_type,omitempty"`
	BatteryCapacityKWH float64 `json:"battery_capacity_kwh,omitempty"`
	AutonomyKM         int     `json:"autonomy_km,omitempty"`
	ChargingTimeH      float64 `json:"charging_time_h,omitempty"`
	FastChargingTimeM  float64 `json:"fast_charging_time_min,omitempty"`
	ElectricMotors     int     `json:"electric_motors,omitempty"`
	RegenerativeBrake  bool    `json:"regenerative_brake"`

	// Equipment (normalized slugs, no reference collection)
	CarExtras        []string `json:"car_extras,omitempty"`
	MotorcycleExtras []string `json:"motorcycle_extras,omitempty"`
	MotorhomeExtras  []string `json:"motorhome_extras,omitempty"`
	HabitationExtras []string `json:"habitation_extras,omitempty"`

	// Motorhome / caravan living area
	SleepingPlaces int  `json:"sleeping_places,omitempty"`
	BunkBeds       bool `json:"bunk_beds"`
	Bathroom       bool `json:"bathroom"`
	Kitchen        bool `json:"kitchen"`
	Heating        bool `json:"heating"`
	SolarPanel     bool `json:"solar_panel"`
	Awning         bool `json:"awning"`

	// Media
	FeaturedImageURL string   `json:"featured_image_url,omitempty"`
	GalleryURLs      []string `json:"gallery_urls,omitempty"`
	VideoURL         string   `json:"video_url,omitempty"`

	// Seller
	DealerID     string `json:"dealer_id,omitempty"`
	DealerName   string `json:"dealer_name,omitempty"`
	Location     string `json:"location,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RawVehicle is one untyped record of the bulk import payload. Keys follow the
// external marketplace's legacy naming (e.g. "titol-anunci", "marques-cotxe")
// and values arrive as strings, numbers, booleans or arrays interchangeably.
type RawVehicle map[string]any
