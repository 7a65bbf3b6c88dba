package importer

import (
	"github.com/vehicle-catalog-api/internal/models"
	"github.com/vehicle-catalog-api/internal/sanitize"
)

// firstOf returns the value of the first alias present in the raw record.
// The external export renamed several keys over the years (catalan/spanish
// hybrids), so most fields carry more than one candidate key.
func firstOf(raw models.RawVehicle, keys ...string) any {
	for _, key := range keys {
		if v, ok := raw[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// rawSlug derives the record's slug: the explicit slug field when present,
// otherwise the normalized title.
func rawSlug(raw models.RawVehicle) string {
	if slug := sanitize.Slugify(firstOf(raw, "slug", "nom-url")); slug != "" {
		return slug
	}
	return sanitize.Slugify(firstOf(raw, "titol-anunci", "titulo-anuncio"))
}

func rawOriginalID(raw models.RawVehicle) string {
	return coerceString(firstOf(raw, "id", "original-id", "id-anunci"))
}

func rawTitle(raw models.RawVehicle) string {
	return coerceString(firstOf(raw, "titol-anunci", "titulo-anuncio"))
}

// mapVehicle builds the canonical record from the raw payload plus the
// already-resolved categorical fields. Pure mapping, no I/O.
func mapVehicle(raw models.RawVehicle, slug string, resolved *resolvedFields) *models.Vehicle {
	v := &models.Vehicle{
		OriginalID: rawOriginalID(raw),
		Slug:       slug,

		Title:              rawTitle(raw),
		Description:        coerceString(firstOf(raw, "descripcio-anunci", "descripcion-anuncio")),
		VehicleType:        coerceString(firstOf(raw, "tipus-vehicle", "tipo-vehiculo")),
		Status:             coerceString(firstOf(raw, "estat-anunci", "estado-anuncio")),
		Featured:           coerceBool(firstOf(raw, "anunci-destacat", "anuncio-destacado")),
		Sold:               coerceBool(firstOf(raw, "venut", "vendido")),
		Reserved:           coerceBool(firstOf(raw, "reservat", "reservado")),
		Price:              coerceFloat(firstOf(raw, "preu", "precio")),
		PriceOnDemand:      coerceBool(firstOf(raw, "preu-a-consultar", "precio-a-consultar")),
		FinancedPrice:      coerceFloat(firstOf(raw, "preu-financat", "precio-financiado")),
		MonthlyInstallment: coerceFloat(firstOf(raw, "quota-mensual", "cuota-mensual")),

		CarBrand:        sanitize.Slugify(firstOf(raw, "marques-cotxe", "marca-cotxe")),
		CarModel:        sanitize.Slugify(firstOf(raw, "models-cotxe", "modelo-cotxe")),
		MotorcycleBrand: sanitize.Slugify(firstOf(raw, "marques-moto", "marca-moto")),
		MotorcycleModel: sanitize.Slugify(firstOf(raw, "models-moto", "modelo-moto")),
		CaravanBrand:    sanitize.Slugify(firstOf(raw, "marques-autocaravana", "marca-autocaravana")),
		CaravanModel:    sanitize.Slugify(firstOf(raw, "models-autocaravana", "modelo-autocaravana")),
		CommercialName:  coerceString(firstOf(raw, "nom-comercial")),
		Version:         coerceString(firstOf(raw, "versio", "version")),

		Year:              coerceString(firstOf(raw, "any-fabricacio", "ano-fabricacion")),
		RegistrationDate:  coerceString(firstOf(raw, "data-matriculacio", "fecha-matriculacion")),
		Mileage:           coerceInt(firstOf(raw, "quilometratge", "kilometraje")),
		Owners:            coerceInt(firstOf(raw, "nombre-propietaris", "numero-propietarios")),
		Origin:            coerceString(firstOf(raw, "origen-vehicle", "origen")),
		IVADeductible:     coerceBool(firstOf(raw, "iva-deduible", "iva-deducible")),
		Imported:          coerceBool(firstOf(raw, "vehicle-importat")),
		Accidented:        coerceBool(firstOf(raw, "vehicle-accidentat")),
		WarrantyMonths:    coerceInt(firstOf(raw, "mesos-garantia", "meses-garantia")),
		ITVExpiry:         coerceString(firstOf(raw, "data-itv", "fecha-itv")),
		MaintenanceBook:   coerceBool(firstOf(raw, "llibre-manteniment", "libro-mantenimiento")),
		OfficialRevisions: coerceBool(firstOf(raw, "revisions-oficials", "revisiones-oficiales")),

		FuelType:           resolved.fuelType,
		TransmissionType:   resolved.transmission,
		ExteriorColor:      resolved.exteriorColor,
		VehicleState:       resolved.vehicleState,
		CarBodyType:        resolved.carBody,
		MotorcycleBodyType: resolved.motorcycleBody,
		CaravanBodyType:    resolved.caravanBody,
		UpholsteryType:     resolved.upholsteryType,
		UpholsteryColor:    resolved.upholsteryColor,
		PropulsionType:     resolved.propulsion,

		EngineSizeCC:    coerceInt(firstOf(raw, "cilindrada")),
		PowerCV:         coerceFloat(firstOf(raw, "potencia-cv", "potencia")),
		PowerKW:         coerceFloat(firstOf(raw, "potencia-kw")),
		Cylinders:       coerceInt(firstOf(raw, "nombre-cilindres", "numero-cilindros")),
		Traction:        coerceString(firstOf(raw, "traccio", "traccion")),
		Gears:           coerceInt(firstOf(raw, "nombre-marxes", "numero-marchas")),
		MaxSpeed:        coerceInt(firstOf(raw, "velocitat-maxima", "velocidad-maxima")),
		Acceleration:    coerceFloat(firstOf(raw, "acceleracio", "aceleracion")),
		FuelConsumption: coerceFloat(firstOf(raw, "consum-mixt", "consumo-mixto")),
		CO2Emissions:    coerceInt(firstOf(raw, "emissions-co2", "emisiones-co2")),
		EmissionLabel:   coerceString(firstOf(raw, "etiqueta-ambiental")),

		Doors:       coerceInt(firstOf(raw, "portes", "puertas")),
		Seats:       coerceInt(firstOf(raw, "places", "plazas")),
		TrunkLiters: coerceInt(firstOf(raw, "capacitat-maleter")),
		LengthM:     coerceFloat(firstOf(raw, "llargada", "longitud")),
		WidthM:      coerceFloat(firstOf(raw, "amplada", "anchura")),
		HeightM:     coerceFloat(firstOf(raw, "alcada", "altura")),
		WeightKG:    coerceInt(firstOf(raw, "pes", "peso")),
		TankLiters:  coerceInt(firstOf(raw, "capacitat-diposit")),
		RoofRack:    coerceBool(firstOf(raw, "baca")),

		BatteryType:        resolved.battery,
		ChargingCable:      resolved.cable,
		ElectricConnector:  resolved.connector,
		ChargingSpeed:      resolved.chargingSpeed,
		EmissionType:       resolved.emission,
		BatteryCapacityKWH: coerceFloat(firstOf(raw, "capacitat-bateria")),
		AutonomyKM:         coerceInt(firstOf(raw, "autonomia-electrica", "autonomia")),
		ChargingTimeH:      coerceFloat(firstOf(raw, "temps-recarrega")),
		FastChargingTimeM:  coerceFloat(firstOf(raw, "temps-recarrega-rapida")),
		ElectricMotors:     coerceInt(firstOf(raw, "nombre-motors")),
		RegenerativeBrake:  coerceBool(firstOf(raw, "frenada-regenerativa")),

		CarExtras:        resolved.carExtras,
		MotorcycleExtras: resolved.motorcycleExtras,
		MotorhomeExtras:  resolved.motorhomeExtras,
		HabitationExtras: resolved.habitationExtras,

		SleepingPlaces: coerceInt(firstOf(raw, "places-llit", "plazas-cama")),
		BunkBeds:       coerceBool(firstOf(raw, "lliteres", "literas")),
		Bathroom:       coerceBool(firstOf(raw, "bany", "bano")),
		Kitchen:        coerceBool(firstOf(raw, "cuina", "cocina")),
		Heating:        coerceBool(firstOf(raw, "calefaccio", "calefaccion")),
		SolarPanel:     coerceBool(firstOf(raw, "placa-solar")),
		Awning:         coerceBool(firstOf(raw, "tendal", "toldo")),

		FeaturedImageURL: coerceString(firstOf(raw, "imatge-destacada-url", "imagen-destacada-url")),
		GalleryURLs:      coerceStringSlice(firstOf(raw, "galeria-vehicle-urls", "galeria-urls")),
		VideoURL:         coerceString(firstOf(raw, "video-vehicle", "video-url")),

		DealerID:     coerceString(firstOf(raw, "id-concessionari", "id-concesionario")),
		DealerName:   coerceString(firstOf(raw, "nom-concessionari", "nombre-concesionario")),
		Location:     coerceString(firstOf(raw, "poblacio", "poblacion")),
		ContactPhone: coerceString(firstOf(raw, "telefon-contacte", "telefono-contacto")),
	}

	return v
}
