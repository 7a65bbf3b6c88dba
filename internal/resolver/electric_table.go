package resolver

import (
	"strings"

	"github.com/vehicle-catalog-api/internal/models"
)

// electricTranslation is one row of the bundled translation table for the
// electric-vehicle collections. These collections may be unpopulated in a
// fresh environment, so the table acts as an extra resolution tier between
// the collection lookup and the manual slugifier.
type electricTranslation struct {
	Slug string
	CA   string
	ES   string
	EN   string
	FR   string
}

var electricTranslations = map[models.ReferenceKind][]electricTranslation{
	models.KindBatteryType: {
		{Slug: "ions-de-liti", CA: "Ions de liti (Li-ion)", ES: "Iones de litio (Li-ion)", EN: "Lithium-ion (Li-ion)", FR: "Lithium-ion (Li-ion)"},
		{Slug: "fosfat-de-ferro-i-liti", CA: "Fosfat de ferro i liti (LifeP04)", ES: "Fosfato de hierro y litio (LifeP04)", EN: "Lithium iron phosphate (LifeP04)", FR: "Lithium fer phosphate (LifeP04)"},
		{Slug: "niquel-cadmi", CA: "Níquel-cadmi (NiCd)", ES: "Níquel-cadmio (NiCd)", EN: "Nickel-cadmium (NiCd)", FR: "Nickel-cadmium (NiCd)"},
		{Slug: "niquel-hidrur-metallic", CA: "Níquel-hidrur metàl·lic (NiMH)", ES: "Níquel-hidruro metálico (NiMH)", EN: "Nickel-metal hydride (NiMH)", FR: "Nickel-hydrure métallique (NiMH)"},
		{Slug: "plom-acid", CA: "Plom-àcid", ES: "Plomo-ácido", EN: "Lead-acid", FR: "Plomb-acide"},
	},
	models.KindChargingCable: {
		{Slug: "cable-tipus-1", CA: "Cable tipus 1", ES: "Cable tipo 1", EN: "Type 1 cable", FR: "Câble type 1"},
		{Slug: "cable-tipus-2", CA: "Cable tipus 2", ES: "Cable tipo 2", EN: "Type 2 cable", FR: "Câble type 2"},
		{Slug: "cable-domestic", CA: "Cable domèstic", ES: "Cable doméstico", EN: "Domestic cable", FR: "Câble domestique"},
		{Slug: "sense-cable", CA: "Sense cable", ES: "Sin cable", EN: "No cable", FR: "Sans câble"},
	},
	models.KindElectricConnector: {
		{Slug: "connector-schuko", CA: "Connector Schuko", ES: "Conector Schuko", EN: "Schuko connector", FR: "Connecteur Schuko"},
		{Slug: "connector-mennekes", CA: "Connector Mennekes (Tipus 2)", ES: "Conector Mennekes (Tipo 2)", EN: "Mennekes connector (Type 2)", FR: "Connecteur Mennekes (Type 2)"},
		{Slug: "connector-css-combo", CA: "Connector CSS Combo", ES: "Conector CSS Combo", EN: "CSS Combo connector", FR: "Connecteur CSS Combo"},
		{Slug: "connector-chademo", CA: "Connector CHAdeMO", ES: "Conector CHAdeMO", EN: "CHAdeMO connector", FR: "Connecteur CHAdeMO"},
	},
	models.KindChargingSpeed: {
		{Slug: "carrega-lenta", CA: "Càrrega lenta", ES: "Carga lenta", EN: "Slow charging", FR: "Charge lente"},
		{Slug: "carrega-semi-rapida", CA: "Càrrega semi-ràpida", ES: "Carga semirrápida", EN: "Semi-fast charging", FR: "Charge semi-rapide"},
		{Slug: "carrega-rapida", CA: "Càrrega ràpida", ES: "Carga rápida", EN: "Fast charging", FR: "Charge rapide"},
		{Slug: "carrega-ultra-rapida", CA: "Càrrega ultra-ràpida", ES: "Carga ultrarrápida", EN: "Ultra-fast charging", FR: "Charge ultra-rapide"},
	},
	models.KindEmissionType: {
		{Slug: "zero-emissions", CA: "Zero emissions", ES: "Cero emisiones", EN: "Zero emissions", FR: "Zéro émission"},
		{Slug: "etiqueta-eco", CA: "Etiqueta ECO", ES: "Etiqueta ECO", EN: "ECO label", FR: "Étiquette ECO"},
		{Slug: "etiqueta-c", CA: "Etiqueta C", ES: "Etiqueta C", EN: "C label", FR: "Étiquette C"},
		{Slug: "etiqueta-b", CA: "Etiqueta B", ES: "Etiqueta B", EN: "B label", FR: "Étiquette B"},
	},
}

// lookupElectricTranslation matches a label against any of the four language
// columns of the bundled table, case-insensitively.
func lookupElectricTranslation(kind models.ReferenceKind, label string) (string, bool) {
	rows, ok := electricTranslations[kind]
	if !ok {
		return "", false
	}
	for _, row := range rows {
		for _, name := range []string{row.CA, row.ES, row.EN, row.FR} {
			if strings.EqualFold(name, label) {
				return row.Slug, true
			}
		}
	}
	return "", false
}
