package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/vehicle-catalog-api/internal/models"
)

// staticCatalog reads the optional JSON seed files from the data directory.
// An absent file is not an error, the live API is used instead; a malformed
// file is.
type staticCatalog struct {
	dir string
	log zerolog.Logger
}

func newStaticCatalog(dir string, log zerolog.Logger) *staticCatalog {
	return &staticCatalog{
		dir: dir,
		log: log.With().Str("component", "static-catalog").Logger(),
	}
}

// brandsFile is the shape of data/brands.json.
type brandsFile struct {
	CarBrands        []models.BrandEntry `json:"carBrands"`
	MotorcycleBrands []models.BrandEntry `json:"motorcycleBrands"`
}

// modelsFile is the shape of data/models.json, keyed by brand slug.
type modelsFile struct {
	CarModels        map[string][]models.BrandEntry `json:"carModels"`
	MotorcycleModels map[string][]models.BrandEntry `json:"motorcycleModels"`
}

// referencesFile is the shape of data/references.json: reference entries
// grouped by collection kind.
type referencesFile map[models.ReferenceKind][]referenceSeed

// referenceSeed is one curated reference entry with its localized names.
type referenceSeed struct {
	Slug   string `json:"slug"`
	NameCA string `json:"ca"`
	NameES string `json:"es"`
	NameEN string `json:"en"`
	NameFR string `json:"fr"`
}

// forBrand returns the seeded model list for one brand, if any.
func (f *modelsFile) forBrand(vehicleType, brandSlug string) ([]models.BrandEntry, bool) {
	if f == nil {
		return nil, false
	}
	var byBrand map[string][]models.BrandEntry
	switch vehicleType {
	case models.VehicleTypeCar:
		byBrand = f.CarModels
	case models.VehicleTypeMotorcycle:
		byBrand = f.MotorcycleModels
	default:
		return nil, false
	}
	entries, ok := byBrand[brandSlug]
	return entries, ok
}

// loadBrands reads data/brands.json. Returns (nil, nil) when the file does
// not exist.
func (s *staticCatalog) loadBrands() (*brandsFile, error) {
	var file brandsFile
	ok, err := s.load("brands.json", &file)
	if err != nil || !ok {
		return nil, err
	}
	return &file, nil
}

// loadReferences reads data/references.json. Returns (nil, nil) when the
// file does not exist.
func (s *staticCatalog) loadReferences() (referencesFile, error) {
	var file referencesFile
	ok, err := s.load("references.json", &file)
	if err != nil || !ok {
		return nil, err
	}
	return file, nil
}

// loadModels reads data/models.json. Returns (nil, nil) when the file does
// not exist.
func (s *staticCatalog) loadModels() (*modelsFile, error) {
	var file modelsFile
	ok, err := s.load("models.json", &file)
	if err != nil || !ok {
		return nil, err
	}
	return &file, nil
}

func (s *staticCatalog) load(name string, dst any) (bool, error) {
	path := filepath.Join(s.dir, name)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.log.Debug().Str("path", path).Msg("No static catalog file, using live API")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	s.log.Info().Str("path", path).Msg("Loaded static catalog file")
	return true, nil
}
