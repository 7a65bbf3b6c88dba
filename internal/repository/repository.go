package repository

import (
	"context"

	"github.com/vehicle-catalog-api/internal/database"
	"github.com/vehicle-catalog-api/internal/models"
)

// ReferenceRepository defines lookups against the reference collections.
type ReferenceRepository interface {
	FindByName(ctx context.Context, kind models.ReferenceKind, name string) (*models.ReferenceEntry, error)
	CountByKind(ctx context.Context, kind models.ReferenceKind) (int, error)
	Create(ctx context.Context, entry *models.ReferenceEntry) error
}

// BrandRepository defines brand catalog operations.
type BrandRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.Brand, error)
	Create(ctx context.Context, brand *models.Brand) error
	Update(ctx context.Context, brand *models.Brand) error
	ListByVehicleType(ctx context.Context, vehicleType string) ([]*models.Brand, error)
	Count(ctx context.Context) (int, error)
}

// ModelRepository defines model catalog operations. (BrandID, Slug) is the
// uniqueness key.
type ModelRepository interface {
	GetByBrandAndSlug(ctx context.Context, brandID, slug string) (*models.Model, error)
	Create(ctx context.Context, model *models.Model) error
	Count(ctx context.Context) (int, error)
}

// VehicleRepository defines vehicle catalog operations keyed by slug.
type VehicleRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.Vehicle, error)
	Create(ctx context.Context, vehicle *models.Vehicle) error
	Update(ctx context.Context, vehicle *models.Vehicle) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
	CountByVehicleType(ctx context.Context) (map[string]int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Reference ReferenceRepository
	Brand     BrandRepository
	Model     ModelRepository
	Vehicle   VehicleRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Reference: NewReferenceRepo(db),
		Brand:     NewBrandRepo(db),
		Model:     NewModelRepo(db),
		Vehicle:   NewVehicleRepo(db),
	}
}
