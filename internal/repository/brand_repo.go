package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/vehicle-catalog-api/internal/database"
	"github.com/vehicle-catalog-api/internal/models"
)

// brandRepo is the concrete implementation of BrandRepository
type brandRepo struct {
	db *database.DB
}

// NewBrandRepo creates a new brand repository
func NewBrandRepo(db *database.DB) BrandRepository {
	return &brandRepo{db: db}
}

// GetBySlug retrieves a brand by slug, nil when absent
func (r *brandRepo) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	query := `
		SELECT id, slug, name, vehicle_types, created_at, updated_at
		FROM brands WHERE slug = $1
	`

	var brand models.Brand
	var typesJSON []byte

	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&brand.ID, &brand.Slug, &brand.Name, &typesJSON,
		&brand.CreatedAt, &brand.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal(typesJSON, &brand.VehicleTypes)
	return &brand, nil
}

// Create inserts a new brand
func (r *brandRepo) Create(ctx context.Context, brand *models.Brand) error {
	typesJSON, _ := json.Marshal(brand.VehicleTypes)
	if brand.VehicleTypes == nil {
		typesJSON = []byte("[]")
	}

	query := `
		INSERT INTO brands (id, slug, name, vehicle_types, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		brand.ID, brand.Slug, brand.Name, typesJSON, now, now,
	)
	return err
}

// Update overwrites the mutable fields of a brand
func (r *brandRepo) Update(ctx context.Context, brand *models.Brand) error {
	typesJSON, _ := json.Marshal(brand.VehicleTypes)

	query := `
		UPDATE brands SET name = $2, vehicle_types = $3, updated_at = $4
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, brand.ID, brand.Name, typesJSON, time.Now())
	return err
}

// ListByVehicleType retrieves all brands tagged with the given vehicle type
func (r *brandRepo) ListByVehicleType(ctx context.Context, vehicleType string) ([]*models.Brand, error) {
	query := `
		SELECT id, slug, name, vehicle_types, created_at, updated_at
		FROM brands WHERE vehicle_types @> $1 ORDER BY slug
	`
	filter, _ := json.Marshal([]string{vehicleType})

	rows, err := r.db.QueryContext(ctx, query, filter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*models.Brand
	for rows.Next() {
		var brand models.Brand
		var typesJSON []byte
		if err := rows.Scan(
			&brand.ID, &brand.Slug, &brand.Name, &typesJSON,
			&brand.CreatedAt, &brand.UpdatedAt,
		); err != nil {
			return nil, err
		}
		json.Unmarshal(typesJSON, &brand.VehicleTypes)
		brands = append(brands, &brand)
	}
	return brands, rows.Err()
}

// Count returns the total number of brands
func (r *brandRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM brands").Scan(&count)
	return count, err
}
