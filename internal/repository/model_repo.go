package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/vehicle-catalog-api/internal/database"
	"github.com/vehicle-catalog-api/internal/models"
)

// modelRepo is the concrete implementation of ModelRepository
type modelRepo struct {
	db *database.DB
}

// NewModelRepo creates a new model repository
func NewModelRepo(db *database.DB) ModelRepository {
	return &modelRepo{db: db}
}

// GetByBrandAndSlug retrieves a model by its uniqueness key, nil when absent
func (r *modelRepo) GetByBrandAndSlug(ctx context.Context, brandID, slug string) (*models.Model, error) {
	query := `
		SELECT id, brand_id, slug, name, created_at
		FROM vehicle_models WHERE brand_id = $1 AND slug = $2
	`

	var model models.Model
	err := r.db.QueryRowContext(ctx, query, brandID, slug).Scan(
		&model.ID, &model.BrandID, &model.Slug, &model.Name, &model.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// Create inserts a new model
func (r *modelRepo) Create(ctx context.Context, model *models.Model) error {
	query := `
		INSERT INTO vehicle_models (id, brand_id, slug, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		model.ID, model.BrandID, model.Slug, model.Name, time.Now(),
	)
	return err
}

// Count returns the total number of models
func (r *modelRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vehicle_models").Scan(&count)
	return count, err
}
