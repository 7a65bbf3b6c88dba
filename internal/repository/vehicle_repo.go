package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/vehicle-catalog-api/internal/database"
	"github.com/vehicle-catalog-api/internal/models"
)

// vehicleRepo is the concrete implementation of VehicleRepository. The
// canonical record is wide (~90 fields), so scalar columns cover the fields
// the admin queries on and the full record travels in a jsonb column.
type vehicleRepo struct {
	db *database.DB
}

// NewVehicleRepo creates a new vehicle repository
func NewVehicleRepo(db *database.DB) VehicleRepository {
	return &vehicleRepo{db: db}
}

// GetBySlug retrieves a vehicle by slug, nil when absent
func (r *vehicleRepo) GetBySlug(ctx context.Context, slug string) (*models.Vehicle, error) {
	query := `
		SELECT data, created_at, updated_at
		FROM vehicles WHERE slug = $1
	`

	var data []byte
	var createdAt, updatedAt time.Time

	err := r.db.QueryRowContext(ctx, query, slug).Scan(&data, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var vehicle models.Vehicle
	if err := json.Unmarshal(data, &vehicle); err != nil {
		return nil, err
	}
	vehicle.CreatedAt = createdAt
	vehicle.UpdatedAt = updatedAt
	return &vehicle, nil
}

// Create inserts a new vehicle
func (r *vehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	data, err := json.Marshal(vehicle)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO vehicles (id, original_id, slug, title, vehicle_type, price, featured, sold, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	now := time.Now()
	_, err = r.db.ExecContext(ctx, query,
		vehicle.ID, vehicle.OriginalID, vehicle.Slug, vehicle.Title,
		vehicle.VehicleType, vehicle.Price, vehicle.Featured, vehicle.Sold,
		data, now, now,
	)
	return err
}

// Update overwrites a vehicle in full, keyed by slug. No partial merge.
func (r *vehicleRepo) Update(ctx context.Context, vehicle *models.Vehicle) error {
	data, err := json.Marshal(vehicle)
	if err != nil {
		return err
	}

	query := `
		UPDATE vehicles
		SET original_id = $2, title = $3, vehicle_type = $4, price = $5,
		    featured = $6, sold = $7, data = $8, updated_at = $9
		WHERE slug = $1
	`
	_, err = r.db.ExecContext(ctx, query,
		vehicle.Slug, vehicle.OriginalID, vehicle.Title, vehicle.VehicleType,
		vehicle.Price, vehicle.Featured, vehicle.Sold, data, time.Now(),
	)
	return err
}

// DeleteAll removes every vehicle (full-refresh imports)
func (r *vehicleRepo) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM vehicles")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Count returns the total number of vehicles
func (r *vehicleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vehicles").Scan(&count)
	return count, err
}

// CountByVehicleType returns vehicle counts grouped by type
func (r *vehicleRepo) CountByVehicleType(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT vehicle_type, COUNT(*) FROM vehicles GROUP BY vehicle_type",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var vt string
		var count int
		if err := rows.Scan(&vt, &count); err != nil {
			return nil, err
		}
		counts[vt] = count
	}
	return counts, rows.Err()
}
