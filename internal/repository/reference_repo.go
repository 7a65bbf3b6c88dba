package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/vehicle-catalog-api/internal/database"
	"github.com/vehicle-catalog-api/internal/models"
)

// referenceRepo is the concrete implementation of ReferenceRepository
type referenceRepo struct {
	db *database.DB
}

// NewReferenceRepo creates a new reference repository
func NewReferenceRepo(db *database.DB) ReferenceRepository {
	return &referenceRepo{db: db}
}

// FindByName retrieves the entry of a collection whose any localized name
// matches case-insensitively, nil when absent
func (r *referenceRepo) FindByName(ctx context.Context, kind models.ReferenceKind, name string) (*models.ReferenceEntry, error) {
	query := `
		SELECT id, kind, slug, name_ca, name_es, name_en, name_fr, created_at
		FROM reference_entries
		WHERE kind = $1
		  AND (LOWER(name_ca) = LOWER($2) OR LOWER(name_es) = LOWER($2)
		    OR LOWER(name_en) = LOWER($2) OR LOWER(name_fr) = LOWER($2))
		LIMIT 1
	`

	var entry models.ReferenceEntry
	err := r.db.QueryRowContext(ctx, query, kind, name).Scan(
		&entry.ID, &entry.Kind, &entry.Slug,
		&entry.NameCA, &entry.NameES, &entry.NameEN, &entry.NameFR,
		&entry.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CountByKind returns the number of entries of one collection. A zero count
// marks the collection as not yet populated.
func (r *referenceRepo) CountByKind(ctx context.Context, kind models.ReferenceKind) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reference_entries WHERE kind = $1", kind,
	).Scan(&count)
	return count, err
}

// Create inserts a new reference entry
func (r *referenceRepo) Create(ctx context.Context, entry *models.ReferenceEntry) error {
	query := `
		INSERT INTO reference_entries (id, kind, slug, name_ca, name_es, name_en, name_fr, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.Kind, entry.Slug,
		entry.NameCA, entry.NameES, entry.NameEN, entry.NameFR,
		time.Now(),
	)
	return err
}
