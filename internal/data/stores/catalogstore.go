package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/fixdesk/internal/core/catalog"
	"github.com/colonyops/fixdesk/internal/data/db"
)

// CatalogStore implements catalog.Store using SQLite.
type CatalogStore struct {
	db *db.DB
}

var _ catalog.Store = (*CatalogStore)(nil)

// NewCatalogStore creates a new SQLite-backed catalog store.
func NewCatalogStore(db *db.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// ListBrands returns all brands ordered by label.
func (s *CatalogStore) ListBrands(ctx context.Context) ([]catalog.Brand, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, label, created_at FROM brands ORDER BY label COLLATE NOCASE
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []catalog.Brand
	for rows.Next() {
		var b catalog.Brand
		var createdAt int64
		if err := rows.Scan(&b.ID, &b.Label, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		b.CreatedAt = time.Unix(0, createdAt)
		result = append(result, b)
	}

	return result, rows.Err()
}

// ListModels returns all models for a brand ordered by label.
func (s *CatalogStore) ListModels(ctx context.Context, brandID string) ([]catalog.Model, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, brand_id, label, created_at
		FROM models WHERE brand_id = ?
		ORDER BY label COLLATE NOCASE
	`, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []catalog.Model
	for rows.Next() {
		var m catalog.Model
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.BrandID, &m.Label, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		m.CreatedAt = time.Unix(0, createdAt)
		result = append(result, m)
	}

	return result, rows.Err()
}

// SaveBrand creates or updates a brand.
func (s *CatalogStore) SaveBrand(ctx context.Context, b catalog.Brand) error {
	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO brands (id, label, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET label = excluded.label
	`, b.ID, b.Label, b.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save brand: %w", err)
	}
	return nil
}

// SaveModel creates or updates a model.
func (s *CatalogStore) SaveModel(ctx context.Context, m catalog.Model) error {
	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO models (id, brand_id, label, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			brand_id = excluded.brand_id,
			label = excluded.label
	`, m.ID, m.BrandID, m.Label, m.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}
	return nil
}
