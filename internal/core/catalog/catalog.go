// Package catalog holds the device brand/model reference data that feeds
// the order form pickers.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/colonyops/fixdesk/internal/core/pick"
)

// ErrNotFound is returned when a catalog entry does not exist.
var ErrNotFound = errors.New("catalog entry not found")

// Brand is a device manufacturer.
type Brand struct {
	ID        string
	Label     string
	CreatedAt time.Time
}

// Model is one device model under a brand.
type Model struct {
	ID        string
	BrandID   string
	Label     string
	CreatedAt time.Time
}

// Store persists the device catalog.
type Store interface {
	ListBrands(ctx context.Context) ([]Brand, error)
	ListModels(ctx context.Context, brandID string) ([]Model, error)
	SaveBrand(ctx context.Context, b Brand) error
	SaveModel(ctx context.Context, m Model) error
}

// BrandOptions converts brands to picker options.
func BrandOptions(brands []Brand) []pick.Option {
	opts := make([]pick.Option, 0, len(brands))
	for _, b := range brands {
		opts = append(opts, pick.Option{ID: b.ID, Label: b.Label})
	}
	return opts
}

// ModelOptions converts models to picker options.
func ModelOptions(models []Model) []pick.Option {
	opts := make([]pick.Option, 0, len(models))
	for _, m := range models {
		opts = append(opts, pick.Option{ID: m.ID, Label: m.Label})
	}
	return opts
}
