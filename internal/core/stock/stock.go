// Package stock holds the spare-part inventory domain.
package stock

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a stock item does not exist.
var ErrNotFound = errors.New("stock item not found")

// Item is one spare-part inventory record. UnitCost is stored in cents.
type Item struct {
	ID        string
	Name      string
	SKU       string
	Quantity  int64
	UnitCost  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists stock items to durable storage.
type Store interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Save(ctx context.Context, i Item) error
	Adjust(ctx context.Context, id string, delta int64) (Item, error)
	Delete(ctx context.Context, id string) error
}
