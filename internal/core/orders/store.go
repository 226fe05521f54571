package orders

import (
	"context"
	"errors"

	"github.com/colonyops/fixdesk/internal/core/checklist"
)

// ErrNotFound is returned when an order does not exist.
var ErrNotFound = errors.New("order not found")

// Store persists service orders to durable storage.
type Store interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
	Save(ctx context.Context, o Order, snap *checklist.Snapshot) error
	Delete(ctx context.Context, id string) error
	Checklist(ctx context.Context, orderID string) (*checklist.Snapshot, error)
	NextNumber(ctx context.Context) (int64, error)
}
