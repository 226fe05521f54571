// Package clients holds the customer domain type and its storage contract.
package clients

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a client does not exist.
var ErrNotFound = errors.New("client not found")

// Client is one customer record.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists clients to durable storage.
type Store interface {
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id string) (Client, error)
	Save(ctx context.Context, c Client) error
	Delete(ctx context.Context, id string) error
}
