package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/fixdesk/internal/core/clients"
	"github.com/colonyops/fixdesk/internal/data/db"
)

// ClientStore implements clients.Store using SQLite.
type ClientStore struct {
	db *db.DB
}

var _ clients.Store = (*ClientStore)(nil)

// NewClientStore creates a new SQLite-backed client store.
func NewClientStore(db *db.DB) *ClientStore {
	return &ClientStore{db: db}
}

// List returns all clients ordered by name.
func (s *ClientStore) List(ctx context.Context) ([]clients.Client, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, name, phone, email, notes, created_at, updated_at
		FROM clients
		ORDER BY name COLLATE NOCASE
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []clients.Client
	for rows.Next() {
		var c clients.Client
		var createdAt, updatedAt int64
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Notes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		c.CreatedAt = time.Unix(0, createdAt)
		c.UpdatedAt = time.Unix(0, updatedAt)
		result = append(result, c)
	}

	return result, rows.Err()
}

// Get returns a client by ID. Returns ErrNotFound if not found.
func (s *ClientStore) Get(ctx context.Context, id string) (clients.Client, error) {
	var c clients.Client
	var createdAt, updatedAt int64

	err := s.db.Conn().QueryRowContext(ctx, `
		SELECT id, name, phone, email, notes, created_at, updated_at
		FROM clients WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Notes, &createdAt, &updatedAt)
	if IsNotFoundError(err) {
		return clients.Client{}, clients.ErrNotFound
	}
	if err != nil {
		return clients.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	c.CreatedAt = time.Unix(0, createdAt)
	c.UpdatedAt = time.Unix(0, updatedAt)
	return c, nil
}

// Save creates or updates a client.
func (s *ClientStore) Save(ctx context.Context, c clients.Client) error {
	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO clients (id, name, phone, email, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			phone = excluded.phone,
			email = excluded.email,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`, c.ID, c.Name, c.Phone, c.Email, c.Notes, c.CreatedAt.UnixNano(), c.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

// Delete removes a client by ID. Returns ErrNotFound if not found.
func (s *ClientStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.Conn().ExecContext(ctx, "DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return clients.ErrNotFound
	}
	return nil
}
