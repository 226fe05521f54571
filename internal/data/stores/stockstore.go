package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/colonyops/fixdesk/internal/core/stock"
	"github.com/colonyops/fixdesk/internal/data/db"
)

// StockStore implements stock.Store using SQLite.
type StockStore struct {
	db *db.DB
}

var _ stock.Store = (*StockStore)(nil)

// NewStockStore creates a new SQLite-backed stock store.
func NewStockStore(db *db.DB) *StockStore {
	return &StockStore{db: db}
}

// List returns all stock items ordered by name.
func (s *StockStore) List(ctx context.Context) ([]stock.Item, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, name, sku, quantity, unit_cost, created_at, updated_at
		FROM stock_items
		ORDER BY name COLLATE NOCASE
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []stock.Item
	for rows.Next() {
		var i stock.Item
		var createdAt, updatedAt int64
		if err := rows.Scan(&i.ID, &i.Name, &i.SKU, &i.Quantity, &i.UnitCost, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stock item: %w", err)
		}
		i.CreatedAt = time.Unix(0, createdAt)
		i.UpdatedAt = time.Unix(0, updatedAt)
		result = append(result, i)
	}

	return result, rows.Err()
}

// Get returns a stock item by ID. Returns ErrNotFound if not found.
func (s *StockStore) Get(ctx context.Context, id string) (stock.Item, error) {
	var i stock.Item
	var createdAt, updatedAt int64

	err := s.db.Conn().QueryRowContext(ctx, `
		SELECT id, name, sku, quantity, unit_cost, created_at, updated_at
		FROM stock_items WHERE id = ?
	`, id).Scan(&i.ID, &i.Name, &i.SKU, &i.Quantity, &i.UnitCost, &createdAt, &updatedAt)
	if IsNotFoundError(err) {
		return stock.Item{}, stock.ErrNotFound
	}
	if err != nil {
		return stock.Item{}, fmt.Errorf("failed to get stock item: %w", err)
	}

	i.CreatedAt = time.Unix(0, createdAt)
	i.UpdatedAt = time.Unix(0, updatedAt)
	return i, nil
}

// Save creates or updates a stock item.
func (s *StockStore) Save(ctx context.Context, i stock.Item) error {
	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO stock_items (id, name, sku, quantity, unit_cost, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			sku = excluded.sku,
			quantity = excluded.quantity,
			unit_cost = excluded.unit_cost,
			updated_at = excluded.updated_at
	`, i.ID, i.Name, i.SKU, i.Quantity, i.UnitCost, i.CreatedAt.UnixNano(), i.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save stock item: %w", err)
	}
	return nil
}

// Adjust atomically changes an item's quantity by delta and returns the
// updated item. Quantity never drops below zero.
func (s *StockStore) Adjust(ctx context.Context, id string, delta int64) (stock.Item, error) {
	var updated stock.Item

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var qty int64
		err := tx.QueryRowContext(ctx,
			"SELECT quantity FROM stock_items WHERE id = ?", id).Scan(&qty)
		if IsNotFoundError(err) {
			return stock.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to read quantity: %w", err)
		}

		newQty := qty + delta
		if newQty < 0 {
			return fmt.Errorf("stock adjustment would drop %s below zero (have %d, delta %d)", id, qty, delta)
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE stock_items SET quantity = ?, updated_at = ? WHERE id = ?",
			newQty, time.Now().UnixNano(), id)
		if err != nil {
			return fmt.Errorf("failed to update quantity: %w", err)
		}
		return nil
	})
	if err != nil {
		return stock.Item{}, err
	}

	updated, err = s.Get(ctx, id)
	if err != nil {
		return stock.Item{}, err
	}
	return updated, nil
}

// Delete removes a stock item by ID. Returns ErrNotFound if not found.
func (s *StockStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.Conn().ExecContext(ctx, "DELETE FROM stock_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete stock item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return stock.ErrNotFound
	}
	return nil
}
