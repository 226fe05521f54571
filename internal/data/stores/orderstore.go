package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/colonyops/fixdesk/internal/core/checklist"
	"github.com/colonyops/fixdesk/internal/core/orders"
	"github.com/colonyops/fixdesk/internal/data/db"
)

// OrderStore implements orders.Store using SQLite.
type OrderStore struct {
	db *db.DB
}

var _ orders.Store = (*OrderStore)(nil)

// NewOrderStore creates a new SQLite-backed order store.
func NewOrderStore(db *db.DB) *OrderStore {
	return &OrderStore{db: db}
}

const orderColumns = `id, number, client_id, brand_id, brand_custom, model_id, model_custom,
	defect, notes, status, entry_date, estimated_delivery,
	checklist_category, checklist_completed, created_by, created_at, updated_at`

// List returns all orders newest first.
func (s *OrderStore) List(ctx context.Context) ([]orders.Order, error) {
	rows, err := s.db.Conn().QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders ORDER BY number DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []orders.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}

	return result, rows.Err()
}

// Get returns an order by ID. Returns ErrNotFound if not found.
func (s *OrderStore) Get(ctx context.Context, id string) (orders.Order, error) {
	row := s.db.Conn().QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = ?", id)

	o, err := scanOrder(row.Scan)
	if IsNotFoundError(err) {
		return orders.Order{}, orders.ErrNotFound
	}
	if err != nil {
		return orders.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

// Save creates or updates an order together with its checklist rows in one
// transaction. A nil snapshot leaves any previously stored checklist intact.
func (s *OrderStore) Save(ctx context.Context, o orders.Order, snap *checklist.Snapshot) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var estimated any
		if o.EstimatedDelivery != nil {
			estimated = o.EstimatedDelivery.UnixNano()
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO orders (`+orderColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				client_id = excluded.client_id,
				brand_id = excluded.brand_id,
				brand_custom = excluded.brand_custom,
				model_id = excluded.model_id,
				model_custom = excluded.model_custom,
				defect = excluded.defect,
				notes = excluded.notes,
				status = excluded.status,
				entry_date = excluded.entry_date,
				estimated_delivery = excluded.estimated_delivery,
				checklist_category = excluded.checklist_category,
				checklist_completed = excluded.checklist_completed,
				updated_at = excluded.updated_at
		`,
			o.ID, o.Number, o.ClientID, o.BrandID, o.BrandCustom, o.ModelID, o.ModelCustom,
			o.Defect, o.Notes, string(o.Status), o.EntryDate.UnixNano(), estimated,
			o.ChecklistCategory, o.ChecklistCompleted, o.CreatedBy,
			o.CreatedAt.UnixNano(), o.UpdatedAt.UnixNano(),
		)
		if err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		if snap == nil {
			return nil
		}

		if _, err := tx.ExecContext(ctx,
			"DELETE FROM order_checklist_items WHERE order_id = ?", o.ID); err != nil {
			return fmt.Errorf("failed to clear checklist items: %w", err)
		}

		for _, item := range checklist.Items(snap.Category) {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO order_checklist_items (order_id, item_id, status)
				VALUES (?, ?, ?)
			`, o.ID, item.ID, string(snap.Statuses[item.ID]))
			if err != nil {
				return fmt.Errorf("failed to save checklist item %s: %w", item.ID, err)
			}
		}

		return nil
	})
}

// Delete removes an order by ID. Returns ErrNotFound if not found.
func (s *OrderStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.Conn().ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return orders.ErrNotFound
	}
	return nil
}

// Checklist loads the stored inspection snapshot for an order, or nil when
// the order has no checklist rows.
func (s *OrderStore) Checklist(ctx context.Context, orderID string) (*checklist.Snapshot, error) {
	var category string
	err := s.db.Conn().QueryRowContext(ctx,
		"SELECT checklist_category FROM orders WHERE id = ?", orderID).Scan(&category)
	if IsNotFoundError(err) {
		return nil, orders.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist category: %w", err)
	}
	if category == "" {
		return nil, nil
	}

	rows, err := s.db.Conn().QueryContext(ctx,
		"SELECT item_id, status FROM order_checklist_items WHERE order_id = ?", orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	snap := &checklist.Snapshot{
		Category: checklist.Category(category),
		Statuses: make(map[string]checklist.ItemStatus),
	}
	for rows.Next() {
		var itemID, status string
		if err := rows.Scan(&itemID, &status); err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		snap.Statuses[itemID] = checklist.ItemStatus(status)
	}

	return snap, rows.Err()
}

// NextNumber returns the next free sequential order number.
func (s *OrderStore) NextNumber(ctx context.Context) (int64, error) {
	var next int64
	err := s.db.Conn().QueryRowContext(ctx,
		"SELECT COALESCE(MAX(number), 0) + 1 FROM orders").Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to get next order number: %w", err)
	}
	return next, nil
}

func scanOrder(scan func(...any) error) (orders.Order, error) {
	var o orders.Order
	var status string
	var entryDate, createdAt, updatedAt int64
	var estimated sql.NullInt64

	err := scan(
		&o.ID, &o.Number, &o.ClientID, &o.BrandID, &o.BrandCustom, &o.ModelID, &o.ModelCustom,
		&o.Defect, &o.Notes, &status, &entryDate, &estimated,
		&o.ChecklistCategory, &o.ChecklistCompleted, &o.CreatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return orders.Order{}, err
	}

	o.Status = orders.Status(status)
	o.EntryDate = time.Unix(0, entryDate)
	if estimated.Valid {
		t := time.Unix(0, estimated.Int64)
		o.EstimatedDelivery = &t
	}
	o.CreatedAt = time.Unix(0, createdAt)
	o.UpdatedAt = time.Unix(0, updatedAt)
	return o, nil
}
