package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/fixdesk/internal/core/stock"
	"github.com/colonyops/fixdesk/internal/data/db"
)

func TestStockStore(t *testing.T) {
	ctx := context.Background()

	t.Run("adjust", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		store := NewStockStore(database)
		now := time.Now()

		require.NoError(t, store.Save(ctx, stock.Item{
			ID: "scr-s21", Name: "Galaxy S21 screen", SKU: "SCR-S21",
			Quantity: 3, UnitCost: 8900, CreatedAt: now, UpdatedAt: now,
		}), "Save")

		item, err := store.Adjust(ctx, "scr-s21", -2)
		require.NoError(t, err, "Adjust")
		assert.Equal(t, int64(1), item.Quantity)

		_, err = store.Adjust(ctx, "scr-s21", -5)
		assert.Error(t, err, "cannot go below zero")

		item, err = store.Get(ctx, "scr-s21")
		require.NoError(t, err, "Get")
		assert.Equal(t, int64(1), item.Quantity, "failed adjustment must not change quantity")
	})

	t.Run("adjust not found", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		store := NewStockStore(database)

		_, err = store.Adjust(ctx, "missing", 1)
		assert.ErrorIs(t, err, stock.ErrNotFound)
	})
}
