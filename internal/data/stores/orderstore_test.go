package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/fixdesk/internal/core/checklist"
	"github.com/colonyops/fixdesk/internal/core/clients"
	"github.com/colonyops/fixdesk/internal/core/orders"
	"github.com/colonyops/fixdesk/internal/data/db"
)

func seedClient(t *testing.T, database *db.DB, id string) {
	t.Helper()

	store := NewClientStore(database)
	now := time.Now()
	require.NoError(t, store.Save(context.Background(), clients.Client{
		ID:        id,
		Name:      "Maria Santos",
		Phone:     "555-0101",
		CreatedAt: now,
		UpdatedAt: now,
	}), "seed client")
}

func testOrder(clientID string, number int64) orders.Order {
	now := time.Now()
	est := now.Add(72 * time.Hour)
	return orders.Order{
		ID:                "ord-" + clientID,
		Number:            number,
		ClientID:          clientID,
		BrandID:           "brand-samsung",
		ModelID:           "Galaxy S21 Custom",
		ModelCustom:       true,
		Defect:            "cracked screen",
		Status:            orders.StatusInProgress,
		EntryDate:         now,
		EstimatedDelivery: &est,
		ChecklistCategory: string(checklist.CategoryAndroid),
		CreatedBy:         "ana",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestOrderStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		seedClient(t, database, "cli-1")
		store := NewOrderStore(database)

		o := testOrder("cli-1", 1)
		require.NoError(t, store.Save(ctx, o, nil), "Save")

		got, err := store.Get(ctx, o.ID)
		require.NoError(t, err, "Get")
		assert.Equal(t, o.Number, got.Number)
		assert.Equal(t, o.ClientID, got.ClientID)
		assert.Equal(t, o.ModelID, got.ModelID)
		assert.True(t, got.ModelCustom)
		assert.Equal(t, orders.StatusInProgress, got.Status)
		require.NotNil(t, got.EstimatedDelivery)
		assert.Equal(t, o.EstimatedDelivery.UnixNano(), got.EstimatedDelivery.UnixNano())
	})

	t.Run("get not found", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		store := NewOrderStore(database)

		_, err = store.Get(ctx, "nonexistent")
		assert.ErrorIs(t, err, orders.ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		seedClient(t, database, "cli-1")
		store := NewOrderStore(database)

		for i := int64(1); i <= 3; i++ {
			o := testOrder("cli-1", i)
			o.ID = o.ID + string(rune('a'+i))
			require.NoError(t, store.Save(ctx, o, nil), "Save %d", i)
		}

		list, err := store.List(ctx)
		require.NoError(t, err, "List")
		require.Len(t, list, 3)
		assert.Equal(t, int64(3), list[0].Number)
		assert.Equal(t, int64(1), list[2].Number)
	})

	t.Run("checklist round trip", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		seedClient(t, database, "cli-1")
		store := NewOrderStore(database)

		flow := checklist.NewFlow()
		require.NoError(t, flow.SelectCategory(checklist.CategoryAndroid))
		for _, item := range checklist.Items(checklist.CategoryAndroid) {
			require.NoError(t, flow.SetItemStatus(item.ID, checklist.StatusWorking))
		}
		snap, err := flow.Complete()
		require.NoError(t, err, "Complete")

		o := testOrder("cli-1", 1)
		o.ChecklistCompleted = true
		require.NoError(t, store.Save(ctx, o, &snap), "Save")

		got, err := store.Checklist(ctx, o.ID)
		require.NoError(t, err, "Checklist")
		require.NotNil(t, got)
		assert.Equal(t, checklist.CategoryAndroid, got.Category)
		assert.Len(t, got.Statuses, len(checklist.Items(checklist.CategoryAndroid)))
		assert.True(t, got.Complete())
	})

	t.Run("checklist absent", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		seedClient(t, database, "cli-1")
		store := NewOrderStore(database)

		o := testOrder("cli-1", 1)
		o.ChecklistCategory = ""
		require.NoError(t, store.Save(ctx, o, nil), "Save")

		got, err := store.Checklist(ctx, o.ID)
		require.NoError(t, err, "Checklist")
		assert.Nil(t, got)
	})

	t.Run("next number", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		seedClient(t, database, "cli-1")
		store := NewOrderStore(database)

		next, err := store.NextNumber(ctx)
		require.NoError(t, err, "NextNumber")
		assert.Equal(t, int64(1), next)

		require.NoError(t, store.Save(ctx, testOrder("cli-1", 41), nil), "Save")

		next, err = store.NextNumber(ctx)
		require.NoError(t, err, "NextNumber")
		assert.Equal(t, int64(42), next)
	})

	t.Run("delete cascades checklist", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		seedClient(t, database, "cli-1")
		store := NewOrderStore(database)

		flow := checklist.NewFlow()
		require.NoError(t, flow.SelectCategory(checklist.CategoryIOS))
		snap, err := flow.Complete()
		require.NoError(t, err, "Complete")

		o := testOrder("cli-1", 1)
		o.ChecklistCategory = string(checklist.CategoryIOS)
		require.NoError(t, store.Save(ctx, o, &snap), "Save")

		require.NoError(t, store.Delete(ctx, o.ID), "Delete")

		_, err = store.Get(ctx, o.ID)
		assert.ErrorIs(t, err, orders.ErrNotFound)

		err = store.Delete(ctx, o.ID)
		assert.ErrorIs(t, err, orders.ErrNotFound)
	})
}
