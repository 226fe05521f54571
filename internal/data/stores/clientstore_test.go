package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/fixdesk/internal/core/clients"
	"github.com/colonyops/fixdesk/internal/data/db"
)

func TestClientStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		store := NewClientStore(database)

		now := time.Now()
		c := clients.Client{
			ID:        "cli-1",
			Name:      "João Pereira",
			Phone:     "555-0142",
			Email:     "joao@example.com",
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, store.Save(ctx, c), "Save")

		got, err := store.Get(ctx, "cli-1")
		require.NoError(t, err, "Get")
		assert.Equal(t, c.Name, got.Name)
		assert.Equal(t, c.Phone, got.Phone)
	})

	t.Run("get not found", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		store := NewClientStore(database)

		_, err = store.Get(ctx, "nonexistent")
		assert.ErrorIs(t, err, clients.ErrNotFound)
	})

	t.Run("list sorted by name", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		store := NewClientStore(database)

		now := time.Now()
		for id, name := range map[string]string{"a": "zara", "b": "Alice", "c": "mike"} {
			require.NoError(t, store.Save(ctx, clients.Client{
				ID: id, Name: name, CreatedAt: now, UpdatedAt: now,
			}), "Save %s", name)
		}

		list, err := store.List(ctx)
		require.NoError(t, err, "List")
		require.Len(t, list, 3)
		assert.Equal(t, "Alice", list[0].Name)
		assert.Equal(t, "mike", list[1].Name)
		assert.Equal(t, "zara", list[2].Name)
	})

	t.Run("update overwrites", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		store := NewClientStore(database)

		now := time.Now()
		c := clients.Client{ID: "cli-1", Name: "before", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, store.Save(ctx, c), "Save")

		c.Name = "after"
		c.UpdatedAt = now.Add(time.Minute)
		require.NoError(t, store.Save(ctx, c), "Save update")

		got, err := store.Get(ctx, "cli-1")
		require.NoError(t, err, "Get")
		assert.Equal(t, "after", got.Name)
	})

	t.Run("delete", func(t *testing.T) {
		database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
		require.NoError(t, err, "Open")
		defer func() { _ = database.Close() }()

		store := NewClientStore(database)

		now := time.Now()
		require.NoError(t, store.Save(ctx, clients.Client{
			ID: "cli-1", Name: "gone", CreatedAt: now, UpdatedAt: now,
		}), "Save")

		require.NoError(t, store.Delete(ctx, "cli-1"), "Delete")
		assert.ErrorIs(t, store.Delete(ctx, "cli-1"), clients.ErrNotFound)
	})
}
