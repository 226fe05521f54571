package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/fixdesk/internal/core/catalog"
	"github.com/colonyops/fixdesk/internal/core/clients"
	"github.com/colonyops/fixdesk/internal/core/orders"
	"github.com/colonyops/fixdesk/internal/data/db"
	"github.com/colonyops/fixdesk/internal/data/stores"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	return &App{
		Orders:  stores.NewOrderStore(database),
		Clients: stores.NewClientStore(database),
		Catalog: stores.NewCatalogStore(database),
		Stock:   stores.NewStockStore(database),
	}
}

func TestDeviceLabel(t *testing.T) {
	labels := map[string]string{
		"b-samsung": "Samsung",
		"m-s21":     "Galaxy S21",
	}

	t.Run("catalog ids resolve to labels", func(t *testing.T) {
		o := orders.Order{BrandID: "b-samsung", ModelID: "m-s21"}
		assert.Equal(t, "Samsung Galaxy S21", deviceLabel(o, labels))
	})

	t.Run("custom values shown verbatim", func(t *testing.T) {
		o := orders.Order{BrandID: "Fairphone", BrandCustom: true, ModelID: "FP5", ModelCustom: true}
		assert.Equal(t, "Fairphone FP5", deviceLabel(o, labels))
	})

	t.Run("missing model leaves no trailing space", func(t *testing.T) {
		o := orders.Order{BrandID: "b-samsung"}
		assert.Equal(t, "Samsung", deviceLabel(o, labels))
	})
}

func TestResolveClient(t *testing.T) {
	app := newTestApp(t)
	cmd := &OrdersCmd{app: app}
	ctx := context.Background()
	now := time.Now()

	existing := clients.Client{ID: "cli-1", Name: "Maria Silva", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, app.Clients.Save(ctx, existing))

	t.Run("matches case-insensitively", func(t *testing.T) {
		list := []clients.Client{existing}
		id, err := cmd.resolveClient(ctx, &list, "maria silva", now)
		require.NoError(t, err)
		assert.Equal(t, "cli-1", id)
		assert.Len(t, list, 1)
	})

	t.Run("creates unmatched client and reuses it", func(t *testing.T) {
		list := []clients.Client{existing}
		id, err := cmd.resolveClient(ctx, &list, "New Person", now)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		require.Len(t, list, 2)

		// Same name in a later record reuses the created id.
		again, err := cmd.resolveClient(ctx, &list, "new person", now)
		require.NoError(t, err)
		assert.Equal(t, id, again)
		assert.Len(t, list, 2)
	})
}

func TestResolveBrandAndModel(t *testing.T) {
	app := newTestApp(t)
	cmd := &OrdersCmd{app: app}
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, app.Catalog.SaveBrand(ctx, catalog.Brand{ID: "b-1", Label: "Samsung", CreatedAt: now}))
	require.NoError(t, app.Catalog.SaveModel(ctx, catalog.Model{ID: "m-1", BrandID: "b-1", Label: "Galaxy S21", CreatedAt: now}))

	brands, err := app.Catalog.ListBrands(ctx)
	require.NoError(t, err)

	t.Run("known brand resolves to catalog id", func(t *testing.T) {
		id, custom, err := cmd.resolveBrand(ctx, &brands, "samsung", now)
		require.NoError(t, err)
		assert.Equal(t, "b-1", id)
		assert.False(t, custom)
	})

	t.Run("unknown brand stays free text", func(t *testing.T) {
		id, custom, err := cmd.resolveBrand(ctx, &brands, "Fairphone", now)
		require.NoError(t, err)
		assert.Equal(t, "Fairphone", id)
		assert.True(t, custom)
	})

	t.Run("known model under resolved brand", func(t *testing.T) {
		id, custom, err := cmd.resolveModel(ctx, "b-1", false, "galaxy s21")
		require.NoError(t, err)
		assert.Equal(t, "m-1", id)
		assert.False(t, custom)
	})

	t.Run("model under custom brand stays free text", func(t *testing.T) {
		id, custom, err := cmd.resolveModel(ctx, "Fairphone", true, "FP5")
		require.NoError(t, err)
		assert.Equal(t, "FP5", id)
		assert.True(t, custom)
	})
}
