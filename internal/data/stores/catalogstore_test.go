package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/fixdesk/internal/core/catalog"
	"github.com/colonyops/fixdesk/internal/data/db"
)

func TestCatalogStore(t *testing.T) {
	ctx := context.Background()

	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err, "Open")
	defer func() { _ = database.Close() }()

	store := NewCatalogStore(database)
	now := time.Now()

	require.NoError(t, store.SaveBrand(ctx, catalog.Brand{ID: "b-samsung", Label: "Samsung", CreatedAt: now}))
	require.NoError(t, store.SaveBrand(ctx, catalog.Brand{ID: "b-apple", Label: "Apple", CreatedAt: now}))
	require.NoError(t, store.SaveModel(ctx, catalog.Model{ID: "m-s21", BrandID: "b-samsung", Label: "Galaxy S21", CreatedAt: now}))
	require.NoError(t, store.SaveModel(ctx, catalog.Model{ID: "m-a52", BrandID: "b-samsung", Label: "Galaxy A52", CreatedAt: now}))
	require.NoError(t, store.SaveModel(ctx, catalog.Model{ID: "m-13", BrandID: "b-apple", Label: "iPhone 13", CreatedAt: now}))

	brands, err := store.ListBrands(ctx)
	require.NoError(t, err, "ListBrands")
	require.Len(t, brands, 2)
	assert.Equal(t, "Apple", brands[0].Label, "sorted by label")

	models, err := store.ListModels(ctx, "b-samsung")
	require.NoError(t, err, "ListModels")
	require.Len(t, models, 2)
	assert.Equal(t, "Galaxy A52", models[0].Label)

	opts := catalog.BrandOptions(brands)
	require.Len(t, opts, 2)
	assert.Equal(t, "b-apple", opts[0].ID)
	assert.Equal(t, "Apple", opts[0].Label)
}
