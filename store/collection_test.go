package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-webapp/database"
	"venue-webapp/store"
)

type item struct {
	Name string `json:"name"`
}

func seedItems() []item {
	return []item{{Name: "first"}, {Name: "second"}}
}

func TestCollectionSeedsMissingKey(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryKV()
	c := store.NewCollection(kv, "items", seedItems, zerolog.Nop())

	items, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, seedItems(), items)

	raw, ok, err := kv.Get(ctx, "items")
	require.NoError(t, err)
	require.True(t, ok, "seed should be persisted")
	assert.JSONEq(t, `[{"name":"first"},{"name":"second"}]`, raw)
}

func TestCollectionWithoutSeedIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryKV()
	c := store.NewCollection[item](kv, "items", nil, zerolog.Nop())

	items, err := c.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, ok, err := kv.Get(ctx, "items")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollectionCorruptPayload(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, "items", "{not json"))
	c := store.NewCollection(kv, "items", seedItems, zerolog.Nop())

	items, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, seedItems(), items)

	err = c.Update(ctx, func(items []item) ([]item, error) {
		return append(items, item{Name: "third"}), nil
	})
	assert.Error(t, err)

	raw, _, err := kv.Get(ctx, "items")
	require.NoError(t, err)
	assert.Equal(t, "{not json", raw, "corrupt payload must not be overwritten")
}

func TestCollectionUpdate(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryKV()
	c := store.NewCollection(kv, "items", seedItems, zerolog.Nop())

	require.NoError(t, c.Update(ctx, func(items []item) ([]item, error) {
		return append(items, item{Name: "third"}), nil
	}))

	boom := errors.New("boom")
	err := c.Update(ctx, func(items []item) ([]item, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	items, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	require.NoError(t, c.Update(ctx, func([]item) ([]item, error) {
		return nil, nil
	}))
	items, err = c.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
