package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-webapp/config"
	"venue-webapp/database"
)

// testKeyValue runs the behaviour every backend must share.
func testKeyValue(t *testing.T, kv database.KeyValue) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "shows")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "shows", `[{"id":"1"}]`))
	require.NoError(t, kv.Set(ctx, "users", `[]`))

	val, ok, err := kv.Get(ctx, "shows")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, val)

	require.NoError(t, kv.Set(ctx, "shows", `[]`))
	val, _, err = kv.Get(ctx, "shows")
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)

	require.NoError(t, kv.Delete(ctx, "shows"))
	require.NoError(t, kv.Delete(ctx, "shows"), "deleting a missing key is not an error")
	_, ok, err = kv.Get(ctx, "shows")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = kv.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryKV(t *testing.T) {
	testKeyValue(t, database.NewMemoryKV())
}

func TestFileKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "venue.json")
	kv, err := database.NewFileKV(path)
	require.NoError(t, err)
	testKeyValue(t, kv)

	require.NoError(t, kv.Set(context.Background(), "persisted", "yes"))
	reopened, err := database.NewFileKV(path)
	require.NoError(t, err)
	val, ok, err := reopened.Get(context.Background(), "persisted")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "yes", val)
}

func TestSQLiteKV(t *testing.T) {
	kv, err := database.NewSQLiteKV(context.Background(), ":memory:")
	require.NoError(t, err)
	defer kv.Close()
	testKeyValue(t, kv)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	kv, err := database.Open(ctx, config.Config{Storage: config.StorageMemory})
	require.NoError(t, err)
	assert.IsType(t, &database.MemoryKV{}, kv)

	kv, err = database.Open(ctx, config.Config{
		Storage:  config.StorageFile,
		FilePath: filepath.Join(t.TempDir(), "venue.json"),
	})
	require.NoError(t, err)
	assert.IsType(t, &database.FileKV{}, kv)

	kv, err = database.Open(ctx, config.Config{
		Storage:    config.StorageSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "venue.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &database.SQLiteKV{}, kv)
	require.NoError(t, kv.Close())

	_, err = database.Open(ctx, config.Config{Storage: "floppy"})
	assert.Error(t, err)
}
