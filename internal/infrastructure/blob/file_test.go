package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Get(ctx, "portfolio_data")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Put(ctx, "portfolio_data", []byte(`{"profile":{}}`)))

		got, err := store.Get(ctx, "portfolio_data")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"profile":{}}`), got)
	})

	t.Run("put overwrites", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Put(ctx, "portfolio_pass", []byte("old")))
		require.NoError(t, store.Put(ctx, "portfolio_pass", []byte("new")))

		got, err := store.Get(ctx, "portfolio_pass")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), got)
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Put(ctx, "portfolio_data", []byte("v")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "portfolio_data.json", entries[0].Name())
	})

	t.Run("base directory is created", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		store, err := NewFileStore(dir)
		require.NoError(t, err)
		assert.NoError(t, store.Ping(ctx))
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "k", []byte("v")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	// returned slice is a copy
	got[0] = 'x'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), again)

	store.FailPuts = assert.AnError
	assert.ErrorIs(t, store.Put(ctx, "k", []byte("w")), assert.AnError)
}
