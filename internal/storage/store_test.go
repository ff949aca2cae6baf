package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeContract exercises the behavior every Store implementation must share.
func storeContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "slot", "first"))
	value, err := store.Get(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, "first", value)

	require.NoError(t, store.Set(ctx, "slot", "second"))
	value, err = store.Get(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, "second", value, "set overwrites")

	require.NoError(t, store.Remove(ctx, "slot"))
	_, err = store.Get(ctx, "slot")
	assert.ErrorIs(t, err, ErrNotFound)

	// Removing an absent key is not an error.
	assert.NoError(t, store.Remove(ctx, "slot"))
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	storeContract(t, store)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, ResumeKey, `{"summary":"hello"}`))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	value, err := second.Get(ctx, ResumeKey)
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"hello"}`, value)
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "../escape", "value"))
	value, err := store.Get(ctx, "../escape")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestNewFileStoreEmptyDir(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}
