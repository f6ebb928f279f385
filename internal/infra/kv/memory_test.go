//go:build unit

package kv_test

import (
	"context"
	"testing"
	"time"

	"studio-checkout/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", 0))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	_, err := store.Get(ctx, "absent")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestMemoryStore_GetDelConsumes(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", 0))

	got, err := store.GetDel(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	_, err = store.GetDel(ctx, "k")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestMemoryStore_Del(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", 0))
	require.NoError(t, store.Del(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Del(ctx, "absent"))
}
