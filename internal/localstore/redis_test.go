package localstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStore instance
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return store, mr, cleanup
}

func TestRedisGet_Success(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, mr.Set(storeKey(KeyCart), `[{"quantity":2}]`))

	data, err := store.Get(context.Background(), KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[{"quantity":2}]`, string(data))
}

func TestRedisGet_NotFound(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	data, err := store.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, data)
}

func TestRedisSet_PersistsWithoutTTL(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	err := store.Set(context.Background(), KeyToken, []byte("tok-123"))
	require.NoError(t, err)

	stored, err := mr.Get(storeKey(KeyToken))
	require.NoError(t, err)
	assert.Equal(t, "tok-123", stored)
	assert.Zero(t, mr.TTL(storeKey(KeyToken)), "stored state must not expire")
}

func TestRedisDelete(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, mr.Set(storeKey(KeySession), "{}"))
	require.True(t, mr.Exists(storeKey(KeySession)))

	err := store.Delete(context.Background(), KeySession)
	require.NoError(t, err)
	assert.False(t, mr.Exists(storeKey(KeySession)))
}

func TestRedisDelete_NonExistentKey(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	// Deleting a key that was never set should not error
	err := store.Delete(context.Background(), "nonexistent")
	assert.NoError(t, err)
}

func TestStoreKey_Format(t *testing.T) {
	assert.Equal(t, "storefront:bos_quote_items", storeKey(KeyCart))
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, KeyCart, []byte("[]")))
	data, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	require.NoError(t, store.Delete(ctx, KeyCart))
	_, err = store.Get(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value))
	value[0] = 'z'

	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data), "caller mutations must not leak into the store")
}
