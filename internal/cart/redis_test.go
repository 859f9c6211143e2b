package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

// setupTestRedis starts a miniredis server and returns a RedisStore on it.
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

func TestRedisGet_EmptyOnMissingKey(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	cart, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", cart.SessionID)
	assert.Empty(t, cart.Items)
}

func TestRedisAddItem_PersistsJSON(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	_, err := store.AddItem(ctx, "s1", bike(1, 15_000_000), 1)
	require.NoError(t, err)

	raw, err := mr.Get(cartKey("s1"))
	require.NoError(t, err)

	var stored domain.Cart
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored.Items, 1)
	assert.Equal(t, int64(1), stored.Items[0].ProductID)
}

func TestRedisAddItem_MergesByProductID(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	_, err := store.AddItem(ctx, "s1", bike(1, 100), 1)
	require.NoError(t, err)
	cart, err := store.AddItem(ctx, "s1", bike(1, 100), 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestRedisUpdateQuantity_BelowOneIsNoOp(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	cart, err := store.AddItem(ctx, "s1", bike(1, 100), 1)
	require.NoError(t, err)

	cart, err = store.UpdateQuantity(ctx, "s1", cart.Items[0].ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestRedisClear_DeletesKey(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	_, err := store.AddItem(ctx, "s1", bike(1, 100), 1)
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "s1"))
	assert.False(t, mr.Exists(cartKey("s1")))
}

func TestRedisGet_InvalidJSON(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, mr.Set(cartKey("s1"), "not-json"))

	_, err := store.Get(context.Background(), "s1")
	assert.Error(t, err)
}
