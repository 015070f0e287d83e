package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/archiveinsight/backend/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisCacheWithClient(client)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCache_Lifecycle(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)

	t.Run("miss on unknown key", func(t *testing.T) {
		_, err := c.Get(ctx, "report:ghost")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("set and get roundtrip", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "report:1", []byte(`{"finalResult":"exists"}`), time.Hour))

		got, err := c.Get(ctx, "report:1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"finalResult":"exists"}`, string(got))

		exists, err := c.Exists(ctx, "report:1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("ttl expires entry", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "report:2", []byte("v"), time.Minute))
		mr.FastForward(2 * time.Minute)

		exists, err := c.Exists(ctx, "report:2")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("zero ttl stores nothing", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "report:3", []byte("v"), 0))
		assert.False(t, mr.Exists("report:3"))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, c.Delete(ctx, "report:1"))
		assert.False(t, mr.Exists("report:1"))
	})
}

func TestRedisCache_Unavailable(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)
	mr.Close()

	_, err := c.Get(ctx, "report:1")
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)

	err = c.Set(ctx, "report:1", []byte("v"), time.Minute)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
}

func TestNewRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("connects to reachable server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		c, err := NewRedisCache(ctx, "redis://"+mr.Addr()+"/0")
		require.NoError(t, err)
		assert.NoError(t, c.Close())
	})

	t.Run("rejects malformed url", func(t *testing.T) {
		_, err := NewRedisCache(ctx, "not-a-url://")
		assert.Error(t, err)
	})
}
