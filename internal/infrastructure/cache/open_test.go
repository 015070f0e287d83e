package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, err := Open(ctx, "memory", "")
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &MemoryCache{}, store)
	})

	t.Run("none disables caching", func(t *testing.T) {
		store, err := Open(ctx, "none", "")
		require.NoError(t, err)
		assert.Nil(t, store)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store, err := Open(ctx, "redis", "redis://"+mr.Addr())
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &RedisCache{}, store)
	})

	t.Run("unreachable redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		store, err := Open(ctx, "redis", "redis://"+addr)
		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := Open(ctx, "memcached", "")
		assert.Error(t, err)
	})
}
