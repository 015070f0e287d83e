package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/archiveinsight/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move time forward without sleeping
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(t *testing.T) (*MemoryCache, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewMemoryCache()
	c.now = clock.Now
	t.Cleanup(func() { _ = c.Close() })
	return c, clock
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value []byte
		ttl   time.Duration
		want  []byte
		err   error
	}{
		{
			name:  "stores json report",
			key:   "report:abc",
			value: []byte(`{"finalResult":"unique"}`),
			ttl:   time.Minute,
			want:  []byte(`{"finalResult":"unique"}`),
		},
		{
			name:  "stores empty value",
			key:   "report:empty",
			value: nil,
			ttl:   time.Minute,
			want:  []byte{},
		},
		{
			name:  "zero ttl is not stored",
			key:   "report:zero",
			value: []byte("x"),
			ttl:   0,
			err:   domain.ErrCacheMiss,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCache(t)

			require.NoError(t, c.Set(ctx, tt.key, tt.value, tt.ttl))

			got, err := c.Get(ctx, tt.key)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestCache(t)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	clock.Advance(59 * time.Second)
	exists, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	clock.Advance(2 * time.Second)
	exists, err = c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	c.removeExpired()
	assert.Equal(t, 0, c.Size())
}

func TestMemoryCache_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	value := []byte("original")
	require.NoError(t, c.Set(ctx, "k", value, time.Minute))
	value[0] = 'X'

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))

	got[0] = 'Y'
	again, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(again))
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	require.NoError(t, c.Set(ctx, "delete-test", []byte("value"), time.Minute))
	require.NoError(t, c.Delete(ctx, "delete-test"))

	_, err := c.Get(ctx, "delete-test")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	// deleting a missing key is not an error
	assert.NoError(t, c.Delete(ctx, "never-set"))
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("k%d", i), []byte{byte(i)}, time.Minute))
	}
	assert.Equal(t, 5, c.Size())

	require.NoError(t, c.Delete(ctx, "k0"))
	assert.Equal(t, 4, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", id%5)
			assert.NoError(t, c.Set(ctx, key, []byte(key), time.Minute))
			got, err := c.Get(ctx, key)
			if assert.NoError(t, err) {
				assert.Equal(t, key, string(got))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, c.Size())
}

func TestMemoryCache_CloseIsIdempotent(t *testing.T) {
	c := NewMemoryCache()
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}
