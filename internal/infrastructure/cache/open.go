package cache

import (
	"context"
	"fmt"

	"github.com/archiveinsight/backend/internal/domain"
)

// Store is a report cache that holds resources until closed
type Store interface {
	domain.CacheRepository
	Close() error
}

// Open returns the cache backend named by kind. "none" disables caching and
// returns a nil Store.
func Open(ctx context.Context, kind, redisURL string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryCache(), nil
	case "redis":
		c, err := NewRedisCache(ctx, redisURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", kind)
	}
}
