// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"campuschain_backend/internal/feature/event/domain/entity"
	"campuschain_backend/internal/feature/event/usecase"
)

// CachingEventRepository decorates an EventRepository with Redis caching of
// the public event listing. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
//
// Only event listings are ever cached; credential and profile data must
// always be read from their stores.
type CachingEventRepository struct {
	inner     usecase.EventRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the repository interface.
var _ usecase.EventRepository = (*CachingEventRepository)(nil)

// NewCachingEventRepository decorates an EventRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "events".
func NewCachingEventRepository(rdb *redis.Client, ttl time.Duration, inner usecase.EventRepository, namespace string) *CachingEventRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "events"
	}
	return &CachingEventRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey is the single cache key for the date-ordered listing.
func (c *CachingEventRepository) listKey() string {
	return c.namespace + ":all"
}

// Create inserts the event and invalidates the cached listing.
func (c *CachingEventRepository) Create(ctx context.Context, e *entity.Event) error {
	if err := c.inner.Create(ctx, e); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: a stale listing expires via TTL anyway.
	_ = c.rdb.Del(ctx, c.listKey()).Err()
	return nil
}

// ListByDate returns events, checking cache first then falling back to the database.
func (c *CachingEventRepository) ListByDate(ctx context.Context) ([]entity.Event, error) {
	if c.rdb == nil {
		return c.inner.ListByDate(ctx)
	}

	key := c.listKey()

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Event
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListByDate(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
