// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"campuschain_backend/internal/feature/event/adapters"
	"campuschain_backend/internal/feature/event/usecase"
	"campuschain_backend/internal/platform/cache"
)

// NewEventRepository creates an EventRepository implementation.
// If Redis is available, the public listing is served through the caching
// decorator. Otherwise, reads go straight to the database.
func NewEventRepository(rdb *redis.Client, db *gorm.DB) usecase.EventRepository {
	repo := adapters.NewEventPostgres(db)
	if rdb != nil {
		return cache.NewCachingEventRepository(rdb, 0, repo, "events")
	}
	return repo
}
