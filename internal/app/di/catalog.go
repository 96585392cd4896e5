// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"gamereview_backend/internal/feature/gamecatalog/adapters/rawg"
	"gamereview_backend/internal/feature/gamecatalog/usecase"
	"gamereview_backend/internal/platform/cache"
	infrahttp "gamereview_backend/internal/platform/http"
	"gamereview_backend/internal/shared/ratelimiter"
)

// rawgRequestsPerMinute stays under the RAWG free-tier throttle.
const rawgRequestsPerMinute = 30

// NewCatalogRepository creates the RAWG catalog client wrapped with Redis
// caching. List pages are cached until the next UTC midnight; with rdb nil
// the decorator passes straight through.
func NewCatalogRepository(rdb *redisv9.Client) usecase.CatalogRepository {
	cfg := rawg.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(rawgRequestsPerMinute, time.Minute)
	client := rawg.NewRAWGCatalog(cfg, httpClient, limiter)

	ttl := cache.TimeUntilNextUTCMidnight()
	return cache.NewCachingCatalogRepository(rdb, ttl, client, "games")
}
