// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"gamereview_backend/internal/feature/gamecatalog/domain/entity"
	"gamereview_backend/internal/feature/gamecatalog/usecase"
)

// CachingCatalogRepository decorates a CatalogRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. The catalog refreshes daily, so list
// pages are safe to serve from cache.
type CachingCatalogRepository struct {
	inner     usecase.CatalogRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure the decorator implements CatalogRepository.
var _ usecase.CatalogRepository = (*CachingCatalogRepository)(nil)

// NewCachingCatalogRepository decorates a CatalogRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "games".
func NewCachingCatalogRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CatalogRepository, namespace string) *CachingCatalogRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "games"
	}
	return &CachingCatalogRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Popular returns a page of popular games, cache first.
func (c *CachingCatalogRepository) Popular(ctx context.Context, page, pageSize int) (*entity.GameList, error) {
	key := c.listKey("popular", "", page, pageSize)
	return readThrough(ctx, c, key, func() (*entity.GameList, error) {
		return c.inner.Popular(ctx, page, pageSize)
	})
}

// Search returns a page of search results, cache first.
func (c *CachingCatalogRepository) Search(ctx context.Context, query string, page, pageSize int) (*entity.GameList, error) {
	key := c.listKey("search", query, page, pageSize)
	return readThrough(ctx, c, key, func() (*entity.GameList, error) {
		return c.inner.Search(ctx, query, page, pageSize)
	})
}

// Upcoming returns a page of upcoming games, cache first.
func (c *CachingCatalogRepository) Upcoming(ctx context.Context, page, pageSize int) (*entity.GameList, error) {
	key := c.listKey("upcoming", "", page, pageSize)
	return readThrough(ctx, c, key, func() (*entity.GameList, error) {
		return c.inner.Upcoming(ctx, page, pageSize)
	})
}

// Details returns one game's record, cache first.
func (c *CachingCatalogRepository) Details(ctx context.Context, id int) (*entity.GameDetail, error) {
	key := fmt.Sprintf("%s:detail:%d", c.namespace, id)
	return readThrough(ctx, c, key, func() (*entity.GameDetail, error) {
		return c.inner.Details(ctx, id)
	})
}

// listKey generates a cache key for a list query.
func (c *CachingCatalogRepository) listKey(op, query string, page, pageSize int) string {
	if query == "" {
		return fmt.Sprintf("%s:%s:%d:%d", c.namespace, op, page, pageSize)
	}
	return fmt.Sprintf("%s:%s:%s:%d:%d", c.namespace, op, safe(query), page, pageSize)
}

// readThrough reads a value from cache, falling back to fetch and storing the
// result best effort. Not-found errors from the upstream are never cached.
func readThrough[T any](ctx context.Context, c *CachingCatalogRepository, key string, fetch func() (*T, error)) (*T, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return fetch()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the upstream API
	out, err := fetch()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
