package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"alufab_quotes/internal/domain/entities"
	"alufab_quotes/internal/usecase/interfaces"
)

const (
	catalogsKey       = "catalogs:all"
	defaultCatalogTTL = 5 * time.Minute
)

// NewRedisClient connects to Redis from a redis:// URL and verifies the
// connection with a ping.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

// CatalogCache is a cache-aside wrapper around a catalog repository. Cache
// failures degrade to the inner repository, pricing never fails because
// Redis is down.
type CatalogCache struct {
	inner interfaces.ICatalogRepository
	rdb   *redis.Client
	ttl   time.Duration
}

var _ interfaces.ICatalogRepository = (*CatalogCache)(nil)

func NewCatalogCache(inner interfaces.ICatalogRepository, rdb *redis.Client) *CatalogCache {
	ttl := defaultCatalogTTL
	if raw := os.Getenv("CATALOG_CACHE_TTL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}
	return &CatalogCache{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CatalogCache) GetCatalogs(ctx context.Context) (entities.Catalogs, error) {
	if raw, err := c.rdb.Get(ctx, catalogsKey).Bytes(); err == nil {
		var cats entities.Catalogs
		if err := json.Unmarshal(raw, &cats); err == nil {
			return cats, nil
		}
		log.Printf("[catalog][cache] corrupt cache entry, reloading key=%s", catalogsKey)
	} else if err != redis.Nil {
		log.Printf("[catalog][cache] read failed, falling through key=%s err=%v", catalogsKey, err)
	}

	cats, err := c.inner.GetCatalogs(ctx)
	if err != nil {
		return entities.Catalogs{}, err
	}

	if raw, err := json.Marshal(cats); err == nil {
		if err := c.rdb.Set(ctx, catalogsKey, raw, c.ttl).Err(); err != nil {
			log.Printf("[catalog][cache] write failed key=%s err=%v", catalogsKey, err)
		}
	}
	return cats, nil
}
