package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

const cacheNamespace = "products"

// CachingProductRepository decorates a ProductRepository with Redis caching.
// The catalog is read on every order screen but changes rarely, so reads are
// served from cache and any write invalidates the namespace. A nil client
// turns the decorator into a pass-through.
type CachingProductRepository struct {
	inner ports.ProductRepository
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner ports.ProductRepository) *CachingProductRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachingProductRepository{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachingProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	created, err := c.inner.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return created, nil
}

func (c *CachingProductRepository) FindByKey(ctx context.Context, key string) (*domain.Product, error) {
	if c.rdb == nil {
		return c.inner.FindByKey(ctx, key)
	}

	cacheKey := fmt.Sprintf("%s:one:%s", cacheNamespace, key)
	if b, err := c.rdb.Get(ctx, cacheKey).Bytes(); err == nil && len(b) > 0 {
		var p domain.Product
		if err := json.Unmarshal(b, &p); err == nil {
			return &p, nil
		}
		_ = c.rdb.Del(ctx, cacheKey).Err()
	}

	p, err := c.inner.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(p); err == nil {
		_ = c.rdb.Set(ctx, cacheKey, b, c.ttl).Err()
	}
	return p, nil
}

func (c *CachingProductRepository) List(ctx context.Context, page ports.Page) ([]*domain.Product, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, page)
	}

	cacheKey := fmt.Sprintf("%s:list:%d:%d", cacheNamespace, page.Number, page.Limit)
	if b, err := c.rdb.Get(ctx, cacheKey).Bytes(); err == nil && len(b) > 0 {
		var out []*domain.Product
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, cacheKey).Err()
	}

	out, err := c.inner.List(ctx, page)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, cacheKey, b, c.ttl).Err()
	}
	return out, nil
}

func (c *CachingProductRepository) Update(ctx context.Context, key string, upd ports.ProductUpdate) (*domain.Product, error) {
	updated, err := c.inner.Update(ctx, key, upd)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return updated, nil
}

func (c *CachingProductRepository) Delete(ctx context.Context, key string) error {
	if err := c.inner.Delete(ctx, key); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// invalidate drops every cached product entry. Best effort: a failed
// invalidation only delays freshness by the TTL.
func (c *CachingProductRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, cacheNamespace+":*", 200).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			_ = c.rdb.Del(ctx, keys...).Err()
		}
		cursor = cur
		if cursor == 0 {
			return
		}
	}
}
