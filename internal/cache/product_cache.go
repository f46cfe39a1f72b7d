package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sacvietnam/storefront/internal/model"
)

const keyPrefix = "storefront:product:"

type RedisConfig struct {
	URL          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	DialTimeout  time.Duration
}

func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// ProductCache keeps remote product documents for a short TTL.
// A nil *ProductCache is valid and caches nothing.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	if rdb == nil {
		return nil
	}
	return &ProductCache{rdb: rdb, ttl: ttl}
}

// Get reports a miss as (nil, nil).
func (c *ProductCache) Get(ctx context.Context, id string) (*model.Product, error) {
	if c == nil {
		return nil, nil
	}

	data, err := c.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached product %s: %w", id, err)
	}

	var p model.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode cached product %s: %w", id, err)
	}
	return &p, nil
}

func (c *ProductCache) Set(ctx context.Context, p *model.Product) error {
	if c == nil || p == nil || p.ID == "" {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode product %s: %w", p.ID, err)
	}
	if err := c.rdb.Set(ctx, keyPrefix+p.ID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache product %s: %w", p.ID, err)
	}
	return nil
}

func (c *ProductCache) Delete(ctx context.Context, id string) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("evict product %s: %w", id, err)
	}
	return nil
}

func (c *ProductCache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}
