package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/tableserve/pkg/config"
	"github.com/example/tableserve/pkg/models"
	"github.com/go-redis/redis/v8"
)

// Nil re-exports the driver's miss sentinel so callers outside this package
// can test for it without importing the redis client.
const Nil = redis.Nil

type RedisRepository struct {
	client *redis.Client
	config *config.RedisConfig
	ttl    time.Duration
}

func NewRedisRepository(cfg *config.RedisConfig, cacheTTL time.Duration) *RedisRepository {
	return &RedisRepository{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
		config: cfg,
		ttl:    cacheTTL,
	}
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisRepository) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisRepository) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisRepository) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// Catalog read cache. Keys are invalidated wholesale on any admin mutation;
// the TTL bounds staleness if an invalidation is missed.

const categoriesKey = "catalog:categories"

func categoryProductsKey(categoryID string) string {
	return fmt.Sprintf("catalog:products:%s", categoryID)
}

func (r *RedisRepository) CacheCategories(ctx context.Context, categories []models.Category) error {
	return r.SetJSON(ctx, categoriesKey, categories, r.ttl)
}

func (r *RedisRepository) GetCachedCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.GetJSON(ctx, categoriesKey, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *RedisRepository) CacheCategoryProducts(ctx context.Context, categoryID string, products []models.Product) error {
	return r.SetJSON(ctx, categoryProductsKey(categoryID), products, r.ttl)
}

func (r *RedisRepository) GetCachedCategoryProducts(ctx context.Context, categoryID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.GetJSON(ctx, categoryProductsKey(categoryID), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *RedisRepository) InvalidateCategories(ctx context.Context) error {
	return r.Del(ctx, categoriesKey)
}

func (r *RedisRepository) InvalidateCategoryProducts(ctx context.Context, categoryID string) error {
	return r.Del(ctx, categoryProductsKey(categoryID))
}
