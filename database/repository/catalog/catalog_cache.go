package catalogRepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedCatalogRepo serves ListAll from Redis and falls back to the wrapped
// repository on a miss or when Redis is unavailable. Create invalidates the entry.
type CachedCatalogRepo struct {
	next   CatalogRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedCatalogRepo(next CatalogRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedCatalogRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedCatalogRepo{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *CachedCatalogRepo) ListAll(ctx context.Context) ([]models.ServiceOffering, error) {
	data, err := c.client.Get(ctx, utils.CatalogCacheKey).Bytes()
	if err == nil {
		var offerings []models.ServiceOffering
		decodeErr := json.Unmarshal(data, &offerings)
		if decodeErr == nil {
			return offerings, nil
		}
		c.logger.Warn("catalog cache: corrupt entry, reloading", zap.Error(decodeErr))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("catalog cache: read failed, falling back to store", zap.Error(err))
	}

	offerings, err := c.next.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(offerings); err == nil {
		if err := c.client.Set(ctx, utils.CatalogCacheKey, data, c.ttl).Err(); err != nil {
			c.logger.Warn("catalog cache: write failed", zap.Error(err))
		}
	}
	return offerings, nil
}

func (c *CachedCatalogRepo) ListNames(ctx context.Context) ([]models.ServiceName, error) {
	return c.next.ListNames(ctx)
}

func (c *CachedCatalogRepo) Create(ctx context.Context, offering *models.ServiceOffering) (string, error) {
	id, err := c.next.Create(ctx, offering)
	if err != nil {
		return "", err
	}
	c.Invalidate(ctx)
	return id, nil
}

// Invalidate drops the cached catalog.
func (c *CachedCatalogRepo) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, utils.CatalogCacheKey).Err(); err != nil {
		c.logger.Warn("catalog cache: invalidate failed", zap.Error(err))
	}
}
