package services

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CacheService caches lookup results in Redis, with an in-process
// fallback when Redis is unavailable.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger

	// In-memory fallback cache when Redis is not available
	memCache *gocache.Cache
}

// NewCacheService creates a new cache service
func NewCacheService(client *redis.Client, ttl time.Duration, logger *logrus.Logger) CacheServiceInterface {
	return &CacheService{
		client:   client,
		ttl:      ttl,
		logger:   logger,
		memCache: gocache.New(ttl, 5*time.Minute),
	}
}

// Get retrieves a value from cache
func (c *CacheService) Get(ctx context.Context, key string) (string, error) {
	// Try Redis first if available
	if c.client != nil {
		val, err := c.client.Get(ctx, key).Result()
		if err == nil {
			c.logger.WithField("key", key).Debug("Cache hit (Redis)")
			return val, nil
		}
		if err != redis.Nil {
			c.logger.WithFields(logrus.Fields{
				"key":   key,
				"error": err.Error(),
			}).Warn("Redis get error, falling back to memory cache")
		}
	}

	// Fallback to memory cache
	if val, found := c.memCache.Get(key); found {
		c.logger.WithField("key", key).Debug("Cache hit (memory)")
		return val.(string), nil
	}

	return "", fmt.Errorf("key not found")
}

// Set stores a value in cache with TTL
func (c *CacheService) Set(ctx context.Context, key string, value string) error {
	// Try Redis first if available
	if c.client != nil {
		err := c.client.Set(ctx, key, value, c.ttl).Err()
		if err == nil {
			c.logger.WithField("key", key).Debug("Cache set (Redis)")
			return nil
		}
		c.logger.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Redis set error, falling back to memory cache")
	}

	// Fallback to memory cache
	c.memCache.Set(key, value, c.ttl)
	c.logger.WithField("key", key).Debug("Cache set (memory)")
	return nil
}

// Delete removes a value from cache
func (c *CacheService) Delete(ctx context.Context, key string) error {
	if c.client != nil {
		if err := c.client.Del(ctx, key).Err(); err != nil {
			c.logger.WithFields(logrus.Fields{
				"key":   key,
				"error": err.Error(),
			}).Warn("Redis delete error")
		}
	}

	// Also remove from memory cache
	c.memCache.Delete(key)
	c.logger.WithField("key", key).Debug("Cache delete")
	return nil
}

// Clear clears all cache entries
func (c *CacheService) Clear(ctx context.Context) error {
	if c.client != nil {
		if err := c.client.FlushDB(ctx).Err(); err != nil {
			c.logger.WithField("error", err.Error()).Warn("Redis clear error")
		}
	}

	c.memCache.Flush()
	c.logger.Info("Cache cleared")
	return nil
}

// Exists checks if a key exists in cache
func (c *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	if c.client != nil {
		count, err := c.client.Exists(ctx, key).Result()
		if err == nil {
			return count > 0, nil
		}
		c.logger.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Redis exists error, checking memory cache")
	}

	_, found := c.memCache.Get(key)
	return found, nil
}

// GetStats returns cache statistics
func (c *CacheService) GetStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	if c.client != nil {
		info, err := c.client.Info(ctx, "memory").Result()
		if err == nil {
			stats["redis"] = map[string]interface{}{
				"available": true,
				"info":      info,
			}
		} else {
			stats["redis"] = map[string]interface{}{
				"available": false,
				"error":     err.Error(),
			}
		}
	} else {
		stats["redis"] = map[string]interface{}{
			"available": false,
		}
	}

	stats["memory"] = map[string]interface{}{
		"size": c.memCache.ItemCount(),
		"ttl":  c.ttl.String(),
	}

	return stats, nil
}

// Health returns cache service health status
func (c *CacheService) Health() map[string]interface{} {
	health := make(map[string]interface{})

	if c.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.client.Ping(ctx).Err(); err != nil {
			health["redis"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
		} else {
			health["redis"] = map[string]interface{}{
				"status": "healthy",
			}
		}
	} else {
		health["redis"] = map[string]interface{}{
			"status": "disabled",
		}
	}

	// Memory cache is always available
	health["memory"] = map[string]interface{}{
		"status": "healthy",
	}

	return health
}
