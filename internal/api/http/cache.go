package http

import (
	"crypto/sha1"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/travel-api/internal/config"
)

// ResponseCache caches successful GET responses in Redis for the configured
// TTL. Applied to destination reads only; errors talking to Redis degrade to
// uncached serving.
func ResponseCache(client *redis.Client, cfg config.CacheConfig, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Enabled || client == nil || c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := cacheKey(cfg.Prefix, c.Method(), c.OriginalURL())
		if payload, err := client.Get(c.UserContext(), key).Bytes(); err == nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			c.Set("X-Cache", "HIT")
			return c.Send(payload)
		}

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK {
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())
			if err := client.Set(c.UserContext(), key, body, cfg.TTL()).Err(); err != nil {
				logger.Debug("cache store failed", zap.Error(err))
			}
			c.Set("X-Cache", "MISS")
		}
		return nil
	}
}

// CacheInvalidator drops every cached destination response after a
// successful mutation, so deletes and syncs never serve stale records for
// the remainder of the TTL. Redis errors degrade to leaving entries behind.
func CacheInvalidator(client *redis.Client, cfg config.CacheConfig, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		if !cfg.Enabled || client == nil {
			return nil
		}
		status := c.Response().StatusCode()
		if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
			return nil
		}

		ctx := c.UserContext()
		keys, err := client.Keys(ctx, cfg.Prefix+":*").Result()
		if err != nil {
			logger.Debug("cache invalidation lookup failed", zap.Error(err))
			return nil
		}
		if len(keys) == 0 {
			return nil
		}
		if err := client.Del(ctx, keys...).Err(); err != nil {
			logger.Debug("cache invalidation failed", zap.Error(err))
		}
		return nil
	}
}

func cacheKey(prefix, method, url string) string {
	sum := sha1.Sum([]byte(method + ":" + url))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}
