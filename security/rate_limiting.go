package security

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/redis/go-redis/v9"
)

const loginAttemptsPerMinute = 10

type RateLimiter struct {
	redis *redis.Client
}

// NewRateLimiter builds a limiter for the credential endpoints. With a nil
// Redis client the counters live in process memory.
func NewRateLimiter(redisClient *redis.Client) *RateLimiter {
	return &RateLimiter{redis: redisClient}
}

// AuthRateLimit limits login and registration attempts per client IP.
func (r *RateLimiter) AuthRateLimit() echo.MiddlewareFunc {
	var store middleware.RateLimiterStore
	if r.redis != nil {
		store = &redisStore{redis: r.redis, limit: loginAttemptsPerMinute, window: time.Minute}
	} else {
		store = middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  float64(loginAttemptsPerMinute) / 60,
			Burst: loginAttemptsPerMinute,
		})
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(429, map[string]string{
				"message": "Too many attempts. Please try again later.",
			})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(429, map[string]string{
				"message": "Too many attempts. Please try again later.",
			})
		},
	})
}

// redisStore counts attempts in a fixed window per identifier.
type redisStore struct {
	redis  *redis.Client
	limit  int64
	window time.Duration
}

func (s *redisStore) Allow(identifier string) (bool, error) {
	ctx := context.Background()
	key := fmt.Sprintf("ratelimit:auth:%s", identifier)

	count, err := s.redis.Incr(ctx, key).Result()
	if err != nil {
		// Fail open when Redis is unreachable.
		return true, nil
	}
	if count == 1 {
		s.redis.Expire(ctx, key, s.window)
	}
	return count <= s.limit, nil
}
