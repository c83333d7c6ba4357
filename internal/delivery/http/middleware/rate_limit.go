package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// LoginRateLimit applies a fixed-window per-IP counter to the credential
// endpoints, backed by Redis. When Redis is not configured the limiter is a
// no-op: availability is preferred over throttling for small deployments.
func LoginRateLimit(cfg *config.Config) gin.HandlerFunc {
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	threshold := cfg.RateLimitLoginThreshold

	return func(c *gin.Context) {
		client := redis.Client()
		if client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:login:%s", c.ClientIP())
		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			// Redis being down must not lock everyone out.
			logger.Log.Warn("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}

		if count > int64(threshold) {
			logger.Log.Warn("login rate limit triggered", "ip", c.ClientIP(), "count", count)
			response.Error(c, http.StatusTooManyRequests, "Too many attempts. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
