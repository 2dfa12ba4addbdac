package ratelimit

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"whlin31/CarHub/internal/api/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// FixedWindowLimiter limits requests per key in a fixed time window, backed
// by a shared Redis counter. It protects the credential endpoints against
// brute-force attempts; a nil limiter allows everything.
type FixedWindowLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

// NewFixedWindowLimiter creates a Redis-backed limiter. A nil client or a
// non-positive limit disables limiting.
func NewFixedWindowLimiter(rdb *redis.Client, limit int, window time.Duration) *FixedWindowLimiter {
	if rdb == nil || limit <= 0 || window <= 0 {
		return nil
	}
	return &FixedWindowLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: "ratelimit",
	}
}

// Allow reports whether the key is within quota. Redis being unreachable
// fails open: authentication must not depend on the cache being up.
func (l *FixedWindowLimiter) Allow(ctx *gin.Context, key string) bool {
	if l == nil {
		return true
	}

	windowMs := l.window.Milliseconds()
	slot := time.Now().UTC().UnixMilli() / windowMs
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)

	count, err := fixedWindowScript.Run(ctx.Request.Context(), l.rdb, []string{redisKey}, windowMs).Int64()
	if err != nil {
		slog.Warn("rate limiter unavailable, allowing request", "error", err)
		return true
	}
	return count <= int64(l.limit)
}

// PerClientIP returns a middleware limiting each client IP on the route it
// wraps. Over-quota requests get 429 without reaching the handler.
func (l *FixedWindowLimiter) PerClientIP(route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c, route+":"+c.ClientIP()) {
			response.ErrorResponse(c, http.StatusTooManyRequests, "Too many attempts, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
