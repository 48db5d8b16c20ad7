package webserver

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter enforces a fixed-window request budget per client. Counters
// live in redis so all replicas share one budget; when redis is down it
// falls back to per-process memory counters rather than blocking traffic.
type RateLimiter struct {
	rdb    *redis.Client
	rate   int
	window time.Duration

	mu     sync.Mutex
	memory map[string]int
}

func NewRateLimiter(rdb *redis.Client, rate int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		rate:   rate,
		window: window,
		memory: make(map[string]int),
	}
}

func (rl *RateLimiter) allow(c *gin.Context, key string) bool {
	bucket := time.Now().Unix() / int64(rl.window.Seconds())
	windowKey := fmt.Sprintf("rate_limit:%s:%d", key, bucket)

	if rl.rdb != nil {
		count, err := rl.rdb.Incr(c, windowKey).Result()
		if err == nil {
			if count == 1 {
				rl.rdb.Expire(c, windowKey, rl.window)
			}
			return count <= int64(rl.rate)
		}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	// Counters from earlier windows are garbage once a new window starts.
	suffix := fmt.Sprintf(":%d", bucket)
	for k := range rl.memory {
		if !strings.HasSuffix(k, suffix) {
			delete(rl.memory, k)
		}
	}
	rl.memory[windowKey]++
	return rl.memory[windowKey] <= rl.rate
}

func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("user")
		if key == "" {
			key = c.ClientIP()
		}

		if !limiter.allow(c, key) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"err": "rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
