package webserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// With no redis client the limiter runs on its in-memory fallback, which
// is what these tests exercise.
func TestRateLimitMiddlewareBlocksOverBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(nil, 3, time.Minute)

	r := gin.New()
	r.Use(RateLimitMiddleware(limiter))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d within budget", i+1)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitKeyedPerUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(nil, 1, time.Minute)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user", c.GetHeader("X-Test-User"))
	})
	r.Use(RateLimitMiddleware(limiter))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Test-User", user)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("alice"))
	assert.Equal(t, http.StatusTooManyRequests, send("alice"))
	assert.Equal(t, http.StatusOK, send("bob"), "budgets are per client")
}
