package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"tzfield/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitConfig(requests, window, burst int) *config.Config {
	cfg := &config.Config{}
	cfg.RateLimit.Requests = requests
	cfg.RateLimit.Window = window
	cfg.RateLimit.Burst = burst
	return cfg
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		cfg           *config.Config
		requests      int
		expectedCodes []int
		clientIP      string
	}{
		{
			name:          "Under limit",
			cfg:           rateLimitConfig(10, 1, 10),
			requests:      3,
			expectedCodes: []int{200, 200, 200},
			clientIP:      "192.168.1.1",
		},
		{
			name:          "At limit",
			cfg:           rateLimitConfig(2, 60, 2),
			requests:      2,
			expectedCodes: []int{200, 200},
			clientIP:      "192.168.1.2",
		},
		{
			name:          "Exceeds limit",
			cfg:           rateLimitConfig(2, 60, 2),
			requests:      3,
			expectedCodes: []int{200, 200, 429},
			clientIP:      "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewRateLimiter(tt.cfg)

			router := gin.New()
			router.Use(limiter.Middleware())
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			for i := 0; i < tt.requests; i++ {
				req := httptest.NewRequest(http.MethodGet, "/test", nil)
				req.Header.Set("X-Forwarded-For", tt.clientIP)

				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				assert.Equal(t, tt.expectedCodes[i], w.Code,
					"Request %d: expected status %d but got %d",
					i+1, tt.expectedCodes[i], w.Code)
			}
		})
	}
}

func TestRateLimiterSeparateIPs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(rateLimitConfig(1, 60, 1))

	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Each IP gets its own bucket
	for _, ip := range []string{"192.168.1.4", "192.168.1.5"} {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code, "request from %s should succeed", ip)
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(rateLimitConfig(10, 1, 10))

	// Override cleanup duration for testing
	limiter.cleanup = 100 * time.Millisecond

	ips := []string{"192.168.1.1", "192.168.1.2", "192.168.1.3"}
	for _, ip := range ips {
		limiter.getLimiter(ip)
	}

	limiter.mu.RLock()
	created := len(limiter.limiters)
	limiter.mu.RUnlock()
	assert.Equal(t, len(ips), created, "Expected limiters to be created")

	// Restart the cleanup routine with the shortened interval
	go limiter.cleanupRoutine()
	time.Sleep(150 * time.Millisecond)

	limiter.mu.RLock()
	remaining := len(limiter.limiters)
	limiter.mu.RUnlock()
	assert.Equal(t, 0, remaining, "Expected limiters to be cleaned up")
}

func TestRateLimiterSkipsSwagger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(rateLimitConfig(1, 60, 1))

	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/swagger/index.html", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		req.Header.Set("X-Forwarded-For", "192.168.1.9")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	}
}
