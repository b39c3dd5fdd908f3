package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/nexconsult/brdocs-api/internal/config"
)

// RateLimiter implements per-client rate limiting using token buckets.
type RateLimiter struct {
	config   config.RateLimitConfig
	clients  map[string]*rate.Limiter
	mu       sync.RWMutex
	lastSeen map[string]time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		config:   cfg,
		clients:  make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
	}

	go rl.cleanupClients()

	return rl
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.ClientIP()
		limiter := rl.getLimiter(clientID)

		if !limiter.Allow() {
			retryAfter := time.Minute / time.Duration(rl.config.RequestsPerMinute)

			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.config.RequestsPerMinute))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"message":     fmt.Sprintf("Too many requests. Try again in %v", retryAfter),
				"retry_after": retryAfter.Seconds(),
				"timestamp":   time.Now(),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.config.RequestsPerMinute))
		c.Next()
	}
}

// getLimiter gets or creates a rate limiter for a client
func (rl *RateLimiter) getLimiter(clientID string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lastSeen[clientID] = time.Now()

	if limiter, exists := rl.clients[clientID]; exists {
		return limiter
	}

	// Convert requests per minute to requests per second
	rps := rate.Limit(float64(rl.config.RequestsPerMinute) / 60.0)
	limiter := rate.NewLimiter(rps, rl.config.BurstSize)
	rl.clients[clientID] = limiter

	return limiter
}

// GetStats returns rate limiter statistics
func (rl *RateLimiter) GetStats() map[string]interface{} {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	return map[string]interface{}{
		"active_clients":      len(rl.clients),
		"requests_per_minute": rl.config.RequestsPerMinute,
		"burst_size":          rl.config.BurstSize,
		"cleanup_interval":    rl.config.CleanupInterval,
	}
}

// cleanupClients removes old client limiters to prevent memory leaks
func (rl *RateLimiter) cleanupClients() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()

		cutoff := time.Now().Add(-rl.config.CleanupInterval * 2)
		for clientID, lastSeen := range rl.lastSeen {
			if lastSeen.Before(cutoff) {
				delete(rl.clients, clientID)
				delete(rl.lastSeen, clientID)
			}
		}

		rl.mu.Unlock()
	}
}
