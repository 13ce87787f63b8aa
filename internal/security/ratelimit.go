package security

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter implements a simple token bucket rate limiter keyed by client IP
type RateLimiter struct {
	clients map[string]*client
	mu      sync.RWMutex
	rate    int           // requests per window
	window  time.Duration // time window
}

type client struct {
	tokens     int
	lastRefill time.Time
	mu         sync.Mutex
}

// NewRateLimiter creates a new rate limiter allowing rate requests per window
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		rate:    rate,
		window:  window,
	}
	go rl.cleanupClients()
	return rl
}

// Allow checks if a request from an IP should be allowed
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	c, exists := rl.clients[ip]
	if !exists {
		c = &client{
			tokens:     rl.rate,
			lastRefill: time.Now(),
		}
		rl.clients[ip] = c
	}
	rl.mu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Refill tokens once the window has passed
	now := time.Now()
	if now.Sub(c.lastRefill) >= rl.window {
		c.tokens = rl.rate
		c.lastRefill = now
	}

	if c.tokens > 0 {
		c.tokens--
		return true
	}

	return false
}

// cleanupClients removes stale entries to prevent unbounded growth
func (rl *RateLimiter) cleanupClients() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, c := range rl.clients {
			c.mu.Lock()
			if now.Sub(c.lastRefill) > rl.window*2 {
				delete(rl.clients, ip)
			}
			c.mu.Unlock()
		}
		rl.mu.Unlock()
	}
}

// GetClientIP extracts the client IP from the request
func GetClientIP(r *http.Request) string {
	// X-Forwarded-For takes priority when behind a proxy
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	return r.RemoteAddr
}
