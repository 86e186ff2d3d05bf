package mw

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipLimiters hands out one token bucket per client IP. Buckets are
// never evicted; the office-sized client population keeps the map small.
type ipLimiters struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

func newIPLimiters(limit rate.Limit, burst int) *ipLimiters {
	return &ipLimiters{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
		burst:   burst,
	}
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[ip]
	if !ok {
		bucket = rate.NewLimiter(l.limit, l.burst)
		l.buckets[ip] = bucket
	}
	return bucket
}

// RateLimiter is a middleware for per-IP request rate limiting.
func RateLimiter(limit rate.Limit, burst int) gin.HandlerFunc {
	limiters := newIPLimiters(limit, burst)
	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
