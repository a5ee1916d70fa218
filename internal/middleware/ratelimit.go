package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickta/backend/pkg/response"
	"golang.org/x/time/rate"
)

const (
	visitorTTL    = 5 * time.Minute
	sweepInterval = 3 * time.Minute
)

// visitor tracks one client IP's limiter and when it was last seen.
type visitor struct {
	limiter *rate.Limiter
	seen    time.Time
}

// RateLimiter enforces a per-IP token bucket. Stale entries are evicted in the
// background so the map does not grow without bound.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

// NewRateLimiter creates a limiter allowing rps requests per second with the
// given burst per client IP.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
	go rl.sweep()
	return rl
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.seen = time.Now()
	return v.limiter.Allow()
}

func (rl *RateLimiter) sweep() {
	for range time.Tick(sweepInterval) {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.seen) > visitorTTL {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware rejects requests over the per-IP budget with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			response.TooManyRequests(c, "too many requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
