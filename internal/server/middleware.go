package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client", c.ClientIP(),
		)
	}
}

const (
	visitorTTL    = 10 * time.Minute
	sweepInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorTable maps client IPs to their limiters. Stale entries are swept
// lazily on access, so the table needs no background goroutine and dies with
// the router that owns it.
type visitorTable struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time

	rps   float64
	burst int
}

// get returns the limiter for ip, creating it if needed. Caller does not hold
// the lock.
func (t *visitorTable) get(ip string, now time.Time) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	if now.Sub(t.lastSweep) > sweepInterval {
		t.sweepLocked(now)
	}

	v, ok := t.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(t.rps), t.burst)}
		t.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (t *visitorTable) sweepLocked(now time.Time) {
	for ip, v := range t.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(t.visitors, ip)
		}
	}
	t.lastSweep = now
}

// RateLimiter applies a token-bucket limit per client IP. Limiters for idle
// clients are dropped after they go unused for ten minutes.
func RateLimiter(rps float64, burst int) gin.HandlerFunc {
	table := &visitorTable{
		visitors:  make(map[string]*visitor),
		lastSweep: time.Now(),
		rps:       rps,
		burst:     burst,
	}

	return func(c *gin.Context) {
		if !table.get(c.ClientIP(), time.Now()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
