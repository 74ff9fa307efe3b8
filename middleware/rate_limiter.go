package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterTier is one rate policy with its own per-client limiter map. Idle
// clients are evicted so the maps don't grow with every caller ever seen.
type limiterTier struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const limiterIdleTTL = 10 * time.Minute

var (
	// apiTier covers the general API surface.
	apiTier = newLimiterTier(rate.Every(time.Minute/200), 200)
	// askTier covers /ask: each turn costs a model call, so it is far
	// stricter than the rest of the API.
	askTier = newLimiterTier(rate.Every(time.Minute/20), 5)
)

func newLimiterTier(limit rate.Limit, burst int) *limiterTier {
	t := &limiterTier{limit: limit, burst: burst, clients: make(map[string]*clientLimiter)}
	go t.evictIdle()
	return t
}

func (t *limiterTier) get(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	cl, ok := t.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.clients[key] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

func (t *limiterTier) evictIdle() {
	for range time.Tick(limiterIdleTTL) {
		t.mu.Lock()
		for key, cl := range t.clients {
			if time.Since(cl.lastSeen) > limiterIdleTTL {
				delete(t.clients, key)
			}
		}
		t.mu.Unlock()
	}
}

func (t *limiterTier) middleware(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !t.get(ip).Allow() {
			zap.L().Warn("Rate limit exceeded",
				zap.String("tier", name),
				zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}

// RateLimitMiddleware limits requests per client IP across the whole API.
func RateLimitMiddleware() gin.HandlerFunc {
	return apiTier.middleware("api")
}

// AskRateLimitMiddleware applies the stricter per-IP budget for the
// conversational endpoint.
func AskRateLimitMiddleware() gin.HandlerFunc {
	return askTier.middleware("ask")
}

// clientIP resolves the caller's address, honouring proxy headers.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// Comma-separated list; the first entry is the originating client.
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
