package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

// clientLimiter keeps one token bucket per client. Clients are keyed by a
// salted hash of their IP so raw addresses are never held in memory.
type clientLimiter struct {
	mu      sync.Mutex
	salt    string
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
	clients map[string]*clientEntry
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(perMinute float64, burst int) *clientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &clientLimiter{
		salt:    generateSalt(),
		limit:   rate.Limit(perMinute / 60),
		burst:   burst,
		ttl:     limiterIdleTTL,
		now:     time.Now,
		clients: make(map[string]*clientEntry),
	}
}

func generateSalt() string {
	b := make([]byte, 32)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Hash IP address for privacy (consistent per IP for the process lifetime)
func (l *clientLimiter) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + l.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// allow reports whether the client may proceed, evicting idle clients as a
// side effect.
func (l *clientLimiter) allow(ip string) bool {
	key := l.hashIP(ip)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for k, e := range l.clients {
		if now.Sub(e.lastSeen) > l.ttl {
			delete(l.clients, k)
		}
	}

	e, ok := l.clients[key]
	if !ok {
		e = &clientEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (l *clientLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Middleware rejecting clients over their budget with 429
func rateLimitMiddleware(l *clientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			requestLogger(c).Warn().Str("client", l.hashIP(c.ClientIP())).Msg("contact rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many messages. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
