package rate_limit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const staleEntryTTL = 10 * time.Minute

// KeyedLimiter keeps one token bucket per key (typically a client address).
// Entries unused for staleEntryTTL are pruned on the next lookup.
type KeyedLimiter struct {
	mu       sync.Mutex
	entries  map[string]*limiterEntry
	rps      rate.Limit
	burst    int
	lastScan time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewKeyedLimiter(rps float64, burst int) *KeyedLimiter {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return &KeyedLimiter{
		entries:  make(map[string]*limiterEntry),
		rps:      rate.Limit(rps),
		burst:    burst,
		lastScan: time.Now(),
	}
}

func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastScan) > staleEntryTTL {
		for k, entry := range l.entries {
			if now.Sub(entry.lastSeen) > staleEntryTTL {
				delete(l.entries, k)
			}
		}
		l.lastScan = now
	}

	entry, ok := l.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.entries[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.Allow()
}

func (l *KeyedLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, key)
}

// Middleware rejects requests exceeding the per-client-address rate.
func Middleware(limiter *KeyedLimiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !limiter.Allow(ctx.ClientIP()) {
			ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
