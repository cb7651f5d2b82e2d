package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/dtroode/quizzme-server/internal/model"
)

const defaultLimiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit applies a token bucket per owner. Requests without an owner are
// keyed by client IP. Buckets unused for idleTTL are dropped.
type RateLimit struct {
	mu             sync.Mutex
	limiters       map[string]*limiterEntry
	limit          rate.Limit
	burst          int
	idleTTL        time.Duration
	lastSweep      time.Time
	now            func() time.Time
	contextManager model.ContextManager
}

func NewRateLimit(rps float64, burst int, contextManager model.ContextManager) *RateLimit {
	return &RateLimit{
		limiters:       make(map[string]*limiterEntry),
		limit:          rate.Limit(rps),
		burst:          burst,
		idleTTL:        defaultLimiterIdleTTL,
		lastSweep:      time.Now(),
		now:            time.Now,
		contextManager: contextManager,
	}
}

func (r *RateLimit) Handle(c *gin.Context) {
	key, ok := r.contextManager.GetOwnerFromContext(c.Request.Context())
	if !ok {
		key = "ip:" + c.ClientIP()
	}

	if !r.limiter(key).Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, please try again later"})
		return
	}
	c.Next()
}

func (r *RateLimit) limiter(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= r.idleTTL {
		for k, e := range r.limiters {
			if now.Sub(e.lastSeen) >= r.idleTTL {
				delete(r.limiters, k)
			}
		}
		r.lastSweep = now
	}

	e, ok := r.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter
}
