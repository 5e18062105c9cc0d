package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-employee-directory/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client's limiter survives without requests.
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type IPRateLimiter struct {
	ips       map[string]*visitor
	mu        *sync.Mutex
	r         rate.Limit // requests per second
	b         int        // burst
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:       make(map[string]*visitor),
		mu:        &sync.Mutex{},
		r:         r,
		b:         b,
		ttl:       limiterIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// GetLimiter returns the limiter for key. Limiters idle for longer than the
// TTL are swept at most once per TTL.
func (i *IPRateLimiter) GetLimiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) >= i.ttl {
		for k, v := range i.ips {
			if now.Sub(v.lastSeen) >= i.ttl {
				delete(i.ips, k)
			}
		}
		i.lastSweep = now
	}

	v, exists := i.ips[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[key] = v
	}
	v.lastSeen = now

	return v.limiter
}

// Len reports how many client limiters are tracked.
func (i *IPRateLimiter) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// RateLimitByIP answers 429 with a Retry-After header (whole seconds, at least 1)
// once a client exceeds r requests per second with burst b. r <= 0 disables limiting.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	if r <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		res := limiter.GetLimiter(c.ClientIP()).Reserve()
		if !res.OK() {
			c.Header("Retry-After", "1")
			abortTooManyRequests(c)
			return
		}
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			secs := int(math.Ceil(delay.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			abortTooManyRequests(c)
			return
		}
		c.Next()
	}
}

func abortTooManyRequests(c *gin.Context) {
	response.Failed(c, http.StatusTooManyRequests, "Too many requests")
	c.Abort()
}
