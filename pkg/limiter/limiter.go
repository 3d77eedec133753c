package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zekroTJA/timedmap"
	"golang.org/x/time/rate"
)

// Visitors hands out one token bucket per client key. Buckets of clients that
// stay quiet for ttl are evicted.
type Visitors struct {
	limit rate.Limit
	burst int
	ttl   time.Duration

	mu      sync.Mutex
	buckets *timedmap.TimedMap
}

func NewVisitors(rps int, burst int, ttl time.Duration) *Visitors {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Visitors{
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
		buckets: timedmap.New(ttl / 2),
	}
}

func (v *Visitors) Allow(key string) bool {
	return v.bucket(key).Allow()
}

func (v *Visitors) bucket(key string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	if l, ok := v.buckets.GetValue(key).(*rate.Limiter); ok {
		_ = v.buckets.Refresh(key, v.ttl)
		return l
	}

	l := rate.NewLimiter(v.limit, v.burst)
	v.buckets.Set(key, l, v.ttl)
	return l
}

// Limit rejects requests above rps per client ip with 429.
func Limit(rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	visitors := NewVisitors(rps, burst, ttl)

	return func(c *gin.Context) {
		if !visitors.Allow(c.ClientIP()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
