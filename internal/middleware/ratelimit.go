package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"voice-assistant-backend/pkg/response"
)

// ipLimiter throttles by source address before requests reach the engine.
// This is transport-level abuse protection; the per-user command budget is
// enforced separately inside the usecase.
type ipLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newIPLimiter(requestsPerMin int) *ipLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &ipLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *ipLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit returns a per-IP throttling middleware.
func (m Middleware) RateLimit(requestsPerMin int) gin.HandlerFunc {
	rl := newIPLimiter(requestsPerMin)
	return func(c *gin.Context) {
		ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			ip = c.Request.RemoteAddr
		}
		if !rl.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}
		c.Next()
	}
}
