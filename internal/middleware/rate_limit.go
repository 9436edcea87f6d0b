package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"conversational-support-assistant/pkg/response"
)

// RateLimit throttles requests per client IP. Each client gets its own token
// bucket; idle clients expire from the LRU after the TTL.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.cfg.Enabled {
			c.Next()
			return
		}

		key := clientIP(c)
		if !m.allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m Middleware) allow(key string) bool {
	limiter, ok := m.limiters.Get(key)
	if !ok {
		burst := m.cfg.RequestsPerMin / 10
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(float64(m.cfg.RequestsPerMin)/60.0), burst)
		m.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// clientIP prefers proxy headers over the raw remote address.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}
