package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"conversational-support-assistant/config"
	"conversational-support-assistant/internal/middleware"
	"conversational-support-assistant/pkg/log"
)

func setup(cfg config.RateLimitConfig) (*gin.Engine, middleware.Middleware) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), cfg)
	r := gin.New()
	return r, mw
}

func TestRequestIDGenerated(t *testing.T) {
	r, mw := setup(config.RateLimitConfig{})
	r.Use(mw.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.HeaderRequestID); got == "" {
		t.Error("expected a generated request id header")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	r, mw := setup(config.RateLimitConfig{})
	r.Use(mw.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "client-id-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.HeaderRequestID); got != "client-id-1" {
		t.Errorf("client request id not preserved: %q", got)
	}
}

func TestRateLimitThrottles(t *testing.T) {
	r, mw := setup(config.RateLimitConfig{Enabled: true, RequestsPerMin: 10})
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	throttled := false
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			throttled = true
			break
		}
	}
	if !throttled {
		t.Error("expected throttling after burst exhausted")
	}
}

func TestRateLimitPerClient(t *testing.T) {
	r, mw := setup(config.RateLimitConfig{Enabled: true, RequestsPerMin: 10})
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Exhaust client A.
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	// Client B still passes.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("other clients must not be throttled, got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r, mw := setup(config.RateLimitConfig{Enabled: false, RequestsPerMin: 1})
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("disabled limiter must never throttle, got %d", w.Code)
		}
	}
}
