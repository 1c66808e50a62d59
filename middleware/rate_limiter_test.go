package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newLimitedRouter(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	InitRateLimiter(client)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter())
	r.POST("/auth/verify-otp", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/auth/send-otp", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, mr
}

func post(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = "10.0.0.1:12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyOTPLimit(t *testing.T) {
	r, _ := newLimitedRouter(t)

	// 5 attempts per 10 minutes, then 429.
	for i := 0; i < 5; i++ {
		if w := post(r, "/auth/verify-otp"); w.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d, want 200", i+1, w.Code)
		}
	}
	w := post(r, "/auth/verify-otp")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("6th attempt: status = %d, want 429", w.Code)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Fatalf("X-RateLimit-Remaining = %q, want 0", got)
	}
}

func TestSendOTPFixedWindowResets(t *testing.T) {
	r, mr := newLimitedRouter(t)

	for i := 0; i < 5; i++ {
		if w := post(r, "/auth/send-otp"); w.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d, want 200", i+1, w.Code)
		}
	}
	if w := post(r, "/auth/send-otp"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("over limit: status = %d, want 429", w.Code)
	}
	// Denial must be stable: repeated over-limit requests keep getting 429
	// and must not creep the counter past the limit into an allowed state.
	for i := 0; i < 3; i++ {
		if w := post(r, "/auth/send-otp"); w.Code != http.StatusTooManyRequests {
			t.Fatalf("over limit retry %d: status = %d, want 429", i+1, w.Code)
		}
	}

	// After the window expires the counter starts over.
	mr.FastForward(time.Hour + time.Minute)
	if w := post(r, "/auth/send-otp"); w.Code != http.StatusOK {
		t.Fatalf("after window: status = %d, want 200", w.Code)
	}
}

func TestPingBypassesLimits(t *testing.T) {
	r, _ := newLimitedRouter(t)

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("ping %d: status = %d", i+1, w.Code)
		}
	}
}

func TestLimitsAreScopedPerIP(t *testing.T) {
	r, _ := newLimitedRouter(t)

	for i := 0; i < 5; i++ {
		post(r, "/auth/verify-otp")
	}
	if w := post(r, "/auth/verify-otp"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429 for the exhausted IP", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/verify-otp", nil)
	req.RemoteAddr = "10.0.0.2:12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, a different IP must not be throttled", w.Code)
	}
}
