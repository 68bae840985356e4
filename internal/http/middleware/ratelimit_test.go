package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestSimpleRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Unix(1000, 0)
	l := newMemoryLimiter()
	l.now = func() time.Time { return now }

	r := gin.New()
	r.GET("/test", simpleRateLimit(l, 2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := do(); code != http.StatusOK {
			t.Fatalf("request %d: expected 200 got %d", i, code)
		}
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", code)
	}

	// window expired
	now = now.Add(2 * time.Minute)
	if code := do(); code != http.StatusOK {
		t.Fatalf("expected 200 after window, got %d", code)
	}
}

func TestMemoryLimiterPerClient(t *testing.T) {
	l := newMemoryLimiter()
	if !l.allow("a", 1, time.Minute) {
		t.Fatal("first request of a blocked")
	}
	if l.allow("a", 1, time.Minute) {
		t.Fatal("second request of a allowed")
	}
	if !l.allow("b", 1, time.Minute) {
		t.Fatal("b blocked by a's window")
	}
}
