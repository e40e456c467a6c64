package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func serve(e *echo.Echo, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newLimitedEcho(limit int, window time.Duration) *echo.Echo {
	e := echo.New()
	e.Use(RateLimiter(limit, window))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	e := newLimitedEcho(3, time.Minute)

	for i := 0; i < 3; i++ {
		rec := serve(e, "10.0.0.1:1000")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}

	rec := serve(e, "10.0.0.1:1000")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	e := newLimitedEcho(1, time.Minute)

	if rec := serve(e, "10.0.0.1:1000"); rec.Code != http.StatusOK {
		t.Fatalf("first client: expected 200, got %d", rec.Code)
	}
	if rec := serve(e, "10.0.0.2:1000"); rec.Code != http.StatusOK {
		t.Errorf("second client: expected 200, got %d", rec.Code)
	}
	if rec := serve(e, "10.0.0.1:1000"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("first client again: expected 429, got %d", rec.Code)
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	e := newLimitedEcho(1, 50*time.Millisecond)

	if rec := serve(e, "10.0.0.1:1000"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := serve(e, "10.0.0.1:1000"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}

	time.Sleep(80 * time.Millisecond)

	if rec := serve(e, "10.0.0.1:1000"); rec.Code != http.StatusOK {
		t.Errorf("expected 200 after window, got %d", rec.Code)
	}
}

func TestRateLimiter_RemainingHeader(t *testing.T) {
	e := newLimitedEcho(5, time.Minute)

	rec := serve(e, "10.0.0.1:1000")
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "4" {
		t.Errorf("expected 4 remaining, got %q", got)
	}
}

func TestFixedWindow_SweepsExpiredKeys(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := newFixedWindow(1, time.Minute, start)

	f.take("a", start)
	f.take("b", start.Add(30*time.Second))

	_, retry, ok := f.take("a", start.Add(45*time.Second))
	if ok || retry != 15*time.Second {
		t.Errorf("expected block with 15s retry, got ok=%v retry=%v", ok, retry)
	}

	f.take("c", start.Add(2*time.Minute))
	if len(f.windows) != 1 {
		t.Errorf("expected expired windows swept, %d left", len(f.windows))
	}
}
