package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

type window struct {
	count int
	start time.Time
}

// fixedWindow counts requests per key in consecutive windows of length size.
type fixedWindow struct {
	mu      sync.Mutex
	limit   int
	size    time.Duration
	windows map[string]*window
	swept   time.Time
}

func newFixedWindow(limit int, size time.Duration, now time.Time) *fixedWindow {
	return &fixedWindow{
		limit:   limit,
		size:    size,
		windows: make(map[string]*window),
		swept:   now,
	}
}

// take records one request for key. When the limit is reached it reports
// how long until the window resets.
func (f *fixedWindow) take(key string, now time.Time) (remaining int, retryAfter time.Duration, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if now.Sub(f.swept) > f.size {
		f.sweep(now)
	}

	w, found := f.windows[key]
	if !found || now.Sub(w.start) > f.size {
		w = &window{start: now}
		f.windows[key] = w
	}

	if w.count >= f.limit {
		return 0, f.size - now.Sub(w.start), false
	}

	w.count++
	return f.limit - w.count, 0, true
}

func (f *fixedWindow) sweep(now time.Time) {
	for key, w := range f.windows {
		if now.Sub(w.start) > f.size {
			delete(f.windows, key)
		}
	}
	f.swept = now
}

// RateLimiter allows limit requests per client IP in each fixed window.
func RateLimiter(limit int, size time.Duration) echo.MiddlewareFunc {
	limiter := newFixedWindow(limit, size, time.Now())

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			remaining, retryAfter, ok := limiter.take(c.RealIP(), time.Now())
			if !ok {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			return next(c)
		}
	}
}
