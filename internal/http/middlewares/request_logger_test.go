package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger_LogsAndTagsRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	e := echo.New()
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "req-123" {
		t.Errorf("expected request id echoed, got %q", got)
	}

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["requestID"] != "req-123" {
		t.Errorf("unexpected requestID %v", fields["requestID"])
	}
	if fields["status"] != int64(http.StatusNotFound) {
		t.Errorf("expected status 404, got %v", fields["status"])
	}
	if fields["path"] != "/missing" {
		t.Errorf("unexpected path %v", fields["path"])
	}
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)

	e := echo.New()
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if len(rec.Header().Get(RequestIDHeader)) != 36 {
		t.Errorf("expected a generated uuid, got %q", rec.Header().Get(RequestIDHeader))
	}
}
