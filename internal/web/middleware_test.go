package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = addr
	return req
}

func TestRateLimitMiddleware_AllowsWithinLimit(t *testing.T) {
	handler := RateLimitMiddleware(5)(okHandler())

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("10.0.0.1:4000"))

		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimitMiddleware_BlocksOverLimit(t *testing.T) {
	handler := RateLimitMiddleware(3)(okHandler())

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), requestFrom("10.0.0.1:4000"))
	}

	// different port, same host
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:4001"))

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}

func TestRateLimitMiddleware_KeysByClient(t *testing.T) {
	handler := RateLimitMiddleware(2)(okHandler())

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), requestFrom("10.0.0.1:4000"))
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.2:4000"))
	if w.Code != http.StatusOK {
		t.Errorf("second client should not be rate-limited, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:4000"))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("first client should be rate-limited, got %d", w.Code)
	}
}

func TestRateLimitMiddleware_ZeroDisables(t *testing.T) {
	handler := RateLimitMiddleware(0)(okHandler())

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("10.0.0.1:4000"))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRequestLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	called := false
	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

	if !called {
		t.Error("inner handler was not called")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("expected 418, got %d", w.Code)
	}
}
