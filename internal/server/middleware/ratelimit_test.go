package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock управляемое время для тестов окна
type fakeClock struct {
	now time.Time
	mu  sync.Mutex
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})
}

func TestNewRateLimiter(t *testing.T) {
	rate := 10
	window := 1 * time.Minute

	limiter := NewRateLimiter(rate, window)

	assert.NotNil(t, limiter)
	assert.Equal(t, rate, limiter.rate)
	assert.Equal(t, window, limiter.window)
	assert.NotNil(t, limiter.buckets)
	assert.NotNil(t, limiter.cleanupC)

	limiter.Stop()
	// Повторный Stop не паникует
	limiter.Stop()
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("First requests within limit are allowed", func(t *testing.T) {
		limiter := newRateLimiter(5, time.Minute, newFakeClock().Now)

		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("192.168.1.1"), fmt.Sprintf("request %d should be allowed", i+1))
		}
	})

	t.Run("Requests over limit are denied", func(t *testing.T) {
		limiter := newRateLimiter(3, time.Minute, newFakeClock().Now)

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow("192.168.1.2"))
		}

		assert.False(t, limiter.Allow("192.168.1.2"), "request over limit should be denied")
	})

	t.Run("Different keys are tracked separately", func(t *testing.T) {
		limiter := newRateLimiter(2, time.Minute, newFakeClock().Now)

		assert.True(t, limiter.Allow("a"))
		assert.True(t, limiter.Allow("a"))
		assert.False(t, limiter.Allow("a"), "a over limit")

		assert.True(t, limiter.Allow("b"))
		assert.True(t, limiter.Allow("b"))
		assert.False(t, limiter.Allow("b"), "b over limit")
	})

	t.Run("Counter resets after window elapses", func(t *testing.T) {
		clock := newFakeClock()
		limiter := newRateLimiter(2, time.Minute, clock.Now)

		assert.True(t, limiter.Allow("c"))
		assert.True(t, limiter.Allow("c"))
		assert.False(t, limiter.Allow("c"))

		clock.Advance(59 * time.Second)
		assert.False(t, limiter.Allow("c"), "window has not elapsed yet")

		clock.Advance(time.Second)
		assert.True(t, limiter.Allow("c"), "counter should be reset")
		assert.True(t, limiter.Allow("c"))
		assert.False(t, limiter.Allow("c"))
	})

	t.Run("Denied requests do not extend the window", func(t *testing.T) {
		clock := newFakeClock()
		limiter := newRateLimiter(1, time.Minute, clock.Now)

		assert.True(t, limiter.Allow("d"))
		for i := 0; i < 10; i++ {
			clock.Advance(5 * time.Second)
			assert.False(t, limiter.Allow("d"))
		}

		clock.Advance(10 * time.Second)
		assert.True(t, limiter.Allow("d"))
	})

	t.Run("Concurrent requests never exceed the rate", func(t *testing.T) {
		limiter := newRateLimiter(60, time.Minute, newFakeClock().Now)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			allowed int
		)
		for i := 0; i < 200; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("shared") {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 60, allowed)
	})
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	clock := newFakeClock()
	limiter := newRateLimiter(1, time.Minute, clock.Now)

	assert.Zero(t, limiter.RetryAfter("unknown"))

	limiter.Allow("k")
	clock.Advance(20 * time.Second)
	assert.Equal(t, 40*time.Second, limiter.RetryAfter("k"))

	clock.Advance(time.Minute)
	assert.Zero(t, limiter.RetryAfter("k"))
}

func TestRateLimitMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Requests within limit pass through", func(t *testing.T) {
		handler := RateLimitMiddleware(newRateLimiter(5, time.Minute, newFakeClock().Now), logger)(okHandler())

		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/phrases", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, fmt.Sprintf("request %d should pass", i+1))
			assert.Equal(t, "success", w.Body.String())
		}
	})

	t.Run("61st request is blocked with 429 and passes after window", func(t *testing.T) {
		clock := newFakeClock()
		handler := RateLimitMiddleware(newRateLimiter(60, time.Minute, clock.Now), logger)(okHandler())

		send := func() *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/phrases", nil)
			req.Header.Set("X-Forwarded-For", "203.0.113.7")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			return w
		}

		for i := 0; i < 60; i++ {
			require.Equal(t, http.StatusOK, send().Code)
		}

		clock.Advance(15 * time.Second)
		w := send()
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Equal(t, "45", w.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":"rate limit exceeded, please try again later"}`, w.Body.String())

		clock.Advance(45 * time.Second)
		assert.Equal(t, http.StatusOK, send().Code)
	})

	t.Run("Different IPs are tracked separately", func(t *testing.T) {
		handler := RateLimitMiddleware(newRateLimiter(2, time.Minute, newFakeClock().Now), logger)(okHandler())

		send := func(addr string) int {
			req := httptest.NewRequest(http.MethodGet, "/phrases", nil)
			req.RemoteAddr = addr
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			return w.Code
		}

		for i := 0; i < 2; i++ {
			assert.Equal(t, http.StatusOK, send("192.168.1.1:12345"))
			assert.Equal(t, http.StatusOK, send("192.168.1.2:12345"))
		}

		assert.Equal(t, http.StatusTooManyRequests, send("192.168.1.1:12345"))
		assert.Equal(t, http.StatusTooManyRequests, send("192.168.1.2:12345"))
	})

	t.Run("Same client on another port shares the window", func(t *testing.T) {
		handler := RateLimitMiddleware(newRateLimiter(1, time.Minute, newFakeClock().Now), logger)(okHandler())

		req1 := httptest.NewRequest(http.MethodGet, "/phrases", nil)
		req1.RemoteAddr = "192.168.1.9:1000"
		w1 := httptest.NewRecorder()
		handler.ServeHTTP(w1, req1)
		assert.Equal(t, http.StatusOK, w1.Code)

		req2 := httptest.NewRequest(http.MethodGet, "/phrases", nil)
		req2.RemoteAddr = "192.168.1.9:2000"
		w2 := httptest.NewRecorder()
		handler.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	})

	t.Run("Custom limiter is consulted with client identifier", func(t *testing.T) {
		limiter := &LimiterMock{
			AllowFunc: func(key string) bool { return false },
		}
		handler := RateLimitMiddleware(limiter, logger)(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/phrases", nil)
		req.Header.Set("X-Real-IP", "198.51.100.4")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Empty(t, w.Header().Get("Retry-After"), "limiter without RetryAfter sets no header")
		require.Len(t, limiter.AllowCalls(), 1)
		assert.Equal(t, "198.51.100.4", limiter.AllowCalls()[0].Key)
	})
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xRealIP    string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For with single IP",
			remoteAddr: "10.0.0.1:12345",
			xff:        "192.168.1.1",
			expectedIP: "192.168.1.1",
		},
		{
			name:       "X-Forwarded-For with multiple IPs",
			remoteAddr: "10.0.0.1:12345",
			xff:        "192.168.1.1, 10.0.0.2, 10.0.0.3",
			expectedIP: "192.168.1.1", // Первый IP
		},
		{
			name:       "X-Real-IP when X-Forwarded-For is empty",
			remoteAddr: "10.0.0.1:12345",
			xRealIP:    "192.168.2.1",
			expectedIP: "192.168.2.1",
		},
		{
			name:       "RemoteAddr without port when headers are empty",
			remoteAddr: "192.168.3.1:54321",
			expectedIP: "192.168.3.1",
		},
		{
			name:       "IPv6 RemoteAddr",
			remoteAddr: "[::1]:54321",
			expectedIP: "::1",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "pipe",
			expectedIP: "pipe",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			remoteAddr: "10.0.0.1:12345",
			xff:        "192.168.1.1",
			xRealIP:    "192.168.2.1",
			expectedIP: "192.168.1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xRealIP != "" {
				req.Header.Set("X-Real-IP", tt.xRealIP)
			}

			assert.Equal(t, tt.expectedIP, ClientIP(req))
		})
	}
}

func TestRateLimiter_CleanupOldBuckets(t *testing.T) {
	clock := newFakeClock()
	limiter := newRateLimiter(10, time.Minute, clock.Now)

	limiter.Allow("192.168.1.1")
	limiter.Allow("192.168.1.2")
	clock.Advance(30 * time.Second)
	limiter.Allow("192.168.1.3")

	clock.Advance(30 * time.Second)
	limiter.cleanupOldBuckets()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.buckets, 1, "only the active window should survive")
	assert.Contains(t, limiter.buckets, "192.168.1.3")
}

func TestRateLimitMiddleware_LogsExceededRequests(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	handler := RateLimitMiddleware(newRateLimiter(1, time.Minute, newFakeClock().Now), logger)(okHandler())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/phrases", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	logOutput := logBuf.String()
	assert.Contains(t, logOutput, "Rate limit exceeded")
	assert.Contains(t, logOutput, "192.168.1.1")
	assert.Contains(t, logOutput, "/phrases")
	assert.Contains(t, logOutput, "POST")
}

func TestCheckRateLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("nil limiter allows everything", func(t *testing.T) {
		w := httptest.NewRecorder()
		assert.True(t, CheckRateLimit(w, httptest.NewRequest(http.MethodGet, "/phrases", nil), nil, logger))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("denied request writes 429", func(t *testing.T) {
		limiter := newRateLimiter(1, time.Minute, newFakeClock().Now)
		req := httptest.NewRequest(http.MethodGet, "/phrases", nil)

		assert.True(t, CheckRateLimit(httptest.NewRecorder(), req, limiter, logger))

		w := httptest.NewRecorder()
		assert.False(t, CheckRateLimit(w, req, limiter, logger))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "60", w.Header().Get("Retry-After"))
	})
}
