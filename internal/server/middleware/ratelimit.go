package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Limiter решает, можно ли пропустить запрос клиента с данным идентификатором.
// Реализация in-memory ниже; распределенный лимитер подключается через этот же интерфейс.
//
//go:generate moq -out limiter_mock.go . Limiter
type Limiter interface {
	Allow(key string) bool
}

// retryAfterer опционально сообщает, сколько ждать до сброса окна
type retryAfterer interface {
	RetryAfter(key string) time.Duration
}

// RateLimiter представляет rate limiter с фиксированным окном.
// Счетчик ключа сбрасывается, когда с начала окна прошло window.
// Состояние локально для процесса.
type RateLimiter struct {
	now      func() time.Time
	buckets  map[string]*bucket
	cleanupC chan struct{}
	stopOnce sync.Once
	rate     int
	window   time.Duration
	mu       sync.Mutex
}

// bucket представляет окно для конкретного клиента
type bucket struct {
	windowStart time.Time
	count       int
}

// NewRateLimiter создает новый rate limiter
// rate - максимальное количество запросов в окне
// window - временное окно (например, 1 минута)
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := newRateLimiter(rate, window, time.Now)

	// Запускаем периодическую очистку старых окон
	go rl.cleanup()

	return rl
}

// newRateLimiter создает limiter без фоновой очистки, с заданными часами
func newRateLimiter(rate int, window time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		now:      now,
		buckets:  make(map[string]*bucket),
		cleanupC: make(chan struct{}),
		rate:     rate,
		window:   window,
	}
}

// cleanup периодически удаляет неактивные окна для экономии памяти
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupOldBuckets()
		case <-rl.cleanupC:
			return
		}
	}
}

// cleanupOldBuckets удаляет окна, которые истекли
func (rl *RateLimiter) cleanupOldBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.windowStart) >= rl.window {
			delete(rl.buckets, key)
		}
	}
}

// Stop останавливает cleanup goroutine. Повторный вызов безопасен.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.cleanupC)
	})
}

// Allow проверяет, разрешен ли запрос для данного ключа (обычно IP адрес)
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, exists := rl.buckets[key]
	if !exists || now.Sub(b.windowStart) >= rl.window {
		b = &bucket{windowStart: now}
		rl.buckets[key] = b
	}

	if b.count >= rl.rate {
		return false
	}

	b.count++
	return true
}

// RetryAfter возвращает время до сброса окна ключа
func (rl *RateLimiter) RetryAfter(key string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[key]
	if !exists {
		return 0
	}

	left := rl.window - rl.now().Sub(b.windowStart)
	if left < 0 {
		return 0
	}
	return left
}

// RateLimitMiddleware создает middleware для ограничения частоты запросов.
// Ключ - идентификатор клиента из ClientIP.
func RateLimitMiddleware(limiter Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !CheckRateLimit(w, r, limiter, logger) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CheckRateLimit проверяет лимит для клиента запроса.
// При превышении пишет 429 (с Retry-After, если лимитер его знает) и возвращает false.
// Используется обработчиками, которым нужно проверять лимит после валидации запроса.
func CheckRateLimit(w http.ResponseWriter, r *http.Request, limiter Limiter, logger *slog.Logger) bool {
	if limiter == nil {
		return true
	}

	key := ClientIP(r)
	if limiter.Allow(key) {
		return true
	}

	logger.Warn("Rate limit exceeded",
		"ip", key,
		"method", r.Method,
		"path", r.URL.Path,
	)

	if ra, ok := limiter.(retryAfterer); ok {
		if wait := ra.RetryAfter(key); wait > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write([]byte(`{"error":"rate limit exceeded, please try again later"}`))
	return false
}

// ClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func ClientIP(r *http.Request) string {
	// Берем первый IP из списка (реальный клиент)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	// RemoteAddr без порта, чтобы разные соединения одного клиента попадали в одно окно
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
