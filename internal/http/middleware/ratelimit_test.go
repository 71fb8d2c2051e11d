package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/auth"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okHandler() (http.Handler, *int) {
	calls := 0
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}), &calls
}

func fire(h http.Handler, remoteAddr, path string, n int) (ok, limited int) {
	for i := 0; i < n; i++ {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		switch w.Code {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			limited++
		}
	}
	return ok, limited
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{Enabled: false, RequestsPerMinute: 1, IntakePerHour: 1}, zap.NewNop())
	next, calls := okHandler()

	ok, _ := fire(rl.LimitByIP(next), "192.168.1.1:1234", "/test", 20)
	assert.Equal(t, 20, ok)
	ok, _ = fire(rl.LimitIntake(next), "192.168.1.1:1234", "/test", 20)
	assert.Equal(t, 20, ok)
	assert.Equal(t, 40, *calls)
}

func TestRateLimiter_Whitelists(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 2,
		IntakePerHour:     1,
		WhitelistIPs:      []string{"127.0.0.1", "10.0.0.1"},
		WhitelistPaths:    []string{"/health", "/files/*"},
	}, zap.NewNop())
	next, _ := okHandler()

	ok, _ := fire(rl.LimitByIP(next), "127.0.0.1:1234", "/test", 30)
	assert.Equal(t, 30, ok, "whitelisted ip")

	ok, _ = fire(rl.LimitByIP(next), "192.168.1.9:1234", "/health", 30)
	assert.Equal(t, 30, ok, "whitelisted path")

	ok, _ = fire(rl.LimitByIP(next), "192.168.1.9:1234", "/files/fotos/a.jpg", 30)
	assert.Equal(t, 30, ok, "whitelisted prefix")

	ok, _ = fire(rl.LimitIntake(next), "127.0.0.1:1234", "/api/v1/intake/puntual", 10)
	assert.Equal(t, 10, ok, "whitelisted ip skips the intake bucket")

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 192.168.1.1")
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		rl.LimitByIP(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_IntakeBucketIsStricter(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 100,
		IntakePerHour:     3,
		LoginPerMinute:    2,
	}, zap.NewNop())
	next, _ := okHandler()
	intake := rl.LimitIntake(next)

	ok, limited := fire(intake, "192.168.1.50:1234", "/api/v1/intake/puntual", 5)
	assert.Equal(t, 3, ok)
	assert.Equal(t, 2, limited)

	ok, _ = fire(intake, "192.168.1.51:1234", "/api/v1/intake/puntual", 3)
	assert.Equal(t, 3, ok, "each ip has its own bucket")

	ok, limited = fire(rl.LimitLogin(next), "192.168.1.52:1234", "/api/v1/auth/login", 4)
	assert.Equal(t, 2, ok)
	assert.Equal(t, 2, limited)
}

func TestRateLimiter_SessionLimit(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:               true,
		RequestsPerMinute:     2,
		RequestsPerMinuteAuth: 10,
	}, zap.NewNop())
	next, _ := okHandler()
	h := rl.Limit(next)

	session := &auth.Session{ID: "s-1", IssuedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}
	ok := 0
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/requests", nil)
		req.RemoteAddr = "192.168.1.60:1234"
		req = req.WithContext(auth.WithSession(req.Context(), session))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code == http.StatusOK {
			ok++
		}
	}
	assert.Equal(t, 10, ok, "admin sessions get the larger bucket")
}

func TestRateLimiter_ProblemResponse(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1}, zap.NewNop())
	next, _ := okHandler()
	h := rl.LimitByIP(next)

	var w *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "192.168.1.200:1234"
		w = httptest.NewRecorder()
		h.ServeHTTP(w, req)
	}

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var problem domain.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, domain.ErrorTypeRateLimited, problem.Type)
	assert.Equal(t, http.StatusTooManyRequests, problem.Status)
}
