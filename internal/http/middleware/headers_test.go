package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSecurityHeaders(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.SecurityConfig
		want map[string]string
	}{
		{
			name: "defaults without hsts",
			cfg: config.SecurityConfig{
				ContentTypeNosniff: true,
				FrameOptions:       "DENY",
				ReferrerPolicy:     "strict-origin-when-cross-origin",
			},
			want: map[string]string{
				"X-Content-Type-Options":    "nosniff",
				"X-Frame-Options":           "DENY",
				"Referrer-Policy":           "strict-origin-when-cross-origin",
				"Strict-Transport-Security": "",
			},
		},
		{
			name: "hsts with subdomains and preload",
			cfg: config.SecurityConfig{
				EnableHSTS:            true,
				HSTSMaxAge:            31536000,
				HSTSIncludeSubdomains: true,
				HSTSPreload:           true,
			},
			want: map[string]string{
				"Strict-Transport-Security": "max-age=31536000; includeSubDomains; preload",
				"X-Content-Type-Options":    "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			h := middleware.SecurityHeaders(&cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			for header, value := range tt.want {
				assert.Equal(t, value, w.Header().Get(header), header)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	preflight := func(h http.Handler, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/intake/puntual", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	base := config.CORSConfig{
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}

	t.Run("development allows any origin", func(t *testing.T) {
		cfg := base
		h := middleware.CORS(&cfg, "development", zap.NewNop())(next)
		assert.Equal(t, "http://localhost:5173", preflight(h, "http://localhost:5173").Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("explicit origins", func(t *testing.T) {
		cfg := base
		cfg.AllowedOrigins = []string{"https://taller.example.com"}
		h := middleware.CORS(&cfg, "production", zap.NewNop())(next)
		assert.Equal(t, "https://taller.example.com", preflight(h, "https://taller.example.com").Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, preflight(h, "https://evil.example.com").Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("production without origins denies", func(t *testing.T) {
		cfg := base
		h := middleware.CORS(&cfg, "production", zap.NewNop())(next)
		assert.Empty(t, preflight(h, "https://taller.example.com").Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSecurityHeadersByPath(t *testing.T) {
	cfg := config.SecurityConfig{
		ContentTypeNosniff:    true,
		ContentSecurityPolicy: "default-src 'self'",
	}
	h := middleware.SecurityHeaders(&cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		path string
		want map[string]string
	}{
		{"/api/v1/requests", map[string]string{"Cache-Control": "no-store", "Content-Security-Policy": "default-src 'self'"}},
		{"/files/requests/a.jpg", map[string]string{"Cross-Origin-Resource-Policy": "cross-origin", "Cache-Control": ""}},
		{"/swagger/index.html", map[string]string{"Content-Security-Policy": "", "X-Content-Type-Options": "nosniff"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			for header, value := range tt.want {
				assert.Equal(t, value, w.Header().Get(header), header)
			}
		})
	}
}

func TestCORSWildcardSubdomainAndExposedHeaders(t *testing.T) {
	cfg := config.CORSConfig{
		AllowedOrigins: []string{"https://*.taller.example.com/"},
		AllowedMethods: []string{"GET", "POST"},
		ExposedHeaders: []string{"x-request-id"},
	}
	h := middleware.CORS(&cfg, "production", zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	get := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/requests", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	w := get("https://panel.taller.example.com")
	assert.Equal(t, "https://panel.taller.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	exposed := w.Header().Get("Access-Control-Expose-Headers")
	assert.Contains(t, exposed, "X-Quote-Url")
	assert.Contains(t, exposed, "Retry-After")

	assert.Empty(t, get("https://taller.example.com").Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, get("http://panel.taller.example.com").Header().Get("Access-Control-Allow-Origin"))
}
