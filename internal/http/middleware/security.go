package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
)

// SecurityHeaders sets the configured security headers. Admin API responses carry
// customer data and are never cached. Stored photos and quotes are embedded by the
// admin panel from its own origin. The docs page needs its inline scripts.
func SecurityHeaders(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	static := staticSecurityHeaders(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for key, values := range static {
				h.Set(key, values[0])
			}

			switch path := r.URL.Path; {
			case strings.HasPrefix(path, "/api/"):
				h.Set("Cache-Control", "no-store")
			case strings.HasPrefix(path, "/files/"):
				h.Set("Cross-Origin-Resource-Policy", "cross-origin")
			case strings.HasPrefix(path, "/swagger/"):
				h.Del("Content-Security-Policy")
			}

			h.Del("X-Powered-By")
			h.Del("Server")

			next.ServeHTTP(w, r)
		})
	}
}

// staticSecurityHeaders builds the headers that do not depend on the request
func staticSecurityHeaders(cfg *config.SecurityConfig) http.Header {
	h := make(http.Header)
	set := func(key, value string) {
		if value != "" {
			h.Set(key, value)
		}
	}

	if cfg.ContentTypeNosniff {
		h.Set("X-Content-Type-Options", "nosniff")
	}
	set("X-Frame-Options", cfg.FrameOptions)
	set("X-XSS-Protection", cfg.XSSProtection)
	set("Content-Security-Policy", cfg.ContentSecurityPolicy)
	set("Referrer-Policy", cfg.ReferrerPolicy)
	set("Permissions-Policy", cfg.PermissionsPolicy)

	if cfg.EnableHSTS {
		hsts := fmt.Sprintf("max-age=%d", cfg.HSTSMaxAge)
		if cfg.HSTSIncludeSubdomains {
			hsts += "; includeSubDomains"
		}
		if cfg.HSTSPreload {
			hsts += "; preload"
		}
		h.Set("Strict-Transport-Security", hsts)
	}
	return h
}
