package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"go.uber.org/zap"
)

// panelHeaders are read by the admin panel on quote downloads and throttled calls
var panelHeaders = []string{
	"Content-Disposition",
	"Retry-After",
	"X-Request-ID",
	"X-Quote-Url",
	"X-Quote-Total",
	"X-Quote-Upload-Error",
	"X-Quote-Persist-Error",
}

// CORS admits the public site and the admin panel. Origins may use one leading
// wildcard label ("https://*.example.com"). With no origins configured every origin is
// accepted in development and none elsewhere.
func CORS(cfg *config.CORSConfig, environment string, logger *zap.Logger) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   mergeHeaders(cfg.ExposedHeaders, panelHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	policy := newOriginPolicy(cfg.AllowedOrigins)
	switch {
	case policy.any:
		if !isDevelopment(environment) {
			logger.Warn("CORS configured with wildcard origin outside development",
				zap.String("environment", environment))
		}
		options.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return origin != ""
		}
	case policy.empty():
		if isDevelopment(environment) {
			options.AllowOriginFunc = func(r *http.Request, origin string) bool {
				return origin != ""
			}
			logger.Info("CORS allows all origins in development")
		} else {
			// an empty list would make the cors package default to "*"
			options.AllowOriginFunc = func(r *http.Request, origin string) bool {
				return false
			}
			logger.Warn("CORS has no allowed origins; cross-origin requests will be denied",
				zap.String("environment", environment))
		}
	default:
		options.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return policy.allows(origin)
		}
		logger.Info("CORS configured", zap.Strings("origins", cfg.AllowedOrigins))
	}

	return cors.Handler(options)
}

func isDevelopment(environment string) bool {
	return environment == "" || environment == "development" || environment == "local"
}

type originPolicy struct {
	any      bool
	exact    map[string]bool
	suffixes []suffixRule
}

type suffixRule struct {
	scheme string
	suffix string
}

func newOriginPolicy(origins []string) *originPolicy {
	p := &originPolicy{exact: make(map[string]bool)}
	for _, origin := range origins {
		origin = strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
		switch {
		case origin == "":
		case origin == "*":
			p.any = true
		case strings.Contains(origin, "://*."):
			scheme, host, _ := strings.Cut(origin, "://*")
			p.suffixes = append(p.suffixes, suffixRule{scheme: scheme + "://", suffix: host})
		default:
			p.exact[origin] = true
		}
	}
	return p
}

func (p *originPolicy) empty() bool {
	return !p.any && len(p.exact) == 0 && len(p.suffixes) == 0
}

func (p *originPolicy) allows(origin string) bool {
	origin = strings.ToLower(origin)
	if p.any {
		return origin != ""
	}
	if p.exact[origin] {
		return true
	}
	for _, rule := range p.suffixes {
		host, ok := strings.CutPrefix(origin, rule.scheme)
		if ok && strings.HasSuffix(host, rule.suffix) && len(host) > len(rule.suffix) {
			return true
		}
	}
	return false
}

// mergeHeaders appends the required headers missing from configured
func mergeHeaders(configured, required []string) []string {
	out := append([]string(nil), configured...)
	seen := make(map[string]bool, len(out))
	for _, h := range out {
		seen[http.CanonicalHeaderKey(h)] = true
	}
	for _, h := range required {
		if !seen[http.CanonicalHeaderKey(h)] {
			out = append(out, h)
		}
	}
	return out
}
