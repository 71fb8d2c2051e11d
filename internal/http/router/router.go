package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/auth"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/database"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/http/handler"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/http/middleware"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/realtime"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/octavioverge/DSP-MDS-new-sub000/docs" // Import generated swagger docs
)

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Intake   *handler.IntakeHandler
	Request  *handler.RequestHandler
	Client   *handler.ClientHandler
	Calendar *handler.CalendarHandler
	Insumo   *handler.InsumoHandler
	Stats    *handler.StatsHandler
	Auth     *handler.AuthHandler
}

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	db             *gorm.DB
	authMiddleware *auth.Middleware
	tokens         *auth.TokenManager
	rateLimiter    *middleware.RateLimiter
	hub            *realtime.Hub
	handlers       Handlers
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	tokens *auth.TokenManager,
	rateLimiter *middleware.RateLimiter,
	hub *realtime.Hub,
	handlers Handlers,
) *Router {
	return &Router{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		authMiddleware: authMiddleware,
		tokens:         tokens,
		rateLimiter:    rateLimiter,
		hub:            hub,
		handlers:       handlers,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP) // Apply IP-based rate limiting globally

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with pool stats)
	r.Get("/health/db", rt.databaseHealth)

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// Files written by the local storage backend
	if rt.cfg.Storage.Mode == "local" {
		files := http.StripPrefix("/files/", http.FileServer(http.Dir(rt.cfg.Storage.LocalBasePath)))
		r.Get("/files/*", files.ServeHTTP)
	}

	// Live admin feed; the token travels in the query string
	if rt.hub != nil {
		r.Get("/ws", rt.hub.ServeWs(rt.tokens))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(rt.cfg.Server.RequestTimeoutDuration()))

		// Public forms
		r.Group(func(r chi.Router) {
			r.Use(rt.rateLimiter.LimitIntake)
			r.Post("/intake/puntual", rt.handlers.Intake.SubmitPuntual)
			r.Post("/intake/cobertura", rt.handlers.Intake.SubmitCobertura)
			r.Post("/intake/demo", rt.handlers.Intake.SubmitDemo)
		})

		r.With(rt.rateLimiter.LimitLogin).Post("/auth/login", rt.handlers.Auth.Login)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.rateLimiter.Limit)

			r.Get("/auth/session", rt.handlers.Auth.Session)

			r.Route("/requests", func(r chi.Router) {
				r.Get("/", rt.handlers.Request.List)
				r.Get("/{id}", rt.handlers.Request.GetByID)
				r.Patch("/{id}", rt.handlers.Request.Update)
				r.Post("/{id}/attachments", rt.handlers.Request.AddAttachments)
				r.Post("/{id}/photos", rt.handlers.Request.AddPhotos)
				r.Post("/{id}/quote", rt.handlers.Request.GenerateQuote)
				r.Post("/{id}/payment-link", rt.handlers.Request.CreatePaymentLink)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", rt.handlers.Client.List)
				r.Get("/{id}", rt.handlers.Client.GetByID)
			})

			r.Get("/calendar", rt.handlers.Calendar.Calendar)
			r.Route("/calendar/events", func(r chi.Router) {
				r.Get("/", rt.handlers.Calendar.ListEvents)
				r.Post("/", rt.handlers.Calendar.CreateEvent)
				r.Get("/{id}", rt.handlers.Calendar.GetEvent)
				r.Put("/{id}", rt.handlers.Calendar.UpdateEvent)
				r.Delete("/{id}", rt.handlers.Calendar.DeleteEvent)
				r.Post("/{id}/toggle", rt.handlers.Calendar.ToggleEvent)
			})

			r.Route("/insumos", func(r chi.Router) {
				r.Get("/", rt.handlers.Insumo.List)
				r.Post("/", rt.handlers.Insumo.Create)
				r.Get("/export", rt.handlers.Insumo.Export)
				r.Get("/{id}", rt.handlers.Insumo.GetByID)
				r.Put("/{id}", rt.handlers.Insumo.Update)
				r.Delete("/{id}", rt.handlers.Insumo.Delete)
				r.Post("/{id}/restore", rt.handlers.Insumo.Restore)
			})

			r.Get("/stats/monthly", rt.handlers.Stats.Month)
			r.Get("/stats/series", rt.handlers.Stats.Series)
		})
	})

	return r
}

func (rt *Router) databaseHealth(w http.ResponseWriter, r *http.Request) {
	stats, err := database.HealthCheckWithStats(r.Context(), rt.db)
	if err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "unhealthy",
			"error":   err.Error(),
			"service": "database",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "healthy",
		"service":  "database",
		"stats":    stats,
		"realtime": rt.realtimeClients(),
	})
}

func (rt *Router) realtimeClients() int {
	if rt.hub == nil {
		return 0
	}
	return rt.hub.ClientCount()
}
