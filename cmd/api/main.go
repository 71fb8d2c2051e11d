package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/octavioverge/DSP-MDS-new-sub000/docs"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/auth"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/database"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/http/handler"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/http/middleware"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/http/router"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/jobs"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/logger"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/notify"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/payment"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/quote"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/realtime"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/storage"
	"go.uber.org/zap"
)

// @title PDR Back Office API
// @version 1.0
// @description Intake forms, request management, quotes, calendar, expenses and monthly reports for a paintless dent repair shop
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin session token (Bearer)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	if basicCfg.App.Environment == "development" {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	} else {
		docs.SwaggerInfo.Host = hostOf(basicCfg.App.PublicURL)
	}

	// Environment in development, Key Vault in staging/production
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}
	loc := cfg.App.Location()

	passwordHash := cfg.Auth.AdminPasswordHash
	if passwordHash == "" {
		if cfg.Auth.AdminPassword == "" {
			return fmt.Errorf("no admin credential configured: set AUTH_ADMINPASSWORDHASH or ADMIN_PASSWORD")
		}
		passwordHash, err = auth.HashPassword(cfg.Auth.AdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		log.Warn("Admin password hashed at startup; configure a bcrypt hash instead")
	}

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("Error closing database", zap.Error(err))
		}
	}()

	fileStorage, err := storage.NewStorage(&cfg.Storage, cfg.App.PublicURL, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	renderer, err := quote.NewRenderer(cfg.Quote)
	if err != nil {
		return fmt.Errorf("failed to initialize quote renderer: %w", err)
	}

	dispatcher := notify.NewDispatcher(buildNotifier(cfg, log), cfg.Email.TimeoutDuration(), log)
	defer dispatcher.Close()

	hub := realtime.NewHub(log, cfg.CORS.AllowedOrigins)
	go hub.Run(ctx)

	var gateway payment.Gateway
	if cfg.MercadoPago.Enabled {
		mp, err := payment.NewMercadoPagoGateway(cfg.MercadoPago, log)
		if err != nil {
			return fmt.Errorf("failed to initialize payment gateway: %w", err)
		}
		gateway = mp
		log.Info("Payment links enabled", zap.Bool("mock", cfg.MercadoPago.Mock))
	}

	// Repositories
	clientRepo := repository.NewClientRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	eventRepo := repository.NewEventRepository(db)
	insumoRepo := repository.NewInsumoRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.SessionTTLDuration())
	uploadService := service.NewUploadService(fileStorage, cfg.Storage.MaxUploadBytes(), log)
	clientService := service.NewClientService(clientRepo, log)
	intakeService := service.NewIntakeService(
		clientService,
		requestRepo,
		uploadService,
		service.ThresholdsFromConfig(cfg.Qualification),
		cfg.Storage.MaxFilesPerForm,
		dispatcher,
		hub,
		log,
	)
	requestService := service.NewRequestService(requestRepo, uploadService, hub, log)
	quoteService := service.NewQuoteService(requestRepo, uploadService, renderer, cfg.Quote.ValidityDays, dispatcher, hub, log)
	paymentService := service.NewPaymentService(requestRepo, gateway, log)
	calendarService := service.NewCalendarService(eventRepo, requestRepo, loc, log)
	insumoService := service.NewInsumoService(insumoRepo, log)
	statsService := service.NewStatsService(statsRepo, loc, log)
	authService := service.NewAuthService(tokens, passwordHash, log)
	digestService := service.NewDigestService(requestRepo, dispatcher, loc, log)

	// Middleware
	authMiddleware := auth.NewMiddleware(tokens, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// A multipart form carries up to MaxFilesPerForm files plus the JSON document
	maxBodyBytes := cfg.Storage.MaxUploadBytes()*int64(cfg.Storage.MaxFilesPerForm) + 1<<20

	handlers := router.Handlers{
		Intake:   handler.NewIntakeHandler(intakeService, maxBodyBytes, log),
		Request:  handler.NewRequestHandler(requestService, quoteService, paymentService, maxBodyBytes, log),
		Client:   handler.NewClientHandler(clientService, log),
		Calendar: handler.NewCalendarHandler(calendarService, log),
		Insumo:   handler.NewInsumoHandler(insumoService, log),
		Stats:    handler.NewStatsHandler(statsService, log),
		Auth:     handler.NewAuthHandler(authService, log),
	}

	rt := router.NewRouter(cfg, log, db, authMiddleware, tokens, rateLimiter, hub, handlers)

	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log, loc)
		if err := jobs.RegisterReminders(
			scheduler,
			digestService,
			log,
			cfg.Jobs.DigestCron,
			cfg.Jobs.CoverageCron,
			cfg.Jobs.DigestTimeoutDuration(),
		); err != nil {
			log.Error("Failed to register reminder jobs", zap.Error(err))
		} else {
			scheduler.Start()
		}
	} else {
		log.Info("Background jobs disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			stopped := scheduler.Stop()
			<-stopped.Done()
			log.Info("Scheduler stopped")
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		// Disconnect websocket clients
		cancel()

		log.Info("Server stopped gracefully")
	}

	return nil
}

// buildNotifier combines the enabled channels. With none enabled messages are discarded.
func buildNotifier(cfg *config.Config, log *zap.Logger) notify.Notifier {
	var channels notify.Multi
	if cfg.Email.Enabled {
		channels = append(channels, notify.NewEmailNotifier(&cfg.Email))
	}
	if cfg.Telegram.Enabled {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			log.Warn("Telegram notifications disabled", zap.Error(err))
		} else {
			channels = append(channels, tg)
		}
	}
	if len(channels) == 0 {
		log.Info("No notification channel enabled")
		return notify.Nop{}
	}
	return channels
}

func hostOf(publicURL string) string {
	u, err := url.Parse(publicURL)
	if err != nil || u.Host == "" {
		return publicURL
	}
	return u.Host
}
