package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/auth"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/http/handler"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/http/middleware"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/http/router"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/quote"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/realtime"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/storage"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminPassword = "taller-secreto"

func setupRouter(t *testing.T) (http.Handler, *auth.TokenManager, string) {
	t.Helper()
	logger := zap.NewNop()
	db := testutil.SetupTestDB(t)
	filesDir := t.TempDir()

	cfg := &config.Config{
		App:      config.AppConfig{Environment: "development", TimeZone: "America/Argentina/Buenos_Aires"},
		Server:   config.ServerConfig{RequestTimeout: 30},
		Storage:  config.StorageConfig{Mode: "local", LocalBasePath: filesDir, MaxUploadSizeMB: 1, MaxFilesPerForm: 3},
		Security: config.SecurityConfig{ContentTypeNosniff: true, FrameOptions: "DENY"},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	loc := cfg.App.Location()

	store, err := storage.NewLocalStorage(filesDir, "http://localhost:8080/files")
	require.NoError(t, err)
	renderer, err := quote.NewRenderer(cfg.Quote)
	require.NoError(t, err)
	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)
	tokens := auth.NewTokenManager("router-test-secret", "dsp-test", time.Hour)

	requests := repository.NewRequestRepository(db)
	uploads := service.NewUploadService(store, cfg.Storage.MaxUploadBytes(), logger)
	clients := service.NewClientService(repository.NewClientRepository(db), logger)

	handlers := router.Handlers{
		Intake: handler.NewIntakeHandler(
			service.NewIntakeService(clients, requests, uploads, service.Thresholds{MinVehicleYear: 2010}, 3, nil, nil, logger),
			4<<20, logger),
		Request: handler.NewRequestHandler(
			service.NewRequestService(requests, uploads, nil, logger),
			service.NewQuoteService(requests, uploads, renderer, 15, nil, nil, logger),
			service.NewPaymentService(requests, nil, logger),
			4<<20, logger),
		Client:   handler.NewClientHandler(clients, logger),
		Calendar: handler.NewCalendarHandler(service.NewCalendarService(repository.NewEventRepository(db), requests, loc, logger), logger),
		Insumo:   handler.NewInsumoHandler(service.NewInsumoService(repository.NewInsumoRepository(db), logger), logger),
		Stats:    handler.NewStatsHandler(service.NewStatsService(repository.NewStatsRepository(db), loc, logger), logger),
		Auth:     handler.NewAuthHandler(service.NewAuthService(tokens, hash, logger), logger),
	}

	rt := router.NewRouter(
		cfg,
		logger,
		db,
		auth.NewMiddleware(tokens, logger),
		tokens,
		middleware.NewRateLimiter(&cfg.RateLimit, logger),
		realtime.NewHub(logger, cfg.CORS.AllowedOrigins),
		handlers,
	)
	return rt.Setup(), tokens, filesDir
}

func TestRouter_Health(t *testing.T) {
	h, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/db", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestRouter_AdminRoutesRequireSession(t *testing.T) {
	h, tokens, _ := setupRouter(t)

	paths := []string{"/api/v1/requests", "/api/v1/clients", "/api/v1/calendar", "/api/v1/insumos", "/api/v1/stats/monthly?month=2025-03"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			token, _, err := tokens.Issue()
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w = httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		})
	}
}

func TestRouter_LoginThenSession(t *testing.T) {
	h, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"password":"`+adminPassword+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_PublicIntakeNeedsNoSession(t *testing.T) {
	h, _, _ := setupRouter(t)

	body := `{"contact":{"name":"Ana","phone":"1155550000","email":"ana@example.com"},` +
		`"vehicle":{"make":"Fiat","model":"Cronos","year":"2021"},"preferredDate":"2025-04-10","vehicleCount":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/intake/demo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestRouter_ServesLocalFiles(t *testing.T) {
	h, _, dir := setupRouter(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "photos"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photos", "capot.jpg"), []byte("jpeg-bytes"), 0o644))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/photos/capot.jpg", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg-bytes", w.Body.String())
}
