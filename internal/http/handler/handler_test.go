package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/auth"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/http/handler"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/quote"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/storage"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	testBaseURL   = "http://localhost:8080/files"
	testPassword  = "taller-secreto"
	maxTestUpload = 4 << 20
)

// fixture wires real services over an in-memory database and a temp-dir store
type fixture struct {
	db       *gorm.DB
	requests *repository.RequestRepository

	intake  *handler.IntakeHandler
	request *handler.RequestHandler
	insumo  *handler.InsumoHandler
	auth    *handler.AuthHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	db := testutil.SetupTestDB(t)

	store, err := storage.NewLocalStorage(t.TempDir(), testBaseURL)
	require.NoError(t, err)
	renderer, err := quote.NewRenderer(config.QuoteConfig{IssuerName: "DSP Desabollado Sin Pintura", ValidityDays: 15})
	require.NoError(t, err)
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	requests := repository.NewRequestRepository(db)
	uploads := service.NewUploadService(store, 1<<20, logger)
	clients := service.NewClientService(repository.NewClientRepository(db), logger)
	thresholds := service.Thresholds{MinVehicleYear: 2010, MinFranchise: 100000, ExcludedDamageCategory: "severo"}

	intakeService := service.NewIntakeService(clients, requests, uploads, thresholds, 3, nil, nil, logger)
	requestService := service.NewRequestService(requests, uploads, nil, logger)
	quoteService := service.NewQuoteService(requests, uploads, renderer, 15, nil, nil, logger)
	paymentService := service.NewPaymentService(requests, nil, logger)
	insumoService := service.NewInsumoService(repository.NewInsumoRepository(db), logger)
	tokens := auth.NewTokenManager("test-secret-with-enough-length", "dsp-test", 0)
	authService := service.NewAuthService(tokens, hash, logger)

	return &fixture{
		db:       db,
		requests: requests,
		intake:   handler.NewIntakeHandler(intakeService, maxTestUpload, logger),
		request:  handler.NewRequestHandler(requestService, quoteService, paymentService, maxTestUpload, logger),
		insumo:   handler.NewInsumoHandler(insumoService, logger),
		auth:     handler.NewAuthHandler(authService, logger),
	}
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withURLParam attaches a chi route parameter to the request
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

type formFile struct {
	field, name, contentType, content string
}

func multipartRequest(t *testing.T, target string, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = io.WriteString(part, f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) domain.APIError {
	t.Helper()
	require.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
	var problem domain.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	return problem
}
