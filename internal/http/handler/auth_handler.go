package handler

import (
	"net/http"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login godoc
// @Summary Open an admin session
// @Description Exchanges the shared admin password for an expiring bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Admin password"
// @Success 200 {object} domain.AuthSessionDTO
// @Failure 401 {object} domain.APIError
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// Session godoc
// @Summary Describe the current admin session
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.AuthSessionDTO
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /auth/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, err := h.authService.Session(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}
