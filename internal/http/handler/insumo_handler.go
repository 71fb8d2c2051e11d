package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type InsumoHandler struct {
	insumoService *service.InsumoService
	logger        *zap.Logger
}

func NewInsumoHandler(insumoService *service.InsumoService, logger *zap.Logger) *InsumoHandler {
	return &InsumoHandler{
		insumoService: insumoService,
		logger:        logger,
	}
}

// List godoc
// @Summary List expenses
// @Tags Insumos
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param month query string false "YYYY-MM"
// @Param category query string false "Category"
// @Param includeDeleted query bool false "Include soft-deleted rows"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.InsumoDTO}
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /insumos [get]
func (h *InsumoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, pageSize := parsePagination(r)
	includeDeleted, _ := strconv.ParseBool(q.Get("includeDeleted"))

	result, err := h.insumoService.List(r.Context(), service.InsumoQuery{
		Month:          q.Get("month"),
		Category:       q.Get("category"),
		IncludeDeleted: includeDeleted,
		Page:           page,
		PageSize:       pageSize,
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get an expense
// @Tags Insumos
// @Produce json
// @Param id path string true "Insumo ID"
// @Success 200 {object} domain.InsumoDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /insumos/{id} [get]
func (h *InsumoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid insumo ID")
		return
	}

	insumo, err := h.insumoService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, insumo)
}

// Create godoc
// @Summary Record an expense
// @Tags Insumos
// @Accept json
// @Produce json
// @Param request body domain.CreateInsumoRequest true "Expense"
// @Success 201 {object} domain.InsumoDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /insumos [post]
func (h *InsumoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateInsumoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	insumo, err := h.insumoService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, insumo)
}

// Update godoc
// @Summary Replace an expense
// @Tags Insumos
// @Accept json
// @Produce json
// @Param id path string true "Insumo ID"
// @Param request body domain.UpdateInsumoRequest true "Expense"
// @Success 200 {object} domain.InsumoDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /insumos/{id} [put]
func (h *InsumoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid insumo ID")
		return
	}

	var req domain.UpdateInsumoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	insumo, err := h.insumoService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, insumo)
}

// Delete godoc
// @Summary Delete an expense
// @Description Soft delete by default; permanent=true removes the row for good
// @Tags Insumos
// @Param id path string true "Insumo ID"
// @Param permanent query bool false "Remove permanently"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /insumos/{id} [delete]
func (h *InsumoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid insumo ID")
		return
	}

	permanent, _ := strconv.ParseBool(r.URL.Query().Get("permanent"))
	if permanent {
		err = h.insumoService.HardDelete(r.Context(), id)
	} else {
		err = h.insumoService.SoftDelete(r.Context(), id)
	}
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore godoc
// @Summary Undo a soft delete
// @Tags Insumos
// @Produce json
// @Param id path string true "Insumo ID"
// @Success 200 {object} domain.InsumoDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /insumos/{id}/restore [post]
func (h *InsumoHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid insumo ID")
		return
	}

	insumo, err := h.insumoService.Restore(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, insumo)
}

// Export godoc
// @Summary Export expenses to a spreadsheet
// @Tags Insumos
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string false "YYYY-MM; every active row when empty"
// @Param category query string false "Category"
// @Success 200 {file} binary
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /insumos/export [get]
func (h *InsumoHandler) Export(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	data, err := h.insumoService.ExportXLSX(r.Context(), month, r.URL.Query().Get("category"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	filename := "insumos.xlsx"
	if month != "" {
		filename = fmt.Sprintf("insumos-%s.xlsx", month)
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
