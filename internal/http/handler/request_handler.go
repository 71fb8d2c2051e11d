package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"go.uber.org/zap"
)

type RequestHandler struct {
	requestService *service.RequestService
	quoteService   *service.QuoteService
	paymentService *service.PaymentService
	maxBodyBytes   int64
	logger         *zap.Logger
}

func NewRequestHandler(
	requestService *service.RequestService,
	quoteService *service.QuoteService,
	paymentService *service.PaymentService,
	maxBodyBytes int64,
	logger *zap.Logger,
) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		quoteService:   quoteService,
		paymentService: paymentService,
		maxBodyBytes:   maxBodyBytes,
		logger:         logger,
	}
}

// parseTimeParam accepts RFC 3339 timestamps or plain YYYY-MM-DD dates (UTC midnight)
func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List godoc
// @Summary List requests
// @Tags Requests
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param serviceLine query string false "puntual, cobertura or demo"
// @Param status query string false "Request status"
// @Param from query string false "Created at or after (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Created before (RFC 3339 or YYYY-MM-DD)"
// @Param clientEmail query string false "Exact client email"
// @Param search query string false "Search client name, plate or vehicle"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.RequestDTO}
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /requests [get]
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, pageSize := parsePagination(r)

	filters := repository.RequestFilters{
		ClientEmail: q.Get("clientEmail"),
		Search:      q.Get("search"),
	}
	if v := q.Get("serviceLine"); v != "" {
		line := domain.ServiceLine(v)
		filters.ServiceLine = &line
	}
	if v := q.Get("status"); v != "" {
		status := domain.RequestStatus(v)
		filters.Status = &status
	}

	var err error
	if filters.From, err = parseTimeParam(q.Get("from")); err != nil {
		respondValidationError(w, map[string]string{"from": domain.GetValidationMessage("datetime")})
		return
	}
	if filters.To, err = parseTimeParam(q.Get("to")); err != nil {
		respondValidationError(w, map[string]string{"to": domain.GetValidationMessage("datetime")})
		return
	}

	result, err := h.requestService.List(r.Context(), filters, page, pageSize)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get a request with its client and service detail
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} domain.RequestDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /requests/{id} [get]
func (h *RequestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	req, err := h.requestService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, req)
}

// Update godoc
// @Summary Update status, notes, schedule or coverage terms
// @Description Send the version last read to detect concurrent edits. Failed writes
// @Description return the record as currently stored in the "current" field.
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body domain.UpdateRequestRequest true "Changes"
// @Success 200 {object} domain.RequestDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /requests/{id} [patch]
func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req domain.UpdateRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.requestService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// AddAttachments godoc
// @Summary Attach files to a request
// @Description Files are uploaded one by one; failed files are skipped and counted
// @Tags Requests
// @Accept mpfd
// @Produce json
// @Param id path string true "Request ID"
// @Param files formData file true "Files"
// @Success 200 {object} domain.AttachmentResultDTO
// @Security BearerAuth
// @Router /requests/{id}/attachments [post]
func (h *RequestHandler) AddAttachments(w http.ResponseWriter, r *http.Request) {
	h.addFiles(w, r, false)
}

// AddPhotos godoc
// @Summary Add customer photos to a request
// @Tags Requests
// @Accept mpfd
// @Produce json
// @Param id path string true "Request ID"
// @Param files formData file true "Images"
// @Success 200 {object} domain.AttachmentResultDTO
// @Security BearerAuth
// @Router /requests/{id}/photos [post]
func (h *RequestHandler) AddPhotos(w http.ResponseWriter, r *http.Request) {
	h.addFiles(w, r, true)
}

func (h *RequestHandler) addFiles(w http.ResponseWriter, r *http.Request, photos bool) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	if err := parseMultipart(w, r, h.maxBodyBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request too large: maximum size is %dMB", h.maxBodyBytes>>20))
			return
		}
		respondWithError(w, http.StatusBadRequest, "Expected a multipart form")
		return
	}

	files := formFiles(r, "files")
	var result *domain.AttachmentResultDTO
	if photos {
		result, err = h.requestService.AddPhotos(r.Context(), id, files)
	} else {
		result, err = h.requestService.AddAttachments(r.Context(), id, files)
	}
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GenerateQuote godoc
// @Summary Generate the PDF quote for a request
// @Description Returns the PDF. The stored copy URL is in X-Quote-Url; when the upload
// @Description or the status change failed, X-Quote-Upload-Error or X-Quote-Persist-Error is set.
// @Tags Requests
// @Accept json
// @Produce application/pdf
// @Param id path string true "Request ID"
// @Param request body domain.GenerateQuoteRequest true "Quote rows and classification"
// @Success 200 {file} binary
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /requests/{id}/quote [post]
func (h *RequestHandler) GenerateQuote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req domain.GenerateQuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.quoteService.Generate(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	header := w.Header()
	header.Set("Content-Type", "application/pdf")
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	header.Set("Content-Length", strconv.Itoa(len(result.PDF)))
	header.Set("X-Quote-Total", result.Totals.Total.StringFixed(2))
	if result.URL != "" {
		header.Set("X-Quote-Url", result.URL)
	}
	if result.UploadErr != nil {
		header.Set("X-Quote-Upload-Error", domain.ErrorTypeUpload)
	}
	if result.PersistErr != nil {
		header.Set("X-Quote-Persist-Error", domain.ErrorTypeDatabase)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.PDF); err != nil {
		h.logger.Warn("failed to write quote response", zap.String("request_id", id.String()), zap.Error(err))
	}
}

// CreatePaymentLink godoc
// @Summary Create a checkout link for the coverage monthly fee
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 201 {object} domain.PaymentLinkDTO
// @Failure 400 {object} domain.APIError
// @Failure 503 {object} domain.APIError
// @Security BearerAuth
// @Router /requests/{id}/payment-link [post]
func (h *RequestHandler) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	link, err := h.paymentService.CreateLink(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, link)
}
