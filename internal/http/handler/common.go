package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/quote"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"go.uber.org/zap"
)

// multipart bodies keep this much in memory; the rest spills to temp files
const multipartMemory = 8 << 20

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, fields map[string]string) {
	respondProblem(w, domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: fields,
	})
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondProblem(w, domain.APIError{
		Type:   getErrorType(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

func respondProblem(w http.ResponseWriter, problem domain.APIError) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(problem.Status)
	_ = json.NewEncoder(w).Encode(problem)
}

// getErrorType returns the appropriate error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return domain.ErrorTypeBadRequest
	case http.StatusUnauthorized:
		return domain.ErrorTypeUnauthorized
	case http.StatusForbidden:
		return domain.ErrorTypeForbidden
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	default:
		return domain.ErrorTypeInternal
	}
}

// handleServiceError maps service errors to problem responses. Failed updates carry
// the record as currently stored.
func handleServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var validationErr *service.ValidationError
	var conflictErr *service.ConflictError
	var dbErr *service.DatabaseError
	var compErr *quote.CompositionError

	switch {
	case errors.As(err, &validationErr):
		respondValidationError(w, validationErr.Fields)
	case errors.As(err, &conflictErr):
		respondProblem(w, domain.APIError{
			Type:    domain.ErrorTypeConflict,
			Title:   "Conflict",
			Status:  http.StatusConflict,
			Detail:  "The record was modified by someone else; review the current state and retry",
			Current: conflictErr.Current,
		})
	case errors.As(err, &dbErr):
		logger.Error("database operation failed", zap.String("op", dbErr.Op), zap.Error(dbErr.Err))
		respondProblem(w, domain.APIError{
			Type:    domain.ErrorTypeDatabase,
			Title:   "Database Error",
			Status:  http.StatusInternalServerError,
			Detail:  fmt.Sprintf("Failed to %s", dbErr.Op),
			Current: dbErr.Current,
		})
	case errors.As(err, &compErr):
		respondProblem(w, domain.APIError{
			Type:   domain.ErrorTypeComposition,
			Title:  "Composition Error",
			Status: http.StatusInternalServerError,
			Detail: "The quote could not be composed; nothing was saved",
		})
	case errors.Is(err, service.ErrRequestNotFound):
		respondWithError(w, http.StatusNotFound, "Request not found")
	case errors.Is(err, service.ErrClientNotFound):
		respondWithError(w, http.StatusNotFound, "Client not found")
	case errors.Is(err, service.ErrEventNotFound):
		respondWithError(w, http.StatusNotFound, "Calendar event not found")
	case errors.Is(err, service.ErrInsumoNotFound):
		respondWithError(w, http.StatusNotFound, "Insumo not found")
	case errors.Is(err, service.ErrNotCoverage):
		respondWithError(w, http.StatusBadRequest, "Only coverage applications support this operation")
	case errors.Is(err, service.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrPaymentsDisabled):
		respondWithError(w, http.StatusServiceUnavailable, "Payment links are not enabled")
	default:
		logger.Error("unhandled service error", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads a JSON body into target, rejecting unknown fields
func decodeJSON(r *http.Request, target interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}

// parseJSON parses a JSON string into the target interface
func parseJSON(data string, target interface{}) error {
	return json.Unmarshal([]byte(data), target)
}

func parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// parsePagination reads page and pageSize; the services clamp them
func parsePagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	return page, pageSize
}

// parseMultipart limits and parses a multipart body of at most maxBytes
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	return r.ParseMultipartForm(multipartMemory)
}

// formFiles returns the files posted under field as lazily opened uploads
func formFiles(r *http.Request, field string) []service.FileUpload {
	if r.MultipartForm == nil {
		return nil
	}
	headers := r.MultipartForm.File[field]
	files := make([]service.FileUpload, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		files = append(files, service.FileUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return openPart(fh)
			},
		})
	}
	return files
}

func openPart(fh *multipart.FileHeader) (io.ReadCloser, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return f, nil
}
