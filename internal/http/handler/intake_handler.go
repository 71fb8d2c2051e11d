package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"go.uber.org/zap"
)

// IntakeHandler serves the public forms. A form is posted either as a JSON body or
// as multipart with the JSON document in the "data" field and photos under "photos".
type IntakeHandler struct {
	intakeService *service.IntakeService
	maxBodyBytes  int64
	logger        *zap.Logger
}

func NewIntakeHandler(intakeService *service.IntakeService, maxBodyBytes int64, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{
		intakeService: intakeService,
		maxBodyBytes:  maxBodyBytes,
		logger:        logger,
	}
}

var errMissingData = errors.New("missing data field")

// readForm decodes the form document into target and returns the attached photos
func (h *IntakeHandler) readForm(w http.ResponseWriter, r *http.Request, target interface{}) ([]service.FileUpload, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		return nil, decodeJSON(r, target)
	}

	if err := parseMultipart(w, r, h.maxBodyBytes); err != nil {
		return nil, err
	}
	data := r.FormValue("data")
	if data == "" {
		return nil, errMissingData
	}
	if err := parseJSON(data, target); err != nil {
		return nil, err
	}
	return formFiles(r, "photos"), nil
}

func (h *IntakeHandler) badForm(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		respondWithError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Request too large: maximum size is %dMB", h.maxBodyBytes>>20))
	case errors.Is(err, errMissingData):
		respondWithError(w, http.StatusBadRequest, "Multipart forms must carry the form document in the data field")
	default:
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
	}
}

// SubmitPuntual godoc
// @Summary Submit a repair quote request
// @Tags Intake
// @Accept json,mpfd
// @Produce json
// @Param request body domain.PuntualIntakeRequest true "Form data"
// @Success 201 {object} domain.IntakeResultDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /intake/puntual [post]
func (h *IntakeHandler) SubmitPuntual(w http.ResponseWriter, r *http.Request) {
	var req domain.PuntualIntakeRequest
	photos, err := h.readForm(w, r, &req)
	if err != nil {
		h.badForm(w, err)
		return
	}

	result, err := h.intakeService.SubmitPuntual(r.Context(), &req, photos)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// SubmitCobertura godoc
// @Summary Apply for the coverage plan
// @Description The application is pre-qualified before anything is stored
// @Tags Intake
// @Accept json,mpfd
// @Produce json
// @Param request body domain.CoberturaIntakeRequest true "Form data"
// @Success 201 {object} domain.IntakeResultDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /intake/cobertura [post]
func (h *IntakeHandler) SubmitCobertura(w http.ResponseWriter, r *http.Request) {
	var req domain.CoberturaIntakeRequest
	photos, err := h.readForm(w, r, &req)
	if err != nil {
		h.badForm(w, err)
		return
	}

	result, err := h.intakeService.SubmitCobertura(r.Context(), &req, photos)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// SubmitDemo godoc
// @Summary Request a demo service
// @Tags Intake
// @Accept json,mpfd
// @Produce json
// @Param request body domain.DemoIntakeRequest true "Form data"
// @Success 201 {object} domain.IntakeResultDTO
// @Failure 400 {object} domain.APIError
// @Router /intake/demo [post]
func (h *IntakeHandler) SubmitDemo(w http.ResponseWriter, r *http.Request) {
	var req domain.DemoIntakeRequest
	photos, err := h.readForm(w, r, &req)
	if err != nil {
		h.badForm(w, err)
		return
	}

	result, err := h.intakeService.SubmitDemo(r.Context(), &req, photos)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}
