package handler

import (
	"net/http"
	"time"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"go.uber.org/zap"
)

type CalendarHandler struct {
	calendarService *service.CalendarService
	logger          *zap.Logger
}

func NewCalendarHandler(calendarService *service.CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		logger:          logger,
	}
}

// rangeParams reads the optional from/to query window
func rangeParams(w http.ResponseWriter, r *http.Request) (from, to *time.Time, ok bool) {
	q := r.URL.Query()
	f, err := parseTimeParam(q.Get("from"))
	if err != nil {
		respondValidationError(w, map[string]string{"from": domain.GetValidationMessage("datetime")})
		return nil, nil, false
	}
	t, err := parseTimeParam(q.Get("to"))
	if err != nil {
		respondValidationError(w, map[string]string{"to": domain.GetValidationMessage("datetime")})
		return nil, nil, false
	}
	return f, t, true
}

// Calendar godoc
// @Summary Calendar view
// @Description Events and scheduled appointments grouped by day in the given time zone
// @Tags Calendar
// @Produce json
// @Param from query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Window end, exclusive"
// @Param tz query string false "IANA time zone, defaults to the shop's zone"
// @Success 200 {array} domain.CalendarDay
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /calendar [get]
func (h *CalendarHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	from, to, ok := rangeParams(w, r)
	if !ok {
		return
	}

	days, err := h.calendarService.Calendar(r.Context(), from, to, r.URL.Query().Get("tz"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, days)
}

// ListEvents godoc
// @Summary List calendar events
// @Tags Calendar
// @Produce json
// @Param from query string false "Window start"
// @Param to query string false "Window end, exclusive"
// @Success 200 {array} domain.CalendarEventDTO
// @Security BearerAuth
// @Router /calendar/events [get]
func (h *CalendarHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	from, to, ok := rangeParams(w, r)
	if !ok {
		return
	}

	events, err := h.calendarService.ListEvents(r.Context(), from, to)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get a calendar event
// @Tags Calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.CalendarEventDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /calendar/events/{id} [get]
func (h *CalendarHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	event, err := h.calendarService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create a calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body domain.CreateCalendarEventRequest true "Event"
// @Success 201 {object} domain.CalendarEventDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /calendar/events [post]
func (h *CalendarHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCalendarEventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.calendarService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update a calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body domain.UpdateCalendarEventRequest true "Changes"
// @Success 200 {object} domain.CalendarEventDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /calendar/events/{id} [put]
func (h *CalendarHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var req domain.UpdateCalendarEventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.calendarService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// ToggleEvent godoc
// @Summary Toggle the completed flag of an event
// @Tags Calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.CalendarEventDTO
// @Security BearerAuth
// @Router /calendar/events/{id}/toggle [post]
func (h *CalendarHandler) ToggleEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	event, err := h.calendarService.ToggleCompleted(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete a calendar event
// @Description The linked request, if any, is left untouched
// @Tags Calendar
// @Param id path string true "Event ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /calendar/events/{id} [delete]
func (h *CalendarHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	if err := h.calendarService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
