package handler

import (
	"net/http"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"go.uber.org/zap"
)

type StatsHandler struct {
	statsService *service.StatsService
	logger       *zap.Logger
}

func NewStatsHandler(statsService *service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// Month godoc
// @Summary Monthly revenue, expenses and request counts
// @Description Revenue is the quoted amount of requests completed as repaired or
// @Description repaired_invoiced in the month. Defaults to the current month.
// @Tags Stats
// @Produce json
// @Param month query string false "YYYY-MM"
// @Success 200 {object} domain.MonthlyStats
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /stats/monthly [get]
func (h *StatsHandler) Month(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Month(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// Series godoc
// @Summary Twelve months ending at month
// @Tags Stats
// @Produce json
// @Param month query string false "Last month of the series, YYYY-MM"
// @Success 200 {object} domain.StatsSeries
// @Security BearerAuth
// @Router /stats/series [get]
func (h *StatsHandler) Series(w http.ResponseWriter, r *http.Request) {
	series, err := h.statsService.Series(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, series)
}
