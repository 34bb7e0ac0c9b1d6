package handler

import (
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetStats godoc
// @Summary Get dashboard statistics
// @Description Returns order counts per status, totals of ships, port calls, samples and timelog entries, and the 5 most recent orders
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStatsDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		h.logger.Error("failed to get dashboard stats", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get dashboard statistics")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
