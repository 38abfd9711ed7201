package handler

import (
	"encoding/json"
	"net/http"

	"github.com/somnolog/somnolog/internal/service"
	"github.com/somnolog/somnolog/pkg/problem"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /api/dashboard/summary
// @Summary Dashboard summary
// @Description Classify the latest record's productivity scores and pair them with the current sleep recommendation. Never fails on an empty store.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardSummaryResponse "Forecast and recommendation"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		problem.InternalError("Failed to build dashboard summary").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
