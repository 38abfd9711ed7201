package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/somnolog/somnolog/internal/llm"
	"github.com/somnolog/somnolog/internal/service"
	"github.com/somnolog/somnolog/pkg/problem"
)

// InsightsHandler handles the LLM-generated insights endpoint.
type InsightsHandler struct {
	service service.InsightsService
}

func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// Get handles GET /api/insights
// @Summary LLM-generated sleep habit insights
// @Description Generate a narrative summary of recent sleep habits using the configured LLM.
// @Tags insights
// @Produce json
// @Success 200 {object} domain.InsightsResponse "Generated insights"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /insights [get]
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Generate(r.Context())
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("LLM service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate insights from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
