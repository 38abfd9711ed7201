package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/somnolog/somnolog/internal/api/validation"
	"github.com/somnolog/somnolog/internal/domain"
	"github.com/somnolog/somnolog/internal/service"
	"github.com/somnolog/somnolog/pkg/problem"
)

// PredictionHandler handles the model-backed endpoints: predict,
// simulate and recommendation.
type PredictionHandler struct {
	predictionService     service.PredictionService
	recommendationService service.RecommendationService
}

func NewPredictionHandler(predictionService service.PredictionService, recommendationService service.RecommendationService) *PredictionHandler {
	return &PredictionHandler{
		predictionService:     predictionService,
		recommendationService: recommendationService,
	}
}

// Predict handles POST /api/predict
// @Summary Predict productivity for a sleep interval
// @Description Run the scoring model once over a concrete sleep interval. Output labels depend on the active model version.
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body domain.PredictRequest true "Sleep interval"
// @Success 200 {object} domain.PredictionResponse "Labeled model output, one decimal place"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation errors"
// @Failure 500 {object} problem.Problem "Processing failure"
// @Failure 503 {object} problem.Problem "Scoring model unavailable"
// @Router /predict [post]
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req domain.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.predictionService.Predict(r.Context(), &req)
	if err != nil {
		writeScoringError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Simulate handles POST /api/simulate
// @Summary Simulate a what-if scenario
// @Description Score one fully specified feature set for the active model version.
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body domain.SimulateRequest true "Feature set"
// @Success 200 {object} domain.SimulationResponse "Scoring result"
// @Failure 400 {object} problem.Problem "Invalid or incomplete feature set"
// @Failure 422 {object} problem.Problem "Validation errors"
// @Failure 500 {object} problem.Problem "Processing failure"
// @Failure 503 {object} problem.Problem "Scoring model unavailable"
// @Router /simulate [post]
func (h *PredictionHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req domain.SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.predictionService.Simulate(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Missing required features for the active model version").Write(w)
			return
		}
		writeScoringError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Recommend handles GET /api/recommendation
// @Summary Get the current sleep recommendation
// @Description Sweep the parameter grid for the active model version and return the best-scoring combination.
// @Tags predictions
// @Produce json
// @Success 200 {object} domain.RecommendationResponse "Best candidate found"
// @Failure 404 {object} problem.Problem "No recommendation available"
// @Failure 500 {object} problem.Problem "Processing failure"
// @Failure 503 {object} problem.Problem "Scoring model unavailable"
// @Router /recommendation [get]
func (h *PredictionHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	result, err := h.recommendationService.Recommend(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoRecommendation) {
			problem.NotFound("No candidate produced a valid score").Write(w)
			return
		}
		writeScoringError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func writeScoringError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrScorerUnavailable) {
		problem.ServiceUnavailable("Scoring model is not loaded").Write(w)
		return
	}
	problem.InternalError("Failed to process the scoring request").Write(w)
}
