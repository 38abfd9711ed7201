package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/somnolog/somnolog/internal/api/validation"
	"github.com/somnolog/somnolog/internal/domain"
	"github.com/somnolog/somnolog/internal/service"
	"github.com/somnolog/somnolog/pkg/problem"
)

type RecordHandler struct {
	service service.RecordService
}

func NewRecordHandler(service service.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// Create handles POST /api/records
// @Summary Record sleep
// @Description Store one sleep session. Wake time at or before sleep time is treated as waking the next day. Date defaults to yesterday.
// @Tags records
// @Accept json
// @Produce json
// @Param request body domain.CreateSleepRecordRequest true "Sleep session data"
// @Success 201 {object} domain.SleepRecordResponse "Created record"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation errors"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records [post]
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid sleep or wake time").Write(w)
			return
		}
		problem.InternalError("Failed to create sleep record").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record.ToResponse())
}

// List handles GET /api/records
// @Summary List sleep records
// @Description Fetch paginated sleep history, newest first. Out-of-range page and pageSize values are clamped, not rejected.
// @Tags records
// @Produce json
// @Param page query integer false "Page number (min 1)" default(1)
// @Param pageSize query integer false "Records per page (1-100)" default(10)
// @Success 200 {object} domain.SleepRecordListResponse "Page of records with total count"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records [get]
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parseIntParam(r, "page", 0)
	pageSize := parseIntParam(r, "pageSize", 0)

	response, err := h.service.List(r.Context(), page, pageSize)
	if err != nil {
		problem.InternalError("Failed to list sleep records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Delete handles DELETE /api/records/{id}
// @Summary Delete a sleep record
// @Tags records
// @Param id path integer true "Record ID"
// @Success 204 "Record deleted"
// @Failure 400 {object} problem.Problem "Invalid record ID"
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records/{id} [delete]
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		problem.BadRequest("Invalid record ID").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Sleep record not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete sleep record").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
