package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/internal/service"
	"github.com/blaisecz/mood-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MoodHandler serves chart data and descriptive statistics.
type MoodHandler struct {
	entryService service.MoodEntryService
	statsService service.StatsService
}

func NewMoodHandler(entryService service.MoodEntryService, statsService service.StatsService) *MoodHandler {
	return &MoodHandler{
		entryService: entryService,
		statsService: statsService,
	}
}

// GetData handles GET /v1/users/{userId}/mood/data
// @Summary Get mood chart data
// @Description Entries of the last N days, oldest first, with note sentiment and emotion score per entry.
// @Tags mood
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param days query integer false "Number of days to include" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.MoodDataResponse "Chart data"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/mood/data [get]
func (h *MoodHandler) GetData(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	days, fieldErrors := parseDaysParam(r, "days", service.DefaultDataWindowDays, service.MaxWindowDays)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.entryService.Data(r.Context(), userID, days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to load mood data").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetStats handles GET /v1/users/{userId}/mood/stats
// @Summary Get mood statistics
// @Description Average, standard deviation, min and max of mood, energy, stress and sleep over a window, plus mood category distribution.
// @Tags mood
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to analyze" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.MoodStatsResponse "Mood statistics"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/mood/stats [get]
func (h *MoodHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	windowDays, fieldErrors := parseDaysParam(r, "window_days", service.DefaultStatsWindowDays, service.MaxWindowDays)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.statsService.Compute(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute mood statistics").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
