package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/mood-tracker/internal/api/validation"
	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/internal/service"
	"github.com/blaisecz/mood-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MoodEntryHandler struct {
	service service.MoodEntryService
}

func NewMoodEntryHandler(service service.MoodEntryService) *MoodEntryHandler {
	return &MoodEntryHandler{service: service}
}

// Create handles POST /v1/users/{userId}/mood-entries
// @Summary Log a mood entry
// @Description Record a mood check-in. Use client_request_id for safe retries (idempotency). Returns 200 if duplicate request, 201 if new.
// @Tags mood-entries
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateMoodEntryRequest true "Mood check-in"
// @Success 201 {object} domain.MoodEntryResponse "New mood entry created"
// @Success 200 {object} domain.MoodEntryResponse "Existing entry returned (idempotent duplicate)"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/mood-entries [post]
func (h *MoodEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateMoodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, isExisting, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrFutureEntry):
			problem.ValidationError("Request body contains invalid fields", []problem.FieldError{
				{Field: "logged_at", Message: "must not be in the future"},
			}).Write(w)
		default:
			problem.InternalError("Failed to create mood entry").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if isExisting {
		w.WriteHeader(http.StatusOK) // Return 200 for idempotent duplicate
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// Update handles PATCH /v1/users/{userId}/mood-entries/{entryId}
// @Summary Update a mood entry
// @Description Partially update a mood entry. Only provided fields are changed.
// @Tags mood-entries
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Mood entry UUID" format(uuid)
// @Param request body domain.UpdateMoodEntryRequest true "Fields to update"
// @Success 200 {object} domain.MoodEntryResponse "Updated mood entry"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User or mood entry not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/mood-entries/{entryId} [patch]
func (h *MoodEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "entryId"))
	if err != nil {
		problem.BadRequest("Invalid mood entry ID format").Write(w)
		return
	}

	var req domain.UpdateMoodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if req.IsEmpty() {
		problem.BadRequest("At least one field must be provided").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Update(r.Context(), userID, entryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Mood entry not found").Write(w)
		case errors.Is(err, domain.ErrFutureEntry):
			problem.ValidationError("Request body contains invalid fields", []problem.FieldError{
				{Field: "logged_at", Message: "must not be in the future"},
			}).Write(w)
		default:
			problem.InternalError("Failed to update mood entry").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/users/{userId}/mood-entries
// @Summary List mood entries
// @Description Fetch paginated mood history. Filter by date range. Results sorted by logged_at descending (newest first).
// @Tags mood-entries
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of date range (RFC3339)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "End of date range (RFC3339)" format(date-time) example(2024-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.MoodEntryListResponse "Mood entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid cursor or date range"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/mood-entries [get]
func (h *MoodEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Invalid cursor or date range").Write(w)
		default:
			problem.InternalError("Failed to list mood entries").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.MoodEntryFilter, []problem.FieldError) {
	var filter domain.MoodEntryFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
