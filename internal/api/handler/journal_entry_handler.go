package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/mood-tracker/internal/api/validation"
	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/internal/service"
	"github.com/blaisecz/mood-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// JournalEntryHandler serves free-form journal writing next to the mood log.
type JournalEntryHandler struct {
	service service.JournalEntryService
}

func NewJournalEntryHandler(service service.JournalEntryService) *JournalEntryHandler {
	return &JournalEntryHandler{service: service}
}

// Create handles POST /v1/users/{userId}/journal-entries
// @Summary Write a journal entry
// @Description Store a journal entry, optionally linked to one of the user's mood entries. The content is scored for sentiment on write.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} domain.JournalEntryResponse "Journal entry created"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/journal-entries [post]
func (h *JournalEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateJournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrJournalTooShort):
			problem.ValidationError("Request body contains invalid fields", []problem.FieldError{
				{Field: "content", Message: "must be at least 10 characters long"},
			}).Write(w)
		case errors.Is(err, domain.ErrLinkedMoodEntry):
			problem.ValidationError("Request body contains invalid fields", []problem.FieldError{
				{Field: "mood_entry_id", Message: "must reference one of the user's mood entries"},
			}).Write(w)
		default:
			problem.InternalError("Failed to create journal entry").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// GetByID handles GET /v1/users/{userId}/journal-entries/{entryId}
// @Summary Get a journal entry
// @Tags journal-entries
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param entryId path string true "Journal entry UUID" format(uuid)
// @Success 200 {object} domain.JournalEntryResponse "Journal entry"
// @Failure 400 {object} problem.Problem "Invalid ID format"
// @Failure 404 {object} problem.Problem "User or journal entry not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/journal-entries/{entryId} [get]
func (h *JournalEntryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "entryId"))
	if err != nil {
		problem.BadRequest("Invalid journal entry ID format").Write(w)
		return
	}

	entry, err := h.service.GetByID(r.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Journal entry not found").Write(w)
			return
		}
		problem.InternalError("Failed to get journal entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/users/{userId}/journal-entries
// @Summary List journal entries
// @Description Fetch paginated journal entries, newest first.
// @Tags journal-entries
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.JournalEntryListResponse "Journal entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid cursor"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/journal-entries [get]
func (h *JournalEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter := domain.JournalEntryFilter{Cursor: r.URL.Query().Get("cursor")}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "limit", Message: "must be a positive integer"},
			}).Write(w)
			return
		}
		filter.Limit = limit
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Invalid cursor").Write(w)
		default:
			problem.InternalError("Failed to list journal entries").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
