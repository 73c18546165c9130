package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/pkg/problem"
	"github.com/google/uuid"
)

func TestJournalEntryHandler_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		body           string
		mockService    *MockJournalEntryService
		wantStatusCode int
		wantField      string
	}{
		{
			name:           "valid request",
			userID:         userID.String(),
			body:           `{"title": "Evening", "content": "Felt calm after the run today."}`,
			mockService:    &MockJournalEntryService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid user ID",
			userID:         "not-a-uuid",
			body:           `{"content": "Felt calm after the run today."}`,
			mockService:    &MockJournalEntryService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			userID:         userID.String(),
			body:           `{invalid}`,
			mockService:    &MockJournalEntryService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing content",
			userID:         userID.String(),
			body:           `{"title": "Empty"}`,
			mockService:    &MockJournalEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantField:      "content",
		},
		{
			name:           "title too long",
			userID:         userID.String(),
			body:           `{"title": "` + strings.Repeat("t", 101) + `", "content": "Felt calm after the run today."}`,
			mockService:    &MockJournalEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantField:      "title",
		},
		{
			name:   "content short once trimmed",
			userID: userID.String(),
			body:   `{"content": "   tiny        "}`,
			mockService: &MockJournalEntryService{
				createFunc: func(ctx context.Context, uid uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
					return nil, domain.ErrJournalTooShort
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantField:      "content",
		},
		{
			name:   "unknown mood entry",
			userID: userID.String(),
			body:   `{"content": "Felt calm after the run today.", "mood_entry_id": "` + uuid.NewString() + `"}`,
			mockService: &MockJournalEntryService{
				createFunc: func(ctx context.Context, uid uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
					return nil, domain.ErrLinkedMoodEntry
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantField:      "mood_entry_id",
		},
		{
			name:   "user not found",
			userID: userID.String(),
			body:   `{"content": "Felt calm after the run today."}`,
			mockService: &MockJournalEntryService{
				createFunc: func(ctx context.Context, uid uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:   "service error",
			userID: userID.String(),
			body:   `{"content": "Felt calm after the run today."}`,
			mockService: &MockJournalEntryService{
				createFunc: func(ctx context.Context, uid uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
					return nil, fmt.Errorf("db down")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewJournalEntryHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+tt.userID+"/journal-entries", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withURLParams(req, map[string]string{"userId": tt.userID})
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantField != "" {
				var p problem.Problem
				if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
					t.Fatalf("Failed to decode problem: %v", err)
				}
				found := false
				for _, fe := range p.Errors {
					if fe.Field == tt.wantField {
						found = true
					}
				}
				if !found {
					t.Errorf("expected field error for %q, got %+v", tt.wantField, p.Errors)
				}
			}
		})
	}
}

func TestJournalEntryHandler_Create_ResponseBody(t *testing.T) {
	userID := uuid.New()
	handler := NewJournalEntryHandler(&MockJournalEntryService{})

	body := `{"content": "Three short words and then seven more."}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req = withURLParams(req, map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.JournalEntryResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.UserID != userID {
		t.Errorf("user_id = %s, want %s", resp.UserID, userID)
	}
	if resp.WordCount != 7 || resp.ReadingTimeMinutes != 1 {
		t.Errorf("reading stats = (%d, %d), want (7, 1)", resp.WordCount, resp.ReadingTimeMinutes)
	}
}

func TestJournalEntryHandler_GetByID(t *testing.T) {
	userID := uuid.New()
	entryID := uuid.New()

	tests := []struct {
		name           string
		entryID        string
		mockService    *MockJournalEntryService
		wantStatusCode int
	}{
		{
			name:    "found",
			entryID: entryID.String(),
			mockService: &MockJournalEntryService{
				getByIDFunc: func(ctx context.Context, uid, eid uuid.UUID) (*domain.JournalEntry, error) {
					return &domain.JournalEntry{ID: eid, UserID: uid, Content: "Slept badly, still okay."}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid entry ID",
			entryID:        "nope",
			mockService:    &MockJournalEntryService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "not found",
			entryID:        entryID.String(),
			mockService:    &MockJournalEntryService{},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:    "service error",
			entryID: entryID.String(),
			mockService: &MockJournalEntryService{
				getByIDFunc: func(ctx context.Context, uid, eid uuid.UUID) (*domain.JournalEntry, error) {
					return nil, fmt.Errorf("db down")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewJournalEntryHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = withURLParams(req, map[string]string{"userId": userID.String(), "entryId": tt.entryID})
			rec := httptest.NewRecorder()

			handler.GetByID(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetByID() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestJournalEntryHandler_List(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		query          string
		mockService    *MockJournalEntryService
		wantStatusCode int
	}{
		{
			name:           "no paging",
			query:          "",
			mockService:    &MockJournalEntryService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:  "paging is parsed",
			query: "?limit=5&cursor=abc",
			mockService: &MockJournalEntryService{
				listFunc: func(ctx context.Context, uid uuid.UUID, filter domain.JournalEntryFilter) (*domain.JournalEntryListResponse, error) {
					if filter.Limit != 5 || filter.Cursor != "abc" {
						return nil, fmt.Errorf("unexpected filter: %+v", filter)
					}
					return &domain.JournalEntryListResponse{Data: []domain.JournalEntryResponse{}}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid limit",
			query:          "?limit=-3",
			mockService:    &MockJournalEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:  "invalid cursor",
			query: "?cursor=garbage",
			mockService: &MockJournalEntryService{
				listFunc: func(ctx context.Context, uid uuid.UUID, filter domain.JournalEntryFilter) (*domain.JournalEntryListResponse, error) {
					return nil, domain.ErrInvalidInput
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:  "user not found",
			query: "",
			mockService: &MockJournalEntryService{
				listFunc: func(ctx context.Context, uid uuid.UUID, filter domain.JournalEntryFilter) (*domain.JournalEntryListResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewJournalEntryHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/journal-entries"+tt.query, nil)
			req = withURLParams(req, map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
