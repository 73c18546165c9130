package handler

import (
	"context"
	"net/http"
	"time"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers

	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockMoodEntryService is a mock implementation of MoodEntryService
type MockMoodEntryService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, bool, error)
	updateFunc func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, req *domain.UpdateMoodEntryRequest) (*domain.MoodEntry, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) (*domain.MoodEntryListResponse, error)
	dataFunc   func(ctx context.Context, userID uuid.UUID, days int) (*domain.MoodDataResponse, error)
}

func (m *MockMoodEntryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.MoodEntry{
		ID:            uuid.New(),
		UserID:        userID,
		LoggedAt:      time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC),
		MoodScore:     req.MoodScore,
		EnergyLevel:   req.EnergyLevel,
		StressLevel:   req.StressLevel,
		SleepHours:    req.SleepHours,
		Emotions:      req.Emotions,
		Notes:         req.Notes,
		LocalTimezone: "UTC",
		CreatedAt:     time.Now(),
	}, false, nil
}

func (m *MockMoodEntryService) Update(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, req *domain.UpdateMoodEntryRequest) (*domain.MoodEntry, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, entryID, req)
	}
	return &domain.MoodEntry{
		ID:            entryID,
		UserID:        userID,
		LoggedAt:      time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC),
		MoodScore:     7,
		LocalTimezone: "UTC",
		CreatedAt:     time.Now(),
	}, nil
}

func (m *MockMoodEntryService) List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) (*domain.MoodEntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.MoodEntryListResponse{
		Data:       []domain.MoodEntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockMoodEntryService) Data(ctx context.Context, userID uuid.UUID, days int) (*domain.MoodDataResponse, error) {
	if m.dataFunc != nil {
		return m.dataFunc(ctx, userID, days)
	}
	return &domain.MoodDataResponse{Days: days, Data: []domain.MoodDataPoint{}}, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	computeFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.MoodStatsResponse, error)
}

func (m *MockStatsService) Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.MoodStatsResponse, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, userID, windowDays)
	}
	return &domain.MoodStatsResponse{}, nil
}

func (m *MockStatsService) ComputeWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.MoodStatsResponse, error) {
	return &domain.MoodStatsResponse{Window: domain.Window{From: from, To: to}}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc  func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.InsightsResponse, error)
	summarizeFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.CoachSummaryResponse, error)
	feedbackFunc  func(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, windowDays)
	}
	return &domain.InsightsResponse{WindowDays: windowDays}, nil
}

func (m *MockInsightsService) Summarize(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.CoachSummaryResponse, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, userID, windowDays)
	}
	return &domain.CoachSummaryResponse{}, nil
}

func (m *MockInsightsService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

// MockJournalEntryService is a mock implementation of JournalEntryService
type MockJournalEntryService struct {
	createFunc  func(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	getByIDFunc func(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	listFunc    func(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) (*domain.JournalEntryListResponse, error)
}

func (m *MockJournalEntryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.JournalEntry{
		ID:          uuid.New(),
		UserID:      userID,
		MoodEntryID: req.MoodEntryID,
		Title:       req.Title,
		Content:     req.Content,
		IsPrivate:   true,
		CreatedAt:   time.Now(),
	}, nil
}

func (m *MockJournalEntryService) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, userID, entryID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockJournalEntryService) List(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) (*domain.JournalEntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.JournalEntryListResponse{Data: []domain.JournalEntryResponse{}}, nil
}

// withURLParams attaches chi route params to the request.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
