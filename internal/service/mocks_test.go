package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/internal/langfuse"
	"github.com/google/uuid"
)

// MockMoodEntryRepository is an in-memory MoodEntryRepository
type MockMoodEntryRepository struct {
	entries         map[uuid.UUID]*domain.MoodEntry
	clientRequestID map[string]*domain.MoodEntry
	listResult      []domain.MoodEntry
	createErr       error
	err             error

	// lookupMisses makes the next GetByClientRequestID calls report no entry
	lookupMisses int

	// rangeFrom and rangeTo capture the last ListByLoggedRange call
	rangeFrom time.Time
	rangeTo   time.Time
}

func NewMockMoodEntryRepository() *MockMoodEntryRepository {
	return &MockMoodEntryRepository{
		entries:         make(map[uuid.UUID]*domain.MoodEntry),
		clientRequestID: make(map[string]*domain.MoodEntry),
	}
}

func (m *MockMoodEntryRepository) add(entry domain.MoodEntry) *domain.MoodEntry {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	e := entry
	m.entries[e.ID] = &e
	if e.ClientRequestID != nil {
		m.clientRequestID[e.UserID.String()+":"+*e.ClientRequestID] = &e
	}
	return &e
}

func (m *MockMoodEntryRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.err != nil {
		return m.err
	}
	// Mirrors the partial unique index: only NULL client_request_id values may repeat
	if entry.ClientRequestID != nil {
		if _, taken := m.clientRequestID[entry.UserID.String()+":"+*entry.ClientRequestID]; taken {
			return domain.ErrDuplicateRequest
		}
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	m.entries[entry.ID] = entry
	if entry.ClientRequestID != nil {
		m.clientRequestID[entry.UserID.String()+":"+*entry.ClientRequestID] = entry
	}
	return nil
}

func (m *MockMoodEntryRepository) Update(ctx context.Context, entry *domain.MoodEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockMoodEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockMoodEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) ([]domain.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.MoodEntry, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.MoodEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LoggedAt.After(result[j].LoggedAt) })
	return result, nil
}

func (m *MockMoodEntryRepository) ListByLoggedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error) {
	m.rangeFrom, m.rangeTo = from, to
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MoodEntry
	for _, e := range m.entries {
		if e.UserID == userID && !e.LoggedAt.Before(from) && !e.LoggedAt.After(to) {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LoggedAt.Before(result[j].LoggedAt) })
	return result, nil
}

func (m *MockMoodEntryRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.lookupMisses > 0 {
		m.lookupMisses--
		return nil, nil
	}
	entry, ok := m.clientRequestID[userID.String()+":"+clientRequestID]
	if !ok {
		return nil, nil
	}
	return entry, nil
}

// MockJournalEntryRepository is a mock implementation of JournalEntryRepository
type MockJournalEntryRepository struct {
	entries    map[uuid.UUID]*domain.JournalEntry
	listResult []domain.JournalEntry
	err        error
}

func NewMockJournalEntryRepository() *MockJournalEntryRepository {
	return &MockJournalEntryRepository{
		entries: make(map[uuid.UUID]*domain.JournalEntry),
	}
}

func (m *MockJournalEntryRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockJournalEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockJournalEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) ([]domain.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.JournalEntry, len(m.listResult))
	copy(result, m.listResult)
	return result, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

func (m *MockUserRepository) addUser(timezone string) *domain.User {
	user := &domain.User{ID: uuid.New(), Timezone: timezone}
	m.users[user.ID] = user
	return user
}

// MockAnalyzer wraps an Analyze func
type MockAnalyzer struct {
	AnalyzeFunc func(records []analysis.Record) (*analysis.Result, error)
	calls       [][]analysis.Record
}

func (m *MockAnalyzer) Analyze(records []analysis.Record) (*analysis.Result, error) {
	m.calls = append(m.calls, records)
	return m.AnalyzeFunc(records)
}

// MockCoachLLM is a mock implementation of llm.CoachLLM
type MockCoachLLM struct {
	SummarizeFunc func(ctx context.Context, result *analysis.Result) (*domain.CoachSummary, error)
}

func (m *MockCoachLLM) Summarize(ctx context.Context, result *analysis.Result) (*domain.CoachSummary, error) {
	return m.SummarizeFunc(ctx, result)
}

// MockLangfuseClient records traces and scores
type MockLangfuseClient struct {
	mu      sync.Mutex
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.traces = append(m.traces, in)
	if in.ID != "" {
		return in.ID, nil
	}
	return "trace-" + in.Name, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Flush(ctx context.Context) error { return nil }

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
