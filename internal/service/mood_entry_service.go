package service

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/internal/repository"
	"github.com/blaisecz/mood-tracker/pkg/pagination"
	"github.com/google/uuid"
)

const (
	// DefaultDataWindowDays is the default window of the chart data endpoint.
	DefaultDataWindowDays = 30

	// MaxWindowDays bounds every look-back window.
	MaxWindowDays = 365

	// maxClockSkew is how far in the future logged_at may be.
	maxClockSkew = 5 * time.Minute
)

type MoodEntryService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, bool, error)
	Update(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, req *domain.UpdateMoodEntryRequest) (*domain.MoodEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) (*domain.MoodEntryListResponse, error)
	// Data returns the entries of the last days days, oldest first.
	Data(ctx context.Context, userID uuid.UUID, days int) (*domain.MoodDataResponse, error)
}

type moodEntryService struct {
	repo     repository.MoodEntryRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewMoodEntryService(repo repository.MoodEntryRepository, userRepo repository.UserRepository) MoodEntryService {
	return &moodEntryService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Create logs a new mood entry
// Returns (entry, isExisting, error) - isExisting is true if returning existing entry due to idempotency
func (s *moodEntryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, bool, error) {
	// Load user to confirm existence and get their home timezone
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	// A blank client_request_id means no idempotency key; it is stored as NULL
	var clientRequestID *string
	hasRequestID := req.ClientRequestID != nil && *req.ClientRequestID != ""
	if hasRequestID {
		clientRequestID = req.ClientRequestID
		existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	now := s.now().UTC()
	loggedAt := now
	if req.LoggedAt != nil {
		loggedAt = req.LoggedAt.UTC()
	}
	if loggedAt.After(now.Add(maxClockSkew)) {
		return nil, false, domain.ErrFutureEntry
	}

	localTZ := user.Timezone
	if req.LocalTimezone != nil && *req.LocalTimezone != "" {
		localTZ = *req.LocalTimezone
	}
	if localTZ == "" {
		localTZ = "UTC"
	}

	entry := &domain.MoodEntry{
		UserID:          userID,
		LoggedAt:        loggedAt,
		MoodScore:       req.MoodScore,
		EnergyLevel:     req.EnergyLevel,
		StressLevel:     req.StressLevel,
		SleepHours:      req.SleepHours,
		Emotions:        normalizeEmotions(req.Emotions),
		Notes:           req.Notes,
		LocalTimezone:   localTZ,
		ClientRequestID: clientRequestID,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		// A concurrent request with the same client_request_id won the insert.
		if hasRequestID && errors.Is(err, domain.ErrDuplicateRequest) {
			existing, getErr := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
			if getErr == nil && existing != nil {
				return existing, true, nil
			}
		}
		return nil, false, err
	}

	return entry, false, nil
}

// Update applies a partial update to an entry owned by userID
func (s *moodEntryService) Update(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, req *domain.UpdateMoodEntryRequest) (*domain.MoodEntry, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	// Entries of other users are reported as missing
	if entry.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if req.MoodScore != nil {
		entry.MoodScore = *req.MoodScore
	}
	if req.EnergyLevel != nil {
		entry.EnergyLevel = req.EnergyLevel
	}
	if req.StressLevel != nil {
		entry.StressLevel = req.StressLevel
	}
	if req.SleepHours != nil {
		entry.SleepHours = req.SleepHours
	}
	if req.Emotions != nil {
		entry.Emotions = normalizeEmotions(*req.Emotions)
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	if req.LoggedAt != nil {
		loggedAt := req.LoggedAt.UTC()
		if loggedAt.After(s.now().UTC().Add(maxClockSkew)) {
			return nil, domain.ErrFutureEntry
		}
		entry.LoggedAt = loggedAt
	}
	if req.LocalTimezone != nil && *req.LocalTimezone != "" {
		entry.LocalTimezone = *req.LocalTimezone
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *moodEntryService) List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) (*domain.MoodEntryListResponse, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domain.ErrInvalidInput
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	entries, hasMore := pagination.Page(entries, filter.Limit)

	response := &domain.MoodEntryListResponse{
		Data: make([]domain.MoodEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i := range entries {
		response.Data[i] = entries[i].ToResponse()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{
			ID:       last.ID,
			LoggedAt: last.LoggedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *moodEntryService) Data(ctx context.Context, userID uuid.UUID, days int) (*domain.MoodDataResponse, error) {
	if days <= 0 {
		days = DefaultDataWindowDays
	}
	if days > MaxWindowDays {
		return nil, domain.ErrInvalidInput
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	to := s.now().UTC()
	from := to.AddDate(0, 0, -days)

	entries, err := s.repo.ListByLoggedRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	response := &domain.MoodDataResponse{
		Days: days,
		Data: make([]domain.MoodDataPoint, len(entries)),
	}
	for i := range entries {
		response.Data[i] = entries[i].ToDataPoint()
	}

	return response, nil
}

func (s *moodEntryService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

// normalizeEmotions stores labels lowercased and deduplicated, never as null.
func normalizeEmotions(labels []string) []string {
	normalized := analysis.NormalizeEmotions(labels)
	if normalized == nil {
		return []string{}
	}
	return normalized
}
