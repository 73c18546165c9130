package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/internal/repository"
	"github.com/blaisecz/mood-tracker/pkg/pagination"
	"github.com/google/uuid"
)

type JournalEntryService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	GetByID(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) (*domain.JournalEntryListResponse, error)
}

type journalEntryService struct {
	repo     repository.JournalEntryRepository
	moodRepo repository.MoodEntryRepository
	userRepo repository.UserRepository
}

func NewJournalEntryService(repo repository.JournalEntryRepository, moodRepo repository.MoodEntryRepository, userRepo repository.UserRepository) JournalEntryService {
	return &journalEntryService{
		repo:     repo,
		moodRepo: moodRepo,
		userRepo: userRepo,
	}
}

// Create stores a journal entry with the sentiment of its content.
func (s *journalEntryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if utf8.RuneCountInString(content) < domain.MinJournalContentLength {
		return nil, domain.ErrJournalTooShort
	}

	if req.MoodEntryID != nil {
		mood, err := s.moodRepo.GetByID(ctx, *req.MoodEntryID)
		if errors.Is(err, domain.ErrNotFound) || (err == nil && mood.UserID != userID) {
			return nil, domain.ErrLinkedMoodEntry
		}
		if err != nil {
			return nil, err
		}
	}

	isPrivate := true
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	sentiment := analysis.ScoreSentiment(content)
	entry := &domain.JournalEntry{
		UserID:                userID,
		MoodEntryID:           req.MoodEntryID,
		Title:                 strings.TrimSpace(req.Title),
		Content:               content,
		IsPrivate:             isPrivate,
		SentimentPolarity:     sentiment.Polarity,
		SentimentSubjectivity: sentiment.Subjectivity,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *journalEntryService) GetByID(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (s *journalEntryService) List(ctx context.Context, userID uuid.UUID, filter domain.JournalEntryFilter) (*domain.JournalEntryListResponse, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	entries, hasMore := pagination.Page(entries, filter.Limit)

	response := &domain.JournalEntryListResponse{
		Data: make([]domain.JournalEntryResponse, len(entries)),
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
			LoggedAt: last.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *journalEntryService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}
