package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MoodEntryRepository interface {
	Create(ctx context.Context, entry *domain.MoodEntry) error
	Update(ctx context.Context, entry *domain.MoodEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MoodEntry, error)
	// List returns up to filter.Limit+1 entries, newest first.
	List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) ([]domain.MoodEntry, error)
	// ListByLoggedRange returns every entry logged in [from, to], oldest first.
	ListByLoggedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error)
	GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.MoodEntry, error)
}

type moodEntryRepository struct {
	db *gorm.DB
}

func NewMoodEntryRepository(db *gorm.DB) MoodEntryRepository {
	return &moodEntryRepository{db: db}
}

func (r *moodEntryRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	err := r.db.WithContext(ctx).Create(entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateRequest
	}
	return err
}

func (r *moodEntryRepository) Update(ctx context.Context, entry *domain.MoodEntry) error {
	return r.db.WithContext(ctx).
		Model(entry).
		Select("mood_score", "energy_level", "stress_level", "sleep_hours", "emotions", "notes", "logged_at", "local_timezone").
		Updates(entry).Error
}

func (r *moodEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MoodEntry, error) {
	var entry domain.MoodEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *moodEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) ([]domain.MoodEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Order("id DESC")

	if filter.From != nil {
		query = query.Where("logged_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("logged_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		if cursor != nil {
			query = query.Where(
				"(logged_at < ?) OR (logged_at = ? AND id < ?)",
				cursor.LoggedAt, cursor.LoggedAt, cursor.ID,
			)
		}
	}

	// One extra row tells the caller whether another page exists
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.MoodEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *moodEntryRepository) ListByLoggedRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error) {
	var entries []domain.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("logged_at >= ? AND logged_at <= ?", from, to).
		Order("logged_at ASC").
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *moodEntryRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.MoodEntry, error) {
	var entry domain.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_request_id = ?", userID, clientRequestID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found is not an error for idempotency check
		}
		return nil, err
	}
	return &entry, nil
}
