package domain

import (
	"math"
	"strings"
	"time"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/google/uuid"
)

const (
	// MinJournalContentLength is the shortest accepted journal text, counted after trimming.
	MinJournalContentLength = 10

	// wordsPerMinute drives the reading time estimate.
	wordsPerMinute = 200
)

// JournalEntry is free-form writing, optionally attached to the mood entry it reflects on.
// The sentiment of the content is scored when the entry is written. IsPrivate
// has no column default, since gorm would replace an explicit false with it.
type JournalEntry struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID  `gorm:"type:uuid;not null;index:idx_journal_entries_user_created" json:"user_id"`
	MoodEntryID           *uuid.UUID `gorm:"type:uuid;index" json:"mood_entry_id,omitempty"`
	Title                 string     `gorm:"type:varchar(100)" json:"title,omitempty"`
	Content               string     `gorm:"type:text;not null" json:"content"`
	IsPrivate             bool       `gorm:"not null" json:"is_private"`
	SentimentPolarity     float64    `gorm:"type:real;not null;default:0" json:"sentiment_polarity"`
	SentimentSubjectivity float64    `gorm:"type:real;not null;default:0" json:"sentiment_subjectivity"`
	CreatedAt             time.Time  `gorm:"autoCreateTime;index:idx_journal_entries_user_created,sort:desc" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	MoodEntry *MoodEntry `gorm:"foreignKey:MoodEntryID;constraint:OnDelete:SET NULL" json:"-"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// CreateJournalEntryRequest is the request body for writing a journal entry.
// @Description Request payload for a journal entry.
type CreateJournalEntryRequest struct {
	// Optional title (max 100 chars)
	Title string `json:"title,omitempty" validate:"omitempty,max=100" example:"Sunday reflections"`
	// Journal text, at least 10 characters after trimming
	Content string `json:"content" validate:"required,min=10,max=10000" example:"Spent the morning outside and felt great about the week ahead."`
	// Optional mood entry this journal entry reflects on
	MoodEntryID *uuid.UUID `json:"mood_entry_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Whether the entry is private (defaults to true)
	IsPrivate *bool `json:"is_private,omitempty" example:"true"`
}

// JournalEntryResponse is the response body for journal entry endpoints.
// @Description Journal entry with its sentiment score and reading statistics.
type JournalEntryResponse struct {
	ID          uuid.UUID          `json:"id" example:"770e8400-e29b-41d4-a716-446655440002"`
	UserID      uuid.UUID          `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	MoodEntryID *uuid.UUID         `json:"mood_entry_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title       string             `json:"title,omitempty" example:"Sunday reflections"`
	Content     string             `json:"content" example:"Spent the morning outside and felt great about the week ahead."`
	IsPrivate   bool               `json:"is_private" example:"true"`
	Sentiment   analysis.Sentiment `json:"sentiment"`
	// Number of whitespace-separated words
	WordCount int `json:"word_count" example:"11"`
	// Estimated reading time at 200 words per minute
	ReadingTimeMinutes int       `json:"reading_time_minutes" example:"1"`
	CreatedAt          time.Time `json:"created_at" example:"2024-01-15T20:00:05Z"`
	UpdatedAt          time.Time `json:"updated_at" example:"2024-01-15T20:00:05Z"`
}

// WordCount counts whitespace-separated words of the content.
func (e *JournalEntry) WordCount() int {
	return len(strings.Fields(e.Content))
}

// ReadingTimeMinutes rounds up, so any non-empty entry takes at least a minute.
func (e *JournalEntry) ReadingTimeMinutes() int {
	return int(math.Ceil(float64(e.WordCount()) / wordsPerMinute))
}

func (e *JournalEntry) ToResponse() JournalEntryResponse {
	return JournalEntryResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		MoodEntryID: e.MoodEntryID,
		Title:       e.Title,
		Content:     e.Content,
		IsPrivate:   e.IsPrivate,
		Sentiment: analysis.Sentiment{
			Polarity:     e.SentimentPolarity,
			Subjectivity: e.SentimentSubjectivity,
		},
		WordCount:          e.WordCount(),
		ReadingTimeMinutes: e.ReadingTimeMinutes(),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// JournalEntryListResponse is the response body for listing journal entries.
// @Description Paginated list of journal entries, newest first.
type JournalEntryListResponse struct {
	Data       []JournalEntryResponse `json:"data"`
	Pagination PaginationResponse     `json:"pagination"`
}

// JournalEntryFilter contains paging parameters for listing journal entries
type JournalEntryFilter struct {
	Limit  int
	Cursor string
}
