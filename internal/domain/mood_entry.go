package domain

import (
	"time"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/google/uuid"
)

// MoodCategory buckets a mood score for display.
// @Description Mood category: positive (8-10), neutral (6-7), low (4-5), negative (1-3).
type MoodCategory string

const (
	MoodPositive MoodCategory = "positive"
	MoodNeutral  MoodCategory = "neutral"
	MoodLow      MoodCategory = "low"
	MoodNegative MoodCategory = "negative"
)

// CategoryFor maps a 1-10 mood score to its category.
func CategoryFor(score int) MoodCategory {
	switch {
	case score >= 8:
		return MoodPositive
	case score >= 6:
		return MoodNeutral
	case score >= 4:
		return MoodLow
	default:
		return MoodNegative
	}
}

type MoodEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_mood_entries_user_logged;uniqueIndex:idx_mood_entries_user_request,where:client_request_id IS NOT NULL" json:"user_id"`
	LoggedAt        time.Time `gorm:"not null;index:idx_mood_entries_user_logged,sort:desc" json:"logged_at"`
	MoodScore       int       `gorm:"type:smallint;not null" json:"mood_score"`
	EnergyLevel     *int      `gorm:"type:smallint" json:"energy_level,omitempty"`
	StressLevel     *int      `gorm:"type:smallint" json:"stress_level,omitempty"`
	SleepHours      *float64  `gorm:"type:real" json:"sleep_hours,omitempty"`
	Emotions        []string  `gorm:"type:jsonb;serializer:json" json:"emotions"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	LocalTimezone   string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"local_timezone"`
	ClientRequestID *string   `gorm:"type:varchar(255);uniqueIndex:idx_mood_entries_user_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}

// CreateMoodEntryRequest is the request body for logging a mood entry.
// @Description Request payload for a mood check-in.
type CreateMoodEntryRequest struct {
	// Mood rating from 1 (very low) to 10 (excellent)
	MoodScore int `json:"mood_score" validate:"required,min=1,max=10" example:"7" minimum:"1" maximum:"10"`
	// Optional energy level from 1 to 10
	EnergyLevel *int `json:"energy_level,omitempty" validate:"omitempty,min=1,max=10" example:"6" minimum:"1" maximum:"10"`
	// Optional stress level from 1 to 10
	StressLevel *int `json:"stress_level,omitempty" validate:"omitempty,min=1,max=10" example:"4" minimum:"1" maximum:"10"`
	// Optional hours slept the night before
	SleepHours *float64 `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24" example:"7.5" minimum:"0" maximum:"24"`
	// Free-text emotion labels (max 10)
	Emotions []string `json:"emotions,omitempty" validate:"omitempty,max=10,dive,emotion" example:"calm,grateful"`
	// Optional journal notes
	Notes string `json:"notes,omitempty" validate:"omitempty,max=2000" example:"Had a great walk in the park"`
	// When the mood was felt (RFC3339, defaults to now)
	LoggedAt *time.Time `json:"logged_at,omitempty" example:"2024-01-15T20:00:00Z"`
	// Optional IANA timezone (defaults to user's timezone)
	LocalTimezone *string `json:"local_timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
}

// UpdateMoodEntryRequest is the request body for partially updating a mood entry.
// @Description Partial update of a mood entry; omitted fields are left unchanged.
type UpdateMoodEntryRequest struct {
	MoodScore     *int       `json:"mood_score,omitempty" validate:"omitempty,min=1,max=10" example:"8"`
	EnergyLevel   *int       `json:"energy_level,omitempty" validate:"omitempty,min=1,max=10" example:"6"`
	StressLevel   *int       `json:"stress_level,omitempty" validate:"omitempty,min=1,max=10" example:"3"`
	SleepHours    *float64   `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24" example:"8"`
	Emotions      *[]string  `json:"emotions,omitempty" validate:"omitempty,max=10,dive,emotion" example:"happy"`
	Notes         *string    `json:"notes,omitempty" validate:"omitempty,max=2000" example:"Felt better after lunch"`
	LoggedAt      *time.Time `json:"logged_at,omitempty" example:"2024-01-15T21:00:00Z"`
	LocalTimezone *string    `json:"local_timezone,omitempty" validate:"omitempty,timezone" example:"America/New_York"`
}

// IsEmpty reports whether the request changes nothing.
func (r *UpdateMoodEntryRequest) IsEmpty() bool {
	return r.MoodScore == nil && r.EnergyLevel == nil && r.StressLevel == nil &&
		r.SleepHours == nil && r.Emotions == nil && r.Notes == nil &&
		r.LoggedAt == nil && r.LocalTimezone == nil
}

// MoodEntryResponse is the response body for mood entry endpoints.
// @Description Mood entry with UTC and local times.
type MoodEntryResponse struct {
	ID          uuid.UUID    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID      uuid.UUID    `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	MoodScore   int          `json:"mood_score" example:"7"`
	Category    MoodCategory `json:"category" example:"neutral"`
	EnergyLevel *int         `json:"energy_level,omitempty" example:"6"`
	StressLevel *int         `json:"stress_level,omitempty" example:"4"`
	SleepHours  *float64     `json:"sleep_hours,omitempty" example:"7.5"`
	Emotions    []string     `json:"emotions" example:"calm,grateful"`
	Notes       string       `json:"notes,omitempty" example:"Had a great walk in the park"`
	// When the mood was felt (UTC)
	LoggedAt time.Time `json:"logged_at" example:"2024-01-15T20:00:00Z"`
	// Timezone used for local times
	LocalTimezone string `json:"local_timezone" example:"Europe/Prague"`
	// LoggedAt in the entry's local timezone
	LocalLoggedAt   time.Time `json:"local_logged_at" example:"2024-01-15T21:00:00+01:00"`
	ClientRequestID *string   `json:"client_request_id,omitempty" example:"client-uuid-12345"`
	CreatedAt       time.Time `json:"created_at" example:"2024-01-15T20:00:05Z"`
	UpdatedAt       time.Time `json:"updated_at" example:"2024-01-15T20:00:05Z"`
}

// Location returns the entry's timezone, falling back to UTC.
func (e *MoodEntry) Location() *time.Location {
	return loadLocation(e.LocalTimezone)
}

func (e *MoodEntry) ToResponse() MoodEntryResponse {
	emotions := e.Emotions
	if emotions == nil {
		emotions = []string{}
	}

	return MoodEntryResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		MoodScore:       e.MoodScore,
		Category:        CategoryFor(e.MoodScore),
		EnergyLevel:     e.EnergyLevel,
		StressLevel:     e.StressLevel,
		SleepHours:      e.SleepHours,
		Emotions:        emotions,
		Notes:           e.Notes,
		LoggedAt:        e.LoggedAt,
		LocalTimezone:   e.LocalTimezone,
		LocalLoggedAt:   e.LoggedAt.In(e.Location()),
		ClientRequestID: e.ClientRequestID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToRecord converts the entry into the analysis input. The timestamp is
// expressed in the entry's local timezone so weekdays match what the user saw.
func (e *MoodEntry) ToRecord() analysis.Record {
	return analysis.Record{
		Timestamp:   e.LoggedAt.In(e.Location()),
		MoodScore:   e.MoodScore,
		EnergyLevel: e.EnergyLevel,
		StressLevel: e.StressLevel,
		SleepHours:  e.SleepHours,
		Emotions:    e.Emotions,
		Notes:       e.Notes,
	}
}

// ToRecords converts entries in order.
func ToRecords(entries []MoodEntry) []analysis.Record {
	records := make([]analysis.Record, len(entries))
	for i := range entries {
		records[i] = entries[i].ToRecord()
	}
	return records
}

// MoodEntryListResponse is the response body for listing mood entries.
// @Description Paginated list of mood entries.
type MoodEntryListResponse struct {
	Data       []MoodEntryResponse `json:"data"`
	Pagination PaginationResponse  `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// MoodEntryFilter contains filter parameters for listing mood entries
type MoodEntryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
