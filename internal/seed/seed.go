package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const seededDays = 40

// Users are the demo accounts created by Run.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
	{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
}

var notesByCategory = map[domain.MoodCategory][]string{
	domain.MoodPositive: {"Great day with friends", "Wonderful walk in the park", "Felt productive and happy", ""},
	domain.MoodNeutral:  {"Ordinary day at work", "Nothing special happened", ""},
	domain.MoodLow:      {"Tired after a long meeting", "A bit stressed about deadlines", ""},
	domain.MoodNegative: {"Terrible night, awful headache", "Felt sad and lonely", ""},
}

var emotionsByCategory = map[domain.MoodCategory][]string{
	domain.MoodPositive: {"happy", "grateful", "excited", "calm", "content"},
	domain.MoodNeutral:  {"calm", "content", "tired"},
	domain.MoodLow:      {"tired", "stressed", "anxious"},
	domain.MoodNegative: {"sad", "anxious", "frustrated", "stressed"},
}

// Run seeds the database with sample users, mood entries and weekly journal entries. Safe to call multiple times.
func Run(db *gorm.DB, log *zap.Logger) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.MoodEntry{}, &domain.JournalEntry{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	now := time.Now().UTC()
	for i, user := range Users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		rng := rand.New(rand.NewSource(int64(i + 1)))
		entries := GenerateEntries(user, now, seededDays, rng)
		journals := 0
		for j := range entries {
			entry := entries[j]
			if err := db.Where("user_id = ? AND client_request_id = ?", user.ID, *entry.ClientRequestID).
				FirstOrCreate(&entry).Error; err != nil {
				return fmt.Errorf("failed to create mood entry: %w", err)
			}

			journal := WeeklyJournal(entry)
			if journal == nil {
				continue
			}
			if err := db.Where("id = ?", journal.ID).FirstOrCreate(journal).Error; err != nil {
				return fmt.Errorf("failed to create journal entry: %w", err)
			}
			journals++
		}

		log.Info("seeded user",
			zap.String("user_id", user.ID.String()),
			zap.String("timezone", user.Timezone),
			zap.Int("entries", len(entries)),
			zap.Int("journal_entries", journals),
		)
	}

	log.Info("seed completed", zap.Int("users", len(Users)))
	return nil
}

// GenerateEntries builds one evening entry per day for the last days days.
// Weekends lift the mood, sleep tracks it and stress moves against it, so the
// insights engine has something to find.
func GenerateEntries(user domain.User, now time.Time, days int, rng *rand.Rand) []domain.MoodEntry {
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}

	entries := make([]domain.MoodEntry, 0, days)
	for i := days; i >= 1; i-- {
		day := now.In(loc).AddDate(0, 0, -i)
		loggedAt := time.Date(day.Year(), day.Month(), day.Day(), 20+rng.Intn(2), rng.Intn(60), 0, 0, loc)

		mood := 5 + rng.Intn(3)
		if wd := loggedAt.Weekday(); wd == time.Saturday || wd == time.Sunday {
			mood += 2
		} else if wd == time.Monday {
			mood -= 2
		}
		mood = clamp(mood, 1, 10)

		energy := clamp(mood+rng.Intn(3)-1, 1, 10)
		stress := clamp(11-mood+rng.Intn(3)-1, 1, 10)
		sleep := float64(int((5.0+float64(mood)*0.35+rng.Float64())*10)) / 10

		category := domain.CategoryFor(mood)
		pool := emotionsByCategory[category]
		emotions := []string{pool[rng.Intn(len(pool))]}
		if second := pool[rng.Intn(len(pool))]; second != emotions[0] {
			emotions = append(emotions, second)
		}
		notes := notesByCategory[category]

		clientReqID := fmt.Sprintf("seed-mood-%s-%d", user.ID, i)
		entries = append(entries, domain.MoodEntry{
			UserID:          user.ID,
			LoggedAt:        loggedAt.UTC(),
			MoodScore:       mood,
			EnergyLevel:     &energy,
			StressLevel:     &stress,
			SleepHours:      &sleep,
			Emotions:        emotions,
			Notes:           notes[rng.Intn(len(notes))],
			LocalTimezone:   user.Timezone,
			ClientRequestID: &clientReqID,
		})
	}
	return entries
}

// WeeklyJournal returns the Sunday reflection attached to a stored mood entry,
// or nil on other days. The ID derives from the mood entry so reseeding finds it.
func WeeklyJournal(entry domain.MoodEntry) *domain.JournalEntry {
	if entry.LoggedAt.In(entry.Location()).Weekday() != time.Sunday {
		return nil
	}

	var content string
	switch category := domain.CategoryFor(entry.MoodScore); category {
	case domain.MoodPositive:
		content = "A great week overall. Weekends with friends always leave me happy and rested."
	case domain.MoodNegative:
		content = "A terrible week, sleep was bad and I felt frustrated most days."
	default:
		content = "An ordinary week. Some tired evenings, but nothing I could not handle."
	}

	sentiment := analysis.ScoreSentiment(content)
	moodEntryID := entry.ID
	return &domain.JournalEntry{
		ID:                    uuid.NewSHA1(entry.ID, []byte("weekly-journal")),
		UserID:                entry.UserID,
		MoodEntryID:           &moodEntryID,
		Title:                 "Week ending " + entry.LoggedAt.In(entry.Location()).Format("Jan 2"),
		Content:               content,
		IsPrivate:             true,
		SentimentPolarity:     sentiment.Polarity,
		SentimentSubjectivity: sentiment.Subjectivity,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
