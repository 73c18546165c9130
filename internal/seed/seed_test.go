package seed

import (
	"math/rand"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEntries(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	user := Users[1]

	entries := GenerateEntries(user, now, seededDays, rand.New(rand.NewSource(1)))
	require.Len(t, entries, seededDays)

	seen := make(map[string]bool)
	for i, e := range entries {
		assert.Equal(t, user.ID, e.UserID)
		assert.Equal(t, user.Timezone, e.LocalTimezone)
		assert.True(t, e.LoggedAt.Before(now), "entry %d is in the future", i)
		assert.Equal(t, time.UTC, e.LoggedAt.Location())
		assert.NotEmpty(t, e.Emotions)
		require.NotNil(t, e.ClientRequestID)
		assert.False(t, seen[*e.ClientRequestID], "duplicate client request id %s", *e.ClientRequestID)
		seen[*e.ClientRequestID] = true
		if i > 0 {
			assert.True(t, e.LoggedAt.After(entries[i-1].LoggedAt), "entries must be chronological")
		}
	}

	// Every generated record passes engine validation.
	require.NoError(t, analysis.Validate(domain.ToRecords(entries)))
}

func TestGenerateEntries_Deterministic(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	a := GenerateEntries(Users[0], now, 10, rand.New(rand.NewSource(7)))
	b := GenerateEntries(Users[0], now, 10, rand.New(rand.NewSource(7)))

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].MoodScore, b[i].MoodScore)
		assert.Equal(t, a[i].LoggedAt, b[i].LoggedAt)
		assert.Equal(t, a[i].Emotions, b[i].Emotions)
	}
}

func TestGenerateEntries_ProducesInsights(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	entries := GenerateEntries(Users[0], now, seededDays, rand.New(rand.NewSource(1)))

	result, err := analysis.NewEngine().Analyze(domain.ToRecords(entries))
	require.NoError(t, err)

	// Weekend lift against Monday dip is well above the spread threshold.
	assert.NotEmpty(t, result.Patterns)
	assert.NotEmpty(t, result.Insights)
}

func TestWeeklyJournal(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	entries := GenerateEntries(Users[2], now, 14, rand.New(rand.NewSource(3)))

	var sundays int
	for i := range entries {
		entries[i].ID = uuid.New()
		journal := WeeklyJournal(entries[i])

		local := entries[i].LoggedAt.In(entries[i].Location())
		if local.Weekday() != time.Sunday {
			assert.Nil(t, journal, "entry on %s should not get a journal", local.Weekday())
			continue
		}
		sundays++

		require.NotNil(t, journal)
		require.NotNil(t, journal.MoodEntryID)
		assert.Equal(t, entries[i].ID, *journal.MoodEntryID)
		assert.Equal(t, entries[i].UserID, journal.UserID)
		assert.GreaterOrEqual(t, len(journal.Content), domain.MinJournalContentLength)
		assert.Equal(t, journal.ID, WeeklyJournal(entries[i]).ID, "journal ID must be stable across reseeds")
	}
	assert.Equal(t, 2, sundays)
}
