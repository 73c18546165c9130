package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/blaisecz/mood-tracker/internal/domain"
	"github.com/blaisecz/mood-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultStatsWindowDays is the default window for descriptive statistics.
const DefaultStatsWindowDays = 30

// StatsService computes descriptive mood statistics from mood entries.
type StatsService interface {
	// Compute calculates statistics for a user over the last windowDays days.
	Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.MoodStatsResponse, error)
	// ComputeWindow calculates statistics for a specific time range.
	ComputeWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.MoodStatsResponse, error)
}

type statsService struct {
	moodEntryRepo repository.MoodEntryRepository
	userRepo      repository.UserRepository
	now           func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(moodEntryRepo repository.MoodEntryRepository, userRepo repository.UserRepository) StatsService {
	return &statsService{
		moodEntryRepo: moodEntryRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

func (s *statsService) Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.MoodStatsResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}
	if windowDays > MaxWindowDays {
		return nil, domain.ErrInvalidInput
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	to := s.now().UTC()
	from := to.AddDate(0, 0, -windowDays)

	return s.ComputeWindow(ctx, userID, from, to)
}

func (s *statsService) ComputeWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.MoodStatsResponse, error) {
	tracer := otel.Tracer("mood-tracker-api/stats")
	ctx, span := tracer.Start(ctx, "MoodStats.ComputeWindow",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("window.from", from.Format(time.RFC3339)),
			attribute.String("window.to", to.Format(time.RFC3339)),
		),
	)
	defer span.End()

	// Attach input payload for Langfuse
	inputPayload := map[string]any{
		"user_id": userID.String(),
		"from":    from.Format(time.RFC3339),
		"to":      to.Format(time.RFC3339),
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	entries, err := s.moodEntryRepo.ListByLoggedRange(ctx, userID, from, to)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := summarizeEntries(entries)
	result.Window = domain.Window{From: from, To: to}

	span.SetAttributes(attribute.Int("entries.count", result.EntryCount))
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return result, nil
}

// summarizeEntries computes the statistics of entries. Optional metrics only
// count the entries that reported them.
func summarizeEntries(entries []domain.MoodEntry) *domain.MoodStatsResponse {
	result := &domain.MoodStatsResponse{EntryCount: len(entries)}
	if len(entries) == 0 {
		return result
	}

	var mood, energy, stress, sleep []float64
	days := make(map[string]struct{})

	for i := range entries {
		e := &entries[i]
		mood = append(mood, float64(e.MoodScore))
		result.Categories.Add(e.MoodScore)

		if e.EnergyLevel != nil {
			energy = append(energy, float64(*e.EnergyLevel))
		}
		if e.StressLevel != nil {
			stress = append(stress, float64(*e.StressLevel))
		}
		if e.SleepHours != nil {
			sleep = append(sleep, *e.SleepHours)
		}

		// Days are counted in the entry's local calendar
		days[e.LoggedAt.In(e.Location()).Format("2006-01-02")] = struct{}{}
	}

	result.DaysLogged = len(days)
	result.Mood = computeStats(mood)
	result.Energy = computeStats(energy)
	result.Stress = computeStats(stress)
	result.Sleep = computeStats(sleep)

	return result
}

// computeStats calculates descriptive statistics for a slice of values.
func computeStats(values []float64) domain.DescriptiveStats {
	if len(values) == 0 {
		return domain.DescriptiveStats{}
	}

	sum := 0.0
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values {
		sum += v
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	avg := sum / float64(len(values))

	// Sample standard deviation
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	std := 0.0
	if len(values) > 1 {
		std = math.Sqrt(sumSquares / float64(len(values)-1))
	}

	return domain.DescriptiveStats{
		Avg:     math.Round(avg*100) / 100,
		Std:     math.Round(std*100) / 100,
		Min:     math.Round(minVal*100) / 100,
		Max:     math.Round(maxVal*100) / 100,
		Samples: len(values),
	}
}
