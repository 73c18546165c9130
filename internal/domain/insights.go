package domain

import (
	"time"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/google/uuid"
)

// KeepLoggingNotice is returned with insights when too few entries exist.
const KeepLoggingNotice = "Keep logging your mood for personalized AI insights!"

// DescriptiveStats holds basic statistical measures.
// @Description Basic statistical measures for a metric.
type DescriptiveStats struct {
	Avg float64 `json:"avg" example:"6.4"`
	Std float64 `json:"std" example:"1.3"`
	Min float64 `json:"min" example:"3"`
	Max float64 `json:"max" example:"9"`
	// Number of entries reporting the metric
	Samples int `json:"samples" example:"28"`
}

// CategoryDistribution counts entries per mood category.
// @Description Number of entries per mood category.
type CategoryDistribution struct {
	Positive int `json:"positive" example:"10"`
	Neutral  int `json:"neutral" example:"12"`
	Low      int `json:"low" example:"5"`
	Negative int `json:"negative" example:"1"`
}

// Add counts one entry with the given score.
func (d *CategoryDistribution) Add(score int) {
	switch CategoryFor(score) {
	case MoodPositive:
		d.Positive++
	case MoodNeutral:
		d.Neutral++
	case MoodLow:
		d.Low++
	default:
		d.Negative++
	}
}

// Window is a closed time range.
type Window struct {
	From time.Time `json:"from" example:"2024-01-01T00:00:00Z"`
	To   time.Time `json:"to" example:"2024-01-31T23:59:59Z"`
}

// MoodStatsResponse is the response for the stats endpoint.
// @Description Descriptive mood statistics over a window.
type MoodStatsResponse struct {
	Window Window `json:"window"`
	// Number of entries in the window
	EntryCount int `json:"entry_count" example:"28"`
	// Number of distinct local days with at least one entry
	DaysLogged int                  `json:"days_logged" example:"25"`
	Mood       DescriptiveStats     `json:"mood"`
	Energy     DescriptiveStats     `json:"energy"`
	Stress     DescriptiveStats     `json:"stress"`
	Sleep      DescriptiveStats     `json:"sleep"`
	Categories CategoryDistribution `json:"categories"`
}

// MoodDataPoint is one entry prepared for charting.
// @Description Mood entry enriched with note sentiment and emotion score.
type MoodDataPoint struct {
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Local calendar date of the entry
	Date        string    `json:"date" example:"2024-01-15"`
	LoggedAt    time.Time `json:"logged_at" example:"2024-01-15T21:00:00+01:00"`
	MoodScore   int       `json:"mood_score" example:"7"`
	EnergyLevel *int      `json:"energy_level,omitempty" example:"6"`
	StressLevel *int      `json:"stress_level,omitempty" example:"4"`
	SleepHours  *float64  `json:"sleep_hours,omitempty" example:"7.5"`
	Emotions    []string  `json:"emotions" example:"calm"`
	Notes       string    `json:"notes,omitempty" example:"Good day"`
	// Mean weight of the emotion labels
	EmotionScore float64            `json:"emotion_score" example:"1"`
	Sentiment    analysis.Sentiment `json:"sentiment"`
}

// ToDataPoint converts the entry for the chart endpoint.
func (e *MoodEntry) ToDataPoint() MoodDataPoint {
	local := e.LoggedAt.In(e.Location())
	emotions := analysis.NormalizeEmotions(e.Emotions)
	if emotions == nil {
		emotions = []string{}
	}

	return MoodDataPoint{
		ID:           e.ID,
		Date:         local.Format("2006-01-02"),
		LoggedAt:     local,
		MoodScore:    e.MoodScore,
		EnergyLevel:  e.EnergyLevel,
		StressLevel:  e.StressLevel,
		SleepHours:   e.SleepHours,
		Emotions:     emotions,
		Notes:        e.Notes,
		EmotionScore: analysis.ScoreEmotions(emotions),
		Sentiment:    analysis.ScoreSentiment(e.Notes),
	}
}

// MoodDataResponse is the response for the chart data endpoint.
// @Description Mood entries of the last N days, oldest first.
type MoodDataResponse struct {
	Days int             `json:"days" example:"30"`
	Data []MoodDataPoint `json:"data"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Rule-based patterns, insights and recommendations.
type InsightsResponse struct {
	Patterns        []analysis.Pattern        `json:"patterns"`
	Insights        []analysis.Insight        `json:"insights"`
	Recommendations []analysis.Recommendation `json:"recommendations"`
	// Number of entries fed to the engine
	EntriesAnalyzed int `json:"entries_analyzed" example:"42"`
	// Analysis window in days
	WindowDays int `json:"window_days" example:"90"`
	// Informational message when there is little data
	Notice string `json:"notice,omitempty" example:"Keep logging your mood for personalized AI insights!"`
	// Trace ID for feedback (optional, only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// Result returns the engine part of the response.
func (r *InsightsResponse) Result() *analysis.Result {
	return &analysis.Result{
		Patterns:        r.Patterns,
		Insights:        r.Insights,
		Recommendations: r.Recommendations,
	}
}

// CoachSummary contains the structured output from the LLM.
// @Description LLM-generated narrative over the rule-based analysis.
type CoachSummary struct {
	// Summary of recent mood (2-3 sentences)
	Summary string `json:"summary" example:"Your mood has been steady this week..."`
	// Notable observations (2-5 items)
	Highlights []string `json:"highlights" example:"Sleep and mood move together"`
	// Behavioral suggestions (2-4 items)
	Suggestions []string `json:"suggestions" example:"Keep a regular bedtime"`
}

// CoachSummaryResponse is the response for the summary endpoint.
// @Description LLM narrative plus the analysis it was based on.
type CoachSummaryResponse struct {
	Coach           CoachSummary `json:"coach"`
	EntriesAnalyzed int          `json:"entries_analyzed" example:"42"`
	TraceID         string       `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// InsightsFeedbackRequest is the request body for insights feedback.
// @Description Request body for submitting feedback on insights.
type InsightsFeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" validate:"required,max=64" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000" example:"The suggestions were helpful!"`
}
