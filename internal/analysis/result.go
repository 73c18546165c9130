package analysis

// PatternType tags a detected regularity.
type PatternType string

const (
	PatternWeekly PatternType = "weekly"
)

// InsightCategory is the subject of an insight.
type InsightCategory string

const (
	InsightSleep   InsightCategory = "sleep"
	InsightStress  InsightCategory = "stress"
	InsightTrend   InsightCategory = "trend"
	InsightEmotion InsightCategory = "emotion"
)

// Polarity labels how an insight should be presented.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNeutral  Polarity = "neutral"
	PolarityWarning  Polarity = "warning"
)

// RecommendationCategory groups recommendations.
type RecommendationCategory string

const (
	RecommendGeneral  RecommendationCategory = "general"
	RecommendSleep    RecommendationCategory = "sleep"
	RecommendStress   RecommendationCategory = "stress"
	RecommendSupport  RecommendationCategory = "support"
	RecommendActivity RecommendationCategory = "activity"
	RecommendPositive RecommendationCategory = "positive"
)

// Priority orders recommendations for display.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Pattern is a recurring structural regularity in the log.
// @Description Weekday mood regularity.
type Pattern struct {
	Type        PatternType `json:"type" example:"weekly"`
	Description string      `json:"description" example:"You tend to feel best on Saturdays (avg: 8.5) and worst on Mondays (avg: 5.0)"`
	BestDay     string      `json:"best_day" example:"Saturday"`
	BestAvg     float64     `json:"best_avg" example:"8.5"`
	WorstDay    string      `json:"worst_day" example:"Monday"`
	WorstAvg    float64     `json:"worst_avg" example:"5.0"`
}

// Evidence carries the numbers an insight was derived from. Only the fields
// relevant to the insight category are set.
type Evidence struct {
	// Pearson correlation coefficient (sleep, stress)
	Correlation float64 `json:"correlation,omitempty" example:"0.82"`
	// Recent minus previous average mood (trend)
	Delta float64 `json:"delta,omitempty" example:"-1.4"`
	// Average mood of the most recent 7 entries (trend)
	RecentAvg float64 `json:"recent_avg,omitempty" example:"4.6"`
	// Average mood of the 7 entries before those (trend)
	PreviousAvg float64 `json:"previous_avg,omitempty" example:"6.0"`
	// Dominant label (emotion)
	Emotion string `json:"emotion,omitempty" example:"anxious"`
	// Occurrences of the dominant label (emotion)
	Count int `json:"count,omitempty" example:"5"`
	// Number of entries the statistic was computed over
	SampleSize int `json:"sample_size" example:"14"`
}

// Insight is a single statistical observation with a polarity label.
// @Description Statistical observation about the mood log.
type Insight struct {
	Category    InsightCategory `json:"category" example:"sleep"`
	Polarity    Polarity        `json:"polarity" example:"positive"`
	Description string          `json:"description" example:"Better sleep is correlated with better mood (correlation: 0.82)"`
	Evidence    Evidence        `json:"evidence"`
}

// Recommendation is an actionable suggestion.
// @Description Actionable suggestion keyed by category and priority.
type Recommendation struct {
	Category    RecommendationCategory `json:"category" example:"sleep"`
	Title       string                 `json:"title" example:"Improve Sleep Quality"`
	Description string                 `json:"description" example:"You're averaging 6.1 hours of sleep. Try to aim for 7-9 hours for better mood and energy."`
	Priority    Priority               `json:"priority" example:"high"`
}

// Result is the complete output of one analysis.
// @Description Patterns, insights and recommendations for a mood log.
type Result struct {
	Patterns        []Pattern        `json:"patterns"`
	Insights        []Insight        `json:"insights"`
	Recommendations []Recommendation `json:"recommendations"`
}
