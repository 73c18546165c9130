package analysis

import (
	"fmt"
	"math"
	"time"
)

const (
	// MinPatternRecords is the smallest log the detector looks at.
	MinPatternRecords = 7

	// Weekly pattern thresholds
	MinWeekdaySamples     = 2
	MinQualifyingWeekdays = 3
	WeeklySpreadThreshold = 1.0

	// Correlation insights need strictly more samples than this.
	MinCorrelationSamples = 5
	CorrelationThreshold  = 0.3

	// Trend compares the last TrendWindow entries with the TrendWindow before them.
	TrendWindow         = 7
	MinTrendRecords     = 2 * TrendWindow
	TrendDeltaThreshold = 0.5

	// NegativeEmotionShare is the fraction of entries a negative label must
	// exceed before it is reported.
	NegativeEmotionShare = 0.3
)

// series holds the per-call aggregates every rule reads from.
type series struct {
	records []resolved
	mood    []float64
	sleep   []float64
	stress  []float64
}

func newSeries(records []resolved) *series {
	s := &series{
		records: records,
		mood:    make([]float64, len(records)),
		sleep:   make([]float64, len(records)),
		stress:  make([]float64, len(records)),
	}
	for i, r := range records {
		s.mood[i] = r.mood
		s.sleep[i] = r.sleep
		s.stress[i] = r.stress
	}
	return s
}

// insightRule is one independent predicate→effect pair. Rules run in order
// and each may contribute at most one insight.
type insightRule struct {
	name  string
	apply func(s *series) (Insight, bool)
}

var insightRules = []insightRule{
	{name: "sleep_correlation", apply: sleepCorrelation},
	{name: "stress_correlation", apply: stressCorrelation},
	{name: "trend", apply: moodTrend},
	{name: "dominant_emotion", apply: dominantEmotion},
}

// detect runs the weekly pattern and every insight rule over records, which
// must already be in chronological order.
func detect(records []resolved) ([]Pattern, []Insight) {
	patterns := []Pattern{}
	insights := []Insight{}

	if len(records) < MinPatternRecords {
		return patterns, insights
	}

	s := newSeries(records)

	if p, ok := weeklyPattern(s); ok {
		patterns = append(patterns, p)
	}

	for _, rule := range insightRules {
		if in, ok := rule.apply(s); ok {
			insights = append(insights, in)
		}
	}

	return patterns, insights
}

type weekdayAverage struct {
	day time.Weekday
	avg float64
}

func weeklyPattern(s *series) (Pattern, bool) {
	buckets := make(map[time.Weekday][]float64, 7)
	var order []time.Weekday
	for _, r := range s.records {
		day := r.timestamp.Weekday()
		if _, ok := buckets[day]; !ok {
			order = append(order, day)
		}
		buckets[day] = append(buckets[day], r.mood)
	}

	var averages []weekdayAverage
	for _, day := range order {
		if len(buckets[day]) >= MinWeekdaySamples {
			averages = append(averages, weekdayAverage{day: day, avg: mean(buckets[day])})
		}
	}
	if len(averages) < MinQualifyingWeekdays {
		return Pattern{}, false
	}

	best, worst := averages[0], averages[0]
	for _, a := range averages[1:] {
		if a.avg > best.avg {
			best = a
		}
		if a.avg < worst.avg {
			worst = a
		}
	}

	if best.avg-worst.avg <= WeeklySpreadThreshold {
		return Pattern{}, false
	}

	return Pattern{
		Type: PatternWeekly,
		Description: fmt.Sprintf("You tend to feel best on %ss (avg: %.1f) and worst on %ss (avg: %.1f)",
			best.day, best.avg, worst.day, worst.avg),
		BestDay:  best.day.String(),
		BestAvg:  round1(best.avg),
		WorstDay: worst.day.String(),
		WorstAvg: round1(worst.avg),
	}, true
}

// sleepCorrelation reports any strong correlation. Negative correlations are
// labelled neutral rather than warning.
func sleepCorrelation(s *series) (Insight, bool) {
	if len(s.sleep) <= MinCorrelationSamples {
		return Insight{}, false
	}
	r, ok := pearson(s.sleep, s.mood)
	if !ok || math.Abs(r) <= CorrelationThreshold {
		return Insight{}, false
	}

	in := Insight{
		Category: InsightSleep,
		Evidence: Evidence{Correlation: round2(r), SampleSize: len(s.sleep)},
	}
	if r > 0 {
		in.Polarity = PolarityPositive
		in.Description = fmt.Sprintf("Better sleep is correlated with better mood (correlation: %.2f)", r)
	} else {
		in.Polarity = PolarityNeutral
		in.Description = fmt.Sprintf("Sleep patterns may be affecting your mood (correlation: %.2f)", r)
	}
	return in, true
}

// stressCorrelation only reports stress that moves against mood.
func stressCorrelation(s *series) (Insight, bool) {
	if len(s.stress) <= MinCorrelationSamples {
		return Insight{}, false
	}
	r, ok := pearson(s.stress, s.mood)
	if !ok || r >= -CorrelationThreshold {
		return Insight{}, false
	}

	return Insight{
		Category:    InsightStress,
		Polarity:    PolarityWarning,
		Description: fmt.Sprintf("High stress levels are negatively impacting your mood (correlation: %.2f)", r),
		Evidence:    Evidence{Correlation: round2(r), SampleSize: len(s.stress)},
	}, true
}

// moodTrend compares positional windows, not calendar weeks. Gaps in logging
// stretch the windows.
func moodTrend(s *series) (Insight, bool) {
	n := len(s.mood)
	if n < MinTrendRecords {
		return Insight{}, false
	}

	recent := mean(s.mood[n-TrendWindow:])
	previous := mean(s.mood[n-2*TrendWindow : n-TrendWindow])
	delta := recent - previous

	evidence := Evidence{
		Delta:       round2(delta),
		RecentAvg:   round2(recent),
		PreviousAvg: round2(previous),
		SampleSize:  2 * TrendWindow,
	}

	switch {
	case delta > TrendDeltaThreshold:
		return Insight{
			Category:    InsightTrend,
			Polarity:    PolarityPositive,
			Description: fmt.Sprintf("Your mood is improving! Recent average: %.1f vs previous: %.1f", recent, previous),
			Evidence:    evidence,
		}, true
	case delta < -TrendDeltaThreshold:
		return Insight{
			Category:    InsightTrend,
			Polarity:    PolarityWarning,
			Description: "Your mood has been declining recently. Consider seeking support or trying stress management techniques.",
			Evidence:    evidence,
		}, true
	}
	return Insight{}, false
}

func dominantEmotion(s *series) (Insight, bool) {
	counts := make(map[string]int)
	var order []string
	for _, r := range s.records {
		for _, label := range r.emotions {
			if _, ok := counts[label]; !ok {
				order = append(order, label)
			}
			counts[label]++
		}
	}
	if len(order) == 0 {
		return Insight{}, false
	}

	top := order[0]
	for _, label := range order[1:] {
		if counts[label] > counts[top] {
			top = label
		}
	}
	count := counts[top]
	evidence := Evidence{Emotion: top, Count: count, SampleSize: len(s.records)}

	if _, ok := negativeEmotions[top]; ok && float64(count) > float64(len(s.records))*NegativeEmotionShare {
		return Insight{
			Category:    InsightEmotion,
			Polarity:    PolarityWarning,
			Description: fmt.Sprintf("You've been feeling %s frequently. Consider talking to someone or practicing self-care.", top),
			Evidence:    evidence,
		}, true
	}
	if _, ok := positiveEmotions[top]; ok {
		return Insight{
			Category:    InsightEmotion,
			Polarity:    PolarityPositive,
			Description: fmt.Sprintf("Great to see you're feeling %s often! Keep up whatever you're doing.", top),
			Evidence:    evidence,
		}, true
	}
	return Insight{}, false
}
