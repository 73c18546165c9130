package analysis

import "fmt"

const (
	// MinRecommendationRecords is the smallest log that gets tailored advice.
	MinRecommendationRecords = 3
	// RecentWindow is how many of the latest entries the averages cover.
	RecentWindow = 7

	LowSleepHours    = 7.0
	HighStressLevel  = 7.0
	LowMoodScore     = 5.0
	ModerateMoodMark = 7.0
)

var keepTracking = Recommendation{
	Category:    RecommendGeneral,
	Title:       "Keep Tracking",
	Description: "Continue logging your mood daily to get personalized insights and recommendations.",
	Priority:    PriorityMedium,
}

// recentAverages are the inputs of the recommendation rules.
type recentAverages struct {
	mood   float64
	sleep  float64
	stress float64
}

// recommendationRule is evaluated independently of the others, so low mood
// yields both a support and an activity recommendation.
type recommendationRule struct {
	name  string
	when  func(a recentAverages) bool
	build func(a recentAverages) Recommendation
}

var recommendationRules = []recommendationRule{
	{
		name: "sleep",
		when: func(a recentAverages) bool { return a.sleep < LowSleepHours },
		build: func(a recentAverages) Recommendation {
			return Recommendation{
				Category:    RecommendSleep,
				Title:       "Improve Sleep Quality",
				Description: fmt.Sprintf("You're averaging %.1f hours of sleep. Try to aim for 7-9 hours for better mood and energy.", a.sleep),
				Priority:    PriorityHigh,
			}
		},
	},
	{
		name: "stress",
		when: func(a recentAverages) bool { return a.stress > HighStressLevel },
		build: func(recentAverages) Recommendation {
			return Recommendation{
				Category:    RecommendStress,
				Title:       "Manage Stress Levels",
				Description: "Your stress levels have been high. Consider meditation, deep breathing, or talking to someone.",
				Priority:    PriorityHigh,
			}
		},
	},
	{
		name: "support",
		when: func(a recentAverages) bool { return a.mood < LowMoodScore },
		build: func(recentAverages) Recommendation {
			return Recommendation{
				Category:    RecommendSupport,
				Title:       "Seek Support",
				Description: "Your mood has been low recently. Consider reaching out to friends, family, or a mental health professional.",
				Priority:    PriorityHigh,
			}
		},
	},
	{
		name: "activity",
		when: func(a recentAverages) bool { return a.mood < ModerateMoodMark },
		build: func(recentAverages) Recommendation {
			return Recommendation{
				Category:    RecommendActivity,
				Title:       "Try Mood-Boosting Activities",
				Description: "Consider activities like exercise, spending time in nature, or pursuing hobbies you enjoy.",
				Priority:    PriorityMedium,
			}
		},
	},
	{
		name: "positive",
		when: func(a recentAverages) bool { return a.mood > ModerateMoodMark },
		build: func(recentAverages) Recommendation {
			return Recommendation{
				Category:    RecommendPositive,
				Title:       "Keep It Up!",
				Description: "You're doing great! Continue with whatever strategies are working for you.",
				Priority:    PriorityLow,
			}
		},
	},
}

// recommend expects records in chronological order.
func recommend(records []Record) []Recommendation {
	if len(records) < MinRecommendationRecords {
		return []Recommendation{keepTracking}
	}

	avgs := averageRecent(records)

	out := []Recommendation{}
	for _, rule := range recommendationRules {
		if rule.when(avgs) {
			out = append(out, rule.build(avgs))
		}
	}
	return out
}

// averageRecent averages the latest RecentWindow records. Sleep and stress are
// averaged over the records that report them.
func averageRecent(records []Record) recentAverages {
	recent := records
	if len(recent) > RecentWindow {
		recent = recent[len(recent)-RecentWindow:]
	}

	moods := make([]float64, 0, len(recent))
	var sleeps, stresses []float64
	for _, r := range recent {
		moods = append(moods, float64(r.MoodScore))
		if r.SleepHours != nil {
			sleeps = append(sleeps, *r.SleepHours)
		}
		if r.StressLevel != nil {
			stresses = append(stresses, float64(*r.StressLevel))
		}
	}

	avgs := recentAverages{
		mood:   mean(moods),
		sleep:  DefaultSleepHours,
		stress: DefaultStressLevel,
	}
	if len(sleeps) > 0 {
		avgs.sleep = mean(sleeps)
	}
	if len(stresses) > 0 {
		avgs.stress = mean(stresses)
	}
	return avgs
}
