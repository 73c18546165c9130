// Package analysis turns a sequence of mood log entries into weekday patterns,
// statistical insights and rule-based recommendations.
//
// The engine is a pure function of its input: it keeps no state between calls
// and never modifies the records it is given, so a single Engine can serve
// concurrent callers.
package analysis

import "slices"

// Engine runs the pattern detector and the recommendation rules.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Analyze validates records and returns the full result. Records may arrive in
// any order; they are analyzed oldest first.
func (e *Engine) Analyze(records []Record) (*Result, error) {
	ordered, err := prepare(records)
	if err != nil {
		return nil, err
	}

	patterns, insights := detect(resolveAll(ordered))

	return &Result{
		Patterns:        patterns,
		Insights:        insights,
		Recommendations: recommend(ordered),
	}, nil
}

// FindPatterns returns only the weekly patterns and insights.
func (e *Engine) FindPatterns(records []Record) ([]Pattern, []Insight, error) {
	ordered, err := prepare(records)
	if err != nil {
		return nil, nil, err
	}
	patterns, insights := detect(resolveAll(ordered))
	return patterns, insights, nil
}

// Recommend returns only the recommendations.
func (e *Engine) Recommend(records []Record) ([]Recommendation, error) {
	ordered, err := prepare(records)
	if err != nil {
		return nil, err
	}
	return recommend(ordered), nil
}

// prepare validates records and returns a chronologically sorted copy.
func prepare(records []Record) ([]Record, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}
	ordered := slices.Clone(records)
	slices.SortStableFunc(ordered, func(a, b Record) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return ordered, nil
}

func resolveAll(records []Record) []resolved {
	out := make([]resolved, len(records))
	for i, r := range records {
		out[i] = resolve(r)
	}
	return out
}
