package analysis

import (
	"strings"
	"unicode"
)

var (
	positiveWords = map[string]struct{}{
		"good": {}, "great": {}, "excellent": {}, "happy": {}, "wonderful": {},
		"amazing": {}, "fantastic": {}, "love": {}, "joy": {}, "perfect": {},
	}
	negativeWords = map[string]struct{}{
		"bad": {}, "terrible": {}, "awful": {}, "horrible": {}, "hate": {},
		"worst": {}, "sad": {}, "depressed": {}, "angry": {}, "frustrated": {},
	}
)

// Sentiment is a word-list score of free text.
type Sentiment struct {
	// Polarity in [-1, 1]
	Polarity float64 `json:"polarity" example:"0.2"`
	// Subjectivity in [0, 1]
	Subjectivity float64 `json:"subjectivity" example:"0.2"`
}

// ScoreSentiment counts vocabulary hits in text. Text with no sentiment words
// scores zero on both axes.
func ScoreSentiment(text string) Sentiment {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return Sentiment{}
	}

	var positive, negative int
	for _, w := range words {
		w = strings.TrimFunc(w, unicode.IsPunct)
		if _, ok := positiveWords[w]; ok {
			positive++
		} else if _, ok := negativeWords[w]; ok {
			negative++
		}
	}

	if positive+negative == 0 {
		return Sentiment{}
	}

	n := float64(len(words))
	return Sentiment{
		Polarity:     clamp(float64(positive-negative)/n, -1, 1),
		Subjectivity: clamp(float64(positive+negative)/n, 0, 1),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
