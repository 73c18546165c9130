package analysis

import "time"

// monday is 2024-01-01.
var monday = time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func day(offset int) time.Time    { return monday.AddDate(0, 0, offset) }

func rec(offset, mood int) Record {
	return Record{Timestamp: day(offset), MoodScore: mood}
}

// daily builds one record per consecutive day starting on monday.
func daily(moods ...int) []Record {
	out := make([]Record, len(moods))
	for i, m := range moods {
		out[i] = rec(i, m)
	}
	return out
}
