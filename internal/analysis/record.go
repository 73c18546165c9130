package analysis

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied to optional metrics before any statistic is computed.
const (
	DefaultEnergyLevel = 5
	DefaultStressLevel = 5
	DefaultSleepHours  = 7.5
)

// ErrInvalidRecord is returned when a record carries out-of-range values.
var ErrInvalidRecord = errors.New("invalid mood record")

// Record is a single self-reported mood log entry as seen by the engine.
// Optional metrics are nil when the user did not report them.
type Record struct {
	Timestamp   time.Time `json:"timestamp" validate:"required"`
	MoodScore   int       `json:"mood_score" validate:"min=1,max=10"`
	EnergyLevel *int      `json:"energy_level,omitempty" validate:"omitempty,min=1,max=10"`
	StressLevel *int      `json:"stress_level,omitempty" validate:"omitempty,min=1,max=10"`
	SleepHours  *float64  `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24"`
	Emotions    []string  `json:"emotions,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// Weekday returns the day of the week of the record in its own location.
func (r Record) Weekday() time.Weekday {
	return r.Timestamp.Weekday()
}

// InvalidRecordError describes the first offending field of a record.
type InvalidRecordError struct {
	Index  int
	Field  string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("%s: record %d: %s %s", ErrInvalidRecord, e.Index, e.Field, e.Reason)
}

func (e *InvalidRecordError) Unwrap() error {
	return ErrInvalidRecord
}

var validate = validator.New()

// Validate checks every record and returns an *InvalidRecordError for the first
// record that fails.
func Validate(records []Record) error {
	for i := range records {
		err := validate.Struct(records[i])
		if err == nil {
			continue
		}

		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			return &InvalidRecordError{
				Index:  i,
				Field:  fieldName(fe.Field()),
				Reason: reason(fe),
			}
		}
		return &InvalidRecordError{Index: i, Field: "record", Reason: err.Error()}
	}
	return nil
}

// resolved is a record with defaults filled in and labels normalized.
type resolved struct {
	timestamp time.Time
	mood      float64
	energy    float64
	stress    float64
	sleep     float64
	emotions  []string
}

func resolve(r Record) resolved {
	out := resolved{
		timestamp: r.Timestamp,
		mood:      float64(r.MoodScore),
		energy:    DefaultEnergyLevel,
		stress:    DefaultStressLevel,
		sleep:     DefaultSleepHours,
		emotions:  NormalizeEmotions(r.Emotions),
	}
	if r.EnergyLevel != nil {
		out.energy = float64(*r.EnergyLevel)
	}
	if r.StressLevel != nil {
		out.stress = float64(*r.StressLevel)
	}
	// A reported 0 is a sleepless night, not a missing value
	if r.SleepHours != nil {
		out.sleep = *r.SleepHours
	}
	return out
}

// NormalizeEmotions lowercases and trims labels, dropping blanks and duplicates
// while keeping first-seen order.
func NormalizeEmotions(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		l := strings.ToLower(strings.TrimSpace(label))
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

func fieldName(field string) string {
	switch field {
	case "MoodScore":
		return "mood_score"
	case "EnergyLevel":
		return "energy_level"
	case "StressLevel":
		return "stress_level"
	case "SleepHours":
		return "sleep_hours"
	case "Timestamp":
		return "timestamp"
	default:
		return strings.ToLower(field)
	}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
