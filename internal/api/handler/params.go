package handler

import (
	"net/http"
	"strconv"

	"github.com/blaisecz/mood-tracker/pkg/problem"
)

// parseDaysParam reads an optional day-count query parameter bounded to [1, max].
// A missing parameter yields defaultValue; 0 lets the service pick its default.
func parseDaysParam(r *http.Request, name string, defaultValue, max int) (int, []problem.FieldError) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 1 || parsed > max {
		return 0, []problem.FieldError{{
			Field:   name,
			Message: "must be an integer between 1 and " + strconv.Itoa(max),
		}}
	}
	return parsed, nil
}
