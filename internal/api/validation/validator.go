package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/blaisecz/mood-tracker/pkg/problem"
	"github.com/go-playground/validator/v10"
)

// MaxEmotionLength is the longest accepted emotion label.
const MaxEmotionLength = 32

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom timezone validator
	validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		tz := fl.Field().String()
		_, err := time.LoadLocation(tz)
		return err == nil
	})

	validate.RegisterValidation("emotion", func(fl validator.FieldLevel) bool {
		return ValidEmotion(fl.Field().String())
	})
}

// ValidEmotion reports whether label is a usable emotion: 1 to 32 characters
// after trimming, made of letters, spaces, hyphens and apostrophes.
func ValidEmotion(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" || utf8.RuneCountInString(label) > MaxEmotionLength {
		return false
	}
	for _, r := range label {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []problem.FieldError{{Field: "body", Message: err.Error()}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   fieldPath(err),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

// fieldPath turns "CreateMoodEntryRequest.emotions[2]" into "emotions[2]".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		switch err.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return "must contain at most " + err.Param() + " items"
		case reflect.String:
			return "must be at most " + err.Param() + " characters"
		default:
			return "must be at most " + err.Param()
		}
	case "oneof":
		return "must be one of: " + err.Param()
	case "timezone":
		return "must be a valid IANA timezone"
	case "emotion":
		return "must be 1-32 letters, spaces, hyphens or apostrophes"
	default:
		return "is invalid"
	}
}
