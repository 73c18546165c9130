package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrDuplicateRequest = errors.New("duplicate client request")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrFutureEntry is returned for entries logged ahead of the server clock.
	ErrFutureEntry = fmt.Errorf("%w: logged_at is in the future", ErrInvalidInput)

	// ErrJournalTooShort is returned when journal content is under
	// MinJournalContentLength characters once trimmed.
	ErrJournalTooShort = fmt.Errorf("%w: journal content is too short", ErrInvalidInput)

	// ErrLinkedMoodEntry is returned when mood_entry_id does not name an entry of the same user.
	ErrLinkedMoodEntry = fmt.Errorf("%w: mood entry does not exist", ErrInvalidInput)
)
