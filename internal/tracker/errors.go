package tracker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotToday is returned when a completion toggle targets any day but today.
	ErrNotToday = errors.New("you can only toggle completion for today's date")
	// ErrPastDate is returned when a journal entry is written, edited or
	// deleted for a day before today.
	ErrPastDate = errors.New("journal entries can only be changed for today or later")
	// ErrBuiltInCategory is returned when deleting one of the default categories.
	ErrBuiltInCategory = errors.New("built-in categories cannot be deleted")
	// ErrWrongPassword is returned when a journal password does not match.
	ErrWrongPassword = errors.New("incorrect password")
	// ErrNoPassword is returned when unlocking a journal that has no password yet.
	ErrNoPassword = errors.New("no journal password has been set")
	// ErrPasswordSet is returned when setting a password a second time.
	ErrPasswordSet = errors.New("a journal password is already set")
	// ErrNotFound is returned when an id or name does not match any record.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports user input that cannot be accepted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError names what could not be found and close matches, if any.
type NotFoundError struct {
	Kind        string
	Ref         string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.Kind, e.Ref)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(quoteAll(e.Suggestions), ", "))
	}
	return msg
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func quoteAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
