package domain

import (
	"errors"
	"strings"
)

var (
	ErrActionNotFound  = errors.New("action not found")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidDates    = errors.New("invalid action dates")
	ErrUnknownMutation = errors.New("unknown mutation")
	ErrEmptyIDList     = errors.New("empty id list")
	ErrInvalidAction   = errors.New("invalid action")
)

// DateRuleError reports the date rules an edit would break.
type DateRuleError struct {
	Issues []DateIssue
}

func (e *DateRuleError) Error() string {
	kinds := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		kinds = append(kinds, string(issue.Kind))
	}
	return ErrInvalidDates.Error() + ": " + strings.Join(kinds, ", ")
}

func (e *DateRuleError) Unwrap() error {
	return ErrInvalidDates
}
