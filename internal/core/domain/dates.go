package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format used for action timestamps.
const DateLayout = "2006-01-02 15:04:05"

var dateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

type DateIssueKind string

const (
	IssueInvalidDoDate      DateIssueKind = "invalid_do_date"
	IssueInvalidPublishDate DateIssueKind = "invalid_publish_date"
	IssuePastDoDate         DateIssueKind = "past_do_date"
	IssuePastPublishDate    DateIssueKind = "past_publish_date"
	IssuePublishNotAfterDo  DateIssueKind = "publish_not_after_do"
	IssueInsufficientGap    DateIssueKind = "insufficient_gap"
)

// DateIssue is one violation found while validating an action's dates.
// RequiredMinutes is the action's own estimate, never the floored gap.
type DateIssue struct {
	Kind            DateIssueKind
	RequiredMinutes int
	ActualMinutes   int
}

// DateOptions tunes ValidateActionDates. The zero value allows past dates,
// does not auto-correct and has no extra minimum gap.
type DateOptions struct {
	RejectPastDates bool
	AutoCorrect     bool
	MinTimeBetween  int
	Now             func() time.Time
	Location        *time.Location
}

func (o DateOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o DateOptions) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.Local
}

// CorrectedDates holds auto-corrected values. A nil field needs no correction.
type CorrectedDates struct {
	Date          *time.Time
	InstagramDate *time.Time
}

type DateValidation struct {
	IsValid   bool
	Issues    []DateIssue
	Corrected *CorrectedDates
}

// RequiredGap is the minimum number of minutes between the do date and the
// publish date. It never drops below one minute.
func RequiredGap(requiredMinutes, minTimeBetween int) int {
	return max(requiredMinutes, minTimeBetween, 1)
}

// ParseDate parses an action timestamp. Layouts without a zone are read in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// FormatDate renders t in the wire layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidateActionDates checks that the publish date follows the do date by at
// least the required gap. Only feed categories (stories included) carry the
// ordering rule; every category gets the parse and past-date checks.
func ValidateActionDates(doDate, publishDate string, requiredMinutes int, category string, opts DateOptions) DateValidation {
	loc := opts.location()

	do, err := ParseDate(doDate, loc)
	if err != nil {
		return DateValidation{Issues: []DateIssue{{Kind: IssueInvalidDoDate}}}
	}
	publish, err := ParseDate(publishDate, loc)
	if err != nil {
		return DateValidation{Issues: []DateIssue{{Kind: IssueInvalidPublishDate}}}
	}

	var issues []DateIssue
	corrected := CorrectedDates{}

	if opts.RejectPastDates {
		now := opts.now()
		if do.Before(now) {
			issues = append(issues, DateIssue{Kind: IssuePastDoDate})
			if opts.AutoCorrect {
				do = now
				corrected.Date = &do
			}
		}
		if publish.Before(now) {
			issues = append(issues, DateIssue{Kind: IssuePastPublishDate})
			if opts.AutoCorrect {
				publish = now
				corrected.InstagramDate = &publish
			}
		}
	}

	if IsInstagramFeed(category, true) {
		gap := RequiredGap(requiredMinutes, opts.MinTimeBetween)
		suggested := do.Add(time.Duration(gap) * time.Minute)

		if !publish.After(do) {
			issues = append(issues, DateIssue{Kind: IssuePublishNotAfterDo})
			if opts.AutoCorrect {
				corrected.InstagramDate = &suggested
			}
		} else if diff := publish.Sub(do); diff < time.Duration(gap)*time.Minute {
			issues = append(issues, DateIssue{
				Kind:            IssueInsufficientGap,
				RequiredMinutes: requiredMinutes,
				ActualMinutes:   int(diff / time.Minute),
			})
			if opts.AutoCorrect {
				corrected.InstagramDate = &suggested
			}
		}
	}

	result := DateValidation{IsValid: len(issues) == 0, Issues: issues}
	if result.Issues == nil {
		result.Issues = []DateIssue{}
	}
	if opts.AutoCorrect && (corrected.Date != nil || corrected.InstagramDate != nil) {
		result.Corrected = &corrected
	}
	return result
}

// DatePair is a do/publish pair in the wire layout.
type DatePair struct {
	Date          string
	InstagramDate string
}

// AutoCorrectActionDates always returns a pair that satisfies the date rules
// for category. Valid input comes back unchanged, so the function is idempotent.
func AutoCorrectActionDates(doDate, publishDate string, requiredMinutes int, category string, opts DateOptions) (DatePair, error) {
	loc := opts.location()

	do, err := ParseDate(doDate, loc)
	if err != nil {
		return DatePair{}, fmt.Errorf("parse do date: %w", err)
	}
	publish, err := ParseDate(publishDate, loc)
	if err != nil {
		return DatePair{}, fmt.Errorf("parse publish date: %w", err)
	}

	if opts.RejectPastDates {
		now := opts.now()
		if do.Before(now) {
			do = now
		}
		if publish.Before(now) {
			publish = now
		}
	}

	if IsInstagramFeed(category, true) {
		gap := time.Duration(RequiredGap(requiredMinutes, opts.MinTimeBetween)) * time.Minute
		if publish.Sub(do) < gap {
			publish = do.Add(gap)
		}
	}

	return DatePair{Date: FormatDate(do), InstagramDate: FormatDate(publish)}, nil
}

// SuggestedField names the date a suggestion proposes to change.
type SuggestedField string

const (
	SuggestDate          SuggestedField = "date"
	SuggestInstagramDate SuggestedField = "instagram_date"
)

type Suggestion struct {
	Field SuggestedField
	Value time.Time
}

type DateSuggestion struct {
	IsValid    bool
	Issues     []DateIssue
	Suggestion *Suggestion
}

// ValidateAndSuggestDates validates an edit of one of the action's dates and,
// when the pair is invalid, proposes a new value for the other date. Nothing is
// applied; the caller decides whether to accept the suggestion.
func ValidateAndSuggestDates(current Action, newDoDate, newPublishDate *string, isChangingDoDate bool, opts DateOptions) DateSuggestion {
	loc := opts.location()

	doDate := FormatDate(current.Date.In(loc))
	if newDoDate != nil {
		doDate = *newDoDate
	}
	publishDate := FormatDate(current.PublishDate().In(loc))
	if newPublishDate != nil {
		publishDate = *newPublishDate
	}

	opts.AutoCorrect = true
	validation := ValidateActionDates(doDate, publishDate, current.Time, current.Category, opts)
	if validation.IsValid {
		return DateSuggestion{IsValid: true, Issues: []DateIssue{}}
	}

	out := DateSuggestion{Issues: validation.Issues}
	if validation.Corrected == nil || !hasOrderingIssue(validation.Issues) || hasPastIssue(validation.Issues) {
		return out
	}

	if isChangingDoDate {
		if validation.Corrected.InstagramDate != nil {
			out.Suggestion = &Suggestion{Field: SuggestInstagramDate, Value: *validation.Corrected.InstagramDate}
		}
		return out
	}

	publish, err := ParseDate(publishDate, loc)
	if err != nil {
		return out
	}
	gap := time.Duration(RequiredGap(current.Time, opts.MinTimeBetween)) * time.Minute
	out.Suggestion = &Suggestion{Field: SuggestDate, Value: publish.Add(-gap)}
	return out
}

func hasOrderingIssue(issues []DateIssue) bool {
	for _, issue := range issues {
		if issue.Kind == IssuePublishNotAfterDo || issue.Kind == IssueInsufficientGap {
			return true
		}
	}
	return false
}

func hasPastIssue(issues []DateIssue) bool {
	for _, issue := range issues {
		if issue.Kind == IssuePastDoDate || issue.Kind == IssuePastPublishDate {
			return true
		}
	}
	return false
}

// SplitMinutes breaks a duration in minutes into hours and remaining minutes.
func SplitMinutes(minutes int) (int, int) {
	return minutes / 60, minutes % 60
}
