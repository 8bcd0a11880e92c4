package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bussola/internal/core/domain"
	"bussola/internal/core/ports"
	"bussola/pkg/translator"
)

type ScheduleService struct {
	actionRepository ports.ActionRepository
	dates            domain.DateOptions
}

func NewScheduleService(actionRepository ports.ActionRepository, dates domain.DateOptions) *ScheduleService {
	return &ScheduleService{actionRepository: actionRepository, dates: dates}
}

var _ ports.ScheduleService = (*ScheduleService)(nil)

func (s *ScheduleService) options(check ports.DateCheck) domain.DateOptions {
	opts := s.dates
	opts.RejectPastDates = opts.RejectPastDates || check.RejectPastDates
	opts.AutoCorrect = check.AutoCorrect
	return opts
}

func (s *ScheduleService) Validate(_ context.Context, check ports.DateCheck, lang string) ports.DateReport {
	validation := domain.ValidateActionDates(check.Date, check.InstagramDate, check.RequiredMinutes, check.Category, s.options(check))

	report := ports.DateReport{
		IsValid: validation.IsValid,
		Errors:  s.Describe(validation.Issues, lang),
	}
	if validation.Corrected != nil {
		report.Corrected = &ports.CorrectedDates{}
		if validation.Corrected.Date != nil {
			value := domain.FormatDate(*validation.Corrected.Date)
			report.Corrected.Date = &value
		}
		if validation.Corrected.InstagramDate != nil {
			value := domain.FormatDate(*validation.Corrected.InstagramDate)
			report.Corrected.InstagramDate = &value
		}
	}
	return report
}

func (s *ScheduleService) AutoCorrect(_ context.Context, check ports.DateCheck) (domain.DatePair, error) {
	return domain.AutoCorrectActionDates(check.Date, check.InstagramDate, check.RequiredMinutes, check.Category, s.options(check))
}

// Suggest validates a date edit against the stored action, or against the
// draft described by check when no id is given.
func (s *ScheduleService) Suggest(ctx context.Context, check ports.DateSuggestionCheck, lang string) (ports.DateSuggestionReport, error) {
	current, err := s.currentAction(ctx, check)
	if err != nil {
		return ports.DateSuggestionReport{}, err
	}

	suggestion := domain.ValidateAndSuggestDates(current, check.Date, check.InstagramDate, check.IsChangingDoDate, s.dates)
	report := ports.DateSuggestionReport{
		IsValid: suggestion.IsValid,
		Errors:  s.Describe(suggestion.Issues, lang),
	}
	if suggestion.Suggestion == nil {
		return report, nil
	}

	value := domain.FormatDate(suggestion.Suggestion.Value)
	shown := suggestion.Suggestion.Value.Format(translator.Localize(lang, "suggestionDateLayout", nil))
	message := &ports.SuggestionMessage{}
	switch suggestion.Suggestion.Field {
	case domain.SuggestInstagramDate:
		message.InstagramDate = &value
		message.Message = translator.Localize(lang, "suggestPublishDate", map[string]any{"Date": shown})
	case domain.SuggestDate:
		message.ActionDate = &value
		message.Message = translator.Localize(lang, "suggestDoDate", map[string]any{"Date": shown})
	}
	report.Suggestions = message
	return report, nil
}

func (s *ScheduleService) currentAction(ctx context.Context, check ports.DateSuggestionCheck) (domain.Action, error) {
	if check.ActionID != "" {
		return s.actionRepository.Get(ctx, check.ActionID)
	}

	if check.Date == nil {
		return domain.Action{}, fmt.Errorf("%w: missing do date", domain.ErrInvalidDate)
	}
	loc := s.dates.Location
	if loc == nil {
		loc = time.Local
	}
	do, err := domain.ParseDate(*check.Date, loc)
	if err != nil {
		return domain.Action{}, err
	}
	draft := domain.Action{Category: check.Category, Time: check.Time, Date: do}
	if check.InstagramDate != nil {
		publish, err := domain.ParseDate(*check.InstagramDate, loc)
		if err != nil {
			return domain.Action{}, err
		}
		draft.InstagramDate = &publish
	}
	return draft, nil
}

// Describe renders date issues as user-facing messages in lang.
func (s *ScheduleService) Describe(issues []domain.DateIssue, lang string) []string {
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, describeIssue(issue, lang))
	}
	return messages
}

func describeIssue(issue domain.DateIssue, lang string) string {
	switch issue.Kind {
	case domain.IssueInvalidDoDate:
		return translator.Localize(lang, "dateInvalidDo", nil)
	case domain.IssueInvalidPublishDate:
		return translator.Localize(lang, "dateInvalidPublish", nil)
	case domain.IssuePastDoDate:
		return translator.Localize(lang, "datePastDo", nil)
	case domain.IssuePastPublishDate:
		return translator.Localize(lang, "datePastPublish", nil)
	case domain.IssuePublishNotAfterDo:
		return translator.Localize(lang, "datePublishNotAfterDo", nil)
	case domain.IssueInsufficientGap:
		return translator.Localize(lang, "dateInsufficientGap", map[string]any{
			"Duration": FormatDuration(issue.RequiredMinutes, lang),
		})
	default:
		return strings.ReplaceAll(string(issue.Kind), "_", " ")
	}
}

// FormatDuration renders minutes as "45 minutos", "2h" or "1h30min".
func FormatDuration(minutes int, lang string) string {
	hours, rest := domain.SplitMinutes(minutes)
	switch {
	case hours == 0:
		return translator.LocalizePlural(lang, "durationMinutes", map[string]any{"Minutes": minutes}, minutes)
	case rest == 0:
		return translator.Localize(lang, "durationHours", map[string]any{"Hours": hours})
	default:
		return translator.Localize(lang, "durationHoursMinutes", map[string]any{"Hours": hours, "Minutes": rest})
	}
}
