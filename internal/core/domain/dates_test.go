package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bussola/internal/core/domain"
)

func utcOptions() domain.DateOptions {
	return domain.DateOptions{Location: time.UTC}
}

func fixedNow(value string) func() time.Time {
	t, err := time.ParseInLocation(domain.DateLayout, value, time.UTC)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	for _, value := range []string{
		"2025-01-01 10:00:00",
		"2025-01-01T10:00:00",
		"2025-01-01 10:00",
		"2025-01-01T10:00:00Z",
		" 2025-01-01 10:00:00 ",
	} {
		got, err := domain.ParseDate(value, time.UTC)
		require.NoError(t, err, value)
		assert.True(t, want.Equal(got), value)
	}

	day, err := domain.ParseDate("2025-01-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), day)

	_, err = domain.ParseDate("01/01/2025", time.UTC)
	assert.True(t, errors.Is(err, domain.ErrInvalidDate))
	_, err = domain.ParseDate("", time.UTC)
	assert.True(t, errors.Is(err, domain.ErrInvalidDate))
}

func TestValidateActionDates_InsufficientGapWithAutoCorrect(t *testing.T) {
	opts := utcOptions()
	opts.AutoCorrect = true

	got := domain.ValidateActionDates("2025-01-01 10:00:00", "2025-01-01 10:10:00", 20, "reels", opts)

	require.False(t, got.IsValid)
	require.Equal(t, []domain.DateIssue{{Kind: domain.IssueInsufficientGap, RequiredMinutes: 20, ActualMinutes: 10}}, got.Issues)
	require.NotNil(t, got.Corrected)
	assert.Nil(t, got.Corrected.Date)
	require.NotNil(t, got.Corrected.InstagramDate)
	assert.Equal(t, "2025-01-01 10:20:00", domain.FormatDate(*got.Corrected.InstagramDate))
}

func TestValidateActionDates_NoCorrectionWithoutAutoCorrect(t *testing.T) {
	got := domain.ValidateActionDates("2025-01-01 10:00:00", "2025-01-01 10:10:00", 20, "reels", utcOptions())

	assert.False(t, got.IsValid)
	assert.Nil(t, got.Corrected)
}

func TestValidateActionDates_PublishNotAfterDo(t *testing.T) {
	opts := utcOptions()
	opts.AutoCorrect = true

	got := domain.ValidateActionDates("2025-01-01 10:00:00", "2025-01-01 10:00:00", 0, "post", opts)

	require.False(t, got.IsValid)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, domain.IssuePublishNotAfterDo, got.Issues[0].Kind)
	require.NotNil(t, got.Corrected)
	// the gap never drops below one minute
	assert.Equal(t, "2025-01-01 10:01:00", domain.FormatDate(*got.Corrected.InstagramDate))
}

func TestValidateActionDates_MinTimeBetweenRaisesTheGap(t *testing.T) {
	opts := utcOptions()
	opts.MinTimeBetween = 60

	got := domain.ValidateActionDates("2025-01-01 10:00:00", "2025-01-01 10:30:00", 15, "stories", opts)

	require.False(t, got.IsValid)
	assert.Equal(t, domain.DateIssue{Kind: domain.IssueInsufficientGap, RequiredMinutes: 15, ActualMinutes: 30}, got.Issues[0])
}

func TestValidateActionDates_NonFeedSkipsOrdering(t *testing.T) {
	got := domain.ValidateActionDates("2025-01-01 10:00:00", "2024-12-31 09:00:00", 30, "meeting", utcOptions())

	assert.True(t, got.IsValid)
	assert.NotNil(t, got.Issues)
	assert.Empty(t, got.Issues)
}

func TestValidateActionDates_InvalidInputStopsEarly(t *testing.T) {
	got := domain.ValidateActionDates("tomorrow", "also bad", 0, "post", utcOptions())
	assert.False(t, got.IsValid)
	assert.Equal(t, []domain.DateIssue{{Kind: domain.IssueInvalidDoDate}}, got.Issues)

	got = domain.ValidateActionDates("2025-01-01 10:00:00", "bad", 0, "post", utcOptions())
	assert.Equal(t, []domain.DateIssue{{Kind: domain.IssueInvalidPublishDate}}, got.Issues)
}

func TestValidateActionDates_PastDates(t *testing.T) {
	opts := utcOptions()
	opts.RejectPastDates = true
	opts.AutoCorrect = true
	opts.Now = fixedNow("2025-06-01 12:00:00")

	got := domain.ValidateActionDates("2025-05-01 10:00:00", "2025-05-01 11:00:00", 30, "post", opts)

	require.False(t, got.IsValid)
	kinds := make([]domain.DateIssueKind, 0, len(got.Issues))
	for _, issue := range got.Issues {
		kinds = append(kinds, issue.Kind)
	}
	assert.Equal(t, []domain.DateIssueKind{domain.IssuePastDoDate, domain.IssuePastPublishDate, domain.IssuePublishNotAfterDo}, kinds)
	require.NotNil(t, got.Corrected)
	assert.Equal(t, "2025-06-01 12:00:00", domain.FormatDate(*got.Corrected.Date))
	assert.Equal(t, "2025-06-01 12:30:00", domain.FormatDate(*got.Corrected.InstagramDate))
}

func TestValidateActionDates_PastDatesAllowedByDefault(t *testing.T) {
	opts := utcOptions()
	opts.Now = fixedNow("2025-06-01 12:00:00")

	got := domain.ValidateActionDates("2020-01-01 10:00:00", "2020-01-01 11:00:00", 30, "post", opts)
	assert.True(t, got.IsValid)
}

func TestAutoCorrectActionDates(t *testing.T) {
	pair, err := domain.AutoCorrectActionDates("2025-01-01 10:00:00", "2025-01-01 10:10:00", 20, "reels", utcOptions())
	require.NoError(t, err)
	assert.Equal(t, domain.DatePair{Date: "2025-01-01 10:00:00", InstagramDate: "2025-01-01 10:20:00"}, pair)

	pair, err = domain.AutoCorrectActionDates("2025-01-01 10:00", "2025-01-01 09:00", 0, "text", utcOptions())
	require.NoError(t, err)
	assert.Equal(t, domain.DatePair{Date: "2025-01-01 10:00:00", InstagramDate: "2025-01-01 09:00:00"}, pair)

	_, err = domain.AutoCorrectActionDates("nope", "2025-01-01 09:00", 0, "post", utcOptions())
	assert.True(t, errors.Is(err, domain.ErrInvalidDate))
}

func suggestionAction() domain.Action {
	publish := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return domain.Action{
		ID:            "a1",
		Category:      "reels",
		Time:          30,
		Date:          time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		InstagramDate: &publish,
	}
}

func TestValidateAndSuggestDates_ChangingDoDate(t *testing.T) {
	newDo := "2025-01-01 11:45:00"

	got := domain.ValidateAndSuggestDates(suggestionAction(), &newDo, nil, true, utcOptions())

	require.False(t, got.IsValid)
	require.NotNil(t, got.Suggestion)
	assert.Equal(t, domain.SuggestInstagramDate, got.Suggestion.Field)
	assert.Equal(t, "2025-01-01 12:15:00", domain.FormatDate(got.Suggestion.Value))
}

func TestValidateAndSuggestDates_ChangingPublishDate(t *testing.T) {
	newPublish := "2025-01-01 10:10:00"

	got := domain.ValidateAndSuggestDates(suggestionAction(), nil, &newPublish, false, utcOptions())

	require.False(t, got.IsValid)
	require.NotNil(t, got.Suggestion)
	assert.Equal(t, domain.SuggestDate, got.Suggestion.Field)
	assert.Equal(t, "2025-01-01 09:40:00", domain.FormatDate(got.Suggestion.Value))
}

func TestValidateAndSuggestDates_PastPublishDateHasNoSuggestion(t *testing.T) {
	opts := utcOptions()
	opts.RejectPastDates = true
	opts.Now = fixedNow("2025-01-01 09:00:00")
	newPublish := "2025-01-01 08:50:00"

	got := domain.ValidateAndSuggestDates(suggestionAction(), nil, &newPublish, false, opts)

	require.False(t, got.IsValid)
	kinds := make([]domain.DateIssueKind, 0, len(got.Issues))
	for _, issue := range got.Issues {
		kinds = append(kinds, issue.Kind)
	}
	assert.Equal(t, []domain.DateIssueKind{domain.IssuePastPublishDate, domain.IssuePublishNotAfterDo}, kinds)
	assert.Nil(t, got.Suggestion)
}

func TestValidateAndSuggestDates_PastDoDateHasNoSuggestion(t *testing.T) {
	opts := utcOptions()
	opts.RejectPastDates = true
	opts.Now = fixedNow("2025-01-01 12:00:00")
	newPublish := "2025-01-01 10:10:00"

	got := domain.ValidateAndSuggestDates(suggestionAction(), nil, &newPublish, false, opts)

	require.False(t, got.IsValid)
	assert.Contains(t, got.Issues, domain.DateIssue{Kind: domain.IssuePastDoDate})
	assert.Nil(t, got.Suggestion)
}

func TestValidateAndSuggestDates_Valid(t *testing.T) {
	newDo := "2025-01-01 09:00:00"

	got := domain.ValidateAndSuggestDates(suggestionAction(), &newDo, nil, true, utcOptions())

	assert.True(t, got.IsValid)
	assert.Empty(t, got.Issues)
	assert.Nil(t, got.Suggestion)
}

func TestValidateAndSuggestDates_InvalidInputHasNoSuggestion(t *testing.T) {
	bad := "soon"

	got := domain.ValidateAndSuggestDates(suggestionAction(), &bad, nil, true, utcOptions())

	assert.False(t, got.IsValid)
	assert.Nil(t, got.Suggestion)
	assert.Equal(t, domain.IssueInvalidDoDate, got.Issues[0].Kind)
}

func TestRequiredGap(t *testing.T) {
	assert.Equal(t, 1, domain.RequiredGap(0, 0))
	assert.Equal(t, 20, domain.RequiredGap(20, 0))
	assert.Equal(t, 45, domain.RequiredGap(20, 45))
	assert.Equal(t, 1, domain.RequiredGap(-5, 0))
}

func TestSplitMinutes(t *testing.T) {
	h, m := domain.SplitMinutes(90)
	assert.Equal(t, 1, h)
	assert.Equal(t, 30, m)

	h, m = domain.SplitMinutes(45)
	assert.Equal(t, 0, h)
	assert.Equal(t, 45, m)
}

func TestDateRuleError(t *testing.T) {
	err := error(&domain.DateRuleError{Issues: []domain.DateIssue{{Kind: domain.IssueInsufficientGap}}})

	assert.True(t, errors.Is(err, domain.ErrInvalidDates))
	assert.Equal(t, "invalid action dates: insufficient_gap", err.Error())
}
