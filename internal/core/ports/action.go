package ports

import (
	"context"

	"bussola/internal/core/domain"
)

type ActionRepository interface {
	Fetch(ctx context.Context, filter domain.ActionFilter) ([]domain.Action, error)
	Get(ctx context.Context, id string) (domain.Action, error)
	Create(ctx context.Context, action domain.Action) error
	Update(ctx context.Context, action domain.Action) error
	BulkUpdate(ctx context.Context, actions []domain.Action) error
	SetArchived(ctx context.Context, id string, archived bool) error
	Destroy(ctx context.Context, id string) error
}

type SprintRepository interface {
	Add(ctx context.Context, sprint domain.Sprint) error
	Remove(ctx context.Context, actionID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.Sprint, error)
}

type ReferenceRepository interface {
	ListStates(ctx context.Context) ([]domain.State, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListPartners(ctx context.Context) ([]domain.Partner, error)
	ListPeople(ctx context.Context) ([]domain.Person, error)
}

// ActionQuery is a fetch plus the display options applied on top of it.
// Categories and States narrow the list to those values when non-empty.
type ActionQuery struct {
	Filter     domain.ActionFilter
	Search     string
	Categories []string
	States     []string
	Sort       domain.SortOptions
}

// ViewRequest carries the client's optimistic state for a reconciled view.
type ViewRequest struct {
	Filter   domain.ActionFilter
	Pending  []domain.Action
	Deleting []string
	Sort     domain.SortOptions
}

type ActionService interface {
	ListActions(ctx context.Context, query ActionQuery) ([]domain.Action, error)
	ListDelayed(ctx context.Context, filter domain.ActionFilter, priority *domain.Priority) ([]domain.Action, error)
	ListUrgent(ctx context.Context, filter domain.ActionFilter) ([]domain.Action, error)
	ListInstagramFeed(ctx context.Context, filter domain.ActionFilter) ([]domain.Action, error)
	ListForDay(ctx context.Context, filter domain.ActionFilter, day string, useInstagramDate bool) ([]domain.Action, error)
	BuildView(ctx context.Context, req ViewRequest) ([]domain.Action, error)
	ListSprint(ctx context.Context, userID string) ([]domain.Action, error)
	Apply(ctx context.Context, mutation domain.Mutation) (domain.MutationResult, error)
}

// DateReport is a date validation rendered in the caller's language.
type DateReport struct {
	IsValid   bool
	Errors    []string
	Corrected *CorrectedDates
}

// CorrectedDates holds corrected values in the wire layout. Nil fields need
// no correction.
type CorrectedDates struct {
	Date          *string
	InstagramDate *string
}

// DateSuggestionReport is a suggestion rendered in the caller's language.
type DateSuggestionReport struct {
	IsValid     bool
	Errors      []string
	Suggestions *SuggestionMessage
}

type SuggestionMessage struct {
	ActionDate    *string
	InstagramDate *string
	Message       string
}

type DateCheck struct {
	Date            string
	InstagramDate   string
	RequiredMinutes int
	Category        string
	RejectPastDates bool
	AutoCorrect     bool
}

// DateSuggestionCheck describes a date edit. With ActionID set the stored
// action supplies the other fields; otherwise Category, Time and both dates
// describe an action that is still being created.
type DateSuggestionCheck struct {
	ActionID         string
	Category         string
	Time             int
	Date             *string
	InstagramDate    *string
	IsChangingDoDate bool
}

type ScheduleService interface {
	Validate(ctx context.Context, check DateCheck, lang string) DateReport
	Suggest(ctx context.Context, check DateSuggestionCheck, lang string) (DateSuggestionReport, error)
	AutoCorrect(ctx context.Context, check DateCheck) (domain.DatePair, error)
	Describe(issues []domain.DateIssue, lang string) []string
}
