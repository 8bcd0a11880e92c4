package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bussola/internal/core/domain"
	"bussola/internal/core/ports"
)

const duplicateSuffix = " (cópia)"

type ActionService struct {
	actionRepository    ports.ActionRepository
	sprintRepository    ports.SprintRepository
	referenceRepository ports.ReferenceRepository
	dates               domain.DateOptions
	newID               func() string
}

func NewActionService(
	actionRepository ports.ActionRepository,
	sprintRepository ports.SprintRepository,
	referenceRepository ports.ReferenceRepository,
	dates domain.DateOptions,
) *ActionService {
	return &ActionService{
		actionRepository:    actionRepository,
		sprintRepository:    sprintRepository,
		referenceRepository: referenceRepository,
		dates:               dates,
		newID:               uuid.NewString,
	}
}

var _ ports.ActionService = (*ActionService)(nil)

func (s *ActionService) now() time.Time {
	if s.dates.Now != nil {
		return s.dates.Now()
	}
	return time.Now()
}

func (s *ActionService) location() *time.Location {
	if s.dates.Location != nil {
		return s.dates.Location
	}
	return time.Local
}

func (s *ActionService) ListActions(ctx context.Context, query ports.ActionQuery) ([]domain.Action, error) {
	actions, err := s.actionRepository.Fetch(ctx, query.Filter)
	if err != nil {
		return nil, err
	}

	order, err := s.withStates(ctx, query.Sort)
	if err != nil {
		return nil, err
	}
	actions = domain.Search(actions, query.Search)
	if len(query.Categories) > 0 {
		actions = domain.ByCategories(actions, query.Categories...)
	}
	if len(query.States) > 0 {
		actions = domain.ByStates(actions, query.States...)
	}
	return domain.SortActions(actions, order), nil
}

func (s *ActionService) ListDelayed(ctx context.Context, filter domain.ActionFilter, priority *domain.Priority) ([]domain.Action, error) {
	actions, err := s.actionRepository.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	return domain.SortActions(domain.Delayed(actions, s.now(), priority), domain.DefaultSort()), nil
}

func (s *ActionService) ListUrgent(ctx context.Context, filter domain.ActionFilter) ([]domain.Action, error) {
	actions, err := s.actionRepository.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	return domain.SortActions(domain.Urgent(actions), domain.DefaultSort()), nil
}

func (s *ActionService) ListInstagramFeed(ctx context.Context, filter domain.ActionFilter) ([]domain.Action, error) {
	actions, err := s.actionRepository.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	return domain.InstagramFeedActions(actions), nil
}

func (s *ActionService) ListForDay(ctx context.Context, filter domain.ActionFilter, day string, useInstagramDate bool) ([]domain.Action, error) {
	date, err := domain.ParseDate(day, s.location())
	if err != nil {
		return nil, err
	}

	actions, err := s.actionRepository.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	return domain.SortActions(domain.ForDay(actions, date, useInstagramDate), domain.SortOptions{
		OrderBy:          domain.OrderByDate,
		Direction:        domain.Asc,
		UseInstagramDate: useInstagramDate,
	}), nil
}

// BuildView merges the stored actions with the client's unconfirmed changes.
func (s *ActionService) BuildView(ctx context.Context, req ports.ViewRequest) ([]domain.Action, error) {
	server, err := s.actionRepository.Fetch(ctx, req.Filter)
	if err != nil {
		return nil, err
	}

	order, err := s.withStates(ctx, req.Sort)
	if err != nil {
		return nil, err
	}
	view := domain.Reconcile(server, req.Pending, req.Deleting, order)

	// pending edits may have moved an action out of the requested scope
	if req.Filter.Partner != "" {
		view = domain.ByPartner(view, req.Filter.Partner)
	}
	if req.Filter.Responsible != "" {
		view = domain.ByResponsible(view, req.Filter.Responsible)
	}
	return view, nil
}

// ListSprint returns the actions a user pulled into their sprint, in the order
// they were added. Archived actions and markers whose action no longer exists
// are skipped.
func (s *ActionService) ListSprint(ctx context.Context, userID string) ([]domain.Action, error) {
	sprints, err := s.sprintRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	actions := make([]domain.Action, 0, len(sprints))
	for _, sprint := range sprints {
		action, err := s.actionRepository.Get(ctx, sprint.ActionID)
		if errors.Is(err, domain.ErrActionNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return domain.Active(actions), nil
}

// withStates loads the state list when ordering by state and the caller did
// not send one.
func (s *ActionService) withStates(ctx context.Context, order domain.SortOptions) (domain.SortOptions, error) {
	if order.OrderBy != domain.OrderByState || len(order.States) > 0 || s.referenceRepository == nil {
		return order, nil
	}
	states, err := s.referenceRepository.ListStates(ctx)
	if err != nil {
		return order, fmt.Errorf("list states: %w", err)
	}
	order.States = states
	return order, nil
}

func (s *ActionService) Apply(ctx context.Context, mutation domain.Mutation) (domain.MutationResult, error) {
	switch m := mutation.(type) {
	case domain.CreateAction:
		return s.create(ctx, m)
	case domain.UpdateAction:
		return s.update(ctx, m)
	case domain.BulkUpdateActions:
		return s.bulkUpdate(ctx, m)
	case domain.ArchiveAction:
		return s.setArchived(ctx, m.ID, true)
	case domain.RecoverAction:
		return s.setArchived(ctx, m.ID, false)
	case domain.DestroyAction:
		if err := s.actionRepository.Destroy(ctx, m.ID); err != nil {
			return domain.MutationResult{}, err
		}
		zap.L().Info("action destroyed", zap.String("action_id", m.ID))
		return domain.MutationResult{}, nil
	case domain.DuplicateAction:
		return s.duplicate(ctx, m)
	case domain.AddToSprint:
		return s.addToSprint(ctx, m)
	case domain.RemoveFromSprint:
		return domain.MutationResult{}, s.sprintRepository.Remove(ctx, m.ActionID, m.UserID)
	default:
		return domain.MutationResult{}, fmt.Errorf("%w: %T", domain.ErrUnknownMutation, mutation)
	}
}

func (s *ActionService) create(ctx context.Context, m domain.CreateAction) (domain.MutationResult, error) {
	action := m.Action.Clone()
	action.Title = strings.TrimSpace(action.Title)
	if action.Title == "" || action.Category == "" || action.Date.IsZero() {
		return domain.MutationResult{}, domain.ErrInvalidAction
	}
	if action.ID == "" {
		action.ID = s.newID()
	}
	if action.State == "" {
		action.State = domain.StateDo
	}
	if action.Priority == "" {
		action.Priority = domain.PriorityMid
	}
	if !action.Priority.IsValid() || action.Time < 0 {
		return domain.MutationResult{}, domain.ErrInvalidAction
	}

	if domain.IsInstagramFeed(action.Category, true) {
		if err := s.correctDates(&action); err != nil {
			return domain.MutationResult{}, err
		}
	}

	now := s.now()
	action.CreatedAt = now
	action.UpdatedAt = now
	action.Archived = false
	normalizeLists(&action)

	if err := s.actionRepository.Create(ctx, action); err != nil {
		return domain.MutationResult{}, err
	}
	return domain.MutationResult{Action: &action}, nil
}

func (s *ActionService) update(ctx context.Context, m domain.UpdateAction) (domain.MutationResult, error) {
	if m.Patch.IsEmpty() {
		return domain.MutationResult{}, domain.ErrInvalidAction
	}
	existing, err := s.actionRepository.Get(ctx, m.ID)
	if err != nil {
		return domain.MutationResult{}, err
	}

	updated := m.Patch.Apply(existing)
	if err := validatePatched(updated); err != nil {
		return domain.MutationResult{}, err
	}
	if m.Patch.TouchesDates() && domain.IsInstagramFeed(updated.Category, true) {
		if err := s.checkDates(updated); err != nil {
			return domain.MutationResult{}, err
		}
	}

	updated.UpdatedAt = s.now()
	if err := s.actionRepository.Update(ctx, updated); err != nil {
		return domain.MutationResult{}, err
	}
	return domain.MutationResult{Action: &updated}, nil
}

// bulkUpdate applies one patch to many actions. Bulk edits are not
// interactive, so feed actions get their publish date corrected instead of
// the whole batch being rejected.
func (s *ActionService) bulkUpdate(ctx context.Context, m domain.BulkUpdateActions) (domain.MutationResult, error) {
	if len(m.IDs) == 0 {
		return domain.MutationResult{}, domain.ErrEmptyIDList
	}
	if m.Patch.IsEmpty() {
		return domain.MutationResult{}, domain.ErrInvalidAction
	}

	now := s.now()
	updated := make([]domain.Action, 0, len(m.IDs))
	for _, id := range m.IDs {
		existing, err := s.actionRepository.Get(ctx, id)
		if err != nil {
			return domain.MutationResult{}, fmt.Errorf("load action %s: %w", id, err)
		}
		action := m.Patch.Apply(existing)
		if err := validatePatched(action); err != nil {
			return domain.MutationResult{}, err
		}
		if m.Patch.TouchesDates() && domain.IsInstagramFeed(action.Category, true) {
			if err := s.correctDates(&action); err != nil {
				return domain.MutationResult{}, err
			}
		}
		action.UpdatedAt = now
		updated = append(updated, action)
	}

	if err := s.actionRepository.BulkUpdate(ctx, updated); err != nil {
		return domain.MutationResult{}, err
	}
	zap.L().Info("actions updated in bulk", zap.Int("count", len(updated)))
	return domain.MutationResult{Actions: updated}, nil
}

func (s *ActionService) setArchived(ctx context.Context, id string, archived bool) (domain.MutationResult, error) {
	if err := s.actionRepository.SetArchived(ctx, id, archived); err != nil {
		return domain.MutationResult{}, err
	}
	action, err := s.actionRepository.Get(ctx, id)
	if err != nil {
		return domain.MutationResult{}, err
	}
	return domain.MutationResult{Action: &action}, nil
}

func (s *ActionService) duplicate(ctx context.Context, m domain.DuplicateAction) (domain.MutationResult, error) {
	source, err := s.actionRepository.Get(ctx, m.ID)
	if err != nil {
		return domain.MutationResult{}, err
	}

	copied := source.Clone()
	copied.ID = s.newID()
	copied.Title = source.Title + duplicateSuffix
	copied.Archived = false
	now := s.now()
	copied.CreatedAt = now
	copied.UpdatedAt = now

	if err := s.actionRepository.Create(ctx, copied); err != nil {
		return domain.MutationResult{}, err
	}
	return domain.MutationResult{Action: &copied}, nil
}

func (s *ActionService) addToSprint(ctx context.Context, m domain.AddToSprint) (domain.MutationResult, error) {
	if strings.TrimSpace(m.UserID) == "" {
		return domain.MutationResult{}, domain.ErrInvalidAction
	}
	action, err := s.actionRepository.Get(ctx, m.ActionID)
	if err != nil {
		return domain.MutationResult{}, err
	}
	if err := s.sprintRepository.Add(ctx, domain.Sprint{ActionID: m.ActionID, UserID: m.UserID, CreatedAt: s.now()}); err != nil {
		return domain.MutationResult{}, err
	}
	return domain.MutationResult{Action: &action}, nil
}

// correctDates fills in or repairs the publish date of a feed action.
func (s *ActionService) correctDates(action *domain.Action) error {
	loc := s.location()
	pair, err := domain.AutoCorrectActionDates(
		domain.FormatDate(action.Date.In(loc)),
		domain.FormatDate(action.PublishDate().In(loc)),
		action.Time,
		action.Category,
		domain.DateOptions{MinTimeBetween: s.dates.MinTimeBetween, Location: loc},
	)
	if err != nil {
		return err
	}

	date, err := domain.ParseDate(pair.Date, loc)
	if err != nil {
		return err
	}
	publish, err := domain.ParseDate(pair.InstagramDate, loc)
	if err != nil {
		return err
	}
	action.Date = date
	action.InstagramDate = &publish
	return nil
}

// checkDates rejects an interactive edit that breaks the date rules.
func (s *ActionService) checkDates(action domain.Action) error {
	loc := s.location()
	validation := domain.ValidateActionDates(
		domain.FormatDate(action.Date.In(loc)),
		domain.FormatDate(action.PublishDate().In(loc)),
		action.Time,
		action.Category,
		domain.DateOptions{MinTimeBetween: s.dates.MinTimeBetween, Location: loc},
	)
	if !validation.IsValid {
		return &domain.DateRuleError{Issues: validation.Issues}
	}
	return nil
}

func validatePatched(action domain.Action) error {
	if strings.TrimSpace(action.Title) == "" || action.Category == "" || action.State == "" {
		return domain.ErrInvalidAction
	}
	if !action.Priority.IsValid() || action.Time < 0 {
		return domain.ErrInvalidAction
	}
	return nil
}

func normalizeLists(action *domain.Action) {
	for _, list := range []*[]string{
		&action.Partners, &action.Responsibles, &action.Topics, &action.Files, &action.InstagramFiles,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
}
