package tests

import (
	"context"

	"bussola/internal/core/domain"
	"bussola/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type actionServiceMock struct {
	mock.Mock
}

func (m *actionServiceMock) actions(args mock.Arguments) ([]domain.Action, error) {
	var actions []domain.Action
	if value := args.Get(0); value != nil {
		actions = value.([]domain.Action)
	}
	return actions, args.Error(1)
}

func (m *actionServiceMock) ListActions(ctx context.Context, query ports.ActionQuery) ([]domain.Action, error) {
	return m.actions(m.Called(ctx, query))
}

func (m *actionServiceMock) ListDelayed(ctx context.Context, filter domain.ActionFilter, priority *domain.Priority) ([]domain.Action, error) {
	return m.actions(m.Called(ctx, filter, priority))
}

func (m *actionServiceMock) ListUrgent(ctx context.Context, filter domain.ActionFilter) ([]domain.Action, error) {
	return m.actions(m.Called(ctx, filter))
}

func (m *actionServiceMock) ListInstagramFeed(ctx context.Context, filter domain.ActionFilter) ([]domain.Action, error) {
	return m.actions(m.Called(ctx, filter))
}

func (m *actionServiceMock) ListForDay(ctx context.Context, filter domain.ActionFilter, day string, useInstagramDate bool) ([]domain.Action, error) {
	return m.actions(m.Called(ctx, filter, day, useInstagramDate))
}

func (m *actionServiceMock) BuildView(ctx context.Context, req ports.ViewRequest) ([]domain.Action, error) {
	return m.actions(m.Called(ctx, req))
}

func (m *actionServiceMock) ListSprint(ctx context.Context, userID string) ([]domain.Action, error) {
	return m.actions(m.Called(ctx, userID))
}

func (m *actionServiceMock) Apply(ctx context.Context, mutation domain.Mutation) (domain.MutationResult, error) {
	args := m.Called(ctx, mutation)

	var result domain.MutationResult
	if value := args.Get(0); value != nil {
		result = value.(domain.MutationResult)
	}
	return result, args.Error(1)
}

type referenceRepositoryMock struct {
	mock.Mock
}

func (m *referenceRepositoryMock) ListStates(ctx context.Context) ([]domain.State, error) {
	args := m.Called(ctx)
	var states []domain.State
	if value := args.Get(0); value != nil {
		states = value.([]domain.State)
	}
	return states, args.Error(1)
}

func (m *referenceRepositoryMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *referenceRepositoryMock) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	args := m.Called(ctx)
	var partners []domain.Partner
	if value := args.Get(0); value != nil {
		partners = value.([]domain.Partner)
	}
	return partners, args.Error(1)
}

func (m *referenceRepositoryMock) ListPeople(ctx context.Context) ([]domain.Person, error) {
	args := m.Called(ctx)
	var people []domain.Person
	if value := args.Get(0); value != nil {
		people = value.([]domain.Person)
	}
	return people, args.Error(1)
}

type scheduleServiceMock struct {
	mock.Mock
}

func (m *scheduleServiceMock) Validate(ctx context.Context, check ports.DateCheck, lang string) ports.DateReport {
	return m.Called(ctx, check, lang).Get(0).(ports.DateReport)
}

func (m *scheduleServiceMock) Suggest(ctx context.Context, check ports.DateSuggestionCheck, lang string) (ports.DateSuggestionReport, error) {
	args := m.Called(ctx, check, lang)
	return args.Get(0).(ports.DateSuggestionReport), args.Error(1)
}

func (m *scheduleServiceMock) AutoCorrect(ctx context.Context, check ports.DateCheck) (domain.DatePair, error) {
	args := m.Called(ctx, check)
	return args.Get(0).(domain.DatePair), args.Error(1)
}

func (m *scheduleServiceMock) Describe(issues []domain.DateIssue, lang string) []string {
	args := m.Called(issues, lang)

	var lines []string
	if value := args.Get(0); value != nil {
		lines = value.([]string)
	}
	return lines
}
