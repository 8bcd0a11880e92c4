package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bussola/internal/core/domain"
)

type actionRepositoryMock struct {
	mock.Mock
}

func (m *actionRepositoryMock) Fetch(ctx context.Context, filter domain.ActionFilter) ([]domain.Action, error) {
	args := m.Called(ctx, filter)

	var actions []domain.Action
	if value := args.Get(0); value != nil {
		actions = value.([]domain.Action)
	}
	return actions, args.Error(1)
}

func (m *actionRepositoryMock) Get(ctx context.Context, id string) (domain.Action, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Action), args.Error(1)
}

func (m *actionRepositoryMock) Create(ctx context.Context, action domain.Action) error {
	return m.Called(ctx, action).Error(0)
}

func (m *actionRepositoryMock) Update(ctx context.Context, action domain.Action) error {
	return m.Called(ctx, action).Error(0)
}

func (m *actionRepositoryMock) BulkUpdate(ctx context.Context, actions []domain.Action) error {
	return m.Called(ctx, actions).Error(0)
}

func (m *actionRepositoryMock) SetArchived(ctx context.Context, id string, archived bool) error {
	return m.Called(ctx, id, archived).Error(0)
}

func (m *actionRepositoryMock) Destroy(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
