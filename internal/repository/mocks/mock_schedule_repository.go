package mocks

import (
	"context"

	"coachapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(ctx context.Context, sched *model.ClassSchedule) (*model.ClassSchedule, error) {
	args := m.Called(ctx, sched)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClassSchedule), args.Error(1)
}

func (m *MockScheduleRepository) List(ctx context.Context) ([]model.ClassSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClassSchedule), args.Error(1)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
