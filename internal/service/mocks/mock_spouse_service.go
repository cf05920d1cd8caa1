package mocks

import (
	"context"

	"spouseshowcase/internal/model"
	"spouseshowcase/internal/schema"

	"github.com/stretchr/testify/mock"
)

type MockSpouseService struct {
	mock.Mock
}

func (m *MockSpouseService) List(ctx context.Context) ([]model.Spouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Spouse), args.Error(1)
}

func (m *MockSpouseService) Create(ctx context.Context, in schema.SpouseInput) (*model.Spouse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Spouse), args.Error(1)
}
