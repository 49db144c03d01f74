package testutil

import (
	"context"

	"wordquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) Save(ctx context.Context, english, finnish string) (int64, error) {
	args := m.Called(ctx, english, finnish)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) FindAll(ctx context.Context) ([]domain.Word, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) FindByID(ctx context.Context, id int64) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) UpdateByID(ctx context.Context, id int64, english, finnish string) (bool, error) {
	args := m.Called(ctx, id, english, finnish)
	return args.Bool(0), args.Error(1)
}
