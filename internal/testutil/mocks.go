package testutil

import (
	"context"

	"wortschatz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Touch(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockPreferenceRepository is a mock for PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetPreference(userID int64, key string) (string, bool, error) {
	args := m.Called(userID, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockPreferenceRepository) SetPreference(userID int64, key, value string) error {
	args := m.Called(userID, key, value)
	return args.Error(0)
}

// MockWordStore is a mock for WordStore
type MockWordStore struct {
	mock.Mock
}

func (m *MockWordStore) ListWords(ctx context.Context, page, perPage int, categoryID *int) (*domain.WordPage, error) {
	args := m.Called(ctx, page, perPage, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordPage), args.Error(1)
}

func (m *MockWordStore) ListRecentWords(ctx context.Context, limit int) ([]domain.Word, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordStore) GetWord(ctx context.Context, id int) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordStore) CreateWord(ctx context.Context, payload domain.WordPayload) (*domain.Word, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordStore) UpdateWord(ctx context.Context, id int, payload domain.WordPayload) (*domain.Word, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordStore) DeleteWord(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWordStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockWordStore) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
