package repository

import (
	"context"

	"pikalba/internal/store"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of store.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, col store.Collection, doc any) (string, error) {
	args := m.Called(ctx, col, doc)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Query(ctx context.Context, col store.Collection, filter store.Filter, limit int64, out any) error {
	args := m.Called(ctx, col, filter, limit, out)
	return args.Error(0)
}

func (m *MockStore) FindOne(ctx context.Context, col store.Collection, filter store.Filter, out any) (bool, error) {
	args := m.Called(ctx, col, filter, out)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) CollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
