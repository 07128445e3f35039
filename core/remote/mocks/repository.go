package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"image-sync/core/remote"
)

// Repository is a mock implementation of remote.Repository
type Repository struct {
	mock.Mock
}

func (m *Repository) Get(ctx context.Context, path string) (*remote.Object, error) {
	args := m.Called(ctx, path)
	if obj, ok := args.Get(0).(*remote.Object); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) Create(ctx context.Context, path string, content []byte, message string) error {
	args := m.Called(ctx, path, content, message)
	return args.Error(0)
}

func (m *Repository) Update(ctx context.Context, path string, content []byte, message, revision string) error {
	args := m.Called(ctx, path, content, message, revision)
	return args.Error(0)
}

func (m *Repository) URL(path string) string {
	args := m.Called(path)
	return args.String(0)
}
